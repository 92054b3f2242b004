package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/goply/pkg/ply"
)

var convertFormat string

var convertCmd = &cobra.Command{
	Use:   "convert <in> <out>",
	Short: "Re-encode a PLY file in another payload encoding",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var encoding ply.Encoding
		switch convertFormat {
		case "ascii":
			encoding = ply.EncodingASCII
		case "binary_big_endian":
			encoding = ply.EncodingBinaryBigEndian
		case "binary_little_endian":
			encoding = ply.EncodingBinaryLittleEndian
		default:
			return fmt.Errorf("unknown format %q", convertFormat)
		}

		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		parser := ply.NewDefaultParser()
		parsed, err := parser.ReadPly(in)
		if err != nil {
			return err
		}
		parsed.Header.Encoding = encoding

		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer out.Close()

		writer := ply.NewWriter[ply.DefaultElement]()
		n, err := writer.WritePly(out, parsed)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("Wrote %d bytes to %s\n", n, args[1])
		}
		return out.Close()
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFormat, "format", "ascii", "target encoding: ascii, binary_big_endian or binary_little_endian")
	rootCmd.AddCommand(convertCmd)
}
