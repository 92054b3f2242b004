package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/goply/pkg/ply"
)

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Show a PLY file's header schema",
	Long:  "Parses only the header and prints the declared encoding, version, metadata and element schema.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		parser := ply.NewDefaultParser()
		header, err := parser.ReadHeader(bufio.NewReader(file))
		if err != nil {
			return err
		}

		fmt.Printf("File: %s\n", args[0])
		fmt.Printf("Format: %s %s\n", header.Encoding, header.Version)
		for _, c := range header.Comments {
			fmt.Printf("Comment: %s\n", c)
		}
		if verbose {
			for _, o := range header.ObjInfos {
				fmt.Printf("Object info: %s\n", o)
			}
		}

		fmt.Printf("\nElements (%d total):\n", header.Elements.Len())
		for _, name := range header.Elements.Keys() {
			def, _ := header.Elements.Get(name)
			fmt.Printf("  %s (%d records)\n", def.Name, def.Count)
			for _, pname := range def.Properties.Keys() {
				prop, _ := def.Properties.Get(pname)
				fmt.Printf("    %s %s\n", prop.Type, prop.Name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
