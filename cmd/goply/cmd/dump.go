package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/goply/pkg/ply"
)

var (
	dumpElement string
	dumpMax     int
)

var dumpCmd = &cobra.Command{
	Use:   "dump <file>",
	Short: "Decode a PLY file and print its records",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		parser := ply.NewDefaultParser()
		parsed, err := parser.ReadPly(file)
		if err != nil {
			return err
		}

		for _, name := range parsed.Header.Elements.Keys() {
			if dumpElement != "" && name != dumpElement {
				continue
			}
			def, _ := parsed.Header.Elements.Get(name)
			records, _ := parsed.Payload.Get(name)

			limit := len(records)
			if dumpMax > 0 && limit > dumpMax {
				limit = dumpMax
			}
			fmt.Printf("element %s (%d records)\n", name, len(records))
			for i := 0; i < limit; i++ {
				fmt.Printf("  [%d] %s\n", i, formatRecord(def, records[i]))
			}
			if limit < len(records) {
				fmt.Printf("  ... %d more\n", len(records)-limit)
			}
		}
		if dumpElement != "" && !parsed.Header.Elements.Has(dumpElement) {
			return fmt.Errorf("file has no element %q", dumpElement)
		}
		return nil
	},
}

func formatRecord(def *ply.ElementDef, record ply.DefaultElement) string {
	var parts []string
	for _, name := range def.Properties.Keys() {
		prop, ok := record.Property(name)
		if !ok {
			continue
		}
		if prop.IsList {
			values := make([]string, len(prop.List))
			for i, v := range prop.List {
				values[i] = v.String()
			}
			parts = append(parts, fmt.Sprintf("%s=[%s]", name, strings.Join(values, " ")))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%s", name, prop.Scalar))
		}
	}
	return strings.Join(parts, " ")
}

func init() {
	dumpCmd.Flags().StringVar(&dumpElement, "element", "", "dump only this element")
	dumpCmd.Flags().IntVar(&dumpMax, "max", 10, "records to print per element (0 = all)")
	rootCmd.AddCommand(dumpCmd)
}
