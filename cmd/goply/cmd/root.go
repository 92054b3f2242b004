package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "goply",
	Short: "goply - PLY polygon file inspection and conversion",
	Long: `goply reads the PLY polygon file format in all three encodings
(ascii, binary_big_endian, binary_little_endian).

Examples:
  goply info bunny.ply                    # Show header schema
  goply dump bunny.ply --element vertex   # Print decoded records
  goply convert --format ascii in.ply out.ply`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
