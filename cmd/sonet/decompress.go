package main

import (
	"github.com/spf13/cobra"

	"sonet/internal/driver"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress [flags]",
	Short: "Decompress a frame file back into XML text",
	Long:  `Decompress reads a compressed frame and reconstructs the original document; truncated or malformed frames fail loudly`,
	RunE:  runDecompress,
}

func init() {
	addIOFlags(decompressCmd)
}

func runDecompress(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, outPath, err := ioPaths(cmd)
	if err != nil {
		return err
	}
	opts, err := loadDriverOptions(".")
	if err != nil {
		return err
	}

	text, err := driver.Decompress(inPath, opts)
	if err != nil {
		return describeErr(err)
	}
	return emit(outPath, text)
}
