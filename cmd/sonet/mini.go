package main

import (
	"github.com/spf13/cobra"

	"sonet/internal/driver"
)

var miniCmd = &cobra.Command{
	Use:   "mini [flags]",
	Short: "Strip all whitespace from an XML document",
	RunE:  runMini,
}

func init() {
	addIOFlags(miniCmd)
}

func runMini(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, outPath, err := ioPaths(cmd)
	if err != nil {
		return err
	}
	opts, err := loadDriverOptions(".")
	if err != nil {
		return err
	}

	minified, err := driver.Minify(inPath, opts)
	if err != nil {
		return describeErr(err)
	}
	return emit(outPath, minified)
}
