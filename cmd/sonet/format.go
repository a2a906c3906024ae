package main

import (
	"github.com/spf13/cobra"

	"sonet/internal/driver"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags]",
	Short: "Format an XML document with standard indentation",
	Long:  `Format reindents the document: 4 spaces per nesting level, short leaf elements inlined, long text wrapped at 80 columns`,
	RunE:  runFormat,
}

func init() {
	addIOFlags(formatCmd)
}

func runFormat(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, outPath, err := ioPaths(cmd)
	if err != nil {
		return err
	}
	opts, err := loadDriverOptions(".")
	if err != nil {
		return err
	}

	formatted, err := driver.Format(inPath, opts)
	if err != nil {
		return describeErr(err)
	}
	return emit(outPath, formatted)
}
