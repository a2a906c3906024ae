package main

import (
	"github.com/spf13/cobra"

	"sonet/internal/driver"
)

var jsonCmd = &cobra.Command{
	Use:   "json [flags]",
	Short: "Project an XML document into nested JSON records",
	Long:  `Json walks the document and emits the users/posts/topics/relations record tree as UTF-8 JSON with 2-space indentation`,
	RunE:  runJSON,
}

func init() {
	addIOFlags(jsonCmd)
}

func runJSON(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, outPath, err := ioPaths(cmd)
	if err != nil {
		return err
	}
	opts, err := loadDriverOptions(".")
	if err != nil {
		return err
	}

	_, rendered, err := driver.Export(inPath, opts)
	if err != nil {
		return describeErr(err)
	}
	return emit(outPath, rendered)
}
