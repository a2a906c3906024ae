package main

import (
	"github.com/spf13/cobra"

	"sonet/internal/driver"
)

var compressCmd = &cobra.Command{
	Use:   "compress [flags]",
	Short: "Compress an XML document into the compact frame format",
	Long:  `Compress encodes the document with the order-preserving pair-merge codec; the frame is written as raw single-byte output`,
	RunE:  runCompress,
}

func init() {
	addIOFlags(compressCmd)
}

func runCompress(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, outPath, err := ioPaths(cmd)
	if err != nil {
		return err
	}
	opts, err := loadDriverOptions(".")
	if err != nil {
		return err
	}

	// Кадр пишем байтами: однобайтовая кодировка — часть формата.
	_, raw, err := driver.Compress(inPath, opts)
	if err != nil {
		return describeErr(err)
	}
	return emitBytes(outPath, raw)
}
