package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sonet/internal/diag"
	"sonet/internal/driver"
)

// addIOFlags registers the shared --input/--output pair. Every document
// command reads one input file and writes to a file or stdout.
func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "path to the input file")
	cmd.Flags().StringP("output", "o", "", "path to the output file (stdout if omitted)")
	_ = cmd.MarkFlagRequired("input")
}

func ioPaths(cmd *cobra.Command) (inPath, outPath string, err error) {
	inPath, err = cmd.Flags().GetString("input")
	if err != nil {
		return "", "", fmt.Errorf("failed to get input flag: %w", err)
	}
	outPath, err = cmd.Flags().GetString("output")
	if err != nil {
		return "", "", fmt.Errorf("failed to get output flag: %w", err)
	}
	return inPath, outPath, nil
}

// emit writes text to outPath, or to stdout with a trailing newline when
// outPath is empty.
func emit(outPath, text string) error {
	if outPath == "" {
		fmt.Println(text)
		return nil
	}
	return emitBytes(outPath, []byte(text))
}

// describeErr prefixes classified operation errors with their diagnostic
// code id, so "sonet decompress" failures read like [CDC2001] ...
func describeErr(err error) error {
	if err == nil {
		return nil
	}
	if code := driver.DiagCode(err); code != diag.UnknownCode {
		return fmt.Errorf("[%s] %w", code.ID(), err)
	}
	return err
}

func emitBytes(outPath string, data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
