package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sonet/internal/driver"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags]",
	Short: "Verify the structure of an XML document",
	Long:  `Verify checks tag balance line by line and annotates every structural error in place; with --fix the document is rebalanced and reformatted`,
	RunE:  runVerify,
}

func init() {
	addIOFlags(verifyCmd)
	verifyCmd.Flags().BoolP("fix", "f", false, "rebalance the document instead of only annotating")
	verifyCmd.Flags().Bool("strict", false, "exit non-zero when structural errors remain")
}

func runVerify(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	inPath, outPath, err := ioPaths(cmd)
	if err != nil {
		return err
	}
	fix, err := cmd.Flags().GetBool("fix")
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}
	opts, err := loadDriverOptions(".")
	if err != nil {
		return err
	}

	res, err := driver.Verify(inPath, fix, opts)
	if err != nil {
		return describeErr(err)
	}

	if err := emit(outPath, res.Output); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		printVerifySummary(cmd, res)
	}

	if strict && !fix && res.Validation.Counts.Total > 0 {
		return fmt.Errorf("verify: %d structural errors", res.Validation.Counts.Total)
	}
	return nil
}

// printVerifySummary пишет сводку ошибок/исправлений в stderr, чтобы не
// мешать перенаправлению размеченного документа.
func printVerifySummary(cmd *cobra.Command, res driver.VerifyResult) {
	headline := color.New(color.Bold)
	bad := color.New(color.FgRed)
	good := color.New(color.FgGreen)
	if !useColor(cmd, os.Stderr) {
		headline.DisableColor()
		bad.DisableColor()
		good.DisableColor()
	}

	c := res.Validation.Counts
	headline.Fprintln(os.Stderr, "validation:")
	fmt.Fprintf(os.Stderr, "  orphan tags:          %s\n", countString(bad, good, c.OrphanTags))
	fmt.Fprintf(os.Stderr, "  mismatches:           %s\n", countString(bad, good, c.Mismatches))
	fmt.Fprintf(os.Stderr, "  missing closing tags: %s\n", countString(bad, good, c.MissingClosingTags))
	fmt.Fprintf(os.Stderr, "  total:                %s\n", countString(bad, good, c.Total))

	if res.Correction == nil {
		return
	}

	f := res.Correction.Counts
	headline.Fprintln(os.Stderr, "corrections:")
	fmt.Fprintf(os.Stderr, "  missing tags added:   %d\n", f.MissingTagsAdded)
	fmt.Fprintf(os.Stderr, "  stray tags removed:   %d\n", f.StrayTagsRemoved)
	fmt.Fprintf(os.Stderr, "  mismatches fixed:     %d\n", f.MismatchesFixed)
	fmt.Fprintf(os.Stderr, "  total corrections:    %d\n", f.Total)
}

func countString(bad, good *color.Color, n int) string {
	if n > 0 {
		return bad.Sprintf("%d", n)
	}
	return good.Sprintf("%d", n)
}
