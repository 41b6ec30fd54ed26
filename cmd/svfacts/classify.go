package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svfacts/internal/diagfmt"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [flags] [source...]",
	Short: "Show the classification facts of every token",
	Long: `Classify spells SystemVerilog text from the arguments or --file and prints
each token with the operator, keyword, literal and delimiter roles it plays.`,
	Example: `  svfacts classify 'a <= b ? c : d;'
  svfacts classify --format json --file rtl/top.sv`,
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	classifyCmd.Flags().StringP("file", "f", "", "read source from a file")
}

func runClassify(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if err := printDiagnostics(cmd, in.bag, in.fileSet); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		err = diagfmt.FormatTokensJSON(out, in.tokens, in.fileSet)
	} else {
		useColor, cerr := colorEnabled(cmd, os.Stdout)
		if cerr != nil {
			return cerr
		}
		err = diagfmt.FormatTokensPretty(out, in.tokens, in.fileSet, useColor)
	}
	if err != nil {
		return err
	}
	if in.bag.HasErrors() {
		return silenced(cmd)
	}
	return nil
}
