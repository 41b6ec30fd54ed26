package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"svfacts/internal/tables"
	"svfacts/internal/version"
)

var tablesCmd = &cobra.Command{
	Use:   "tables [flags]",
	Short: "Dump the classification and precedence tables",
	Long: `Tables writes a snapshot of every token row, operator precedence and
delimiter pairing. JSON is for reading; msgpack is the compact form other
tools load. The text format lists operators by binding strength.`,
	Example: `  svfacts tables --format text
  svfacts tables --token Question
  svfacts tables --format msgpack -o build/svfacts.tables`,
	Args: cobra.NoArgs,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().String("format", "json", "output format (json|msgpack|text)")
	tablesCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
	tablesCmd.Flags().String("token", "", "print only the row for this token kind")
}

func runTables(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	only, err := cmd.Flags().GetString("token")
	if err != nil {
		return fmt.Errorf("failed to get token flag: %w", err)
	}

	snap := tables.Build("svfacts " + version.Version)
	if only != "" {
		row, ok := snap.Token(only)
		if !ok {
			return fmt.Errorf("unknown token kind %q", only)
		}
		snap.Tokens = []tables.TokenRow{row}
		snap.Operators = nil
		snap.Delimiters = nil
	}

	switch format {
	case "json", "msgpack":
		if output != "" {
			return tables.WriteFile(output, format, snap)
		}
		if format == "json" {
			return tables.WriteJSON(cmd.OutOrStdout(), snap)
		}
		if isTerminal(os.Stdout) {
			return errors.New("refusing to write msgpack to a terminal; use -o")
		}
		return tables.WriteMsgpack(cmd.OutOrStdout(), snap)
	case "text":
		if output != "" {
			return errors.New("--output is only supported for json and msgpack")
		}
		return writeOperatorText(cmd.OutOrStdout(), snap)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeOperatorText lists operators from loosest to tightest binding.
func writeOperatorText(w io.Writer, snap *tables.Snapshot) error {
	ops := append([]tables.OperatorRow(nil), snap.Operators...)
	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Precedence < ops[j].Precedence })
	for _, op := range ops {
		assoc := "left"
		if op.RightAssoc {
			assoc = "right"
		}
		extra := ""
		if op.Temporal {
			extra = " temporal"
		}
		if _, err := fmt.Fprintf(w, "%3d  %-5s  %s%s\n", op.Precedence, assoc, op.Kind, extra); err != nil {
			return err
		}
	}
	return nil
}
