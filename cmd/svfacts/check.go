package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"svfacts/internal/check"
	"svfacts/internal/diagfmt"
	"svfacts/internal/fix"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <path>...",
	Short: "Spell and parse SystemVerilog files and report diagnostics",
	Long: `Check runs the facts-driven parser over every file given, walking
directories for .sv, .svh and .v sources. Files are processed in parallel and
diagnostics are reported in input order.`,
	Example: `  svfacts check rtl/
  svfacts check --jobs 4 --format short a.sv b.sv`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "files checked in parallel (0 = GOMAXPROCS)")
	checkCmd.Flags().String("format", "pretty", "diagnostic format (pretty|json|short)")
	checkCmd.Flags().String("ui", "off", "show a progress view (auto|on|off)")
	checkCmd.Flags().Bool("property", false, "allow sequence and property operators in expressions")
	checkCmd.Flags().Bool("timings", false, "print per-file timings")
	checkCmd.Flags().Bool("fix", false, "apply the suggested insertions to the files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s (expected pretty|json|short)", format)
	}
	uiValue, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	property, err := flags.GetBool("property")
	if err != nil {
		return fmt.Errorf("failed to get property flag: %w", err)
	}
	showTimings, err := flags.GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	applyFixes, err := flags.GetBool("fix")
	if err != nil {
		return fmt.Errorf("failed to get fix flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	limit, err := maxErrors(cmd)
	if err != nil {
		return err
	}

	files, err := check.ListFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no source files found in %v", args)
	}

	opts := check.Options{
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		MaxErrors:      limit,
		Property:       property,
	}
	var res *check.Result
	started := time.Now()
	if format != "json" && shouldUseTUI(mode) {
		res, err = runCheckWithUI(cmd.Context(), "check", files, opts)
	} else {
		res, err = check.Run(cmd.Context(), files, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	elapsed := time.Since(started)

	merged := res.Merged()
	base, _ := os.Getwd()
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := diagfmt.JSON(out, merged, res.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
		}); err != nil {
			return err
		}
	case "short":
		diagfmt.Short(out, merged, res.FileSet, base)
	default:
		useColor, err := colorEnabled(cmd, os.Stdout)
		if err != nil {
			return err
		}
		diagfmt.Pretty(out, merged, res.FileSet, diagfmt.PrettyOpts{
			Color:     useColor,
			ShowNotes: true,
			ShowFixes: true,
			BaseDir:   base,
		})
	}

	if showTimings {
		printTimings(cmd, res, base, elapsed)
	}
	if format != "json" {
		errs := merged.CountErrors()
		fmt.Fprintf(cmd.ErrOrStderr(), "checked %d file(s): %d error(s), %d other diagnostic(s)\n",
			len(res.Files), errs, merged.Len()-errs)
	}
	if applyFixes {
		if err := runFixes(cmd, res); err != nil {
			return err
		}
	}
	if res.HasErrors() {
		return silenced(cmd)
	}
	return nil
}

func runFixes(cmd *cobra.Command, res *check.Result) error {
	w := cmd.ErrOrStderr()
	out, err := fix.Apply(res.FileSet, res.Merged().Items(), fix.Options{})
	if errors.Is(err, fix.ErrNoFixes) {
		fmt.Fprintln(w, "no fixes to apply")
		return nil
	}
	if err != nil {
		return err
	}
	for _, s := range out.Skipped {
		fmt.Fprintf(w, "skipped %q in %s: %s\n", s.Title, s.Path, s.Reason)
	}
	fmt.Fprintf(w, "applied %d fix(es) to %d file(s)\n", len(out.Applied), len(out.Changes))
	return nil
}

func printTimings(cmd *cobra.Command, res *check.Result, base string, elapsed time.Duration) {
	w := cmd.ErrOrStderr()
	for _, f := range res.Files {
		name := f.Path
		if rel, err := filepath.Rel(base, f.Path); err == nil && base != "" {
			name = rel
		}
		fmt.Fprintf(w, "%-40s %6d tokens  spell %-10s parse %-10s\n", name, f.Tokens,
			f.Timings.Duration(check.StageSpell).Round(time.Microsecond),
			f.Timings.Duration(check.StageParse).Round(time.Microsecond))
	}
	fmt.Fprintf(w, "total %s\n", elapsed.Round(time.Microsecond))
}
