package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"svfacts/internal/version"
)

// errDiagnostics marks a run whose diagnostics were already printed; main
// exits non-zero without printing it again.
var errDiagnostics = errors.New("errors reported")

var rootCmd = &cobra.Command{
	Use:   "svfacts",
	Short: "SystemVerilog token classification and precedence engine",
	Long: `svfacts answers the syntactic questions a SystemVerilog parser asks about
tokens: which operator a token is, how tightly it binds, which keyword closes
which block and where a list ends. The subcommands expose those tables and
drive a small parser built on them.`,
	SilenceUsage:      true,
	PersistentPreRunE: prepareRun,
}

// cleanupRun stops the profilers and flushes the tracer installed by
// prepareRun.
var cleanupRun = func(error) {}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)

	addGlobalFlags(rootCmd)
}

// main runs the command line. Any error exits with status 1.
func main() {
	err := rootCmd.Execute()
	cleanupRun(err)
	if err != nil {
		os.Exit(1)
	}
}

func addGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show per file")
	pf.String("config", "", "path to svfacts.toml (default: search upward from the working directory)")
	pf.String("trace", "", "write trace events to a file, or - for stderr")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both); ring writes the last events on exit")
	pf.String("cpu-profile", "", "write a CPU profile to this file")
	pf.String("mem-profile", "", "write a heap profile to this file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to this file")
}

func prepareRun(cmd *cobra.Command, _ []string) error {
	if err := applyConfig(cmd, "."); err != nil {
		return err
	}
	stopTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		stopTrace(err)
		return err
	}
	cleanupRun = func(runErr error) {
		stopProfiling()
		stopTrace(runErr)
		cleanupRun = func(error) {}
	}
	return nil
}

// silenced returns errDiagnostics after telling cobra not to print it.
func silenced(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return errDiagnostics
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
