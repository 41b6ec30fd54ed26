package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"svfacts/internal/diag"
	"svfacts/internal/diagfmt"
	"svfacts/internal/source"
	"svfacts/internal/spelling"
	"svfacts/internal/token"
)

// spelledInput is source text read from --file or the arguments, already
// split into tokens.
type spelledInput struct {
	fileSet *source.FileSet
	tokens  []token.Token
	bag     *diag.Bag
}

// readInput spells the file named by --file, or the arguments joined with
// spaces when no file is given.
func readInput(cmd *cobra.Command, args []string) (*spelledInput, error) {
	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return nil, fmt.Errorf("failed to get file flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	fs := source.NewFileSet()
	var id source.FileID
	switch {
	case path != "" && len(args) > 0:
		return nil, errors.New("pass either --file or source text, not both")
	case path != "":
		id, err = fs.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	case len(args) > 0:
		id = fs.AddVirtual("<args>", []byte(strings.Join(args, " ")))
	default:
		return nil, errors.New("no input: pass source text or --file")
	}

	bag := diag.NewBag(maxDiagnostics)
	toks := spelling.Tokens(fs.Get(id), spelling.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &spelledInput{fileSet: fs, tokens: toks, bag: bag}, nil
}

// maxErrors turns --max-diagnostics into the parser's error cap.
func maxErrors(cmd *cobra.Command) (uint, error) {
	n, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	limit, err := safecast.Conv[uint](n)
	if err != nil {
		return 0, fmt.Errorf("invalid --max-diagnostics %d: %w", n, err)
	}
	return limit, nil
}

// printDiagnostics writes bag to stderr in the pretty format.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag.Len() == 0 && bag.Dropped() == 0 {
		return nil
	}
	useColor, err := colorEnabled(cmd, os.Stderr)
	if err != nil {
		return err
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{Color: useColor, ShowNotes: true, ShowFixes: true})
	return nil
}
