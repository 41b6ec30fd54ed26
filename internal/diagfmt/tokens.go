package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"svfacts/internal/source"
	"svfacts/internal/tables"
	"svfacts/internal/token"
)

// TokenOutput pairs a token with its classification row.
type TokenOutput struct {
	Text string          `json:"text"`
	Line uint32          `json:"line"`
	Col  uint32          `json:"col"`
	Row  tables.TokenRow `json:"facts"`
}

func tokenOutputs(tokens []token.Token, fs *source.FileSet) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		pos, _ := fs.Resolve(tok.Span)
		out = append(out, TokenOutput{Text: tok.Text, Line: pos.Line, Col: pos.Col, Row: tables.RowFor(tok.Kind)})
	}
	return out
}

// FormatTokensPretty prints one token per line followed by every role facts
// assigns to its kind.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet, useColor bool) error {
	kind := color.New(color.FgCyan, color.Bold)
	role := color.New(color.FgGreen)
	if useColor {
		kind.EnableColor()
		role.EnableColor()
	} else {
		kind.DisableColor()
		role.DisableColor()
	}
	for i, t := range tokenOutputs(tokens, fs) {
		var roles []string
		add := func(label, v string) {
			if v != "" {
				roles = append(roles, label+"="+v)
			}
		}
		add("prefix", t.Row.Prefix)
		add("postfix", t.Row.Postfix)
		add("binary", t.Row.Binary)
		add("name", t.Row.KeywordName)
		add("literal", t.Row.Literal)
		add("close", t.Row.Close)
		if len(t.Row.Starts) > 0 {
			roles = append(roles, "starts="+strings.Join(t.Row.Starts, ","))
		}
		if len(t.Row.Stops) > 0 {
			roles = append(roles, "stops="+strings.Join(t.Row.Stops, ","))
		}
		if _, err := fmt.Fprintf(w, "%3d %4d:%-3d %s %q", i+1, t.Line, t.Col, kind.Sprintf("%-18s", t.Row.Token), t.Text); err != nil {
			return err
		}
		if len(roles) > 0 {
			if _, err := fmt.Fprintf(w, " %s", role.Sprint(strings.Join(roles, " "))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenOutputs(tokens, fs))
}
