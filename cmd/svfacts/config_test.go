package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "rtl", "core")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := findConfig(nested)
	if err != nil || !ok {
		t.Fatalf("findConfig: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("found %s, want %s", got, want)
	}
}

// newCheckLikeCommand mirrors the flags the check subcommand sees after
// cobra merges the persistent ones.
func newCheckLikeCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "check"}
	addGlobalFlags(cmd)
	cmd.Flags().Int("jobs", 0, "")
	cmd.Flags().String("format", "pretty", "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestApplyConfigFillsUnsetFlags(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[output]
format = "short"
color = "off"

[check]
jobs = 3
max_diagnostics = 7

[trace]
level = "phase"
`)
	cmd := newCheckLikeCommand(t, "--max-diagnostics", "5")
	if err := applyConfig(cmd, dir); err != nil {
		t.Fatal(err)
	}
	flags := cmd.Flags()
	for name, want := range map[string]string{
		"format":          "short",
		"color":           "off",
		"jobs":            "3",
		"max-diagnostics": "5",
		"trace-level":     "phase",
		"trace":           "",
	} {
		if got := flags.Lookup(name).Value.String(); got != want {
			t.Errorf("--%s = %q, want %q", name, got, want)
		}
	}
}

func TestApplyConfigRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[check]\nthreads = 2\n")
	err := applyConfig(newCheckLikeCommand(t), dir)
	if err == nil || !strings.Contains(err.Error(), "check.threads") {
		t.Fatalf("err = %v", err)
	}
}

func TestApplyConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "[check]\njobs = -1\n")
	err := applyConfig(newCheckLikeCommand(t, "--config", path), t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "jobs must not be negative") {
		t.Fatalf("err = %v", err)
	}
}
