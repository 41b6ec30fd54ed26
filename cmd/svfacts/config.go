package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

const configFileName = "svfacts.toml"

type cliConfig struct {
	Output outputConfig `toml:"output"`
	Check  checkConfig  `toml:"check"`
	Trace  traceConfig  `toml:"trace"`
}

type outputConfig struct {
	// Format is the default for check --format.
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

type checkConfig struct {
	Jobs           int `toml:"jobs"`
	MaxDiagnostics int `toml:"max_diagnostics"`
}

type traceConfig struct {
	Level  string `toml:"level"`
	Output string `toml:"output"`
	Mode   string `toml:"mode"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadConfig(path string) (cliConfig, toml.MetaData, error) {
	var cfg cliConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cliConfig{}, meta, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cliConfig{}, meta, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("check", "jobs") && cfg.Check.Jobs < 0 {
		return cliConfig{}, meta, fmt.Errorf("%s: [check].jobs must not be negative", path)
	}
	if meta.IsDefined("check", "max_diagnostics") && cfg.Check.MaxDiagnostics < 0 {
		return cliConfig{}, meta, fmt.Errorf("%s: [check].max_diagnostics must not be negative", path)
	}
	return cfg, meta, nil
}

// applyConfig loads --config, or the nearest svfacts.toml above startDir,
// and copies its values into every flag of cmd the user did not set.
func applyConfig(cmd *cobra.Command, startDir string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	if path == "" {
		found, ok, err := findConfig(startDir)
		if err != nil || !ok {
			return err
		}
		path = found
	}
	cfg, meta, err := loadConfig(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	set := func(name string, defined bool, value string) error {
		f := flags.Lookup(name)
		if f == nil || f.Changed || !defined {
			return nil
		}
		if err := flags.Set(name, value); err != nil {
			return fmt.Errorf("%s: invalid value for --%s: %w", path, name, err)
		}
		return nil
	}
	if err := set("color", meta.IsDefined("output", "color"), cfg.Output.Color); err != nil {
		return err
	}
	if cmd.Name() == "check" {
		if err := set("format", meta.IsDefined("output", "format"), cfg.Output.Format); err != nil {
			return err
		}
	}
	if err := set("jobs", meta.IsDefined("check", "jobs"), strconv.Itoa(cfg.Check.Jobs)); err != nil {
		return err
	}
	if err := set("max-diagnostics", meta.IsDefined("check", "max_diagnostics"), strconv.Itoa(cfg.Check.MaxDiagnostics)); err != nil {
		return err
	}
	if err := set("trace-level", meta.IsDefined("trace", "level"), cfg.Trace.Level); err != nil {
		return err
	}
	if err := set("trace-mode", meta.IsDefined("trace", "mode"), cfg.Trace.Mode); err != nil {
		return err
	}
	return set("trace", meta.IsDefined("trace", "output"), cfg.Trace.Output)
}
