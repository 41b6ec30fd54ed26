package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"svfacts/internal/prof"
)

// setupProfiling starts the profilers named by the profiling flags. The
// returned cleanup stops them and reports write errors on stderr.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	var cfg prof.Config
	for name, dst := range map[string]*string{
		"cpu-profile":   &cfg.CPU,
		"mem-profile":   &cfg.Mem,
		"runtime-trace": &cfg.RuntimeTrace,
	} {
		v, err := cmd.Flags().GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}
	if cfg == (prof.Config{}) {
		return func() {}, nil
	}
	session, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", err)
		}
	}, nil
}
