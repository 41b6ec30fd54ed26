package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestLine(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	Version, GitCommit, BuildDate = "1.2.3", "", ""
	if got := Line(false); got != "svfacts 1.2.3" {
		t.Fatalf("Line = %q", got)
	}
	GitCommit, BuildDate = "abc123", "2026-01-15"
	if got := Line(false); got != "svfacts 1.2.3 (abc123) built 2026-01-15" {
		t.Fatalf("Line = %q", got)
	}
}

func TestColored(t *testing.T) {
	origVersion, origNoColor := Version, color.NoColor
	t.Cleanup(func() { Version, color.NoColor = origVersion, origNoColor })

	color.NoColor = true
	for _, v := range []string{"0.1.0-dev", "1.2.3", "1.2.3-rc.1+build.123", "nightly"} {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored(%q) without colour = %q", v, got)
		}
	}

	color.NoColor = false
	Version = "1.2.3-dev"
	if got := Colored(); got == Version {
		t.Errorf("Colored did not add colour: %q", got)
	}
}
