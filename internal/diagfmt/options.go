package diagfmt

// PrettyOpts configures human-readable output.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	ShowFixes bool
	// BaseDir shortens file paths when set.
	BaseDir string
}

// JSONOpts configures machine-readable output.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
	IncludeFixes     bool
	// Max truncates output; 0 means everything.
	Max int
}
