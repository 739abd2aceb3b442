package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	// Context is how many source lines to show around the primary line.
	Context int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds line/col pairs next to byte offsets.
	IncludePositions bool
	// Max truncates the output, not the Bag.
	Max          int
	IncludeNotes bool
}
