package diag

// Severity ranks a diagnostic. The ordering is meaningful: Bag queries
// and sorting compare severities numerically, with errors highest.
type Severity uint8

const (
	// SevInfo marks advisory output that never affects the build.
	SevInfo Severity = iota
	// SevWarning marks something suspicious that still compiles.
	SevWarning
	// SevError marks a diagnostic that fails the compilation.
	SevError
)

// String returns the uppercase label used in machine-facing output.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
