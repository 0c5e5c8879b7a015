package diagnostics

import "strings"

// Severity defines the importance of a diagnostic reported by the toolchain.
type Severity uint8

const (
	// SeverityInfo is for informational diagnostics.
	SeverityInfo Severity = iota
	// SeverityHelp is for "help" suggestions attached to other diagnostics.
	SeverityHelp
	// SeverityNote is for explanatory notes.
	SeverityNote
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityHelp:
		return "help"
	case SeverityNote:
		return "note"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity maps a cargo level string to a Severity.
// Returns false for levels outside the closed enumeration (e.g., cargo's
// "failure-note"); callers drop such diagnostics rather than guessing.
func ParseSeverity(level string) (Severity, bool) {
	switch strings.ToLower(level) {
	case "error":
		return SeverityError, true
	case "warning":
		return SeverityWarning, true
	case "note":
		return SeverityNote, true
	case "help":
		return SeverityHelp, true
	case "info":
		return SeverityInfo, true
	}
	return 0, false
}
