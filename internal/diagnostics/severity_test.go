package diagnostics

import "testing"

func TestParseSeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level    string
		expected Severity
		ok       bool
	}{
		{"error", SeverityError, true},
		{"warning", SeverityWarning, true},
		{"note", SeverityNote, true},
		{"help", SeverityHelp, true},
		{"info", SeverityInfo, true},
		{"ERROR", SeverityError, true},
		{"Warning", SeverityWarning, true},
		{"failure-note", 0, false},
		{"", 0, false},
		{"fatal", 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseSeverity(tt.level)
			if ok != tt.ok {
				t.Fatalf("ParseSeverity(%q) ok = %v, want %v", tt.level, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ParseSeverity(%q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		sev      Severity
		expected string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{SeverityNote, "note"},
		{SeverityHelp, "help"},
		{SeverityInfo, "info"},
		{Severity(200), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.expected {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.expected)
		}
	}
}

func TestSeverityOrdering(t *testing.T) {
	t.Parallel()

	// Error outranks Warning, which outranks the informational levels.
	if !(SeverityError > SeverityWarning) {
		t.Error("expected SeverityError > SeverityWarning")
	}
	for _, sev := range []Severity{SeverityNote, SeverityHelp, SeverityInfo} {
		if !(SeverityWarning > sev) {
			t.Errorf("expected SeverityWarning > %v", sev)
		}
	}
}
