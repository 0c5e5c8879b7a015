package diagnostics

import "testing"

func TestNewResultVerdict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		messages  []Message
		exitCode  int
		succeeded bool
	}{
		{
			name:      "clean zero exit",
			messages:  nil,
			exitCode:  0,
			succeeded: true,
		},
		{
			name:      "warnings only",
			messages:  []Message{{Severity: SeverityWarning}},
			exitCode:  0,
			succeeded: true,
		},
		{
			name:      "nonzero exit without diagnostics",
			messages:  nil,
			exitCode:  1,
			succeeded: false,
		},
		{
			// Lint runs can exit zero while reporting errors in structured
			// output; the verdict must still be failure.
			name:      "error with zero exit",
			messages:  []Message{{Severity: SeverityError}},
			exitCode:  0,
			succeeded: false,
		},
		{
			name:      "error with nonzero exit",
			messages:  []Message{{Severity: SeverityError}},
			exitCode:  101,
			succeeded: false,
		},
		{
			name: "nested error under warning",
			messages: []Message{{
				Severity: SeverityWarning,
				Children: []Message{{Severity: SeverityError}},
			}},
			exitCode:  0,
			succeeded: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := NewResult(tt.messages, tt.exitCode, "", "")
			if result.Succeeded != tt.succeeded {
				t.Errorf("Succeeded = %v, want %v", result.Succeeded, tt.succeeded)
			}
		})
	}
}

func TestNewResultCountsNested(t *testing.T) {
	t.Parallel()

	// A top-level warning with an error child and a warning child: every
	// node is tallied by its own severity, parent and children independently.
	messages := []Message{{
		Severity: SeverityWarning,
		Children: []Message{
			{Severity: SeverityError},
			{Severity: SeverityWarning},
			{Severity: SeverityNote},
		},
	}}

	result := NewResult(messages, 0, "", "")
	if result.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", result.ErrorCount)
	}
	if result.WarningCount != 2 {
		t.Errorf("WarningCount = %d, want 2", result.WarningCount)
	}
	if result.Succeeded {
		t.Error("Succeeded = true despite nested error")
	}
	if got := result.CountBySeverity(SeverityNote); got != 1 {
		t.Errorf("CountBySeverity(Note) = %d, want 1", got)
	}
}

func TestNewResultRetainsRawStreams(t *testing.T) {
	t.Parallel()

	// Process crashed before emitting any diagnostic: failure verdict, empty
	// messages, raw stderr preserved unmodified for postmortem.
	stderr := "error: could not compile\nthread panicked\n"
	result := NewResult(nil, 1, "", stderr)

	if result.Succeeded {
		t.Error("Succeeded = true for nonzero exit")
	}
	if len(result.Messages) != 0 {
		t.Errorf("Messages = %v, want empty", result.Messages)
	}
	if result.Stderr != stderr {
		t.Errorf("Stderr = %q, want %q", result.Stderr, stderr)
	}
}

func TestMessagesBySeverity(t *testing.T) {
	t.Parallel()

	messages := []Message{
		{Severity: SeverityError, Text: "first"},
		{Severity: SeverityWarning, Text: "second"},
		{Severity: SeverityError, Text: "third"},
	}
	result := NewResult(messages, 1, "", "")

	errs := result.MessagesBySeverity(SeverityError)
	if len(errs) != 2 || errs[0].Text != "first" || errs[1].Text != "third" {
		t.Errorf("MessagesBySeverity(Error) = %+v, want first and third in order", errs)
	}
}
