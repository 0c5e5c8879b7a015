package diagnostics

// Result is the terminal artifact of one cargo invocation: every parsed
// diagnostic plus the exit code and the full raw streams. Returned to the
// caller as a read-only snapshot; nothing mutates it after construction.
type Result struct {
	// Succeeded is derived at construction (see NewResult), never set
	// independently: true iff the exit code is zero AND no diagnostic at any
	// depth has severity Error. Lint invocations can exit zero while still
	// reporting errors via structured output; the double condition catches
	// that, and the reverse case of a nonzero exit with no diagnostics at all.
	Succeeded bool

	// Messages holds top-level diagnostics in toolchain emission order
	// (never re-sorted). Nesting lives inside each message's Children.
	Messages []Message

	// Stdout and Stderr retain the full captured streams for postmortem
	// inspection even when parsing recovered nothing.
	Stdout string
	Stderr string

	ExitCode int

	// Unparsed is the out-of-band buffer of structured-dialect lines that
	// failed to parse as well-formed records. Parsing recovers locally from
	// such lines; their raw text lands here instead of aborting the parse.
	Unparsed string

	// ErrorCount and WarningCount tally tree nodes by their own severity,
	// including nested children: a warning nested inside an error counts
	// toward WarningCount, not the parent's severity.
	ErrorCount   int
	WarningCount int
}

// NewResult combines the exit code and the parsed diagnostic sequence into an
// aggregated Result, computing the success verdict and severity counts in a
// single flattening traversal of the message tree.
func NewResult(messages []Message, exitCode int, stdout, stderr string) *Result {
	r := &Result{
		Messages: messages,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
	}
	for i := range messages {
		messages[i].Walk(func(m *Message) {
			switch m.Severity {
			case SeverityError:
				r.ErrorCount++
			case SeverityWarning:
				r.WarningCount++
			}
		})
	}
	r.Succeeded = exitCode == 0 && r.ErrorCount == 0
	return r
}

// CountBySeverity returns the number of tree nodes (top-level plus nested)
// with the given severity.
func (r *Result) CountBySeverity(sev Severity) int {
	count := 0
	for i := range r.Messages {
		r.Messages[i].Walk(func(m *Message) {
			if m.Severity == sev {
				count++
			}
		})
	}
	return count
}

// MessagesBySeverity returns top-level messages with the given severity,
// preserving emission order.
func (r *Result) MessagesBySeverity(sev Severity) []Message {
	var out []Message
	for _, m := range r.Messages {
		if m.Severity == sev {
			out = append(out, m)
		}
	}
	return out
}
