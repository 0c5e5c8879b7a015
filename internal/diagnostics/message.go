// Package diagnostics defines the normalized diagnostic model produced by
// parsing cargo output: source spans, message trees, and aggregated results.
package diagnostics

// Span is a single source location reference within a diagnostic.
// Positions are 1-based; end positions are >= start positions.
// File paths may be relative to the toolchain's working directory.
type Span struct {
	FilePath    string
	LineStart   int
	LineEnd     int
	ColumnStart int
	ColumnEnd   int

	// IsPrimary marks the diagnostic's main anchor location. Cargo output has
	// been observed to omit the flag entirely; see Message.PrimarySpan.
	IsPrimary bool

	// Label is a human annotation attached to this specific location.
	// Empty when the toolchain supplied none.
	Label string

	// SuggestedReplacement is text the toolchain proposes substituting at this
	// span ("did you mean" diagnostics). Nil when no suggestion exists; an
	// empty non-nil string is a deletion suggestion and is preserved verbatim.
	SuggestedReplacement *string
}

// Message is one diagnostic reported by the toolchain. Messages form a tree
// via Children (a note explaining an error, a suggestion attached to it).
// A Message is immutable once emitted by a parser.
type Message struct {
	Severity Severity

	// Text is the primary message text, independent of any rendering.
	Text string

	// Code is a stable diagnostic identifier (error code or lint rule id).
	// Empty is valid and common for notes and help messages.
	Code string

	Spans    []Span
	Children []Message

	// Rendered is the toolchain's own pre-formatted multi-line rendering,
	// preserved verbatim when available. Used as a fallback display form.
	Rendered string
}

// PrimarySpan returns the span marked primary, or the first span by
// convention when none carries the flag. Returns nil for a diagnostic
// without locations (e.g., a summary-level note).
func (m *Message) PrimarySpan() *Span {
	for i := range m.Spans {
		if m.Spans[i].IsPrimary {
			return &m.Spans[i]
		}
	}
	if len(m.Spans) > 0 {
		return &m.Spans[0]
	}
	return nil
}

// Walk visits the message and all nested children in emission order.
func (m *Message) Walk(visit func(*Message)) {
	visit(m)
	for i := range m.Children {
		m.Children[i].Walk(visit)
	}
}

// HasError reports whether the message or any nested child is an error.
func (m *Message) HasError() bool {
	found := false
	m.Walk(func(msg *Message) {
		if msg.Severity == SeverityError {
			found = true
		}
	})
	return found
}
