// Package parser provides diagnostic output parsing for cargo's two output
// dialects: the line-delimited JSON dialect and the free-form human dialect.
//
// The dialect is selected by the message format used for the invocation and
// never auto-detected mid-stream. The two parsers recover differently from
// bad input (a malformed JSON line is skipped and buffered, an unrecognized
// human line is folded into the open diagnostic's rendered text), so they are
// kept as independent implementations behind one interface rather than a
// shared state machine.
//
// Fidelity is asymmetric by design: the JSON dialect recovers the full
// diagnostic tree (nested children, multiple spans, suggested replacements);
// the human dialect is a best-effort fallback that recovers one top-level
// diagnostic per header line with at most one primary span.
package parser

import (
	"strings"

	"github.com/openztcc/cargo-orchestrator/internal/diagnostics"
)

// Parser consumes one stream of toolchain output line by line and
// incrementally produces normalized diagnostics. Implementations keep at most
// the current open diagnostic as mutable state; previously emitted messages
// are never mutated.
type Parser interface {
	// Name returns the parser name.
	Name() string

	// ParseLine consumes one complete line (without its trailing newline).
	ParseLine(line string)

	// Flush finalizes parsing once the stream has closed. partial holds an
	// incomplete trailing line if the process died mid-write; it is retained
	// as raw text, never force-parsed.
	Flush(partial string)

	// Messages returns all diagnostics emitted so far, in emission order.
	Messages() []diagnostics.Message

	// Unparsed returns raw text that failed to parse as a well-formed record,
	// retained out-of-band for manual inspection.
	Unparsed() string
}

// Registry maps message format identifiers to parser constructors. Parsers
// carry per-invocation state, so the registry hands out fresh instances.
type Registry struct {
	factories map[string]func() Parser
}

// NewRegistry creates a registry with both built-in dialect parsers.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]func() Parser)}
	r.factories["json"] = func() Parser { return NewJSONParser() }
	r.factories["human"] = func() Parser { return NewHumanParser() }
	return r
}

// New returns a fresh parser for the given message format identifier.
// Returns nil if no parser is registered for the format.
func (r *Registry) New(format string) Parser {
	factory := r.factories[strings.ToLower(format)]
	if factory == nil {
		return nil
	}
	return factory()
}

// Register adds a custom parser factory for a message format.
func (r *Registry) Register(format string, factory func() Parser) {
	r.factories[strings.ToLower(format)] = factory
}

// ParseAll feeds a fully captured output through a parser and returns the
// emitted diagnostics. A final line without a trailing newline is treated as
// an incomplete trailing line.
func ParseAll(p Parser, output string) []diagnostics.Message {
	rest := output
	for {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			break
		}
		p.ParseLine(strings.TrimSuffix(rest[:idx], "\r"))
		rest = rest[idx+1:]
	}
	p.Flush(rest)
	return p.Messages()
}
