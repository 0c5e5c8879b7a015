package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/openztcc/cargo-orchestrator/internal/diagnostics"
)

// Static regexes for human-readable cargo output, compiled once at package init.
//
// A header line starts a new top-level diagnostic:
//
//	error[E0425]: cannot find value `x` in this scope
//	warning: unused variable: `x`
//
// A location line anchors the open diagnostic to a source position:
//
//	 --> src/main.rs:10:5
var (
	humanHeaderRegex   = regexp.MustCompile(`^(error|warning|note|help|info)(?:\[([A-Za-z0-9]+)\])?: (.*)$`)
	humanLocationRegex = regexp.MustCompile(`^\s*--> (.+):(\d+):(\d+)\s*$`)
)

// HumanParser parses cargo's default free-form text output. This is strictly
// a lower-fidelity fallback: it recognizes one top-level diagnostic per
// header line and at most one primary span per diagnostic, and cannot recover
// nested children or secondary spans. The JSON dialect is the reliable path.
type HumanParser struct {
	messages []diagnostics.Message

	// Current open diagnostic; nil until the first header line is seen.
	// Lines matching no pattern before that are dropped (cargo status lines
	// like "Compiling foo v0.1.0" precede the first diagnostic).
	current       *diagnostics.Message
	renderedLines []string
}

// NewHumanParser creates a parser for the human message format.
func NewHumanParser() *HumanParser {
	return &HumanParser{}
}

// Name returns the parser name.
func (p *HumanParser) Name() string {
	return "human"
}

// ParseLine consumes one line of human-readable output. ANSI escapes are
// stripped before pattern matching; rendered text keeps the line verbatim.
func (p *HumanParser) ParseLine(line string) {
	plain := stripANSI(line)

	if match := humanHeaderRegex.FindStringSubmatch(plain); match != nil {
		p.closeCurrent()
		severity, _ := diagnostics.ParseSeverity(match[1])
		p.current = &diagnostics.Message{
			Severity: severity,
			Text:     match[3],
			Code:     match[2],
		}
		p.renderedLines = []string{line}
		return
	}

	if p.current == nil {
		return
	}
	p.renderedLines = append(p.renderedLines, line)

	// Only the first location line anchors the diagnostic; later ones belong
	// to nested notes this dialect cannot represent.
	if len(p.current.Spans) > 0 {
		return
	}
	if match := humanLocationRegex.FindStringSubmatch(plain); match != nil {
		lineNum, _ := strconv.Atoi(match[2])
		colNum, _ := strconv.Atoi(match[3])
		p.current.Spans = append(p.current.Spans, diagnostics.Span{
			FilePath:    match[1],
			LineStart:   lineNum,
			LineEnd:     lineNum,
			ColumnStart: colNum,
			ColumnEnd:   colNum,
			IsPrimary:   true,
		})
	}
}

// Flush closes the open diagnostic. An incomplete trailing line is not
// appended to its rendered text; the raw stream already retains it.
func (p *HumanParser) Flush(partial string) {
	_ = partial
	p.closeCurrent()
}

// Messages returns all diagnostics emitted so far.
func (p *HumanParser) Messages() []diagnostics.Message {
	return p.messages
}

// Unparsed always returns empty for the human dialect: lines matching no
// pattern are folded into the open diagnostic's rendered text or dropped.
func (p *HumanParser) Unparsed() string {
	return ""
}

func (p *HumanParser) closeCurrent() {
	if p.current == nil {
		return
	}
	p.current.Rendered = strings.Join(p.renderedLines, "\n")
	p.messages = append(p.messages, *p.current)
	p.current = nil
	p.renderedLines = nil
}
