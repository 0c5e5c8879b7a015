package parser

import (
	"encoding/json"
	"strings"

	"github.com/openztcc/cargo-orchestrator/internal/diagnostics"
)

// reasonCompilerMessage is the record kind carrying a diagnostic payload.
// Other kinds (compiler-artifact, build-script-executed, build-finished, ...)
// are progress records and are dropped without error.
const reasonCompilerMessage = "compiler-message"

// jsonRecord is one line of `--message-format json` output, discriminated by
// the reason field.
type jsonRecord struct {
	Reason  string          `json:"reason"`
	Message *jsonDiagnostic `json:"message"`
}

type jsonDiagnostic struct {
	Message  string           `json:"message"`
	Level    string           `json:"level"`
	Code     *jsonCode        `json:"code"`
	Spans    []jsonSpan       `json:"spans"`
	Children []jsonDiagnostic `json:"children"`
	Rendered *string          `json:"rendered"`
}

type jsonCode struct {
	Code string `json:"code"`
}

type jsonSpan struct {
	FileName             string  `json:"file_name"`
	LineStart            int     `json:"line_start"`
	LineEnd              int     `json:"line_end"`
	ColumnStart          int     `json:"column_start"`
	ColumnEnd            int     `json:"column_end"`
	IsPrimary            bool    `json:"is_primary"`
	Label                *string `json:"label"`
	SuggestedReplacement *string `json:"suggested_replacement"`
}

// JSONParser parses cargo's line-delimited JSON output. Every line is a
// self-contained record; lines are parsed independently, so a malformed line
// is skipped (buffered as unparsed) without aborting the rest of the stream.
type JSONParser struct {
	messages []diagnostics.Message
	unparsed strings.Builder
}

// NewJSONParser creates a parser for the JSON message format.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Name returns the parser name.
func (p *JSONParser) Name() string {
	return "json"
}

// ParseLine parses one record line. Records that are not valid JSON or lack
// the reason discriminant go to the unparsed buffer; records with a reason
// other than compiler-message are dropped silently.
func (p *JSONParser) ParseLine(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}

	var record jsonRecord
	if err := json.Unmarshal([]byte(line), &record); err != nil || record.Reason == "" {
		p.unparsed.WriteString(line)
		p.unparsed.WriteByte('\n')
		return
	}

	if record.Reason != reasonCompilerMessage || record.Message == nil {
		return
	}

	if msg, ok := convertDiagnostic(record.Message); ok {
		p.messages = append(p.messages, msg)
	}
}

// Flush retains an incomplete trailing line as raw text only.
func (p *JSONParser) Flush(partial string) {
	if partial != "" {
		p.unparsed.WriteString(partial)
	}
}

// Messages returns all diagnostics emitted so far.
func (p *JSONParser) Messages() []diagnostics.Message {
	return p.messages
}

// Unparsed returns the raw text of lines that failed to parse.
func (p *JSONParser) Unparsed() string {
	return p.unparsed.String()
}

// convertDiagnostic maps a JSON diagnostic object to the normalized model,
// recursing into children. Diagnostics with a level outside the closed
// severity enumeration (e.g., "failure-note") are dropped.
func convertDiagnostic(d *jsonDiagnostic) (diagnostics.Message, bool) {
	severity, ok := diagnostics.ParseSeverity(d.Level)
	if !ok {
		return diagnostics.Message{}, false
	}

	msg := diagnostics.Message{
		Severity: severity,
		Text:     d.Message,
	}
	if d.Code != nil {
		msg.Code = d.Code.Code
	}
	if d.Rendered != nil {
		msg.Rendered = *d.Rendered
	}

	for i := range d.Spans {
		msg.Spans = append(msg.Spans, convertSpan(&d.Spans[i]))
	}
	for i := range d.Children {
		if child, ok := convertDiagnostic(&d.Children[i]); ok {
			msg.Children = append(msg.Children, child)
		}
	}
	return msg, true
}

func convertSpan(s *jsonSpan) diagnostics.Span {
	span := diagnostics.Span{
		FilePath:             s.FileName,
		LineStart:            s.LineStart,
		LineEnd:              s.LineEnd,
		ColumnStart:          s.ColumnStart,
		ColumnEnd:            s.ColumnEnd,
		IsPrimary:            s.IsPrimary,
		SuggestedReplacement: s.SuggestedReplacement,
	}
	if s.Label != nil {
		span.Label = *s.Label
	}
	return span
}
