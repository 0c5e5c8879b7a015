package output

import (
	"encoding/json"

	"github.com/openztcc/cargo-orchestrator/internal/diagnostics"
)

// jsonSummary is the machine-readable CLI output shape. Each top-level
// diagnostic is flattened to its primary location; the full tree stays
// available through the raw cargo stream.
type jsonSummary struct {
	Success      bool          `json:"success"`
	ExitCode     int           `json:"exit_code"`
	ErrorCount   int           `json:"error_count"`
	WarningCount int           `json:"warning_count"`
	Messages     []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// JSON prints the machine-readable summary of a result to stdout.
func (w *Writer) JSON(result *diagnostics.Result) error {
	summary := jsonSummary{
		Success:      result.Succeeded,
		ExitCode:     result.ExitCode,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
		Messages:     make([]jsonMessage, 0, len(result.Messages)),
	}
	for i := range result.Messages {
		msg := &result.Messages[i]
		jm := jsonMessage{
			Level:   msg.Severity.String(),
			Message: msg.Text,
			Code:    msg.Code,
		}
		if span := msg.PrimarySpan(); span != nil {
			jm.File = span.FilePath
			jm.Line = span.LineStart
			jm.Column = span.ColumnStart
		}
		summary.Messages = append(summary.Messages, jm)
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	w.Println("%s", string(data))
	return nil
}
