package output

import (
	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openztcc/cargo-orchestrator/internal/diagnostics"
)

// maxListedMessages caps how many diagnostics a summary lists per severity.
const maxListedMessages = 10

// maxRawOutput caps how much raw toolchain output verbose mode echoes.
const maxRawOutput = 2000

var titleCaser = cases.Title(language.English)

// Summary prints the human-oriented build summary: verdict, counts, and the
// leading errors and warnings with their anchor locations. In quiet mode only
// the counts line is printed.
func (w *Writer) Summary(result *diagnostics.Result, subcommand, packageName string) {
	if w.quiet {
		w.Println("Errors: %d, Warnings: %d", result.ErrorCount, result.WarningCount)
		return
	}

	tool := titleCaser.String(subcommand)
	w.Println("")
	w.Println("%s", w.paint(color.New(color.Bold), "═══ Cargo "+tool+" Summary ═══"))
	if packageName != "" {
		w.Println("Package: %s", packageName)
	}
	w.Println("")

	if result.Succeeded {
		w.Println("%s", w.paint(color.New(color.FgGreen, color.Bold), "✓ "+tool+" succeeded"))
	} else {
		w.Println("%s", w.paint(color.New(color.FgRed, color.Bold), "✗ "+tool+" failed"))
	}

	w.Println("")
	w.Println("Statistics:")
	w.Println("  Errors:   %d", result.ErrorCount)
	w.Println("  Warnings: %d", result.WarningCount)
	if w.verbose {
		w.Println("  Notes:    %d", result.CountBySeverity(diagnostics.SeverityNote))
		w.Println("  Helps:    %d", result.CountBySeverity(diagnostics.SeverityHelp))
	}

	w.listMessages(result, diagnostics.SeverityError, "Errors", color.New(color.FgRed, color.Bold))
	w.listMessages(result, diagnostics.SeverityWarning, "Warnings", color.New(color.FgYellow, color.Bold))

	if w.verbose && result.Stderr != "" {
		w.Println("")
		w.Println("%s", w.paint(color.New(color.Bold), "Full cargo output:"))
		raw := result.Stderr
		if len(raw) > maxRawOutput {
			raw = raw[:maxRawOutput] + "\n... (truncated)"
		}
		w.Println("%s", raw)
	}
}

// listMessages prints the first maxListedMessages top-level diagnostics of
// one severity, each with its code and primary location when available.
func (w *Writer) listMessages(result *diagnostics.Result, sev diagnostics.Severity, heading string, c *color.Color) {
	messages := result.MessagesBySeverity(sev)
	if len(messages) == 0 {
		return
	}

	w.Println("")
	w.Println("%s", w.paint(c, heading+":"))
	for i, msg := range messages {
		if i == maxListedMessages {
			w.Println("  ... and %d more", len(messages)-maxListedMessages)
			break
		}
		code := msg.Code
		if code == "" {
			code = "-"
		}
		w.Println("  %d. [%s] %s", i+1, code, msg.Text)
		if span := msg.PrimarySpan(); span != nil {
			w.Println("     → %s:%d:%d", span.FilePath, span.LineStart, span.ColumnStart)
		}
	}
}
