// Package orchestrator composes the invocation builder, process runner,
// output parser, and result aggregation into the public build/lint entry
// points. Data flows strictly downstream: configuration to argv to process
// to line stream to diagnostics to result.
package orchestrator

import (
	"context"

	"github.com/openztcc/cargo-orchestrator/internal/cargo"
	"github.com/openztcc/cargo-orchestrator/internal/diagnostics"
	orcherrors "github.com/openztcc/cargo-orchestrator/internal/errors"
	"github.com/openztcc/cargo-orchestrator/internal/parser"
	"github.com/openztcc/cargo-orchestrator/internal/runner"
)

// Orchestrator runs cargo invocations and aggregates their diagnostics.
// Invocations share no mutable state; one Orchestrator may run any number of
// them in parallel. Concurrency limits are the caller's policy.
type Orchestrator struct {
	registry *parser.Registry
}

// New creates an orchestrator with the built-in dialect parsers.
func New() *Orchestrator {
	return &Orchestrator{registry: parser.NewRegistry()}
}

// Build runs cargo build (or clippy when cfg.Lint is set) and returns the
// aggregated result once the process has exited and both streams are fully
// drained. Diagnostics are parsed incrementally while the process runs.
//
// Launch failures and cancellation return an error and no result; a build
// that merely failed returns a result with Succeeded=false.
func (o *Orchestrator) Build(ctx context.Context, cfg *cargo.Config) (*diagnostics.Result, error) {
	format := cfg.EffectiveFormat()
	p := o.registry.New(string(format))
	if p == nil {
		return nil, orcherrors.Configf("unsupported message format: %q", format)
	}

	opts := runner.Options{
		Dir:     cfg.WorkDir(),
		Command: cfg.Subcommand(),
	}
	// The JSON dialect arrives on stdout; cargo's human-readable diagnostics
	// go to stderr. Only the stream carrying diagnostics feeds the parser;
	// both are captured raw either way.
	if format == cargo.FormatJSON {
		opts.OnStdoutLine = p.ParseLine
	} else {
		opts.OnStderrLine = p.ParseLine
	}

	outcome, err := runner.Run(ctx, cfg.Argv(), opts)
	if err != nil {
		return nil, err
	}

	if format == cargo.FormatJSON {
		p.Flush(outcome.StdoutTail)
	} else {
		p.Flush(outcome.StderrTail)
	}

	result := diagnostics.NewResult(p.Messages(), outcome.ExitCode, outcome.Stdout, outcome.Stderr)
	result.Unparsed = p.Unparsed()
	return result, nil
}

// Clippy runs cargo clippy with the given configuration. Convenience wrapper
// that forces lint mode without mutating the caller's config.
func (o *Orchestrator) Clippy(ctx context.Context, cfg *cargo.Config) (*diagnostics.Result, error) {
	lintCfg := *cfg
	lintCfg.Lint = true
	return o.Build(ctx, &lintCfg)
}
