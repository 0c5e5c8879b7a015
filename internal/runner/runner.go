// Package runner launches the external toolchain process and drains its
// output streams concurrently while it runs.
package runner

import (
	"bufio"
	"context"
	"io"
	"os/exec"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	orcherrors "github.com/openztcc/cargo-orchestrator/internal/errors"
)

// waitDelay bounds how long Wait blocks on stray pipe readers after the
// process group has been killed on cancellation.
const waitDelay = 5 * time.Second

// LineSink receives one complete output line (without its line terminator)
// as soon as it is read, while the process is still running. Stdout and
// stderr sinks run on independent goroutines; a single sink is never called
// concurrently.
type LineSink func(line string)

// Options configures a single process run.
type Options struct {
	// Dir is the working directory. Empty means the caller's current directory.
	Dir string

	// Env entries are appended to the inherited process environment.
	Env []string

	// OnStdoutLine and OnStderrLine stream complete lines in real time.
	// Either may be nil.
	OnStdoutLine LineSink
	OnStderrLine LineSink

	// Command names the toolchain subcommand for error reporting.
	Command string
}

// Outcome captures everything a finished process left behind. Both raw
// streams are retained in full, including any incomplete trailing line.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string

	// StdoutTail and StderrTail hold an incomplete trailing line (process
	// terminated mid-write). Never delivered to the line sinks.
	StdoutTail string
	StderrTail string
}

// Run launches argv in its own process group, drains stdout and stderr
// concurrently (a process filling one pipe while we block on the other must
// not hang), waits for termination, and returns the outcome.
//
// A process that could not be started at all is reported as a launch error,
// distinct from a nonzero exit code. Cancellation kills the whole process
// group (cargo spawns rustc subprocesses that must not be orphaned) and is
// reported as a cancellation error, never as an Outcome.
func Run(ctx context.Context, argv []string, opts Options) (*Outcome, error) {
	if len(argv) == 0 {
		return nil, orcherrors.New("empty argument vector")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return killProcessGroup(cmd)
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, orcherrors.Launch(opts.Command, err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, orcherrors.Launch(opts.Command, err)
	}

	if err := cmd.Start(); err != nil {
		return nil, orcherrors.Launch(opts.Command, err)
	}

	var outcome Outcome
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		outcome.Stdout, outcome.StdoutTail, err = drainLines(stdoutPipe, opts.OnStdoutLine)
		return err
	})
	g.Go(func() error {
		var err error
		outcome.Stderr, outcome.StderrTail, err = drainLines(stderrPipe, opts.OnStderrLine)
		return err
	})
	drainErr := g.Wait()

	waitErr := cmd.Wait()
	if ctx.Err() != nil {
		return nil, orcherrors.Cancelled(opts.Command, ctx.Err())
	}
	if drainErr != nil {
		return nil, orcherrors.Wrap(drainErr, "reading toolchain output")
	}
	if waitErr != nil {
		exitErr, ok := waitErr.(*exec.ExitError)
		if !ok {
			return nil, orcherrors.Wrap(waitErr, "waiting for toolchain process")
		}
		outcome.ExitCode = exitErr.ExitCode()
	}

	return &outcome, nil
}

// drainLines reads a stream to the end, accumulating the raw bytes and
// delivering each complete line to the sink as it arrives. The final token
// after the last newline (if any) is returned as tail, not delivered: a
// process killed mid-write leaves a truncated line that must not be
// force-parsed.
func drainLines(r io.Reader, onLine LineSink) (raw, tail string, err error) {
	var buf strings.Builder
	reader := bufio.NewReader(r)
	for {
		line, readErr := reader.ReadString('\n')
		buf.WriteString(line)
		if readErr == nil {
			if onLine != nil {
				onLine(strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"))
			}
			continue
		}
		if readErr == io.EOF {
			return buf.String(), line, nil
		}
		return buf.String(), "", readErr
	}
}
