// Package orchestrator provides public constants for external tools
// integrating with the cargo-orchestrator CLI.
package orchestrator

// Exit codes returned by the cargo-orchestrator CLI.
// These constants allow external tools (CI integrations, wrappers) to check
// exit codes symbolically rather than using magic numbers. On a completed
// invocation the CLI exits with the toolchain's own exit code instead.
const (
	// ExitSuccess indicates the build or lint run succeeded.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (build failed, run cancelled).
	ExitFailure = 1

	// ExitConfigError indicates a configuration error (invalid config file,
	// bad flag combination, unknown package).
	ExitConfigError = 2

	// ExitLaunchError indicates the cargo process could not be started
	// (missing binary, permission denied, bad working directory).
	ExitLaunchError = 3
)
