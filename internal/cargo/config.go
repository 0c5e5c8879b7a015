// Package cargo builds deterministic cargo invocations from a configuration.
package cargo

// Profile selects the cargo build profile.
type Profile string

const (
	ProfileDebug   Profile = "debug"
	ProfileRelease Profile = "release"
)

// Channel selects the toolchain channel cargo runs with.
type Channel string

const (
	ChannelStable  Channel = "stable"
	ChannelNightly Channel = "nightly"
)

// MessageFormat selects the output dialect cargo is asked to emit. The parser
// for the invocation is chosen by this value, never detected from the stream.
type MessageFormat string

const (
	// FormatJSON requests one self-contained JSON record per line on stdout.
	// This is the default: it is the only mode with full diagnostic fidelity.
	FormatJSON MessageFormat = "json"
	// FormatHuman is cargo's default terminal-oriented text on stderr.
	FormatHuman MessageFormat = "human"
)

// Config holds every option that shapes a cargo invocation. The zero value
// is usable: debug profile, stable channel, JSON message format, build
// subcommand, caller's working directory.
//
// Mutually exclusive options (AllFeatures vs Features/NoDefaultFeatures) are
// the caller's responsibility; the builder only assembles flags in a fixed
// order so invocations stay diffable across runs.
type Config struct {
	// RootDir is the directory cargo runs in. Empty means the caller's
	// current directory.
	RootDir string

	// ManifestPath points at Cargo.toml. Empty lets cargo search for it.
	ManifestPath string

	// TargetTriple builds for the given target (e.g., x86_64-unknown-linux-gnu).
	TargetTriple string

	Profile Profile
	Channel Channel

	// Features to enable. Treated as a set: sorted before flag assembly.
	Features          []string
	AllFeatures       bool
	NoDefaultFeatures bool

	// Package selects one workspace package; Workspace selects all of them.
	// Package wins when both are set.
	Package   string
	Workspace bool

	// Lint runs cargo clippy instead of cargo build.
	Lint bool

	MessageFormat MessageFormat

	// ExtraArgs are appended verbatim after all assembled flags.
	ExtraArgs []string
}

// Subcommand returns the cargo subcommand this configuration invokes.
func (c *Config) Subcommand() string {
	if c.Lint {
		return "clippy"
	}
	return "build"
}

// EffectiveFormat returns the message format, defaulting to JSON.
func (c *Config) EffectiveFormat() MessageFormat {
	if c.MessageFormat == "" {
		return FormatJSON
	}
	return c.MessageFormat
}

// WorkDir returns the directory to launch cargo in. Empty means the caller's
// current directory.
func (c *Config) WorkDir() string {
	return c.RootDir
}
