package cargo

import (
	"sort"
	"strings"
)

// Argv converts the configuration into the argument vector for the cargo
// process. Construction is pure and deterministic: no I/O, no environment
// reads, and identical configurations always yield identical vectors.
//
// Flags are assembled in a fixed order:
//
//	cargo [+nightly] build|clippy
//	  [--manifest-path P] [--target T] [--release]
//	  [--features a,b] [--all-features] [--no-default-features]
//	  [--package P | --workspace]
//	  --message-format json|human
//	  extra args...
func (c *Config) Argv() []string {
	argv := []string{"cargo"}
	if c.Channel == ChannelNightly {
		argv = append(argv, "+nightly")
	}
	argv = append(argv, c.Subcommand())

	if c.ManifestPath != "" {
		argv = append(argv, "--manifest-path", c.ManifestPath)
	}
	if c.TargetTriple != "" {
		argv = append(argv, "--target", c.TargetTriple)
	}
	if c.Profile == ProfileRelease {
		argv = append(argv, "--release")
	}

	if len(c.Features) > 0 {
		// Features form a set; sort a copy so callers passing the same set in
		// a different order still get a byte-identical vector.
		features := make([]string, len(c.Features))
		copy(features, c.Features)
		sort.Strings(features)
		argv = append(argv, "--features", strings.Join(features, ","))
	}
	if c.AllFeatures {
		argv = append(argv, "--all-features")
	}
	if c.NoDefaultFeatures {
		argv = append(argv, "--no-default-features")
	}

	if c.Package != "" {
		argv = append(argv, "--package", c.Package)
	} else if c.Workspace {
		argv = append(argv, "--workspace")
	}

	argv = append(argv, "--message-format", string(c.EffectiveFormat()))
	argv = append(argv, c.ExtraArgs...)

	return argv
}
