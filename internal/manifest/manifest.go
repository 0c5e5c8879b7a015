// Package manifest provides Cargo.toml discovery and introspection.
//
// The invocation builder never needs the manifest (cargo finds it on its
// own), but the CLI uses it to label summaries with the package name and to
// check --package selections against workspace members before spawning a
// doomed build.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the cargo manifest file name.
const FileName = "Cargo.toml"

// ErrNoManifest is returned when no Cargo.toml is found walking up from the
// start directory.
var ErrNoManifest = errors.New("Cargo.toml not found (or in any parent up to the root)")

// Manifest is the subset of Cargo.toml this tool cares about.
type Manifest struct {
	Package   *Package   `toml:"package"`
	Workspace *Workspace `toml:"workspace"`
}

// Package is the [package] table.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// Workspace is the [workspace] table.
type Workspace struct {
	Members []string `toml:"members"`
}

// Load reads and parses a Cargo.toml file.
func Load(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}

// Discover walks up from startDir until it finds a Cargo.toml and returns its
// path. Returns ErrNoManifest when the filesystem root is reached first.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		manifestPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", ErrNoManifest
		}
		dir = parent
	}
}

// Name returns the package name, or empty for a virtual workspace manifest.
func (m *Manifest) Name() string {
	if m.Package == nil {
		return ""
	}
	return m.Package.Name
}

// IsWorkspace reports whether the manifest declares a workspace.
func (m *Manifest) IsWorkspace() bool {
	return m.Workspace != nil
}

// HasMember reports whether the given directory name matches one of the
// workspace member entries. Entries may be glob patterns ("crates/*").
func (m *Manifest) HasMember(name string) bool {
	if m.Workspace == nil {
		return false
	}
	for _, member := range m.Workspace.Members {
		if member == name {
			return true
		}
		if ok, err := path.Match(member, name); err == nil && ok {
			return true
		}
	}
	return false
}
