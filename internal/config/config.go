// Package config loads the optional orchestrator defaults file.
//
// The file supplies default invocation options (profile, channel, features,
// extra arguments); explicit CLI flags always win. Missing file is not an
// error; the zero configuration is fully usable.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/openztcc/cargo-orchestrator/internal/cargo"
)

// FileName is the default name of the orchestrator configuration file,
// looked up in the invocation's working directory.
const FileName = ".cargo-orchestrator.yml"

// File represents the orchestrator defaults file.
type File struct {
	Profile           string   `yaml:"profile,omitempty"`
	Channel           string   `yaml:"channel,omitempty"`
	Target            string   `yaml:"target,omitempty"`
	Features          []string `yaml:"features,omitempty"`
	AllFeatures       bool     `yaml:"all_features,omitempty"`
	NoDefaultFeatures bool     `yaml:"no_default_features,omitempty"`
	Package           string   `yaml:"package,omitempty"`
	Workspace         bool     `yaml:"workspace,omitempty"`
	MessageFormat     string   `yaml:"message_format,omitempty"`
	ExtraArgs         []string `yaml:"extra_args,omitempty"`
}

// Load reads, validates, and parses a defaults file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &f, nil
}

// LoadIfPresent loads the defaults file from dir, returning an empty File
// when none exists.
func LoadIfPresent(dir string) (*File, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		return &File{}, nil
	}
	return Load(path)
}

// ApplyTo fills unset fields of the invocation config with file defaults.
// Fields the caller already set (via CLI flags) are left untouched.
func (f *File) ApplyTo(cfg *cargo.Config) {
	if cfg.Profile == "" && f.Profile != "" {
		cfg.Profile = cargo.Profile(f.Profile)
	}
	if cfg.Channel == "" && f.Channel != "" {
		cfg.Channel = cargo.Channel(f.Channel)
	}
	if cfg.TargetTriple == "" {
		cfg.TargetTriple = f.Target
	}
	if len(cfg.Features) == 0 {
		cfg.Features = append([]string(nil), f.Features...)
	}
	if !cfg.AllFeatures {
		cfg.AllFeatures = f.AllFeatures
	}
	if !cfg.NoDefaultFeatures {
		cfg.NoDefaultFeatures = f.NoDefaultFeatures
	}
	if cfg.Package == "" {
		cfg.Package = f.Package
	}
	if !cfg.Workspace {
		cfg.Workspace = f.Workspace
	}
	if cfg.MessageFormat == "" && f.MessageFormat != "" {
		cfg.MessageFormat = cargo.MessageFormat(f.MessageFormat)
	}
	if len(cfg.ExtraArgs) == 0 {
		cfg.ExtraArgs = append([]string(nil), f.ExtraArgs...)
	}
}
