package cargo

import (
	"reflect"
	"testing"
)

func TestArgv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      Config
		expected []string
	}{
		{
			name:     "zero config",
			cfg:      Config{},
			expected: []string{"cargo", "build", "--message-format", "json"},
		},
		{
			name: "release build",
			cfg:  Config{Profile: ProfileRelease},
			expected: []string{
				"cargo", "build", "--release", "--message-format", "json",
			},
		},
		{
			name: "nightly clippy",
			cfg:  Config{Channel: ChannelNightly, Lint: true},
			expected: []string{
				"cargo", "+nightly", "clippy", "--message-format", "json",
			},
		},
		{
			name: "manifest path and target",
			cfg: Config{
				ManifestPath: "../other/Cargo.toml",
				TargetTriple: "x86_64-pc-windows-gnu",
			},
			expected: []string{
				"cargo", "build",
				"--manifest-path", "../other/Cargo.toml",
				"--target", "x86_64-pc-windows-gnu",
				"--message-format", "json",
			},
		},
		{
			name: "features sorted and joined",
			cfg:  Config{Features: []string{"serde", "async", "blocking"}},
			expected: []string{
				"cargo", "build",
				"--features", "async,blocking,serde",
				"--message-format", "json",
			},
		},
		{
			name: "feature flags",
			cfg:  Config{AllFeatures: true, NoDefaultFeatures: true},
			expected: []string{
				"cargo", "build",
				"--all-features", "--no-default-features",
				"--message-format", "json",
			},
		},
		{
			name: "package wins over workspace",
			cfg:  Config{Package: "core", Workspace: true},
			expected: []string{
				"cargo", "build", "--package", "core", "--message-format", "json",
			},
		},
		{
			name: "workspace alone",
			cfg:  Config{Workspace: true},
			expected: []string{
				"cargo", "build", "--workspace", "--message-format", "json",
			},
		},
		{
			name: "human format with extra args",
			cfg: Config{
				MessageFormat: FormatHuman,
				ExtraArgs:     []string{"--locked", "--offline"},
			},
			expected: []string{
				"cargo", "build", "--message-format", "human",
				"--locked", "--offline",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.cfg.Argv()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Argv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestArgvDeterministic(t *testing.T) {
	t.Parallel()

	cfg := Config{
		TargetTriple: "aarch64-apple-darwin",
		Profile:      ProfileRelease,
		Channel:      ChannelNightly,
		Features:     []string{"b", "a", "c"},
		Package:      "core",
		Lint:         true,
		ExtraArgs:    []string{"--locked"},
	}

	first := cfg.Argv()
	for i := 0; i < 10; i++ {
		if got := cfg.Argv(); !reflect.DeepEqual(got, first) {
			t.Fatalf("Argv() not deterministic: call %d = %v, first = %v", i, got, first)
		}
	}
}

func TestArgvDoesNotMutateFeatures(t *testing.T) {
	t.Parallel()

	cfg := Config{Features: []string{"z", "a"}}
	cfg.Argv()
	if !reflect.DeepEqual(cfg.Features, []string{"z", "a"}) {
		t.Errorf("Argv() mutated Features: %v", cfg.Features)
	}
}

func TestSubcommand(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	if got := cfg.Subcommand(); got != "build" {
		t.Errorf("Subcommand() = %q, want %q", got, "build")
	}
	cfg.Lint = true
	if got := cfg.Subcommand(); got != "clippy" {
		t.Errorf("Subcommand() = %q, want %q", got, "clippy")
	}
}

func TestEffectiveFormat(t *testing.T) {
	t.Parallel()

	cfg := Config{}
	if got := cfg.EffectiveFormat(); got != FormatJSON {
		t.Errorf("EffectiveFormat() = %q, want %q", got, FormatJSON)
	}
	cfg.MessageFormat = FormatHuman
	if got := cfg.EffectiveFormat(); got != FormatHuman {
		t.Errorf("EffectiveFormat() = %q, want %q", got, FormatHuman)
	}
}
