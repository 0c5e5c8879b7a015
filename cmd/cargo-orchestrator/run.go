package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openztcc/cargo-orchestrator/internal/cargo"
	"github.com/openztcc/cargo-orchestrator/internal/config"
	orcherrors "github.com/openztcc/cargo-orchestrator/internal/errors"
	"github.com/openztcc/cargo-orchestrator/internal/manifest"
	"github.com/openztcc/cargo-orchestrator/internal/orchestrator"
	"github.com/openztcc/cargo-orchestrator/internal/output"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Run cargo build and summarize its diagnostics",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCargo(false))
	},
}

var clippyCmd = &cobra.Command{
	Use:   "clippy",
	Short: "Run cargo clippy and summarize its diagnostics",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runCargo(true))
	},
}

// runCargo executes one cargo invocation and returns the process exit code:
// the toolchain's own exit code when the invocation completed, or an error
// exit code when it could not run at all.
func runCargo(lint bool) int {
	w := output.New()
	w.SetQuiet(*flagQuiet)
	w.SetVerbose(*flagVerbose)

	cfg := buildConfig(lint)

	if !*flagNoConfig {
		defaults, err := config.LoadIfPresent(cfg.RootDir)
		if err != nil {
			w.ErrorPrefix("%v", err)
			return orcherrors.ExitConfigError
		}
		defaults.ApplyTo(cfg)
	}

	packageName := inspectManifest(w, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *flagTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *flagTimeout)
		defer cancel()
	}

	result, err := orchestrator.New().Build(ctx, cfg)
	if err != nil {
		w.ErrorPrefix("%v", err)
		return orcherrors.GetExitCode(err)
	}

	switch *flagFormat {
	case "json":
		if err := w.JSON(result); err != nil {
			w.ErrorPrefix("%v", err)
			return orcherrors.ExitRuntimeError
		}
	case "human":
		// Raw passthrough of cargo's own rendering.
		w.Println("%s", result.Stderr)
	default:
		w.Summary(result, cfg.Subcommand(), packageName)
	}

	return result.ExitCode
}

// buildConfig assembles the invocation configuration from CLI flags.
func buildConfig(lint bool) *cargo.Config {
	cfg := &cargo.Config{
		RootDir:           *flagRootDir,
		ManifestPath:      *flagManifestPath,
		TargetTriple:      *flagTarget,
		Features:          *flagFeatures,
		AllFeatures:       *flagAllFeatures,
		NoDefaultFeatures: *flagNoDefaultFeatures,
		Package:           *flagPackage,
		Workspace:         *flagWorkspace,
		Lint:              lint,
		ExtraArgs:         *flagExtraArgs,
	}
	if *flagRelease {
		cfg.Profile = cargo.ProfileRelease
	}
	if *flagNightly {
		cfg.Channel = cargo.ChannelNightly
	}
	// The human presentation format shows cargo's own rendering, so it is the
	// only one that invokes cargo in the human dialect.
	if *flagFormat == "human" {
		cfg.MessageFormat = cargo.FormatHuman
	} else {
		cfg.MessageFormat = cargo.FormatJSON
	}
	return cfg
}

// inspectManifest locates Cargo.toml for summary labeling and sanity-checks a
// --package selection against workspace members. Best effort: a missing or
// unreadable manifest only skips the label, cargo remains the authority.
func inspectManifest(w *output.Writer, cfg *cargo.Config) string {
	startDir := cfg.RootDir
	if startDir == "" {
		startDir = "."
	}

	manifestPath := cfg.ManifestPath
	if manifestPath == "" {
		found, err := manifest.Discover(startDir)
		if err != nil {
			return ""
		}
		manifestPath = found
	}

	m, err := manifest.Load(manifestPath)
	if err != nil {
		w.Warning("%v", err)
		return ""
	}

	if cfg.Package != "" && m.IsWorkspace() && !m.HasMember(cfg.Package) {
		w.Warning("package %q is not listed among workspace members in %s", cfg.Package, manifestPath)
	}

	return m.Name()
}
