// Package main implements the cargo-orchestrator CLI.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/openztcc/cargo-orchestrator/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cargo-orchestrator",
	Short: "Run cargo build and analyze errors/warnings",
	Long: `cargo-orchestrator wraps cargo build and cargo clippy, parses their
diagnostic output, and reports a structured summary of errors and warnings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Persistent flag values, bound at init and read by runCargo.
var (
	flagRootDir           *string
	flagManifestPath      *string
	flagTarget            *string
	flagRelease           *bool
	flagNightly           *bool
	flagFeatures          *[]string
	flagAllFeatures       *bool
	flagNoDefaultFeatures *bool
	flagPackage           *string
	flagWorkspace         *bool
	flagFormat            *string
	flagVerbose           *bool
	flagQuiet             *bool
	flagTimeout           *time.Duration
	flagNoConfig          *bool
	flagExtraArgs         *[]string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flagRootDir = flags.String("root-dir", "", "directory for cargo to run in (default: current directory)")
	flagManifestPath = flags.String("manifest-path", "", "path to Cargo.toml")
	flagTarget = flags.String("target", "", "build for the target triple")
	flagRelease = flags.Bool("release", false, "build in release mode")
	flagNightly = flags.Bool("nightly", false, "use the nightly toolchain")
	flagFeatures = flags.StringSlice("features", nil, "comma-separated list of features to activate")
	flagAllFeatures = flags.Bool("all-features", false, "activate all available features")
	flagNoDefaultFeatures = flags.Bool("no-default-features", false, "do not activate default features")
	flagPackage = flags.StringP("package", "p", "", "package to build")
	flagWorkspace = flags.Bool("workspace", false, "build all packages in the workspace")
	flagFormat = flags.String("format", "summary", "output format (summary|json|human)")
	flagVerbose = flags.BoolP("verbose", "v", false, "show detailed output")
	flagQuiet = flags.BoolP("quiet", "q", false, "only show error/warning counts")
	flagTimeout = flags.Duration("timeout", 0, "abort the invocation after this duration (0 = no timeout)")
	flagNoConfig = flags.Bool("no-config", false, "ignore the .cargo-orchestrator.yml defaults file")
	flagExtraArgs = flags.StringSlice("extra-arg", nil, "extra argument passed through to cargo (repeatable)")
}

func main() {
	// Optional .env in the invocation directory; missing file is fine.
	_ = godotenv.Load()

	rootCmd.Version = version.Version
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(clippyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
