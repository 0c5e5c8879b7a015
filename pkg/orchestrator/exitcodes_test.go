package orchestrator_test

import (
	"testing"

	"github.com/openztcc/cargo-orchestrator/internal/errors"
	"github.com/openztcc/cargo-orchestrator/pkg/orchestrator"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		constant int
		expected int
	}{
		{"ExitSuccess", orchestrator.ExitSuccess, 0},
		{"ExitFailure", orchestrator.ExitFailure, 1},
		{"ExitConfigError", orchestrator.ExitConfigError, 2},
		{"ExitLaunchError", orchestrator.ExitLaunchError, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.constant != tt.expected {
				t.Errorf("orchestrator.%s = %d, want %d", tt.name, tt.constant, tt.expected)
			}
		})
	}
}

// TestExitCodeConsistency guards against drift between the public constants
// and the internal errors package.
func TestExitCodeConsistency(t *testing.T) {
	tests := []struct {
		name     string
		public   int
		internal int
	}{
		{"Success", orchestrator.ExitSuccess, errors.ExitSuccess},
		{"Failure/RuntimeError", orchestrator.ExitFailure, errors.ExitRuntimeError},
		{"ConfigError", orchestrator.ExitConfigError, errors.ExitConfigError},
		{"LaunchError", orchestrator.ExitLaunchError, errors.ExitLaunchError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.public != tt.internal {
				t.Errorf("exit code mismatch: public constant = %d, errors constant = %d",
					tt.public, tt.internal)
			}
		})
	}
}
