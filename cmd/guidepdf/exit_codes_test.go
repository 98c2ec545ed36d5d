package main

// Notes:
// - exitCodeFor: we test every sentinel from guidepdf, config and the CLI,
//   plus wrapped and joined errors to verify the errors.Is chain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	guidepdf "github.com/alnah/go-guidepdf"
	"github.com/alnah/go-guidepdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Output errors (exit 3)
		{"write", guidepdf.ErrWrite, ExitIO},
		{"render", guidepdf.ErrRender, ExitIO},
		{"empty destination", guidepdf.ErrEmptyDestination, ExitIO},
		{"wrapped write", fmt.Errorf("guide: %w", guidepdf.ErrWrite), ExitIO},
		{"batch", &BatchError{Failed: 1, Total: 2, Errs: []error{guidepdf.ErrWrite}}, ExitIO},

		// Usage/config errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid guide", config.ErrInvalidGuide, ExitUsage},
		{"wrapped config", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"read is not fatal here", guidepdf.ErrRead, ExitGeneral},
		{"permission", os.ErrPermission, ExitGeneral},
		{"unknown", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_Conventions(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1 and 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitIO} {
		if code >= 126 {
			t.Errorf("custom exit code %d collides with shell-reserved codes", code)
		}
	}
}
