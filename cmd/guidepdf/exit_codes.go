package main

import (
	"errors"

	guidepdf "github.com/alnah/go-guidepdf"
	"github.com/alnah/go-guidepdf/internal/config"
)

// Exit codes for the guidepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All present guides converted
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags or config
	ExitIO      = 3 // A PDF could not be rendered or written
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidGuide) {
		return ExitUsage
	}

	// Output errors (exit 3)
	if errors.Is(err, guidepdf.ErrWrite) ||
		errors.Is(err, guidepdf.ErrRender) ||
		errors.Is(err, guidepdf.ErrEmptyDestination) {
		return ExitIO
	}

	return ExitGeneral
}
