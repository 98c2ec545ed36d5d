// Package yamlutil wraps YAML decoding for configuration files and front
// matter. Errors keep the position reported by the parser so callers can
// point at the offending line.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
const MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

// Unmarshal decodes data into v, ignoring unknown fields.
// Front matter uses it: authors add keys this tool does not read.
func Unmarshal(data []byte, v any) error {
	return decode(data, v)
}

// UnmarshalStrict rejects unknown fields and duplicate keys.
// Configuration files use it: a typo should fail loudly.
func UnmarshalStrict(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ErrorLine returns the 1-based input line a decoding error points at.
// The second result is false for errors without a position.
func ErrorLine(err error) (int, bool) {
	var yamlErr yaml.Error
	if !errors.As(err, &yamlErr) {
		return 0, false
	}
	tk := yamlErr.GetToken()
	if tk == nil || tk.Position == nil || tk.Position.Line < 1 {
		return 0, false
	}
	return tk.Position.Line, true
}

// Message returns the parser's message without position or source excerpt,
// falling back to err.Error().
func Message(err error) string {
	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		return yamlErr.GetMessage()
	}
	return err.Error()
}

// FormatError renders a decoding error with source context when the
// underlying library provides it, falling back to err.Error().
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return yaml.FormatError(err, false, true)
}
