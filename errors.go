package guidepdf

import "errors"

// Sentinel errors for library operations.
var (
	// ErrRead reports a source that is missing, unreadable, or not valid UTF-8.
	ErrRead = errors.New("failed to read markdown source")
	// ErrWrite reports a destination that could not be created or written.
	ErrWrite = errors.New("failed to write PDF file")
	// ErrRender reports a failure inside the PDF layout engine.
	ErrRender = errors.New("PDF rendering failed")

	ErrEmptyDestination = errors.New("render job has no destination")
	ErrMetadataParse    = errors.New("failed to parse front matter metadata")
)
