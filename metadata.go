package guidepdf

import (
	"fmt"
	"strings"

	"github.com/alnah/go-guidepdf/internal/yamlutil"
)

// Metadata holds document properties declared in the leading front matter block.
// It is written to the PDF information dictionary and never rendered as content.
type Metadata struct {
	Title       string   `yaml:"title"`
	Author      string   `yaml:"author"`
	Description string   `yaml:"description"`
	Keywords    Keywords `yaml:"keywords"`
}

// Keywords accepts either a YAML list or a comma-separated string.
type Keywords []string

// UnmarshalYAML implements the bytes unmarshaler used by goccy/go-yaml.
func (k *Keywords) UnmarshalYAML(data []byte) error {
	var list []string
	if err := yamlutil.Unmarshal(data, &list); err == nil {
		*k = compact(list)
		return nil
	}

	var s string
	if err := yamlutil.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("keywords: expected list or string: %w", err)
	}
	*k = compact(strings.Split(s, ","))
	return nil
}

// String joins keywords the way PDF readers expect them.
func (k Keywords) String() string {
	return strings.Join(k, ", ")
}

// MetadataError locates a front matter decoding failure.
// It matches ErrMetadataParse with errors.Is.
type MetadataError struct {
	// Line is 1-based within the header; 0 when the parser gave no position.
	Line int
	Err  error
}

func (e *MetadataError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%v: line %d: %s", ErrMetadataParse, e.Line, yamlutil.Message(e.Err))
	}
	return fmt.Sprintf("%v: %s", ErrMetadataParse, yamlutil.Message(e.Err))
}

func (e *MetadataError) Unwrap() []error {
	return []error{ErrMetadataParse, e.Err}
}

// ParseMetadata decodes a front matter header as YAML.
// An empty header yields zero Metadata. Errors are *MetadataError.
func ParseMetadata(header []string) (Metadata, error) {
	var meta Metadata
	text := strings.Join(header, "\n")
	if strings.TrimSpace(text) == "" {
		return meta, nil
	}
	if err := yamlutil.Unmarshal([]byte(text), &meta); err != nil {
		line, _ := yamlutil.ErrorLine(err)
		return Metadata{}, &MetadataError{Line: line, Err: err}
	}
	meta.Title = strings.TrimSpace(meta.Title)
	meta.Author = strings.TrimSpace(meta.Author)
	meta.Description = strings.TrimSpace(meta.Description)
	return meta, nil
}

func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
