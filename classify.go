package guidepdf

import "strings"

// LineKind is the structural role of a cleaned line.
type LineKind int

// Line kinds, in classification priority order.
const (
	LineBlank LineKind = iota
	LineHeading
	LineBullet
	LineParagraph
)

// String returns the lower-case name of the kind.
func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeading:
		return "heading"
	case LineBullet:
		return "bullet"
	case LineParagraph:
		return "paragraph"
	}
	return "unknown"
}

// tabExpansion replaces each tab before classification.
const tabExpansion = "    "

// Line is a classified line ready for layout.
type Line struct {
	Kind LineKind
	// Level is the number of leading '#' for headings, zero otherwise.
	Level int
	// Text is the content to draw: heading text without markers (not yet
	// upper-cased), bullet text without its marker, or the verbatim paragraph.
	Text string
}

// Classify expands tabs and assigns raw its kind.
// Only the first character decides headings and bullets; leading whitespace
// makes a line a paragraph.
func Classify(raw string) Line {
	line := strings.ReplaceAll(raw, "\t", tabExpansion)

	if strings.TrimSpace(line) == "" {
		return Line{Kind: LineBlank}
	}

	if strings.HasPrefix(line, "#") {
		rest := strings.TrimLeft(line, "#")
		return Line{
			Kind:  LineHeading,
			Level: len(line) - len(rest),
			Text:  strings.TrimSpace(rest),
		}
	}

	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
		return Line{Kind: LineBullet, Text: strings.TrimSpace(line[1:])}
	}

	return Line{Kind: LineParagraph, Text: line}
}

// ClassifyAll classifies every line, preserving order.
func ClassifyAll(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Classify(l)
	}
	return out
}
