// Package mdlint reports Markdown constructs that the line-oriented PDF
// renderer does not interpret and therefore prints literally.
//
// The renderer only understands ATX headings, "-"/"*" bullets and plain
// paragraphs. Guide authors use this report to spot tables, code blocks,
// links and inline markup before publishing.
package mdlint

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Kind names an unsupported construct.
type Kind string

// Unsupported construct kinds.
const (
	KindTable         Kind = "table"
	KindCodeBlock     Kind = "code block"
	KindBlockquote    Kind = "block quote"
	KindOrderedList   Kind = "ordered list"
	KindPlusList      Kind = "\"+\" list"
	KindLink          Kind = "link"
	KindImage         Kind = "image"
	KindEmphasis      Kind = "emphasis"
	KindStrikethrough Kind = "strikethrough"
	KindInlineCode    Kind = "inline code"
	KindThematicBreak Kind = "thematic break"
	KindHTML          Kind = "raw HTML"
)

// Finding is one unsupported construct.
type Finding struct {
	// Line is 1-based within the checked source; 0 when the parser kept no position.
	Line int
	Kind Kind
}

// Checker parses Markdown with GFM tables and strikethrough enabled.
type Checker struct {
	md goldmark.Markdown
}

// NewChecker creates a Checker.
func NewChecker() *Checker {
	return &Checker{
		md: goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough)),
	}
}

// Check is a convenience wrapper around NewChecker().Check.
func Check(source []byte) []Finding {
	return NewChecker().Check(source)
}

// Check returns findings in document order. Repeated findings of the same
// kind on the same line are reported once.
func (c *Checker) Check(source []byte) []Finding {
	doc := c.md.Parser().Parse(text.NewReader(source))

	var findings []Finding
	seen := make(map[Finding]bool)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		kind, ok := classify(n)
		if !ok {
			return ast.WalkContinue, nil
		}

		f := Finding{Line: lineOf(source, n), Kind: kind}
		if !seen[f] {
			seen[f] = true
			findings = append(findings, f)
		}

		// Nothing inside a code block or table is reported separately.
		if kind == KindCodeBlock || kind == KindTable {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return findings
}

// classify maps a node to the construct kind it represents.
func classify(n ast.Node) (Kind, bool) {
	switch n.Kind() {
	case east.KindTable:
		return KindTable, true
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		return KindCodeBlock, true
	case ast.KindBlockquote:
		return KindBlockquote, true
	case ast.KindList:
		list, ok := n.(*ast.List)
		if !ok {
			break
		}
		if list.IsOrdered() {
			return KindOrderedList, true
		}
		if list.Marker == '+' {
			return KindPlusList, true
		}
	case ast.KindLink, ast.KindAutoLink:
		return KindLink, true
	case ast.KindImage:
		return KindImage, true
	case ast.KindEmphasis:
		return KindEmphasis, true
	case east.KindStrikethrough:
		return KindStrikethrough, true
	case ast.KindCodeSpan:
		return KindInlineCode, true
	case ast.KindThematicBreak:
		return KindThematicBreak, true
	case ast.KindHTMLBlock, ast.KindRawHTML:
		return KindHTML, true
	}
	return "", false
}

// lineOf finds a source position for n: its own lines, the first descendant
// with a position, or the nearest enclosing block.
func lineOf(source []byte, n ast.Node) int {
	if off, ok := offsetOf(n); ok {
		return lineAt(source, off)
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == ast.TypeBlock && p.Lines().Len() > 0 {
			return lineAt(source, p.Lines().At(0).Start)
		}
	}
	return 0
}

func offsetOf(n ast.Node) (int, bool) {
	if fcb, ok := n.(*ast.FencedCodeBlock); ok && fcb.Info != nil {
		return fcb.Info.Segment.Start, true
	}
	if t, ok := n.(*ast.Text); ok {
		return t.Segment.Start, true
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		return n.Lines().At(0).Start, true
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off, ok := offsetOf(c); ok {
			return off, true
		}
	}
	return 0, false
}

func lineAt(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte("\n")) + 1
}
