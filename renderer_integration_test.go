//go:build integration

package guidepdf

// Notes:
// - These tests read the generated PDF back with a PDF parser instead of
//   searching raw bytes, so they also run against compressed output.
// - Text is compared with whitespace removed: extractors differ in how they
//   reconstruct spaces between text objects.

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

// extractText returns the text layer of every page, in page order.
func extractText(t *testing.T, path string) []string {
	t.Helper()

	f, r, err := pdf.Open(path)
	if err != nil {
		t.Fatalf("open pdf %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	fonts := make(map[string]*pdf.Font)
	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}
		text, err := p.GetPlainText(fonts)
		if err != nil {
			t.Fatalf("read pdf page %d: %v", i, err)
		}
		pages = append(pages, text)
	}
	return pages
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// ---------------------------------------------------------------------------
// TestRenderFile_TextLayer - Parsed output
// ---------------------------------------------------------------------------

func TestRenderFile_TextLayer(t *testing.T) {
	t.Parallel()

	lines, err := ReadMarkdown(strings.NewReader("---\nignored\n---\n# Hi\nbody text\n\n- first item\nplain paragraph"))
	if err != nil {
		t.Fatalf("ReadMarkdown() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "guide.pdf")
	if _, err := NewRenderer().RenderFile(Job{Lines: lines, Title: "Quick Start Guide", Destination: dest}); err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}

	pages := extractText(t, dest)
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(pages))
	}
	text := squash(pages[0])

	if strings.Contains(text, "ignored") {
		t.Error("front matter leaked into the document")
	}

	order := []string{"QuickStartGuide", "HI", "bodytext", "firstitem", "plainparagraph"}
	prev := -1
	for _, want := range order {
		idx := strings.Index(text, want)
		if idx < 0 {
			t.Fatalf("text %q missing %q", text, want)
		}
		if idx < prev {
			t.Errorf("%q out of order in %q", want, text)
		}
		prev = idx
	}
}

func TestRenderFile_TextLayerAcrossPages(t *testing.T) {
	t.Parallel()

	const n = 200
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("entry%03d", i)
	}

	dest := filepath.Join(t.TempDir(), "long.pdf")
	res, err := NewRenderer().RenderFile(Job{Lines: lines, Destination: dest})
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}

	pages := extractText(t, dest)
	if len(pages) != res.Pages {
		t.Errorf("parsed %d pages, Result.Pages = %d", len(pages), res.Pages)
	}

	all := squash(strings.Join(pages, ""))
	for _, l := range lines {
		if c := strings.Count(all, l); c != 1 {
			t.Errorf("%q appears %d times, want 1", l, c)
		}
	}
}
