package mdlint_test

// Notes:
// - Line numbers are checked only for block constructs and inline constructs
//   with text children; thematic breaks carry no position in goldmark and are
//   only checked for presence.

import (
	"testing"

	"github.com/alnah/go-guidepdf/internal/mdlint"
)

// ---------------------------------------------------------------------------
// TestCheck_SupportedOnly - Headings, bullets and paragraphs are silent
// ---------------------------------------------------------------------------

func TestCheck_SupportedOnly(t *testing.T) {
	t.Parallel()

	source := []byte("# Title\n\nSome paragraph text.\n\n- first\n- second\n* third\n\n## Next\n")

	if got := mdlint.Check(source); len(got) != 0 {
		t.Errorf("Check() = %+v, want no findings", got)
	}
}

// ---------------------------------------------------------------------------
// TestCheck_Unsupported - Each unsupported construct is reported with its line
// ---------------------------------------------------------------------------

func TestCheck_Unsupported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		wantKind mdlint.Kind
		wantLine int
	}{
		{
			name:     "table",
			source:   "intro\n\n| a | b |\n|---|---|\n| 1 | 2 |\n",
			wantKind: mdlint.KindTable,
			wantLine: 3,
		},
		{
			name:     "fenced code block",
			source:   "text\n\n```go\nfmt.Println()\n```\n",
			wantKind: mdlint.KindCodeBlock,
			wantLine: 3,
		},
		{
			name:     "block quote",
			source:   "> quoted\n",
			wantKind: mdlint.KindBlockquote,
			wantLine: 1,
		},
		{
			name:     "ordered list",
			source:   "para\n\n1. one\n2. two\n",
			wantKind: mdlint.KindOrderedList,
			wantLine: 3,
		},
		{
			name:     "plus list",
			source:   "+ item\n",
			wantKind: mdlint.KindPlusList,
			wantLine: 1,
		},
		{
			name:     "link",
			source:   "line one\nsee [docs](https://example.com)\n",
			wantKind: mdlint.KindLink,
			wantLine: 2,
		},
		{
			name:     "emphasis",
			source:   "this is **bold** text\n",
			wantKind: mdlint.KindEmphasis,
			wantLine: 1,
		},
		{
			name:     "strikethrough",
			source:   "old ~~price~~\n",
			wantKind: mdlint.KindStrikethrough,
			wantLine: 1,
		},
		{
			name:     "inline code",
			source:   "run `make`\n",
			wantKind: mdlint.KindInlineCode,
			wantLine: 1,
		},
		{
			name:     "image",
			source:   "![chart](chart.png)\n",
			wantKind: mdlint.KindImage,
			wantLine: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			findings := mdlint.Check([]byte(tt.source))
			for _, f := range findings {
				if f.Kind == tt.wantKind {
					if f.Line != tt.wantLine {
						t.Errorf("%s reported at line %d, want %d", f.Kind, f.Line, tt.wantLine)
					}
					return
				}
			}
			t.Errorf("Check() = %+v, want a %q finding", findings, tt.wantKind)
		})
	}
}

// ---------------------------------------------------------------------------
// TestCheck_Dedup - Same kind on the same line is reported once
// ---------------------------------------------------------------------------

func TestCheck_Dedup(t *testing.T) {
	t.Parallel()

	findings := mdlint.Check([]byte("*a* and *b* and *c*\n"))

	count := 0
	for _, f := range findings {
		if f.Kind == mdlint.KindEmphasis {
			count++
		}
	}
	if count != 1 {
		t.Errorf("emphasis reported %d times, want 1 (findings: %+v)", count, findings)
	}
}

// ---------------------------------------------------------------------------
// TestCheck_CodeBlockContentsIgnored - Markup inside code is not reported
// ---------------------------------------------------------------------------

func TestCheck_CodeBlockContentsIgnored(t *testing.T) {
	t.Parallel()

	findings := mdlint.Check([]byte("```\n[link](x) **bold**\n```\n"))

	if len(findings) != 1 || findings[0].Kind != mdlint.KindCodeBlock {
		t.Errorf("Check() = %+v, want only a code block finding", findings)
	}
}

// ---------------------------------------------------------------------------
// TestChecker_Reuse - A Checker can check several documents
// ---------------------------------------------------------------------------

func TestChecker_Reuse(t *testing.T) {
	t.Parallel()

	c := mdlint.NewChecker()

	if got := c.Check([]byte("> quote\n")); len(got) != 1 {
		t.Errorf("first Check() = %+v, want 1 finding", got)
	}
	if got := c.Check([]byte("plain\n")); len(got) != 0 {
		t.Errorf("second Check() = %+v, want none", got)
	}
}
