package guidepdf

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// frontMatterDelimiter toggles front matter when it is the only content of a line.
const frontMatterDelimiter = "---"

// lineBreaks matches every line boundary other than "\n": CRLF, CR, vertical
// tab, form feed, the file/group/record separators, NEL and the Unicode line
// and paragraph separators.
var lineBreaks = regexp.MustCompile(`\r\n|[\r\v\f\x{1c}-\x{1e}\x{85}\x{2028}\x{2029}]`)

var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// FrontMatter is the result of separating front matter from document content.
type FrontMatter struct {
	// Body holds the cleaned lines: outside front matter, trailing whitespace removed.
	Body []string
	// Header holds the raw lines of the first block when it opens the document
	// and is closed. Nil otherwise.
	Header []string
	// Unclosed is true when an odd number of delimiters was seen, meaning
	// everything after the last delimiter was discarded.
	Unclosed bool
	// SourceLines holds the 1-based source line number of each Body entry.
	SourceLines []int
}

// LoadMarkdown reads the file at path and returns its cleaned lines.
// Errors wrap ErrRead.
func LoadMarkdown(path string) ([]string, error) {
	fm, err := LoadFrontMatter(path)
	if err != nil {
		return nil, err
	}
	return fm.Body, nil
}

// LoadFrontMatter reads the file at path and splits it into body and front matter.
// Errors wrap ErrRead.
func LoadFrontMatter(path string) (FrontMatter, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the guide table
	if err != nil {
		return FrontMatter{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readLines(f)
	if err != nil {
		return FrontMatter{}, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return SplitFrontMatter(lines), nil
}

// ReadMarkdown reads Markdown from r and returns its cleaned lines.
// Errors wrap ErrRead.
func ReadMarkdown(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return SplitFrontMatter(lines).Body, nil
}

// SplitFrontMatter removes every block delimited by "---" lines.
// Each delimiter line toggles the block and is itself discarded.
func SplitFrontMatter(lines []string) FrontMatter {
	var fm FrontMatter
	fm.Body = make([]string, 0, len(lines))
	fm.SourceLines = make([]int, 0, len(lines))

	leading := len(lines) > 0 && isDelimiter(lines[0])
	var header []string
	inside := false
	toggles := 0

	for i, line := range lines {
		if isDelimiter(line) {
			inside = !inside
			toggles++
			continue
		}
		if inside {
			if leading && toggles == 1 {
				header = append(header, line)
			}
			continue
		}
		fm.Body = append(fm.Body, strings.TrimRightFunc(line, unicode.IsSpace))
		fm.SourceLines = append(fm.SourceLines, i+1)
	}

	fm.Unclosed = inside
	if leading && toggles >= 2 {
		fm.Header = header
		if fm.Header == nil {
			fm.Header = []string{}
		}
	}
	return fm
}

func isDelimiter(line string) bool {
	return strings.TrimSpace(line) == frontMatterDelimiter
}

// readLines decodes r as UTF-8 (dropping a byte order mark) and splits it
// into lines. A single trailing newline does not yield an empty last line.
func readLines(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, errInvalidUTF8
	}

	decoded, _, err := transform.Bytes(textunicode.UTF8BOM.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}

	content := lineBreaks.ReplaceAllString(string(decoded), "\n")
	if content == "" {
		return []string{}, nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n"), nil
}
