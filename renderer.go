package guidepdf

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"time"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alnah/go-guidepdf/internal/fileutil"
)

// Page geometry. Units are millimetres.
const (
	pageOrientation = "P"
	pageUnit        = "mm"
	pageSize        = "A4"
	pageBreakMargin = 15.0
)

// Typography. Sizes are points, heights and gaps are page units.
const (
	fontFamily = "Arial"
	styleBold  = "B"
	styleBody  = ""

	bodySize       = 11.0
	bodyLineHeight = 6.0

	titleSize       = 16.0
	titleLineHeight = 10.0
	titleGap        = 4.0

	headingBaseSize   = 16.0
	headingSizeStep   = 2.0
	headingMinSize    = 12.0
	headingLineHeight = 8.0
	headingGap        = 2.0

	blankGap = 4.0

	bulletPrefix = "• "
)

// substitute is what the core font translator emits for runes outside its code page.
const substitute = "."

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// layout is the subset of the gofpdf API the renderer draws with.
type layout interface {
	SetFont(familyStr, styleStr string, size float64)
	MultiCell(w, h float64, txtStr, borderStr, alignStr string, fill bool)
	Ln(h float64)
}

// Compile-time interface implementation check.
var _ layout = (*gofpdf.Fpdf)(nil)

// Job is one render job: a cleaned line sequence, an optional title and
// the destination path used by RenderFile.
type Job struct {
	Lines       []string
	Title       string
	Destination string
	Metadata    Metadata
}

// Result holds a rendered document.
type Result struct {
	PDF   []byte
	Pages int
	// Unmapped lists, in code point order, the runes the core font cannot
	// encode. Each was drawn as a "." substitute.
	Unmapped []rune
	// Path is the destination written by RenderFile, empty after Render.
	Path string
}

// Renderer lays out cleaned Markdown lines as a paginated PDF.
// A Renderer holds no per-document state and can be reused.
type Renderer struct {
	cfg rendererConfig
}

type rendererConfig struct {
	author   string
	creator  string
	compress bool
	now      func() time.Time
}

// Option configures a Renderer.
type Option func(*rendererConfig)

// WithAuthor sets the default author property. Front matter author wins.
func WithAuthor(author string) Option {
	return func(c *rendererConfig) { c.author = author }
}

// WithCreator sets the creator property.
func WithCreator(creator string) Option {
	return func(c *rendererConfig) { c.creator = creator }
}

// WithCompression toggles content stream compression (enabled by default).
func WithCompression(enabled bool) Option {
	return func(c *rendererConfig) { c.compress = enabled }
}

// WithClock sets the clock used for the creation date property.
func WithClock(now func() time.Time) Option {
	return func(c *rendererConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// NewRenderer creates a Renderer with the fixed page layout.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{cfg: rendererConfig{compress: true, now: time.Now}}
	for _, opt := range opts {
		opt(&r.cfg)
	}
	return r
}

// Render lays out the job and returns the PDF bytes. The destination is ignored.
func (r *Renderer) Render(job Job) (*Result, error) {
	pdf := gofpdf.New(pageOrientation, pageUnit, pageSize, "")
	pdf.SetCompression(r.cfg.compress)
	pdf.SetAutoPageBreak(true, pageBreakMargin)
	r.setProperties(pdf, job)
	pdf.AddPage()

	cp := newCodePage(pdf.UnicodeTranslatorFromDescriptor(""))
	draw(pdf, cp.encode, job.Title, ClassifyAll(job.Lines))
	if pdf.Err() {
		return nil, fmt.Errorf("%w: %v", ErrRender, pdf.Error())
	}
	pages := pdf.PageNo()

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return &Result{PDF: buf.Bytes(), Pages: pages, Unmapped: cp.unmapped()}, nil
}

// RenderFile renders the job and writes it to job.Destination, replacing any
// existing file. The write is atomic: on failure no partial file remains.
// Write failures wrap ErrWrite.
func (r *Renderer) RenderFile(job Job) (*Result, error) {
	if job.Destination == "" {
		return nil, ErrEmptyDestination
	}

	result, err := r.Render(job)
	if err != nil {
		return nil, err
	}

	if err := fileutil.WriteFileAtomic(job.Destination, result.PDF, filePermissions, dirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	result.Path = job.Destination
	return result, nil
}

// setProperties fills the PDF information dictionary.
func (r *Renderer) setProperties(pdf *gofpdf.Fpdf, job Job) {
	title := job.Metadata.Title
	if title == "" {
		title = job.Title
	}
	if title != "" {
		pdf.SetTitle(title, true)
	}

	author := job.Metadata.Author
	if author == "" {
		author = r.cfg.author
	}
	if author != "" {
		pdf.SetAuthor(author, true)
	}

	if job.Metadata.Description != "" {
		pdf.SetSubject(job.Metadata.Description, true)
	}
	if len(job.Metadata.Keywords) > 0 {
		pdf.SetKeywords(job.Metadata.Keywords.String(), true)
	}
	if r.cfg.creator != "" {
		pdf.SetCreator(r.cfg.creator, true)
	}
	pdf.SetCreationDate(r.cfg.now())
}

// codePage encodes text for the core fonts and remembers the runes the
// translator could not map.
type codePage struct {
	translate func(string) string
	mapped    map[rune]bool
}

func newCodePage(translate func(string) string) *codePage {
	return &codePage{translate: translate, mapped: make(map[rune]bool)}
}

func (c *codePage) encode(s string) string {
	for _, r := range s {
		if r < utf8.RuneSelf {
			continue
		}
		if _, seen := c.mapped[r]; !seen {
			c.mapped[r] = c.translate(string(r)) != substitute
		}
	}
	return c.translate(s)
}

// unmapped returns the runes seen so far that have no code page slot.
func (c *codePage) unmapped() []rune {
	var out []rune
	for _, r := range slices.Sorted(maps.Keys(c.mapped)) {
		if !c.mapped[r] {
			out = append(out, r)
		}
	}
	return out
}

// draw emits the title and every classified line in order.
// tr converts UTF-8 text to the encoding of the core fonts.
func draw(l layout, tr func(string) string, title string, lines []Line) {
	if title != "" {
		l.SetFont(fontFamily, styleBold, titleSize)
		l.MultiCell(0, titleLineHeight, tr(title), "", "", false)
		l.Ln(titleGap)
	}

	l.SetFont(fontFamily, styleBody, bodySize)
	upper := cases.Upper(language.Und)

	for _, line := range lines {
		switch line.Kind {
		case LineBlank:
			l.Ln(blankGap)
		case LineHeading:
			l.SetFont(fontFamily, styleBold, HeadingSize(line.Level))
			l.MultiCell(0, headingLineHeight, tr(upper.String(line.Text)), "", "", false)
			l.Ln(headingGap)
			l.SetFont(fontFamily, styleBody, bodySize)
		case LineBullet:
			l.MultiCell(0, bodyLineHeight, tr(bulletPrefix+line.Text), "", "", false)
		default:
			l.MultiCell(0, bodyLineHeight, tr(line.Text), "", "", false)
		}
	}
}

// HeadingSize returns the font size for a heading level, shrinking by a
// fixed step per level down to a floor.
func HeadingSize(level int) float64 {
	if level < 1 {
		level = 1
	}
	return max(headingBaseSize-float64(level-1)*headingSizeStep, headingMinSize)
}
