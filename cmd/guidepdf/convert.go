package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	guidepdf "github.com/alnah/go-guidepdf"
	"github.com/alnah/go-guidepdf/internal/config"
	"github.com/alnah/go-guidepdf/internal/fileutil"
	"github.com/alnah/go-guidepdf/internal/hints"
	"github.com/alnah/go-guidepdf/internal/mdlint"
)

// dirPermissions is the mode for a created output directory.
const dirPermissions = 0o750 // rwxr-x---: owner full, group read+execute

// defaultCreator is written as the PDF creator when the config sets none.
const defaultCreator = "go-guidepdf"

// Status is the outcome of one guide.
type Status int

// Guide outcomes.
const (
	StatusGenerated Status = iota
	StatusMissing
	StatusUnreadable
	StatusFailed
)

// String returns the outcome as used in the verbose summary.
func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusMissing:
		return "missing"
	case StatusUnreadable:
		return "unreadable"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Paths holds the resolved absolute directories of a run.
type Paths struct {
	Root   string
	Source string
	Output string
}

// GuideResult holds the outcome of a single guide.
type GuideResult struct {
	Source   string
	Output   string
	Status   Status
	Pages    int
	Err      error
	Duration time.Duration
}

// BatchError reports the guides that could not be written.
// Each failure has already been printed when it occurred.
type BatchError struct {
	Failed int
	Total  int
	Errs   []error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%d of %d guides failed", e.Failed, e.Total)
}

// Unwrap exposes every failure to errors.Is.
func (e *BatchError) Unwrap() []error {
	return e.Errs
}

// converter runs the per-guide steps with shared settings.
type converter struct {
	paths    Paths
	renderer *guidepdf.Renderer
	linter   *mdlint.Checker
	quiet    bool
	verbose  bool
	env      *Environment
}

// runConvert orchestrates the conversion of every guide, in table order.
func runConvert(flags *cliFlags, env *Environment) error {
	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w%s", err, configHint(flags.config, err))
		}
		cfg = loaded
	}

	// Merge CLI flags into config (CLI wins)
	mergeFlags(flags, cfg)

	paths, err := resolvePaths(flags.root, cfg, env.Getwd)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(paths.Output, dirPermissions); err != nil {
		return fmt.Errorf("%w: creating output directory %s: %w%s",
			guidepdf.ErrWrite, paths.Output, err, hints.ForOutputDirectory())
	}

	creator := cfg.Document.Creator
	if creator == "" {
		creator = defaultCreator
	}

	c := &converter{
		paths: paths,
		renderer: guidepdf.NewRenderer(
			guidepdf.WithAuthor(cfg.Document.Author),
			guidepdf.WithCreator(creator),
			guidepdf.WithClock(env.Now),
		),
		linter:  mdlint.NewChecker(),
		quiet:   flags.quiet,
		verbose: flags.verbose,
		env:     env,
	}

	guides := resolveGuides(cfg)
	results := make([]GuideResult, 0, len(guides))
	for _, g := range guides {
		results = append(results, c.convertGuide(g))
	}

	if c.verbose {
		printSummary(results, env)
	}

	return batchErr(results)
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.source != "" {
		cfg.SourceDir = flags.source
	}
	if flags.output != "" {
		cfg.OutputDir = flags.output
	}
}

// resolvePaths makes the root absolute and anchors relative directories to it.
func resolvePaths(root string, cfg *config.Config, getwd func() (string, error)) (Paths, error) {
	if root == "" {
		wd, err := getwd()
		if err != nil {
			return Paths{}, fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return Paths{}, fmt.Errorf("resolving root %s: %w", root, err)
	}

	return Paths{
		Root:   abs,
		Source: anchor(abs, cfg.SourceDir),
		Output: anchor(abs, cfg.OutputDir),
	}, nil
}

func anchor(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}

// resolveGuides returns the config guide table, or the built-in one when empty.
func resolveGuides(cfg *config.Config) []guidepdf.Guide {
	if len(cfg.Guides) == 0 {
		return guidepdf.DefaultGuides()
	}
	guides := make([]guidepdf.Guide, len(cfg.Guides))
	for i, g := range cfg.Guides {
		guides[i] = guidepdf.Guide{Source: g.Source, Output: g.Output}
	}
	return guides
}

// configHint suggests where to put a config file that was looked up by name.
func configHint(nameOrPath string, err error) string {
	if !errors.Is(err, config.ErrConfigNotFound) || fileutil.IsFilePath(nameOrPath) {
		return ""
	}
	return hints.ForConfigNotFound(config.SearchPaths(nameOrPath))
}

// convertGuide loads, renders and writes one guide, reporting as it goes.
// Missing and unreadable sources are warnings; write failures are errors.
func (c *converter) convertGuide(g guidepdf.Guide) GuideResult {
	start := c.env.Now()
	result := GuideResult{
		Source: filepath.Join(c.paths.Source, g.Source),
		Output: filepath.Join(c.paths.Output, g.Output),
	}
	done := func(status Status, err error) GuideResult {
		result.Status = status
		result.Err = err
		result.Duration = c.env.Now().Sub(start)
		return result
	}

	fm, err := guidepdf.LoadFrontMatter(result.Source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(c.env.Stdout, "[WARN] Missing source file: %s\n", result.Source)
			c.infof("%s", strings.TrimPrefix(hints.ForMissingSource(c.paths.Source), "\n  "))
			return done(StatusMissing, err)
		}
		fmt.Fprintf(c.env.Stdout, "[WARN] Cannot read source file: %s: %v%s\n",
			result.Source, err, hints.ForUnreadableSource(err))
		return done(StatusUnreadable, err)
	}

	meta := c.inspect(result.Source, fm)

	res, err := c.renderer.RenderFile(guidepdf.Job{
		Lines:       fm.Body,
		Title:       guidepdf.TitleFromFilename(g.Source),
		Destination: result.Output,
		Metadata:    meta,
	})
	if err != nil {
		fmt.Fprintf(c.env.Stderr, "[FAIL] %s: %v%s\n", result.Source, err, hints.ForWriteFailure(err))
		return done(StatusFailed, err)
	}
	result.Pages = res.Pages

	if !c.quiet {
		fmt.Fprintf(c.env.Stdout, "[OK] Generated %s\n", c.relative(result.Output))
	}
	if len(res.Unmapped) > 0 {
		fmt.Fprintf(c.env.Stdout, "[WARN] %s: characters not in the PDF font were drawn as \".\": %s%s\n",
			result.Source, spaced(res.Unmapped), hints.ForUnmappedRunes())
	}
	result = done(StatusGenerated, nil)
	c.infof("%s: %d page(s) in %v", c.relative(result.Output), result.Pages, result.Duration.Round(time.Millisecond))
	return result
}

// inspect decodes front matter metadata and, in verbose mode, reports
// constructs the renderer prints literally. Problems never stop the guide.
func (c *converter) inspect(source string, fm guidepdf.FrontMatter) guidepdf.Metadata {
	meta, err := guidepdf.ParseMetadata(fm.Header)
	var metaErr *guidepdf.MetadataError
	switch {
	case errors.As(err, &metaErr) && metaErr.Line > 0:
		// The header starts below the opening delimiter on line 1.
		c.infof("%s:%d: front matter ignored: %v", source, metaErr.Line+1, err)
	case err != nil:
		c.infof("%s: front matter ignored: %v", source, err)
	}
	if fm.Unclosed {
		c.infof("%s: unclosed front matter, content after the last --- dropped", source)
	}
	if !c.verbose {
		return meta
	}

	for _, f := range c.linter.Check([]byte(strings.Join(fm.Body, "\n"))) {
		c.infof("%s:%d: %s rendered as plain text", source, sourceLine(fm, f.Line), f.Kind)
	}
	return meta
}

// sourceLine maps a 1-based body line back to the file line.
func sourceLine(fm guidepdf.FrontMatter, bodyLine int) int {
	if bodyLine < 1 || bodyLine > len(fm.SourceLines) {
		return bodyLine
	}
	return fm.SourceLines[bodyLine-1]
}

// spaced lists runes separated by spaces.
func spaced(runes []rune) string {
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// relative returns path relative to the root, or path itself when outside it.
func (c *converter) relative(path string) string {
	rel, err := filepath.Rel(c.paths.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// infof prints an [INFO] line in verbose mode.
func (c *converter) infof(format string, args ...any) {
	if !c.verbose {
		return
	}
	fmt.Fprintf(c.env.Stdout, "[INFO] "+format+"\n", args...)
}

// printSummary prints outcome counts after the run.
func printSummary(results []GuideResult, env *Environment) {
	counts := make(map[Status]int)
	for _, r := range results {
		counts[r.Status]++
	}
	fmt.Fprintf(env.Stdout, "\n%d generated, %d missing, %d unreadable, %d failed\n",
		counts[StatusGenerated], counts[StatusMissing], counts[StatusUnreadable], counts[StatusFailed])
}

// batchErr collects write failures. Missing and unreadable sources do not fail the run.
func batchErr(results []GuideResult) error {
	var errs []error
	for _, r := range results {
		if r.Status == StatusFailed {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &BatchError{Failed: len(errs), Total: len(results), Errs: errs}
}
