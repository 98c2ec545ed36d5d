// Package guidepdf converts Markdown guides into paginated PDF documents.
//
// # Quick Start
//
// Load a Markdown file, then render it:
//
//	lines, err := guidepdf.LoadMarkdown("resources/guides/quick-start-guide.md")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	r := guidepdf.NewRenderer()
//	result, err := r.RenderFile(guidepdf.Job{
//	    Lines:       lines,
//	    Title:       guidepdf.TitleFromFilename("quick-start-guide.md"),
//	    Destination: "public/resources/quick-start-guide.pdf",
//	})
//
// # Conversion
//
// The conversion is line oriented:
//
//  1. Loading: UTF-8 decoding, line splitting, front matter removal
//  2. Classification: each line is blank, a heading, a bullet, or a paragraph
//  3. Layout via gofpdf, with automatic page breaks
//  4. Atomic write to the destination path
//
// Front matter is any block delimited by lines containing only "---". Every
// such line toggles the block, so an unclosed block swallows the rest of the
// file.
//
// # Layout
//
// The page layout is fixed: A4 portrait, Arial 11pt body text, bold
// upper-cased headings sized by level, and "•" bullets. Options only affect
// document properties (author, creator, creation date) and stream compression:
//
//	r := guidepdf.NewRenderer(
//	    guidepdf.WithAuthor("Support Team"),
//	    guidepdf.WithCreator("go-guidepdf"),
//	)
//
// Markdown constructs other than headings, bullets and paragraphs are printed
// literally.
package guidepdf
