package guidepdf

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Guide maps a source Markdown file name to its output PDF file name.
// Output names come from the table, never from the source name.
type Guide struct {
	Source string
	Output string
}

// DefaultGuides returns the published guides in processing order.
// The returned slice is a fresh copy.
func DefaultGuides() []Guide {
	return []Guide{
		{Source: "knowledge-base-overview.md", Output: "algotradingwith-knowledge-base.pdf"},
		{Source: "ea-installation-guide.md", Output: "ea-installation-guide.pdf"},
		{Source: "account-configuration-guide.md", Output: "account-configuration-guide.pdf"},
		{Source: "risk-management-guide.md", Output: "risk-management-guide.pdf"},
		{Source: "quick-start-guide.md", Output: "quick-start-guide.pdf"},
		{Source: "vps-setup-guide.md", Output: "vps-setup-guide.pdf"},
		{Source: "troubleshooting-guide.md", Output: "troubleshooting-guide.pdf"},
		{Source: "community-forum-guide.md", Output: "community-forum-guide.pdf"},
	}
}

// titleSeparators become spaces in derived titles.
var titleSeparators = strings.NewReplacer("-", " ", "_", " ")

// TitleFromFilename derives a human-readable title from a file name:
// directory and extension dropped, separators replaced by spaces, title case.
//
// Examples:
//   - "quick-start-guide.md" -> "Quick Start Guide"
//   - "vps_setup.md" -> "Vps Setup"
func TitleFromFilename(name string) string {
	base := filepath.Base(name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	words := strings.Fields(titleSeparators.Replace(stem))
	return cases.Title(language.English).String(strings.Join(words, " "))
}
