package domain

import (
	"path/filepath"
	"strings"
)

// SourceDocument is one Markdown page on disk.
// It is immutable once read.
type SourceDocument struct {
	// Path is the absolute file path.
	Path string

	// Version is the documentation version (the containing directory name).
	Version string

	// Page is the page slug (file name without extension).
	Page string
}

// NewSourceDocument derives version and page from a file path laid out
// as <docs-dir>/<version>/<page>.md.
func NewSourceDocument(path string) SourceDocument {
	base := filepath.Base(path)
	return SourceDocument{
		Path:    path,
		Version: filepath.Base(filepath.Dir(path)),
		Page:    strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// RelativePath returns the "<version>/<page>.md" form used in progress output.
func (d SourceDocument) RelativePath() string {
	return d.Version + "/" + filepath.Base(d.Path)
}

// IsReadme reports whether the page is a README, which is never indexed.
func (d SourceDocument) IsReadme() bool {
	return strings.EqualFold(d.Page, "readme")
}

// BaseURL returns the site path of the page, without anchor.
func (d SourceDocument) BaseURL() string {
	return "/docs/" + d.Version + "/" + d.Page
}
