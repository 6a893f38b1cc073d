package driven

import "github.com/custodia-labs/docsindex/internal/core/domain"

// FrontmatterParser splits a page into its metadata block and body.
type FrontmatterParser interface {
	// Parse returns the metadata mapping and the text after the closing
	// delimiter. Without a leading block it returns an empty mapping and
	// the input unchanged. Malformed YAML yields domain.ErrParse.
	Parse(source []byte) (domain.Frontmatter, []byte, error)
}

// MarkdownRenderer converts Markdown into an HTML fragment.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
}

// SectionExtractor splits a rendered HTML fragment into heading-scoped sections.
type SectionExtractor interface {
	// Extract returns sections in document order plus every heading text.
	// A fragment without element nodes yields domain.ErrNoContent.
	Extract(fragment []byte) (*domain.Extraction, error)
}
