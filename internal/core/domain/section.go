package domain

import (
	"regexp"
	"strings"
)

// Section is a heading plus the body content that follows it,
// up to the next section-starting heading.
type Section struct {
	// Heading is the heading text.
	Heading string

	// AnchorID is the URL fragment derived from Heading.
	AnchorID string

	// Level is the heading level (2 or 3).
	Level int

	// Content is the concatenated, trimmed text of the section body.
	// Never empty for a retained section.
	Content string

	// Index is the zero-based ordinal among the retained sections of the page.
	Index int
}

// Extraction is the result of splitting a rendered page into sections.
type Extraction struct {
	// Sections in document order.
	Sections []Section

	// Headings lists every h1-h3 heading text of the page in order.
	Headings []string
}

var (
	anchorStrip      = regexp.MustCompile(`[^\w\s-]`)
	anchorWhitespace = regexp.MustCompile(`\s+`)
)

// AnchorID derives the in-page anchor for a heading. It matches the
// table-of-contents ids: drop everything but word characters, whitespace
// and hyphens, lower-case, then turn whitespace runs into single hyphens.
// Collisions are not deduplicated.
func AnchorID(heading string) string {
	id := strings.ToLower(anchorStrip.ReplaceAllString(heading, ""))
	return anchorWhitespace.ReplaceAllString(id, "-")
}
