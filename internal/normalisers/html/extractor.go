package html

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.SectionExtractor = (*Extractor)(nil)

// CalloutMarkers are inline markers left behind by callout blocks.
var CalloutMarkers = []string{
	"@info", "@endinfo",
	"@danger", "@enddanger",
	"@warning", "@endwarning",
}

// Extractor splits an HTML fragment into sections.
type Extractor struct{}

// New creates a section extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract walks the top-level elements of the fragment in document order.
func (e *Extractor) Extract(fragment []byte) (*domain.Extraction, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("%w: html fragment: %v", domain.ErrParse, err)
	}

	var elements []*html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, n)
		}
	}
	if len(elements) == 0 {
		return nil, domain.ErrNoContent
	}

	result := &domain.Extraction{
		Sections: []domain.Section{},
		Headings: []string{},
	}

	var (
		current *domain.Section
		content strings.Builder
		ordinal int
	)

	commit := func() {
		if current == nil {
			return
		}
		text := strings.TrimSpace(content.String())
		if text == "" {
			return
		}
		current.Content = text
		current.Index = ordinal
		result.Sections = append(result.Sections, *current)
		ordinal++
	}

	for _, n := range elements {
		level := headingLevel(n)

		switch {
		case level == 1:
			result.Headings = append(result.Headings, strings.TrimSpace(TextContent(n)))

		case level == 2 || level == 3:
			commit()

			heading := strings.TrimSpace(TextContent(n))
			result.Headings = append(result.Headings, heading)
			current = &domain.Section{
				Heading:  heading,
				AnchorID: domain.AnchorID(heading),
				Level:    level,
			}
			content.Reset()

		case current != nil:
			text := strings.TrimSpace(TextContent(n))
			if text == "" {
				continue
			}
			text = strings.TrimSpace(StripCalloutMarkers(text))
			if text == "" {
				continue
			}
			content.WriteString(text)
			content.WriteString("\n\n")
		}
	}
	commit()

	return result, nil
}

// TextContent concatenates every descendant text node of n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// StripCalloutMarkers removes callout markers until none remain.
func StripCalloutMarkers(text string) string {
	for {
		before := text
		for _, marker := range CalloutMarkers {
			text = strings.ReplaceAll(text, marker, "")
		}
		if text == before {
			return text
		}
	}
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	default:
		return 0
	}
}
