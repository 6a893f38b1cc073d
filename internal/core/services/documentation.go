package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// Ensure DocumentationService implements the interface.
var _ driving.DocumentationService = (*DocumentationService)(nil)

// callout is a "@type ... @endtype" block rendered as a styled box.
type callout struct {
	name    string
	title   string
	pattern *regexp.Regexp
}

var callouts = []callout{
	newCallout("danger", "Danger"),
	newCallout("info", "Info"),
	newCallout("warning", "Warning"),
}

func newCallout(name, title string) callout {
	return callout{
		name:    name,
		title:   title,
		pattern: regexp.MustCompile(`(?s)@` + name + `(.*?)@end` + name),
	}
}

// DocumentationService builds navigation and rendered pages for the site.
type DocumentationService struct {
	source   driven.PageSource
	parser   driven.FrontmatterParser
	renderer driven.MarkdownRenderer
	cache    driven.PageCache
}

// NewDocumentationService creates a documentation service.
func NewDocumentationService(
	source driven.PageSource,
	parser driven.FrontmatterParser,
	renderer driven.MarkdownRenderer,
	cache driven.PageCache,
) *DocumentationService {
	return &DocumentationService{
		source:   source,
		parser:   parser,
		renderer: renderer,
		cache:    cache,
	}
}

// Navigation groups the pages of a version by category. Pages are ordered by
// their order key, categories by the sidebar rank; ties keep first-seen order.
// An unknown version has no navigation.
func (s *DocumentationService) Navigation(ctx context.Context, version string) ([]domain.NavigationSection, error) {
	docs, err := s.source.ListVersion(ctx, version)
	if errors.Is(err, domain.ErrMissingSource) {
		return []domain.NavigationSection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list version %s: %w", version, err)
	}

	var categories []string
	grouped := make(map[string][]domain.PageMetadata)

	for _, doc := range docs {
		meta, err := s.PageMetadata(ctx, doc)
		if err != nil {
			return nil, err
		}
		if _, ok := grouped[meta.Category]; !ok {
			categories = append(categories, meta.Category)
		}
		grouped[meta.Category] = append(grouped[meta.Category], *meta)
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return domain.CategoryRank(categories[i]) < domain.CategoryRank(categories[j])
	})

	nav := make([]domain.NavigationSection, 0, len(categories))
	for _, category := range categories {
		pages := grouped[category]
		sort.SliceStable(pages, func(i, j int) bool { return pages[i].Order < pages[j].Order })

		links := make([]domain.NavigationLink, 0, len(pages))
		for _, p := range pages {
			links = append(links, domain.NavigationLink{
				Title:       p.Title,
				Href:        "/docs/" + version + "/" + p.Slug,
				Description: p.Description,
			})
		}
		nav = append(nav, domain.NavigationSection{Title: category, Links: links})
	}
	return nav, nil
}

// PageMetadata reads the navigation metadata of one page.
func (s *DocumentationService) PageMetadata(ctx context.Context, doc domain.SourceDocument) (*domain.PageMetadata, error) {
	raw, err := s.source.Read(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", doc.RelativePath(), err)
	}
	meta, _, err := s.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.RelativePath(), err)
	}

	title := meta.Title()
	if title == "" {
		title = domain.SlugTitle(doc.Page)
	}
	category := meta.String(domain.FrontmatterCategory)
	if category == "" {
		category = domain.DefaultCategory
	}

	return &domain.PageMetadata{
		Slug:         doc.Page,
		Title:        title,
		Description:  meta.Description(),
		Category:     category,
		Order:        meta.Order(),
		Keywords:     meta.Keywords(),
		RelatedPages: meta.RelatedPages(),
	}, nil
}

// RenderPage renders a page body to HTML with callout blocks expanded.
func (s *DocumentationService) RenderPage(ctx context.Context, doc domain.SourceDocument) ([]byte, error) {
	raw, err := s.source.Read(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", doc.RelativePath(), err)
	}
	_, body, err := s.parser.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.RelativePath(), err)
	}

	body, err = s.expandCallouts(body)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.RelativePath(), err)
	}

	html, err := s.renderer.Render(body)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", doc.RelativePath(), err)
	}
	return bytes.ReplaceAll(html, []byte("¶"), []byte("#")), nil
}

// Cache renders every page into the page cache.
func (s *DocumentationService) Cache(ctx context.Context) (int, error) {
	defer logger.Timed("cache documentation")()

	docs, err := s.source.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list documentation: %w", err)
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		html, err := s.RenderPage(ctx, doc)
		if err != nil {
			return 0, err
		}
		if err := s.cache.Write(ctx, doc, html); err != nil {
			return 0, fmt.Errorf("cache %s: %w", doc.RelativePath(), err)
		}
		logger.Debug("Cached %s (%d bytes)", doc.RelativePath(), len(html))
	}
	return len(docs), nil
}

// ClearCache removes every cached page.
func (s *DocumentationService) ClearCache(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// expandCallouts replaces "@type ... @endtype" blocks with callout boxes whose
// inner Markdown is rendered separately.
func (s *DocumentationService) expandCallouts(markdown []byte) ([]byte, error) {
	var renderErr error
	for _, c := range callouts {
		markdown = c.pattern.ReplaceAllFunc(markdown, func(match []byte) []byte {
			if renderErr != nil {
				return match
			}
			inner := c.pattern.FindSubmatch(match)[1]
			rendered, err := s.renderer.Render(inner)
			if err != nil {
				renderErr = err
				return match
			}

			var b bytes.Buffer
			fmt.Fprintf(&b, `<div class="callout %s p-4 mb-6 rounded-lg border"><div class="font-semibold mb-2">%s</div>`, c.name, c.title)
			b.Write(rendered)
			b.WriteString("</div>")
			return b.Bytes()
		})
		if renderErr != nil {
			return nil, renderErr
		}
	}
	return markdown, nil
}
