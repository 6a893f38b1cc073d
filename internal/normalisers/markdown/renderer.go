// Package markdown renders Markdown pages into HTML fragments with goldmark.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkdownRenderer = (*Renderer)(nil)

// DefaultExtensions are enabled when no extension names are configured.
var DefaultExtensions = domain.DefaultMarkdownExtensions

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// Renderer converts Markdown to HTML. Raw HTML in the source passes through.
// A Renderer is safe for concurrent use.
type Renderer struct {
	engine goldmark.Markdown
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	extensions []string
}

// WithExtensions selects extensions by name. Unknown names are ignored.
// An empty list keeps DefaultExtensions.
func WithExtensions(names ...string) Option {
	return func(c *config) {
		if len(names) > 0 {
			c.extensions = names
		}
	}
}

// New creates a renderer.
func New(opts ...Option) *Renderer {
	cfg := &config{
		extensions: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	engine := goldmark.New(
		goldmark.WithExtensions(collectExtensions(cfg.extensions)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	return &Renderer{engine: engine}
}

// Render converts markdown into an HTML fragment. Heading ids are
// domain.AnchorID of the heading text, so record URLs resolve on the page.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(anchorIDs{}))
	if err := r.engine.Convert(markdown, &buf, parser.WithContext(ctx)); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

// anchorIDs hands goldmark the same ids search records link to.
// Repeated headings share an id.
type anchorIDs struct{}

func (anchorIDs) Generate(value []byte, _ ast.NodeKind) []byte {
	return []byte(domain.AnchorID(strings.TrimSpace(string(value))))
}

func (anchorIDs) Put([]byte) {}
