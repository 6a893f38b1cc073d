// Package frontmatter splits Markdown pages into their YAML metadata block
// and body.
package frontmatter

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure Parser implements the interface.
var _ driven.FrontmatterParser = (*Parser)(nil)

// block matches a leading "---" line followed by a closing "---" line.
var block = regexp.MustCompile(`(?s)\A---[ \t]*\r?\n(?:.*?\r?\n)?---[ \t]*(?:\r?\n|\z)`)

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Parser reads YAML frontmatter delimited by "---" lines.
type Parser struct{}

// New creates a frontmatter parser.
func New() *Parser {
	return &Parser{}
}

// Parse returns the metadata mapping and the body after the closing delimiter.
func (p *Parser) Parse(source []byte) (domain.Frontmatter, []byte, error) {
	if !block.Match(source) {
		return domain.Frontmatter{}, source, nil
	}

	// Decode into a plain map so nested mappings come back as map[string]any.
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta, yamlFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: frontmatter: %v", domain.ErrParse, err)
	}
	if meta == nil {
		return domain.Frontmatter{}, body, nil
	}
	return domain.Frontmatter(meta), body, nil
}
