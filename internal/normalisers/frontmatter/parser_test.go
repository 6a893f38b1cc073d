package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

func TestParse_WithBlock(t *testing.T) {
	src := []byte("---\ntitle: Getting Started\ncategory: Core Concepts\norder: 2\nkeywords:\n  - setup\n  - install\n---\n# Hello\n\nBody text.\n")

	meta, body, err := New().Parse(src)
	require.NoError(t, err)

	assert.Equal(t, "Getting Started", meta.Title())
	require.NotNil(t, meta.Category())
	assert.Equal(t, "Core Concepts", *meta.Category())
	assert.Equal(t, 2, meta.Order())
	assert.Equal(t, []string{"setup", "install"}, meta.Keywords())
	assert.Contains(t, string(body), "# Hello")
	assert.NotContains(t, string(body), "title:")
}

func TestParse_NoBlock(t *testing.T) {
	src := []byte("# Title\n\nNo metadata here.\n")

	meta, body, err := New().Parse(src)
	require.NoError(t, err)

	assert.NotNil(t, meta)
	assert.Empty(t, meta)
	assert.Equal(t, src, body)
}

func TestParse_UnclosedBlockLeavesTextUnchanged(t *testing.T) {
	src := []byte("---\ntitle: x\n\n# Body\n")

	meta, body, err := New().Parse(src)
	require.NoError(t, err)

	assert.Empty(t, meta)
	assert.Equal(t, src, body)
}

func TestParse_DelimiterNotAtStart(t *testing.T) {
	src := []byte("intro\n---\ntitle: x\n---\n")

	meta, body, err := New().Parse(src)
	require.NoError(t, err)

	assert.Empty(t, meta)
	assert.Equal(t, src, body)
}

func TestParse_EmptyBlock(t *testing.T) {
	meta, body, err := New().Parse([]byte("---\n---\nBody\n"))
	require.NoError(t, err)

	assert.NotNil(t, meta)
	assert.Empty(t, meta)
	assert.Contains(t, string(body), "Body")
}

func TestParse_MalformedYAML(t *testing.T) {
	_, _, err := New().Parse([]byte("---\ntitle: [unclosed\n---\nBody\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParse_NestedValues(t *testing.T) {
	src := []byte("---\ntitle: Nested\nextra:\n  owner: docs\n  links:\n    repo: sigmie\nrelated_pages:\n  - intro\n---\nBody\n")

	meta, _, err := New().Parse(src)
	require.NoError(t, err)

	extra, ok := meta["extra"].(map[string]any)
	require.True(t, ok, "nested mapping has type %T", meta["extra"])
	assert.Equal(t, "docs", extra["owner"])

	links, ok := extra["links"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sigmie", links["repo"])
	assert.Equal(t, []string{"intro"}, meta.RelatedPages())
}
