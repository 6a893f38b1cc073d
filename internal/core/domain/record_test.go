package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordID(t *testing.T) {
	// md5("/docs/v1/intro.md-0")
	id := RecordID("/docs/v1/intro.md", 0)

	assert.Equal(t, "67303108d8e14a7d5b15ab5eab7f1e8f", id)
	assert.Equal(t, id, RecordID("/docs/v1/intro.md", 0))
	assert.NotEqual(t, id, RecordID("/docs/v1/intro.md", 1))
	assert.NotEqual(t, id, RecordID("/docs/v2/intro.md", 0))
}

func TestSlugTitle(t *testing.T) {
	assert.Equal(t, "Getting started", SlugTitle("getting-started"))
	assert.Equal(t, "Introduction", SlugTitle("introduction"))
	assert.Equal(t, "", SlugTitle(""))
}

func TestIndexRecord_Document(t *testing.T) {
	desc := "Short"
	record := IndexRecord{
		ID:           "abc",
		Title:        "Setup",
		PageTitle:    "Intro",
		Description:  &desc,
		Version:      "v1",
		Page:         "intro",
		URL:          "/docs/v1/intro#setup",
		Content:      "Install it.",
		SectionIndex: 2,
	}

	doc := record.Document()

	require.Equal(t, "abc", doc.ID)
	assert.Equal(t, "Setup", doc.Fields["title"])
	assert.Equal(t, "Intro", doc.Fields["page_title"])
	assert.Equal(t, &desc, doc.Fields["description"])
	assert.Nil(t, doc.Fields["category"])
	assert.Equal(t, []string{}, doc.Fields["keywords"])
	assert.Equal(t, []string{}, doc.Fields["headings"])
	assert.Equal(t, 2, doc.Fields["section_index"])
	assert.Len(t, doc.Fields, 11)
}

func TestDocsProperties_CoverDocumentFields(t *testing.T) {
	doc := IndexRecord{ID: "x"}.Document()

	props := DocsProperties()
	require.Len(t, props, len(doc.Fields))
	for _, p := range props {
		_, ok := doc.Fields[p.Name]
		assert.True(t, ok, "property %s has no document field", p.Name)
	}
}
