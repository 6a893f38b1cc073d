package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordDocument_NilSlicesBecomeEmpty(t *testing.T) {
	doc := IndexRecord{ID: "abc", Title: "Intro"}.Document()

	assert.Equal(t, "abc", doc.ID)
	assert.Equal(t, []string{}, doc.Fields["keywords"])
	assert.Equal(t, []string{}, doc.Fields["headings"])
	assert.Nil(t, doc.Fields["description"])
}

func TestDocsProperties_SemanticContent(t *testing.T) {
	var semantic []string
	for _, p := range DocsProperties() {
		if p.Semantic {
			semantic = append(semantic, p.Name)
		}
	}
	assert.Equal(t, []string{"content"}, semantic)
}
