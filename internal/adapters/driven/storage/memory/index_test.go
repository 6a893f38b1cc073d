package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

func TestIndex_UpsertReplacesByID(t *testing.T) {
	x := NewIndex()
	ctx := context.Background()

	require.NoError(t, x.Create(ctx, "docs", domain.DocsProperties()))
	require.NoError(t, x.Upsert(ctx, "docs", []domain.Document{
		{ID: "b", Fields: map[string]any{"title": "B"}},
		{ID: "a", Fields: map[string]any{"title": "A"}},
	}))
	require.NoError(t, x.Upsert(ctx, "docs", []domain.Document{
		{ID: "a", Fields: map[string]any{"title": "A2"}},
	}))

	assert.Equal(t, 2, x.Count("docs"))
	assert.Equal(t, []string{"a", "b"}, x.IDs("docs"))
	assert.Equal(t, 2, x.Upserts())

	doc, err := x.Get("docs", "a")
	require.NoError(t, err)
	assert.Equal(t, "A2", doc.Fields["title"])
}

func TestIndex_FieldsAreCopied(t *testing.T) {
	x := NewIndex()
	ctx := context.Background()
	require.NoError(t, x.Create(ctx, "docs", nil))

	fields := map[string]any{"title": "A"}
	require.NoError(t, x.Upsert(ctx, "docs", []domain.Document{{ID: "a", Fields: fields}}))
	fields["title"] = "mutated"

	doc, err := x.Get("docs", "a")
	require.NoError(t, err)
	assert.Equal(t, "A", doc.Fields["title"])
}

func TestIndex_CreateKeepsDocuments(t *testing.T) {
	x := NewIndex()
	ctx := context.Background()

	require.NoError(t, x.Create(ctx, "docs", nil))
	require.NoError(t, x.Upsert(ctx, "docs", []domain.Document{{ID: "a"}}))
	require.NoError(t, x.Create(ctx, "docs", nil))
	assert.Equal(t, 1, x.Count("docs"))
}

func TestIndex_DeleteIfExists(t *testing.T) {
	x := NewIndex()
	ctx := context.Background()

	require.NoError(t, x.DeleteIfExists(ctx, "missing"))
	require.NoError(t, x.Create(ctx, "docs", nil))
	require.NoError(t, x.Upsert(ctx, "docs", []domain.Document{{ID: "a"}}))
	require.NoError(t, x.DeleteIfExists(ctx, "docs"))

	assert.Zero(t, x.Count("docs"))
	_, err := x.Get("docs", "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestIndex_UpsertErrors(t *testing.T) {
	x := NewIndex()
	ctx := context.Background()

	err := x.Upsert(ctx, "missing", []domain.Document{{ID: "a"}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, x.Create(ctx, "docs", nil))
	err = x.Upsert(ctx, "docs", []domain.Document{{ID: "a"}, {}})
	assert.ErrorIs(t, err, domain.ErrBulkRejected)
	assert.Zero(t, x.Count("docs"))
}

func TestIndex_ConcurrentUpserts(t *testing.T) {
	x := NewIndex()
	ctx := context.Background()
	require.NoError(t, x.Create(ctx, "docs", nil))

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			assert.NoError(t, x.Upsert(ctx, "docs", []domain.Document{{ID: domain.RecordID("w", w)}}))
		}(w)
	}
	wg.Wait()
	assert.Equal(t, 8, x.Count("docs"))
}
