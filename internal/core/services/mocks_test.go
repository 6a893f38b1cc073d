package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// recordingIndex implements driven.SearchIndex and records every call.
type recordingIndex struct {
	mu        sync.Mutex
	calls     []string
	created   map[string][]domain.Property
	docs      map[string]map[string]domain.Document
	batches   []int
	upsertErr error
	failAfter int
}

var _ driven.SearchIndex = (*recordingIndex)(nil)

func newRecordingIndex() *recordingIndex {
	return &recordingIndex{
		created: make(map[string][]domain.Property),
		docs:    make(map[string]map[string]domain.Document),
	}
}

func (m *recordingIndex) DeleteIfExists(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "delete:"+name)
	delete(m.docs, name)
	delete(m.created, name)
	return nil
}

func (m *recordingIndex) Create(_ context.Context, name string, props []domain.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, "create:"+name)
	m.created[name] = props
	if m.docs[name] == nil {
		m.docs[name] = make(map[string]domain.Document)
	}
	return nil
}

func (m *recordingIndex) Upsert(_ context.Context, name string, docs []domain.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, fmt.Sprintf("upsert:%s:%d", name, len(docs)))
	if m.upsertErr != nil && len(m.batches) >= m.failAfter {
		return m.upsertErr
	}
	m.batches = append(m.batches, len(docs))
	if m.docs[name] == nil {
		m.docs[name] = make(map[string]domain.Document)
	}
	for _, d := range docs {
		m.docs[name][d.ID] = d
	}
	return nil
}

func (m *recordingIndex) Ping(context.Context) error { return nil }

func (m *recordingIndex) Close() error { return nil }

func (m *recordingIndex) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs[name])
}

func (m *recordingIndex) ids(name string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.docs[name]))
	for id := range m.docs[name] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// mapPageSource implements driven.PageSource over in-memory pages keyed by
// "<version>/<page>.md".
type mapPageSource struct {
	root    string
	pages   map[string]string
	listErr error
	readErr error
}

var _ driven.PageSource = (*mapPageSource)(nil)

func (m *mapPageSource) List(_ context.Context) ([]domain.SourceDocument, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var docs []domain.SourceDocument
	for rel := range m.pages {
		doc := domain.NewSourceDocument(m.root + "/" + rel)
		if doc.IsReadme() {
			continue
		}
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

func (m *mapPageSource) ListVersion(ctx context.Context, version string) ([]domain.SourceDocument, error) {
	all, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	var docs []domain.SourceDocument
	for _, d := range all {
		if d.Version == version {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

func (m *mapPageSource) Read(_ context.Context, doc domain.SourceDocument) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.pages[doc.RelativePath()]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return []byte(content), nil
}

// captureReporter implements driving.Reporter and keeps every line.
type captureReporter struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (r *captureReporter) Info(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *captureReporter) Warn(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

// mapRowSource implements driven.RowSource over in-memory files.
type mapRowSource struct {
	files map[string][]map[string]string
	seen  []string
}

var _ driven.RowSource = (*mapRowSource)(nil)

func (m *mapRowSource) Each(_ context.Context, path string, fn func(map[string]string) error) error {
	m.seen = append(m.seen, path)
	rows, ok := m.files[path]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrMissingSource, path)
	}
	for _, row := range rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// mapPageCache implements driven.PageCache in memory.
type mapPageCache struct {
	pages   map[string][]byte
	cleared bool
}

var _ driven.PageCache = (*mapPageCache)(nil)

func (m *mapPageCache) Write(_ context.Context, doc domain.SourceDocument, html []byte) error {
	if m.pages == nil {
		m.pages = make(map[string][]byte)
	}
	m.pages[doc.Version+"/"+doc.Page+".html"] = html
	return nil
}

func (m *mapPageCache) Clear(_ context.Context) error {
	m.pages = nil
	m.cleared = true
	return nil
}
