package cli

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driving"
)

// fakeIndexer implements driving.DocsIndexer for testing.
type fakeIndexer struct {
	mu       sync.Mutex
	opts     driving.IndexOptions
	summary  *driving.IndexSummary
	runErr   error
	pageErrs map[string]error
	pages    []string
}

func (f *fakeIndexer) Run(_ context.Context, opts driving.IndexOptions) (*driving.IndexSummary, error) {
	f.opts = opts
	if f.runErr != nil {
		return nil, f.runErr
	}
	if f.summary == nil {
		return &driving.IndexSummary{}, nil
	}
	return f.summary, nil
}

func (f *fakeIndexer) IndexPage(_ context.Context, doc domain.SourceDocument) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages = append(f.pages, doc.RelativePath())
	if err := f.pageErrs[doc.RelativePath()]; err != nil {
		return 0, err
	}
	return 1, nil
}

// fakeIngester implements driving.CSVIngester for testing.
type fakeIngester struct {
	target domain.IndexTarget
	opts   driving.IngestOptions
	calls  int
	err    error
}

func (f *fakeIngester) Ingest(_ context.Context, target domain.IndexTarget, opts driving.IngestOptions) (int, error) {
	f.calls++
	f.target = target
	f.opts = opts
	return 0, f.err
}

func (f *fakeIngester) Targets() []domain.IndexTarget {
	return domain.AllIndexTargets()
}

// fakeDocumentation implements driving.DocumentationService for testing.
type fakeDocumentation struct {
	nav        []domain.NavigationSection
	navVersion string
	cached     int
	cacheErr   error
	cleared    bool
}

func (f *fakeDocumentation) Navigation(_ context.Context, version string) ([]domain.NavigationSection, error) {
	f.navVersion = version
	return f.nav, nil
}

func (f *fakeDocumentation) RenderPage(context.Context, domain.SourceDocument) ([]byte, error) {
	return nil, nil
}

func (f *fakeDocumentation) Cache(context.Context) (int, error) {
	return f.cached, f.cacheErr
}

func (f *fakeDocumentation) ClearCache(context.Context) error {
	f.cleared = true
	return nil
}

// fakeWatcher replays a fixed list of pages, then stops.
type fakeWatcher struct {
	docs []domain.SourceDocument
}

func (f *fakeWatcher) Watch(context.Context) (<-chan domain.SourceDocument, error) {
	ch := make(chan domain.SourceDocument, len(f.docs))
	for _, d := range f.docs {
		ch <- d
	}
	close(ch)
	return ch, nil
}

// testEnv swaps the settings loader and service builder for one test.
type testEnv struct {
	out      *bytes.Buffer
	settings domain.Settings
	needs    needs
	built    int
}

func setupCLITest(t *testing.T, svc *Services) *testEnv {
	t.Helper()
	env := &testEnv{out: new(bytes.Buffer)}

	oldLoad, oldNew := loadSettings, newServices
	loadSettings = func(string) (domain.Settings, error) {
		return domain.DefaultSettings(), nil
	}
	newServices = func(s domain.Settings, _ driving.Reporter, n needs) (*Services, error) {
		env.settings = s
		env.needs = n
		env.built++
		return svc, nil
	}
	resetFlags()
	t.Cleanup(func() {
		loadSettings, newServices = oldLoad, oldNew
		resetFlags()
	})
	return env
}

func (e *testEnv) run(args ...string) error {
	rootCmd.SetOut(e.out)
	rootCmd.SetErr(e.out)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return Execute(context.Background())
}

// resetFlags clears flag variables, which cobra keeps between executions.
func resetFlags() {
	cfgFile, verbose = "", false
	indexFresh, indexDocsDir, indexBatchSize, indexWorkers, indexDryRun, indexWatch = false, "", 0, 0, false, false
	ingestFresh, ingestChunk, ingestFile = false, 0, ""
	versionShort = false
}
