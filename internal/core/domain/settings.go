package domain

import (
	"fmt"
	"time"
)

// Defaults applied when configuration leaves a value unset.
const (
	DefaultDocsDir        = "docs"
	DefaultCacheDir       = "storage/docs"
	DefaultDataDir        = "storage/app/datasets"
	DefaultDocsIndex      = "docs"
	DefaultDocsBatchSize  = 50
	DefaultCSVChunkSize   = 200
	DefaultWorkers        = 1
	DefaultHTTPTimeout    = 30 * time.Second
	DefaultRetryBaseDelay = 500 * time.Millisecond
)

// DefaultMarkdownExtensions are the renderer extensions enabled when none
// are configured.
var DefaultMarkdownExtensions = []string{"table", "strikethrough", "linkify", "tasklist"}

// Settings is the process-wide configuration.
// It is built once at start-up and passed explicitly to constructors.
type Settings struct {
	Docs   DocsSettings   `toml:"docs"`
	Ingest IngestSettings `toml:"ingest"`
	Index  IndexSettings  `toml:"index"`
}

// DocsSettings configures documentation ingestion and caching.
type DocsSettings struct {
	// Dir holds one subdirectory per documentation version.
	Dir string `toml:"dir"`

	// CacheDir receives pre-rendered HTML pages.
	CacheDir string `toml:"cache_dir"`

	// BatchSize is the bulk upsert threshold.
	BatchSize int `toml:"batch_size"`

	// Workers shards files across goroutines when greater than one.
	Workers int `toml:"workers"`

	// MarkdownExtensions names the goldmark extensions to enable.
	MarkdownExtensions []string `toml:"markdown_extensions"`
}

// IngestSettings configures CSV ingestion.
type IngestSettings struct {
	// DataDir holds the CSV datasets and image files.
	DataDir string `toml:"data_dir"`

	// ChunkSize is the bulk upsert threshold.
	ChunkSize int `toml:"chunk_size"`
}

// IndexSettings selects and configures the search index.
type IndexSettings struct {
	Backend   IndexBackend   `toml:"backend"`
	DocsIndex string         `toml:"docs_index"`
	HTTP      HTTPSettings   `toml:"http"`
	SQLite    SQLiteSettings `toml:"sqlite"`
}

// HTTPSettings configures the Elasticsearch-compatible backend.
type HTTPSettings struct {
	URL      string `toml:"url"`
	APIKey   string `toml:"api_key"`
	Username string `toml:"username"`
	Password string `toml:"password"`

	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RequestsPerSecond throttles requests; zero disables throttling.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// MaxRetries is the number of extra attempts for transient failures.
	// Zero keeps the fail-fast behaviour.
	MaxRetries int `toml:"max_retries"`

	// RetryBaseDelayMS is the first backoff delay in milliseconds.
	RetryBaseDelayMS int `toml:"retry_base_delay_ms"`
}

// SQLiteSettings configures the local backend.
type SQLiteSettings struct {
	// Dir holds index.db; empty means ~/.docsindex/data.
	Dir string `toml:"dir"`
}

// DefaultSettings returns settings with every default applied.
func DefaultSettings() Settings {
	s := Settings{}
	s.ApplyDefaults()
	return s
}

// ApplyDefaults fills unset values.
func (s *Settings) ApplyDefaults() {
	if s.Docs.Dir == "" {
		s.Docs.Dir = DefaultDocsDir
	}
	if s.Docs.CacheDir == "" {
		s.Docs.CacheDir = DefaultCacheDir
	}
	if s.Docs.BatchSize <= 0 {
		s.Docs.BatchSize = DefaultDocsBatchSize
	}
	if s.Docs.Workers <= 0 {
		s.Docs.Workers = DefaultWorkers
	}
	if len(s.Docs.MarkdownExtensions) == 0 {
		s.Docs.MarkdownExtensions = append([]string(nil), DefaultMarkdownExtensions...)
	}
	if s.Ingest.DataDir == "" {
		s.Ingest.DataDir = DefaultDataDir
	}
	if s.Ingest.ChunkSize <= 0 {
		s.Ingest.ChunkSize = DefaultCSVChunkSize
	}
	if s.Index.Backend == "" {
		s.Index.Backend = BackendSQLite
	}
	if s.Index.DocsIndex == "" {
		s.Index.DocsIndex = DefaultDocsIndex
	}
}

// Validate checks the settings once at start-up.
func (s *Settings) Validate() error {
	if !s.Index.Backend.IsValid() {
		return fmt.Errorf("%w: index backend %q", ErrUnsupportedType, s.Index.Backend)
	}
	if s.Index.Backend == BackendHTTP && s.Index.HTTP.URL == "" {
		return fmt.Errorf("%w: index.http.url is required for the http backend", ErrInvalidInput)
	}
	if s.Docs.BatchSize <= 0 || s.Ingest.ChunkSize <= 0 {
		return fmt.Errorf("%w: batch sizes must be positive", ErrInvalidInput)
	}
	if s.Index.HTTP.MaxRetries < 0 {
		return fmt.Errorf("%w: index.http.max_retries must not be negative", ErrInvalidInput)
	}
	return nil
}

// HTTPTimeout returns the request timeout for the HTTP backend.
func (h HTTPSettings) HTTPTimeout() time.Duration {
	if h.TimeoutSeconds <= 0 {
		return DefaultHTTPTimeout
	}
	return time.Duration(h.TimeoutSeconds) * time.Second
}

// RetryBaseDelay returns the first backoff delay for the HTTP backend.
func (h HTTPSettings) RetryBaseDelay() time.Duration {
	if h.RetryBaseDelayMS <= 0 {
		return DefaultRetryBaseDelay
	}
	return time.Duration(h.RetryBaseDelayMS) * time.Millisecond
}
