package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// Config file names.
const (
	LocalConfigFile = "docsindex.toml"
	UserConfigDir   = ".docsindex"
	UserConfigFile  = "config.toml"
	EnvFile         = ".env"
)

// Environment variables that override file settings.
const (
	EnvDocsDir       = "DOCSINDEX_DOCS_DIR"
	EnvCacheDir      = "DOCSINDEX_CACHE_DIR"
	EnvDataDir       = "DOCSINDEX_DATA_DIR"
	EnvIndexBackend  = "DOCSINDEX_INDEX_BACKEND"
	EnvIndexName     = "DOCSINDEX_INDEX_NAME"
	EnvIndexURL      = "DOCSINDEX_INDEX_URL"
	EnvIndexAPIKey   = "DOCSINDEX_INDEX_API_KEY"
	EnvIndexUsername = "DOCSINDEX_INDEX_USERNAME"
	EnvIndexPassword = "DOCSINDEX_INDEX_PASSWORD"
	EnvSQLiteDir     = "DOCSINDEX_SQLITE_DIR"
	EnvBatchSize     = "DOCSINDEX_BATCH_SIZE"
	EnvWorkers       = "DOCSINDEX_WORKERS"

	// EnvMarkdownExtensions is a comma-separated extension list.
	EnvMarkdownExtensions = "DOCSINDEX_MARKDOWN_EXTENSIONS"

	// EnvAdminKey is the admin key name used by existing deployments.
	// DOCSINDEX_INDEX_API_KEY wins when both are set.
	EnvAdminKey = "SIGMIE_ADMIN_KEY"
)

// Loader builds domain.Settings from files and the environment.
type Loader struct {
	configPath string
	workDir    string
	homeDir    string
	lookupEnv  func(string) (string, bool)
	source     string
}

// Option configures a Loader.
type Option func(*Loader)

// WithConfigPath sets an explicit config file. It must exist.
func WithConfigPath(path string) Option {
	return func(l *Loader) {
		l.configPath = path
	}
}

// WithWorkDir sets the directory searched for docsindex.toml and .env.
func WithWorkDir(dir string) Option {
	return func(l *Loader) {
		l.workDir = dir
	}
}

// WithHomeDir sets the directory searched for .docsindex/config.toml.
func WithHomeDir(dir string) Option {
	return func(l *Loader) {
		l.homeDir = dir
	}
}

// WithLookupEnv replaces os.LookupEnv (tests).
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(l *Loader) {
		l.lookupEnv = fn
	}
}

// NewLoader creates a settings loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.workDir == "" {
		if wd, err := os.Getwd(); err == nil {
			l.workDir = wd
		}
	}
	if l.homeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			l.homeDir = home
		}
	}
	return l
}

// Source returns the config file used by the last Load, or "" if none.
func (l *Loader) Source() string {
	return l.source
}

// Load reads and layers every settings source. Defaults are applied but the
// result is not validated, so callers can apply flags first.
func (l *Loader) Load() (domain.Settings, error) {
	var settings domain.Settings

	path, err := l.resolve()
	if err != nil {
		return settings, err
	}
	l.source = path
	if path != "" {
		if err := readTOML(path, &settings); err != nil {
			return settings, err
		}
		logger.Debug("loaded config from %s", path)
	}

	dotenv, err := l.readDotenv()
	if err != nil {
		return settings, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := l.lookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := applyEnv(&settings, lookup); err != nil {
		return settings, err
	}

	settings.ApplyDefaults()
	return settings, nil
}

// resolve picks the config file: explicit path, then the working
// directory, then the user config directory.
func (l *Loader) resolve() (string, error) {
	if l.configPath != "" {
		if _, err := os.Stat(l.configPath); err != nil {
			return "", fmt.Errorf("%w: config file %s", domain.ErrMissingSource, l.configPath)
		}
		return l.configPath, nil
	}

	var candidates []string
	if l.workDir != "" {
		candidates = append(candidates, filepath.Join(l.workDir, LocalConfigFile))
	}
	if l.homeDir != "" {
		candidates = append(candidates, filepath.Join(l.homeDir, UserConfigDir, UserConfigFile))
	}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func (l *Loader) readDotenv() (map[string]string, error) {
	if l.workDir == "" {
		return nil, nil
	}
	path := filepath.Join(l.workDir, EnvFile)
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrParse, path, err)
	}
	logger.Debug("loaded environment from %s", path)
	return values, nil
}

func readTOML(path string, settings *domain.Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, settings); err != nil {
		return fmt.Errorf("%w: config %s: %v", domain.ErrParse, path, err)
	}
	return nil
}

// applyEnv overrides settings from environment variables.
func applyEnv(s *domain.Settings, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", domain.ErrInvalidInput, key, v)
		}
		*dst = n
		return nil
	}

	str(EnvDocsDir, &s.Docs.Dir)
	str(EnvCacheDir, &s.Docs.CacheDir)
	str(EnvDataDir, &s.Ingest.DataDir)
	str(EnvIndexName, &s.Index.DocsIndex)
	str(EnvIndexURL, &s.Index.HTTP.URL)
	str(EnvAdminKey, &s.Index.HTTP.APIKey)
	str(EnvIndexAPIKey, &s.Index.HTTP.APIKey)
	str(EnvIndexUsername, &s.Index.HTTP.Username)
	str(EnvIndexPassword, &s.Index.HTTP.Password)
	str(EnvSQLiteDir, &s.Index.SQLite.Dir)

	if v, ok := lookup(EnvIndexBackend); ok && v != "" {
		s.Index.Backend = domain.IndexBackend(v)
	}
	if v, ok := lookup(EnvMarkdownExtensions); ok && v != "" {
		s.Docs.MarkdownExtensions = splitList(v)
	}

	if err := num(EnvBatchSize, &s.Docs.BatchSize); err != nil {
		return err
	}
	return num(EnvWorkers, &s.Docs.Workers)
}

// splitList splits a comma-separated value, dropping blank items.
func splitList(v string) []string {
	var items []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// WriteDefault writes a config file holding the default settings.
// An existing file is not overwritten.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s already exists", domain.ErrInvalidInput, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(domain.DefaultSettings())
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
