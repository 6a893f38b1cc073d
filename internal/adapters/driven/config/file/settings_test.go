package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

// envMap returns a lookup function backed by a map.
func envMap(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func newTestLoader(t *testing.T, env map[string]string, opts ...Option) (*Loader, string, string) {
	t.Helper()
	work := t.TempDir()
	home := t.TempDir()
	base := []Option{WithWorkDir(work), WithHomeDir(home), WithLookupEnv(envMap(env))}
	return NewLoader(append(base, opts...)...), work, home
}

func TestLoad_DefaultsWithoutFiles(t *testing.T) {
	loader, _, _ := newTestLoader(t, nil)

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)
	assert.Empty(t, loader.Source())
}

func TestLoad_LocalFileWinsOverUserFile(t *testing.T) {
	loader, work, home := newTestLoader(t, nil)
	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), "[docs]\ndir = \"from-home\"\n")
	writeFile(t, filepath.Join(work, LocalConfigFile), "[docs]\ndir = \"from-work\"\nbatch_size = 10\n")

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-work", settings.Docs.Dir)
	assert.Equal(t, 10, settings.Docs.BatchSize)
	assert.Equal(t, filepath.Join(work, LocalConfigFile), loader.Source())
}

func TestLoad_UserFile(t *testing.T) {
	loader, _, home := newTestLoader(t, nil)
	writeFile(t, filepath.Join(home, UserConfigDir, UserConfigFile), `
[index]
backend = "http"
docs_index = "docs_v2"

[index.http]
url = "http://search:9200"
max_retries = 2
`)

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.BackendHTTP, settings.Index.Backend)
	assert.Equal(t, "docs_v2", settings.Index.DocsIndex)
	assert.Equal(t, "http://search:9200", settings.Index.HTTP.URL)
	assert.Equal(t, 2, settings.Index.HTTP.MaxRetries)
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, "[ingest]\nchunk_size = 500\n")

	loader, _, _ := newTestLoader(t, nil, WithConfigPath(path))
	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, 500, settings.Ingest.ChunkSize)
	assert.Equal(t, path, loader.Source())
}

func TestLoad_ExplicitPathMissing(t *testing.T) {
	loader, _, _ := newTestLoader(t, nil, WithConfigPath("/nonexistent/docsindex.toml"))

	_, err := loader.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingSource)
}

func TestLoad_MalformedTOML(t *testing.T) {
	loader, work, _ := newTestLoader(t, nil)
	writeFile(t, filepath.Join(work, LocalConfigFile), "[docs\ndir = ")

	_, err := loader.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	loader, work, _ := newTestLoader(t, map[string]string{
		EnvDocsDir:      "env-docs",
		EnvIndexBackend: "memory",
		EnvWorkers:      "4",
	})
	writeFile(t, filepath.Join(work, LocalConfigFile), "[docs]\ndir = \"file-docs\"\n")

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "env-docs", settings.Docs.Dir)
	assert.Equal(t, domain.BackendMemory, settings.Index.Backend)
	assert.Equal(t, 4, settings.Docs.Workers)
}

func TestLoad_MarkdownExtensions(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		loader, work, _ := newTestLoader(t, nil)
		writeFile(t, filepath.Join(work, LocalConfigFile), "[docs]\nmarkdown_extensions = [\"gfm\", \"footnote\"]\n")

		settings, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"gfm", "footnote"}, settings.Docs.MarkdownExtensions)
	})

	t.Run("env list wins", func(t *testing.T) {
		loader, work, _ := newTestLoader(t, map[string]string{
			EnvMarkdownExtensions: " table, ,definition ",
		})
		writeFile(t, filepath.Join(work, LocalConfigFile), "[docs]\nmarkdown_extensions = [\"gfm\"]\n")

		settings, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"table", "definition"}, settings.Docs.MarkdownExtensions)
	})

	t.Run("defaults when unset", func(t *testing.T) {
		loader, _, _ := newTestLoader(t, nil)

		settings, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultMarkdownExtensions, settings.Docs.MarkdownExtensions)
	})
}

func TestLoad_DotenvBelowProcessEnv(t *testing.T) {
	loader, work, _ := newTestLoader(t, map[string]string{
		EnvIndexURL: "http://process:9200",
	})
	writeFile(t, filepath.Join(work, EnvFile), "DOCSINDEX_INDEX_URL=http://dotenv:9200\nSIGMIE_ADMIN_KEY=admin-secret\n")

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://process:9200", settings.Index.HTTP.URL)
	assert.Equal(t, "admin-secret", settings.Index.HTTP.APIKey)
}

func TestLoad_APIKeyPrecedence(t *testing.T) {
	loader, _, _ := newTestLoader(t, map[string]string{
		EnvAdminKey:    "legacy",
		EnvIndexAPIKey: "preferred",
	})

	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "preferred", settings.Index.HTTP.APIKey)
}

func TestLoad_InvalidNumber(t *testing.T) {
	loader, _, _ := newTestLoader(t, map[string]string{EnvBatchSize: "lots"})

	_, err := loader.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", LocalConfigFile)
	require.NoError(t, WriteDefault(path))

	loader := NewLoader(WithConfigPath(path), WithWorkDir(t.TempDir()), WithLookupEnv(envMap(nil)))
	settings, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), settings)

	err = WriteDefault(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
