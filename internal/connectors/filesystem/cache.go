package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure PageCache implements the interface.
var _ driven.PageCache = (*PageCache)(nil)

// PageCache stores rendered pages as <root>/<version>/<page>.html.
type PageCache struct {
	rootPath string
}

// NewPageCache creates a cache rooted at the given directory.
func NewPageCache(rootPath string) *PageCache {
	return &PageCache{rootPath: rootPath}
}

// Path returns the cache file of a page.
func (c *PageCache) Path(doc domain.SourceDocument) string {
	return filepath.Join(c.rootPath, doc.Version, doc.Page+".html")
}

// Write stores the page, creating the version directory as needed.
func (c *PageCache) Write(_ context.Context, doc domain.SourceDocument, html []byte) error {
	path := c.Path(doc)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(path, html, 0644); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	return nil
}

// Read returns a cached page, or domain.ErrNotFound.
func (c *PageCache) Read(_ context.Context, doc domain.SourceDocument) ([]byte, error) {
	content, err := os.ReadFile(c.Path(doc))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("read cache file: %w", err)
	}
	return content, nil
}

// Clear removes cached .html files and the version directories left empty.
// Other files are kept. A missing cache root is not an error.
func (c *PageCache) Clear(_ context.Context) error {
	entries, err := os.ReadDir(c.rootPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read cache dir: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(c.rootPath, e.Name())
		if err := clearVersion(dir); err != nil {
			return err
		}
		remaining, err := os.ReadDir(dir)
		if err != nil || len(remaining) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("remove %s: %w", dir, err)
		}
	}
	return nil
}

func clearVersion(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".html" {
			continue
		}
		path := filepath.Join(dir, f.Name())
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}
	return nil
}
