package filesystem

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure PageSource implements the interface.
var _ driven.PageSource = (*PageSource)(nil)

// PageSource lists Markdown pages one directory level below the root.
type PageSource struct {
	rootPath string
}

// NewPageSource creates a page source rooted at the docs directory.
// The root is made absolute so record ids do not depend on the working directory.
func NewPageSource(rootPath string) *PageSource {
	if abs, err := filepath.Abs(rootPath); err == nil {
		rootPath = abs
	}
	return &PageSource{rootPath: rootPath}
}

// Root returns the absolute docs directory.
func (s *PageSource) Root() string {
	return s.rootPath
}

// List returns every <version>/<page>.md, sorted by path, skipping READMEs.
func (s *PageSource) List(_ context.Context) ([]domain.SourceDocument, error) {
	if err := s.checkDir(s.rootPath); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.rootPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.rootPath, err)
	}

	var paths []string
	for _, entry := range entries {
		dir := filepath.Join(s.rootPath, entry.Name())
		if !isDir(dir) {
			continue
		}
		pages, err := pagePaths(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, pages...)
	}
	return documents(paths), nil
}

// ListVersion returns the pages of one version directory.
func (s *PageSource) ListVersion(_ context.Context, version string) ([]domain.SourceDocument, error) {
	if version == "" || version != filepath.Base(version) {
		return nil, fmt.Errorf("%w: version %q", domain.ErrInvalidInput, version)
	}
	dir := filepath.Join(s.rootPath, version)
	if err := s.checkDir(dir); err != nil {
		return nil, err
	}
	paths, err := pagePaths(dir)
	if err != nil {
		return nil, err
	}
	return documents(paths), nil
}

// Read returns the raw page bytes.
func (s *PageSource) Read(_ context.Context, doc domain.SourceDocument) ([]byte, error) {
	content, err := os.ReadFile(doc.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, doc.Path)
		}
		return nil, fmt.Errorf("read page: %w", err)
	}
	return content, nil
}

func (s *PageSource) checkDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", domain.ErrMissingSource, dir)
		}
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrMissingSource, dir)
	}
	return nil
}

// pagePaths returns the .md files directly inside dir. Symlinks are followed.
func pagePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func documents(paths []string) []domain.SourceDocument {
	sort.Strings(paths)

	docs := make([]domain.SourceDocument, 0, len(paths))
	for _, path := range paths {
		doc := domain.NewSourceDocument(path)
		if doc.IsReadme() {
			continue
		}
		docs = append(docs, doc)
	}
	return docs
}
