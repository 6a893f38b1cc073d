package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/logger"
)

// Watcher reports documentation pages that were created or written.
// fsnotify is not recursive, so the root and every version directory are
// watched; version directories created later are added on the fly.
type Watcher struct {
	rootPath string
}

// NewWatcher creates a watcher for the docs directory.
func NewWatcher(rootPath string) *Watcher {
	if abs, err := filepath.Abs(rootPath); err == nil {
		rootPath = abs
	}
	return &Watcher{rootPath: rootPath}
}

// Watch streams changed pages until ctx is cancelled. The channel is closed
// when watching stops.
func (w *Watcher) Watch(ctx context.Context) (<-chan domain.SourceDocument, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := fsw.Add(w.rootPath); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("%w: watch %s: %v", domain.ErrMissingSource, w.rootPath, err)
	}

	entries, err := os.ReadDir(w.rootPath)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("read docs dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() && !isHidden(e.Name()) {
			if err := fsw.Add(filepath.Join(w.rootPath, e.Name())); err != nil {
				logger.Warn("Cannot watch %s: %v", e.Name(), err)
			}
		}
	}

	changes := make(chan domain.SourceDocument)

	go func() {
		defer close(changes)
		defer fsw.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if w.isNewVersionDir(event) {
					logger.Debug("Watching new version directory %s", event.Name)
					if err := fsw.Add(event.Name); err != nil {
						logger.Warn("Cannot watch %s: %v", event.Name, err)
					}
					continue
				}

				doc, ok := w.handleFsEvent(event)
				if !ok {
					continue
				}
				select {
				case changes <- doc:
				case <-ctx.Done():
					return
				}

			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// handleFsEvent converts a filesystem event into a changed page.
// Only created or written, non-hidden .md files inside a version directory count.
func (w *Watcher) handleFsEvent(event fsnotify.Event) (domain.SourceDocument, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return domain.SourceDocument{}, false
	}

	path := event.Name
	if isHidden(filepath.Base(path)) || filepath.Ext(path) != ".md" {
		return domain.SourceDocument{}, false
	}
	if filepath.Dir(filepath.Dir(path)) != w.rootPath {
		return domain.SourceDocument{}, false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return domain.SourceDocument{}, false
	}

	doc := domain.NewSourceDocument(path)
	if doc.IsReadme() {
		return domain.SourceDocument{}, false
	}
	return doc, true
}

func (w *Watcher) isNewVersionDir(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) || filepath.Dir(event.Name) != w.rootPath {
		return false
	}
	if isHidden(filepath.Base(event.Name)) {
		return false
	}
	info, err := os.Stat(event.Name)
	return err == nil && info.IsDir()
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
