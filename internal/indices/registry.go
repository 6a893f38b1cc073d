package indices

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.IndexDefinitionRegistry = (*Registry)(nil)

// BuilderFunc creates a definition whose dataset lives under dataDir.
type BuilderFunc func(dataDir string) (driven.IndexDefinition, error)

// Registry maps ingestion targets to their definition builders.
type Registry struct {
	dataDir  string
	builders map[domain.IndexTarget]BuilderFunc
}

// NewRegistry creates an empty registry resolving datasets under dataDir.
func NewRegistry(dataDir string) *Registry {
	return &Registry{
		dataDir:  dataDir,
		builders: make(map[domain.IndexTarget]BuilderFunc),
	}
}

// Register adds a definition builder for a target.
func (r *Registry) Register(target domain.IndexTarget, builder BuilderFunc) {
	r.builders[target] = builder
}

// Get builds the definition for a target.
func (r *Registry) Get(target domain.IndexTarget) (driven.IndexDefinition, error) {
	builder, ok := r.builders[target]
	if !ok {
		return nil, fmt.Errorf("%w: index target %q (available: %s)",
			domain.ErrUnsupportedType, target, joinTargets(r.Targets()))
	}
	return builder(r.dataDir)
}

// Has returns true if the target is registered.
func (r *Registry) Has(target domain.IndexTarget) bool {
	_, ok := r.builders[target]
	return ok
}

// Targets returns the registered targets sorted by name.
func (r *Registry) Targets() []domain.IndexTarget {
	targets := make([]domain.IndexTarget, 0, len(r.builders))
	for t := range r.builders {
		targets = append(targets, t)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets
}

func joinTargets(targets []domain.IndexTarget) string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
