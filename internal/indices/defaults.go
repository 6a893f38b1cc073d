package indices

import (
	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// RegisterDefaults registers every built-in ingestion target.
func RegisterDefaults(r *Registry) {
	r.Register(domain.TargetNetflixTitles, func(dataDir string) (driven.IndexDefinition, error) {
		return NewNetflixTitles(dataDir), nil
	})
	r.Register(domain.TargetImageData, func(dataDir string) (driven.IndexDefinition, error) {
		return NewImageData(dataDir), nil
	})
	r.Register(domain.TargetResumes, func(dataDir string) (driven.IndexDefinition, error) {
		return NewResumes(dataDir), nil
	})
	r.Register(domain.TargetAsosProducts, func(dataDir string) (driven.IndexDefinition, error) {
		return NewAsosProducts(dataDir), nil
	})
}

// NewDefaultRegistry returns a registry with every built-in target.
func NewDefaultRegistry(dataDir string) *Registry {
	r := NewRegistry(dataDir)
	RegisterDefaults(r)
	return r
}
