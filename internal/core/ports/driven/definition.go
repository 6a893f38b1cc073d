package driven

import "github.com/custodia-labs/docsindex/internal/core/domain"

// IndexDefinition describes one CSV ingestion target.
type IndexDefinition interface {
	// Name is the index name.
	Name() string

	// Properties declares the index fields.
	Properties() []domain.Property

	// DataPath is the default CSV location.
	DataPath() string

	// ToDocuments maps one CSV row to index documents.
	ToDocuments(row map[string]string) ([]domain.Document, error)
}

// IndexDefinitionRegistry resolves targets to definitions.
type IndexDefinitionRegistry interface {
	// Get returns the definition for a target.
	// Unknown targets yield domain.ErrUnsupportedType.
	Get(target domain.IndexTarget) (IndexDefinition, error)

	// Targets lists the registered targets in stable order.
	Targets() []domain.IndexTarget
}
