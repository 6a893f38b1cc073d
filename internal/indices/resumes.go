package indices

import (
	"path/filepath"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure Resumes implements the interface.
var _ driven.IndexDefinition = (*Resumes)(nil)

// Resumes is the resume dataset.
type Resumes struct {
	dataDir string
}

// NewResumes creates the definition.
func NewResumes(dataDir string) *Resumes {
	return &Resumes{dataDir: dataDir}
}

// Name returns the index name.
func (r *Resumes) Name() string { return string(domain.TargetResumes) }

// DataPath returns the CSV location.
func (r *Resumes) DataPath() string {
	return filepath.Join(r.dataDir, "resumes.csv")
}

// Properties declares the index fields.
func (r *Resumes) Properties() []domain.Property {
	return []domain.Property{
		{Name: "category", Type: domain.PropertyCategory},
		{Name: "resume_html", Type: domain.PropertyHTML},
		{Name: "resume_str", Type: domain.PropertyText, Semantic: true},
	}
}

// ToDocuments maps one resume row.
func (r *Resumes) ToDocuments(row map[string]string) ([]domain.Document, error) {
	return []domain.Document{{
		ID: row["ID"],
		Fields: map[string]any{
			"resume_str":  row["Resume_str"],
			"resume_html": row["Resume_html"],
			"category":    row["Category"],
		},
	}}, nil
}
