package indices

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure ImageData implements the interface.
var _ driven.IndexDefinition = (*ImageData)(nil)

// ImageData indexes image files as base64 data URLs.
type ImageData struct {
	dataDir string
}

// NewImageData creates the definition.
func NewImageData(dataDir string) *ImageData {
	return &ImageData{dataDir: dataDir}
}

// Name returns the index name.
func (d *ImageData) Name() string { return string(domain.TargetImageData) }

// DataPath returns the CSV location.
func (d *ImageData) DataPath() string {
	return filepath.Join(d.dataDir, "image_data.csv")
}

// Properties declares the index fields.
func (d *ImageData) Properties() []domain.Property {
	return []domain.Property{
		{Name: "image", Type: domain.PropertyImage, Semantic: true},
	}
}

// ToDocuments reads the image named by the "high_res" column.
// A missing image aborts the ingestion.
func (d *ImageData) ToDocuments(row map[string]string) ([]domain.Document, error) {
	name := row["high_res"]
	if name == "" {
		return nil, fmt.Errorf("%w: row without high_res", domain.ErrInvalidInput)
	}

	path := filepath.Join(d.dataDir, "image_files", name)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: image not found at %s", domain.ErrMissingSource, path)
		}
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	return []domain.Document{{
		ID: name,
		Fields: map[string]any{
			"image": "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(content),
		},
	}}, nil
}
