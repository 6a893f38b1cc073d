package indices

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure AsosProducts implements the interface.
var _ driven.IndexDefinition = (*AsosProducts)(nil)

var imageURL = regexp.MustCompile(`https://[^\s'"]+`)

// AsosProducts is the fashion product dataset.
type AsosProducts struct {
	dataDir string
}

// NewAsosProducts creates the definition.
func NewAsosProducts(dataDir string) *AsosProducts {
	return &AsosProducts{dataDir: dataDir}
}

// Name returns the index name.
func (a *AsosProducts) Name() string { return string(domain.TargetAsosProducts) }

// DataPath returns the CSV location.
func (a *AsosProducts) DataPath() string {
	return filepath.Join(a.dataDir, "asos_products.csv")
}

// Properties declares the index fields.
func (a *AsosProducts) Properties() []domain.Property {
	return []domain.Property{
		{Name: "name", Type: domain.PropertyName},
		{Name: "size", Type: domain.PropertyCategory},
		{Name: "category", Type: domain.PropertyCategory, Semantic: true},
		{Name: "price", Type: domain.PropertyPrice},
		{Name: "color", Type: domain.PropertyCategory, Semantic: true},
		{Name: "sku", Type: domain.PropertyKeyword},
		{Name: "description", Type: domain.PropertyLongText, Semantic: true},
		{Name: "images", Type: domain.PropertyImage},
	}
}

// ToDocuments maps one product row. The image column holds a list literal
// from which every https URL is extracted. Rows without an id get a random one.
func (a *AsosProducts) ToDocuments(row map[string]string) ([]domain.Document, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(row["price"]), 64)
	if err != nil {
		price = 0
	}

	images := imageURL.FindAllString(row["images"], -1)
	if images == nil {
		images = []string{}
	}

	id := row["id"]
	if id == "" {
		id = uuid.NewString()
	}

	return []domain.Document{{
		ID: id,
		Fields: map[string]any{
			"name":        row["name"],
			"size":        row["size"],
			"category":    row["category"],
			"price":       price,
			"color":       row["color"],
			"sku":         row["sku"],
			"description": row["description"],
			"images":      images,
		},
	}}, nil
}
