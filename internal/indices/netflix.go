package indices

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/docsindex/internal/core/domain"
	"github.com/custodia-labs/docsindex/internal/core/ports/driven"
)

// Ensure NetflixTitles implements the interface.
var _ driven.IndexDefinition = (*NetflixTitles)(nil)

const (
	// netflixDateLayout is the "date_added" format of the dataset, e.g. "September 25, 2021".
	netflixDateLayout = "January 2, 2006"

	// indexDateLayout is the date format stored in the index.
	indexDateLayout = "2006-01-02T15:04:05.000000-07:00"
)

// NetflixTitles is the Netflix catalogue dataset.
type NetflixTitles struct {
	dataDir string
}

// NewNetflixTitles creates the definition.
func NewNetflixTitles(dataDir string) *NetflixTitles {
	return &NetflixTitles{dataDir: dataDir}
}

// Name returns the index name.
func (n *NetflixTitles) Name() string { return string(domain.TargetNetflixTitles) }

// DataPath returns the CSV location.
func (n *NetflixTitles) DataPath() string {
	return filepath.Join(n.dataDir, "netflix_titles.csv")
}

// Properties declares the index fields.
func (n *NetflixTitles) Properties() []domain.Property {
	return []domain.Property{
		{Name: "type", Type: domain.PropertyCategory, Semantic: true},
		{Name: "title", Type: domain.PropertyName, Semantic: true},
		{Name: "director", Type: domain.PropertyName, Semantic: true},
		{Name: "cast", Type: domain.PropertyName, Semantic: true},
		{Name: "country", Type: domain.PropertyCategory},
		{Name: "date_added", Type: domain.PropertyDate},
		{Name: "release_year", Type: domain.PropertyNumber},
		{Name: "rating", Type: domain.PropertyKeyword},
		{Name: "duration", Type: domain.PropertyCategory},
		{Name: "listed_in", Type: domain.PropertyCategory, Semantic: true},
		{Name: "description", Type: domain.PropertyLongText, Semantic: true},
	}
}

// ToDocuments maps one catalogue row. Unparseable dates become nil.
func (n *NetflixTitles) ToDocuments(row map[string]string) ([]domain.Document, error) {
	var releaseYear any
	if year, err := strconv.Atoi(strings.TrimSpace(row["release_year"])); err == nil {
		releaseYear = year
	}

	return []domain.Document{{
		ID: row["show_id"],
		Fields: map[string]any{
			"type":         row["type"],
			"title":        row["title"],
			"director":     row["director"],
			"cast":         row["cast"],
			"country":      row["country"],
			"date_added":   ParseNetflixDate(row["date_added"]),
			"release_year": releaseYear,
			"rating":       row["rating"],
			"duration":     row["duration"],
			"listed_in":    row["listed_in"],
			"description":  row["description"],
		},
	}}, nil
}

// ParseNetflixDate converts "September 25, 2021" to an index timestamp at
// midnight UTC. It returns nil when the value is empty or unparseable.
func ParseNetflixDate(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.ParseInLocation(netflixDateLayout, value, time.UTC)
	if err != nil {
		return nil
	}
	s := t.Format(indexDateLayout)
	return &s
}
