package domain

// Document is the unit submitted to a search index.
// Backends insert or replace documents by ID.
type Document struct {
	// ID is the explicit document id.
	ID string

	// Fields holds the indexed values keyed by property name.
	Fields map[string]any
}

// PropertyType is the index-level type of a field.
type PropertyType string

// Supported property types.
const (
	PropertyText     PropertyType = "text"
	PropertyKeyword  PropertyType = "keyword"
	PropertyLongText PropertyType = "long_text"
	PropertyTitle    PropertyType = "title"
	PropertyName     PropertyType = "name"
	PropertyCategory PropertyType = "category"
	PropertyNumber   PropertyType = "number"
	PropertyPrice    PropertyType = "price"
	PropertyDate     PropertyType = "date"
	PropertyImage    PropertyType = "image"
	PropertyHTML     PropertyType = "html"
)

// Property declares one field of an index.
type Property struct {
	// Name is the field name.
	Name string

	// Type is the field type.
	Type PropertyType

	// Semantic marks fields that the search service also embeds.
	// Embedding happens inside the service, not here.
	Semantic bool
}
