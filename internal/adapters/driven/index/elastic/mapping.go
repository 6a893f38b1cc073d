package elastic

import "github.com/custodia-labs/docsindex/internal/core/domain"

// fieldMapping returns the cluster mapping for a property type.
func fieldMapping(t domain.PropertyType) map[string]any {
	switch t {
	case domain.PropertyTitle, domain.PropertyName:
		return map[string]any{
			"type": "text",
			"fields": map[string]any{
				"keyword": map[string]any{"type": "keyword", "ignore_above": 256},
			},
		}
	case domain.PropertyKeyword, domain.PropertyCategory:
		return map[string]any{"type": "keyword"}
	case domain.PropertyNumber:
		return map[string]any{"type": "long"}
	case domain.PropertyPrice:
		return map[string]any{"type": "double"}
	case domain.PropertyDate:
		return map[string]any{"type": "date"}
	case domain.PropertyImage:
		// Data URLs are stored for display only.
		return map[string]any{"type": "keyword", "index": false, "doc_values": false}
	case domain.PropertyHTML:
		return map[string]any{"type": "text", "analyzer": "standard"}
	default:
		return map[string]any{"type": "text"}
	}
}

// indexBody builds the create-index request body.
func indexBody(props []domain.Property) map[string]any {
	properties := make(map[string]any, len(props))
	for _, p := range props {
		properties[p.Name] = fieldMapping(p.Type)
	}
	return map[string]any{
		"mappings": map[string]any{
			"properties": properties,
		},
	}
}
