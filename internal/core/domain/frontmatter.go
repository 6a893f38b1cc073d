package domain

// Recognised frontmatter keys.
const (
	FrontmatterTitle            = "title"
	FrontmatterShortDescription = "short_description"
	FrontmatterCategory         = "category"
	FrontmatterKeywords         = "keywords"
	FrontmatterOrder            = "order"
	FrontmatterRelatedPages     = "related_pages"
)

// Frontmatter is the metadata mapping parsed from a page's leading YAML block.
// A page without a block has an empty, non-nil mapping.
type Frontmatter map[string]any

// String returns a scalar string value, or "" when absent or not a string.
func (f Frontmatter) String(key string) string {
	s, _ := f.lookupString(key)
	return s
}

// OptionalString returns a pointer to a string value, or nil when absent.
func (f Frontmatter) OptionalString(key string) *string {
	s, ok := f.lookupString(key)
	if !ok {
		return nil
	}
	return &s
}

func (f Frontmatter) lookupString(key string) (string, bool) {
	val, ok := f[key]
	if !ok || val == nil {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

// Strings returns a sequence value as strings.
// Non-string items are skipped; a missing key yields an empty slice.
func (f Frontmatter) Strings(key string) []string {
	result := []string{}
	switch v := f[key].(type) {
	case []string:
		result = append(result, v...)
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
	}
	return result
}

// Int returns an integer value, or def when absent or not numeric.
// Handles the int, int64 and float64 types YAML decoding may produce.
func (f Frontmatter) Int(key string, def int) int {
	switch v := f[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	default:
		return def
	}
}

// Title returns the page title, or "" when the frontmatter has none.
func (f Frontmatter) Title() string {
	return f.String(FrontmatterTitle)
}

// Description returns short_description, or nil when absent.
func (f Frontmatter) Description() *string {
	return f.OptionalString(FrontmatterShortDescription)
}

// Category returns the category, or nil when absent.
func (f Frontmatter) Category() *string {
	return f.OptionalString(FrontmatterCategory)
}

// Keywords returns the keyword list, empty when absent.
func (f Frontmatter) Keywords() []string {
	return f.Strings(FrontmatterKeywords)
}

// Order returns the navigation order, 999 when absent.
func (f Frontmatter) Order() int {
	return f.Int(FrontmatterOrder, DefaultPageOrder)
}

// RelatedPages returns related page slugs, empty when absent.
func (f Frontmatter) RelatedPages() []string {
	return f.Strings(FrontmatterRelatedPages)
}
