package domain

// DefaultPageOrder is used for pages without an order key.
const DefaultPageOrder = 999

// DefaultCategory is used for pages without a category key.
const DefaultCategory = "Uncategorized"

// categoryOrder ranks known documentation categories in the sidebar.
var categoryOrder = map[string]int{
	"Getting Started": 1,
	"Core Concepts":   2,
	"Features":        3,
	"Text Analysis":   4,
	"Utilities":       5,
	"Advanced":        6,
	"Configuration":   7,
	"Integrations":    8,
	"Reference":       9,
}

// CategoryRank returns the sidebar rank of a category; unknown ones sort last.
func CategoryRank(category string) int {
	if rank, ok := categoryOrder[category]; ok {
		return rank
	}
	return DefaultPageOrder
}

// PageMetadata is the navigation view of one page.
type PageMetadata struct {
	Slug         string
	Title        string
	Description  *string
	Category     string
	Order        int
	Keywords     []string
	RelatedPages []string
}

// NavigationLink is one sidebar entry.
type NavigationLink struct {
	Title       string  `json:"title"`
	Href        string  `json:"href"`
	Description *string `json:"description"`
}

// NavigationSection groups links under a category title.
type NavigationSection struct {
	Title string           `json:"title"`
	Links []NavigationLink `json:"links"`
}
