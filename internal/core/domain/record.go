package domain

import (
	"crypto/md5" //nolint:gosec // Used for stable ids, not security.
	"encoding/hex"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// IndexRecord is one search record built from a retained Section.
type IndexRecord struct {
	ID           string
	Title        string
	PageTitle    string
	Description  *string
	Category     *string
	Keywords     []string
	Version      string
	Page         string
	URL          string
	Content      string
	Headings     []string
	SectionIndex int
}

// RecordID returns the deterministic record id for a section ordinal of a
// source file. Re-ingesting an unchanged file reproduces the same ids.
func RecordID(sourcePath string, ordinal int) string {
	sum := md5.Sum([]byte(sourcePath + "-" + strconv.Itoa(ordinal))) //nolint:gosec
	return hex.EncodeToString(sum[:])
}

// SlugTitle turns a page slug into a fallback title:
// hyphens become spaces and the first letter is upper-cased.
func SlugTitle(slug string) string {
	title := strings.ReplaceAll(slug, "-", " ")
	r, size := utf8.DecodeRuneInString(title)
	if r == utf8.RuneError {
		return title
	}
	return string(unicode.ToUpper(r)) + title[size:]
}

// Document converts the record into the generic index document.
func (r IndexRecord) Document() Document {
	keywords := r.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	headings := r.Headings
	if headings == nil {
		headings = []string{}
	}

	return Document{
		ID: r.ID,
		Fields: map[string]any{
			"title":         r.Title,
			"page_title":    r.PageTitle,
			"description":   r.Description,
			"category":      r.Category,
			"keywords":      keywords,
			"version":       r.Version,
			"page":          r.Page,
			"url":           r.URL,
			"content":       r.Content,
			"headings":      headings,
			"section_index": r.SectionIndex,
		},
	}
}

// DocsProperties declares the fields of the documentation index.
func DocsProperties() []Property {
	return []Property{
		{Name: "title", Type: PropertyTitle},
		{Name: "page_title", Type: PropertyText},
		{Name: "description", Type: PropertyText},
		{Name: "category", Type: PropertyCategory},
		{Name: "keywords", Type: PropertyKeyword},
		{Name: "version", Type: PropertyKeyword},
		{Name: "page", Type: PropertyKeyword},
		{Name: "url", Type: PropertyKeyword},
		{Name: "content", Type: PropertyLongText, Semantic: true},
		{Name: "headings", Type: PropertyText},
		{Name: "section_index", Type: PropertyNumber},
	}
}
