package services

import (
	"strings"

	"github.com/custodia-labs/docsindex/internal/core/domain"
)

// BuildRecords turns the sections of one page into index records.
// Every record carries the full heading list of the page.
func BuildRecords(doc domain.SourceDocument, meta domain.Frontmatter, ex *domain.Extraction) []domain.IndexRecord {
	if ex == nil || len(ex.Sections) == 0 {
		return nil
	}

	pageTitle := PageTitle(doc, meta, ex.Headings)
	description := meta.Description()
	category := meta.Category()
	keywords := meta.Keywords()
	headings := append([]string{}, ex.Headings...)
	baseURL := doc.BaseURL()

	records := make([]domain.IndexRecord, 0, len(ex.Sections))
	for _, section := range ex.Sections {
		url := baseURL
		if section.AnchorID != "" {
			url += "#" + section.AnchorID
		}

		records = append(records, domain.IndexRecord{
			ID:           domain.RecordID(doc.Path, section.Index),
			Title:        section.Heading,
			PageTitle:    pageTitle,
			Description:  description,
			Category:     category,
			Keywords:     keywords,
			Version:      doc.Version,
			Page:         doc.Page,
			URL:          url,
			Content:      section.Content,
			Headings:     headings,
			SectionIndex: section.Index,
		})
	}
	return records
}

// PageTitle resolves the page title: frontmatter title, then the first
// heading, then the page slug.
func PageTitle(doc domain.SourceDocument, meta domain.Frontmatter, headings []string) string {
	if title := strings.TrimSpace(meta.Title()); title != "" {
		return title
	}
	for _, h := range headings {
		if h != "" {
			return h
		}
	}
	return domain.SlugTitle(doc.Page)
}
