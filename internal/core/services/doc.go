// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - DocsIndexer: docs tree to heading-scoped search records
//   - CSVIngester: CSV datasets to their own indices
//   - DocumentationService: sidebar navigation, page rendering, HTML cache
package services
