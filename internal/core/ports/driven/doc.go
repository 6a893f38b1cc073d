// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - PageSource: Lists and reads versioned Markdown pages
//   - RowSource: Streams CSV rows keyed by header
//   - PageCache: Stores pre-rendered HTML pages
//   - FrontmatterParser: Splits the YAML header from the Markdown body
//   - MarkdownRenderer: Renders Markdown to HTML
//   - SectionExtractor: Splits rendered HTML into heading-scoped sections
//   - SearchIndex: Creates indices and bulk-upserts documents
//   - IndexDefinitionRegistry: Resolves CSV ingestion targets
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
