// Package domain defines the core entities of the documentation indexer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: One Markdown page on disk
//   - Frontmatter: Page metadata from the leading YAML block
//   - Section: Heading-scoped body content of a page
//   - IndexRecord: The search record built from a Section
//   - Document: The generic unit handed to a search index
//   - Settings: Process-wide configuration, built once at start-up
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
