// Package driving defines the use cases the CLI calls into: DocsIndexer
// turns the docs tree into search records, CSVIngester loads dataset
// targets, and DocumentationService serves navigation and the page cache.
// Progress is reported back through Reporter.
//
// Implementations live in internal/core/services.
package driving
