// Package connectors provides the data sources the indexer reads from.
//
//   - filesystem: versioned Markdown pages, the HTML page cache and a
//     change watcher for the docs tree
//   - csv: header-keyed rows of tabular datasets
package connectors
