// Package filesystem reads the versioned documentation tree
// (<root>/<version>/<page>.md), writes the rendered page cache and watches
// the tree for edits.
package filesystem
