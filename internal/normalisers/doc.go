// Package normalisers holds the page processing stages of the docs
// pipeline: frontmatter parsing, Markdown rendering and section extraction.
// Each stage lives in its own subpackage and implements a driven port.
package normalisers
