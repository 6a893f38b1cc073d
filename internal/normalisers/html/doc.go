// Package html splits rendered documentation pages into heading-scoped
// sections. Level 2 and 3 headings start sections; level 1 headings are
// recorded as page headings only. Body content before the first section
// heading is not captured.
package html
