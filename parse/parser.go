// Package parse turns a handful of small text notations — balanced
// parentheses, a bitstring binary-heap encoding, and Markdown headings —
// into the common ctree.Tree + ctree.Labels shape the rest of trim
// renders.
package parse

import (
	"strconv"

	"github.com/cookiestarfish/trim/ctree"
)

// Error describes one malformed span of input text. Position and Extent
// are byte offsets into the original text, not node ids.
type Error struct {
	Message  string
	Position int
	Extent   int
}

// Result is what every parser produces. When Errors is non-empty, Tree,
// Root and the label slices are not meaningful.
type Result struct {
	Tree       *ctree.Tree
	Root       int
	NodeLabels ctree.Labels
	EdgeLabels ctree.Labels
	Errors     []Error
}

// Parser is implemented by each notation's parser.
type Parser interface {
	Parse(text string) Result
}

func formatInt(n int) string { return strconv.Itoa(n) }
