package parse

import (
	"strings"

	"github.com/cookiestarfish/trim/ctree"
)

// Parentheses parses the balanced-parenthesis notation: "(root(a)(b))".
// A node's label is the text inside its own parens but outside every
// child's parens; text before, between and after the children is
// concatenated, so "(a(b)c)" labels the root "ac". A literal "\n" in the
// input becomes a newline in the label. A node
// with an empty label is labeled with its own node index.
type Parentheses struct{}

// Parse implements Parser.
func (Parentheses) Parse(text string) Result {
	closing := matchingClosedParen(text)

	var errs []Error
	for i := 0; i < len(text); i++ {
		if text[i] == '(' && closing[i] == -1 {
			errs = append(errs, Error{Message: "Unbalanced parentheses.", Position: i, Extent: 1})
		}
	}

	firstParen := strings.IndexByte(text, '(')
	if firstParen == -1 {
		return Result{Errors: errs}
	}

	lastParen := closing[firstParen]
	numNodes := strings.Count(text[:lastParen+1], "(")
	numParens := strings.Count(text, "(")

	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	if numParens != numNodes {
		errs = append(errs, Error{Message: "The tree is not connected", Position: lastParen + 1, Extent: 1})
	}

	nodeLabels := ctree.NewLabels(numNodes)
	edgeLabels := ctree.NewLabels(numNodes)
	tree := ctree.New(numNodes)

	freeID := 0
	var recurse func(begin, end int) int
	recurse = func(begin, end int) int {
		currID := freeID
		freeID++
		var label strings.Builder

		for begin != end {
			if strings.HasPrefix(text[begin:], "\\n") {
				begin += 2
				label.WriteByte('\n')
				continue
			}

			if text[begin] == '(' {
				childID := recurse(begin+1, closing[begin])
				begin = closing[begin] + 1
				tree.AddChild(currID, childID)
				continue
			}

			label.WriteByte(text[begin])
			begin++
		}

		labelStr := label.String()
		if labelStr == "" {
			labelStr = formatInt(currID)
		}

		nodeLabels[currID] = labelStr
		edgeLabels[currID] = ""
		return currID
	}

	root := recurse(firstParen+1, closing[firstParen])

	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Tree: tree, Root: root, NodeLabels: nodeLabels, EdgeLabels: edgeLabels}
}

// matchingClosedParen returns, for each '(' at index i, the index of its
// matching ')', or -1 if unmatched. Non-paren and unmatched-')' indices
// are also -1.
func matchingClosedParen(text string) []int {
	closing := make([]int, len(text))
	for i := range closing {
		closing[i] = -1
	}

	var opening []int
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			opening = append(opening, i)
		case ')':
			if len(opening) > 0 {
				top := opening[len(opening)-1]
				opening = opening[:len(opening)-1]
				closing[top] = i
			}
		}
	}
	return closing
}
