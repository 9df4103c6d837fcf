package parse

import (
	"github.com/cookiestarfish/trim/ctree"
)

// Bitstring parses a breadth-first binary-heap encoding: index 0 is the
// root, and node i's children (if present) sit at indices 2i+1 and
// 2i+2. Each character is '1' (node present), '0' (node absent), or
// invalid. A lone "0" is the valid empty-tree input; anything else
// must start with '1'. Node ids are assigned in in-order (left subtree,
// node, right subtree), and every node is labeled with its id, so the
// root of "111" is node 1 and is labeled "1".
type Bitstring struct{}

const sentinel = -1

// Parse implements Parser.
func (Bitstring) Parse(text string) Result {
	if text == "" {
		return Result{}
	}

	if text[0] == '0' {
		var errs []Error
		if len(text) > 1 {
			errs = append(errs, Error{Message: "Input not fully consumed (1 character read).", Position: 1, Extent: len(text) - 1})
		}
		return Result{Errors: errs}
	}

	if text[0] != '1' {
		return Result{Errors: []Error{{Message: "Invalid first character, expected '0' or '1'.", Position: 0, Extent: 1}}}
	}

	var parentArray []int
	touched := make([]bool, len(text))
	var errs []Error

	freeID := 0
	var recurse func(index int) int
	recurse = func(index int) int {
		left := index*2 + 1
		right := index*2 + 2
		leftID, rightID := sentinel, sentinel

		switch {
		case left >= len(text):
		case text[left] == '0':
			touched[left] = true
		case text[left] == '1':
			leftID = recurse(left)
		default:
			errs = append(errs, Error{Message: "Invalid character '" + string(text[left]) + "'", Position: left, Extent: 1})
			touched[left] = true
		}

		parentArray = append(parentArray, sentinel)
		currID := freeID
		freeID++
		touched[index] = true

		switch {
		case right >= len(text):
		case text[right] == '0':
			touched[right] = true
		case text[right] == '1':
			rightID = recurse(right)
		default:
			errs = append(errs, Error{Message: "Invalid character '" + string(text[right]) + "'", Position: right, Extent: 1})
			touched[right] = true
		}

		if leftID != sentinel {
			parentArray[leftID] = currID
		}
		if rightID != sentinel {
			parentArray[rightID] = currID
		}
		return currID
	}

	root := recurse(0)

	lastTouched := sentinel
	for i := 0; i < len(text); i++ {
		if touched[i] {
			lastTouched = i
		}
	}
	for i := 0; i < len(text); i++ {
		if !touched[i] && i > lastTouched {
			errs = append(errs, Error{Message: "Trailing characters not consumed.", Position: i, Extent: 1})
		}
	}

	numNodes := freeID
	tree := ctree.New(numNodes)
	nodeLabels := ctree.NewLabels(numNodes)
	edgeLabels := ctree.NewLabels(numNodes)

	for i := 0; i < numNodes; i++ {
		if parent := parentArray[i]; parent != sentinel {
			tree.AddChild(parent, i)
		}
		nodeLabels[i] = formatInt(i)
		edgeLabels[i] = ""
	}

	return Result{Tree: tree, Root: root, NodeLabels: nodeLabels, EdgeLabels: edgeLabels, Errors: errs}
}
