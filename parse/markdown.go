package parse

import (
	"strings"

	"github.com/cookiestarfish/trim/ctree"
)

// Markdown parses a Markdown heading outline: each "#"-prefixed line
// becomes a node, its depth given by the number of leading "#"s, and a
// line becomes a child of the nearest preceding line with a shallower
// depth. Non-heading lines are ignored entirely. A heading whose text
// is empty after stripping its "#"s is labeled with its own index.
type Markdown struct{}

// Parse implements Parser.
func (Markdown) Parse(text string) Result {
	var lines []string
	var levels []int

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "#") {
			lines = append(lines, line)
			levels = append(levels, len(line)-len(strings.TrimLeft(line, "#")))
		}
	}

	numNodes := len(lines)
	tree := ctree.New(numNodes)
	nodeLabels := ctree.NewLabels(numNodes)
	edgeLabels := ctree.NewLabels(numNodes)

	var recurse func(curr int) int
	recurse = func(curr int) int {
		child := curr + 1
		count := 1

		for child < numNodes && levels[child] > levels[curr] {
			childLines := recurse(child)
			tree.AddChild(curr, child)
			child += childLines
			count += childLines
		}
		return count
	}
	if numNodes > 0 {
		recurse(0)
	}

	for i := 0; i < numNodes; i++ {
		label := strings.TrimLeft(lines[i], "#")
		if label == "" {
			label = formatInt(i)
		}
		nodeLabels[i] = label
	}

	return Result{Tree: tree, Root: 0, NodeLabels: nodeLabels, EdgeLabels: edgeLabels}
}
