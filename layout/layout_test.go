package layout

import (
	"testing"

	"github.com/cookiestarfish/trim/ctree"
	"github.com/cookiestarfish/trim/style"
)

func buildBalancedBinary() (*ctree.Tree, int, ctree.Labels) {
	tree := ctree.New(3)
	tree.AddChild(0, 1)
	tree.AddChild(0, 2)
	labels := ctree.NewLabels(3)
	labels[0] = "0"
	labels[1] = "1"
	labels[2] = "2"
	return tree, 0, labels
}

func buildUnaryChain() (*ctree.Tree, int, ctree.Labels) {
	tree := ctree.New(3)
	tree.AddChild(0, 1)
	tree.AddChild(1, 2)
	labels := ctree.NewLabels(3)
	labels[0] = "a"
	labels[1] = "b"
	labels[2] = "c"
	return tree, 0, labels
}

func buildWideNary() (*ctree.Tree, int, ctree.Labels) {
	tree := ctree.New(5)
	tree.AddChild(0, 1)
	tree.AddChild(0, 2)
	tree.AddChild(0, 3)
	tree.AddChild(0, 4)
	labels := ctree.NewLabels(5)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}
	return tree, 0, labels
}

// checkProperties verifies spec.md's universal layout properties: no
// overlap, odd width, parent strictly above children, and children laid
// out left-to-right in the same order as the tree.
func checkProperties(t *testing.T, tree *ctree.Tree, root int, lay TreeLayout) {
	t.Helper()
	n := tree.Size()

	for i := 0; i < n; i++ {
		w := lay[i].P2.Column - lay[i].P1.Column + 1
		if w%2 == 0 {
			t.Errorf("node %d has even width %d", i, w)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ri, rj := lay[i], lay[j]
			overlapLine := ri.P1.Line <= rj.P2.Line && rj.P1.Line <= ri.P2.Line
			overlapCol := ri.P1.Column <= rj.P2.Column && rj.P1.Column <= ri.P2.Column
			if overlapLine && overlapCol {
				t.Errorf("nodes %d and %d overlap: %v vs %v", i, j, ri, rj)
			}
		}
	}

	ctree.PreOrder(tree, root, func(curr int) {
		children := tree.Children(curr)
		prevCenter := -1 << 62
		for _, child := range children {
			if lay[child].P1.Line <= lay[curr].P2.Line {
				t.Errorf("child %d (line %d) is not below parent %d (bottom line %d)", child, lay[child].P1.Line, curr, lay[curr].P2.Line)
			}
			center := (lay[child].P1.Column + lay[child].P2.Column) / 2
			if center <= prevCenter {
				t.Errorf("child %d center column %d is not strictly right of previous sibling's", child, center)
			}
			prevCenter = center
		}
	})
}

func TestLayoutPropertiesAcrossShapes(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*ctree.Tree, int, ctree.Labels)
	}{
		{"binary", buildBalancedBinary},
		{"unary chain", buildUnaryChain},
		{"wide n-ary", buildWideNary},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree, root, labels := c.build()
			lay := Make(tree, root, labels, style.Thin())
			checkProperties(t, tree, root, lay)
		})
	}
}

func TestLayoutGoldenNodeDimensions(t *testing.T) {
	tree, root, labels := buildBalancedBinary()
	lay := Make(tree, root, labels, style.Thin())

	for i := 0; i < tree.Size(); i++ {
		w := lay[i].P2.Column - lay[i].P1.Column + 1
		h := lay[i].P2.Line - lay[i].P1.Line + 1
		if w != 5 {
			t.Errorf("node %d width = %d, want 5", i, w)
		}
		if h != 3 {
			t.Errorf("node %d height = %d, want 3", i, h)
		}
	}

	rootRect := lay[root]
	if rootRect.P1.Line != 0 || rootRect.P1.Column != 0 {
		t.Errorf("root top-left = %v, want (0,0)", rootRect.P1)
	}

	// total horizontal span must match the golden (()()) fixture: 12 columns.
	minCol, maxCol := lay[0].P1.Column, lay[0].P2.Column
	for i := 0; i < tree.Size(); i++ {
		if lay[i].P1.Column < minCol {
			minCol = lay[i].P1.Column
		}
		if lay[i].P2.Column > maxCol {
			maxCol = lay[i].P2.Column
		}
	}
	span := maxCol - minCol + 1
	if span != 12 {
		t.Errorf("total width span = %d, want 12", span)
	}

	// total vertical span: node height (3) + level margin (1) + node height (3) = 7
	minLine, maxLine := lay[0].P1.Line, lay[0].P2.Line
	for i := 0; i < tree.Size(); i++ {
		if lay[i].P1.Line < minLine {
			minLine = lay[i].P1.Line
		}
		if lay[i].P2.Line > maxLine {
			maxLine = lay[i].P2.Line
		}
	}
	if maxLine-minLine+1 != 7 {
		t.Errorf("total height span = %d, want 7", maxLine-minLine+1)
	}
}
