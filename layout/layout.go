// Package layout computes a TreeLayout — a bounding Rect per node — from
// a ctree.Tree, its labels and a style.Style. It is the contour-based
// tight-packing engine described in spec.md §4.3: leaf/unary/binary/n-ary
// children are each placed with their own offset rule, then stitched
// together bottom-up via package contour.
package layout

import (
	"strings"

	"github.com/cookiestarfish/trim/contour"
	"github.com/cookiestarfish/trim/ctree"
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/style"
)

// TreeLayout is a Rect per node, indexed by node id.
type TreeLayout []geometry.Rect

// textDimensions returns the max line length and number of lines of a
// (possibly multi-line) label.
func textDimensions(label string) (width, height int) {
	lines := strings.Split(label, "\n")
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	if width < 1 {
		width = 1
	}
	height = len(lines)
	return width, height
}

// Make computes the layout of tree rooted at root, given per-node labels
// and a style. It implements spec.md §4.3 steps 1-6 exactly.
func Make(tree *ctree.Tree, root int, labels ctree.Labels, s style.Style) TreeLayout {
	n := tree.Size()

	levels := make([]int, n)
	maxLevelHeight := make([]int, n)
	maxLevelMargin := make([]int, n)
	lines := make([]int, n)
	offsets := make([]int, n)
	nodeWidth := make([]int, n)
	nodeHeight := make([]int, n)
	leftContours := make([]*contour.Contour, n)
	rightContours := make([]*contour.Contour, n)

	widthOf := func(node int) int { return nodeWidth[node] }

	// 1. per-node width/height
	for node := 0; node < n; node++ {
		textWidth, textHeight := textDimensions(labels[node])
		hPad := s.NodeHorizontalPadding * 2
		vPad := s.NodeVerticalPadding * 2

		w := s.NodeMinimumWidth
		if textWidth+hPad+2 > w {
			w = textWidth + hPad + 2
		}
		if w%2 == 0 {
			w++
		}
		nodeWidth[node] = w

		h := s.NodeMinimumHeight
		if textHeight+vPad+2 > h {
			h = textHeight + vPad + 2
		}
		nodeHeight[node] = h
	}

	// 2. levels
	ctree.ComputeLevels(tree, root, levels)

	// 3. per-level max height/margin
	for node := 0; node < n; node++ {
		lvl := levels[node]
		if nodeHeight[node] > maxLevelHeight[lvl] {
			maxLevelHeight[lvl] = nodeHeight[node]
		}
		if s.LevelMargin > maxLevelMargin[lvl] {
			maxLevelMargin[lvl] = s.LevelMargin
		}
	}

	// 4. line of each node
	ctree.PreOrder(tree, root, func(curr int) {
		for _, child := range tree.Children(curr) {
			lines[child] = lines[curr] + maxLevelHeight[levels[curr]] + maxLevelMargin[levels[curr]]
		}
	})

	// 5. offsets + contours, post-order
	ctree.PostOrder(tree, root, func(curr int) {
		numChildren := tree.NumChildren(curr)

		switch {
		case numChildren == 0:
			offsets[curr] = 0
			lc, rc := contour.New(), contour.New()
			lc.PushBack(curr, 0)
			rc.PushBack(curr, 0)
			leftContours[curr] = lc
			rightContours[curr] = rc

		case numChildren == 1:
			child := tree.Child(curr, 0)
			w1, w2 := nodeWidth[curr], nodeWidth[child]

			switch s.TreeAlign {
			case style.TreeAlignCenter:
				if w2 > w1 {
					offsets[child] = -((w2 - w1 + 1) / 2)
				} else if w2 < w1 {
					offsets[child] = (w1 - w2 + 1) / 2
				}
			case style.TreeAlignRight:
				if w2 > w1 {
					offsets[child] = -(w2 - w1)
				} else if w2 < w1 {
					offsets[child] = w1 - w2
				}
			}

			lc := leftContours[child]
			rc := rightContours[child]
			lc.SetOffset(0, offsets[child])
			rc.SetOffset(0, offsets[child])
			lc.PushFront(curr, 0)
			rc.PushFront(curr, 0)
			leftContours[curr] = lc
			rightContours[curr] = rc

		case numChildren == 2:
			leftChild := tree.Child(curr, 0)
			rightChild := tree.Child(curr, 1)

			off := contour.MinimumOffset(rightContours[leftChild], leftContours[rightChild], widthOf)
			off += s.SiblingMargin
			totalWidth := off + nodeWidth[rightChild]
			currentWidth := nodeWidth[curr]

			offset1, offset2 := 0, off

			switch s.TreeAlign {
			case style.TreeAlignCenter:
				offset1 = offset1 - (totalWidth / 2) + ((currentWidth + 1) / 2)
				offset2 = offset2 - (totalWidth - (totalWidth / 2)) + ((currentWidth + 1) / 2)
			case style.TreeAlignRight:
				offset1 = offset1 - totalWidth + currentWidth
				offset2 = offset2 - totalWidth + currentWidth
			}

			offsets[curr] = 0
			offsets[leftChild] = offset1
			offsets[rightChild] = offset2

			lc := leftContours[leftChild]
			rc := rightContours[rightChild]
			lc.SetOffset(0, offset1)
			rc.SetOffset(0, offset2)

			lc.Merge(leftContours[rightChild])
			rc.Merge(rightContours[leftChild])

			lc.PushFront(curr, 0)
			rc.PushFront(curr, 0)
			leftContours[curr] = lc
			rightContours[curr] = rc

		default:
			leftmost := tree.Child(curr, 0)
			rightmost := tree.Child(curr, numChildren-1)
			prevRight := rightContours[leftmost]
			prevLeft := leftContours[leftmost]
			totalWidth := 0

			for i := 1; i < numChildren; i++ {
				child := tree.Child(curr, i)

				// prevRight's first entry already holds the previous
				// child's offset from curr, so off is measured from curr.
				off := contour.MinimumOffset(prevRight, leftContours[child], widthOf)
				off += s.SiblingMargin

				leftContours[child].SetOffset(0, off)
				rightContours[child].SetOffset(0, off)

				rightContours[child].Merge(prevRight)
				prevLeft.Merge(leftContours[child])
				prevRight = rightContours[child]

				offsets[child] = off
				totalWidth = offsets[child] + nodeWidth[child]
			}

			switch s.TreeAlign {
			case style.TreeAlignCenter:
				for i := 0; i < numChildren; i++ {
					child := tree.Child(curr, i)
					offsets[child] = offsets[child] - (totalWidth / 2) + (nodeWidth[curr] / 2)
				}
			case style.TreeAlignRight:
				for i := 0; i < numChildren; i++ {
					child := tree.Child(curr, i)
					offsets[child] = offsets[child] - totalWidth + nodeWidth[curr]
				}
			}

			leftContours[curr] = prevLeft
			rightContours[curr] = prevRight
			leftContours[curr].SetOffset(0, offsets[leftmost])
			rightContours[curr].SetOffset(0, offsets[rightmost])
			leftContours[curr].PushFront(curr, 0)
			rightContours[curr].PushFront(curr, 0)
		}
	})

	// 6. absolute columns, pre-order
	result := make(TreeLayout, n)
	result[root] = geometry.Rect{
		P1: geometry.Point{Line: 0, Column: 0},
		P2: geometry.Point{Line: nodeHeight[root] - 1, Column: nodeWidth[root] - 1},
	}

	ctree.PreOrder(tree, root, func(curr int) {
		parentRect := result[curr]
		parentLeftColumn := parentRect.LeftColumn()

		for _, child := range tree.Children(curr) {
			childLine := lines[child]
			childLeftColumn := parentLeftColumn + offsets[child]
			childHeight := nodeHeight[child]
			childWidth := nodeWidth[child]
			result[child] = geometry.Rect{
				P1: geometry.Point{Line: childLine, Column: childLeftColumn},
				P2: geometry.Point{Line: childLine + childHeight - 1, Column: childLeftColumn + childWidth - 1},
			}
		}
	})

	return result
}
