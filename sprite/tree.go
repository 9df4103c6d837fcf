package sprite

import (
	"github.com/cookiestarfish/trim/ctree"
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/layout"
	"github.com/cookiestarfish/trim/style"
)

// Tree composites the whole rendered picture: every node's Node sprite
// plus every parent-child branch, built directly from a ctree.Tree and
// its layout.TreeLayout. Single-child nodes get a straight VerticalLine
// when their trunk columns already line up, or a Spline3 when they
// don't; nodes with two or more children get a full trunk: one vertical
// descent from the parent, a horizontal spine across the children's
// columns, and a vertical branch down to each child.
type Tree struct {
	composite Composite
}

// NewTree builds the tree sprite for tree rooted at root, using
// nodeLabels for each node's text and layout for each node's placement.
// edgeLabels is accepted for forward compatibility but not yet rendered.
func NewTree(tree *ctree.Tree, root int, nodeLabels, edgeLabels ctree.Labels, lay layout.TreeLayout) Tree {
	numNodes := tree.Size()
	var sprites []Sprite

	for node := 0; node < numNodes; node++ {
		rect := lay[node]
		nodeHeight := rect.Height()
		nodeWidth := rect.Width()
		assert.That(nodeHeight > 0, "NewTree: node height must be positive")
		assert.That(nodeWidth > 0, "NewTree: node width must be positive")
		isTopConnected := node != root
		isBotConnected := tree.NumChildren(node) > 0

		n := NewNode(nodeLabels[node], nodeHeight, nodeWidth, isTopConnected, isBotConnected)
		sprites = append(sprites, NewTranslate(n, rect.P1.Line, rect.P1.Column))
	}

	for node := 0; node < numNodes; node++ {
		switch tree.NumChildren(node) {
		case 0:
			// no branch to draw
		case 1:
			child := tree.Child(node, 0)
			parentPoint := lay[node].BotSegment().Midpoint()
			childPoint := lay[child].TopSegment().Midpoint()
			if parentPoint.Column == childPoint.Column {
				sprites = append(sprites, directBranch(parentPoint, childPoint))
			} else {
				sprites = append(sprites, splineBranch(parentPoint, childPoint))
			}
		default:
			sprites = append(sprites, trunk(tree, node, lay)...)
		}
	}

	return Tree{composite: NewComposite(sprites)}
}

func directBranch(parentPoint, childPoint geometry.Point) Sprite {
	assert.That(parentPoint.Column == childPoint.Column, "directBranch requires parent and child on the same column")

	line := NewVerticalLine(childPoint.Line-parentPoint.Line, true, true)
	return NewTranslate(line, parentPoint.Line, parentPoint.Column)
}

func splineBranch(parentPoint, childPoint geometry.Point) Sprite {
	assert.That(parentPoint.Column != childPoint.Column, "splineBranch requires parent and child on different columns")

	mid1 := geometry.Point{Line: geometry.Midpoint(parentPoint, childPoint).Line, Column: parentPoint.Column}
	mid2 := geometry.Point{Line: mid1.Line, Column: childPoint.Column}

	r1 := mid1.Translate(-parentPoint.Line, -parentPoint.Column)
	r2 := mid2.Translate(-parentPoint.Line, -parentPoint.Column)
	r3 := childPoint.Translate(-parentPoint.Line, -parentPoint.Column)

	spline := NewSpline3(r1, r2, r3, true, true)
	return NewTranslate(spline, parentPoint.Line, parentPoint.Column)
}

// trunk builds the branch sprites connecting node to all of its two or
// more children: a vertical descent, a horizontal spine spanning the
// leftmost to rightmost child column, joints at every bend, and a
// vertical branch down to each child that doesn't sit directly on the
// spine.
func trunk(tree *ctree.Tree, node int, lay layout.TreeLayout) []Sprite {
	numChildren := tree.NumChildren(node)
	leftmost := tree.Child(node, 0)
	rightmost := tree.Child(node, numChildren-1)

	parentPoint := lay[node].BotSegment().Midpoint()
	leftPoint := lay[leftmost].TopSegment().Midpoint()
	rightPoint := lay[rightmost].TopSegment().Midpoint()

	trunkDown := geometry.Point{Line: geometry.Midpoint(parentPoint, leftPoint).Line, Column: parentPoint.Column}
	trunkLeft := geometry.Point{Line: trunkDown.Line, Column: leftPoint.Column}
	trunkRight := geometry.Point{Line: trunkDown.Line, Column: rightPoint.Column}

	var sprites []Sprite

	trunkLength := geometry.HorizontalSegment{P1: trunkLeft, P2: trunkRight}.SignedLength()
	hline := NewHorizontalLine(trunkLength, true, true)
	sprites = append(sprites, NewTranslate(hline, trunkLeft.Line, trunkLeft.Column))

	trunkHeight := geometry.VerticalSegment{P1: parentPoint, P2: trunkDown}.SignedLength()
	vline := NewVerticalLine(trunkHeight, true, true)
	sprites = append(sprites, NewTranslate(vline, parentPoint.Line, parentPoint.Column))

	switch {
	case trunkDown == trunkLeft:
		sprites = append(sprites, NewTranslate(NewJoint(style.JointRightDownUp), trunkDown.Line, trunkDown.Column))
	case trunkDown == trunkRight:
		sprites = append(sprites, NewTranslate(NewJoint(style.JointDownLeftUp), trunkDown.Line, trunkDown.Column))
	case trunkDown.Column > trunkRight.Column:
		sprites = append(sprites, NewTranslate(NewJoint(style.JointLeftUp), trunkDown.Line, trunkDown.Column))
	case trunkDown.Column < trunkLeft.Column:
		sprites = append(sprites, NewTranslate(NewJoint(style.JointRightUp), trunkDown.Line, trunkDown.Column))
	default:
		sprites = append(sprites, NewTranslate(NewJoint(style.JointRightLeftUp), trunkDown.Line, trunkDown.Column))
	}

	if trunkLeft != trunkDown {
		if trunkLeft.Column < trunkDown.Column {
			sprites = append(sprites, NewTranslate(NewJoint(style.JointRightDown), trunkLeft.Line, trunkLeft.Column))
		} else {
			sprites = append(sprites, NewTranslate(NewJoint(style.JointRightDownLeft), trunkLeft.Line, trunkLeft.Column))
		}
	}

	if trunkRight != trunkDown {
		if trunkRight.Column > trunkDown.Column {
			sprites = append(sprites, NewTranslate(NewJoint(style.JointDownLeft), trunkRight.Line, trunkRight.Column))
		} else {
			sprites = append(sprites, NewTranslate(NewJoint(style.JointRightDownLeft), trunkRight.Line, trunkRight.Column))
		}
	}

	if trunkDown.Column < trunkLeft.Column {
		line := NewHorizontalLine(trunkLeft.Column-trunkDown.Column, true, true)
		sprites = append(sprites, NewTranslate(line, trunkDown.Line, trunkDown.Column))
	}

	if trunkDown.Column > trunkRight.Column {
		line := NewHorizontalLine(trunkDown.Column-trunkRight.Column, true, true)
		sprites = append(sprites, NewTranslate(line, trunkRight.Line, trunkRight.Column))
	}

	for i := 1; i+1 < numChildren; i++ {
		child := tree.Child(node, i)
		childPoint := lay[child].TopSegment().Midpoint()
		trunkPoint := geometry.Point{Line: trunkDown.Line, Column: childPoint.Column}

		if trunkPoint == trunkDown {
			sprites = append(sprites, NewTranslate(NewJoint(style.JointAll), trunkPoint.Line, trunkPoint.Column))
		} else {
			sprites = append(sprites, NewTranslate(NewJoint(style.JointRightDownLeft), trunkPoint.Line, trunkPoint.Column))
		}
	}

	for i := 0; i < numChildren; i++ {
		child := tree.Child(node, i)
		childPoint := lay[child].TopSegment().Midpoint()
		trunkPoint := geometry.Point{Line: trunkDown.Line, Column: childPoint.Column}
		dist := (geometry.VerticalSegment{P1: trunkPoint, P2: childPoint}).Length()
		if dist > 1 {
			line := NewVerticalLine(dist, true, true)
			sprites = append(sprites, NewTranslate(line, trunkPoint.Line, trunkPoint.Column))
		}
	}

	return sprites
}

func (t Tree) Rect() geometry.Rect { return t.composite.Rect() }

func (t Tree) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(t.Rect().Envelopes(cursor), "Tree.Draw sampled outside its own rect")

	return t.composite.Draw(s, cursor)
}

func (t Tree) Category() Category {
	return CategoryNode | CategoryBranch | CategoryText
}
