package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// Spline3 draws a three-segment orthogonal branch through the origin,
// p1, p2 and p3 in order, where each consecutive pair is axis-aligned.
// It connects a point directly below a parent to a child whose trunk
// column doesn't line up with the parent's, bending twice instead of
// cutting a straight line through unrelated siblings.
// IgnoreStart/IgnoreEnd suppress the very first and very last glyph,
// for when a Joint belongs there instead (as it does at both ends of
// a branch).
type Spline3 struct {
	composite Composite
}

// NewSpline3 expects p1, p2, p3 already axis-aligned pairwise
// (origin->p1->p2->p3), exactly as produced by the trunk/branch layout
// math: p1 is directly below the origin, p2 shares p1's line, and p3
// shares p2's column.
func NewSpline3(p1, p2, p3 geometry.Point, ignoreStart, ignoreEnd bool) Spline3 {
	assert.That(p1.Line == 0 || p1.Column == 0, "NewSpline3: p1 must be axis-aligned with the origin")
	assert.That(p2.Line == p1.Line || p2.Column == p1.Column, "NewSpline3: p2 must be axis-aligned with p1")
	assert.That(p3.Line == p2.Line || p3.Column == p2.Column, "NewSpline3: p3 must be axis-aligned with p2")
	assert.That(p1 != p2, "NewSpline3: p1 and p2 must be distinct")
	assert.That(p2 != p3, "NewSpline3: p2 and p3 must be distinct")

	l1 := makeLineSprite(p1, ignoreStart, true)
	l2 := makeLineSprite(p2.Translate(-p1.Line, -p1.Column), true, true)
	l3 := makeLineSprite(p3.Translate(-p2.Line, -p2.Column), true, ignoreEnd)
	join1 := joinCharacter(geometry.Origin, p1, p2)
	join2 := joinCharacter(p1, p2, p3)

	sprites := []Sprite{
		l1,
		NewTranslate(l2, p1.Line, p1.Column),
		NewTranslate(l3, p2.Line, p2.Column),
		NewTranslate(join1, p1.Line, p1.Column),
		NewTranslate(join2, p2.Line, p2.Column),
	}
	return Spline3{composite: NewComposite(sprites)}
}

// makeLineSprite returns a line sprite spanning the origin to p, along
// whichever axis p lies on.
func makeLineSprite(p geometry.Point, ignoreStart, ignoreEnd bool) Sprite {
	switch geometry.AxisBetween(geometry.Origin, p) {
	case geometry.Horizontal:
		return NewHorizontalLine(p.Column, ignoreStart, ignoreEnd)
	default:
		return NewVerticalLine(p.Line, ignoreStart, ignoreEnd)
	}
}

// joinCharacter returns the joint glyph connecting the bend p0->p1->p2.
func joinCharacter(p0, p1, p2 geometry.Point) Joint {
	dir1 := geometry.DirectionBetween(p0, p1)
	dir2 := geometry.DirectionBetween(p1, p2)

	hasDown := dir1 == geometry.Up || dir2 == geometry.Down
	hasRight := dir1 == geometry.Left || dir2 == geometry.Right

	var j style.Joint
	if hasDown {
		j |= style.JointDown
	} else {
		j |= style.JointUp
	}
	if hasRight {
		j |= style.JointRight
	} else {
		j |= style.JointLeft
	}
	return NewJoint(j)
}

func (sp Spline3) Rect() geometry.Rect { return sp.composite.Rect() }

func (sp Spline3) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(sp.Rect().Envelopes(cursor), "Spline3.Draw sampled outside its own rect")

	return sp.composite.Draw(s, cursor)
}

func (sp Spline3) Category() Category { return sp.composite.Category() }
