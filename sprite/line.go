package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// HorizontalLine is a one-dimensional run of the style's horizontal
// branch glyph. IgnoreStart/IgnoreEnd suppress the glyph at either
// endpoint, used when a Joint will be drawn there instead.
type HorizontalLine struct {
	width       int
	ignoreStart bool
	ignoreEnd   bool
	id          uint64
}

// NewHorizontalLine returns a line spanning width+1 columns.
func NewHorizontalLine(width int, ignoreStart, ignoreEnd bool) HorizontalLine {
	return HorizontalLine{width: width, ignoreStart: ignoreStart, ignoreEnd: ignoreEnd, id: identity()}
}

func (h HorizontalLine) Rect() geometry.Rect {
	return geometry.Rect{P1: geometry.Origin, P2: geometry.Point{Line: 0, Column: h.width}}
}

func (h HorizontalLine) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(h.Rect().Envelopes(cursor), "HorizontalLine.Draw sampled outside its own rect")

	if cursor == geometry.Origin && h.ignoreStart {
		return DrawResult{}
	}
	if cursor == (geometry.Point{Line: 0, Column: h.width}) && h.ignoreEnd {
		return DrawResult{}
	}
	result := DrawResult{Glyph: s.HorizontalLine, Color: s.BranchColor}
	return applyRainbow(CategoryBranch, s, cursor, h.id, result)
}

func (h HorizontalLine) Category() Category { return CategoryBranch }

// VerticalLine is a one-dimensional run of the style's vertical branch
// glyph. IgnoreStart/IgnoreEnd suppress the glyph at either endpoint,
// used when a Joint will be drawn there instead.
type VerticalLine struct {
	height      int
	ignoreStart bool
	ignoreEnd   bool
	id          uint64
}

// NewVerticalLine returns a line spanning height+1 rows.
func NewVerticalLine(height int, ignoreStart, ignoreEnd bool) VerticalLine {
	return VerticalLine{height: height, ignoreStart: ignoreStart, ignoreEnd: ignoreEnd, id: identity()}
}

func (v VerticalLine) Rect() geometry.Rect {
	return geometry.Rect{P1: geometry.Origin, P2: geometry.Point{Line: v.height, Column: 0}}
}

func (v VerticalLine) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(v.Rect().Envelopes(cursor), "VerticalLine.Draw sampled outside its own rect")

	if cursor == geometry.Origin && v.ignoreStart {
		return DrawResult{}
	}
	if cursor == (geometry.Point{Line: v.height, Column: 0}) && v.ignoreEnd {
		return DrawResult{}
	}
	result := DrawResult{Glyph: s.VerticalLine, Color: s.BranchColor}
	return applyRainbow(CategoryBranch, s, cursor, v.id, result)
}

func (v VerticalLine) Category() Category { return CategoryBranch }
