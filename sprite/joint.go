package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// Joint is a single-cell sprite drawing one of the nine branch-crossing
// glyphs selected by a style.Joint bitmask.
type Joint struct {
	joint style.Joint
	id    uint64
}

// NewJoint returns a joint sprite for the given direction combination.
func NewJoint(j style.Joint) Joint {
	return Joint{joint: j, id: identity()}
}

func (j Joint) Rect() geometry.Rect {
	return geometry.Rect{P1: geometry.Origin, P2: geometry.Origin}
}

func (j Joint) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(j.Rect().Envelopes(cursor), "Joint.Draw sampled outside its own rect")

	result := DrawResult{Glyph: s.Glyph(j.joint), Color: s.BranchColor}
	return applyRainbow(CategoryBranch, s, cursor, j.id, result)
}

func (j Joint) Category() Category { return CategoryBranch }
