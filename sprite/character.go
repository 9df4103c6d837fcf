package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// Character is a single-cell sprite at the origin that always draws one
// literal string in the text color.
type Character struct {
	glyph string
	id    uint64
}

// NewCharacter returns a one-cell sprite drawing glyph.
func NewCharacter(glyph string) Character {
	return Character{glyph: glyph, id: identity()}
}

func (c Character) Rect() geometry.Rect {
	return geometry.Rect{P1: geometry.Origin, P2: geometry.Origin}
}

func (c Character) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(c.Rect().Envelopes(cursor), "Character.Draw sampled outside its own rect")

	result := DrawResult{Glyph: c.glyph, Color: s.TextColor}
	return applyRainbow(CategoryText, s, cursor, c.id, result)
}

func (c Character) Category() Category { return CategoryText }
