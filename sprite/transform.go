package sprite

import "github.com/cookiestarfish/trim/geometry"
import "github.com/cookiestarfish/trim/internal/assert"
import "github.com/cookiestarfish/trim/style"

// Translate wraps any sprite and shifts its rect and sampling coordinate
// by (lines, columns), the only way trim positions a sprite within its
// parent's local coordinate space.
type Translate struct {
	inner   Sprite
	lines   int
	columns int
}

// NewTranslate shifts inner by (lines, columns).
func NewTranslate(inner Sprite, lines, columns int) Translate {
	return Translate{inner: inner, lines: lines, columns: columns}
}

func (t Translate) Rect() geometry.Rect {
	return t.inner.Rect().Translate(t.lines, t.columns)
}

func (t Translate) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(t.Rect().Envelopes(cursor), "Translate.Draw sampled outside its own rect")

	return t.inner.Draw(s, cursor.Translate(-t.lines, -t.columns))
}

func (t Translate) Category() Category { return t.inner.Category() }
