package sprite

import "github.com/cookiestarfish/trim/geometry"
import "github.com/cookiestarfish/trim/internal/assert"
import "github.com/cookiestarfish/trim/style"

// Composite owns an ordered list of sprites. Its rect is their union, and
// sampling walks the list in order, letting each non-empty glyph
// overwrite the previous result — the only z-ordering rule trim has:
// later entries draw on top.
type Composite struct {
	sprites  []Sprite
	rect     geometry.Rect
	category Category
}

// NewComposite computes the union rect and combined category of sprites
// up front so Rect/Category are O(1) afterward.
func NewComposite(sprites []Sprite) Composite {
	c := Composite{sprites: sprites}
	if len(sprites) == 0 {
		return c
	}

	rect := sprites[0].Rect()
	cat := sprites[0].Category()
	for _, s := range sprites[1:] {
		rect = geometry.Union(rect, s.Rect())
		cat |= s.Category()
	}
	c.rect = rect
	c.category = cat
	return c
}

func (c Composite) Rect() geometry.Rect { return c.rect }

func (c Composite) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(c.rect.Envelopes(cursor), "Composite.Draw sampled outside its own rect")

	var result DrawResult
	for _, sp := range c.sprites {
		if !sp.Rect().Envelopes(cursor) {
			continue
		}
		curr := sp.Draw(s, cursor)
		if curr.Glyph != "" {
			result = curr
		}
	}
	return result
}

func (c Composite) Category() Category { return c.category }
