package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// Node composites a node's label Text over its Box border. Text is
// inset by (1,1) so the border never collides with the label, and it
// is drawn before the Box so the border's own glyphs always win at the
// edges regardless of what the label renders there.
type Node struct {
	composite Composite
}

// NewNode builds the node sprite for a label rendered into a
// (height, width) box, with the given top/bottom connection stubs.
// Text alignment within the label area is a style-wide setting applied
// at draw time, not a per-node choice.
func NewNode(label string, height, width int, isTopConnected, isBotConnected bool) Node {
	textHeight := height - 2
	textWidth := width - 2

	sprites := []Sprite{
		NewTranslate(NewText(label, textHeight, textWidth), 1, 1),
		NewBox(height, width, isTopConnected, isBotConnected),
	}
	return Node{composite: NewComposite(sprites)}
}

func (n Node) Rect() geometry.Rect { return n.composite.Rect() }

func (n Node) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(n.Rect().Envelopes(cursor), "Node.Draw sampled outside its own rect")

	return n.composite.Draw(s, cursor)
}

func (n Node) Category() Category { return n.composite.Category() }
