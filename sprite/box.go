package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// Box draws a node's border: the four corners, horizontal glyphs on the
// top/bottom edges, vertical glyphs on the left/right edges, and optional
// top/bottom connection stubs at the exact center column. The interior
// is transparent so whatever is drawn underneath (the node's Text) shows
// through.
type Box struct {
	height           int
	width            int
	isTopConnected   bool
	isBotConnected   bool
	id               uint64
}

// NewBox returns a box sprite of local size (height, width) in the Rect
// convention (covers height+1 rows, width+1 columns).
func NewBox(height, width int, isTopConnected, isBotConnected bool) Box {
	return Box{height: height, width: width, isTopConnected: isTopConnected, isBotConnected: isBotConnected, id: identity()}
}

func (b Box) Rect() geometry.Rect {
	return geometry.Rect{P1: geometry.Origin, P2: geometry.Point{Line: b.height, Column: b.width}}
}

func (b Box) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(b.Rect().Envelopes(cursor), "Box.Draw sampled outside its own rect")

	isLeft := cursor.Column == 0
	isRight := cursor.Column == b.width
	isTop := cursor.Line == 0
	isBot := cursor.Line == b.height
	isAny := isLeft || isRight || isTop || isBot

	if !isAny {
		return DrawResult{}
	}

	var result DrawResult
	switch {
	case isLeft && isTop:
		result = DrawResult{Glyph: s.BoxTopLeft, Color: s.BoxColor}
	case isRight && isTop:
		result = DrawResult{Glyph: s.BoxTopRight, Color: s.BoxColor}
	case isLeft && isBot:
		result = DrawResult{Glyph: s.BoxBotLeft, Color: s.BoxColor}
	case isRight && isBot:
		result = DrawResult{Glyph: s.BoxBotRight, Color: s.BoxColor}
	case b.isTopConnected && cursor == (geometry.Point{Line: 0, Column: b.width / 2}):
		result = DrawResult{Glyph: s.TopConnection, Color: s.BoxColor}
	case b.isBotConnected && cursor == (geometry.Point{Line: b.height, Column: b.width / 2}):
		result = DrawResult{Glyph: s.BotConnection, Color: s.BoxColor}
	case isTop || isBot:
		result = DrawResult{Glyph: s.BoxHorizontalLine, Color: s.BoxColor}
	case isLeft || isRight:
		result = DrawResult{Glyph: s.BoxVerticalLine, Color: s.BoxColor}
	default:
		panic("trim/sprite: unreachable box edge case")
	}

	return applyRainbow(CategoryNode, s, cursor, b.id, result)
}

func (b Box) Category() Category { return CategoryNode }
