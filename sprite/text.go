package sprite

import (
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/style"
)

// Text is a (height, width) rect sprite holding pre-split label lines,
// sampled one character at a time according to the style's text
// alignment. Outside the padded text area it is transparent.
type Text struct {
	lines  []string
	height int
	width  int
	id     uint64
}

// NewText splits text into lines and returns a sprite of the given local
// height/width (both measured in the Rect convention: height+1 rows,
// width+1 columns).
func NewText(text string, height, width int) Text {
	return Text{lines: splitLines(text), height: height, width: width, id: identity()}
}

func (t Text) Rect() geometry.Rect {
	return geometry.Rect{P1: geometry.Origin, P2: geometry.Point{Line: t.height, Column: t.width}}
}

func (t Text) Draw(s style.Style, cursor geometry.Point) DrawResult {
	assert.That(t.Rect().Envelopes(cursor), "Text.Draw sampled outside its own rect")

	numLines := len(t.lines)
	if cursor.Line >= numLines || cursor.Line < 0 {
		return DrawResult{}
	}
	line := t.lines[cursor.Line]
	runes := []rune(line)

	pad := s.NodeHorizontalPadding
	if cursor.Column < pad {
		return DrawResult{}
	}

	var index int
	switch s.TextAlign {
	case style.TextAlignNone, style.TextAlignLeft:
		index = cursor.Column - pad

	case style.TextAlignCenter:
		maxWidth := (t.width + 1) - pad*2
		margin := maxWidth - len(runes)
		if cursor.Column-pad < margin/2 {
			return DrawResult{}
		}
		index = cursor.Column - pad - margin/2

	case style.TextAlignRight:
		maxWidth := (t.width + 1) - pad*2
		margin := maxWidth - len(runes)
		if cursor.Column-pad < margin {
			return DrawResult{}
		}
		index = cursor.Column - pad - margin

	default:
		panic("trim/sprite: unsupported text alignment")
	}

	var character string
	if index >= 0 && index < len(runes) {
		character = string(runes[index])
	}

	result := DrawResult{Glyph: character, Color: s.TextColor}
	return applyRainbow(CategoryText, s, cursor, t.id, result)
}

func (t Text) Category() Category { return CategoryText }
