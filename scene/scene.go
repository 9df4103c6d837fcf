// Package scene rasterizes a single root sprite into lines of text,
// wrapping each colored glyph in a true-color ANSI escape.
package scene

import (
	"io"
	"strings"

	"github.com/cookiestarfish/trim/color"
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/internal/assert"
	"github.com/cookiestarfish/trim/sprite"
	"github.com/cookiestarfish/trim/style"
)

// Scene owns the single sprite that represents an entire rendered
// picture (normally a sprite.Tree), and knows how to sample it cell by
// cell into text.
type Scene struct {
	root sprite.Sprite
}

// New wraps root for rasterization.
func New(root sprite.Sprite) Scene {
	return Scene{root: root}
}

// Rect is the bounding rect of the underlying sprite.
func (s Scene) Rect() geometry.Rect { return s.root.Rect() }

// Render rasterizes the scene under st into a string: one line per row,
// newline-terminated, empty cells as a space, and any glyph whose color
// isn't color.None (and isn't itself a space) wrapped in a true-color
// escape via color.Escape.
func (s Scene) Render(st style.Style) string {
	var b strings.Builder
	s.writeTo(&b, st)
	return b.String()
}

// WriteTo rasterizes the scene under st directly to w.
func (s Scene) WriteTo(w io.Writer, st style.Style) error {
	var b strings.Builder
	s.writeTo(&b, st)
	_, err := io.WriteString(w, b.String())
	return err
}

func (s Scene) writeTo(b *strings.Builder, st style.Style) {
	rect := s.Rect()
	line1, line2 := rect.TopLine(), rect.BotLine()
	column1, column2 := rect.LeftColumn(), rect.RightColumn()

	for line := line1; line <= line2; line++ {
		for column := column1; column <= column2; column++ {
			cursor := geometry.Point{Line: line, Column: column}
			assert.That(rect.Envelopes(cursor), "Scene.writeTo sampled outside the scene rect")
			result := s.root.Draw(st, cursor)

			glyph := result.Glyph
			if glyph == "" {
				glyph = " "
			}

			if result.Color != color.None && glyph != " " {
				b.WriteString(color.Escape(glyph, result.Color))
			} else {
				b.WriteString(glyph)
			}
		}
		b.WriteByte('\n')
	}
}
