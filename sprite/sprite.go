// Package sprite is the polymorphic, z-ordered drawable layer: every
// kind of mark on the scene (a box corner, a line segment, a joint, a
// label) implements Sprite, and Composite stacks them so later entries
// draw over earlier ones. Category tags (NODE/BRANCH/TEXT) drive which
// color rule — including the deterministic "rainbow" rule — applies at
// a given cell.
package sprite

import (
	"strings"

	"github.com/cookiestarfish/trim/color"
	"github.com/cookiestarfish/trim/geometry"
	"github.com/cookiestarfish/trim/style"
	"github.com/google/uuid"
)

// Category is a bitmask over the three sprite kinds a cell's color rule
// can key on.
type Category int

const (
	CategoryNone   Category = 0
	CategoryNode   Category = 1 << 0
	CategoryBranch Category = 1 << 1
	CategoryText   Category = 1 << 2
)

// DrawResult is the sampled outcome at one cell: an empty Glyph means
// "transparent here", letting whatever is drawn underneath show through.
type DrawResult struct {
	Glyph string
	Color color.RGB
}

// Sprite is any drawable scene element: a bounding Rect in local
// coordinates, a per-cell sample, and the category used for color rules.
type Sprite interface {
	Rect() geometry.Rect
	Draw(s style.Style, cursor geometry.Point) DrawResult
	Category() Category
}

// identity assigns each constructed leaf sprite a value stable for the
// lifetime of one render, substituting for the pointer-identity rainbow
// hash key of the original C++ source (spec.md §9, "Rainbow hash
// identity"). google/uuid, the same dependency the teacher uses to give
// every gree.Node a stable id, supplies the randomness; a fresh uuid is
// generated once per sprite at construction and never changes afterward.
func identity() uint64 {
	id := uuid.New()
	var v uint64
	for _, b := range id[:8] {
		v = v<<8 | uint64(b)
	}
	return v
}

// rainbowColor computes the deterministic hue for one sprite's cell,
// keyed on (category, cursor, sprite identity) per spec.md §4.6's
// rainbow rule.
func rainbowColor(cat Category, cursor geometry.Point, spriteID uint64) color.RGB {
	seed := uint64(42)
	seed = color.MixSeed(seed, uint64(cat))
	seed = color.MixSeed(seed, uint64(int64(cursor.Line)))
	seed = color.MixSeed(seed, uint64(int64(cursor.Column)))
	seed = color.MixSeed(seed, spriteID)
	return color.PickFromSeed(seed)
}

// applyRainbow overrides result.Color with the rainbow hash when the
// style's color for cat is the Rainbow sentinel; it is called by every
// leaf sprite kind right before returning from Draw.
func applyRainbow(cat Category, s style.Style, cursor geometry.Point, spriteID uint64, result DrawResult) DrawResult {
	switch cat {
	case CategoryBranch:
		if s.BranchColor == color.Rainbow {
			result.Color = rainbowColor(cat, cursor, spriteID)
		}
	case CategoryNode:
		if s.BoxColor == color.Rainbow {
			result.Color = rainbowColor(cat, cursor, spriteID)
		}
	case CategoryText:
		if s.TextColor == color.Rainbow {
			result.Color = rainbowColor(cat, cursor, spriteID)
		}
	}
	return result
}

// splitLines splits text on '\n', the only line-break notion trim
// supports (labels are never auto-wrapped).
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}
