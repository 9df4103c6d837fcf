// Package style holds the immutable render configuration: glyph table,
// colors, alignment and spacing, plus the three built-in glyph sets
// (thin/thick/double).
package style

import "github.com/cookiestarfish/trim/color"

// TextAlignment controls how a label's text is positioned within its
// node box's padded interior.
type TextAlignment int

const (
	TextAlignNone TextAlignment = iota // treated identically to Left
	TextAlignLeft
	TextAlignCenter
	TextAlignRight
)

// TextModifier is a bitmask of terminal text attributes.
type TextModifier int

const (
	TextModifierNone      TextModifier = 0
	TextModifierBold      TextModifier = 1 << 0
	TextModifierUnderline TextModifier = 1 << 1
	TextModifierItalic    TextModifier = 1 << 2
)

// TreeAlignment controls how children are centered/left/right-aligned
// under or relative to their parent during layout.
type TreeAlignment int

const (
	TreeAlignNone TreeAlignment = iota // treated identically to Left
	TreeAlignLeft
	TreeAlignCenter
	TreeAlignRight
)

// Joint is a bitmask over the four compass directions participating in a
// single branch-drawing cell; its low 4 bits select one of nine glyphs.
type Joint int

const (
	JointRight Joint = 1 << iota
	JointDown
	JointLeft
	JointUp
)

const (
	JointRightDown     = JointRight | JointDown
	JointRightUp       = JointRight | JointUp
	JointDownLeft      = JointDown | JointLeft
	JointLeftUp        = JointLeft | JointUp
	JointRightDownLeft = JointRight | JointDown | JointLeft
	JointRightDownUp   = JointRight | JointDown | JointUp
	JointRightLeftUp   = JointRight | JointLeft | JointUp
	JointDownLeftUp    = JointDown | JointLeft | JointUp
	JointAll           = JointRight | JointDown | JointLeft | JointUp
)

// Style is the complete, immutable render configuration for one scene.
// Construct one via Thin/Thick/Double and override fields as needed; all
// fields are plain values so a Style is trivially copyable.
type Style struct {
	BoxVerticalLine   string
	BoxHorizontalLine string
	BoxTopLeft        string
	BoxTopRight       string
	BoxBotLeft        string
	BoxBotRight       string

	VerticalLine   string
	HorizontalLine string

	TopConnection string
	BotConnection string

	JointDownLeftGlyph      string
	JointRightDownGlyph     string
	JointLeftUpGlyph        string
	JointRightUpGlyph       string
	JointRightDownLeftGlyph string
	JointRightDownUpGlyph   string
	JointRightLeftUpGlyph   string
	JointDownLeftUpGlyph    string
	JointAllGlyph           string

	BoxColor    color.RGB
	BranchColor color.RGB
	TextColor   color.RGB

	TextModifier TextModifier
	TextAlign    TextAlignment
	TreeAlign    TreeAlignment

	SiblingMargin          int
	LevelMargin            int
	NodeVerticalPadding    int
	NodeHorizontalPadding  int
	NodeMinimumWidth       int
	NodeMinimumHeight      int
}

// Glyph returns the glyph for joint j under this style.
func (s Style) Glyph(j Joint) string {
	switch j {
	case JointRightDown:
		return s.JointRightDownGlyph
	case JointRightUp:
		return s.JointRightUpGlyph
	case JointDownLeft:
		return s.JointDownLeftGlyph
	case JointLeftUp:
		return s.JointLeftUpGlyph
	case JointRightDownLeft:
		return s.JointRightDownLeftGlyph
	case JointRightDownUp:
		return s.JointRightDownUpGlyph
	case JointRightLeftUp:
		return s.JointRightLeftUpGlyph
	case JointDownLeftUp:
		return s.JointDownLeftUpGlyph
	case JointAll:
		return s.JointAllGlyph
	default:
		panic("trim/style: unsupported joint combination")
	}
}

// Thin is the default glyph set: single-line box-drawing characters.
func Thin() Style {
	return Style{
		BoxVerticalLine:   "|",
		BoxHorizontalLine: "─",
		BoxTopLeft:        "┌",
		BoxTopRight:       "┐",
		BoxBotLeft:        "└",
		BoxBotRight:       "┘",

		VerticalLine:   "|",
		HorizontalLine: "─",

		TopConnection: "┴",
		BotConnection: "┬",

		JointDownLeftGlyph:      "┐",
		JointRightDownGlyph:     "┌",
		JointLeftUpGlyph:        "┘",
		JointRightUpGlyph:       "└",
		JointRightDownLeftGlyph: "┬",
		JointRightDownUpGlyph:   "├",
		JointRightLeftUpGlyph:   "┴",
		JointDownLeftUpGlyph:    "┤",
		JointAllGlyph:           "┼",

		BoxColor:    color.None,
		BranchColor: color.None,
		TextColor:   color.None,

		TextModifier: TextModifierNone,
		TextAlign:    TextAlignCenter,
		TreeAlign:    TreeAlignCenter,

		SiblingMargin:         2,
		LevelMargin:           1,
		NodeVerticalPadding:   0,
		NodeHorizontalPadding: 1,
		NodeMinimumWidth:      0,
		NodeMinimumHeight:     0,
	}
}

// Default is an alias of Thin, matching the original tool's default_style.
func Default() Style { return Thin() }

// Thick uses heavy box-drawing characters, keeping every other field at
// Thin's defaults.
func Thick() Style {
	s := Thin()
	s.BoxVerticalLine = "┃"
	s.BoxHorizontalLine = "━"
	s.BoxTopLeft = "┏"
	s.BoxTopRight = "┓"
	s.BoxBotLeft = "┗"
	s.BoxBotRight = "┛"
	s.VerticalLine = "┃"
	s.HorizontalLine = "━"
	s.TopConnection = "┻"
	s.BotConnection = "┳"
	s.JointDownLeftGlyph = "┓"
	s.JointRightDownGlyph = "┏"
	s.JointLeftUpGlyph = "┛"
	s.JointRightUpGlyph = "┗"
	s.JointRightDownLeftGlyph = "┳"
	s.JointRightDownUpGlyph = "┣"
	s.JointRightLeftUpGlyph = "┻"
	s.JointDownLeftUpGlyph = "┫"
	s.JointAllGlyph = "╋"
	return s
}

// Double uses double-line box-drawing characters, keeping every other
// field at Thin's defaults.
func Double() Style {
	s := Thin()
	s.BoxVerticalLine = "║"
	s.BoxHorizontalLine = "═"
	s.BoxTopLeft = "╔"
	s.BoxTopRight = "╗"
	s.BoxBotLeft = "╚"
	s.BoxBotRight = "╝"
	s.VerticalLine = "║"
	s.HorizontalLine = "═"
	s.TopConnection = "╩"
	s.BotConnection = "╦"
	s.JointDownLeftGlyph = "╗"
	s.JointRightDownGlyph = "╔"
	s.JointLeftUpGlyph = "╝"
	s.JointRightUpGlyph = "╚"
	s.JointRightDownLeftGlyph = "╦"
	s.JointRightDownUpGlyph = "╠"
	s.JointRightLeftUpGlyph = "╩"
	s.JointDownLeftUpGlyph = "╣"
	s.JointAllGlyph = "╬"
	return s
}

// ByName resolves "default", "thin", "thick" or "double" to a Style.
func ByName(name string) (Style, bool) {
	switch name {
	case "default", "thin":
		return Thin(), true
	case "thick":
		return Thick(), true
	case "double":
		return Double(), true
	default:
		return Style{}, false
	}
}
