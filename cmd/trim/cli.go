package main

import (
	"strings"

	"github.com/cookiestarfish/trim/color"
	"github.com/cookiestarfish/trim/style"
)

// option is one parsed command-line token: either a named option
// ("--name" / "--name=value" / "--name value") or a bare positional
// value (empty name). ok is false only when there was nothing left to
// return.
type option struct {
	name  string
	value string
	ok    bool
}

// argParser walks a flat argv slice the same way the reference CLI
// does: "--" switches everything after it to positional-only, "--x=y"
// and "--x y" are both valued options, a bare "--x" with no following
// value (or one followed by another "--..." option) is a flag, and
// anything else is a positional value.
type argParser struct {
	args           []string
	positionalOnly bool
}

func newArgParser(args []string) *argParser {
	return &argParser{args: args}
}

func (p *argParser) done() bool { return len(p.args) == 0 }

func (p *argParser) peek() string {
	if len(p.args) == 0 {
		return ""
	}
	return p.args[0]
}

func (p *argParser) consume() string {
	v := p.args[0]
	p.args = p.args[1:]
	return v
}

func (p *argParser) next() option {
	if p.done() {
		return option{}
	}

	if p.positionalOnly {
		return option{value: p.consume(), ok: true}
	}

	s := p.consume()

	if s == "--" {
		p.positionalOnly = true
		if !p.done() {
			return option{value: p.consume(), ok: true}
		}
		return option{}
	}

	if strings.HasPrefix(s, "--") {
		s = s[2:]
		if eq := strings.IndexByte(s, '='); eq != -1 {
			return option{name: s[:eq], value: s[eq+1:], ok: true}
		}
		if p.done() || strings.HasPrefix(p.peek(), "--") {
			return option{name: s, value: "", ok: true}
		}
		return option{name: s, value: p.consume(), ok: true}
	}

	if strings.HasPrefix(s, "-") {
		return option{name: s[1:], value: "", ok: true}
	}

	return option{value: s, ok: true}
}

// options is the fully parsed, fully validated set of flags the CLI
// understands, mirroring the reference tool's option surface.
type options struct {
	inputFileName    string
	hasInputFileName bool

	style    style.Style
	hasStyle bool

	positionalInput    string
	hasPositionalInput bool

	printHelp bool

	treeAlign    style.TreeAlignment
	hasTreeAlign bool

	textAlign    style.TextAlignment
	hasTextAlign bool

	textColor    color.RGB
	hasTextColor bool
	boxColor     color.RGB
	hasBoxColor  bool
	branchColor  color.RGB
	hasBranchColor bool

	levelMargin       int
	hasLevelMargin    bool
	siblingMargin     int
	hasSiblingMargin  bool
	horizontalPadding int
	hasHorizontalPadding bool
	verticalPadding   int
	hasVerticalPadding bool

	fitTerminal bool

	errors []string
}

func parseArgs(args []string) options {
	p := newArgParser(args)
	result := options{}

	for !p.done() {
		opt := p.next()
		if !opt.ok {
			continue
		}

		if opt.name == "" {
			result.positionalInput = opt.value
			result.hasPositionalInput = true
			continue
		}

		switch opt.name {
		case "h", "help":
			result.printHelp = true

		case "i", "input", "input-file":
			if opt.value == "" {
				result.errors = append(result.errors, "Invalid usage of --input-file. Expected a file name.")
			} else {
				result.inputFileName = opt.value
				result.hasInputFileName = true
			}

		case "style":
			if opt.value == "" {
				result.errors = append(result.errors, "Invalid usage of --style. Expected a style name.")
			} else if s, ok := style.ByName(opt.value); ok {
				result.style = s
				result.hasStyle = true
			} else {
				result.errors = append(result.errors, "Invalid usage of --style. Unrecognized style '"+opt.value+"'.")
			}

		case "tree-align":
			if a, ok := parseTreeAlign(opt.value); ok {
				result.treeAlign = a
				result.hasTreeAlign = true
			} else {
				result.errors = append(result.errors, treeAlignError(opt.value))
			}

		case "text-align":
			if a, ok := parseTextAlign(opt.value); ok {
				result.textAlign = a
				result.hasTextAlign = true
			} else {
				result.errors = append(result.errors, textAlignError(opt.value))
			}

		case "text-color":
			if c, ok := parseColor(opt.value); ok {
				result.textColor = c
				result.hasTextColor = true
			} else {
				result.errors = append(result.errors, colorError("text-color", opt.value))
			}

		case "box-color":
			if c, ok := parseColor(opt.value); ok {
				result.boxColor = c
				result.hasBoxColor = true
			} else {
				result.errors = append(result.errors, colorError("box-color", opt.value))
			}

		case "branch-color":
			if c, ok := parseColor(opt.value); ok {
				result.branchColor = c
				result.hasBranchColor = true
			} else {
				result.errors = append(result.errors, colorError("branch-color", opt.value))
			}

		case "line-margin":
			if n, ok := parseSmallPositiveInt(opt.value); ok {
				result.levelMargin = n
				result.hasLevelMargin = true
			} else {
				result.errors = append(result.errors, intError("line-margin", opt.value))
			}

		case "sibling-margin":
			if n, ok := parseSmallPositiveInt(opt.value); ok {
				result.siblingMargin = n
				result.hasSiblingMargin = true
			} else {
				result.errors = append(result.errors, intError("sibling-margin", opt.value))
			}

		case "horizontal-padding":
			if n, ok := parseSmallPositiveInt(opt.value); ok {
				result.horizontalPadding = n
				result.hasHorizontalPadding = true
			} else {
				result.errors = append(result.errors, intError("horizontal-padding", opt.value))
			}

		case "vertical-padding":
			if n, ok := parseSmallPositiveInt(opt.value); ok {
				result.verticalPadding = n
				result.hasVerticalPadding = true
			} else {
				result.errors = append(result.errors, intError("vertical-padding", opt.value))
			}

		case "fit-terminal":
			result.fitTerminal = true

		default:
			result.errors = append(result.errors, "Unrecognized option '"+opt.name+"'")
		}
	}

	return result
}

func treeAlignError(value string) string {
	if value == "" {
		return "Invalid usage of --tree-align. Expected left|center|right."
	}
	return "Invalid usage of --tree-align. Unrecognized alignment '" + value + "'."
}

func textAlignError(value string) string {
	if value == "" {
		return "Invalid usage of --text-align. Expected left|center|right."
	}
	return "Invalid usage of --text-align. Unrecognized alignment '" + value + "'."
}

func colorError(option, value string) string {
	if value == "" {
		return "Invalid usage of --" + option + ". Expected a color name or hex value."
	}
	return "Invalid usage of --" + option + ". Unrecognized color '" + value + "'."
}

func intError(option, value string) string {
	if value == "" {
		return "Invalid usage of --" + option + ". Expected an integer from 0 to 1000."
	}
	return "Invalid usage of --" + option + ". Not valid: '" + value + "'."
}

func parseTreeAlign(s string) (style.TreeAlignment, bool) {
	switch s {
	case "left":
		return style.TreeAlignLeft, true
	case "center":
		return style.TreeAlignCenter, true
	case "right":
		return style.TreeAlignRight, true
	default:
		return style.TreeAlignNone, false
	}
}

func parseTextAlign(s string) (style.TextAlignment, bool) {
	switch s {
	case "left":
		return style.TextAlignLeft, true
	case "center":
		return style.TextAlignCenter, true
	case "right":
		return style.TextAlignRight, true
	default:
		return style.TextAlignNone, false
	}
}

func parseColor(s string) (color.RGB, bool) {
	if c, ok := color.ParseHex(s); ok {
		return c, true
	}
	return color.ParseName(s)
}

func parseSmallPositiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	result := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		result = result*10 + int(c-'0')
		if result > 1000 {
			return 0, false
		}
	}
	return result, true
}

const helpMessage = `Usage: trim [--input=file_name] [--style=styleName] [--style-parameter=value] [--help]
  --input               | read from the given file instead of stdin
  --style               | configure a style (default, thin, thick, double)
  --tree-align          | configure tree alignment (left, center, right)
  --text-align          | enable label alignment (left, center, right)
  --text-color          | configure text color
  --box-color           | configure box color
  --branch-color        | configure branch color
  --line-margin         | configure vertical margin between parent and child nodes
  --sibling-margin      | configure horizontal margin between sibling nodes
  --horizontal-padding  | configure horizontal label padding
  --vertical-padding    | configure vertical label padding
  --fit-terminal        | warn on stderr if the rendered tree is wider than the terminal
`
