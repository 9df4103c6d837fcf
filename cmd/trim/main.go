// Command trim renders a tree described in one of three small text
// notations (balanced parentheses, a bitstring binary-heap encoding, or
// Markdown headings) as ASCII/Unicode box-and-branch art.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	consolesize "github.com/nathan-fiscaletti/consolesize-go"

	"github.com/cookiestarfish/trim/layout"
	"github.com/cookiestarfish/trim/parse"
	"github.com/cookiestarfish/trim/scene"
	"github.com/cookiestarfish/trim/sprite"
	"github.com/cookiestarfish/trim/style"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	cli := parseArgs(args)

	if cli.printHelp {
		fmt.Fprintln(stdout, helpMessage)
		return 0
	}

	if len(cli.errors) > 0 {
		for _, e := range cli.errors {
			fmt.Fprintln(stderr, e)
		}
		return 1
	}

	inputText, err := readInput(cli, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	parsed, err := parseInput(inputText)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if len(parsed.Errors) > 0 {
		for _, e := range parsed.Errors {
			fmt.Fprintf(stderr, "%s (pos: %d)\n", e.Message, e.Position)
		}
		return 1
	}

	st := resolveStyle(cli)

	lay := layout.Make(parsed.Tree, parsed.Root, parsed.NodeLabels, st)
	tree := sprite.NewTree(parsed.Tree, parsed.Root, parsed.NodeLabels, parsed.EdgeLabels, lay)
	sc := scene.New(tree)

	if cli.fitTerminal {
		warnIfOverTerminalWidth(sc, stderr)
	}

	rendered := sc.Render(st)
	if fcolor.NoColor {
		rendered = stripANSI(rendered)
	}
	fmt.Fprint(stdout, rendered)
	return 0
}

func readInput(cli options, stdin *os.File) (string, error) {
	switch {
	case cli.hasInputFileName:
		f, err := os.Open(cli.inputFileName)
		if err != nil {
			return "", fmt.Errorf("Could not open file %s", cli.inputFileName)
		}
		defer f.Close()
		return readLines(f), nil

	case cli.hasPositionalInput:
		return cli.positionalInput, nil

	default:
		return readLines(stdin), nil
	}
}

// readLines reproduces the reference tool's input reader: read
// line-by-line, re-appending a trailing newline to each, rather than a
// single bulk read.
func readLines(r *os.File) string {
	var b strings.Builder
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	return b.String()
}

// parseInput chooses a parser by the same heuristic the reference tool
// uses: any '#' means Markdown, else a leading '0'/'1' means bitstring,
// else a leading '(' means parentheses, else the input is unrecognized.
func parseInput(text string) (parse.Result, error) {
	switch {
	case strings.Contains(text, "#"):
		return parse.Markdown{}.Parse(text), nil
	case len(text) > 0 && (text[0] == '0' || text[0] == '1'):
		return parse.Bitstring{}.Parse(text), nil
	case len(text) > 0 && text[0] == '(':
		return parse.Parentheses{}.Parse(text), nil
	default:
		return parse.Result{}, fmt.Errorf("Can't parse the given input.\nAllowed inputs are markdown, balanced parentheses, or a string of binary digits.")
	}
}

// resolveStyle starts from the CLI style (or the default) and overlays
// every individually-set style flag, exactly as the reference tool
// layers its style struct.
func resolveStyle(cli options) style.Style {
	st := style.Default()
	if cli.hasStyle {
		st = cli.style
	}

	if cli.hasTextAlign {
		st.TextAlign = cli.textAlign
	}
	if cli.hasHorizontalPadding {
		st.NodeHorizontalPadding = cli.horizontalPadding
	}
	if cli.hasVerticalPadding {
		st.NodeVerticalPadding = cli.verticalPadding
	}
	if cli.hasSiblingMargin {
		st.SiblingMargin = cli.siblingMargin
	}
	if cli.hasLevelMargin {
		st.LevelMargin = cli.levelMargin
	}
	if cli.hasTreeAlign {
		st.TreeAlign = cli.treeAlign
	}
	if cli.hasBoxColor {
		st.BoxColor = cli.boxColor
	}
	if cli.hasTextColor {
		st.TextColor = cli.textColor
	}
	if cli.hasBranchColor {
		st.BranchColor = cli.branchColor
	}

	return st
}

// warnIfOverTerminalWidth is purely advisory: it never changes the
// layout, it just tells the user their terminal is narrower than the
// rendered tree.
func warnIfOverTerminalWidth(sc scene.Scene, stderr *os.File) {
	cols, _ := consolesize.GetConsoleSize()
	if cols <= 0 {
		return
	}
	rect := sc.Rect()
	treeWidth := rect.Width() + 1
	if treeWidth > cols {
		fmt.Fprintf(stderr, "warning: rendered tree is %d columns wide, terminal is %d\n", treeWidth, cols)
	}
}

// stripANSI removes the true-color escapes scene.Render emits, for
// output that isn't going to a color-capable terminal.
func stripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
