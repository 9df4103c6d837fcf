package main

import (
	"testing"

	"github.com/cookiestarfish/trim/color"
	"github.com/cookiestarfish/trim/style"
)

func TestParseInputDetectsParentheses(t *testing.T) {
	result, err := parseInput("(a(b)(c))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tree.Size() != 3 {
		t.Errorf("Size() = %d, want 3", result.Tree.Size())
	}
}

func TestParseInputDetectsBitstring(t *testing.T) {
	result, err := parseInput("111")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tree.Size() != 3 {
		t.Errorf("Size() = %d, want 3", result.Tree.Size())
	}
}

func TestParseInputDetectsMarkdown(t *testing.T) {
	result, err := parseInput("# a\n## b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Tree.Size() != 2 {
		t.Errorf("Size() = %d, want 2", result.Tree.Size())
	}
}

func TestParseInputRejectsUnrecognized(t *testing.T) {
	if _, err := parseInput("just some prose"); err == nil {
		t.Error("expected an error for unrecognized input")
	}
}

func TestResolveStyleDefaultsToThin(t *testing.T) {
	st := resolveStyle(options{})
	if st.BoxVerticalLine != style.Thin().BoxVerticalLine {
		t.Errorf("default style should be Thin")
	}
}

func TestResolveStyleOverlaysIndividualFlags(t *testing.T) {
	cli := options{}
	cli.hasStyle = true
	cli.style = style.Thick()
	cli.hasBoxColor = true
	cli.boxColor = color.Red

	st := resolveStyle(cli)
	if st.BoxVerticalLine != style.Thick().BoxVerticalLine {
		t.Error("expected the base style to remain thick")
	}
	if st.BoxColor != color.Red {
		t.Errorf("BoxColor = %v, want overlaid Red", st.BoxColor)
	}
}

func TestStripANSIRemovesEscapes(t *testing.T) {
	in := color.Escape("x", color.RGB{Red: 1, Green: 2, Blue: 3}) + "y"
	got := stripANSI(in)
	if got != "xy" {
		t.Errorf("stripANSI(%q) = %q, want %q", in, got, "xy")
	}
}
