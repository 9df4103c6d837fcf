package geometry

import "testing"

func TestAxisBetween(t *testing.T) {
	if AxisBetween(Point{0, 0}, Point{0, 5}) != Horizontal {
		t.Error("expected horizontal axis for same-line points")
	}
	if AxisBetween(Point{0, 0}, Point{5, 0}) != Vertical {
		t.Error("expected vertical axis for same-column points")
	}
}

func TestDirectionBetween(t *testing.T) {
	cases := []struct {
		a, b Point
		want Direction
	}{
		{Point{0, 0}, Point{0, 5}, Right},
		{Point{0, 5}, Point{0, 0}, Left},
		{Point{0, 0}, Point{5, 0}, Down},
		{Point{5, 0}, Point{0, 0}, Up},
	}
	for _, c := range cases {
		if got := DirectionBetween(c.a, c.b); got != c.want {
			t.Errorf("DirectionBetween(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestReverse(t *testing.T) {
	pairs := map[Direction]Direction{Right: Left, Left: Right, Down: Up, Up: Down}
	for d, want := range pairs {
		if got := d.Reverse(); got != want {
			t.Errorf("%v.Reverse() = %v, want %v", d, got, want)
		}
	}
}

func TestMidpoint(t *testing.T) {
	cases := []struct {
		a, b Point
		want Point
	}{
		{Point{0, 0}, Point{0, 4}, Point{0, 2}},
		{Point{0, 0}, Point{0, 5}, Point{0, 2}},
		{Point{2, 0}, Point{6, 0}, Point{4, 0}},
	}
	for _, c := range cases {
		if got := Midpoint(c.a, c.b); got != c.want {
			t.Errorf("Midpoint(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestRectEnvelopes(t *testing.T) {
	r := Rect{P1: Point{0, 0}, P2: Point{4, 4}}
	if !r.Envelopes(Point{2, 2}) {
		t.Error("expected interior point to be enveloped")
	}
	if !r.Envelopes(Point{0, 0}) {
		t.Error("expected corner point to be enveloped")
	}
	if r.Envelopes(Point{5, 5}) {
		t.Error("expected out-of-bounds point to not be enveloped")
	}
}

func TestRectEnvelopesReversedCorners(t *testing.T) {
	// P1 need not be the top-left corner.
	r := Rect{P1: Point{4, 4}, P2: Point{0, 0}}
	if !r.Envelopes(Point{2, 2}) {
		t.Error("expected interior point to be enveloped regardless of corner order")
	}
	if r.TopLine() != 0 || r.BotLine() != 4 || r.LeftColumn() != 0 || r.RightColumn() != 4 {
		t.Error("expected canonical edges regardless of corner order")
	}
}

func TestUnion(t *testing.T) {
	a := Rect{P1: Point{0, 0}, P2: Point{2, 2}}
	b := Rect{P1: Point{1, 1}, P2: Point{5, 5}}
	got := Union(a, b)
	want := Rect{P1: Point{0, 0}, P2: Point{5, 5}}
	if got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestSegmentLength(t *testing.T) {
	h := HorizontalSegment{P1: Point{0, 2}, P2: Point{0, 7}}
	if h.SignedLength() != 5 {
		t.Errorf("SignedLength = %d, want 5", h.SignedLength())
	}
	if h.Length() != 5 {
		t.Errorf("Length = %d, want 5", h.Length())
	}

	reversed := HorizontalSegment{P1: Point{0, 7}, P2: Point{0, 2}}
	if reversed.SignedLength() != -5 {
		t.Errorf("SignedLength = %d, want -5", reversed.SignedLength())
	}
	if reversed.Length() != 5 {
		t.Errorf("Length = %d, want 5", reversed.Length())
	}
}

func TestTranslate(t *testing.T) {
	p := Point{1, 1}.Translate(2, 3)
	if p != (Point{3, 4}) {
		t.Errorf("Translate = %v, want {3 4}", p)
	}

	r := Rect{P1: Point{0, 0}, P2: Point{2, 2}}.Translate(1, 1)
	if r != (Rect{P1: Point{1, 1}, P2: Point{3, 3}}) {
		t.Errorf("Rect.Translate = %v", r)
	}
}
