package contour

import "testing"

func TestPushBackAndAt(t *testing.T) {
	c := New()
	c.PushBack(1, 0)
	c.PushBack(2, 5)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.At(1) != (Element{Node: 2, Offset: 5}) {
		t.Errorf("At(1) = %v", c.At(1))
	}
}

func TestPushFront(t *testing.T) {
	c := New()
	c.PushBack(1, 0)
	c.PushFront(0, -2)
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if c.At(0) != (Element{Node: 0, Offset: -2}) {
		t.Errorf("At(0) = %v, want {0 -2}", c.At(0))
	}
}

func TestClone(t *testing.T) {
	c := New()
	c.PushBack(1, 3)
	clone := c.Clone()
	clone.SetOffset(0, 99)
	if c.At(0).Offset == 99 {
		t.Error("Clone should not share storage with the original")
	}
}

func TestMergeExtendsBeyondSharedDepth(t *testing.T) {
	// left contour has depth 1 at absolute column 0
	left := New()
	left.PushBack(0, 0)

	// right contour has two levels: node 1 at absolute column 10, then node 2 at
	// absolute column 14 (offset +4 from the first entry)
	right := New()
	right.PushBack(1, 10)
	right.PushBack(2, 4)

	left.Merge(right)

	if left.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", left.Len())
	}
	// second entry's offset must place it at absolute column 14 relative
	// to left's own absolute column (0): so offset = 14.
	if left.At(1).Offset != 14 {
		t.Errorf("At(1).Offset = %d, want 14", left.At(1).Offset)
	}
	if left.At(1).Node != 2 {
		t.Errorf("At(1).Node = %d, want 2", left.At(1).Node)
	}
}

func TestMinimumOffsetNoOverlapNeeded(t *testing.T) {
	left := New()
	left.PushBack(0, 0) // absolute column 0, width 3 -> right edge 3

	right := New()
	right.PushBack(1, 10) // absolute column 10, well clear of left's edge

	widthOf := func(node int) int { return 3 }
	if got := MinimumOffset(left, right, widthOf); got != 0 {
		t.Errorf("MinimumOffset = %d, want 0", got)
	}
}

func TestMinimumOffsetRequiresShift(t *testing.T) {
	left := New()
	left.PushBack(0, 0) // absolute column 0, width 5 -> right edge 5

	right := New()
	right.PushBack(1, 2) // absolute column 2, overlapping left's edge by 3

	widthOf := func(node int) int { return 5 }
	if got := MinimumOffset(left, right, widthOf); got != 3 {
		t.Errorf("MinimumOffset = %d, want 3", got)
	}
}
