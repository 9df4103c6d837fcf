package assert

import (
	"strings"
	"testing"
)

func TestThatPanicsOnFalse(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if !strings.Contains(r.(string), "boom") {
			t.Errorf("panic message = %q, want it to contain %q", r, "boom")
		}
	}()
	That(false, "boom")
}

func TestThatDoesNotPanicOnTrue(t *testing.T) {
	That(true, "never shown")
}

func TestThatfFormatsMessage(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if !strings.Contains(r.(string), "node 3 out of range") {
			t.Errorf("panic message = %q, want it to contain the formatted text", r)
		}
	}()
	Thatf(false, "node %d out of range", 3)
}
