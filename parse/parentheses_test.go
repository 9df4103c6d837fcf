package parse

import "testing"

func TestParenthesesSimpleTree(t *testing.T) {
	result := Parentheses{}.Parse("(()())")
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Tree.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", result.Tree.Size())
	}
	if result.Tree.NumChildren(result.Root) != 2 {
		t.Fatalf("root has %d children, want 2", result.Tree.NumChildren(result.Root))
	}
	// every node is unlabeled, so each is labeled with its own index
	for i, label := range result.NodeLabels {
		want := formatInt(i)
		if label != want {
			t.Errorf("NodeLabels[%d] = %q, want %q", i, label, want)
		}
	}
}

func TestParenthesesLabels(t *testing.T) {
	result := Parentheses{}.Parse("(root(a)(b))")
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.NodeLabels[result.Root] != "root" {
		t.Errorf("root label = %q, want %q", result.NodeLabels[result.Root], "root")
	}
	children := result.Tree.Children(result.Root)
	if len(children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(children))
	}
	gotLabels := map[string]bool{}
	for _, c := range children {
		gotLabels[result.NodeLabels[c]] = true
	}
	if !gotLabels["a"] || !gotLabels["b"] {
		t.Errorf("expected children labeled a and b, got %v", gotLabels)
	}
}

func TestParenthesesNewlineEscape(t *testing.T) {
	result := Parentheses{}.Parse("(a\\nb)")
	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	want := "a\nb"
	if result.NodeLabels[result.Root] != want {
		t.Errorf("label = %q, want %q", result.NodeLabels[result.Root], want)
	}
}

func TestParenthesesUnbalanced(t *testing.T) {
	result := Parentheses{}.Parse("(()")
	if len(result.Errors) == 0 {
		t.Fatal("expected an unbalanced-parentheses error")
	}
}

func TestParenthesesDisconnected(t *testing.T) {
	result := Parentheses{}.Parse("(())()")
	if len(result.Errors) == 0 {
		t.Fatal("expected a tree-not-connected error for trailing disconnected content")
	}
}

func TestParenthesesEmptyInput(t *testing.T) {
	result := Parentheses{}.Parse("no parens here")
	if result.Tree != nil {
		t.Error("expected no tree when there is no opening parenthesis")
	}
}
