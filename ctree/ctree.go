// Package ctree is the rooted ordered tree used throughout trim: a dense
// adjacency list of node ids in [0, N), plus pre-order/post-order walks
// and level computation.
package ctree

// Tree is an adjacency list of ordered children, indexed by dense node id.
type Tree struct {
	children [][]int
}

// New returns a tree with n nodes and no edges yet.
func New(n int) *Tree {
	return &Tree{children: make([][]int, n)}
}

// Size is the number of nodes.
func (t *Tree) Size() int { return len(t.children) }

// AddChild appends child to parent's ordered child list.
func (t *Tree) AddChild(parent, child int) {
	t.children[parent] = append(t.children[parent], child)
}

// NumChildren is the number of children of node.
func (t *Tree) NumChildren(node int) int { return len(t.children[node]) }

// Child returns the i-th child of node.
func (t *Tree) Child(node, i int) int { return t.children[node][i] }

// Children returns node's ordered children. Callers must not mutate the
// returned slice.
func (t *Tree) Children(node int) []int { return t.children[node] }

// PreOrder visits root then each child's subtree, in child order.
func PreOrder(t *Tree, root int, visit func(node int)) {
	visit(root)
	for _, c := range t.Children(root) {
		PreOrder(t, c, visit)
	}
}

// PostOrder visits each child's subtree then node, in child order.
func PostOrder(t *Tree, root int, visit func(node int)) {
	for _, c := range t.Children(root) {
		PostOrder(t, c, visit)
	}
	visit(root)
}

// ComputeLevels sets out[root] = 0 and out[child] = out[parent] + 1 for
// every node reachable from root. out must have length t.Size().
func ComputeLevels(t *Tree, root int, out []int) {
	out[root] = 0
	PreOrder(t, root, func(curr int) {
		for _, c := range t.Children(curr) {
			out[c] = out[curr] + 1
		}
	})
}

// Labels maps a node (or parent-edge) id to its display string. Edge
// labels are carried but never rendered by the core (spec forward
// compatibility hook).
type Labels []string

// NewLabels returns labels for n nodes, all empty.
func NewLabels(n int) Labels { return make(Labels, n) }
