package graph

// ExpandFunc selects which nodes a traversal should visit next from the
// current node. The default expansion follows Dependents.
type ExpandFunc func(Node) []Node

// VisitFunc receives each visited node together with its traversal path: the
// chain of nodes from the visited node back to the traversal start, as
// discovered by BFS. Returning false stops the walk.
type VisitFunc func(node Node, path []Node) bool

// TraversalEntry pairs a visited node with its path back to the start.
type TraversalEntry struct {
	Node Node
	Path []Node
}

// Traversal is a pull-based breadth-first walk over the graph. Each call to
// TraverseGenerator starts a fresh, independent traversal with its own queue
// and visited set; abandoning one mid-walk needs no cleanup. Every reachable
// node is produced exactly once no matter how many paths lead to it, and the
// order is deterministic given fixed edge-insertion order.
type Traversal struct {
	queue   []TraversalEntry
	visited map[string]bool
	expand  ExpandFunc
}

// TraverseGenerator starts a breadth-first traversal at this node. A nil
// expand walks Dependents.
func (b *BaseNode) TraverseGenerator(expand ExpandFunc) *Traversal {
	if expand == nil {
		expand = func(n Node) []Node { return n.Dependents() }
	}
	return &Traversal{
		queue:   []TraversalEntry{{Node: b.self, Path: []Node{b.self}}},
		visited: map[string]bool{b.id: true},
		expand:  expand,
	}
}

// Next returns the next visited node and its path, or ok=false when the
// traversal is exhausted.
func (t *Traversal) Next() (entry TraversalEntry, ok bool) {
	if len(t.queue) == 0 {
		return TraversalEntry{}, false
	}
	entry = t.queue[0]
	t.queue = t.queue[1:]

	for _, next := range t.expand(entry.Node) {
		if t.visited[next.ID()] {
			continue
		}
		t.visited[next.ID()] = true
		path := make([]Node, 0, len(entry.Path)+1)
		path = append(path, next)
		path = append(path, entry.Path...)
		t.queue = append(t.queue, TraversalEntry{Node: next, Path: path})
	}

	return entry, true
}

// Traverse is the callback-driven form of TraverseGenerator.
func (b *BaseNode) Traverse(visit VisitFunc, expand ExpandFunc) {
	gen := b.TraverseGenerator(expand)
	for entry, ok := gen.Next(); ok; entry, ok = gen.Next() {
		if !visit(entry.Node, entry.Path) {
			return
		}
	}
}
