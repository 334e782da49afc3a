package graph

// Direction selects which edge lists HasCycle explores.
type Direction int

const (
	// DirectionBoth checks dependents and then dependencies.
	DirectionBoth Direction = iota
	// DirectionDependents follows dependent edges only.
	DirectionDependents
	// DirectionDependencies follows dependency edges only.
	DirectionDependencies
)

// HasCycle reports whether a cycle is reachable from node along the chosen
// edge direction. This is the only place cycle-freedom is actually checked;
// edge insertion never runs it, so callers validate bulk-built graphs by
// invoking it explicitly. A detected cycle is a fact, not an error.
//
// The walk is an iterative DFS with an explicit stack. currentPath holds the
// active DFS branch; depthAdded records the path depth at which each pending
// node was discovered so the path can be truncated when DFS backtracks to a
// shallower branch. A node popped for processing that is already on
// currentPath is a back-edge to an ancestor of the active branch, which is a
// true cycle. Nodes merely visited before are forward or cross edges and are
// legal in a DAG.
func HasCycle(node Node, direction Direction) bool {
	if direction == DirectionBoth {
		return HasCycle(node, DirectionDependents) || HasCycle(node, DirectionDependencies)
	}

	visited := make(map[*BaseNode]bool)
	depthAdded := map[*BaseNode]int{node.base(): 0}
	currentPath := make([]*BaseNode, 0)
	toVisit := []Node{node}

	for len(toVisit) > 0 {
		current := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]

		if onPath(currentPath, current.base()) {
			return true
		}
		if visited[current.base()] {
			continue
		}

		// Backtrack: drop path entries deeper than where current was found.
		if d := depthAdded[current.base()]; len(currentPath) > d {
			currentPath = currentPath[:d]
		}

		visited[current.base()] = true
		currentPath = append(currentPath, current.base())

		var next []Node
		if direction == DirectionDependents {
			next = current.base().dependents
		} else {
			next = current.base().dependencies
		}
		for _, n := range next {
			if pending(toVisit, n.base()) {
				continue
			}
			toVisit = append(toVisit, n)
			depthAdded[n.base()] = len(currentPath)
		}
	}

	return false
}

func onPath(path []*BaseNode, b *BaseNode) bool {
	for _, p := range path {
		if p == b {
			return true
		}
	}
	return false
}

func pending(stack []Node, b *BaseNode) bool {
	for _, n := range stack {
		if n.base() == b {
			return true
		}
	}
	return false
}
