package analysis

import (
	"errors"

	"github.com/coursework-team/lighthouse/pkg/graph"
)

// ErrNotDAG is returned when an operation requires an acyclic graph.
var ErrNotDAG = errors.New("graph contains cycles")

// IsDAG reports whether the graph reachable from node is cycle-free in both
// edge directions.
func IsDAG(node graph.Node) bool {
	return !graph.HasCycle(node, graph.DirectionBoth)
}

// CollectNodes gathers every node reachable from root along dependents, in
// BFS order.
func CollectNodes(root graph.Node) []graph.Node {
	var nodes []graph.Node
	root.Traverse(func(n graph.Node, _ []graph.Node) bool {
		nodes = append(nodes, n)
		return true
	}, nil)
	return nodes
}

// TopologicalSort returns the reachable nodes in dependency order using
// Kahn's algorithm: for every edge u->v (v depends on u), u comes before v.
// Returns ErrNotDAG if the graph contains a cycle.
func TopologicalSort(root graph.Node) ([]graph.Node, error) {
	nodes := CollectNodes(root)

	// In-degree counts only edges internal to the reachable set; dependencies
	// outside it (none, for a well-rooted graph) would never drain.
	inSet := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		inSet[n.ID()] = true
	}

	inDegree := make(map[string]int, len(nodes))
	for _, n := range nodes {
		for _, dep := range n.Dependencies() {
			if inSet[dep.ID()] {
				inDegree[n.ID()]++
			}
		}
	}

	queue := make([]graph.Node, 0, len(nodes))
	for _, n := range nodes {
		if inDegree[n.ID()] == 0 {
			queue = append(queue, n)
		}
	}

	sorted := make([]graph.Node, 0, len(nodes))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, current)

		for _, dependent := range current.Dependents() {
			if !inSet[dependent.ID()] {
				continue
			}
			inDegree[dependent.ID()]--
			if inDegree[dependent.ID()] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) != len(nodes) {
		return nil, ErrNotDAG
	}
	return sorted, nil
}
