package graph

// CloneWithRelationships copies the reachable graph into entirely new node
// instances with rebuilt edges, optionally restricted by predicate.
//
// The copy runs in two explicit passes over the original graph, O(V+E) total.
// The first pass walks dependents from the root; a node matching the
// predicate is cloned together with every not-yet-cloned ancestor on its
// dependency chain, so any kept node keeps its full chain back to the root.
// The second pass recreates each original dependency edge between the
// corresponding clones. The passes stay separate so no edge is created before
// both of its endpoints exist.
func (b *BaseNode) CloneWithRelationships(predicate Predicate) (Node, error) {
	root := b.self.RootNode()
	clones := make(map[string]Node)

	root.Traverse(func(node Node, _ []Node) bool {
		if _, done := clones[node.ID()]; done {
			return true
		}
		if predicate == nil {
			clones[node.ID()] = node.CloneWithoutRelationships()
			return true
		}
		if predicate(node) {
			// Walk back up the dependency chain, stopping at ancestors that
			// are already cloned: their own chains are already included.
			node.Traverse(func(ancestor Node, _ []Node) bool {
				clones[ancestor.ID()] = ancestor.CloneWithoutRelationships()
				return true
			}, func(n Node) []Node {
				var parents []Node
				for _, dep := range n.base().dependencies {
					if _, done := clones[dep.ID()]; !done {
						parents = append(parents, dep)
					}
				}
				return parents
			})
		}
		return true
	}, nil)

	var rebuildErr error
	root.Traverse(func(original Node, _ []Node) bool {
		clone, kept := clones[original.ID()]
		if !kept {
			return true
		}
		for _, dep := range original.base().dependencies {
			clonedDep, kept := clones[dep.ID()]
			if !kept {
				rebuildErr = CloneConsistencyError(original.ID(), dep.ID())
				return false
			}
			if err := clone.AddDependency(clonedDep); err != nil {
				rebuildErr = err
				return false
			}
		}
		return true
	}, nil)
	if rebuildErr != nil {
		return nil, rebuildErr
	}

	cloned, kept := clones[b.id]
	if !kept {
		return nil, CloneResultMissingError(b.id)
	}
	return cloned, nil
}
