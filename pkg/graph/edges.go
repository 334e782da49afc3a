package graph

// AddDependency records that this node requires other to complete first,
// inserting both halves of the edge. Adding an already-present dependency is
// a silent no-op; adding the node itself fails with ErrSelfDependency and
// leaves the graph unchanged.
func (b *BaseNode) AddDependency(other Node) error {
	if other.base() == b {
		return SelfDependencyError(b.id)
	}
	for _, dep := range b.dependencies {
		if dep.base() == other.base() {
			return nil
		}
	}
	other.base().dependents = append(other.base().dependents, b.self)
	b.dependencies = append(b.dependencies, other)
	return nil
}

// AddDependent records that other requires this node to complete first.
func (b *BaseNode) AddDependent(other Node) error {
	return other.AddDependency(b.self)
}

// RemoveDependency removes the edge to other, both halves. No-op if the edge
// does not exist.
func (b *BaseNode) RemoveDependency(other Node) {
	if !removeNode(&b.dependencies, other) {
		return
	}
	removeNode(&other.base().dependents, b.self)
}

// RemoveDependent removes the edge from other, both halves.
func (b *BaseNode) RemoveDependent(other Node) {
	other.RemoveDependency(b.self)
}

// RemoveAllDependencies detaches this node from every upstream dependency,
// leaving its dependents untouched.
func (b *BaseNode) RemoveAllDependencies() {
	// Snapshot first: removal mutates the backing list.
	for _, dep := range b.Dependencies() {
		b.RemoveDependency(dep)
	}
}

// IsDependentOn reports whether target is reachable anywhere in this node's
// dependency closure, including the node itself.
func (b *BaseNode) IsDependentOn(target Node) bool {
	found := false
	b.self.Traverse(func(node Node, _ []Node) bool {
		if node.base() == target.base() {
			found = true
			return false
		}
		return true
	}, func(node Node) []Node {
		return node.Dependencies()
	})
	return found
}

// CanDependOn reports whether an edge to other would respect causal ordering:
// a node may only depend on work that started no later than it did. Callers
// check this before AddDependency; it is not enforced on insertion.
func (b *BaseNode) CanDependOn(other Node) bool {
	return other.StartTime() <= b.self.StartTime()
}

// removeNode deletes the entry backed by target's base from list, reporting
// whether anything was removed.
func removeNode(list *[]Node, target Node) bool {
	for i, n := range *list {
		if n.base() == target.base() {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}
