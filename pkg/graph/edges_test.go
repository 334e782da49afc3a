package graph

import (
	"errors"
	"testing"
)

func TestAddDependencySelf(t *testing.T) {
	n := netNode("n", 0, 100)
	err := n.AddDependency(n)
	if !errors.Is(err, ErrSelfDependency) {
		t.Fatalf("expected ErrSelfDependency, got %v", err)
	}
	// Failed call leaves the graph unchanged.
	if n.NumDependencies() != 0 || n.NumDependents() != 0 {
		t.Error("self-dependency attempt must not mutate edge lists")
	}
}

func TestAddDependencyIdempotent(t *testing.T) {
	a := netNode("a", 0, 100)
	b := netNode("b", 100, 200)

	if err := b.AddDependency(a); err != nil {
		t.Fatalf("AddDependency failed: %v", err)
	}
	if err := b.AddDependency(a); err != nil {
		t.Fatalf("duplicate AddDependency should be a no-op, got %v", err)
	}

	if b.NumDependencies() != 1 {
		t.Errorf("dependencies: got %d, want 1", b.NumDependencies())
	}
	if a.NumDependents() != 1 {
		t.Errorf("dependents: got %d, want 1", a.NumDependents())
	}
}

func TestEdgeSymmetry(t *testing.T) {
	a := netNode("a", 0, 100)
	b := cpuNode("b", 100, 50)

	if err := a.AddDependent(b); err != nil {
		t.Fatalf("AddDependent failed: %v", err)
	}

	if deps := b.Dependencies(); len(deps) != 1 || deps[0].ID() != "a" {
		t.Error("a must appear in b.Dependencies")
	}
	if deps := a.Dependents(); len(deps) != 1 || deps[0].ID() != "b" {
		t.Error("b must appear in a.Dependents")
	}
}

func TestRemoveDependency(t *testing.T) {
	a := netNode("a", 0, 100)
	b := netNode("b", 100, 200)
	chain(t, a, b)

	b.RemoveDependency(a)
	if b.NumDependencies() != 0 || a.NumDependents() != 0 {
		t.Error("both halves of the edge must be removed")
	}

	// Removing a non-existent edge is a no-op.
	b.RemoveDependency(a)
	b.RemoveDependent(a)
}

func TestRemoveAllDependencies(t *testing.T) {
	a := netNode("a", 0, 100)
	b := netNode("b", 0, 100)
	c := netNode("c", 100, 200)
	if err := c.AddDependency(a); err != nil {
		t.Fatal(err)
	}
	if err := c.AddDependency(b); err != nil {
		t.Fatal(err)
	}
	if err := a.AddDependency(b); err != nil {
		t.Fatal(err)
	}

	c.RemoveAllDependencies()
	if c.NumDependencies() != 0 {
		t.Errorf("dependencies: got %d, want 0", c.NumDependencies())
	}
	if a.NumDependents() != 0 || b.NumDependents() != 1 {
		t.Error("only edges touching c should be removed")
	}
}

func TestAccessorsReturnSnapshots(t *testing.T) {
	a := netNode("a", 0, 100)
	b := netNode("b", 100, 200)
	chain(t, a, b)

	deps := b.Dependencies()
	deps[0] = nil
	if got := b.Dependencies(); got[0] == nil || got[0].ID() != "a" {
		t.Error("mutating the returned slice must not corrupt internal state")
	}
}

func TestIsDependentOn(t *testing.T) {
	root := netNode("root", 0, 100)
	a := netNode("a", 100, 200)
	b := netNode("b", 200, 300)
	other := netNode("other", 0, 50)
	chain(t, root, a, b)

	if !b.IsDependentOn(root) {
		t.Error("b transitively depends on root")
	}
	if !b.IsDependentOn(b) {
		t.Error("a node is in its own dependency closure")
	}
	if b.IsDependentOn(other) {
		t.Error("b does not depend on a disconnected node")
	}
	if root.IsDependentOn(b) {
		t.Error("dependency closure must not follow dependents")
	}
}

func TestCanDependOn(t *testing.T) {
	early := netNode("early", 0, 100)
	late := netNode("late", 500, 600)

	if !late.CanDependOn(early) {
		t.Error("a later task may depend on an earlier one")
	}
	if early.CanDependOn(late) {
		t.Error("an earlier task may not depend on a later one")
	}
	if !early.CanDependOn(early) {
		t.Error("equal start times satisfy the ordering check")
	}

	// Advisory only: a violating edge is still constructible.
	if err := early.AddDependency(late); err != nil {
		t.Fatalf("AddDependency must not enforce CanDependOn: %v", err)
	}
}
