package graph

// NodeType identifies the concrete task variant behind a node.
type NodeType string

const (
	// TypeNetwork marks nodes backed by a network request.
	TypeNetwork NodeType = "network"
	// TypeCPU marks nodes backed by a main-thread compute task.
	TypeCPU NodeType = "cpu"
)

// Node is a single task in a page-load dependency graph. Edges always come in
// matched pairs: if A lists B as a dependency, B lists A as a dependent, and
// the edge-management methods are the only way edges are created or removed.
//
// The graph is single-threaded by contract. Mutating edges while a traversal
// over the same nodes is in flight is a precondition violation with undefined
// results; callers needing shared reads must synchronize externally.
type Node interface {
	// ID is unique within a graph and immutable after construction.
	ID() string
	// Type reports which task variant backs this node.
	Type() NodeType
	// StartTime and EndTime are microsecond timestamps supplied by the
	// concrete variant, with EndTime >= StartTime.
	StartTime() int64
	EndTime() int64

	IsMainDocument() bool
	SetIsMainDocument(bool)

	Dependencies() []Node
	Dependents() []Node
	NumDependencies() int
	NumDependents() int

	// RootNode follows the first-listed dependency upward until it reaches a
	// node with none. It assumes the producer built the graph so that every
	// first-dependency chain converges on a single shared root; that
	// convention is not verified here.
	RootNode() Node

	AddDependency(Node) error
	AddDependent(Node) error
	RemoveDependency(Node)
	RemoveDependent(Node)
	RemoveAllDependencies()

	// IsDependentOn reports whether target appears anywhere in this node's
	// dependency closure, including the node itself.
	IsDependentOn(target Node) bool
	// CanDependOn reports whether an edge to other would respect causal
	// ordering. It is advisory: AddDependency does not enforce it.
	CanDependOn(other Node) bool

	// CloneWithoutRelationships copies the node's identity and main-document
	// flag into a fresh instance of the same variant with empty edge lists.
	CloneWithoutRelationships() Node
	// CloneWithRelationships copies the reachable graph into independent node
	// instances, optionally filtered by predicate. Whenever a node is kept,
	// its entire dependency chain back to the root is kept with it.
	CloneWithRelationships(predicate Predicate) (Node, error)

	Traverse(visit VisitFunc, expand ExpandFunc)
	TraverseGenerator(expand ExpandFunc) *Traversal

	base() *BaseNode
}

// Predicate selects nodes during filtered cloning.
type Predicate func(Node) bool

// BaseNode carries the graph-structural state shared by every task variant:
// identity, the paired edge lists, and the main-document flag. Variants embed
// it and supply Type, StartTime, EndTime, and CloneWithoutRelationships.
type BaseNode struct {
	id             string
	isMainDocument bool
	dependencies   []Node
	dependents     []Node

	// self points back at the embedding variant so that edge lists hold the
	// concrete node rather than the bare base.
	self Node
}

func (b *BaseNode) base() *BaseNode { return b }

// ID returns the node's immutable identifier.
func (b *BaseNode) ID() string { return b.id }

// IsMainDocument reports whether this node represents the main HTML document.
func (b *BaseNode) IsMainDocument() bool { return b.isMainDocument }

// SetIsMainDocument flags this node as the main HTML document.
func (b *BaseNode) SetIsMainDocument(v bool) { b.isMainDocument = v }

// Dependencies returns a snapshot of the nodes this node requires. Mutating
// the returned slice does not affect the graph.
func (b *BaseNode) Dependencies() []Node {
	out := make([]Node, len(b.dependencies))
	copy(out, b.dependencies)
	return out
}

// Dependents returns a snapshot of the nodes that require this node.
func (b *BaseNode) Dependents() []Node {
	out := make([]Node, len(b.dependents))
	copy(out, b.dependents)
	return out
}

// NumDependencies returns the current dependency count.
func (b *BaseNode) NumDependencies() int { return len(b.dependencies) }

// NumDependents returns the current dependent count.
func (b *BaseNode) NumDependents() int { return len(b.dependents) }

// RootNode walks first-listed dependencies until a node with none remains.
func (b *BaseNode) RootNode() Node {
	node := b.self
	for node.NumDependencies() > 0 {
		node = node.base().dependencies[0]
	}
	return node
}
