package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors. All represent programming-contract violations rather than
// recoverable runtime conditions; there is no retry or fallback for any of
// them. Idempotent operations (duplicate add, missing-edge remove) are
// deliberately not errors.
var (
	ErrSelfDependency     = errors.New("node cannot depend on itself")
	ErrCloneConsistency   = errors.New("dependency not present in cloned graph")
	ErrCloneResultMissing = errors.New("cloned graph missing invoking node")
)

// GraphError carries structured context for a failed graph operation.
type GraphError struct {
	Op      string // operation that failed, e.g. "AddDependency"
	NodeID  string
	Cause   error
	Context string
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s node %s (%s): %v", e.Op, e.NodeID, e.Context, e.Cause)
	}
	return fmt.Sprintf("%s node %s: %v", e.Op, e.NodeID, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error { return e.Cause }

// Is reports whether the target matches this error's cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// SelfDependencyError creates the error returned when a node is added as its
// own dependency.
func SelfDependencyError(nodeID string) error {
	return &GraphError{Op: "AddDependency", NodeID: nodeID, Cause: ErrSelfDependency}
}

// CloneConsistencyError creates the error for a dependency that lacks a clone
// during edge reconstruction. It signals a bug in the ancestor back-fill pass
// and is always fatal.
func CloneConsistencyError(nodeID, depID string) error {
	return &GraphError{
		Op:      "CloneWithRelationships",
		NodeID:  nodeID,
		Cause:   ErrCloneConsistency,
		Context: "dependency " + depID,
	}
}

// CloneResultMissingError creates the error for a clone whose invoking node
// was excluded by the predicate and never pulled back in as an ancestor.
func CloneResultMissingError(nodeID string) error {
	return &GraphError{Op: "CloneWithRelationships", NodeID: nodeID, Cause: ErrCloneResultMissing}
}
