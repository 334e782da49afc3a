package graph

// TraceEvent is a main-thread task slice from a page-load trace. TsUs is the
// event start and DurUs its duration, both in microseconds.
type TraceEvent struct {
	Name  string
	TsUs  int64
	DurUs int64
}

// CPUNode is the task variant backed by a main-thread compute task.
type CPUNode struct {
	BaseNode
	event *TraceEvent
}

var _ Node = (*CPUNode)(nil)

// NewCPUNode creates a compute node with the given id and trace event.
func NewCPUNode(id string, event *TraceEvent) *CPUNode {
	n := &CPUNode{event: event}
	n.BaseNode = BaseNode{id: id}
	n.self = n
	return n
}

// Type returns TypeCPU.
func (n *CPUNode) Type() NodeType { return TypeCPU }

// StartTime returns the task start in microseconds.
func (n *CPUNode) StartTime() int64 { return n.event.TsUs }

// EndTime returns the task end in microseconds.
func (n *CPUNode) EndTime() int64 { return n.event.TsUs + n.event.DurUs }

// Event returns the underlying trace event.
func (n *CPUNode) Event() *TraceEvent { return n.event }

// CloneWithoutRelationships copies identity and the main-document flag into a
// fresh node with empty edge lists.
func (n *CPUNode) CloneWithoutRelationships() Node {
	clone := NewCPUNode(n.id, n.event)
	clone.SetIsMainDocument(n.IsMainDocument())
	return clone
}
