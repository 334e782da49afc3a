package graph

// NetworkRequest summarizes a single fetch as observed in a page-load trace.
// Timestamps are microseconds relative to the trace origin.
type NetworkRequest struct {
	RequestID    string
	URL          string
	Protocol     string
	ResourceType string
	TransferSize int64
	FromCache    bool
	StartUs      int64
	EndUs        int64
}

// NetworkNode is the task variant backed by a network request.
type NetworkNode struct {
	BaseNode
	request *NetworkRequest
}

var _ Node = (*NetworkNode)(nil)

// NewNetworkNode creates a node identified by the request's RequestID. The
// request is shared, not copied; it is treated as immutable once attached.
func NewNetworkNode(request *NetworkRequest) *NetworkNode {
	n := &NetworkNode{request: request}
	n.BaseNode = BaseNode{id: request.RequestID}
	n.self = n
	return n
}

// Type returns TypeNetwork.
func (n *NetworkNode) Type() NodeType { return TypeNetwork }

// StartTime returns the request start in microseconds.
func (n *NetworkNode) StartTime() int64 { return n.request.StartUs }

// EndTime returns the request end in microseconds.
func (n *NetworkNode) EndTime() int64 { return n.request.EndUs }

// Request returns the underlying request summary.
func (n *NetworkNode) Request() *NetworkRequest { return n.request }

// FromCache reports whether the response was served from cache.
func (n *NetworkNode) FromCache() bool { return n.request.FromCache }

// CloneWithoutRelationships copies identity and the main-document flag into a
// fresh node with empty edge lists.
func (n *NetworkNode) CloneWithoutRelationships() Node {
	clone := NewNetworkNode(n.request)
	clone.SetIsMainDocument(n.IsMainDocument())
	return clone
}
