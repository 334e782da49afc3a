package analysis

import (
	"github.com/coursework-team/lighthouse/pkg/graph"
)

// Stats summarizes the structure of a dependency graph. All figures are
// structural; no timing simulation happens here.
type Stats struct {
	TotalNodes    int
	NetworkNodes  int
	CPUNodes      int
	TotalEdges    int
	MaxDepth      int // longest BFS path from the root, in nodes
	TransferBytes int64
	MainDocument  string // id of the main-document node, if flagged
}

// ComputeStats walks the graph reachable from root and tallies its shape.
func ComputeStats(root graph.Node) Stats {
	var stats Stats
	root.Traverse(func(n graph.Node, path []graph.Node) bool {
		stats.TotalNodes++
		stats.TotalEdges += n.NumDependencies()
		if len(path) > stats.MaxDepth {
			stats.MaxDepth = len(path)
		}
		switch n.Type() {
		case graph.TypeNetwork:
			stats.NetworkNodes++
			if net, ok := n.(*graph.NetworkNode); ok && !net.FromCache() {
				stats.TransferBytes += net.Request().TransferSize
			}
		case graph.TypeCPU:
			stats.CPUNodes++
		}
		if n.IsMainDocument() {
			stats.MainDocument = n.ID()
		}
		return true
	}, nil)
	return stats
}
