package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursework-team/lighthouse/pkg/graph"
)

func netNode(t *testing.T, id string, startUs, endUs int64, size int64) *graph.NetworkNode {
	t.Helper()
	return graph.NewNetworkNode(&graph.NetworkRequest{
		RequestID:    id,
		URL:          "https://example.com/" + id,
		TransferSize: size,
		StartUs:      startUs,
		EndUs:        endUs,
	})
}

// buildDiamond wires root -> b, root -> c, b -> d, c -> d.
func buildDiamond(t *testing.T) (root, b, c, d graph.Node) {
	t.Helper()
	root = netNode(t, "root", 0, 100, 1000)
	b = netNode(t, "b", 100, 200, 2000)
	c = netNode(t, "c", 100, 300, 4000)
	d = graph.NewCPUNode("d", &graph.TraceEvent{Name: "EvaluateScript", TsUs: 300, DurUs: 50})

	require.NoError(t, b.AddDependency(root))
	require.NoError(t, c.AddDependency(root))
	require.NoError(t, d.AddDependency(b))
	require.NoError(t, d.AddDependency(c))
	return root, b, c, d
}

func TestTopologicalSortDiamond(t *testing.T) {
	root, _, _, _ := buildDiamond(t)

	sorted, err := TopologicalSort(root)
	require.NoError(t, err)
	require.Len(t, sorted, 4)

	// Every node must come after all of its dependencies.
	pos := make(map[string]int, len(sorted))
	for i, n := range sorted {
		pos[n.ID()] = i
	}
	for _, n := range sorted {
		for _, dep := range n.Dependencies() {
			assert.Less(t, pos[dep.ID()], pos[n.ID()],
				"%s must come after its dependency %s", n.ID(), dep.ID())
		}
	}
	assert.Equal(t, "root", sorted[0].ID())
	assert.Equal(t, "d", sorted[3].ID())
}

func TestTopologicalSortCycle(t *testing.T) {
	a := netNode(t, "a", 0, 100, 0)
	b := netNode(t, "b", 100, 200, 0)
	c := netNode(t, "c", 200, 300, 0)
	require.NoError(t, a.AddDependency(b))
	require.NoError(t, b.AddDependency(c))
	require.NoError(t, c.AddDependency(a))

	_, err := TopologicalSort(a)
	require.ErrorIs(t, err, ErrNotDAG)
	assert.False(t, IsDAG(a))
}

func TestComputeStats(t *testing.T) {
	root, _, _, d := buildDiamond(t)
	d.SetIsMainDocument(true)

	stats := ComputeStats(root)
	assert.Equal(t, 4, stats.TotalNodes)
	assert.Equal(t, 3, stats.NetworkNodes)
	assert.Equal(t, 1, stats.CPUNodes)
	assert.Equal(t, 4, stats.TotalEdges)
	assert.Equal(t, 3, stats.MaxDepth)
	assert.Equal(t, int64(7000), stats.TransferBytes)
	assert.Equal(t, "d", stats.MainDocument)
}

func TestComputeStatsSkipsCachedTransfers(t *testing.T) {
	root := graph.NewNetworkNode(&graph.NetworkRequest{
		RequestID:    "cached",
		TransferSize: 5000,
		FromCache:    true,
	})
	stats := ComputeStats(root)
	assert.Equal(t, int64(0), stats.TransferBytes)
}

func TestCollectNodes(t *testing.T) {
	root, _, _, _ := buildDiamond(t)
	nodes := CollectNodes(root)
	require.Len(t, nodes, 4)
	assert.Equal(t, "root", nodes[0].ID())
}
