package trace

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursework-team/lighthouse/pkg/graph"
)

const sampleDoc = `
tasks:
  - id: "1:doc"
    kind: network
    url: https://example.com/
    protocol: h2
    resourceType: Document
    transferSize: 12000
    start: 0
    end: 120000
    mainDocument: true
  - id: "2:script"
    kind: network
    url: https://example.com/app.js
    protocol: h2
    resourceType: Script
    transferSize: 45000
    start: 125000
    end: 210000
    dependsOn: ["1:doc"]
  - id: "eval-app"
    kind: cpu
    name: EvaluateScript
    start: 215000
    end: 280000
    dependsOn: ["2:script"]
`

func TestLoadBuildsGraph(t *testing.T) {
	loader := NewLoader(nil)

	root, err := loader.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Equal(t, "1:doc", root.ID())
	assert.True(t, root.IsMainDocument())
	assert.Equal(t, graph.TypeNetwork, root.Type())

	var ids []string
	root.Traverse(func(n graph.Node, _ []graph.Node) bool {
		ids = append(ids, n.ID())
		return true
	}, nil)
	assert.Equal(t, []string{"1:doc", "2:script", "eval-app"}, ids)

	// Edges went through the paired API: symmetry holds.
	assert.Equal(t, 1, root.NumDependents())
	assert.False(t, graph.HasCycle(root, graph.DirectionBoth))
}

func TestLoadCPUNodeTiming(t *testing.T) {
	loader := NewLoader(nil)
	root, err := loader.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	var cpu graph.Node
	root.Traverse(func(n graph.Node, _ []graph.Node) bool {
		if n.Type() == graph.TypeCPU {
			cpu = n
		}
		return true
	}, nil)
	require.NotNil(t, cpu)
	assert.Equal(t, int64(215000), cpu.StartTime())
	assert.Equal(t, int64(280000), cpu.EndTime())
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.Load(strings.NewReader(`
tasks:
  - id: a
    kind: gpu
    start: 0
    end: 10
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate trace document")
}

func TestLoadRejectsUnknownDependency(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.Load(strings.NewReader(`
tasks:
  - id: a
    kind: cpu
    start: 0
    end: 10
  - id: b
    kind: cpu
    start: 10
    end: 20
    dependsOn: ["missing"]
`))
	require.ErrorIs(t, err, ErrUnknownDependency)
}

func TestLoadRejectsDuplicateID(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.Load(strings.NewReader(`
tasks:
  - id: a
    kind: cpu
    start: 0
    end: 10
  - id: a
    kind: cpu
    start: 10
    end: 20
`))
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestLoadAssignsGeneratedIDs(t *testing.T) {
	loader := NewLoader(nil)
	root, err := loader.Load(strings.NewReader(`
tasks:
  - kind: cpu
    name: GC
    start: 0
    end: 10
`))
	require.NoError(t, err)
	assert.NotEmpty(t, root.ID())
}

func TestLoadRejectsEndBeforeStart(t *testing.T) {
	loader := NewLoader(nil)
	_, err := loader.Load(strings.NewReader(`
tasks:
  - id: a
    kind: cpu
    start: 100
    end: 50
`))
	require.Error(t, err)
}

func TestLoadNoRoot(t *testing.T) {
	loader := NewLoader(nil)
	// Two tasks that depend on each other leave no dependency-free node.
	_, err := loader.Load(strings.NewReader(`
tasks:
  - id: a
    kind: cpu
    start: 0
    end: 10
    dependsOn: ["b"]
  - id: b
    kind: cpu
    start: 10
    end: 20
    dependsOn: ["a"]
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoRoot))
}
