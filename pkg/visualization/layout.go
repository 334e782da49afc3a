package visualization

import (
	"github.com/coursework-team/lighthouse/pkg/graph"
)

// Position represents a 2D coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Width   float64
	Height  float64
	Padding float64
}

// HierarchicalLayout arranges the dependency graph in depth levels: the root
// on the first row, each further row holding the nodes first reached at that
// BFS depth along dependents.
func HierarchicalLayout(root graph.Node, config LayoutConfig) map[string]Position {
	if config.Padding == 0 {
		config.Padding = 50
	}

	// Group nodes by BFS depth; the traversal path length is the depth.
	levels := make([][]string, 0)
	root.Traverse(func(n graph.Node, path []graph.Node) bool {
		depth := len(path) - 1
		for len(levels) <= depth {
			levels = append(levels, nil)
		}
		levels[depth] = append(levels[depth], n.ID())
		return true
	}, nil)

	positions := make(map[string]Position)
	if len(levels) == 0 {
		return positions
	}

	levelHeight := (config.Height - 2*config.Padding) / float64(len(levels))
	for levelIdx, level := range levels {
		y := config.Padding + float64(levelIdx)*levelHeight + levelHeight/2
		levelWidth := config.Width - 2*config.Padding
		spacing := levelWidth / float64(len(level)+1)

		for nodeIdx, id := range level {
			x := config.Padding + spacing*float64(nodeIdx+1)
			positions[id] = Position{X: x, Y: y}
		}
	}

	return positions
}
