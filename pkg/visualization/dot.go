package visualization

import (
	"fmt"
	"io"
	"strings"

	"github.com/coursework-team/lighthouse/pkg/analysis"
	"github.com/coursework-team/lighthouse/pkg/graph"
)

// WriteDOT renders the graph reachable from root in Graphviz DOT format.
// Dependency edges point from the dependency to its dependent, matching
// execution order. Network nodes are drawn as boxes, CPU nodes as ellipses.
func WriteDOT(w io.Writer, root graph.Node) error {
	if _, err := fmt.Fprintln(w, "digraph dependencies {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=TB;"); err != nil {
		return err
	}

	for _, n := range analysis.CollectNodes(root) {
		shape := "ellipse"
		if n.Type() == graph.TypeNetwork {
			shape = "box"
		}
		style := ""
		if n.IsMainDocument() {
			style = ", style=bold"
		}
		if _, err := fmt.Fprintf(w, "  %s [shape=%s, label=%s%s];\n",
			quote(n.ID()), shape, quote(nodeLabel(n)), style); err != nil {
			return err
		}
		for _, dep := range n.Dependencies() {
			if _, err := fmt.Fprintf(w, "  %s -> %s;\n", quote(dep.ID()), quote(n.ID())); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}

func nodeLabel(n graph.Node) string {
	switch v := n.(type) {
	case *graph.NetworkNode:
		if v.Request().URL != "" {
			return v.Request().URL
		}
	case *graph.CPUNode:
		if v.Event().Name != "" {
			return fmt.Sprintf("%s (%s)", n.ID(), v.Event().Name)
		}
	}
	return n.ID()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
