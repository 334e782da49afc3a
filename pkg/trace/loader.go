package trace

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/coursework-team/lighthouse/pkg/graph"
	"github.com/coursework-team/lighthouse/pkg/logging"
)

// Loader errors.
var (
	ErrDuplicateID       = errors.New("duplicate task id")
	ErrUnknownDependency = errors.New("dependsOn references unknown task id")
	ErrNoRoot            = errors.New("graph has no dependency-free root")
)

// Loader materializes a task Document into a dependency graph, going through
// the graph package's edge API only.
type Loader struct {
	log      logging.Logger
	validate *validator.Validate
}

// NewLoader creates a loader. A nil logger discards output.
func NewLoader(log logging.Logger) *Loader {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Loader{
		log:      log.With(logging.Component("trace")),
		validate: validator.New(),
	}
}

// Load decodes a YAML task document and builds the graph, returning its root
// node. Tasks without an id get a generated one; such tasks cannot be
// referenced from dependsOn.
func (l *Loader) Load(r io.Reader) (graph.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode trace document: %w", err)
	}
	if err := l.validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("validate trace document: %w", err)
	}

	nodes := make(map[string]graph.Node, len(doc.Tasks))
	order := make([]graph.Node, 0, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		id := rec.ID
		if id == "" {
			id = uuid.NewString()
			l.log.Debug("assigned generated task id",
				logging.NodeID(id), logging.Int("index", i))
		}
		if _, exists := nodes[id]; exists {
			return nil, fmt.Errorf("task %q: %w", id, ErrDuplicateID)
		}
		node := buildNode(id, rec)
		nodes[id] = node
		order = append(order, node)
	}

	edges := 0
	for i, rec := range doc.Tasks {
		node := order[i]
		for _, depID := range rec.DependsOn {
			dep, ok := nodes[depID]
			if !ok {
				return nil, fmt.Errorf("task %q depends on %q: %w", node.ID(), depID, ErrUnknownDependency)
			}
			if !node.CanDependOn(dep) {
				l.log.Warn("dependency violates causal ordering",
					logging.NodeID(node.ID()), logging.String("depends_on", depID))
			}
			if err := node.AddDependency(dep); err != nil {
				return nil, err
			}
			edges++
		}
	}

	root, err := resolveRoot(order)
	if err != nil {
		return nil, err
	}
	if graph.HasCycle(root, graph.DirectionBoth) {
		l.log.Warn("loaded graph contains a dependency cycle")
	}

	l.log.Info("trace document loaded",
		logging.Nodes(len(order)), logging.Edges(edges), logging.NodeID(root.ID()))
	return root, nil
}

// LoadFile opens path and loads the document it contains.
func (l *Loader) LoadFile(path string) (graph.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace document: %w", err)
	}
	defer f.Close()
	return l.Load(f)
}

func buildNode(id string, rec Record) graph.Node {
	var node graph.Node
	if rec.Kind == "network" {
		node = graph.NewNetworkNode(&graph.NetworkRequest{
			RequestID:    id,
			URL:          rec.URL,
			Protocol:     rec.Protocol,
			ResourceType: rec.ResourceType,
			TransferSize: rec.TransferSize,
			FromCache:    rec.FromCache,
			StartUs:      rec.Start,
			EndUs:        rec.End,
		})
	} else {
		node = graph.NewCPUNode(id, &graph.TraceEvent{
			Name:  rec.Name,
			TsUs:  rec.Start,
			DurUs: rec.End - rec.Start,
		})
	}
	node.SetIsMainDocument(rec.MainDocument)
	return node
}

// resolveRoot picks the graph root. With multiple dependency-free candidates
// the first declared wins; first-dependency convergence is a producer
// convention the core does not verify.
func resolveRoot(nodes []graph.Node) (graph.Node, error) {
	var root graph.Node
	for _, n := range nodes {
		if n.NumDependencies() == 0 {
			if root == nil {
				root = n
			}
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
