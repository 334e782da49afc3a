package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/coursework-team/lighthouse/pkg/analysis"
	"github.com/coursework-team/lighthouse/pkg/graph"
	"github.com/coursework-team/lighthouse/pkg/logging"
	"github.com/coursework-team/lighthouse/pkg/metrics"
	"github.com/coursework-team/lighthouse/pkg/trace"
	"github.com/coursework-team/lighthouse/pkg/validation"
	"github.com/coursework-team/lighthouse/pkg/visualization"
)

type config struct {
	tracePath string
	format    string
	listen    string
}

func (c *config) validate() error {
	return validation.NewConfigValidator("AnalyzeConfig").
		Required("trace", c.tracePath).
		OneOf("format", c.format, "summary", "dot").
		Validate()
}

func main() {
	cfg := &config{}
	flag.StringVar(&cfg.tracePath, "trace", "", "path to the YAML task document")
	flag.StringVar(&cfg.format, "format", "summary", "output format: summary or dot")
	flag.StringVar(&cfg.listen, "listen", "", "address to keep serving Prometheus metrics on after analysis (e.g. :9090)")
	flag.Parse()

	logger := logging.NewDefaultLogger()
	if err := run(cfg, logger); err != nil {
		logger.Error("analysis failed", logging.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config, logger logging.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	reg := metrics.DefaultRegistry()
	loader := trace.NewLoader(logger)

	start := time.Now()
	root, err := loader.LoadFile(cfg.tracePath)
	if err != nil {
		reg.RecordGraphBuild("error", 0, 0, time.Since(start))
		return err
	}

	stats := analysis.ComputeStats(root)
	reg.RecordGraphBuild("success", stats.TotalNodes, stats.TotalEdges, time.Since(start))
	reg.SetNodesByType(string(graph.TypeNetwork), stats.NetworkNodes)
	reg.SetNodesByType(string(graph.TypeCPU), stats.CPUNodes)
	reg.AddTraversedNodes(stats.TotalNodes)

	acyclic := analysis.IsDAG(root)
	if acyclic {
		reg.RecordCycleCheck("acyclic")
	} else {
		reg.RecordCycleCheck("cyclic")
	}

	switch cfg.format {
	case "dot":
		if err := visualization.WriteDOT(os.Stdout, root); err != nil {
			return err
		}
	default:
		printSummary(cfg.tracePath, stats, acyclic)
	}

	if cfg.listen != "" {
		logger.Info("serving metrics", logging.String("addr", cfg.listen))
		http.Handle("/metrics", reg.Handler())
		return http.ListenAndServe(cfg.listen, nil)
	}
	return nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(18)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func printSummary(path string, stats analysis.Stats, acyclic bool) {
	fmt.Println(titleStyle.Render("Dependency graph: " + path))
	row := func(key string, value any) {
		fmt.Printf("%s %v\n", keyStyle.Render(key), value)
	}
	row("nodes", stats.TotalNodes)
	row("network nodes", stats.NetworkNodes)
	row("cpu nodes", stats.CPUNodes)
	row("edges", stats.TotalEdges)
	row("max depth", stats.MaxDepth)
	row("transfer bytes", stats.TransferBytes)
	if stats.MainDocument != "" {
		row("main document", stats.MainDocument)
	}
	if acyclic {
		fmt.Println(okStyle.Render("graph is acyclic"))
	} else {
		fmt.Println(warnStyle.Render("WARNING: graph contains a dependency cycle"))
	}
}
