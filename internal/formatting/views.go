package formatting

import (
	"github.com/giantswarm/wirecheck/internal/dependency"
	"github.com/giantswarm/wirecheck/internal/validation"
)

// ResultView is the serializable form of a validation.Result.
type ResultView struct {
	RunID         string         `json:"runId" yaml:"runId"`
	Passed        bool           `json:"passed" yaml:"passed"`
	Skipped       bool           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Registrations int            `json:"registrations" yaml:"registrations"`
	Nodes         int            `json:"nodes" yaml:"nodes"`
	Edges         int            `json:"edges" yaml:"edges"`
	Duration      string         `json:"duration" yaml:"duration"`
	Cycles        [][]string     `json:"cycles" yaml:"cycles"`
	Excluded      []ExcludedView `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	Report        string         `json:"report,omitempty" yaml:"report,omitempty"`
}

// ExcludedView is a registration that was not part of the graph.
type ExcludedView struct {
	Service string `json:"service" yaml:"service"`
	Kind    string `json:"kind" yaml:"kind"`
	Reason  string `json:"reason" yaml:"reason"`
}

// NewResultView converts a validation result.
func NewResultView(res validation.Result) ResultView {
	v := ResultView{
		RunID:         res.RunID,
		Passed:        res.Passed(),
		Skipped:       res.Skipped,
		Registrations: res.Registrations,
		Nodes:         res.Nodes,
		Edges:         res.Edges,
		Duration:      res.Duration.String(),
		Cycles:        make([][]string, 0, len(res.Cycles)),
		Report:        validation.RenderReport(res.Cycles),
	}
	for _, c := range res.Cycles {
		v.Cycles = append(v.Cycles, c.Names())
	}
	for _, s := range res.Excluded {
		v.Excluded = append(v.Excluded, ExcludedView{
			Service: s.ServiceType.String(),
			Kind:    s.Kind.String(),
			Reason:  s.Reason,
		})
	}
	return v
}

// GraphView is the serializable form of a dependency graph.
type GraphView struct {
	Nodes []NodeView `json:"nodes" yaml:"nodes"`
	Edges int        `json:"edges" yaml:"edges"`
}

// NodeView is one service of a GraphView.
type NodeView struct {
	Service    string   `json:"service" yaml:"service"`
	Kind       string   `json:"kind" yaml:"kind"`
	DependsOn  []string `json:"dependsOn" yaml:"dependsOn"`
	Dependents []string `json:"dependents" yaml:"dependents"`
}

// NewGraphView converts a graph, keeping its insertion order. A nil graph
// yields an empty view.
func NewGraphView(g *dependency.Graph) GraphView {
	v := GraphView{Nodes: []NodeView{}}
	if g == nil {
		return v
	}
	for _, n := range g.Nodes() {
		v.Nodes = append(v.Nodes, NodeView{
			Service:    n.ID.String(),
			Kind:       n.Kind.String(),
			DependsOn:  names(n.DependsOn),
			Dependents: names(g.Dependents(n.ID)),
		})
	}
	v.Edges = g.EdgeCount()
	return v
}

func names(ids []dependency.TypeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
