package validation

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/giantswarm/wirecheck/internal/dependency"
)

// ClosureMarker annotates the edge that returns to the first service of a
// cycle.
const ClosureMarker = "(cycle closes here)"

// Strategies are the generic ways of breaking a cycle, printed after every
// report.
var Strategies = []string{
	"Introduce an abstraction boundary: make one side depend on an interface owned by the consumer and register the implementation against it.",
	"Extract a facade: move the behaviour both services need into a new service that each of them depends on.",
	"Invert ownership: let the lower-level service publish events or accept callbacks instead of calling back into its consumer.",
	"Defer the dependency: inject a factory or a container.Resolver and obtain the dependency after construction, not in the constructor.",
}

const reportTemplate = `Circular dependencies detected: {{ .Count }} {{ ternary "cycle" "cycles" (eq .Count 1) }} in the service registrations. Startup cannot continue.
{{ range $i, $c := .Cycles }}
Cycle {{ add1 $i }} of {{ $.Count }} ({{ $c.Size }} {{ ternary "service" "services" (eq $c.Size 1) }}):
{{- range $c.Steps }}
  {{ .Arrow }}{{ .Name }}{{ if .Closes }}  {{ $.Marker }}{{ end }}
{{- end }}
{{ end }}
To break a cycle:
{{- range $i, $s := .Strategies }}
  {{ add1 $i }}. {{ $s }}
{{- end }}
`

var report = template.Must(template.New("cycles").Funcs(sprig.TxtFuncMap()).Parse(reportTemplate))

type reportData struct {
	Count      int
	Cycles     []reportCycle
	Marker     string
	Strategies []string
}

type reportCycle struct {
	Size  int
	Steps []reportStep
}

type reportStep struct {
	Arrow  string
	Name   string
	Closes bool
}

// RenderReport formats cycles as a multi-line diagnostic: every cycle as an
// arrow chain in traversal order with the closing edge marked, followed by
// remediation strategies. It returns an empty string for no cycles.
func RenderReport(cycles []dependency.Cycle) string {
	if len(cycles) == 0 {
		return ""
	}

	data := reportData{
		Count:      len(cycles),
		Cycles:     make([]reportCycle, 0, len(cycles)),
		Marker:     ClosureMarker,
		Strategies: Strategies,
	}
	for _, c := range cycles {
		names := c.Names()
		rc := reportCycle{Size: c.Len(), Steps: make([]reportStep, len(names))}
		for i, name := range names {
			arrow := "   "
			if i > 0 {
				arrow = "-> "
			}
			rc.Steps[i] = reportStep{Arrow: arrow, Name: name, Closes: i == len(names)-1}
		}
		data.Cycles = append(data.Cycles, rc)
	}

	var b strings.Builder
	if err := report.Execute(&b, data); err != nil {
		// The template is static and the data is plain strings.
		panic(err)
	}
	return strings.TrimRight(b.String(), "\n")
}
