package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giantswarm/wirecheck/internal/dependency"
)

type Alpha struct{}
type Beta struct{}
type Gamma struct{}

var (
	alpha = dependency.TypeFor[*Alpha]()
	beta  = dependency.TypeFor[*Beta]()
	gamma = dependency.TypeFor[*Gamma]()
)

func TestRenderReport_NoCycles(t *testing.T) {
	assert.Empty(t, RenderReport(nil))
	assert.Empty(t, RenderReport([]dependency.Cycle{}))
}

func TestRenderReport_SingleCycle(t *testing.T) {
	report := RenderReport([]dependency.Cycle{{alpha, beta, gamma, alpha}})

	expected := strings.Join([]string{
		"Circular dependencies detected: 1 cycle in the service registrations. Startup cannot continue.",
		"",
		"Cycle 1 of 1 (3 services):",
		"     *validation.Alpha",
		"  -> *validation.Beta",
		"  -> *validation.Gamma",
		"  -> *validation.Alpha  (cycle closes here)",
		"",
		"To break a cycle:",
	}, "\n")
	assert.True(t, strings.HasPrefix(report, expected), "unexpected report:\n%s", report)
}

func TestRenderReport_SelfLoop(t *testing.T) {
	report := RenderReport([]dependency.Cycle{{alpha, alpha}})

	assert.Contains(t, report, "Cycle 1 of 1 (1 service):")
	assert.Contains(t, report, "     *validation.Alpha\n  -> *validation.Alpha  (cycle closes here)")
}

func TestRenderReport_MultipleCycles(t *testing.T) {
	report := RenderReport([]dependency.Cycle{
		{alpha, beta, alpha},
		{gamma, gamma},
	})

	assert.Contains(t, report, "2 cycles in the service registrations")
	assert.Contains(t, report, "Cycle 1 of 2 (2 services):")
	assert.Contains(t, report, "Cycle 2 of 2 (1 service):")
	assert.Equal(t, 2, strings.Count(report, ClosureMarker))

	first := strings.Index(report, "Cycle 1 of 2")
	second := strings.Index(report, "Cycle 2 of 2")
	require.True(t, first >= 0 && second > first)
}

func TestRenderReport_RemediationStrategies(t *testing.T) {
	report := RenderReport([]dependency.Cycle{{alpha, beta, alpha}})

	require.Len(t, Strategies, 4)
	for i, s := range Strategies {
		assert.Contains(t, report, string(rune('1'+i))+". "+s)
	}
	for _, keyword := range []string{"abstraction boundary", "facade", "Invert ownership", "Defer the dependency"} {
		assert.Contains(t, report, keyword)
	}
	assert.False(t, strings.HasSuffix(report, "\n"))
}
