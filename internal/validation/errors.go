package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/giantswarm/wirecheck/internal/dependency"
)

// ErrCircularDependency matches every *CircularDependencyError via errors.Is.
var ErrCircularDependency = errors.New("circular service dependency")

// CircularDependencyError is returned when the registrations contain at
// least one dependency cycle. The host must not finish starting.
type CircularDependencyError struct {
	Cycles []dependency.Cycle
	Report string
}

// Error implements the error interface. The message is the full report so
// that a crash at startup is actionable on its own.
func (e *CircularDependencyError) Error() string {
	if e.Report == "" {
		return fmt.Sprintf("%d circular service %s detected", len(e.Cycles), plural(len(e.Cycles), "dependency", "dependencies"))
	}
	return e.Report
}

// Is reports whether target is ErrCircularDependency.
func (e *CircularDependencyError) Is(target error) bool {
	return target == ErrCircularDependency
}

// DetailedError returns a summary line per cycle followed by the report.
func (e *CircularDependencyError) DetailedError() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Dependency Validation Error: %d %s", len(e.Cycles), plural(len(e.Cycles), "cycle", "cycles")))
	for i, c := range e.Cycles {
		parts = append(parts, fmt.Sprintf("  Cycle %d: %s", i+1, c))
	}
	if e.Report != "" {
		parts = append(parts, "", e.Report)
	}
	return strings.Join(parts, "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
