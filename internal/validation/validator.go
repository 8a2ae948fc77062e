package validation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/giantswarm/wirecheck/internal/dependency"
	"github.com/giantswarm/wirecheck/pkg/logging"
)

const subsystem = "DependencyValidation"

// Result describes one validation run.
type Result struct {
	RunID         string             `json:"runId" yaml:"runId"`
	Registrations int                `json:"registrations" yaml:"registrations"`
	Nodes         int                `json:"nodes" yaml:"nodes"`
	Edges         int                `json:"edges" yaml:"edges"`
	Cycles        []dependency.Cycle `json:"cycles" yaml:"cycles"`
	Excluded      []dependency.Skip  `json:"-" yaml:"-"`
	Skipped       bool               `json:"skipped" yaml:"skipped"`
	Duration      time.Duration      `json:"duration" yaml:"duration"`

	// Graph is the graph the cycles were searched in.
	Graph *dependency.Graph `json:"-" yaml:"-"`
}

// Passed reports whether no cycle was found.
func (r Result) Passed() bool {
	return len(r.Cycles) == 0
}

// Observer is notified after every run, passed or not.
type Observer interface {
	ObserveValidation(Result)
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. A nil logger selects the process default.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// WithObserver adds an observer.
func WithObserver(o Observer) Option {
	return func(v *Validator) {
		if o != nil {
			v.observers = append(v.observers, o)
		}
	}
}

// Validator runs the extraction, graph and cycle pipeline. It holds no state
// between runs.
type Validator struct {
	logger    *slog.Logger
	observers []Observer
	now       func() time.Time
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	v := &Validator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate inspects registry and returns a *CircularDependencyError when its
// registrations contain a dependency cycle. The Result is filled in either
// way.
func (v *Validator) Validate(registry any) (Result, error) {
	start := v.now()
	res := Result{RunID: newRunID()}
	log := scoped(v.logger).With(slog.String("run_id", res.RunID))

	regs, reason := extract(registry)
	if reason != "" {
		warnSkipped(log, reason)
		res.Skipped = true
	}
	res.Registrations = len(regs)
	log.Info(fmt.Sprintf("Validating dependencies of %d registered services", len(regs)))

	g, excluded := dependency.BuildGraph(regs)
	for _, s := range excluded {
		log.Debug(fmt.Sprintf("Not validating %s: %s", s.ServiceType, s.Reason),
			slog.String("kind", s.Kind.String()))
	}

	res.Graph = g
	res.Excluded = excluded
	res.Nodes = g.Len()
	res.Edges = g.EdgeCount()
	res.Cycles = dependency.DetectCycles(g)
	res.Duration = v.now().Sub(start)

	for _, o := range v.observers {
		o.ObserveValidation(res)
	}

	if len(res.Cycles) > 0 {
		err := &CircularDependencyError{Cycles: res.Cycles, Report: RenderReport(res.Cycles)}
		log.LogAttrs(context.Background(), logging.SlogLevelCritical,
			fmt.Sprintf("Dependency validation failed: %d circular %s", len(res.Cycles), plural(len(res.Cycles), "dependency", "dependencies")),
			slog.String("report", err.Report))
		return res, err
	}

	log.Info("Dependency validation passed",
		slog.Int("nodes", res.Nodes),
		slog.Int("edges", res.Edges),
		slog.Duration("duration", res.Duration))
	return res, nil
}

// ValidateDependencies checks the services registered in registry for
// circular dependencies. It returns nil when none exist and a
// *CircularDependencyError carrying the formatted report otherwise; the
// caller must then abort startup. A nil logger logs to the process default.
func ValidateDependencies(registry any, logger *slog.Logger) error {
	_, err := New(WithLogger(logger)).Validate(registry)
	return err
}

func scoped(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = logging.Logger()
	}
	return logger.With(slog.String("subsystem", subsystem))
}

// newRunID returns a UUIDv7. Run IDs sort in the order the runs started,
// which saved reports rely on when their modification times are equal.
func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}
