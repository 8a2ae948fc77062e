package validation

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/giantswarm/wirecheck/internal/dependency"
)

// RegistryProvider is implemented by containers the validator can inspect.
type RegistryProvider interface {
	ListRegistrations() []dependency.ServiceRegistration
}

// RegistryProviderFunc adapts a plain function to RegistryProvider.
type RegistryProviderFunc func() []dependency.ServiceRegistration

// ListRegistrations implements RegistryProvider.
func (f RegistryProviderFunc) ListRegistrations() []dependency.ServiceRegistration {
	return f()
}

// Extract returns the registrations held by registry. Unsupported registries
// degrade to an empty collection and a warning; validation then passes
// vacuously.
func Extract(registry any, logger *slog.Logger) []dependency.ServiceRegistration {
	regs, reason := extract(registry)
	if reason != "" {
		warnSkipped(scoped(logger), reason)
	}
	return regs
}

// extract returns a non-empty reason when the registry could not be read.
func extract(registry any) ([]dependency.ServiceRegistration, string) {
	switch r := registry.(type) {
	case nil:
		return nil, "no registry was provided"
	case RegistryProvider:
		if isNilPointer(r) {
			return nil, fmt.Sprintf("registry %T is nil", r)
		}
		return r.ListRegistrations(), ""
	case func() []dependency.ServiceRegistration:
		if r == nil {
			return nil, "registry function is nil"
		}
		return r(), ""
	case []dependency.ServiceRegistration:
		return r, ""
	default:
		return nil, fmt.Sprintf("registry of type %T does not expose its registrations", registry)
	}
}

func warnSkipped(logger *slog.Logger, reason string) {
	logger.Warn("Dependency validation skipped: " + reason)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
