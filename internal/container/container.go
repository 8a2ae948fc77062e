package container

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/giantswarm/wirecheck/internal/dependency"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Container is the application's service registry. Services are registered
// during a single-threaded composition phase and resolved afterwards as
// singletons.
type Container struct {
	mu            sync.RWMutex
	registrations []dependency.ServiceRegistration
	index         map[dependency.TypeID]int
	open          map[string]int
	instances     map[dependency.TypeID]reflect.Value
}

// New creates an empty container.
func New() *Container {
	return &Container{
		index:     make(map[dependency.TypeID]int),
		open:      make(map[string]int),
		instances: make(map[dependency.TypeID]reflect.Value),
	}
}

// Register adds a registration to the container.
func (c *Container) Register(reg dependency.ServiceRegistration) error {
	if err := reg.Validate(); err != nil {
		return fmt.Errorf("cannot register service: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if reg.ServiceType.IsOpen() {
		base := genericBase(reg.ServiceType.String())
		if _, exists := c.open[base]; exists {
			return &DuplicateRegistrationError{ServiceType: reg.ServiceType}
		}
		c.open[base] = len(c.registrations)
	} else {
		if _, exists := c.index[reg.ServiceType]; exists {
			return &DuplicateRegistrationError{ServiceType: reg.ServiceType}
		}
		c.index[reg.ServiceType] = len(c.registrations)
	}

	c.registrations = append(c.registrations, reg)
	return nil
}

// Unregister removes the registration for id and any instance built from it.
// Removing an open family also drops the instances built for its members.
func (c *Container) Unregister(id dependency.TypeID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var (
		pos    int
		exists bool
	)
	if id.IsOpen() {
		pos, exists = c.open[genericBase(id.String())]
	} else {
		pos, exists = c.index[id]
	}
	if !exists {
		return fmt.Errorf("unregister %s: %w", id, ErrNotRegistered)
	}

	c.registrations = append(c.registrations[:pos], c.registrations[pos+1:]...)
	if id.IsOpen() {
		base := genericBase(id.String())
		for built := range c.instances {
			t := built.Type()
			if t != nil && t.Kind() != reflect.Pointer && t.Name() != base && genericBase(t.Name()) == base {
				delete(c.instances, built)
			}
		}
	} else {
		delete(c.instances, id)
	}
	c.reindex()
	return nil
}

func (c *Container) reindex() {
	c.index = make(map[dependency.TypeID]int, len(c.registrations))
	c.open = make(map[string]int)
	for i, reg := range c.registrations {
		if reg.ServiceType.IsOpen() {
			c.open[genericBase(reg.ServiceType.String())] = i
			continue
		}
		c.index[reg.ServiceType] = i
	}
}

// Get returns the registration for id.
func (c *Container) Get(id dependency.TypeID) (dependency.ServiceRegistration, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, exists := c.index[id]
	if !exists {
		return dependency.ServiceRegistration{}, false
	}
	return c.registrations[pos], true
}

// Len returns the number of registrations.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registrations)
}

// ListRegistrations returns every registration in registration order.
func (c *Container) ListRegistrations() []dependency.ServiceRegistration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	regs := make([]dependency.ServiceRegistration, len(c.registrations))
	copy(regs, c.registrations)
	return regs
}

// Provide registers S as satisfied by the type the constructors return.
// Every constructor must be a func returning that type, optionally followed
// by an error. Without constructors, S itself must be a concrete type and is
// built as its zero value (a new(T) for pointer types).
func Provide[S any](c *Container, ctors ...any) error {
	service := dependency.TypeFor[S]()
	impl, err := implementationOf(service.Type(), ctors)
	if err != nil {
		return fmt.Errorf("provide %s: %w", service, err)
	}
	if _, ok := dependency.SelectConstructor(ctors); len(ctors) > 0 && !ok {
		return fmt.Errorf("provide %s: no exported constructor", service)
	}
	return c.Register(dependency.ServiceRegistration{
		ServiceType:        service,
		ImplementationType: impl,
		Constructors:       ctors,
	})
}

// ProvideFactory registers S as built by factory. The container cannot see
// what a factory resolves, so factories are invisible to dependency
// validation.
func ProvideFactory[S any](c *Container, factory func(r Resolver) (S, error)) error {
	if factory == nil {
		return fmt.Errorf("provide %s: nil factory", dependency.TypeFor[S]())
	}
	return c.Register(dependency.ServiceRegistration{
		ServiceType: dependency.TypeFor[S](),
		Factory:     factory,
	})
}

// ProvideInstance registers an already constructed value for S.
func ProvideInstance[S any](c *Container, instance S) error {
	v := reflect.ValueOf(&instance).Elem()
	if isNil(v) {
		return fmt.Errorf("provide %s: nil instance", dependency.TypeFor[S]())
	}
	return c.Register(dependency.ServiceRegistration{
		ServiceType: dependency.TypeFor[S](),
		Instance:    instance,
	})
}

// OpenFactory builds an instance for one instantiation of an open generic
// family.
type OpenFactory func(r Resolver, t reflect.Type) (any, error)

// ProvideOpen registers a factory for every instantiation of a generic
// family. family is written the way Go prints the type without its package,
// e.g. "Repository[T]"; it matches Repository[Product], *Repository[Order]
// is not matched.
func ProvideOpen(c *Container, family string, factory OpenFactory) error {
	if !strings.Contains(family, "[") {
		return fmt.Errorf("provide open family %q: not a generic type", family)
	}
	if factory == nil {
		return fmt.Errorf("provide open family %q: nil factory", family)
	}
	return c.Register(dependency.ServiceRegistration{
		ServiceType: dependency.OpenFamily(family),
		Factory:     factory,
	})
}

func implementationOf(service reflect.Type, ctors []any) (reflect.Type, error) {
	if len(ctors) == 0 {
		if service.Kind() == reflect.Interface {
			return nil, fmt.Errorf("interface service needs a constructor")
		}
		return service, nil
	}

	var impl reflect.Type
	for i, ctor := range ctors {
		t := reflect.TypeOf(ctor)
		if t == nil || t.Kind() != reflect.Func {
			return nil, fmt.Errorf("constructor %d is %T, not a func", i, ctor)
		}
		if reflect.ValueOf(ctor).IsNil() {
			return nil, fmt.Errorf("constructor %d is nil", i)
		}
		if t.IsVariadic() {
			return nil, fmt.Errorf("constructor %d is variadic, %s", i, t)
		}
		switch {
		case t.NumOut() == 1:
		case t.NumOut() == 2 && t.Out(1) == errorType:
		default:
			return nil, fmt.Errorf("constructor %d must return (T) or (T, error), got %s", i, t)
		}
		out := t.Out(0)
		if impl != nil && out != impl {
			return nil, fmt.Errorf("constructor %d returns %s, others return %s", i, out, impl)
		}
		if !out.AssignableTo(service) {
			return nil, fmt.Errorf("constructor %d returns %s which does not implement %s", i, out, service)
		}
		impl = out
	}
	return impl, nil
}

// genericBase returns "Repository" for "Repository[T]" and for
// "Repository[github.com/x/business.Product]".
func genericBase(name string) string {
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
