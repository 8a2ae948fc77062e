package container

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/giantswarm/wirecheck/internal/dependency"
	"github.com/giantswarm/wirecheck/pkg/logging"
)

// Resolver resolves services by type. Factories receive one bound to the
// resolution in progress so that cycles through factories are reported
// instead of recursing forever.
type Resolver interface {
	ResolveType(t reflect.Type) (any, error)
}

// Resolve returns the singleton for S, building it and its dependencies on
// first use.
func Resolve[S any](r Resolver) (S, error) {
	var zero S
	v, err := r.ResolveType(reflect.TypeOf((*S)(nil)).Elem())
	if err != nil {
		return zero, err
	}
	s, ok := v.(S)
	if !ok {
		return zero, fmt.Errorf("resolved %T, expected %s", v, dependency.TypeFor[S]())
	}
	return s, nil
}

// MustResolve is like Resolve but panics on error. Intended for composition
// roots and tests.
func MustResolve[S any](r Resolver) S {
	s, err := Resolve[S](r)
	if err != nil {
		panic(err)
	}
	return s
}

// ResolveType implements Resolver.
func (c *Container) ResolveType(t reflect.Type) (any, error) {
	v, err := c.resolve(t, nil)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// boundResolver carries the chain of services under construction into
// factories.
type boundResolver struct {
	c    *Container
	path []dependency.TypeID
}

func (b *boundResolver) ResolveType(t reflect.Type) (any, error) {
	v, err := b.c.resolve(t, b.path)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

func (c *Container) resolve(t reflect.Type, path []dependency.TypeID) (reflect.Value, error) {
	id := dependency.TypeOf(t)
	for _, p := range path {
		if p == id {
			chain := append(append([]dependency.TypeID{}, path...), id)
			return reflect.Value{}, &ResolutionError{ServiceType: id, Chain: chain, Err: ErrCircularResolution}
		}
	}

	c.mu.RLock()
	if v, ok := c.instances[id]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	reg, ok := c.lookup(t)
	c.mu.RUnlock()
	if !ok {
		chain := append(append([]dependency.TypeID{}, path...), id)
		return reflect.Value{}, &ResolutionError{ServiceType: id, Chain: chain, Err: ErrNotRegistered}
	}

	path = append(path[:len(path):len(path)], id)
	v, err := c.build(reg, t, path)
	if err != nil {
		var resErr *ResolutionError
		if errors.As(err, &resErr) {
			return reflect.Value{}, err
		}
		return reflect.Value{}, &ResolutionError{ServiceType: id, Chain: path, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.instances[id]; ok {
		return existing, nil
	}
	c.instances[id] = v
	logging.Debug("Container", "Resolved %s (%s)", id, reg.Kind())
	return v, nil
}

// lookup must be called with c.mu held.
func (c *Container) lookup(t reflect.Type) (dependency.ServiceRegistration, bool) {
	if pos, ok := c.index[dependency.TypeOf(t)]; ok {
		return c.registrations[pos], true
	}
	if t.Kind() != reflect.Pointer && t.Name() != "" {
		if pos, ok := c.open[genericBase(t.Name())]; ok && t.Name() != genericBase(t.Name()) {
			return c.registrations[pos], true
		}
	}
	return dependency.ServiceRegistration{}, false
}

func (c *Container) build(reg dependency.ServiceRegistration, t reflect.Type, path []dependency.TypeID) (reflect.Value, error) {
	scope := &boundResolver{c: c, path: path}

	switch reg.Kind() {
	case dependency.KindInstance:
		return convert(reflect.ValueOf(reg.Instance), t)

	case dependency.KindFactory:
		if open, ok := reg.Factory.(OpenFactory); ok {
			v, err := open(scope, t)
			if err != nil {
				return reflect.Value{}, err
			}
			return convert(reflect.ValueOf(v), t)
		}
		var r Resolver = scope
		out := reflect.ValueOf(reg.Factory).Call([]reflect.Value{reflect.ValueOf(&r).Elem()})
		return result(out, t)

	case dependency.KindImplementation:
		fn, ok := dependency.SelectConstructor(reg.Constructors)
		if !ok {
			impl := reg.ImplementationType
			if impl.Kind() == reflect.Pointer {
				return convert(reflect.New(impl.Elem()), t)
			}
			return convert(reflect.New(impl).Elem(), t)
		}

		ft := fn.Type()
		args := make([]reflect.Value, ft.NumIn())
		for i := range args {
			arg, err := c.resolve(ft.In(i), path)
			if err != nil {
				return reflect.Value{}, err
			}
			args[i] = arg
		}
		return result(fn.Call(args), t)
	}

	return reflect.Value{}, fmt.Errorf("registration has no usable source")
}

// result interprets constructor outputs: (T) or (T, error).
func result(out []reflect.Value, t reflect.Type) (reflect.Value, error) {
	if len(out) == 2 && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}
	return convert(out[0], t)
}

// convert returns v as a value of type t, wrapping concrete values into
// interface-typed values where needed.
func convert(v reflect.Value, t reflect.Type) (reflect.Value, error) {
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("constructed nil value for %s", t)
	}
	if v.Type() == t {
		return v, nil
	}
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, fmt.Errorf("constructed %s which is not assignable to %s", v.Type(), t)
	}
	out := reflect.New(t).Elem()
	out.Set(v)
	return out, nil
}
