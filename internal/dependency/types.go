package dependency

import (
	"fmt"
	"reflect"
)

// TypeID is the identity of a node inside a dependency graph.
//
// It wraps a concrete reflect.Type, or names an open generic family that has
// not been instantiated (for example "Repository[T]"). The zero value is
// invalid and never becomes a node.
type TypeID struct {
	typ    reflect.Type
	family string
}

// TypeOf returns the TypeID for t. A nil t yields the zero TypeID.
func TypeOf(t reflect.Type) TypeID {
	return TypeID{typ: t}
}

// TypeFor returns the TypeID of T. Interfaces are supported:
//
//	dependency.TypeFor[business.Clock]()
func TypeFor[T any]() TypeID {
	return TypeID{typ: reflect.TypeOf((*T)(nil)).Elem()}
}

// OpenFamily returns the TypeID of an open generic family such as
// "Repository[T]". Open types never become graph nodes or edges.
func OpenFamily(name string) TypeID {
	return TypeID{family: name}
}

// Type returns the underlying reflect.Type, nil for open families.
func (id TypeID) Type() reflect.Type { return id.typ }

// IsOpen reports whether id names an open generic family.
func (id TypeID) IsOpen() bool { return id.family != "" }

// IsZero reports whether id identifies nothing.
func (id TypeID) IsZero() bool { return id.typ == nil && id.family == "" }

// String renders the Go type name, e.g. "*business.PriceListService".
func (id TypeID) String() string {
	switch {
	case id.family != "":
		return id.family
	case id.typ != nil:
		return id.typ.String()
	default:
		return "<nil>"
	}
}

// MarshalText lets TypeIDs appear as map keys and values in JSON/YAML output.
func (id TypeID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// RegistrationKind says how a service registration is satisfied.
type RegistrationKind int

const (
	KindUnknown RegistrationKind = iota
	KindImplementation
	KindFactory
	KindInstance
)

// String makes RegistrationKind satisfy the fmt.Stringer interface.
func (k RegistrationKind) String() string {
	switch k {
	case KindImplementation:
		return "implementation"
	case KindFactory:
		return "factory"
	case KindInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// ServiceRegistration is one entry of a container: a service type and the one
// thing that satisfies it.
//
// Implementation registrations carry the constructors (Go funcs returning
// ImplementationType) the container may call. Factories and instances are
// opaque: their dependencies cannot be inspected.
type ServiceRegistration struct {
	ServiceType TypeID

	ImplementationType reflect.Type
	Constructors       []any

	Factory  any
	Instance any
}

// Kind reports which source satisfies the registration. A registration with
// several sources reports KindUnknown; use Validate to get the reason.
func (r ServiceRegistration) Kind() RegistrationKind {
	if r.sourceCount() != 1 {
		return KindUnknown
	}
	switch {
	case r.ImplementationType != nil:
		return KindImplementation
	case r.Factory != nil:
		return KindFactory
	default:
		return KindInstance
	}
}

// Validate checks that the registration names a service type and exactly one
// source.
func (r ServiceRegistration) Validate() error {
	if r.ServiceType.IsZero() {
		return fmt.Errorf("registration has no service type")
	}
	switch n := r.sourceCount(); n {
	case 1:
		return nil
	case 0:
		return fmt.Errorf("registration for %s has no implementation, factory or instance", r.ServiceType)
	default:
		return fmt.Errorf("registration for %s has %d sources, expected exactly one", r.ServiceType, n)
	}
}

func (r ServiceRegistration) sourceCount() int {
	n := 0
	if r.ImplementationType != nil {
		n++
	}
	if r.Factory != nil {
		n++
	}
	if r.Instance != nil {
		n++
	}
	return n
}
