package dependency

import (
	"reflect"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Skip records a registration that contributed no node to the graph.
type Skip struct {
	ServiceType TypeID
	Kind        RegistrationKind
	Reason      string
}

const (
	SkipOpenGeneric   = "open generic service type"
	SkipDuplicate     = "service type already processed"
	SkipFactory       = "factory registration, dependencies are not statically known"
	SkipNoType        = "no concrete implementation type"
	SkipInterface     = "implementation type is an interface"
	SkipInvalidSource = "registration has no single source"
)

// BuildGraph turns container registrations into a dependency graph.
//
// Only implementation and instance registrations become nodes. Factories are
// skipped because their closures cannot be inspected, so a cycle that runs
// entirely through factories goes unnoticed. For implementations, the
// exported constructor with the most parameters is taken; ties go to the one
// registered first. Every returned Skip explains a registration that was
// left out.
func BuildGraph(regs []ServiceRegistration) (*Graph, []Skip) {
	g := New()
	var skipped []Skip

	seen := make(map[TypeID]bool, len(regs))
	for _, reg := range regs {
		kind := reg.Kind()
		skip := func(reason string) {
			skipped = append(skipped, Skip{ServiceType: reg.ServiceType, Kind: kind, Reason: reason})
		}

		if reg.ServiceType.IsOpen() {
			skip(SkipOpenGeneric)
			continue
		}
		if seen[reg.ServiceType] {
			skip(SkipDuplicate)
			continue
		}
		seen[reg.ServiceType] = true

		var (
			impl reflect.Type
			deps []TypeID
		)
		switch kind {
		case KindImplementation:
			impl = reg.ImplementationType
		case KindInstance:
			impl = reflect.TypeOf(reg.Instance)
		case KindFactory:
			skip(SkipFactory)
			continue
		default:
			skip(SkipInvalidSource)
			continue
		}

		if impl == nil || reg.ServiceType.IsZero() {
			skip(SkipNoType)
			continue
		}
		if impl.Kind() == reflect.Interface {
			skip(SkipInterface)
			continue
		}

		if kind == KindImplementation {
			if fn, ok := SelectConstructor(reg.Constructors); ok {
				ctor := fn.Type()
				// Parameters of a func value are always instantiated types,
				// so an open family never appears here.
				for i := 0; i < ctor.NumIn(); i++ {
					deps = append(deps, TypeOf(ctor.In(i)))
				}
			}
		}

		g.AddNode(Node{ID: reg.ServiceType, Kind: kind, DependsOn: deps})
	}

	return g, skipped
}

// SelectConstructor returns the exported constructor with the greatest
// number of parameters. ok is false when there is none. Entries that are not
// funcs returning at least one value are ignored.
//
// Containers resolving registrations use the same rule, so the graph
// describes what they will call.
func SelectConstructor(ctors []any) (fn reflect.Value, ok bool) {
	var best reflect.Type
	for _, c := range ctors {
		v := reflect.ValueOf(c)
		if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
			continue
		}
		t := v.Type()
		if t.NumOut() == 0 || !isExportedFunc(v) {
			continue
		}
		if best == nil || t.NumIn() > best.NumIn() {
			best, fn, ok = t, v, true
		}
	}
	return fn, ok
}

// isExportedFunc reports whether fn is an exported function or method value.
// Anonymous func literals count as exported: whoever registered one handed
// it to the container on purpose.
func isExportedFunc(fn reflect.Value) bool {
	f := runtime.FuncForPC(fn.Pointer())
	if f == nil {
		return true
	}
	name := f.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	name = strings.ReplaceAll(name, "[...]", "")

	parts := strings.Split(name, ".")
	last := parts[len(parts)-1]
	if isFuncLiteral(last) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(last)
	return unicode.IsUpper(r)
}

// isFuncLiteral matches "func3" and the bare index of a nested literal
// ("func3.1" splits into "func3" and "1").
func isFuncLiteral(symbol string) bool {
	rest, _ := strings.CutPrefix(symbol, "func")
	if rest == "" {
		return false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
