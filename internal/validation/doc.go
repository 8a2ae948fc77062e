// Package validation checks the service registrations of a container for
// circular dependencies before the application starts serving.
//
// The pipeline runs once, synchronously:
//
//  1. Extract reads the registrations through RegistryProvider, so the
//     validator never depends on container internals. Unsupported registries
//     produce a warning and validation passes vacuously.
//  2. dependency.BuildGraph turns the registrations into a graph.
//  3. dependency.DetectCycles finds the unique cycles.
//  4. RenderReport formats them for the operator.
//
// ValidateDependencies is the entry point for hosts:
//
//	if err := validation.ValidateDependencies(c, logger); err != nil {
//		return nil, err // a *CircularDependencyError; abort startup
//	}
//
// A cycle is never a warning. A container would either fail at the first
// resolution of one of the services involved or hand out partially built
// objects, so the host is expected to stop.
//
// Services registered through factories are invisible to the validator.
package validation
