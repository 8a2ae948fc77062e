// Package dependency builds the "who needs whom" graph of the services
// registered in a container and finds circular dependencies in it.
//
// This package is the analytical half of the startup validator: it never
// constructs a service, it only looks at constructor signatures.
//
// # Core Concepts
//
// TypeID: identity of a service type. Wraps a reflect.Type, or names an open
// generic family which never becomes a node.
//
// ServiceRegistration: a container entry. A service type is satisfied by an
// implementation type (with constructors), a factory or an instance.
//
// Graph: maps a TypeID to the TypeIDs its chosen constructor takes as
// parameters. An edge X -> Y means "constructing X requires a Y".
//
// Cycle: a closed path [A, B, C, A]. Two cycles are the same when one is a
// rotation of the other.
//
// # Pipeline
//
//	g, skipped := dependency.BuildGraph(registrations)
//	cycles := dependency.DetectCycles(g) // FindCycles + Deduplicate
//
// # Graph Builder Rules
//
//  1. Open generic service types are skipped
//  2. The first registration of a service type wins
//  3. Factory registrations are skipped (their closures cannot be inspected)
//  4. Instance registrations become nodes without dependencies
//  5. Interface implementation types are skipped
//  6. The exported constructor with the most parameters is used; ties go to
//     the first one registered
//
// Rule 3 is a known blind spot: a cycle introduced only through factory
// closures is not detected.
//
// # Cycle Detection
//
// FindCycles runs a depth-first search with three states per node
// (unvisited, on the current path, fully explored). Only an edge to a node
// that is on the current path closes a cycle; an edge to a fully explored
// node is a convergent path (a diamond) and is ignored. This keeps the search
// O(V + E).
//
// # Thread Safety
//
// A Graph is built once and read afterwards. None of the functions here start
// goroutines or take locks.
package dependency
