package dependency

import "strings"

// Cycle is a closed dependency path [t0, t1, ..., tn, t0]. A self-loop is
// [t0, t0].
type Cycle []TypeID

// Len returns the number of distinct edges in the loop.
func (c Cycle) Len() int {
	if len(c) == 0 {
		return 0
	}
	return len(c) - 1
}

// String renders the cycle as "A -> B -> A".
func (c Cycle) String() string {
	return strings.Join(c.Names(), " -> ")
}

// Names returns the rendered type names in traversal order, closing type
// included.
func (c Cycle) Names() []string {
	names := make([]string, len(c))
	for i, id := range c {
		names[i] = id.String()
	}
	return names
}

// Equal reports whether c and other describe the same loop. The starting
// point does not matter, the direction does.
func (c Cycle) Equal(other Cycle) bool {
	a, b := c.open(), other.open()
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	for offset := range a {
		match := true
		for i := range a {
			if a[i] != b[(i+offset)%len(b)] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// open drops the closing element.
func (c Cycle) open() []TypeID {
	if len(c) < 2 {
		return c
	}
	return c[:len(c)-1]
}

// visitState tracks a node during the depth-first search. A node only ever
// moves forward: unvisited, onPath, explored.
type visitState int

const (
	unvisited visitState = iota
	onPath
	explored
)

// FindCycles returns one candidate per back edge found by a depth-first
// search rooted at every unvisited node, in graph insertion order. The same
// loop can show up more than once; see Deduplicate.
//
// Dependencies that are not keys of the graph (unregistered types, factory
// products) are explored as leaves.
func FindCycles(g *Graph) []Cycle {
	state := make(map[TypeID]visitState, g.Len())
	inPath := make(map[TypeID]bool)
	var path []TypeID
	var found []Cycle

	var visit func(id TypeID)
	visit = func(id TypeID) {
		state[id] = onPath
		inPath[id] = true
		path = append(path, id)

		for _, dep := range g.Dependencies(id) {
			switch {
			case inPath[dep]:
				found = append(found, extractCycle(path, dep))
			case state[dep] == unvisited:
				visit(dep)
			}
			// explored: convergent edge, not a cycle
		}

		path = path[:len(path)-1]
		delete(inPath, id)
		state[id] = explored
	}

	for _, id := range g.IDs() {
		if state[id] == unvisited {
			visit(id)
		}
	}
	return found
}

// extractCycle copies the segment of path starting at the first occurrence
// of closing and appends closing again.
func extractCycle(path []TypeID, closing TypeID) Cycle {
	start := 0
	for i := range path {
		if path[i] == closing {
			start = i
			break
		}
	}
	cycle := make(Cycle, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	return append(cycle, closing)
}

// Deduplicate drops rotation-equivalent cycles, keeping the first of each.
func Deduplicate(candidates []Cycle) []Cycle {
	var unique []Cycle
	for _, c := range candidates {
		dup := false
		for _, u := range unique {
			if u.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, c)
		}
	}
	return unique
}

// DetectCycles returns the unique cycles of g.
func DetectCycles(g *Graph) []Cycle {
	return Deduplicate(FindCycles(g))
}
