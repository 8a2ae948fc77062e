// internal/dependency/graph.go
package dependency

// Node is a service type together with the types its chosen constructor
// needs.
type Node struct {
	ID        TypeID
	Kind      RegistrationKind
	DependsOn []TypeID
}

// Graph maps a service type to its direct dependencies. Insertion order is
// kept so traversal and reports are deterministic.
//
// A Graph is built once by BuildGraph and treated as read-only afterwards; it
// is not safe for concurrent writes.
type Graph struct {
	nodes map[TypeID]*Node
	order []TypeID
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[TypeID]*Node)}
}

// AddNode adds (or replaces) a node in the graph. A replaced node keeps its
// original position. Open and zero types are ignored.
func (g *Graph) AddNode(n Node) {
	if n.ID.IsZero() || n.ID.IsOpen() {
		return
	}
	if g.nodes == nil {
		g.nodes = make(map[TypeID]*Node)
	}
	// Copy to avoid external mutations
	copied := n
	copied.DependsOn = make([]TypeID, len(n.DependsOn))
	copy(copied.DependsOn, n.DependsOn)

	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = &copied
}

// Has reports whether id is a key of the graph.
func (g *Graph) Has(id TypeID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Get returns a pointer to the stored node or nil if it does not exist.
func (g *Graph) Get(id TypeID) *Node {
	return g.nodes[id]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the total number of dependency edges.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, node := range g.nodes {
		n += len(node.DependsOn)
	}
	return n
}

// IDs returns the node identities in insertion order.
func (g *Graph) IDs() []TypeID {
	ids := make([]TypeID, len(g.order))
	copy(ids, g.order)
	return ids
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	res := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		n := *g.nodes[id]
		n.DependsOn = g.Dependencies(id)
		res = append(res, n)
	}
	return res
}

// Dependencies returns a slice of immediate dependency IDs for the given node.
func (g *Graph) Dependencies(id TypeID) []TypeID {
	if n, ok := g.nodes[id]; ok {
		// Return a copy to avoid callers modifying internal slice.
		depsCopy := make([]TypeID, len(n.DependsOn))
		copy(depsCopy, n.DependsOn)
		return depsCopy
	}
	return nil
}

// Dependents returns all node IDs that have a direct dependency on the given
// node, in insertion order.  This is an O(n) walk.
func (g *Graph) Dependents(id TypeID) []TypeID {
	var res []TypeID
	for _, nid := range g.order {
		for _, dep := range g.nodes[nid].DependsOn {
			if dep == id {
				res = append(res, nid)
				break
			}
		}
	}
	return res
}
