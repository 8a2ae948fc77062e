package dependency

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type (
	nodeA struct{}
	nodeB struct{}
	nodeC struct{}
	nodeD struct{}
	nodeX struct{}
	nodeY struct{}
	nodeZ struct{}
)

var (
	a = TypeFor[nodeA]()
	b = TypeFor[nodeB]()
	c = TypeFor[nodeC]()
	d = TypeFor[nodeD]()
	x = TypeFor[nodeX]()
	y = TypeFor[nodeY]()
	z = TypeFor[nodeZ]()
)

// graphOf builds a graph from an adjacency list given in insertion order.
func graphOf(edges ...[]TypeID) *Graph {
	g := New()
	for _, e := range edges {
		g.AddNode(Node{ID: e[0], Kind: KindImplementation, DependsOn: e[1:]})
	}
	return g
}

func TestDetectCycles(t *testing.T) {
	tests := []struct {
		name     string
		graph    *Graph
		expected []Cycle
	}{
		{
			name:     "empty graph",
			graph:    New(),
			expected: nil,
		},
		{
			name:     "chain",
			graph:    graphOf([]TypeID{a, b}, []TypeID{b, c}, []TypeID{c}),
			expected: nil,
		},
		{
			name: "diamond",
			graph: graphOf(
				[]TypeID{a, b, c},
				[]TypeID{b, d},
				[]TypeID{c, d},
				[]TypeID{d},
			),
			expected: nil,
		},
		{
			name:     "triangle",
			graph:    graphOf([]TypeID{a, b}, []TypeID{b, c}, []TypeID{c, a}),
			expected: []Cycle{{a, b, c, a}},
		},
		{
			name:     "self loop",
			graph:    graphOf([]TypeID{a, a}),
			expected: []Cycle{{a, a}},
		},
		{
			name: "two disjoint cycles",
			graph: graphOf(
				[]TypeID{a, b},
				[]TypeID{b, a},
				[]TypeID{x, y},
				[]TypeID{y, z},
				[]TypeID{z, x},
			),
			expected: []Cycle{{a, b, a}, {x, y, z, x}},
		},
		{
			name: "cycle behind a dag prefix",
			graph: graphOf(
				[]TypeID{d, a},
				[]TypeID{a, b},
				[]TypeID{b, c},
				[]TypeID{c, b},
			),
			expected: []Cycle{{b, c, b}},
		},
		{
			name:     "dependency that is not a key is a leaf",
			graph:    graphOf([]TypeID{a, x}, []TypeID{b, x}),
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCycles(tt.graph)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.Equal(t, tt.expected[i], got[i])
			}
		})
	}
}

func TestDetectCycles_DisjointCyclesKeepTheirOwnNodes(t *testing.T) {
	g := graphOf(
		[]TypeID{a, b},
		[]TypeID{b, a},
		[]TypeID{x, y},
		[]TypeID{y, z},
		[]TypeID{z, x},
	)

	cycles := DetectCycles(g)
	require.Len(t, cycles, 2)

	members := func(c Cycle) map[TypeID]bool {
		m := map[TypeID]bool{}
		for _, id := range c {
			m[id] = true
		}
		return m
	}
	assert.Equal(t, map[TypeID]bool{a: true, b: true}, members(cycles[0]))
	assert.Equal(t, map[TypeID]bool{x: true, y: true, z: true}, members(cycles[1]))
}

func TestFindCycles_StartsAtFirstOccurrenceOnPath(t *testing.T) {
	// d -> a -> b -> c -> a: the candidate must not include d.
	g := graphOf(
		[]TypeID{d, a},
		[]TypeID{a, b},
		[]TypeID{b, c},
		[]TypeID{c, a},
	)

	found := FindCycles(g)
	require.Len(t, found, 1)
	assert.Equal(t, Cycle{a, b, c, a}, found[0])
}

func TestCycle_Equal(t *testing.T) {
	tests := []struct {
		name     string
		left     Cycle
		right    Cycle
		expected bool
	}{
		{"identical", Cycle{a, b, c, a}, Cycle{a, b, c, a}, true},
		{"rotated once", Cycle{a, b, c, a}, Cycle{b, c, a, b}, true},
		{"rotated twice", Cycle{a, b, c, a}, Cycle{c, a, b, c}, true},
		{"reversed direction", Cycle{a, b, c, a}, Cycle{a, c, b, a}, false},
		{"different length", Cycle{a, b, a}, Cycle{a, b, c, a}, false},
		{"different members", Cycle{a, b, a}, Cycle{x, y, x}, false},
		{"self loops", Cycle{a, a}, Cycle{a, a}, true},
		{"different self loops", Cycle{a, a}, Cycle{b, b}, false},
		{"empty", Cycle{}, Cycle{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.left.Equal(tt.right))
			assert.Equal(t, tt.expected, tt.right.Equal(tt.left))
		})
	}
}

func TestDeduplicate(t *testing.T) {
	candidates := []Cycle{
		{a, b, c, a},
		{b, c, a, b},
		{x, y, x},
		{c, a, b, c},
		{y, x, y},
	}

	unique := Deduplicate(candidates)
	require.Len(t, unique, 2)
	assert.Equal(t, Cycle{a, b, c, a}, unique[0])
	assert.Equal(t, Cycle{x, y, x}, unique[1])
}

func TestCycle_StringAndLen(t *testing.T) {
	c := Cycle{a, b, a}
	assert.Equal(t, "dependency.nodeA -> dependency.nodeB -> dependency.nodeA", c.String())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, Cycle{a, a}.Len())
	assert.Equal(t, 0, Cycle{}.Len())
	assert.Equal(t, []string{"dependency.nodeA", "dependency.nodeB", "dependency.nodeA"}, c.Names())
}

// syntheticIDs gives n distinct comparable identities without declaring n
// types: each array length is its own reflect.Type.
func syntheticIDs(n int) []TypeID {
	ids := make([]TypeID, n)
	for i := range ids {
		ids[i] = TypeOf(reflect.ArrayOf(i, reflect.TypeOf(struct{}{})))
	}
	return ids
}

func TestDetectCycles_DAGProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(r, "nodes")
		ids := syntheticIDs(n)

		// Edges only point from lower to higher index, which can never loop.
		g := New()
		for i := range ids {
			var deps []TypeID
			for j := i + 1; j < n; j++ {
				if rapid.Bool().Draw(r, fmt.Sprintf("edge_%d_%d", i, j)) {
					deps = append(deps, ids[j])
				}
			}
			g.AddNode(Node{ID: ids[i], DependsOn: deps})
		}

		if cycles := DetectCycles(g); len(cycles) != 0 {
			r.Fatalf("DAG with %d nodes reported cycles: %v", n, cycles)
		}
	})
}

func TestDetectCycles_RingProperty(t *testing.T) {
	rapid.Check(t, func(r *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(r, "ring")
		ids := syntheticIDs(n)

		// Insert the ring in a random order so the search starts anywhere.
		order := rapid.Permutation(ids).Draw(r, "order")
		next := make(map[TypeID]TypeID, n)
		for i, id := range ids {
			next[id] = ids[(i+1)%n]
		}
		g := New()
		for _, id := range order {
			g.AddNode(Node{ID: id, DependsOn: []TypeID{next[id]}})
		}

		cycles := DetectCycles(g)
		if len(cycles) != 1 {
			r.Fatalf("expected exactly one cycle, got %d: %v", len(cycles), cycles)
		}
		if cycles[0].Len() != n {
			r.Fatalf("expected cycle of length %d, got %d", n, cycles[0].Len())
		}
		if first, last := cycles[0][0], cycles[0][len(cycles[0])-1]; first != last {
			r.Fatalf("cycle is not closed: %v", cycles[0])
		}
	})
}
