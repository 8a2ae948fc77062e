package dependency

import (
	"testing"
)

type (
	catalog   struct{}
	priceList struct{}
	promotion struct{}
	store     struct{}
	clock     struct{}
)

var (
	idCatalog   = TypeFor[catalog]()
	idPriceList = TypeFor[priceList]()
	idPromotion = TypeFor[promotion]()
	idStore     = TypeFor[store]()
	idClock     = TypeFor[clock]()
)

func TestNew(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New() returned nil")
	}
	if g.nodes == nil {
		t.Fatal("nodes map not initialized")
	}
	if g.Len() != 0 {
		t.Fatalf("expected empty graph, got %d nodes", g.Len())
	}
}

func TestAddNode(t *testing.T) {
	tests := []struct {
		name     string
		nodes    []Node
		expected int
	}{
		{
			name:     "add single node",
			nodes:    []Node{{ID: idClock, Kind: KindInstance}},
			expected: 1,
		},
		{
			name: "add multiple nodes",
			nodes: []Node{
				{ID: idClock, Kind: KindInstance},
				{ID: idCatalog, Kind: KindImplementation, DependsOn: []TypeID{idClock}},
				{ID: idPriceList, Kind: KindImplementation, DependsOn: []TypeID{idCatalog}},
			},
			expected: 3,
		},
		{
			name: "replace existing node",
			nodes: []Node{
				{ID: idCatalog, Kind: KindImplementation},
				{ID: idCatalog, Kind: KindImplementation, DependsOn: []TypeID{idClock}},
			},
			expected: 1,
		},
		{
			name: "open and zero types are ignored",
			nodes: []Node{
				{ID: OpenFamily("Repository[T]")},
				{ID: TypeID{}},
			},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, node := range tt.nodes {
				g.AddNode(node)
			}
			if g.Len() != tt.expected {
				t.Errorf("expected %d nodes, got %d", tt.expected, g.Len())
			}
			if tt.expected > 0 {
				lastNode := tt.nodes[len(tt.nodes)-1]
				node := g.Get(lastNode.ID)
				if node == nil {
					t.Fatalf("node %s not found", lastNode.ID)
				}
				if len(node.DependsOn) != len(lastNode.DependsOn) {
					t.Errorf("dependency mismatch: expected %v, got %v", lastNode.DependsOn, node.DependsOn)
				}
			}
		})
	}
}

func TestAddNode_KeepsPositionOnReplace(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: idCatalog})
	g.AddNode(Node{ID: idClock})
	g.AddNode(Node{ID: idCatalog, DependsOn: []TypeID{idClock}})

	ids := g.IDs()
	if len(ids) != 2 || ids[0] != idCatalog || ids[1] != idClock {
		t.Errorf("unexpected order: %v", ids)
	}
}

func TestAddNode_CopiesDependencies(t *testing.T) {
	deps := []TypeID{idClock}
	g := New()
	g.AddNode(Node{ID: idCatalog, DependsOn: deps})

	deps[0] = idStore
	if got := g.Dependencies(idCatalog); got[0] != idClock {
		t.Errorf("graph was mutated through caller slice: %v", got)
	}
}

func TestGet(t *testing.T) {
	g := New()

	if node := g.Get(idCatalog); node != nil {
		t.Error("expected nil for non-existent node")
	}

	g.AddNode(Node{ID: idCatalog, Kind: KindImplementation, DependsOn: []TypeID{idClock, idStore}})

	retrieved := g.Get(idCatalog)
	if retrieved == nil {
		t.Fatal("failed to retrieve added node")
	}
	if retrieved.ID != idCatalog {
		t.Errorf("ID mismatch: expected %s, got %s", idCatalog, retrieved.ID)
	}
	if retrieved.Kind != KindImplementation {
		t.Errorf("Kind mismatch: expected %v, got %v", KindImplementation, retrieved.Kind)
	}
	if len(retrieved.DependsOn) != 2 {
		t.Errorf("DependsOn length mismatch: expected 2, got %d", len(retrieved.DependsOn))
	}
	if !g.Has(idCatalog) || g.Has(idStore) {
		t.Error("Has reports wrong membership")
	}
}

func TestDependencies(t *testing.T) {
	g := New()

	if deps := g.Dependencies(idCatalog); len(deps) != 0 {
		t.Errorf("expected empty dependencies for non-existent node, got %v", deps)
	}

	g.AddNode(Node{ID: idClock})
	g.AddNode(Node{ID: idCatalog, DependsOn: []TypeID{idClock}})
	g.AddNode(Node{ID: idPriceList, DependsOn: []TypeID{idCatalog}})
	g.AddNode(Node{ID: idPromotion, DependsOn: []TypeID{idPriceList, idClock}})

	tests := []struct {
		nodeID   TypeID
		expected []TypeID
	}{
		{idClock, []TypeID{}},
		{idCatalog, []TypeID{idClock}},
		{idPriceList, []TypeID{idCatalog}},
		{idPromotion, []TypeID{idPriceList, idClock}},
	}

	for _, tt := range tests {
		t.Run(tt.nodeID.String(), func(t *testing.T) {
			deps := g.Dependencies(tt.nodeID)
			if len(deps) != len(tt.expected) {
				t.Fatalf("expected %d dependencies, got %d", len(tt.expected), len(deps))
			}
			for i := range tt.expected {
				if deps[i] != tt.expected[i] {
					t.Errorf("dependency %d: expected %s, got %s", i, tt.expected[i], deps[i])
				}
			}
		})
	}
}

func TestDependents(t *testing.T) {
	g := New()

	if deps := g.Dependents(idClock); len(deps) != 0 {
		t.Errorf("expected empty dependents for non-existent node, got %v", deps)
	}

	g.AddNode(Node{ID: idClock})
	g.AddNode(Node{ID: idCatalog, DependsOn: []TypeID{idClock}})
	g.AddNode(Node{ID: idStore, DependsOn: []TypeID{idClock}})
	g.AddNode(Node{ID: idPriceList, DependsOn: []TypeID{idCatalog}})
	g.AddNode(Node{ID: idPromotion, DependsOn: []TypeID{idCatalog, idClock}})

	tests := []struct {
		nodeID   TypeID
		expected []TypeID
	}{
		{idClock, []TypeID{idCatalog, idStore, idPromotion}},
		{idCatalog, []TypeID{idPriceList, idPromotion}},
		{idStore, nil},
		{idPriceList, nil},
	}

	for _, tt := range tests {
		t.Run(tt.nodeID.String(), func(t *testing.T) {
			deps := g.Dependents(tt.nodeID)
			if len(deps) != len(tt.expected) {
				t.Fatalf("expected %d dependents, got %d: %v", len(tt.expected), len(deps), deps)
			}
			for i := range tt.expected {
				if deps[i] != tt.expected[i] {
					t.Errorf("dependent %d: expected %s, got %s", i, tt.expected[i], deps[i])
				}
			}
		})
	}
}

func TestNodesAndEdgeCount(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: idClock})
	g.AddNode(Node{ID: idCatalog, DependsOn: []TypeID{idClock}})
	g.AddNode(Node{ID: idPromotion, DependsOn: []TypeID{idCatalog, idClock}})

	if got := g.EdgeCount(); got != 3 {
		t.Errorf("expected 3 edges, got %d", got)
	}

	nodes := g.Nodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	nodes[1].DependsOn[0] = idStore
	if g.Dependencies(idCatalog)[0] != idClock {
		t.Error("Nodes must return copies")
	}
}

func TestTypeID_String(t *testing.T) {
	tests := []struct {
		id       TypeID
		expected string
	}{
		{TypeFor[catalog](), "dependency.catalog"},
		{TypeFor[*catalog](), "*dependency.catalog"},
		{OpenFamily("Repository[T]"), "Repository[T]"},
		{TypeID{}, "<nil>"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}
