package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/sonograph/internal/graph"
)

func twoNodeGraph(ax, bx float64) *graph.Graph {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "a", X: ax})
	g.AddNode(&graph.Node{ID: "b", X: bx})
	g.AddLink(&graph.Link{SourceID: "a", TargetID: "b"})
	return g
}

// linkOnlyConfig isolates the link spring so convergence to the target
// distance can be measured without repulsion or anchoring.
func linkOnlyConfig(target float64) Config {
	cfg := DefaultConfig()
	cfg.LinkDistanceDefault = target
	cfg.ChargeStrength = 0
	cfg.CenterStrength = 0
	cfg.RadialStrength = 0
	cfg.PositionStrength = 0
	return cfg
}

func TestSimulationInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative alpha decay", func(c *Config) { c.AlphaDecay = -0.1 }},
		{"alpha decay of one", func(c *Config) { c.AlphaDecay = 1.0 }},
		{"zero velocity decay", func(c *Config) { c.VelocityDecay = 0 }},
		{"velocity decay above one", func(c *Config) { c.VelocityDecay = 1.5 }},
		{"negative link distance", func(c *Config) { c.LinkDistanceDefault = -4 }},
		{"zero charge cutoff", func(c *Config) { c.ChargeMaxDistance = 0 }},
		{"negative radial distance", func(c *Config) { c.RadialDistance = -1 }},
		{"negative collision padding", func(c *Config) { c.CollisionPadding = -0.5 }},
		{"zero freeze budget", func(c *Config) { c.FreezeAfterFrames = 0 }},
		{"zero refresh interval", func(c *Config) { c.EdgeRefreshInterval = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if _, err := NewSimulation(graph.New(), cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestForceOrder(t *testing.T) {
	sim, err := NewSimulation(graph.New(), DefaultConfig())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	want := []string{"link", "charge", "center", "radial", "positionX", "positionY", "axisZ", "collide"}
	got := sim.ForceNames()
	if len(got) != len(want) {
		t.Fatalf("expected %d forces, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("force %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLinkConvergence(t *testing.T) {
	g := twoNodeGraph(-3, 3)
	sim, err := NewSimulation(g, linkOnlyConfig(4))
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	for i := 0; i < 200; i++ {
		sim.Tick()
	}
	a, b := g.Node("a"), g.Node("b")
	dist := math.Hypot(b.X-a.X, b.Y-a.Y)
	if math.Abs(dist-4) > 0.5 {
		t.Errorf("expected distance ~4, got %.3f", dist)
	}
}

func TestFinitenessRandomGraphs(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 1337} {
		g := graph.Random(30, 20, seed)
		sim, err := NewSimulation(g, DefaultConfig())
		if err != nil {
			t.Fatalf("seed %d: new simulation: %v", seed, err)
		}
		for i := 0; i < 300; i++ {
			sim.Tick()
			if !Finite(g.Nodes) {
				t.Fatalf("seed %d: non-finite state at tick %d", seed, i)
			}
		}
	}
}

func TestReactivationOnGrowth(t *testing.T) {
	g := graph.Star(4)
	sim, err := NewSimulation(g, DefaultConfig())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	for sim.Alpha() >= 0.01 {
		sim.Tick()
	}

	t.Run("add node", func(t *testing.T) {
		if err := sim.AddNode(&graph.Node{ID: "late", X: 20}); err != nil {
			t.Fatalf("add node: %v", err)
		}
		if sim.Alpha() < 0.5 {
			t.Errorf("expected alpha >= 0.5 after growth, got %.4f", sim.Alpha())
		}
	})

	for sim.Alpha() >= 0.01 {
		sim.Tick()
	}

	t.Run("add link", func(t *testing.T) {
		sim.AddLink(&graph.Link{SourceID: "late", TargetID: "hub"})
		if sim.Alpha() < 0.5 {
			t.Errorf("expected alpha >= 0.5 after growth, got %.4f", sim.Alpha())
		}
	})
}

func TestAddNodeDuplicate(t *testing.T) {
	g := graph.Star(2)
	sim, err := NewSimulation(g, DefaultConfig())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	if err := sim.AddNode(&graph.Node{ID: "hub"}); !errors.Is(err, graph.ErrDuplicateNode) {
		t.Errorf("expected ErrDuplicateNode, got %v", err)
	}
}

func TestUnresolvableLinkIsInert(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "only", X: 5})
	g.AddLink(&graph.Link{SourceID: "only", TargetID: "ghost"})

	cfg := linkOnlyConfig(4)
	cfg.ZStrength = 0
	sim, err := NewSimulation(g, cfg)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	sim.Tick()

	n := g.Node("only")
	if n.VX != 0 || n.VY != 0 {
		t.Errorf("dangling link produced force: vx=%g vy=%g", n.VX, n.VY)
	}
	if !Finite(g.Nodes) {
		t.Error("non-finite state after tick with dangling link")
	}
}

func TestRemoveNodePrunesLinks(t *testing.T) {
	g := graph.Star(3)
	sim, err := NewSimulation(g, DefaultConfig())
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	if !sim.RemoveNode("leaf-0") {
		t.Fatal("expected node removal")
	}
	for _, l := range g.Links {
		if l.SourceID == "leaf-0" || l.TargetID == "leaf-0" {
			t.Errorf("link %s -> %s survived node removal", l.SourceID, l.TargetID)
		}
	}
	sim.Tick() // must not panic on the pruned set
}

// TestCentralAnchorScenario pins the canonical layout: a central node at
// the origin and one leaf linked to it with target distance 4 settles on
// a radius-4 shell and stops moving.
func TestCentralAnchorScenario(t *testing.T) {
	g := graph.New()
	g.AddNode(&graph.Node{ID: "core", Role: graph.RoleCentral})
	g.AddNode(&graph.Node{ID: "leaf", X: 5})
	g.AddLink(&graph.Link{SourceID: "core", TargetID: "leaf"})

	cfg := DefaultConfig()
	cfg.LinkDistanceCentral = 4
	cfg.RadialDistance = 4
	cfg.CenterStrength = 0

	sim, err := NewSimulation(g, cfg)
	if err != nil {
		t.Fatalf("new simulation: %v", err)
	}
	for i := 0; i < 200; i++ {
		sim.Tick()
	}

	leaf := g.Node("leaf")
	r := math.Sqrt(leaf.X*leaf.X + leaf.Y*leaf.Y + leaf.Z*leaf.Z)
	if math.Abs(r-4) > 0.5 {
		t.Errorf("expected leaf radius ~4, got %.3f", r)
	}
	if s := MaxSpeed(g.Nodes); s > 0.01 {
		t.Errorf("expected settled layout, max speed %.5f", s)
	}
}
