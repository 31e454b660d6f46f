package layout

import (
	"fmt"

	"github.com/san-kum/sonograph/internal/graph"
)

// reactivationAlpha is the temperature the simulation jumps back to
// when the graph grows at runtime, so a settled layout absorbs the new
// node instead of leaving it where it was dropped.
const reactivationAlpha = 0.5

type namedForce struct {
	name  string
	force Force
}

// Simulation owns the convergence schedule and advances the live graph
// one discrete step at a time. All mutation (Tick, AddNode, AddLink,
// RemoveNode) must happen on one logical thread; collaborators read
// node positions between steps, never concurrently with them.
type Simulation struct {
	g   *graph.Graph
	cfg Config

	alpha  float64
	forces []namedForce
	byName map[string]Force

	// epoch increments on every graph mutation; the stabilization
	// controller uses it to notice growth after it has frozen.
	epoch uint64
}

// NewSimulation builds the force registry bound to the graph's live
// node and link slices. The configuration is validated fail-fast: a
// malformed schedule diverges silently otherwise.
func NewSimulation(g *graph.Graph, cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	s := &Simulation{g: g, cfg: cfg, alpha: 1}

	links := func() []*graph.Link { return s.g.Links }
	registry := map[string]Force{
		ForceLink:      NewLinkForce(links, cfg),
		ForceCharge:    NewChargeForce(cfg),
		ForceCenter:    NewCenterForce(cfg),
		ForceRadial:    NewRadialForce(cfg),
		ForcePositionX: NewPositionForce(AxisX, cfg),
		ForcePositionY: NewPositionForce(AxisY, cfg),
		ForceAxisZ:     NewAxisZForce(cfg),
		ForceCollide:   NewCollideForce(cfg),
	}
	s.byName = registry
	for _, name := range forceOrder {
		s.forces = append(s.forces, namedForce{name: name, force: registry[name]})
	}
	s.initializeForces()
	return s, nil
}

func (s *Simulation) initializeForces() {
	for _, f := range s.forces {
		f.force.Initialize(s.g.Nodes)
	}
}

// Tick advances one simulation step: decay alpha, apply every force in
// registry order, damp every velocity component, integrate positions.
// The third axis is integrated inside the z force, but the global decay
// still applies to vz so z momentum bleeds off at the same rate.
func (s *Simulation) Tick() {
	s.alpha *= 1 - s.cfg.AlphaDecay
	for _, f := range s.forces {
		f.force.Apply(s.alpha)
	}
	vd := s.cfg.VelocityDecay
	for _, n := range s.g.Nodes {
		n.VX *= vd
		n.VY *= vd
		n.VZ *= vd
		n.X += n.VX
		n.Y += n.VY
	}
}

// AddNode appends a node to the live set, rebinds the forces and
// re-heats the schedule so the layout resumes instead of staying frozen
// near zero.
func (s *Simulation) AddNode(n *graph.Node) error {
	if err := s.g.AddNode(n); err != nil {
		return err
	}
	s.reactivate()
	return nil
}

// AddLink appends a link and re-heats the schedule. Endpoints that do
// not resolve leave the link inert.
func (s *Simulation) AddLink(l *graph.Link) {
	s.g.AddLink(l)
	s.reactivate()
}

// RemoveNode removes a node and prunes links referencing it.
func (s *Simulation) RemoveNode(id string) bool {
	if !s.g.RemoveNode(id) {
		return false
	}
	s.reactivate()
	return true
}

func (s *Simulation) reactivate() {
	s.initializeForces()
	if s.alpha < reactivationAlpha {
		s.alpha = reactivationAlpha
	}
	s.epoch++
}

// Force returns the named force for live retuning, or nil. Names are
// the Force* constants.
func (s *Simulation) Force(name string) Force { return s.byName[name] }

// ForceNames returns the registry's application order.
func (s *Simulation) ForceNames() []string {
	names := make([]string, len(s.forces))
	for i, f := range s.forces {
		names[i] = f.name
	}
	return names
}

func (s *Simulation) Alpha() float64 { return s.alpha }
func (s *Simulation) Epoch() uint64 { return s.epoch }
func (s *Simulation) Graph() *graph.Graph { return s.g }
func (s *Simulation) Config() Config { return s.cfg }
