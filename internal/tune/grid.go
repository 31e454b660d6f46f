// Package tune sweeps layout parameters. Convergence speed is sensitive
// to the decay pair, and the grid search finds the combination that
// freezes a reference graph in the fewest frames.
package tune

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/sonograph/internal/graph"
	"github.com/san-kum/sonograph/internal/layout"
)

// Param is one swept dimension: Set writes a candidate value into a
// config copy.
type Param struct {
	Name   string
	Values []float64
	Set    func(*layout.Config, float64)
}

// Setters maps parameter names accepted on the command line to config
// fields.
var Setters = map[string]func(*layout.Config, float64){
	"alpha_decay":        func(c *layout.Config, v float64) { c.AlphaDecay = v },
	"velocity_decay":     func(c *layout.Config, v float64) { c.VelocityDecay = v },
	"link_strength":      func(c *layout.Config, v float64) { c.LinkStrength = v },
	"charge_strength":    func(c *layout.Config, v float64) { c.ChargeStrength = v },
	"radial_strength":    func(c *layout.Config, v float64) { c.RadialStrength = v },
	"collision_strength": func(c *layout.Config, v float64) { c.CollisionStrength = v },
	"z_strength":         func(c *layout.Config, v float64) { c.ZStrength = v },
}

// Trial is the outcome of one grid point.
type Trial struct {
	Params map[string]float64
	Frames int
	Energy float64
	Err    error
}

// Score ranks trials: fewer frames wins, residual energy breaks ties. A
// diverged layout is worst.
func (t Trial) Score() float64 {
	if t.Err != nil {
		return math.Inf(1)
	}
	return float64(t.Frames) + t.Energy
}

type Search struct {
	base     layout.Config
	params   []Param
	newGraph func() *graph.Graph
	workers  int
}

func NewSearch(base layout.Config, params []Param, newGraph func() *graph.Graph, workers int) *Search {
	if workers < 1 {
		workers = 4
	}
	return &Search{base: base, params: params, newGraph: newGraph, workers: workers}
}

// Run evaluates every grid point and returns all trials plus the best.
func (s *Search) Run(ctx context.Context) ([]Trial, Trial, error) {
	if len(s.params) == 0 {
		return nil, Trial{}, fmt.Errorf("empty parameter grid")
	}
	var combos []map[string]float64
	s.expand(0, map[string]float64{}, &combos)
	if len(combos) == 0 {
		return nil, Trial{}, fmt.Errorf("empty parameter grid")
	}

	trials := make([]Trial, len(combos))
	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup

	for i, combo := range combos {
		wg.Add(1)
		go func(idx int, combo map[string]float64) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				trials[idx] = Trial{Params: combo, Err: ctx.Err()}
				return
			}
			trials[idx] = s.evaluate(combo)
		}(i, combo)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, Trial{}, err
	}

	best := trials[0]
	for _, t := range trials[1:] {
		if t.Score() < best.Score() {
			best = t
		}
	}
	if math.IsInf(best.Score(), 1) {
		return trials, best, fmt.Errorf("every grid point failed")
	}
	return trials, best, nil
}

func (s *Search) expand(depth int, current map[string]float64, out *[]map[string]float64) {
	if depth == len(s.params) {
		combo := make(map[string]float64, len(current))
		for k, v := range current {
			combo[k] = v
		}
		*out = append(*out, combo)
		return
	}
	p := s.params[depth]
	for _, v := range p.Values {
		current[p.Name] = v
		s.expand(depth+1, current, out)
	}
	delete(current, p.Name)
}

func (s *Search) evaluate(combo map[string]float64) Trial {
	cfg := s.base
	for _, p := range s.params {
		p.Set(&cfg, combo[p.Name])
	}

	sim, err := layout.NewSimulation(s.newGraph(), cfg)
	if err != nil {
		return Trial{Params: combo, Err: err}
	}

	ctrl := layout.NewController(sim)
	frames := 0
	for ctrl.Running() && frames < cfg.FreezeAfterFrames*2 {
		ctrl.Step()
		frames++
	}

	nodes := sim.Graph().Nodes
	if !layout.Finite(nodes) {
		return Trial{Params: combo, Err: fmt.Errorf("layout diverged")}
	}
	return Trial{
		Params: combo,
		Frames: frames,
		Energy: layout.KineticEnergy(nodes),
	}
}
