package layout

// Controller bounds simulation cost once the layout has visually
// settled. The host rendering loop calls Step once per animation
// callback; after the configured frame budget (or, when configured,
// once alpha falls below the epsilon) the controller freezes and stops
// ticking. Freezing is terminal: only graph growth through the
// simulation's AddNode/AddLink path resumes it.
type Controller struct {
	sim *Simulation

	frames    int
	running   bool
	lastEpoch uint64
}

func NewController(sim *Simulation) *Controller {
	return &Controller{sim: sim, running: true, lastEpoch: sim.Epoch()}
}

// Step runs one animation callback's worth of simulation. It reports
// whether the caller should refresh derived edge geometry this frame;
// consumers are allowed to read positions on that slower cadence as a
// deliberate performance trade-off.
func (c *Controller) Step() (refreshEdges bool) {
	if epoch := c.sim.Epoch(); epoch != c.lastEpoch {
		// The graph grew while we were frozen (or running); restart the
		// frame budget alongside the simulation's own re-heated alpha.
		c.lastEpoch = epoch
		c.frames = 0
		c.running = true
	}
	if !c.running {
		return false
	}

	c.sim.Tick()
	c.frames++

	cfg := c.sim.Config()
	if c.frames >= cfg.FreezeAfterFrames {
		c.running = false
	}
	if cfg.FreezeAlphaEpsilon > 0 && c.sim.Alpha() < cfg.FreezeAlphaEpsilon {
		c.running = false
	}
	return c.frames%cfg.EdgeRefreshInterval == 0
}

func (c *Controller) Running() bool { return c.running }
func (c *Controller) Frames() int { return c.frames }
