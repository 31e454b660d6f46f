package layout

import "fmt"

// Config holds every layout tunable. Zero values are not defaulted
// implicitly; use DefaultConfig and override.
type Config struct {
	// Link spring. Links touching the central node use the larger
	// target distance.
	LinkDistanceCentral float64
	LinkDistanceDefault float64
	LinkStrength        float64

	// Pairwise repulsion, truncated beyond ChargeMaxDistance.
	ChargeStrength    float64
	ChargeMaxDistance float64

	// Pull of the node set's centroid toward the origin.
	CenterStrength float64

	// Radial anchor: every node is pulled toward RadialDistance from
	// the origin, the central node toward radius zero.
	RadialDistance float64
	RadialStrength float64

	// Weak per-coordinate pull toward zero, drift prevention only.
	PositionStrength float64

	// Third-axis spring toward z=0.
	ZStrength float64

	// Collision resolution.
	CollisionPadding  float64
	CollisionStrength float64

	// Convergence schedule. Alpha decays multiplicatively by
	// (1 - AlphaDecay) per tick; velocities keep a VelocityDecay
	// fraction per tick.
	AlphaDecay    float64
	VelocityDecay float64

	// Stabilization controller.
	FreezeAfterFrames int
	// FreezeAlphaEpsilon, when positive, also freezes once alpha falls
	// below it, whichever comes first.
	FreezeAlphaEpsilon  float64
	EdgeRefreshInterval int
}

func DefaultConfig() Config {
	return Config{
		LinkDistanceCentral: 10,
		LinkDistanceDefault: 4,
		LinkStrength:        1.0,
		ChargeStrength:      2.0,
		ChargeMaxDistance:   50,
		CenterStrength:      0.05,
		RadialDistance:      10,
		RadialStrength:      0.3,
		PositionStrength:    0.01,
		ZStrength:           0.12,
		CollisionPadding:    0.5,
		CollisionStrength:   0.7,
		AlphaDecay:          0.15,
		VelocityDecay:       0.9,
		FreezeAfterFrames:   100,
		EdgeRefreshInterval: 5,
	}
}

// Validate fails fast on configurations that would diverge silently.
func (c Config) Validate() error {
	if c.AlphaDecay < 0 || c.AlphaDecay >= 1 {
		return fmt.Errorf("alpha decay must be in [0,1), got %g", c.AlphaDecay)
	}
	if c.VelocityDecay <= 0 || c.VelocityDecay > 1 {
		return fmt.Errorf("velocity decay must be in (0,1], got %g", c.VelocityDecay)
	}
	if c.LinkDistanceCentral < 0 || c.LinkDistanceDefault < 0 {
		return fmt.Errorf("link distances must be non-negative")
	}
	if c.ChargeMaxDistance <= 0 {
		return fmt.Errorf("charge max distance must be positive, got %g", c.ChargeMaxDistance)
	}
	if c.RadialDistance < 0 {
		return fmt.Errorf("radial distance must be non-negative, got %g", c.RadialDistance)
	}
	if c.CollisionPadding < 0 {
		return fmt.Errorf("collision padding must be non-negative, got %g", c.CollisionPadding)
	}
	if c.FreezeAfterFrames <= 0 {
		return fmt.Errorf("freeze frame budget must be positive, got %d", c.FreezeAfterFrames)
	}
	if c.EdgeRefreshInterval <= 0 {
		return fmt.Errorf("edge refresh interval must be positive, got %d", c.EdgeRefreshInterval)
	}
	return nil
}
