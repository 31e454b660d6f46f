package layout

import "github.com/san-kum/sonograph/internal/graph"

// Force is the uniform contract every force implements, planar, third
// axis and collision alike. Initialize is called whenever the node set
// is (re)bound; Apply once per tick with the current alpha.
type Force interface {
	Initialize(nodes []*graph.Node)
	Apply(alpha float64)
}

// Force names, in application order. The order is part of the public
// contract: radial and collision correct overpull from the forces
// before them within the same tick.
const (
	ForceLink      = "link"
	ForceCharge    = "charge"
	ForceCenter    = "center"
	ForceRadial    = "radial"
	ForcePositionX = "positionX"
	ForcePositionY = "positionY"
	ForceAxisZ     = "axisZ"
	ForceCollide   = "collide"
)

var forceOrder = []string{
	ForceLink,
	ForceCharge,
	ForceCenter,
	ForceRadial,
	ForcePositionX,
	ForcePositionY,
	ForceAxisZ,
	ForceCollide,
}

// jiggle is the deterministic stand-in distance for coincident points,
// small enough to be invisible, large enough to break the tie.
const jiggle = 1e-6
