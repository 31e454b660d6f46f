package graph

// Role marks how forces treat a node. The central node is the visual
// anchor of the layout: zero radial target and the larger link distance.
type Role int

const (
	RoleDefault Role = iota
	RoleCentral
)

func (r Role) String() string {
	if r == RoleCentral {
		return "central"
	}
	return "default"
}

// DefaultRadius is the collision extent used when a node does not
// declare one.
const DefaultRadius = 1.0

// Node is a participant in the layout simulation. Position and velocity
// are mutated in place by the simulation each tick; renderer and audio
// collaborators hold the same pointer and observe updates immediately.
type Node struct {
	ID   string
	Role Role

	X, Y, Z float64

	// VX and VY are owned by the planar forces. VZ belongs to the
	// third-axis force, which damps and integrates it itself.
	VX, VY, VZ float64

	Radius float64
}

// CollisionRadius returns the node's collision extent, falling back to
// DefaultRadius when unset.
func (n *Node) CollisionRadius() float64 {
	if n.Radius <= 0 {
		return DefaultRadius
	}
	return n.Radius
}

// Link is an attraction relationship between two node ids. Endpoints
// are resolved by the link force at initialization time; a link whose
// endpoint cannot be resolved contributes no force.
type Link struct {
	SourceID string
	TargetID string
}
