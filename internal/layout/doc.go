// Package layout is the 3D force-directed layout engine.
//
// The engine extends a planar force simulation into three dimensions:
// the classical forces (link springs, charge repulsion, centering,
// radial anchoring, positional pull) act on x and y, a dedicated
// [AxisZForce] supplies the third axis, and a quadtree-accelerated
// [CollideForce] resolves overlap with true 3D distance. Every force
// sits behind the same [Force] contract so the integrator treats all of
// them uniformly.
//
// A [Simulation] owns the node and link slices and the alpha schedule:
//
//	sim, err := layout.NewSimulation(g, layout.DefaultConfig())
//	ctrl := layout.NewController(sim)
//	// once per animation frame:
//	refresh := ctrl.Step()
//
// Forces are applied in a fixed order (see the Force* constants); later
// forces correct overpull from earlier ones within the same tick, so
// reordering is a compatibility-breaking change.
//
// # Thread safety
//
// Everything here assumes a single logical thread. Collaborators read
// node positions between steps; there are no concurrent writers.
package layout
