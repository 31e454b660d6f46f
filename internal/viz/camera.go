package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Camera is an orbiting perspective camera aimed at the origin, which
// is where the radial force anchors the graph.
type Camera struct {
	Yaw, Pitch float64
	Distance   float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 60, Zoom: 1, Pitch: 0.35}
}

func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch += dpitch
	limit := math.Pi/2 - 0.05
	if c.Pitch > limit {
		c.Pitch = limit
	}
	if c.Pitch < -limit {
		c.Pitch = -limit
	}
}

func (c *Camera) ZoomIn() { c.Zoom = math.Min(8, c.Zoom*1.25) }
func (c *Camera) ZoomOut() { c.Zoom = math.Max(0.125, c.Zoom/1.25) }

// view rotates a world point into camera space.
func (c *Camera) view(p Vec3) Vec3 {
	sy, cy := math.Sincos(c.Yaw)
	p.X, p.Z = p.X*cy-p.Z*sy, p.X*sy+p.Z*cy
	sp, cp := math.Sincos(c.Pitch)
	p.Y, p.Z = p.Y*cp-p.Z*sp, p.Y*sp+p.Z*cp
	return p.Scale(c.Zoom)
}

// Project maps a world point onto sub-pixel canvas coordinates.
// The returned depth grows away from the camera; ok is false when the
// point is behind the eye or off canvas.
func (c *Camera) Project(p Vec3, sw, sh int) (x, y int, depth float64, ok bool) {
	v := c.view(p)
	d := c.Distance - v.Z
	if d < 1e-3 {
		return 0, 0, 0, false
	}
	scale := c.Distance / d
	unit := float64(min(sw, sh)) / 3
	x = sw/2 + int(v.X*scale*unit/10)
	y = sh/2 - int(v.Y*scale*unit/10)
	return x, y, d, x >= 0 && x < sw && y >= 0 && y < sh
}
