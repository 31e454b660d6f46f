// Package gui is the native window front end. It runs the same
// stabilization controller as the terminal view but draws real spheres,
// which makes the z axis much easier to read than the braille canvas.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/sonograph/internal/graph"
	"github.com/san-kum/sonograph/internal/layout"
)

var (
	ColBg      = rl.NewColor(10, 10, 14, 255)
	ColEdge    = rl.NewColor(58, 74, 106, 255)
	ColNode    = rl.NewColor(126, 200, 227, 255)
	ColCentral = rl.NewColor(255, 209, 102, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColGrid    = rl.NewColor(28, 28, 34, 255)
)

type edge struct {
	a, b rl.Vector3
}

type App struct {
	sim  *layout.Simulation
	ctrl *layout.Controller

	yaw, pitch float64
	dist       float64

	edges    []edge
	selected string
	added    int
}

func NewApp(sim *layout.Simulation) *App {
	return &App{
		sim:   sim,
		ctrl:  layout.NewController(sim),
		yaw:   0.6,
		pitch: 0.35,
		dist:  40,
	}
}

func (a *App) camera() rl.Camera3D {
	x := a.dist * math.Cos(a.pitch) * math.Sin(a.yaw)
	y := a.dist * math.Sin(a.pitch)
	z := a.dist * math.Cos(a.pitch) * math.Cos(a.yaw)
	return rl.NewCamera3D(
		rl.NewVector3(float32(x), float32(y), float32(z)),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
}

func nodeVec(n *graph.Node) rl.Vector3 {
	return rl.NewVector3(float32(n.X), float32(n.Z), float32(n.Y))
}

func (a *App) refreshEdges() {
	g := a.sim.Graph()
	a.edges = a.edges[:0]
	for _, l := range g.Links {
		s, t := g.Node(l.SourceID), g.Node(l.TargetID)
		if s == nil || t == nil {
			continue
		}
		a.edges = append(a.edges, edge{nodeVec(s), nodeVec(t)})
	}
}

func (a *App) handleInput(cam rl.Camera3D) {
	if rl.IsKeyDown(rl.KeyLeft) {
		a.yaw -= 0.03
	}
	if rl.IsKeyDown(rl.KeyRight) {
		a.yaw += 0.03
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.pitch = math.Min(math.Pi/2-0.05, a.pitch+0.02)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.pitch = math.Max(-math.Pi/2+0.05, a.pitch-0.02)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.dist = math.Max(5, math.Min(200, a.dist-float64(wheel)*2))
	}

	if rl.IsKeyPressed(rl.KeyN) {
		a.added++
		id := fmt.Sprintf("gui-%d", a.added)
		if err := a.sim.AddNode(&graph.Node{ID: id, X: 15}); err == nil {
			target := a.selected
			if target == "" {
				if c := a.sim.Graph().Central(); c != nil {
					target = c.ID
				}
			}
			if target != "" {
				a.sim.AddLink(&graph.Link{SourceID: id, TargetID: target})
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyX) && a.selected != "" {
		if n := a.sim.Graph().Node(a.selected); n != nil && n.Role != graph.RoleCentral {
			a.sim.RemoveNode(a.selected)
			a.selected = ""
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		a.pick(cam)
	}
}

// pick ray-tests every node sphere and keeps the nearest hit.
func (a *App) pick(cam rl.Camera3D) {
	ray := rl.GetMouseRay(rl.GetMousePosition(), cam)
	a.selected = ""
	best := float32(math.MaxFloat32)
	for _, n := range a.sim.Graph().Nodes {
		hit := rl.GetRayCollisionSphere(ray, nodeVec(n), float32(n.CollisionRadius()))
		if hit.Hit && hit.Distance < best {
			best = hit.Distance
			a.selected = n.ID
		}
	}
}

func (a *App) drawGrid() {
	half := float32(20)
	for i := -4; i <= 4; i++ {
		pos := float32(i) * 5
		rl.DrawLine3D(rl.NewVector3(pos, 0, -half), rl.NewVector3(pos, 0, half), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-half, 0, pos), rl.NewVector3(half, 0, pos), ColGrid)
	}
}

func (a *App) drawScene(cam rl.Camera3D) {
	rl.BeginMode3D(cam)
	a.drawGrid()
	for _, e := range a.edges {
		rl.DrawLine3D(e.a, e.b, ColEdge)
	}
	for _, n := range a.sim.Graph().Nodes {
		col := ColNode
		if n.Role == graph.RoleCentral {
			col = ColCentral
		}
		if n.ID == a.selected {
			col = ColSelect
		}
		rl.DrawSphere(nodeVec(n), float32(n.CollisionRadius()*0.6), col)
	}
	rl.EndMode3D()
}

func (a *App) drawHUD() {
	g := a.sim.Graph()
	state := "running"
	if !a.ctrl.Running() {
		state = "frozen"
	}
	rl.DrawText(fmt.Sprintf("nodes %d  links %d  alpha %.4f  frame %d  %s",
		len(g.Nodes), len(g.Links), a.sim.Alpha(), a.ctrl.Frames(), state), 16, 16, 18, ColText)
	if a.selected != "" {
		if n := g.Node(a.selected); n != nil {
			rl.DrawText(fmt.Sprintf("%s  (%.1f, %.1f, %.1f)", n.ID, n.X, n.Y, n.Z), 16, 40, 18, ColSelect)
		}
	}
	rl.DrawText("click select  n add  x remove  arrows orbit  wheel zoom  esc quit", 16, 688, 16, ColGrid)
}

// Run opens the window and blocks until it closes.
func (a *App) Run() {
	rl.InitWindow(1280, 720, "sonograph")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	a.refreshEdges()
	for !rl.WindowShouldClose() {
		cam := a.camera()
		a.handleInput(cam)

		if a.ctrl.Step() {
			a.refreshEdges()
		}

		rl.BeginDrawing()
		rl.ClearBackground(ColBg)
		a.drawScene(cam)
		a.drawHUD()
		rl.EndDrawing()
	}
}
