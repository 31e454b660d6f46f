package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sonograph/internal/graph"
	"github.com/san-kum/sonograph/internal/layout"
)

const (
	canvasWidth    = 80
	canvasHeight   = 26
	energyCapacity = 120
)

// Observer is notified after every rendered frame with the live node
// slice. The audio engine hangs off this; it reads positions and never
// writes back.
type Observer interface {
	Frame(nodes []*graph.Node, selected string, alpha float64)
}

type TickMsg time.Time

// Model is the bubbletea program hosting the animation loop: it drives
// the stabilization controller once per frame and renders whatever the
// simulation left in the node set.
type Model struct {
	sim  *layout.Simulation
	ctrl *layout.Controller

	scene    *Scene
	canvas   *Canvas
	observer Observer

	frameRate  int
	selected   int // index into live nodes, -1 when nothing selected
	energyHist []float64
	added      int
	showHelp   bool
}

func NewModel(sim *layout.Simulation, frameRate int, obs Observer) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		sim:       sim,
		ctrl:      layout.NewController(sim),
		scene:     NewScene(sim.Graph()),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		observer:  obs,
		frameRate: frameRate,
		selected:  -1,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) selectedID() string {
	nodes := m.sim.Graph().Nodes
	if m.selected < 0 || m.selected >= len(nodes) {
		return ""
	}
	return nodes[m.selected].ID
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.ctrl.Step() {
			m.scene.RefreshEdges()
		}
		nodes := m.sim.Graph().Nodes
		m.energyHist = append(m.energyHist, layout.KineticEnergy(nodes))
		if len(m.energyHist) > energyCapacity {
			m.energyHist = m.energyHist[1:]
		}
		if m.observer != nil {
			m.observer.Frame(nodes, m.selectedID(), m.sim.Alpha())
		}
		return m, m.tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			if n := len(m.sim.Graph().Nodes); n > 0 {
				m.selected = (m.selected + 1) % n
			}
		case "n":
			m.added++
			id := fmt.Sprintf("live-%d", m.added)
			node := &graph.Node{ID: id, X: 15, Y: float64(m.added%7) - 3}
			if err := m.sim.AddNode(node); err == nil {
				target := m.selectedID()
				if target == "" {
					if c := m.sim.Graph().Central(); c != nil {
						target = c.ID
					}
				}
				if target != "" {
					m.sim.AddLink(&graph.Link{SourceID: id, TargetID: target})
				}
			}
		case "x":
			if id := m.selectedID(); id != "" {
				if n := m.sim.Graph().Node(id); n != nil && n.Role != graph.RoleCentral {
					m.sim.RemoveNode(id)
					m.selected = -1
				}
			}
		case "left":
			m.scene.Camera.Orbit(-0.12, 0)
		case "right":
			m.scene.Camera.Orbit(0.12, 0)
		case "up":
			m.scene.Camera.Orbit(0, 0.08)
		case "down":
			m.scene.Camera.Orbit(0, -0.08)
		case "+", "=":
			m.scene.Camera.ZoomIn()
		case "-":
			m.scene.Camera.ZoomOut()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m Model) View() string {
	m.scene.Render(m.canvas, m.selectedID())

	header := headerStyle.Render("sonograph")
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(m.statsView()),
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(body)
	if m.showHelp {
		b.WriteString(helpStyle.Render(
			"\ntab select · n add node · x remove · arrows orbit · +/- zoom · q quit"))
	}
	return b.String()
}

func (m Model) statsView() string {
	g := m.sim.Graph()
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}
	row("nodes", fmt.Sprintf("%d", len(g.Nodes)))
	row("links", fmt.Sprintf("%d", len(g.Links)))
	row("alpha", fmt.Sprintf("%.4f", m.sim.Alpha()))
	row("frame", fmt.Sprintf("%d", m.ctrl.Frames()))
	if m.ctrl.Running() {
		row("state", "running")
	} else {
		b.WriteString(labelStyle.Render("state"))
		b.WriteString(frozenStyle.Render("frozen"))
		b.WriteString("\n")
	}
	if id := m.selectedID(); id != "" {
		n := g.Node(id)
		row("selected", id)
		row("", fmt.Sprintf("(%.1f, %.1f, %.1f)", n.X, n.Y, n.Z))
	}

	if len(m.energyHist) > 1 {
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(asciigraph.Plot(
			m.energyHist,
			asciigraph.Height(6),
			asciigraph.Width(26),
			asciigraph.Caption("kinetic energy"),
		)))
	}
	return b.String()
}

// Run starts the live view and blocks until the user quits.
func Run(sim *layout.Simulation, frameRate int, obs Observer) error {
	p := tea.NewProgram(NewModel(sim, frameRate, obs), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
