// Package viz provides an interactive terminal explorer for wormhole
// configurations: step a shape-function parameter with the arrow keys and
// watch the throat diagnostics and ANEC crossing integral respond.
package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"wormsim/internal/anec"
	"wormsim/internal/geometry"
	"wormsim/internal/metric"
	"wormsim/internal/numeric"
	"wormsim/internal/stress"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type family struct {
	name  string
	param string
	min   float64
	max   float64
	step  float64
	value float64
}

// Model is the bubbletea model for the configuration explorer.
type Model struct {
	l0       float64
	families []family
	selected int

	// evaluated quantities for the current configuration
	traversable bool
	message     string
	bPrime      float64
	rhoThroat   float64
	crossing    anec.CrossingResult
	profile     []float64
	evalErr     string
}

// NewModel starts the explorer on the power-law family at the given throat
// radius.
func NewModel(l0 float64) Model {
	m := Model{
		l0: l0,
		families: []family{
			{name: "power_law", param: "n", min: 0.05, max: 0.99, step: 0.05, value: 0.5},
			{name: "exponential", param: "lambda_scale", min: 0.25, max: 5.0, step: 0.25, value: 1.0},
			{name: "tanh", param: "sigma", min: 0.05, max: 1.0, step: 0.05, value: 0.3},
		},
	}
	m.evaluate()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m *Model) evaluate() {
	f := &m.families[m.selected]
	wh, err := metric.New(m.l0, f.name, map[string]float64{f.param: f.value}, "zero", nil)
	if err != nil {
		m.evalErr = err.Error()
		return
	}
	m.evalErr = ""

	m.traversable, m.message = wh.IsTraversable(nil)
	m.bPrime = wh.ThroatFlareOut()
	m.rhoThroat = stress.NewSolver(wh).ThroatStressEnergy().Rho

	// A lighter grid keeps the keypress-to-redraw loop snappy; the CLI
	// commands use the full resolution.
	m.crossing = anec.NewIntegrator(wh).ComputeCrossing(3.0, 801)

	geom := geometry.NewThroatGeometry(wh)
	ls := numeric.Linspace(m.l0, 5*m.l0, 120)
	m.profile = geom.EmbeddingHeight(ls)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		f := &m.families[m.selected]
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(m.families)
			m.evaluate()
		case "left", "h":
			f.value = math.Max(f.min, f.value-f.step)
			m.evaluate()
		case "right", "l":
			f.value = math.Min(f.max, f.value+f.step)
			m.evaluate()
		}
	}
	return m, nil
}

func (m Model) View() string {
	f := m.families[m.selected]

	var b strings.Builder
	b.WriteString(headerStyle.Render("wormsim explorer"))
	b.WriteString("\n")

	status := okStyle.Render("traversable")
	if !m.traversable {
		status = alertStyle.Render("not traversable")
	}
	violated := okStyle.Render("satisfied")
	if m.crossing.Violated {
		violated = alertStyle.Render("VIOLATED")
	}

	rows := []string{
		labelStyle.Render("family") + valueStyle.Render(fmt.Sprintf("%s (%s=%.3f)", f.name, f.param, f.value)),
		labelStyle.Render("throat radius") + valueStyle.Render(fmt.Sprintf("%.3f m", m.l0)),
		labelStyle.Render("status") + status,
		labelStyle.Render("b'(l0)") + valueStyle.Render(fmt.Sprintf("%.6f", m.bPrime)),
		labelStyle.Render("rho(l0)") + valueStyle.Render(fmt.Sprintf("%.3e J/m³", m.rhoThroat)),
		labelStyle.Render("ANEC crossing") + valueStyle.Render(fmt.Sprintf("%.3e J  ", m.crossing.Value)) + violated,
		labelStyle.Render("neg. fraction") + valueStyle.Render(fmt.Sprintf("%.1f%%", 100*m.crossing.NegativeFraction)),
	}
	if m.evalErr != "" {
		rows = append(rows, alertStyle.Render(m.evalErr))
	}
	b.WriteString(statsStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	if len(m.profile) > 0 {
		graph := asciigraph.Plot(m.profile,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("embedding height z(l), throat to 5·l0"),
		)
		b.WriteString(graphStyle.Render(graph))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("←/→ adjust parameter · tab switch family · q quit"))
	return b.String()
}
