package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plasmalab/internal/report"
	"github.com/san-kum/plasmalab/internal/scenario"
)

const historyCapacity = 120

// step factor for one keypress; parameters span decades, so
// adjustments are multiplicative.
const adjustFactor = 1.25

// Model is the interactive explorer: tweak scenario parameters and
// watch every derived quantity move.
type Model struct {
	sc       *scenario.Scenario
	initial  *scenario.Scenario
	rep      *report.Report
	err      error
	params   []string
	selected int
	history  []float64
	showHelp bool
}

func NewModel(sc *scenario.Scenario) Model {
	m := Model{
		sc:      sc.Clone(),
		initial: sc.Clone(),
		params:  []string{"temperature", "density", "field"},
		history: make([]float64, 0, historyCapacity),
	}
	m.recompute()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(m.params)
		case "up", "k":
			m.adjust(adjustFactor)
		case "down", "j":
			m.adjust(1 / adjustFactor)
		case "r":
			m.sc = m.initial.Clone()
			m.history = m.history[:0]
			m.recompute()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func (m *Model) adjust(factor float64) {
	switch m.params[m.selected] {
	case "temperature":
		m.sc.Temperature *= factor
	case "density":
		m.sc.Density *= factor
	case "field":
		if m.sc.Field == 0 {
			m.sc.Field = 1e-6
		}
		m.sc.Field *= factor
	}
	m.recompute()
}

func (m *Model) recompute() {
	m.rep, m.err = report.Run(m.sc)
	if m.err != nil || m.rep.CollisionFreq.Val <= 0 {
		return
	}
	m.history = append(m.history, math.Log10(m.rep.CollisionFreq.Val))
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) paramValue(name string) (float64, string) {
	switch name {
	case "temperature":
		return m.sc.Temperature, "K"
	case "density":
		return m.sc.Density, "cm^-3"
	default:
		return m.sc.Field, "G"
	}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.sc.Name)+" EXPLORER") + "\n")

	for i, name := range m.params {
		val, unit := m.paramValue(name)
		line := fmt.Sprintf("%-12s %.4g %s", name, val, unit)
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(line) + "\n")
		}
	}
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render("error: "+m.err.Error()) + "\n")
	} else {
		rows := []struct {
			label string
			value string
		}{
			{"thermal speed (e-)", m.rep.ElectronThermalSpeed.String()},
			{"Debye length", m.rep.DebyeLength.String()},
			{"bmin / bmax", fmt.Sprintf("%.3g / %.3g m", m.rep.BMin.Val, m.rep.BMax.Val)},
			{"Coulomb log", m.rep.CoulombLog.String()},
			{"collision freq", m.rep.CollisionFreq.String()},
			{"plasma freq", m.rep.PlasmaFreq.String()},
			{"gyro freq", m.rep.GyroFreq.String()},
			{"nu / omega_p", fmt.Sprintf("%.3g", m.rep.PlasmaRatio())},
		}
		for _, row := range rows {
			s.WriteString(labelStyle.Render(row.label) + valueStyle.Render(row.value) + "\n")
		}
		s.WriteString("\n" + labelStyle.Render("regime") + regimeStyle.Render(m.rep.Regime()) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(6),
			asciigraph.Width(50),
			asciigraph.Caption("log10 collision freq"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("TAB:param  ↑↓:adjust  R:reset  ?:help  Q:quit"))

	view := panelStyle.Render(s.String())
	if m.showHelp {
		help := panelStyle.Render(strings.Join([]string{
			"Tab      cycle parameter",
			"Up/K     scale parameter up 25%",
			"Down/J   scale parameter down 25%",
			"R        reset to the starting scenario",
			"?        toggle this help",
			"Q        quit",
		}, "\n"))
		return lipgloss.JoinHorizontal(lipgloss.Top, view, help)
	}
	return view
}
