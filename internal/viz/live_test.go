package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/plasmalab/internal/scenario"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModelAdjustRecomputes(t *testing.T) {
	m := NewModel(scenario.GetPreset("corona"))
	if m.err != nil {
		t.Fatalf("initial report failed: %v", m.err)
	}
	before := m.rep.CollisionFreq.Val

	// bump temperature up; collision frequency should drop
	next, _ := m.Update(keyRune('k'))
	m = next.(Model)
	if m.err != nil {
		t.Fatalf("report after adjust failed: %v", m.err)
	}
	if m.rep.CollisionFreq.Val >= before {
		t.Errorf("expected collision frequency to fall with temperature: %g -> %g",
			before, m.rep.CollisionFreq.Val)
	}
	if m.sc.Temperature <= scenario.DefaultTemperature {
		t.Errorf("temperature did not increase: %g", m.sc.Temperature)
	}
}

func TestModelTabCyclesSelection(t *testing.T) {
	m := NewModel(scenario.GetPreset("corona"))
	for i := 1; i <= len(m.params); i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Model)
		if m.selected != i%len(m.params) {
			t.Fatalf("after %d tabs selected=%d", i, m.selected)
		}
	}
}

func TestModelResetRestoresScenario(t *testing.T) {
	m := NewModel(scenario.GetPreset("solar_wind"))
	orig := m.sc.Temperature

	next, _ := m.Update(keyRune('k'))
	m = next.(Model)
	next, _ = m.Update(keyRune('k'))
	m = next.(Model)
	if m.sc.Temperature == orig {
		t.Fatal("adjustment had no effect")
	}

	next, _ = m.Update(keyRune('r'))
	m = next.(Model)
	if m.sc.Temperature != orig {
		t.Errorf("reset did not restore temperature: %g vs %g", m.sc.Temperature, orig)
	}
	if len(m.history) != 1 {
		t.Errorf("expected history restarted with one sample, got %d", len(m.history))
	}
}

func TestModelViewRenders(t *testing.T) {
	m := NewModel(scenario.GetPreset("corona"))
	view := m.View()
	for _, want := range []string{"CORONA EXPLORER", "collision freq", "regime", "collisionless"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("expected quit command on ctrl+c")
	}
}
