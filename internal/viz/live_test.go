package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trajlab/internal/phys"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewModel(t *testing.T) {
	m := NewModel(phys.New(), phys.Params{Speed: 50, Angle: 45, Mass: 1, Drag: 0.1}, 0.01)
	if m.err != nil {
		t.Fatalf("unexpected error: %v", m.err)
	}
	if m.result == nil || len(m.result.Path) == 0 {
		t.Fatal("expected a precomputed trajectory")
	}
	if m.Progress() != 0 {
		t.Errorf("expected zero progress, got %f", m.Progress())
	}
}

func TestNewModelInvalidParams(t *testing.T) {
	m := NewModel(phys.New(), phys.Params{Speed: 50, Angle: 45, Mass: 0}, 0.01)
	if m.err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(m.View(), "error") {
		t.Error("view should surface the error")
	}
}

func TestTickAdvancesReplay(t *testing.T) {
	m := NewModel(phys.New(), phys.Params{Speed: 50, Angle: 45, Mass: 1, Drag: 0.1}, 0.01)

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.head == 0 {
		t.Error("tick should advance the replay head")
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Progress() <= 0 {
		t.Errorf("expected positive progress, got %f", m.Progress())
	}
}

func TestPauseAndRestart(t *testing.T) {
	m := NewModel(phys.New(), phys.Params{Speed: 50, Angle: 45, Mass: 1, Drag: 0.1}, 0.01)

	next, _ := m.Update(key(" "))
	m = next.(Model)
	if m.running {
		t.Error("space should pause the replay")
	}

	head := m.head
	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.head != head {
		t.Error("paused replay should not advance")
	}

	next, _ = m.Update(key("r"))
	m = next.(Model)
	if m.head != 0 || !m.running {
		t.Error("r should restart the replay")
	}
}

func TestQuit(t *testing.T) {
	m := NewModel(phys.New(), phys.Params{Speed: 50, Angle: 45, Mass: 1, Drag: 0.1}, 0.01)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a quit command")
	}
}

func TestViewShowsSummary(t *testing.T) {
	m := NewModel(phys.New(), phys.Params{Speed: 50, Angle: 45, Mass: 1, Drag: 0.1}, 0.01)
	view := m.View()
	for _, want := range []string{"trajlab live", "range", "max h", "altitude"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
