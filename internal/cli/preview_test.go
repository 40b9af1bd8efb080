package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestScaleListModelNavigation(t *testing.T) {
	m := NewScaleListModel()
	if len(m.Names) == 0 {
		t.Fatal("model has no scales")
	}

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}

	next, _ := m.Update(down)
	m = next.(ScaleListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	next, _ = m.Update(up)
	m = next.(ScaleListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}

	// Moving up at the top stays put.
	next, _ = m.Update(up)
	m = next.(ScaleListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.Cursor)
	}
}

func TestScaleListModelQuit(t *testing.T) {
	m := NewScaleListModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestScaleListModelView(t *testing.T) {
	m := NewScaleListModel()
	view := m.View()
	if !strings.Contains(view, "Scales") {
		t.Error("view missing title")
	}
	// The detail pane samples the scale under the cursor.
	if !strings.Contains(view, "forward") {
		t.Error("view missing sample table")
	}
}
