package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestMenuSkipsDisabledAndWraps(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A"},
		{Label: "B", Disabled: true},
		{Label: "C"},
	})
	if m.Selected != 0 {
		t.Fatalf("expected first item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("expected down to wrap to top, got %d", m.Selected)
	}

	m, _ = m.Update(keyPress('k'))
	if m.Selected != 2 {
		t.Errorf("expected k to wrap to bottom, got %d", m.Selected)
	}
}

func TestMenuEnterRunsAction(t *testing.T) {
	ran := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd {
		ran = true
		return nil
	}}})

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !ran {
		t.Error("expected action to run on enter")
	}
}

func TestMenuSetDisabledMovesCursor(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A"}, {Label: "B"}})
	m.Selected = 1
	m.SetDisabled(1, true)
	if m.Selected != 0 {
		t.Errorf("expected cursor to move off disabled item, got %d", m.Selected)
	}
}

func TestNumericInputDropsLetters(t *testing.T) {
	in := NewTextInput("", true, 4)
	in, _ = in.Update(keyPress('4'))
	in, _ = in.Update(keyPress('x'))
	in, _ = in.Update(keyPress('2'))

	if in.Value() != "42" {
		t.Fatalf("expected 42, got %q", in.Value())
	}
	n, err := in.NumericValue()
	if err != nil || n != 42 {
		t.Errorf("NumericValue() = %d, %v", n, err)
	}

	in.Reset()
	if in.Value() != "" {
		t.Errorf("expected empty value after reset, got %q", in.Value())
	}
}

func TestHeartsCount(t *testing.T) {
	out := Hearts(3, 5)
	if strings.Count(out, "♥") != 3 || strings.Count(out, "♡") != 2 {
		t.Errorf("expected 3 full and 2 empty hearts in %q", out)
	}
	if strings.Count(Hearts(7, 5), "♥") != 5 {
		t.Error("expected lives to be capped at max")
	}
}

func TestHistoryPadding(t *testing.T) {
	out := History([]bool{true, false}, 5)
	if strings.Count(out, "·") != 3 {
		t.Errorf("expected 3 padding dots in %q", out)
	}
	if !strings.Contains(out, "✓") || !strings.Contains(out, "✗") {
		t.Errorf("expected both marks in %q", out)
	}
}

func TestProgressBarCounter(t *testing.T) {
	out := NewProgressBar("Mastered", 2, 5, 30).View()
	if !strings.Contains(out, "2/5") {
		t.Errorf("expected counter in %q", out)
	}
}
