package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sendKeys(t *testing.T, m MenuModel, keys ...tea.KeyMsg) MenuModel {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		if m, ok = next.(MenuModel); !ok {
			t.Fatalf("Update() returned %T, want MenuModel", next)
		}
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyQuit  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
)

func TestMenuSelectMode(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want Mode
	}{
		{"campaign", []tea.KeyMsg{keyEnter}, ModeCampaign},
		{"endless", []tea.KeyMsg{keyDown, keyEnter}, ModeEndless},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := sendKeys(t, NewMenuModel(80, 24), tt.keys...)
			res := m.Result()
			if res.Selection == nil {
				t.Fatalf("no selection after %d keys", len(tt.keys))
			}
			if res.Selection.Mode != tt.want || res.Selection.Level != 0 {
				t.Errorf("selection = %+v, want mode %v from the start", res.Selection, tt.want)
			}
		})
	}
}

func TestMenuSelectLevel(t *testing.T) {
	m := sendKeys(t, NewMenuModel(80, 24), keyDown, keyDown, keyEnter)
	if !m.inLevelSelect {
		t.Fatal("expected level select screen")
	}

	// Back returns to the mode list without finishing
	m = sendKeys(t, m, keyEsc)
	if m.inLevelSelect || m.done {
		t.Fatalf("esc in level select: inLevelSelect=%v done=%v", m.inLevelSelect, m.done)
	}

	m = sendKeys(t, m, keyEnter, keyDown, keyEnter)
	res := m.Result()
	if res.Selection == nil || res.Selection.Mode != ModeCampaign || res.Selection.Level != 2 {
		t.Errorf("selection = %+v, want campaign level 2", res.Selection)
	}
}

func TestMenuScoresAndQuit(t *testing.T) {
	if res := sendKeys(t, NewMenuModel(80, 24), keyTab).Result(); !res.Scoreboard {
		t.Errorf("tab: result = %+v, want scoreboard", res)
	}
	if res := sendKeys(t, NewMenuModel(80, 24), keyDown, keyDown, keyDown, keyEnter).Result(); !res.Scoreboard {
		t.Errorf("High Scores item: result = %+v, want scoreboard", res)
	}
	if res := sendKeys(t, NewMenuModel(80, 24), keyQuit).Result(); !res.Quit {
		t.Errorf("q: result = %+v, want quit", res)
	}
}

func TestModeGameID(t *testing.T) {
	if ModeCampaign.GameID() != "2048" || ModeEndless.GameID() != "2048_endless" {
		t.Errorf("GameID() = %q, %q", ModeCampaign.GameID(), ModeEndless.GameID())
	}
}
