package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}

func TestSwipeTracker(t *testing.T) {
	tests := []struct {
		name     string
		from     [2]int
		to       [2]int
		expected core.Action
	}{
		{"right", [2]int{10, 10}, [2]int{20, 11}, core.ActionRight},
		{"left", [2]int{10, 10}, [2]int{4, 9}, core.ActionLeft},
		{"up", [2]int{10, 10}, [2]int{11, 5}, core.ActionUp},
		{"down", [2]int{10, 10}, [2]int{10, 14}, core.ActionDown},
		{"click", [2]int{10, 10}, [2]int{11, 10}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newSwipeTracker()
			if a := tr.Handle(press(tt.from[0], tt.from[1])); a != core.ActionNone {
				t.Fatalf("press returned %s", a)
			}
			if a := tr.Handle(release(tt.to[0], tt.to[1])); a != tt.expected {
				t.Errorf("swipe %v -> %v = %s, want %s", tt.from, tt.to, a, tt.expected)
			}
		})
	}
}

func TestSwipeTrackerIgnoresReleaseWithoutPress(t *testing.T) {
	tr := newSwipeTracker()
	if a := tr.Handle(release(30, 10)); a != core.ActionNone {
		t.Errorf("release without press = %s, want none", a)
	}

	tr.Handle(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if a := tr.Handle(release(30, 0)); a != core.ActionNone {
		t.Errorf("right-button drag = %s, want none", a)
	}
}
