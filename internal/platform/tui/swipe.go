package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// swipeTracker turns a left-button drag into a direction.
// A press records the start cell and the matching release resolves the swipe.
type swipeTracker struct {
	active    bool
	startX    int
	startY    int
	threshold int
}

func newSwipeTracker() swipeTracker {
	return swipeTracker{threshold: core.DefaultSwipeThreshold}
}

// Handle consumes a mouse event and returns the swiped action, or
// ActionNone while the drag is still in progress.
func (t *swipeTracker) Handle(msg tea.MouseMsg) core.Action {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.ActionNone
	}

	switch msg.Action {
	case tea.MouseActionPress:
		t.active = true
		t.startX, t.startY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !t.active {
			return core.ActionNone
		}
		t.active = false
		return core.SwipeDirection(msg.X-t.startX, msg.Y-t.startY, t.threshold)
	}
	return core.ActionNone
}
