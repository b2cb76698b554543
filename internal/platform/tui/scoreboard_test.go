package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestScoreboardLoadsScoresAndStats(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"), storage.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore(storage.ScoreEntry{GameID: "2048", Score: 1200, MaxTile: 128, Moves: 90})
	store.SaveScore(storage.ScoreEntry{GameID: "2048", Score: 800, MaxTile: 64, Moves: 70, Player: "greedy"})

	m := NewScoreboardModel(store, 120, 40)
	if len(m.games) == 0 || m.games[0].ID != "2048" {
		t.Fatalf("games = %+v, want campaign first", m.games)
	}
	if len(m.scores) != 2 || m.scores[0].Score != 1200 {
		t.Errorf("scores = %+v, want 1200 first", m.scores)
	}
	if m.stats == nil || m.stats.GamesCount != 2 || m.stats.BestTile != 128 {
		t.Errorf("stats = %+v, want 2 games with best tile 128", m.stats)
	}

	view := m.View()
	for _, want := range []string{"Best tile: 128", "greedy", "HIGH SCORES"} {
		if !strings.Contains(view, want) {
			t.Errorf("view does not contain %q", want)
		}
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	if m.scores != nil || m.stats != nil {
		t.Errorf("scores=%v stats=%v, want nothing without a store", m.scores, m.stats)
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say no scores are recorded")
	}
}
