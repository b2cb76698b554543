package t2048

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestDeterministicSpawn(t *testing.T) {
	// Same seed produces the same sequence of spawns
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	if g1.Snapshot().Board != g2.Snapshot().Board {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.Snapshot().Board, g2.Snapshot().Board)
	}

	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft} {
		g1.Step(press(a))
		g2.Step(press(a))
	}
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Same seed and input should give the same snapshot:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestCampaignProgression(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Set up a board with target tile
	g.session.Load(Board{128}, 0)
	g.currentTarget = 128

	// Board already has 128, a move that changes it clears the level
	g.Step(press(core.ActionDown))

	if !g.levelCleared {
		t.Error("Should detect level cleared when target tile exists")
	}
	if !g.State().Paused {
		t.Error("Level cleared overlay should report paused")
	}

	// Advance past the overlay
	g.levelClearTicks = levelClearDelay
	g.Step(core.NewInputFrame())

	if g.levelIndex != 1 {
		t.Errorf("Should advance to level 2, got level %d", g.levelIndex+1)
	}
	if g.currentTarget != g.levels[1].Target {
		t.Errorf("currentTarget = %d, want %d", g.currentTarget, g.levels[1].Target)
	}
	if g.session.Score() != 0 || MaxTile(g.session.Board()) != 128 {
		t.Error("Advancing a level should keep the board")
	}
}

func TestCampaignWin(t *testing.T) {
	SetStartLevel(LevelCount())
	g := New()
	g.Reset(testConfig(42))

	if g.levelIndex != len(g.levels)-1 {
		t.Fatalf("start level = %d, want last", g.levelIndex+1)
	}

	g.session.Load(Board{g.currentTarget}, 0)
	g.Step(press(core.ActionRight))
	if !g.levelCleared {
		t.Fatal("reaching the last target should clear the level")
	}

	g.levelClearTicks = levelClearDelay
	g.Step(core.NewInputFrame())

	if !g.won {
		t.Error("clearing the last level should win the campaign")
	}
	if !g.State().GameOver {
		t.Error("a won campaign should report game over")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot State = %s, want win", g.Snapshot().State)
	}
}

func TestStartLevelIsClamped(t *testing.T) {
	SetStartLevel(99)
	g := New()
	g.Reset(testConfig(1))

	if g.levelIndex != len(g.levels)-1 {
		t.Errorf("levelIndex = %d, want %d", g.levelIndex, len(g.levels)-1)
	}
	if GetStartLevel() != 0 {
		t.Error("start level should be consumed by Reset")
	}
}

func TestEndlessModeNoWin(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(42))

	// Set up a board with high tile
	g.session.Load(Board{8192}, 0)

	// Make a move
	g.Step(press(core.ActionDown))

	// Should not trigger level cleared or win in endless mode
	if g.levelCleared {
		t.Error("Endless mode should not have level cleared")
	}
	if g.won {
		t.Error("Endless mode should not have win state")
	}
	if g.Snapshot().Level != 0 {
		t.Errorf("Endless snapshot Level = %d, want 0", g.Snapshot().Level)
	}
}

func TestGameOverStopsInput(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(7))

	g.session.Load(Board{
		2, 4, 2, 4,
		4, 2, 4, 2,
		2, 4, 2, 4,
		4, 2, 4, 2,
	}, 500)

	res := g.Step(press(core.ActionLeft))
	if !res.State.GameOver {
		t.Error("stuck board should be game over")
	}
	if res.State.Score != 500 {
		t.Errorf("Score = %d, want 500", res.State.Score)
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig(5))
	g.session.Load(Board{2, 2}, 0)

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionLeft))

	if g.session.Moves() != 0 {
		t.Error("moves should be ignored while paused")
	}

	g.Step(press(core.ActionPause))
	g.Step(press(core.ActionLeft))

	if g.session.Moves() != 1 || g.session.Score() != 4 {
		t.Errorf("after unpause moves %d score %d, want 1 and 4", g.session.Moves(), g.session.Score())
	}
	if g.lastGain != 4 {
		t.Errorf("lastGain = %d, want 4", g.lastGain)
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW = 20
	g.Reset(cfg)

	if !g.State().Paused {
		t.Error("a too small screen should pause the game")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("Snapshot State = %s, want paused_small_window", g.Snapshot().State)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))
	g.session.Load(Board{2048}, 0)

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	// The title also reads 2048, so look for the colored tile
	found := false
	for y := range scr.Height() {
		for x := 0; x+3 < scr.Width(); x++ {
			if scr.Get(x, y) == '2' && scr.Get(x+1, y) == '0' && scr.Get(x+2, y) == '4' && scr.Get(x+3, y) == '8' &&
				scr.GetCell(x, y).Color == TileColor(2048) {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("rendered screen does not show the 2048 tile:\n%s", scr.String())
	}
}

func TestSnapshot(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	snap := g.Snapshot()

	if snap.Mode != "campaign" {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}

	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}

	if snap.Target != 128 {
		t.Errorf("Snapshot Target = %d, want 128", snap.Target)
	}

	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}

	if CountTiles(snap.Board) != 2 {
		t.Errorf("Snapshot Board has %d tiles, want 2", CountTiles(snap.Board))
	}
}

func TestLevelCount(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("LevelCount() = %d, want 10", LevelCount())
	}
}

func TestLevelNames(t *testing.T) {
	names := LevelNames()
	if len(names) != 10 {
		t.Errorf("LevelNames() length = %d, want 10", len(names))
	}

	if names[0] != "Warm-up" {
		t.Errorf("First level name = %s, want Warm-up", names[0])
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		value int
		want  core.Color
	}{
		{0, core.ColorDefault},
		{2, core.ColorTile2},
		{64, core.ColorTile64},
		{2048, core.ColorTile2048},
		{4096, core.ColorTileSuper},
	}

	for _, tt := range tests {
		if got := TileColor(tt.value); got != tt.want {
			t.Errorf("TileColor(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}
