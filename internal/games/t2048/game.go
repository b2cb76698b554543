package t2048

import (
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// levelClearDelay is how long the level-cleared overlay stays up (2s at 60fps).
const levelClearDelay = 120

// Game implements the 2048 puzzle game on top of a Session.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	tick    uint64
	session *Session

	cfg        config.T2048Config
	levels     []Level
	difficulty *config.DifficultyManager

	levelIndex    int // Current level (0-indexed)
	currentTarget int // Current tile target
	lastGain      int // Score gained by the last move

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	levelCleared    bool
	won             bool
	paused          bool
	tooSmall        bool
	levelClearTicks int
}

// selectedStartLevel is the campaign level chosen in the menu (1-based, 0 = first).
var selectedStartLevel int

// SetStartLevel sets the starting level (1-N). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode 2048 game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode 2048 game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
	registry.Register("2048_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "2048_endless"
	}
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.lastGain = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.levelClearTicks = 0

	g.cfg = ActiveConfig()
	g.levels = levelsFromConfig(g.cfg)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	// Apply selected start level (campaign only)
	g.levelIndex = 0
	if g.mode == ModeCampaign && selectedStartLevel > 0 {
		g.levelIndex = core.Clamp(selectedStartLevel-1, 0, len(g.levels)-1)
		selectedStartLevel = 0 // Reset after use
	}

	g.session = nil // spawn4 must not see the previous game's score
	g.session = NewSession(g.rng, g.spawn4())
	g.loadLevel()

	g.checkScreenSize()
}

// loadLevel sets up the current level parameters.
func (g *Game) loadLevel() {
	if g.mode == ModeEndless {
		g.currentTarget = 0 // No target in endless
		return
	}

	g.currentTarget = g.levels[g.levelIndex].Target
	g.session.SetSpawn4(g.spawn4())
}

// spawn4 returns the probability of spawning a 4 for the next tile.
func (g *Game) spawn4() float64 {
	if g.mode == ModeEndless {
		score, moves := 0, 0
		if g.session != nil {
			score, moves = g.session.Score(), g.session.Moves()
		}
		return g.difficulty.Spawn4(g.cfg.Spawn.FourProbability, score, moves)
	}
	return g.levels[g.levelIndex].Spawn4
}

// Resize adapts to a new screen size and keeps the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (29x13) + HUD above + controls line below
	minW := boardWidth + 2
	minH := boardHeight + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Restart is handled by the platform
	if in.Has(core.ActionRestart) && g.finished() {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= levelClearDelay {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.finished() {
		return core.StepResult{State: g.State()}
	}

	// At most one move per tick
	if dir, ok := directionFromInput(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFromInput picks the move requested this frame, if any.
func directionFromInput(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) {
	res, moved := g.session.Apply(dir)
	if !moved {
		return
	}
	g.lastGain = res.Gained

	if g.mode == ModeEndless {
		g.session.SetSpawn4(g.spawn4())
		return
	}

	if g.currentTarget > 0 && MaxTile(g.session.Board()) >= g.currentTarget {
		g.levelCleared = true
		g.levelClearTicks = 0
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelCleared = false
	g.levelClearTicks = 0

	if g.levelIndex >= len(g.levels)-1 {
		g.won = true
		return
	}

	// Keep current board and score - just update target
	g.levelIndex++
	g.loadLevel()
}

// finished reports whether the game accepts no more moves.
func (g *Game) finished() bool {
	return g.session.GameOver() || g.won
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		MaxTile:  MaxTile(g.session.Board()),
		Moves:    g.session.Moves(),
		GameOver: g.finished(),
		Paused:   g.paused || g.tooSmall || g.levelCleared,
	}
}
