package t2048

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// ErrUnknownStrategy is returned by NewStrategy for an unregistered name.
var ErrUnknownStrategy = errors.New("t2048: unknown strategy")

// Strategy picks the next move for a board.
// It returns false when no move changes the board.
type Strategy interface {
	Name() string
	NextMove(b Board) (Direction, bool)
}

// StrategyNames lists the strategies accepted by NewStrategy.
var StrategyNames = []string{"random", "greedy", "corner"}

// NewStrategy returns the named strategy. rng is used only by "random".
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	switch strings.ToLower(name) {
	case "random":
		return &RandomStrategy{rng: rng}, nil
	case "greedy":
		return GreedyStrategy{}, nil
	case "corner":
		return CornerStrategy{}, nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames, ", "))
}

// RandomStrategy tries the directions in a random order.
type RandomStrategy struct {
	rng *rand.Rand
}

func (s *RandomStrategy) Name() string { return "random" }

func (s *RandomStrategy) NextMove(b Board) (Direction, bool) {
	for _, i := range s.rng.Perm(len(Directions)) {
		dir := Directions[i]
		if res, _ := Move(b, dir); Changed(b, res.Board) {
			return dir, true
		}
	}
	return 0, false
}

// GreedyStrategy takes the move with the highest immediate score,
// breaking ties by the number of empty cells left.
type GreedyStrategy struct{}

func (GreedyStrategy) Name() string { return "greedy" }

func (GreedyStrategy) NextMove(b Board) (Direction, bool) {
	best, found := Direction(0), false
	bestGain, bestEmpty := -1, -1

	for _, dir := range Directions {
		res, _ := Move(b, dir)
		if !Changed(b, res.Board) {
			continue
		}
		empty := len(EmptyCells(res.Board))
		if res.Gained > bestGain || (res.Gained == bestGain && empty > bestEmpty) {
			best, found = dir, true
			bestGain, bestEmpty = res.Gained, empty
		}
	}
	return best, found
}

// CornerStrategy keeps the largest tiles in the bottom-left corner by
// preferring down and left, then right, and up only when forced.
type CornerStrategy struct{}

var cornerOrder = [...]Direction{DirDown, DirLeft, DirRight, DirUp}

func (CornerStrategy) Name() string { return "corner" }

func (CornerStrategy) NextMove(b Board) (Direction, bool) {
	for _, dir := range cornerOrder {
		if res, _ := Move(b, dir); Changed(b, res.Board) {
			return dir, true
		}
	}
	return 0, false
}

// AutoPlayConfig controls a single automated game.
type AutoPlayConfig struct {
	Strategy Strategy
	Spawn4   float64
	MaxMoves int // 0 means play until game over

	// OnMove, if set, is called after every move with the updated session.
	OnMove func(dir Direction, s *Session)
}

// AutoPlayResult summarizes an automated game.
type AutoPlayResult struct {
	Strategy string
	Score    int
	MaxTile  int
	Moves    int
	Board    Board
}

// AutoPlay plays one game with the configured strategy until no move is
// left, MaxMoves is reached or ctx is canceled.
func AutoPlay(ctx context.Context, src TileSource, cfg AutoPlayConfig) (AutoPlayResult, error) {
	if cfg.Strategy == nil {
		return AutoPlayResult{}, fmt.Errorf("%w: nil", ErrUnknownStrategy)
	}

	s := NewSession(src, cfg.Spawn4)
	for !s.GameOver() {
		if cfg.MaxMoves > 0 && s.Moves() >= cfg.MaxMoves {
			break
		}
		if err := ctx.Err(); err != nil {
			return summarize(cfg.Strategy, s), err
		}

		dir, ok := cfg.Strategy.NextMove(s.Board())
		if !ok {
			break
		}
		if _, moved := s.Apply(dir); !moved {
			return summarize(cfg.Strategy, s), fmt.Errorf("t2048: strategy %s chose a no-op move %s", cfg.Strategy.Name(), dir)
		}
		if cfg.OnMove != nil {
			cfg.OnMove(dir, s)
		}
	}

	return summarize(cfg.Strategy, s), nil
}

func summarize(st Strategy, s *Session) AutoPlayResult {
	return AutoPlayResult{
		Strategy: st.Name(),
		Score:    s.Score(),
		MaxTile:  MaxTile(s.Board()),
		Moves:    s.Moves(),
		Board:    s.Board(),
	}
}
