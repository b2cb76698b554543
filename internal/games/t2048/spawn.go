package t2048

import "math/rand"

// DefaultSpawn4Prob is the classic probability of spawning a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// TileSource is the randomness used for tile spawning.
// *rand.Rand satisfies it; tests substitute a scripted source.
type TileSource interface {
	Intn(n int) int
	Float64() float64
}

var _ TileSource = (*rand.Rand)(nil)

// NewBoard returns an empty board with two random tiles.
func NewBoard(src TileSource) Board {
	return NewBoardWith(src, DefaultSpawn4Prob)
}

// NewBoardWith is NewBoard with a custom probability of spawning a 4.
func NewBoardWith(src TileSource, spawn4 float64) Board {
	var b Board
	b = SpawnTile(b, src, spawn4)
	b = SpawnTile(b, src, spawn4)
	return b
}

// SpawnRandomTile places a 2 (90%) or a 4 (10%) in a uniformly chosen
// empty cell. A full board is returned unchanged.
func SpawnRandomTile(b Board, src TileSource) Board {
	return SpawnTile(b, src, DefaultSpawn4Prob)
}

// SpawnTile places a 2 or, with probability spawn4, a 4 in a uniformly
// chosen empty cell. A full board is returned unchanged.
func SpawnTile(b Board, src TileSource, spawn4 float64) Board {
	empty := EmptyCells(b)
	if len(empty) == 0 {
		return b
	}

	idx := empty[src.Intn(len(empty))]

	value := 2
	if src.Float64() < spawn4 {
		value = 4
	}

	b[idx] = value
	return b
}
