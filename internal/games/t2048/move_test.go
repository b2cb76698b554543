package t2048

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMergeRow(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		score    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			score:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "merge across a gap then stop",
			input:    [4]int{2, 0, 2, 4},
			expected: [4]int{4, 4, 0, 0},
			score:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			score:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "slide with multiple gaps",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			score:    4,
		},
		{
			name:     "leftmost pair merges first",
			input:    [4]int{4, 2, 2, 2},
			expected: [4]int{4, 4, 2, 0},
			score:    4,
		},
		{
			name:     "no change needed",
			input:    [4]int{4, 2, 0, 0},
			expected: [4]int{4, 2, 0, 0},
			score:    0,
		},
		{
			name:     "empty row",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			score:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			score:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score := mergeRow(tt.input)
			if result != tt.expected {
				t.Errorf("mergeRow(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("mergeRow(%v) score = %d, want %d", tt.input, score, tt.score)
			}
		})
	}
}

func TestOneMergePerTilePerMove(t *testing.T) {
	// [4, 4, 4, 4] sliding left should become [8, 8, 0, 0], not [16, 0, 0, 0]
	row := [4]int{4, 4, 4, 4}
	result, score := mergeRow(row)

	expected := [4]int{8, 8, 0, 0}
	if result != expected {
		t.Errorf("mergeRow(%v) = %v, want %v (one merge per tile per move)", row, result, expected)
	}

	// Score should be 8+8 = 16, not 8+16 = 24
	if score != 16 {
		t.Errorf("mergeRow(%v) score = %d, want 16", row, score)
	}
}

func TestMoveLeft(t *testing.T) {
	board := Board{
		2, 2, 0, 0,
		4, 0, 4, 0,
		2, 2, 2, 2,
		0, 0, 0, 2,
	}

	expected := Board{
		4, 0, 0, 0,
		8, 0, 0, 0,
		4, 4, 0, 0,
		2, 0, 0, 0,
	}

	res := MoveLeft(board)

	if res.Board != expected {
		t.Errorf("MoveLeft: got\n%v\nwant\n%v", res.Board, expected)
	}

	expectedScore := 4 + 8 + 4 + 4
	if res.Gained != expectedScore {
		t.Errorf("MoveLeft score = %d, want %d", res.Gained, expectedScore)
	}
}

func TestMoveRight(t *testing.T) {
	board := Board{
		2, 2, 0, 0,
		4, 0, 4, 0,
		2, 2, 2, 2,
		0, 0, 0, 2,
	}

	expected := Board{
		0, 0, 0, 4,
		0, 0, 0, 8,
		0, 0, 4, 4,
		0, 0, 0, 2,
	}

	res := MoveRight(board)

	if res.Board != expected {
		t.Errorf("MoveRight: got\n%v\nwant\n%v", res.Board, expected)
	}
	if res.Gained != 20 {
		t.Errorf("MoveRight score = %d, want 20", res.Gained)
	}
}

func TestMoveRightMergesNearEdgeFirst(t *testing.T) {
	board := Board{
		2, 2, 2, 0,
	}

	res := MoveRight(board)
	if got, want := res.Board.Row(0), [4]int{0, 0, 2, 4}; got != want {
		t.Errorf("MoveRight row 0 = %v, want %v", got, want)
	}
}

func TestMoveUp(t *testing.T) {
	board := Board{
		2, 4, 2, 0,
		2, 0, 2, 0,
		0, 4, 2, 0,
		0, 0, 2, 2,
	}

	expected := Board{
		4, 8, 4, 2,
		0, 0, 4, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}

	res := MoveUp(board)

	if res.Board != expected {
		t.Errorf("MoveUp: got\n%v\nwant\n%v", res.Board, expected)
	}
	if res.Gained != 4+8+4+4 {
		t.Errorf("MoveUp score = %d, want 20", res.Gained)
	}
}

func TestMoveDown(t *testing.T) {
	board := Board{
		2, 4, 2, 2,
		2, 0, 2, 0,
		0, 4, 2, 0,
		0, 0, 2, 0,
	}

	expected := Board{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 4, 0,
		4, 8, 4, 2,
	}

	res := MoveDown(board)

	if res.Board != expected {
		t.Errorf("MoveDown: got\n%v\nwant\n%v", res.Board, expected)
	}
}

func TestMoveScenarioTopRow(t *testing.T) {
	board := Board{2, 2}

	res := MoveLeft(board)

	if got, want := res.Board.Row(0), [4]int{4, 0, 0, 0}; got != want {
		t.Errorf("row 0 = %v, want %v", got, want)
	}
	if res.Gained != 4 {
		t.Errorf("Gained = %d, want 4", res.Gained)
	}
	if CountTiles(res.Board) != 1 {
		t.Errorf("MoveLeft should not spawn, got %d tiles", CountTiles(res.Board))
	}
}

func TestNoChangeMove(t *testing.T) {
	board := Board{
		4, 2, 0, 0,
	}

	res := MoveLeft(board)

	if Changed(board, res.Board) {
		t.Error("MoveLeft should not change already left-aligned tiles")
	}
	if res.Gained != 0 {
		t.Errorf("no-op move gained %d, want 0", res.Gained)
	}
}

func TestMove(t *testing.T) {
	board := Board{
		2, 0, 0, 2,
	}

	for _, dir := range Directions {
		res, err := Move(board, dir)
		if err != nil {
			t.Fatalf("Move(%s) failed: %v", dir, err)
		}
		if Sum(res.Board) != Sum(board) {
			t.Errorf("Move(%s) changed the tile sum", dir)
		}
	}

	if _, err := Move(board, Direction(42)); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("Move(42) error = %v, want ErrUnknownDirection", err)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input    string
		expected Direction
	}{
		{"up", DirUp},
		{"DOWN", DirDown},
		{" l ", DirLeft},
		{"r", DirRight},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseDirection(%q) = %s, want %s", tt.input, got, tt.expected)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrUnknownDirection) {
		t.Errorf("ParseDirection(north) error = %v, want ErrUnknownDirection", err)
	}
}

// randomBoard fills roughly half the cells with small tiles.
func randomBoard(rng *rand.Rand) Board {
	var b Board
	for i := range b {
		if rng.Intn(2) == 0 {
			b[i] = 1 << (1 + rng.Intn(4))
		}
	}
	return b
}

func TestMoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for range 500 {
		board := randomBoard(rng)
		for _, dir := range Directions {
			res, err := Move(board, dir)
			if err != nil {
				t.Fatalf("Move(%s) failed: %v", dir, err)
			}

			// Merging never creates or destroys value
			if Sum(res.Board) != Sum(board) {
				t.Fatalf("Move(%s) on\n%v sum %d, want %d", dir, board, Sum(res.Board), Sum(board))
			}

			// Each merge removes exactly one tile and scores the new tile
			if CountTiles(res.Board) > CountTiles(board) {
				t.Fatalf("Move(%s) increased the tile count", dir)
			}
			if res.Gained%4 != 0 {
				t.Fatalf("Move(%s) gained %d, not a sum of merged tiles", dir, res.Gained)
			}

			// A second move in the same direction only merges what the first one produced
			again, _ := Move(res.Board, dir)
			if res.Gained == 0 && Changed(res.Board, again.Board) {
				t.Fatalf("Move(%s) is not stable on\n%v", dir, board)
			}

			if err := res.Board.Validate(); err != nil {
				t.Fatalf("Move(%s) produced an invalid board: %v", dir, err)
			}
		}
	}
}
