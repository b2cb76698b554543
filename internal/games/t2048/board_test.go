package t2048

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestParseBoard(t *testing.T) {
	cells := []int{
		2, 0, 0, 0,
		0, 4, 0, 0,
		0, 0, 8, 0,
		0, 0, 0, 2048,
	}

	b, err := ParseBoard(cells)
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}
	if b.Get(1, 1) != 4 || b.Get(3, 3) != 2048 {
		t.Errorf("ParseBoard() = %v, cells not in row-major order", b)
	}
}

func TestParseBoardErrors(t *testing.T) {
	tests := []struct {
		name  string
		cells []int
		want  error
	}{
		{"too short", make([]int, 15), ErrBoardSize},
		{"too long", make([]int, 17), ErrBoardSize},
		{"nil", nil, ErrBoardSize},
		{"one", append([]int{1}, make([]int, 15)...), ErrInvalidTile},
		{"negative", append([]int{-2}, make([]int, 15)...), ErrInvalidTile},
		{"not power of two", append([]int{6}, make([]int, 15)...), ErrInvalidTile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBoard(tt.cells)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseBoard() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseBoardString(t *testing.T) {
	b, err := ParseBoardString("2,2,.,. | 0 0 0 0 | - - - - | 0,0,0,4")
	if err != nil {
		t.Fatalf("ParseBoardString() failed: %v", err)
	}

	expected := Board{
		2, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 4,
	}
	if b != expected {
		t.Errorf("ParseBoardString() = %v, want %v", b, expected)
	}

	if _, err := ParseBoardString("2 2 x 0"); !errors.Is(err, ErrInvalidTile) {
		t.Errorf("ParseBoardString() with a bad token error = %v, want ErrInvalidTile", err)
	}
	if _, err := ParseBoardString("2 2 0 0"); !errors.Is(err, ErrBoardSize) {
		t.Errorf("ParseBoardString() with 4 cells error = %v, want ErrBoardSize", err)
	}
}

func TestRowAndColumn(t *testing.T) {
	b := Board{
		1 << 1, 1 << 2, 1 << 3, 1 << 4,
		1 << 5, 1 << 6, 1 << 7, 1 << 8,
		1 << 9, 1 << 10, 1 << 11, 1 << 12,
		1 << 13, 1 << 14, 1 << 15, 1 << 16,
	}

	if got, want := b.Row(1), [4]int{32, 64, 128, 256}; got != want {
		t.Errorf("Row(1) = %v, want %v", got, want)
	}
	if got, want := b.Column(2), [4]int{8, 128, 2048, 32768}; got != want {
		t.Errorf("Column(2) = %v, want %v", got, want)
	}
}

func TestHasAvailableMoves(t *testing.T) {
	tests := []struct {
		name     string
		board    Board
		expected bool
	}{
		{
			name: "full board without equal neighbors",
			board: Board{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: false,
		},
		{
			name: "full board with a horizontal pair",
			board: Board{
				2, 2, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: true,
		},
		{
			name: "full board with a vertical pair in the last column",
			board: Board{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 32768, 4096,
			},
			expected: true,
		},
		{
			name: "full board with a pair in the bottom row",
			board: Board{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 2048, 4096,
				8192, 16384, 65536, 65536,
			},
			expected: true,
		},
		{
			name: "one empty cell",
			board: Board{
				2, 4, 8, 16,
				32, 64, 128, 256,
				512, 1024, 0, 4096,
				8192, 16384, 32768, 65536,
			},
			expected: true,
		},
		{
			name:     "empty board",
			board:    Board{},
			expected: true,
		},
		{
			name: "checkerboard",
			board: Board{
				2, 4, 2, 4,
				4, 2, 4, 2,
				2, 4, 2, 4,
				4, 2, 4, 2,
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAvailableMoves(tt.board); got != tt.expected {
				t.Errorf("HasAvailableMoves() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaxTile(t *testing.T) {
	board := Board{
		2, 4, 8, 16,
		32, 64, 128, 256,
		512, 1024, 2048, 4,
		8, 16, 32, 64,
	}

	if got := MaxTile(board); got != 2048 {
		t.Errorf("MaxTile = %d, want 2048", got)
	}
	if got := MaxTile(Board{}); got != 0 {
		t.Errorf("MaxTile(empty) = %d, want 0", got)
	}
}

func TestEmptyCells(t *testing.T) {
	board := Board{
		2, 0, 8, 0,
		0, 64, 0, 256,
		512, 0, 2048, 0,
		0, 16, 0, 64,
	}

	cells := EmptyCells(board)
	if len(cells) != 8 {
		t.Fatalf("EmptyCells count = %d, want 8", len(cells))
	}
	if cells[0] != 1 || cells[7] != 14 {
		t.Errorf("EmptyCells = %v, want row-major indices", cells)
	}
	if CountTiles(board) != 8 {
		t.Errorf("CountTiles = %d, want 8", CountTiles(board))
	}
}

func TestBoardString(t *testing.T) {
	b := Board{
		2, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 16384,
	}

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != BoardSize {
		t.Fatalf("String() has %d lines, want %d", len(lines), BoardSize)
	}
	if lines[0] != "    2     .     .     ." {
		t.Errorf("String() first line = %q", lines[0])
	}
	if lines[3] != "    .     .     . 16384" {
		t.Errorf("String() last line = %q", lines[3])
	}
}

// anyMoveChanges reports whether some direction changes the board.
func anyMoveChanges(b Board) bool {
	for _, dir := range Directions {
		if res, _ := Move(b, dir); Changed(b, res.Board) {
			return true
		}
	}
	return false
}

func TestHasAvailableMovesMatchesMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(4096))
	stuck := 0

	for i := range 20000 {
		// Mostly full boards over few values, so both outcomes occur
		var b Board
		for j := range b {
			if i%4 == 0 && rng.Intn(16) == 0 {
				continue
			}
			b[j] = 1 << (1 + rng.Intn(6))
		}

		got, want := HasAvailableMoves(b), anyMoveChanges(b)
		if got != want {
			t.Fatalf("HasAvailableMoves() = %v, but some move changes the board = %v:\n%v", got, want, b)
		}
		if !got {
			stuck++
		}
	}

	if stuck == 0 {
		t.Error("no board without moves was generated")
	}
}
