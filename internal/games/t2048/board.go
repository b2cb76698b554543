package t2048

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BoardSize is the board dimension.
const BoardSize = 4

// CellCount is the number of cells on the board.
const CellCount = BoardSize * BoardSize

// Board is a 4x4 grid stored in row-major order (index = row*4 + col).
// A zero cell is empty; any other cell holds a power of two >= 2.
// Board is a value type: every operation returns a new board and leaves
// its input untouched.
type Board [CellCount]int

var (
	// ErrBoardSize is returned when a cell list does not have exactly 16 entries.
	ErrBoardSize = errors.New("t2048: board must have exactly 16 cells")

	// ErrInvalidTile is returned for a tile that is not empty and not a power of two >= 2.
	ErrInvalidTile = errors.New("t2048: invalid tile value")
)

// Index returns the board index for a row and column.
func Index(row, col int) int {
	return row*BoardSize + col
}

// ParseBoard builds a Board from a flat row-major cell list.
// The list is rejected, never truncated or padded, if its length is not 16.
func ParseBoard(cells []int) (Board, error) {
	var b Board
	if len(cells) != CellCount {
		return b, fmt.Errorf("%w: got %d", ErrBoardSize, len(cells))
	}
	copy(b[:], cells)
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ParseBoardString parses a comma or whitespace separated list of 16 cells.
// Empty cells may be written as 0, "." or "-".
func ParseBoardString(s string) (Board, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '|'
	})

	cells := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "." || f == "-" {
			cells = append(cells, 0)
			continue
		}
		v, err := strconv.Atoi(f)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %q", ErrInvalidTile, f)
		}
		cells = append(cells, v)
	}
	return ParseBoard(cells)
}

// Validate checks that every cell is empty or a power of two >= 2.
func (b Board) Validate() error {
	for i, v := range b {
		if v == 0 {
			continue
		}
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("%w: %d at row %d col %d", ErrInvalidTile, v, i/BoardSize, i%BoardSize)
		}
	}
	return nil
}

// Get returns the value at the given row and column.
func (b Board) Get(row, col int) int {
	return b[Index(row, col)]
}

// Row returns the cells of a row, left to right.
func (b Board) Row(row int) [BoardSize]int {
	var line [BoardSize]int
	copy(line[:], b[row*BoardSize:(row+1)*BoardSize])
	return line
}

// Column returns the cells of a column, top to bottom.
func (b Board) Column(col int) [BoardSize]int {
	var line [BoardSize]int
	for row := range BoardSize {
		line[row] = b[Index(row, col)]
	}
	return line
}

// EmptyCells returns the indices of all empty cells in row-major order.
func EmptyCells(b Board) []int {
	var cells []int
	for i, v := range b {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// CountTiles returns the number of non-empty cells.
func CountTiles(b Board) int {
	n := 0
	for _, v := range b {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the total value of all tiles on the board.
func Sum(b Board) int {
	total := 0
	for _, v := range b {
		total += v
	}
	return total
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for _, v := range b {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// HasAvailableMoves reports whether any directional move could change the board.
// It is false only when the board is full and no two horizontally or
// vertically adjacent cells share a value.
func HasAvailableMoves(b Board) bool {
	for _, v := range b {
		if v == 0 {
			return true
		}
	}

	for row := range BoardSize {
		for col := range BoardSize {
			i := Index(row, col)
			// Right neighbor
			if col < BoardSize-1 && b[i] == b[i+1] {
				return true
			}
			// Bottom neighbor
			if row < BoardSize-1 && b[i] == b[i+BoardSize] {
				return true
			}
		}
	}
	return false
}

// String renders the board as a fixed-width grid, "." marking empty cells.
func (b Board) String() string {
	width := len(strconv.Itoa(MaxTile(b)))
	if width < 4 {
		width = 4
	}

	var sb strings.Builder
	for row := range BoardSize {
		for col := range BoardSize {
			if col > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v := b.Get(row, col); v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
