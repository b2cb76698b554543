package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all move directions.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// ErrUnknownDirection is returned for a direction outside the four moves.
var ErrUnknownDirection = errors.New("t2048: unknown direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name or its first letter.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// MoveResult is the board produced by a move and the score gained from its merges.
type MoveResult struct {
	Board  Board
	Gained int
}

// mergeRow slides a line toward index 0 and merges equal neighbors.
// Each tile merges at most once per move.
// Returns the updated line and the score gained from merges.
func mergeRow(line [BoardSize]int) (result [BoardSize]int, score int) {
	writePos := 0
	for i := 0; i < BoardSize; i++ {
		if line[i] == 0 {
			continue
		}

		// Find the next tile after i
		j := i + 1
		for j < BoardSize && line[j] == 0 {
			j++
		}

		if j < BoardSize && line[j] == line[i] {
			result[writePos] = line[i] * 2
			score += result[writePos]
			i = j // skip the consumed tile
		} else {
			result[writePos] = line[i]
		}
		writePos++
	}
	return result, score
}

// reverseRow reverses a line.
func reverseRow(line [BoardSize]int) [BoardSize]int {
	var result [BoardSize]int
	for i := range BoardSize {
		result[i] = line[BoardSize-1-i]
	}
	return result
}

// processRows merges every row toward the left edge, or toward the right
// edge when reverse is set.
func processRows(b Board, reverse bool) MoveResult {
	var res MoveResult
	for row := range BoardSize {
		line := b.Row(row)
		if reverse {
			line = reverseRow(line)
		}

		merged, score := mergeRow(line)
		res.Gained += score

		if reverse {
			merged = reverseRow(merged)
		}
		copy(res.Board[row*BoardSize:], merged[:])
	}
	return res
}

// processColumns merges every column toward the top edge, or toward the
// bottom edge when reverse is set.
func processColumns(b Board, reverse bool) MoveResult {
	res := MoveResult{Board: b}
	for col := range BoardSize {
		line := b.Column(col)
		if reverse {
			line = reverseRow(line)
		}

		merged, score := mergeRow(line)
		res.Gained += score

		if reverse {
			merged = reverseRow(merged)
		}
		for row := range BoardSize {
			res.Board[Index(row, col)] = merged[row]
		}
	}
	return res
}

// MoveLeft slides all tiles left and merges.
func MoveLeft(b Board) MoveResult {
	return processRows(b, false)
}

// MoveRight slides all tiles right and merges.
func MoveRight(b Board) MoveResult {
	return processRows(b, true)
}

// MoveUp slides all tiles up and merges.
func MoveUp(b Board) MoveResult {
	return processColumns(b, false)
}

// MoveDown slides all tiles down and merges.
func MoveDown(b Board) MoveResult {
	return processColumns(b, true)
}

// Move performs a move in the given direction.
func Move(b Board, dir Direction) (MoveResult, error) {
	switch dir {
	case DirLeft:
		return MoveLeft(b), nil
	case DirRight:
		return MoveRight(b), nil
	case DirUp:
		return MoveUp(b), nil
	case DirDown:
		return MoveDown(b), nil
	default:
		return MoveResult{Board: b}, fmt.Errorf("%w: %d", ErrUnknownDirection, int(dir))
	}
}

// Changed reports whether a move changed the board. Boards compare by value.
func Changed(before, after Board) bool {
	return before != after
}
