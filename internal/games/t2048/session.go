package t2048

// Session holds the mutable state of one 2048 game: the current board,
// the cumulative score and the game-over flag. It is the single owner of
// that state and is not safe for concurrent use.
type Session struct {
	src      TileSource
	spawn4   float64
	board    Board
	score    int
	moves    int
	gameOver bool
}

// NewSession starts a game with a fresh two-tile board.
func NewSession(src TileSource, spawn4 float64) *Session {
	s := &Session{src: src, spawn4: spawn4}
	s.Reset()
	return s
}

// Reset starts over with a fresh board and zero score.
func (s *Session) Reset() {
	s.board = NewBoardWith(s.src, s.spawn4)
	s.score = 0
	s.moves = 0
	s.gameOver = !HasAvailableMoves(s.board)
}

// SetSpawn4 changes the probability of spawning a 4 for subsequent moves.
func (s *Session) SetSpawn4(p float64) {
	s.spawn4 = p
}

// Load replaces the board and score, e.g. for puzzles or tests.
func (s *Session) Load(b Board, score int) {
	s.board = b
	s.score = score
	s.moves = 0
	s.gameOver = !HasAvailableMoves(b)
}

// Apply resolves a move. When the move leaves the board unchanged nothing
// happens: no score, no spawn and no game-over update. Otherwise the merged
// board gets a new tile, the gained score is added and the game-over flag
// is evaluated on that same stored board.
// Returns the move result and whether the board changed.
func (s *Session) Apply(dir Direction) (MoveResult, bool) {
	if s.gameOver {
		return MoveResult{Board: s.board}, false
	}

	res, err := Move(s.board, dir)
	if err != nil || !Changed(s.board, res.Board) {
		return MoveResult{Board: s.board}, false
	}

	s.board = SpawnTile(res.Board, s.src, s.spawn4)
	s.score += res.Gained
	s.moves++
	s.gameOver = !HasAvailableMoves(s.board)

	return res, true
}

// Board returns the current board.
func (s *Session) Board() Board {
	return s.board
}

// Score returns the cumulative score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of moves that changed the board.
func (s *Session) Moves() int {
	return s.moves
}

// GameOver reports whether no legal move is left.
func (s *Session) GameOver() bool {
	return s.gameOver
}
