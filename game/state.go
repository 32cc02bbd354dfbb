package game

import (
	"github.com/plus3/tetromino/grid"
	"github.com/plus3/tetromino/piece"
)

// Snapshot is a consistent copy of everything a renderer needs.
type Snapshot struct {
	Board    grid.Board
	Display  grid.Board
	Piece    piece.Piece
	HasPiece bool
	Position grid.Position
	Score    int
	Lines    int
	GameOver bool
	Paused   bool
}

// Snapshot reads the whole session state at once.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Board:    s.board,
		Display:  s.display(),
		Position: s.position,
		Score:    s.score,
		Lines:    s.lines,
		GameOver: s.gameOver,
		Paused:   s.paused,
	}
	if s.current != nil {
		snap.Piece = *s.current
		snap.HasPiece = true
	}
	return snap
}

// DisplayBoard returns the settled board with the falling piece drawn in,
// clipped to the board edges. It is recomputed on every call.
func (s *Session) DisplayBoard() grid.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.display()
}

func (s *Session) display() grid.Board {
	if s.current == nil {
		return s.board
	}
	return grid.Merge(s.board, s.current.Shape, s.position, s.current.Kind.Cell())
}

// Board returns a copy of the settled cells.
func (s *Session) Board() grid.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.board
}

// CurrentPiece returns the falling piece, if there is one.
func (s *Session) CurrentPiece() (piece.Piece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return piece.Piece{}, false
	}
	return *s.current, true
}

// Position is the falling piece's top-left cell on the board.
func (s *Session) Position() grid.Position {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.position
}

// Score is PointsPerLine for every row cleared since Start.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.score
}

// Lines is the number of rows cleared since Start.
func (s *Session) Lines() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lines
}

// IsGameOver reports whether the last spawn collided. Only Start clears it.
func (s *Session) IsGameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gameOver
}

// IsPaused reports whether actions and gravity ticks are suspended.
func (s *Session) IsPaused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paused
}
