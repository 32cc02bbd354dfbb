package game

import "github.com/plus3/tetromino/grid"

// MoveLeft shifts the falling piece one column left if nothing is in the way.
func (s *Session) MoveLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shift(-1)
}

// MoveRight shifts the falling piece one column right if nothing is in the way.
func (s *Session) MoveRight() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shift(1)
}

// MoveDown drops the falling piece one row. It reports whether the piece is
// still falling; false means the piece landed and was merged, or that no
// move was possible because the game is paused, over or not started.
func (s *Session) MoveDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.moveDown()
}

// Rotate turns the falling piece 90° counter-clockwise in place. A rotation
// that would collide is dropped; no alternative offsets are tried.
func (s *Session) Rotate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.playable() {
		return
	}

	rotated := s.current.RotatedCounterClockwise()
	if !grid.Collides(&s.board, rotated.Shape, s.position) {
		s.current = &rotated
	}
}

// Pause toggles the paused flag. The tick loop keeps running but does
// nothing while paused.
func (s *Session) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = !s.paused
}

func (s *Session) playable() bool {
	return !s.paused && !s.gameOver && s.current != nil
}

func (s *Session) shift(dx int) {
	if !s.playable() {
		return
	}

	next := s.position.Add(dx, 0)
	if !grid.Collides(&s.board, s.current.Shape, next) {
		s.position = next
	}
}

func (s *Session) moveDown() bool {
	if !s.playable() {
		return false
	}

	next := s.position.Add(0, 1)
	if !grid.Collides(&s.board, s.current.Shape, next) {
		s.position = next
		return true
	}

	s.merge()
	return false
}
