// Package game holds the state of one falling-block game and the actions a
// player can take on it.
//
// A Session owns the settled board, the falling piece and its position, the
// score and the paused/game-over flags. A tick loop moves the piece down once
// per interval. All methods are safe to call from any goroutine: actions and
// ticks each run to completion under the session lock, so they observe each
// other one at a time, never interleaved.
package game

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/plus3/tetromino/grid"
	"github.com/plus3/tetromino/piece"
	"github.com/plus3/tetromino/tick"
)

// DefaultTickInterval is how often the falling piece drops one row.
const DefaultTickInterval = 1000 * time.Millisecond

// PointsPerLine is awarded for every cleared row.
const PointsPerLine = 100

// Option configures a Session.
type Option func(*Session)

// WithTickInterval sets the period of the tick loop.
func WithTickInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithSource sets where spawned pieces come from.
func WithSource(src piece.Source) Option {
	return func(s *Session) {
		s.source = src
	}
}

// WithLogger sets the logger for spawn, game-over and tick events.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithManualTicks disables the timer. The tick loop is still created by
// Start, but only Step advances it.
func WithManualTicks() Option {
	return func(s *Session) {
		s.manual = true
	}
}

// Session is one game. Construct it with NewSession and begin play with
// Start; calling Start again discards the previous game entirely.
type Session struct {
	mu sync.Mutex

	board    grid.Board
	current  *piece.Piece
	position grid.Position
	score    int
	lines    int
	gameOver bool
	paused   bool

	loop      *loop
	scheduler *tick.Scheduler

	interval time.Duration
	manual   bool
	source   piece.Source
	logger   *log.Logger
}

// NewSession returns an idle session with an empty board. No piece is
// falling until Start is called.
func NewSession(opts ...Option) *Session {
	s := &Session{
		interval: DefaultTickInterval,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		s.source = piece.NewRandom(nil)
	}
	return s
}

// Start resets the board, score and flags, spawns the first piece and starts
// a fresh tick loop, stopping any loop that was running.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLoop()
	s.board = grid.Board{}
	s.score = 0
	s.lines = 0
	s.gameOver = false
	s.paused = false
	s.current = nil
	s.position = grid.Position{}
	s.spawn()
	s.startLoop()
}

// Close stops the tick loop. The session state stays readable.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLoop()
}

// spawn draws the next piece and centers it on the top row. A piece that
// collides where it appears ends the game.
func (s *Session) spawn() {
	next := s.source.Next()
	s.current = &next
	s.position = grid.Position{
		X: (grid.Width - next.Shape.Width()) / 2,
		Y: 0,
	}
	s.logger.Printf("spawn %s at %+v", next.Kind, s.position)

	if grid.Collides(&s.board, next.Shape, s.position) {
		s.gameOver = true
		s.stopLoop()
		s.logger.Printf("game over: %s blocked at spawn, score %d", next.Kind, s.score)
	}
}

// merge settles the falling piece into the board, clears full rows, scores
// them and spawns the next piece.
func (s *Session) merge() {
	if s.current == nil {
		return
	}

	board := grid.Merge(s.board, s.current.Shape, s.position, s.current.Kind.Cell())
	board, lines := grid.ClearLines(board)
	s.board = board
	s.lines += lines
	s.score += lines * PointsPerLine
	if lines > 0 {
		s.logger.Printf("cleared %d lines, score %d", lines, s.score)
	}

	s.spawn()
}
