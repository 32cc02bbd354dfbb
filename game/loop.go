package game

import (
	"context"

	"github.com/plus3/tetromino/tick"
)

// loop is the handle of one running tick loop. A session holds at most one.
type loop struct {
	scheduler *tick.Scheduler
	cancel    context.CancelFunc
}

// GravitySystem drops the falling piece one row per tick. It belongs to a
// single loop and does nothing once that loop is no longer the session's.
type GravitySystem struct {
	session *Session
	loop    *loop
}

func (g *GravitySystem) Execute(frame *tick.Frame) {
	s := g.session
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loop != g.loop {
		return
	}
	if s.paused || s.gameOver {
		return
	}

	moved := s.moveDown()
	s.logger.Printf("tick %d: moved=%t position=%+v", frame.Tick, moved, s.position)
}

// startLoop replaces any running loop with a new one. Callers hold s.mu.
func (s *Session) startLoop() {
	s.stopLoop()

	l := &loop{scheduler: tick.NewScheduler()}
	l.scheduler.Register(&GravitySystem{session: s, loop: l})
	s.loop = l
	s.scheduler = l.scheduler

	if s.manual {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	go l.scheduler.Run(ctx, s.interval)
}

// stopLoop detaches and cancels the running loop, if any. Once it returns no
// tick of that loop can change the session, even one already waiting on
// s.mu. Callers hold s.mu.
func (s *Session) stopLoop() {
	if s.loop == nil {
		return
	}
	if s.loop.cancel != nil {
		s.loop.cancel()
	}
	s.loop = nil
}

// Step runs one tick of the current loop on the calling goroutine. It
// returns false when no loop is active, such as before Start or after the
// game ended.
func (s *Session) Step() bool {
	s.mu.Lock()
	l := s.loop
	dt := s.interval.Seconds()
	s.mu.Unlock()

	if l == nil {
		return false
	}
	l.scheduler.Once(dt)
	return true
}

// Running reports whether a tick loop is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loop != nil
}

// TickStats returns execution statistics of the most recent tick loop,
// including one that has already stopped.
func (s *Session) TickStats() *tick.SchedulerStats {
	s.mu.Lock()
	scheduler := s.scheduler
	s.mu.Unlock()

	if scheduler == nil {
		return &tick.SchedulerStats{}
	}
	return scheduler.Stats()
}
