package tick_test

import (
	"fmt"

	"github.com/plus3/tetromino/tick"
)

type FallSystem struct {
	Row    int
	Bottom int
}

func (s *FallSystem) Execute(frame *tick.Frame) {
	if s.Row < s.Bottom {
		s.Row++
	}
}

// ExampleScheduler drives a single system by hand. Run does the same from a
// ticker until its context is cancelled.
func ExampleScheduler() {
	fall := &FallSystem{Bottom: 3}

	scheduler := tick.NewScheduler()
	scheduler.Register(fall)

	for range 5 {
		scheduler.Once(1.0)
	}

	stats := scheduler.Stats()
	fmt.Println("row:", fall.Row)
	fmt.Println("ticks:", stats.Ticks)
	fmt.Println("system:", stats.Systems[0].Name, stats.Systems[0].ExecutionCount)
	// Output:
	// row: 3
	// ticks: 5
	// system: FallSystem 5
}
