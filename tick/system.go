// Package tick runs a fixed list of systems once per tick, either on demand
// or from a ticker, and keeps execution statistics for each of them.
package tick

// System is one step of per-tick behavior. Systems may keep their own state
// between ticks.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame carries per-tick data to every system executed in that tick.
type Frame struct {
	// DeltaTime is the time since the previous tick, in seconds.
	DeltaTime float64
	// Tick counts passes of the scheduler, starting at 1.
	Tick int64
}
