// Package debugui draws a Dear ImGui overlay on top of the ebiten frontend:
// a live view of the session state and the tick loop's statistics.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetromino/game"
	"github.com/plus3/tetromino/tick"
)

// Overlay owns the ImGui backend and the debug windows.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	inspector *SessionInspector
	tickStats *TickStatsWindow
	timer     *FrameTimer
}

// NewOverlay creates the ImGui backend and opens the game window through it.
// Callers must not open the ebiten window themselves.
func NewOverlay(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:   backend,
		inspector: NewSessionInspector(),
		tickStats: NewTickStatsWindow(120),
		timer:     NewFrameTimer(),
	}
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

// Render queues both windows for the current frame. Call it between
// BeginFrame and EndFrame.
func (o *Overlay) Render(snap game.Snapshot, stats *tick.SchedulerStats) {
	o.inspector.Render(snap)
	o.tickStats.Render(stats, o.timer.GetDeltaTime())
}

// Draw paints the overlay over screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether an ImGui widget has keyboard focus, in which
// case game input should be ignored.
func (o *Overlay) WantsKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}
