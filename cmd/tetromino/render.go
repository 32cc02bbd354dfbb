package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/tetromino/game"
	"github.com/plus3/tetromino/grid"
)

const (
	margin     = 20
	panelWidth = 160
)

var (
	background = color.RGBA{0x10, 0x10, 0x18, 0xff}
	wellColor  = color.RGBA{0x20, 0x20, 0x2c, 0xff}
	gridColor  = color.RGBA{0x30, 0x30, 0x3e, 0xff}
	shadeColor = color.RGBA{0x00, 0x00, 0x00, 0xa0}
)

// cellColors is indexed by board cell value.
var cellColors = [...]color.RGBA{
	{},
	{0x87, 0xce, 0xeb, 0xff}, // I
	{0xff, 0xcb, 0x00, 0xff}, // O
	{0xc8, 0x7a, 0xff, 0xff}, // T
	{0xff, 0xa1, 0x00, 0xff}, // L
	{0x00, 0x79, 0xf1, 0xff}, // J
	{0x00, 0xe4, 0x30, 0xff}, // S
	{0xff, 0x6d, 0xc2, 0xff}, // Z
}

type layout struct {
	cell   int
	width  int
	height int
}

func newLayout(cell int) layout {
	return layout{
		cell:   cell,
		width:  margin*2 + grid.Width*cell + panelWidth,
		height: margin*2 + grid.Height*cell,
	}
}

// cellRect returns the screen rectangle of board cell (x, y).
func (l layout) cellRect(x, y int) (float32, float32, float32) {
	return float32(margin + x*l.cell), float32(margin + y*l.cell), float32(l.cell)
}

func (l layout) draw(screen *ebiten.Image, snap game.Snapshot) {
	screen.Fill(background)

	wellW := float32(grid.Width * l.cell)
	wellH := float32(grid.Height * l.cell)
	vector.DrawFilledRect(screen, margin, margin, wellW, wellH, wellColor, false)

	for y := range snap.Display {
		for x, c := range snap.Display[y] {
			px, py, size := l.cellRect(x, y)
			if c == 0 {
				vector.StrokeRect(screen, px, py, size, size, 1, gridColor, false)
				continue
			}
			vector.DrawFilledRect(screen, px+1, py+1, size-2, size-2, cellColors[c], false)
		}
	}

	panelX := margin*2 + grid.Width*l.cell
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d\n\nLINES\n%d", snap.Score, snap.Lines), panelX, margin)
	ebitenutil.DebugPrintAt(screen, "ARROWS move\nUP/Z   rotate\nP      pause\nR      restart\nESC    quit", panelX, margin+100)

	switch {
	case !snap.HasPiece:
		l.banner(screen, "PRESS ENTER")
	case snap.GameOver:
		l.banner(screen, "GAME OVER\nENTER to restart")
	case snap.Paused:
		l.banner(screen, "PAUSED")
	}
}

func (l layout) banner(screen *ebiten.Image, text string) {
	wellW := float32(grid.Width * l.cell)
	y := float32(margin + grid.Height*l.cell/2 - 24)
	vector.DrawFilledRect(screen, margin, y, wellW, 48, shadeColor, false)
	ebitenutil.DebugPrintAt(screen, text, margin+12, int(y)+8)
}
