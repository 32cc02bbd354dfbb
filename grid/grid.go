// Package grid provides the pure geometry of the playfield: a fixed 20×10
// board of cells, piece shapes as occupancy matrices, and the collision,
// merge, line-clear and rotation operations over them.
//
// Every function here is free of side effects. Boards are arrays, so passing
// one by value hands the callee an independent copy.
package grid

import "strings"

const (
	Width  = 10
	Height = 20
)

// Cell is the content of one board square. Zero is empty; any other value is
// the kind of the piece that settled there.
type Cell uint8

// Board is the settled playfield, indexed [row][column] with row 0 at the top.
type Board [Height][Width]Cell

// Position locates a shape's bounding-box origin on the board.
type Position struct {
	X, Y int
}

// Add returns p shifted by dx, dy.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// FullRows returns the indices of rows with no empty cell, top to bottom.
func (b Board) FullRows() []int {
	var rows []int
	for y := range b {
		if rowFull(&b[y]) {
			rows = append(rows, y)
		}
	}
	return rows
}

// Empty reports whether no cell on the board is occupied.
func (b Board) Empty() bool {
	for y := range b {
		for x := range b[y] {
			if b[y][x] != 0 {
				return false
			}
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := range b {
		for _, c := range b[y] {
			if c == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(c))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func rowFull(row *[Width]Cell) bool {
	for _, c := range row {
		if c == 0 {
			return false
		}
	}
	return true
}

func inBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}
