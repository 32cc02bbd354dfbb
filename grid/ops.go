package grid

// Collides reports whether placing s at p would put an occupied cell outside
// the side walls, at or below the floor, or onto an occupied board cell.
// Cells above the top edge only get the horizontal check, so a piece may
// spawn partially out of view.
func Collides(b *Board, s Shape, p Position) bool {
	for off := range s.Cells() {
		x := p.X + off.X
		y := p.Y + off.Y

		if x < 0 || x >= Width || y >= Height {
			return true
		}

		if y >= 0 && b[y][x] != 0 {
			return true
		}
	}

	return false
}

// Merge returns a copy of b with every in-bounds occupied cell of s, placed
// at p, set to c. Cells that fall off the board are dropped.
func Merge(b Board, s Shape, p Position, c Cell) Board {
	for off := range s.Cells() {
		x := p.X + off.X
		y := p.Y + off.Y
		if inBounds(x, y) {
			b[y][x] = c
		}
	}
	return b
}

// ClearLines removes every full row, shifts the remaining rows down keeping
// their order, and refills the top with empty rows. It returns the new board
// and the number of rows removed.
func ClearLines(b Board) (Board, int) {
	var cleared Board
	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if rowFull(&b[y]) {
			continue
		}
		cleared[dst] = b[y]
		dst--
	}
	return cleared, dst + 1
}

// Rotate returns s turned 90° clockwise. A rows×cols shape becomes cols×rows.
func Rotate(s Shape) Shape {
	rows := s.Height()
	cols := s.Width()

	rotated := make(Shape, cols)
	for i := range rotated {
		rotated[i] = make([]bool, rows)
	}

	for row := range rows {
		for col := range cols {
			rotated[col][rows-1-row] = s[row][col]
		}
	}

	return rotated
}

// RotateCounterClockwise returns s turned 90° counter-clockwise. Player
// rotation in a session uses this direction.
func RotateCounterClockwise(s Shape) Shape {
	rows := s.Height()
	cols := s.Width()

	rotated := make(Shape, cols)
	for col := range cols {
		rotated[col] = make([]bool, rows)
		for row := range rows {
			rotated[col][row] = s[row][cols-1-col]
		}
	}

	return rotated
}
