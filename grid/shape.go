package grid

import "iter"

// Shape is a rectangular occupancy matrix indexed [row][column]. Shapes are
// treated as immutable: operations that change a shape return a new one.
type Shape [][]bool

// ShapeFromRows builds a shape from rows of '#' (occupied) and '.' (empty).
// All rows must have the same length.
func ShapeFromRows(rows ...string) Shape {
	shape := make(Shape, len(rows))
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			panic("grid: ragged shape rows")
		}
		shape[i] = make([]bool, len(row))
		for j := range row {
			shape[i][j] = row[j] == '#'
		}
	}
	return shape
}

// Height is the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s)
}

// Width is the number of columns in the bounding box.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Cells yields the offset of every occupied cell relative to the bounding-box
// origin, row by row.
func (s Shape) Cells() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for row := range s {
			for col, occupied := range s[row] {
				if !occupied {
					continue
				}
				if !yield(Position{X: col, Y: row}) {
					return
				}
			}
		}
	}
}

// Equal reports whether two shapes have the same dimensions and occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for row := range s {
		for col := range s[row] {
			if s[row][col] != other[row][col] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	buf := make([]byte, 0, s.Height()*(s.Width()+1))
	for row := range s {
		for _, occupied := range s[row] {
			if occupied {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
