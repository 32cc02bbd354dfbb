// Package piece defines the seven tetrominoes, their canonical shapes, and
// sources that decide which piece comes next.
package piece

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/tetromino/grid"
)

// Kind identifies a tetromino. Its numeric value is what a settled piece
// leaves in the board cells it occupies, so the zero value is reserved for
// empty cells.
type Kind grid.Cell

const (
	I Kind = iota + 1
	O
	T
	L
	J
	S
	Z
)

// Count is the number of distinct kinds.
const Count = 7

func (k Kind) String() string {
	if k < I || k > Z {
		return "?"
	}
	return "IOTLJSZ"[k-1 : k]
}

// Cell is the board value a piece of this kind settles as.
func (k Kind) Cell() grid.Cell {
	return grid.Cell(k)
}

// Piece is a tetromino kind with the shape of its current rotation.
type Piece struct {
	Kind  Kind
	Shape grid.Shape
}

// Rotated returns the piece turned 90° clockwise. The receiver is not changed.
func (p Piece) Rotated() Piece {
	return Piece{Kind: p.Kind, Shape: grid.Rotate(p.Shape)}
}

// RotatedCounterClockwise returns the piece turned 90° counter-clockwise.
func (p Piece) RotatedCounterClockwise() Piece {
	return Piece{Kind: p.Kind, Shape: grid.RotateCounterClockwise(p.Shape)}
}

var kinds = [Count]Kind{I, O, T, L, J, S, Z}

var catalog = newCatalog()

func newCatalog() *intmap.Map[Kind, grid.Shape] {
	m := intmap.New[Kind, grid.Shape](Count)
	m.Put(I, grid.ShapeFromRows("####"))
	m.Put(O, grid.ShapeFromRows("##", "##"))
	m.Put(T, grid.ShapeFromRows("###", ".#."))
	m.Put(L, grid.ShapeFromRows("###", "#.."))
	m.Put(J, grid.ShapeFromRows("###", "..#"))
	m.Put(S, grid.ShapeFromRows("##.", ".##"))
	m.Put(Z, grid.ShapeFromRows(".##", "##."))
	return m
}

// Kinds returns every kind in catalog order.
func Kinds() []Kind {
	return kinds[:]
}

// Lookup returns the spawn-orientation piece for k. The shape is shared with
// the catalog and must not be modified.
func Lookup(k Kind) (Piece, bool) {
	shape, ok := catalog.Get(k)
	if !ok {
		return Piece{}, false
	}
	return Piece{Kind: k, Shape: shape}, true
}

// MustLookup is like Lookup but panics on an unknown kind.
func MustLookup(k Kind) Piece {
	p, ok := Lookup(k)
	if !ok {
		panic("piece: unknown kind " + k.String())
	}
	return p
}
