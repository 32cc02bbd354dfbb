package game

import (
	"testing"

	"github.com/plus3/tetromino/grid"
	"github.com/plus3/tetromino/piece"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeClearsAndScores(t *testing.T) {
	s := NewSession(WithManualTicks(), WithSource(piece.NewSequence(piece.T)))
	s.Start()

	for x := 1; x < grid.Width; x++ {
		s.board[19][x] = piece.S.Cell()
	}
	s.board[18][5] = piece.Z.Cell()

	upright := piece.MustLookup(piece.I).Rotated()
	s.current = &upright
	s.position = grid.Position{X: 0, Y: 16}

	s.merge()

	assert.Equal(t, PointsPerLine, s.score)
	assert.Equal(t, 1, s.lines)
	assert.Equal(t, [grid.Width]grid.Cell{}, s.board[0])

	i := piece.I.Cell()
	assert.Equal(t, [grid.Width]grid.Cell{i, 0, 0, 0, 0, piece.Z.Cell(), 0, 0, 0, 0}, s.board[19])
	assert.Equal(t, i, s.board[18][0])
	assert.Equal(t, i, s.board[17][0])
	assert.Equal(t, grid.Cell(0), s.board[16][0])

	require.NotNil(t, s.current)
	assert.Equal(t, piece.T, s.current.Kind)
	assert.Equal(t, grid.Position{X: 3, Y: 0}, s.position)
}

func TestMergeWithoutPiece(t *testing.T) {
	s := NewSession(WithManualTicks())
	s.merge()

	assert.Nil(t, s.current)
	assert.True(t, s.board.Empty())
}

func TestSpawnCollisionEndsGame(t *testing.T) {
	s := NewSession(WithManualTicks(), WithSource(piece.NewSequence(piece.O)))
	s.Start()
	require.NotNil(t, s.loop)

	s.board[0][4] = piece.J.Cell()
	s.spawn()

	assert.True(t, s.gameOver)
	assert.Nil(t, s.loop)
	assert.Equal(t, grid.Position{X: 4, Y: 0}, s.position)

	// The blocked piece stays visible on top of the stack.
	assert.Equal(t, piece.O.Cell(), s.display()[0][4])
}

func TestSpawnAboveSettledCellsIsAllowed(t *testing.T) {
	s := NewSession(WithManualTicks(), WithSource(piece.NewSequence(piece.I)))
	s.Start()

	s.board[1][4] = piece.J.Cell()
	s.spawn()

	assert.False(t, s.gameOver)
	assert.NotNil(t, s.loop)
}

func TestStaleLoopTickIsIgnored(t *testing.T) {
	s := NewSession(WithManualTicks(), WithSource(piece.NewSequence(piece.O)))
	s.Start()

	stale := s.loop
	s.Start()
	require.NotSame(t, stale, s.loop)

	stale.scheduler.Once(1)

	assert.Equal(t, 0, s.position.Y)
	assert.Equal(t, int64(1), stale.scheduler.Stats().Ticks)
	assert.Equal(t, int64(0), s.TickStats().Ticks)
}

func TestStopLoopIsIdempotent(t *testing.T) {
	s := NewSession(WithTickInterval(DefaultTickInterval))
	s.Start()

	s.Close()
	s.Close()

	assert.False(t, s.Running())
	assert.NotNil(t, s.scheduler, "stats of the last loop stay readable")
}
