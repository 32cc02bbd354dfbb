package main

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/plus3/tetromino/game"
	"github.com/plus3/tetromino/grid"
)

func TestControlsRepeat(t *testing.T) {
	c := newControls()

	var fired []int
	for frame := 1; frame <= 20; frame++ {
		if c.advance(ebiten.KeyLeft, true, 10, 3) {
			fired = append(fired, frame)
		}
	}
	assert.Equal(t, []int{1, 13, 16, 19}, fired)

	assert.False(t, c.advance(ebiten.KeyLeft, false, 10, 3))
	assert.True(t, c.advance(ebiten.KeyLeft, true, 10, 3), "release resets the delay")
}

func TestControlsKeysAreIndependent(t *testing.T) {
	c := newControls()

	assert.True(t, c.advance(ebiten.KeyLeft, true, 10, 3))
	assert.True(t, c.advance(ebiten.KeyRight, true, 10, 3))
	assert.False(t, c.advance(ebiten.KeyLeft, true, 10, 3))
}

func TestRenderTones(t *testing.T) {
	pcm := renderTones(1000,
		tone{frequency: 250, duration: 10 * time.Millisecond, volume: 1},
		tone{frequency: 250, duration: 5 * time.Millisecond, volume: 1},
	)
	assert.Len(t, pcm, 15*4)
	assert.Equal(t, []byte{0, 0, 0, 0}, pcm[:4], "sine starts at zero")
	assert.Equal(t, pcm[4:6], pcm[6:8], "both channels carry the same sample")
}

func TestSoundBoardDisabled(t *testing.T) {
	sb := newSoundBoard(false)
	assert.NotPanics(t, func() {
		sb.React(game.Snapshot{}, game.Snapshot{Score: 100})
		sb.React(game.Snapshot{}, game.Snapshot{GameOver: true})
	})
}

func TestLayout(t *testing.T) {
	l := newLayout(10)
	assert.Equal(t, margin*2+grid.Width*10+panelWidth, l.width)
	assert.Equal(t, margin*2+grid.Height*10, l.height)

	x, y, size := l.cellRect(2, 3)
	assert.Equal(t, float32(margin+20), x)
	assert.Equal(t, float32(margin+30), y)
	assert.Equal(t, float32(10), size)
	assert.Len(t, cellColors, 8)
}
