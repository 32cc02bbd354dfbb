package main

import (
	"encoding/binary"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/tetromino/game"
)

const sampleRate = 44100

type tone struct {
	frequency float64
	duration  time.Duration
	volume    float64
}

// renderTones synthesizes a sequence of sine tones as 16-bit little-endian
// stereo PCM, the format ebiten's audio players read.
func renderTones(rate int, tones ...tone) []byte {
	var total int
	for _, t := range tones {
		total += int(t.duration.Seconds() * float64(rate))
	}

	buf := make([]byte, 0, total*4)
	for _, t := range tones {
		n := int(t.duration.Seconds() * float64(rate))
		for i := range n {
			// Linear fade-out keeps the cut from clicking.
			envelope := 1 - float64(i)/float64(n)
			v := math.Sin(2*math.Pi*t.frequency*float64(i)/float64(rate)) * t.volume * envelope
			sample := uint16(int16(v * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, sample)
			buf = binary.LittleEndian.AppendUint16(buf, sample)
		}
	}
	return buf
}

// soundBoard plays effects for score and game-over changes.
type soundBoard struct {
	lineClear *audio.Player
	gameOver  *audio.Player
}

func newSoundBoard(enabled bool) *soundBoard {
	sb := &soundBoard{}
	if !enabled {
		return sb
	}

	ctx := audio.NewContext(sampleRate)
	sb.lineClear = ctx.NewPlayerFromBytes(renderTones(sampleRate,
		tone{frequency: 440, duration: 70 * time.Millisecond, volume: 0.3},
		tone{frequency: 660, duration: 90 * time.Millisecond, volume: 0.3},
	))
	sb.gameOver = ctx.NewPlayerFromBytes(renderTones(sampleRate,
		tone{frequency: 330, duration: 120 * time.Millisecond, volume: 0.3},
		tone{frequency: 220, duration: 120 * time.Millisecond, volume: 0.3},
		tone{frequency: 165, duration: 240 * time.Millisecond, volume: 0.3},
	))
	return sb
}

// React plays whatever the change from prev to next calls for.
func (sb *soundBoard) React(prev, next game.Snapshot) {
	switch {
	case next.GameOver && !prev.GameOver:
		sb.play(sb.gameOver)
	case next.Score > prev.Score:
		sb.play(sb.lineClear)
	}
}

func (sb *soundBoard) play(p *audio.Player) {
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		log.Printf("rewind sound: %v", err)
		return
	}
	p.Play()
}
