// Package audio plays short procedural sound effects for game events.
package audio

import (
	"bytes"
	"fmt"
	"time"

	"tile-snake/game"
	"tile-snake/logging"

	"github.com/hajimehoshi/oto/v2"
)

// sampleFormat selects 32-bit float samples (oto.FormatFloat32LE).
const sampleFormat = 0

// Player owns the audio device context.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	log    logging.Logger
}

// NewPlayer opens the default output device. volume is clamped to [0, 1].
func NewPlayer(volume float64, log logging.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, sampleFormat)
	if err != nil {
		return nil, fmt.Errorf("open audio context: %w", err)
	}
	if log == nil {
		log = logging.Noop()
	}
	return &Player{
		ctx:    ctx,
		ready:  ready,
		volume: min(max(volume, 0), 1),
		log:    log,
	}, nil
}

// Play starts kind in the background. It drops the sound if the device is
// not ready yet.
func (p *Player) Play(kind SoundKind) {
	select {
	case <-p.ready:
	default:
		return
	}
	samples := Generate(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(bytes.NewReader(samples))
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			p.log.Warn("close audio player", logging.Any("error", err))
		}
	}()
}

// Observe plays a sound for eating, self bites and round ends.
func (p *Player) Observe(bus *game.EventBus) {
	sounds := map[game.EventType]SoundKind{
		game.EventFoodEaten: SoundEat,
		game.EventSelfBite:  SoundBite,
		game.EventRoundLost: SoundLose,
		game.EventRoundWon:  SoundWin,
	}
	for t, kind := range sounds {
		kind := kind
		bus.Subscribe(t, func(game.Event) { p.Play(kind) })
	}
}
