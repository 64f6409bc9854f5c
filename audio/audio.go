package audio

import (
	"io"
	"log"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	BitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
	SoundWin
	SoundClick
)

const sfxVolume = 0.6

// Player plays procedurally generated effects. A nil Player is silent.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	logger *log.Logger
	cache  map[Sound][]byte
}

// NewPlayer opens the audio device. Sample buffers are synthesized up front
// so Play never allocates on the game loop.
func NewPlayer(logger *log.Logger) (*Player, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	p := &Player{
		ctx:    ctx,
		ready:  ready,
		logger: logger,
		cache:  make(map[Sound][]byte),
	}
	for _, s := range []Sound{SoundEat, SoundGameOver, SoundWin, SoundClick} {
		p.cache[s] = Generate(s)
	}
	return p, nil
}

// Play starts s in the background and returns immediately.
func (p *Player) Play(s Sound) {
	if p == nil {
		return
	}
	select {
	case <-p.ready:
	default:
		return
	}
	samples := p.cache[s]
	if len(samples) == 0 {
		return
	}
	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil && p.logger != nil {
			p.logger.Printf("closing player: %v", err)
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(b []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(b, r.data[r.pos:])
	r.pos += n
	return n, nil
}
