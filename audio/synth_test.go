package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"grid-snake/game"
)

func TestGenerateShapes(t *testing.T) {
	tests := []struct {
		sound Sound
		secs  float64
	}{
		{SoundEat, 0.09},
		{SoundGameOver, 0.75},
		{SoundWin, 0.9},
		{SoundClick, 0.04},
	}
	const frameBytes = ChannelCount * 4
	for _, tt := range tests {
		buf := Generate(tt.sound)
		if len(buf) == 0 || len(buf)%frameBytes != 0 {
			t.Fatalf("sound %d: %d bytes is not whole frames", tt.sound, len(buf))
		}
		frames := len(buf) / frameBytes
		want := int(tt.secs * SampleRate)
		if frames < want-1 || frames > want+1 {
			t.Errorf("sound %d: %d frames, want ~%d", tt.sound, frames, want)
		}
		for i := 0; i < len(buf); i += 4 {
			v := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
			if v < -1 || v > 1 || math.IsNaN(float64(v)) {
				t.Fatalf("sound %d: sample %v out of range at byte %d", tt.sound, v, i)
			}
		}
	}
	if Generate(Sound(99)) != nil {
		t.Error("unknown sound produced samples")
	}
}

func TestSoundReaderDrains(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	b := make([]byte, 3)
	n, err := r.Read(b)
	if n != 3 || err != nil {
		t.Fatalf("first Read = %d, %v", n, err)
	}
	n, err = r.Read(b)
	if n != 2 || err != nil {
		t.Fatalf("second Read = %d, %v", n, err)
	}
	if _, err := r.Read(b); err != io.EOF {
		t.Errorf("third Read err = %v, want EOF", err)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(SoundEat)
}

func TestForEvent(t *testing.T) {
	tests := []struct {
		event game.Event
		want  Sound
		ok    bool
	}{
		{game.EventAteFood, SoundEat, true},
		{game.EventGameOver, SoundGameOver, true},
		{game.EventBoardFull, SoundWin, true},
		{game.EventPaused, SoundClick, true},
		{game.EventResumed, SoundClick, true},
		{game.EventRestarted, SoundClick, true},
		{game.EventStarted, 0, false},
		{game.EventQuit, 0, false},
	}
	for _, tt := range tests {
		got, ok := ForEvent(tt.event)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ForEvent(%v) = %v, %v; want %v, %v", tt.event, got, ok, tt.want, tt.ok)
		}
	}
}
