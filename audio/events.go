package audio

import "grid-snake/game"

// ForEvent picks the effect for a session event.
func ForEvent(e game.Event) (Sound, bool) {
	switch e {
	case game.EventAteFood:
		return SoundEat, true
	case game.EventGameOver:
		return SoundGameOver, true
	case game.EventBoardFull:
		return SoundWin, true
	case game.EventPaused, game.EventResumed, game.EventRestarted:
		return SoundClick, true
	}
	return 0, false
}

// OnEvent lets a Player listen to a game directly.
func (p *Player) OnEvent(e game.Event) {
	if s, ok := ForEvent(e); ok {
		p.Play(s)
	}
}
