package ui

import (
	"strings"
	"testing"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"
)

func TestWindowTitle(t *testing.T) {
	tests := []struct {
		state manager.GameState
		want  string
	}{
		{manager.Running, "Snake Game - Score: 4"},
		{manager.Paused, "PAUSED"},
		{manager.GameOver, "GAME OVER"},
	}
	for _, tt := range tests {
		got := windowTitle(4, tt.state)
		if !strings.Contains(got, tt.want) {
			t.Errorf("windowTitle(4, %v) = %q, want it to contain %q", tt.state, got, tt.want)
		}
	}
}

func TestBrightenSaturates(t *testing.T) {
	if got := brighten(100); got != 130 {
		t.Errorf("brighten(100) = %d, want 130", got)
	}
	if got := brighten(250); got != 255 {
		t.Errorf("brighten(250) = %d, want 255", got)
	}
}

func TestToRL(t *testing.T) {
	c := toRL(types.Color{R: 1, G: 2, B: 3})
	if c.R != 1 || c.G != 2 || c.B != 3 || c.A != 255 {
		t.Errorf("toRL = %+v", c)
	}
}

func TestKeyBindingsCoverActions(t *testing.T) {
	seen := make(map[game.Action]bool)
	for _, a := range KeyBindings {
		seen[a] = true
	}
	for _, a := range []game.Action{
		game.ActionUp, game.ActionDown, game.ActionLeft, game.ActionRight,
		game.ActionPause, game.ActionRestart, game.ActionQuit,
	} {
		if !seen[a] {
			t.Errorf("no key bound to action %d", a)
		}
	}
}
