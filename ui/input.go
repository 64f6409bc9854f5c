package ui

import (
	"grid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyBindings maps raylib key codes to player actions.
var KeyBindings = map[int32]game.Action{
	rl.KeyUp:     game.ActionUp,
	rl.KeyW:      game.ActionUp,
	rl.KeyDown:   game.ActionDown,
	rl.KeyS:      game.ActionDown,
	rl.KeyLeft:   game.ActionLeft,
	rl.KeyA:      game.ActionLeft,
	rl.KeyRight:  game.ActionRight,
	rl.KeyD:      game.ActionRight,
	rl.KeyP:      game.ActionPause,
	rl.KeySpace:  game.ActionRestart,
	rl.KeyEscape: game.ActionQuit,
}

// PollActions returns the actions for keys pressed since the last frame, in
// the order raylib queued them.
func PollActions() []game.Action {
	var actions []game.Action
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if a, ok := KeyBindings[key]; ok {
			actions = append(actions, a)
		}
	}
	if rl.WindowShouldClose() {
		actions = append(actions, game.ActionQuit)
	}
	return actions
}
