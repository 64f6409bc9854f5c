package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"time"

	"grid-snake/audio"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func init() {
	// raylib must stay on the thread that created the window.
	runtime.LockOSThread()
}

func main() {
	appLogger := log.New(os.Stdout, "[APP] ", log.LstdFlags)

	cfg := config.Default()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		appLogger.Printf("invalid configuration: %v", err)
		os.Exit(1)
	}

	var listener game.Listener
	if !cfg.Mute {
		player, err := audio.NewPlayer(log.New(os.Stdout, "[AUDIO] ", log.LstdFlags))
		if err != nil {
			appLogger.Printf("audio disabled: %v", err)
		} else {
			listener = player
		}
	}

	opts := []game.Option{game.WithLogger(log.New(os.Stdout, "[GAME] ", log.LstdFlags))}
	if listener != nil {
		opts = append(opts, game.WithListener(listener))
	}
	g, err := game.NewGame(cfg, time.Now(), opts...)
	if err != nil {
		appLogger.Printf("starting game: %v", err)
		os.Exit(1)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "Snake Game")
	defer rl.CloseWindow()
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	renderer := ui.NewRenderer(g)
	appLogger.Printf("window %dx%d, tile %d, move every %s", cfg.ScreenWidth, cfg.ScreenHeight, cfg.TileSize, cfg.UpdateInterval)

	for !g.ShouldQuit() {
		now := time.Now()
		for _, a := range ui.PollActions() {
			g.HandleAction(a, now)
		}
		g.Update(now)
		renderer.Draw(g)
	}
	appLogger.Printf("bye, best score %d over %d games", g.HighScore(), len(g.ScoreHistory()))
}
