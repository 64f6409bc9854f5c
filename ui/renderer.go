package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudPadding = 8

type Renderer struct {
	cellSize   int32
	background rl.Color
	snakeColor rl.Color
	headColor  rl.Color
	foodColor  rl.Color
	title      string
}

func NewRenderer(g *game.Game) *Renderer {
	cfg := g.Config()
	snake := toRL(cfg.SnakeColor)
	return &Renderer{
		cellSize:   int32(cfg.TileSize),
		background: toRL(cfg.Background),
		snakeColor: snake,
		headColor: rl.Color{
			R: brighten(snake.R),
			G: brighten(snake.G),
			B: brighten(snake.B),
			A: 255,
		},
		foodColor: toRL(cfg.FoodColor),
	}
}

func toRL(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func brighten(c uint8) uint8 {
	v := float32(c) * 1.3
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Draw renders one frame. It runs every frame regardless of game state.
func (r *Renderer) Draw(g *game.Game) {
	r.updateTitle(g)

	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	state := g.State()
	if state != manager.GameOver {
		r.drawFood(g)
		r.drawSnake(g)
	}
	r.drawHUD(g)

	switch state {
	case manager.Paused:
		r.drawCentered([]overlayLine{
			{"PAUSED - Press P to resume", rl.White},
		})
	case manager.GameOver:
		r.drawGameOver(g)
	}

	rl.EndDrawing()
}

func (r *Renderer) cell(p types.Point) (int32, int32) {
	return int32(p.X) * r.cellSize, int32(p.Y) * r.cellSize
}

func (r *Renderer) drawFood(g *game.Game) {
	food := g.GetFood()
	if food == nil {
		return
	}
	x, y := r.cell(food.Position)
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, r.foodColor)
}

func (r *Renderer) drawSnake(g *game.Game) {
	snake := g.GetSnake()
	// Tail first so the head is drawn on top.
	for i := len(snake.Body) - 1; i >= 1; i-- {
		x, y := r.cell(snake.Body[i])
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, r.snakeColor)
	}
	headX, headY := r.cell(snake.GetHead())
	rl.DrawRectangle(headX, headY, r.cellSize, r.cellSize, r.headColor)
	r.drawHeading(headX, headY, snake.Direction)
}

// drawHeading marks the side of the head the snake is moving towards.
func (r *Renderer) drawHeading(headX, headY int32, dir types.Direction) {
	size := float32(r.cellSize)
	half := size / 2
	x, y := float32(headX), float32(headY)
	switch dir {
	case types.RIGHT:
		rl.DrawTriangle(
			rl.Vector2{X: x + size, Y: y + half},
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Yellow)
	case types.LEFT:
		rl.DrawTriangle(
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + half, Y: y},
			rl.Yellow)
	case types.DOWN:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y + size},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Vector2{X: x, Y: y + half},
			rl.Yellow)
	case types.UP:
		rl.DrawTriangle(
			rl.Vector2{X: x + half, Y: y},
			rl.Vector2{X: x, Y: y + half},
			rl.Vector2{X: x + size, Y: y + half},
			rl.Yellow)
	}
}

func (r *Renderer) fontSize() int32 {
	fs := int32(rl.GetScreenHeight()) / 25
	if fs < 10 {
		fs = 10
	}
	return fs
}

func (r *Renderer) drawHUD(g *game.Game) {
	fs := r.fontSize()
	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), hudPadding, hudPadding, fs, rl.White)
	best := fmt.Sprintf("Best: %d", g.HighScore())
	w := rl.MeasureText(best, fs)
	rl.DrawText(best, int32(rl.GetScreenWidth())-w-hudPadding, hudPadding, fs, rl.LightGray)
}

func (r *Renderer) drawGameOver(g *game.Game) {
	headline := overlayLine{"GAME OVER", rl.Red}
	if g.Outcome() == manager.OutcomeBoardFull {
		headline = overlayLine{"YOU FILLED THE BOARD!", rl.Gold}
	}
	r.drawCentered([]overlayLine{
		headline,
		{fmt.Sprintf("Final Score: %d", g.Score()), rl.White},
		{"Press SPACE to restart or ESC to quit", rl.White},
	})
}

type overlayLine struct {
	text  string
	color rl.Color
}

// drawCentered stacks lines around the middle of the screen on a dimmed band.
func (r *Renderer) drawCentered(lines []overlayLine) {
	fs := r.fontSize()
	lineHeight := fs + fs/2
	sw, sh := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	total := lineHeight * int32(len(lines))
	top := (sh - total) / 2

	rl.DrawRectangle(0, top-hudPadding, sw, total+2*hudPadding, rl.Fade(rl.Black, 0.6))
	for i, l := range lines {
		w := rl.MeasureText(l.text, fs)
		rl.DrawText(l.text, (sw-w)/2, top+int32(i)*lineHeight, fs, l.color)
	}
}

// updateTitle mirrors score and state in the window title.
func (r *Renderer) updateTitle(g *game.Game) {
	title := windowTitle(g.Score(), g.State())
	if title != r.title {
		rl.SetWindowTitle(title)
		r.title = title
	}
}

func windowTitle(score int, state manager.GameState) string {
	switch state {
	case manager.GameOver:
		return fmt.Sprintf("Snake Game - Score: %d - GAME OVER (Press SPACE to restart)", score)
	case manager.Paused:
		return fmt.Sprintf("Snake Game - Score: %d - PAUSED (Press P to resume)", score)
	default:
		return fmt.Sprintf("Snake Game - Score: %d", score)
	}
}
