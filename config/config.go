package config

import (
	"flag"
	"time"

	"grid-snake/game/types"

	"github.com/pkg/errors"
)

// Config holds the static game settings.
type Config struct {
	ScreenWidth    int           // Window width in pixels
	ScreenHeight   int           // Window height in pixels
	TileSize       int           // Edge of one grid cell in pixels
	UpdateInterval time.Duration // Time between snake moves
	TargetFPS      int           // Render rate

	InitialLength int // Segments the snake starts with
	ScorePerFood  int // Points added per food eaten

	Background types.Color
	SnakeColor types.Color
	FoodColor  types.Color

	Seed uint64 // Food RNG seed, 0 picks one from the clock
	Mute bool
}

// Default returns the settings the game ships with.
func Default() Config {
	return Config{
		ScreenWidth:    800,
		ScreenHeight:   600,
		TileSize:       20,
		UpdateInterval: 150 * time.Millisecond,
		TargetFPS:      60,
		InitialLength:  3,
		ScorePerFood:   1,
		Background:     types.Color{R: 0, G: 0, B: 0},
		SnakeColor:     types.Color{R: 0, G: 200, B: 0},
		FoodColor:      types.Color{R: 255, G: 0, B: 0},
	}
}

// Grid returns the playing field in cells.
func (c Config) Grid() types.Grid {
	return types.Grid{
		Width:  c.ScreenWidth / c.TileSize,
		Height: c.ScreenHeight / c.TileSize,
	}
}

// Validate checks that the settings describe a playable board.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TileSize <= 0 {
		return errors.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.UpdateInterval <= 0 {
		return errors.Errorf("update interval must be positive, got %s", c.UpdateInterval)
	}
	if c.TargetFPS <= 0 {
		return errors.Errorf("target fps must be positive, got %d", c.TargetFPS)
	}
	if c.ScorePerFood <= 0 {
		return errors.Errorf("score per food must be positive, got %d", c.ScorePerFood)
	}

	grid := c.Grid()
	if grid.Width < 3 || grid.Height < 3 {
		return errors.Errorf("grid %dx%d is smaller than 3x3", grid.Width, grid.Height)
	}
	// The snake starts at the centre heading right with its body trailing left.
	if c.InitialLength < 1 || c.InitialLength > grid.Center().X+1 {
		return errors.Wrapf(ErrSnakeDoesNotFit, "length %d on a %d wide grid", c.InitialLength, grid.Width)
	}
	return nil
}

// ErrSnakeDoesNotFit is returned when the initial snake would start outside the grid.
var ErrSnakeDoesNotFit = errors.New("initial snake does not fit the grid")

// BindFlags registers command-line overrides for c on fs.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "Window width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "Window height in pixels")
	fs.IntVar(&c.TileSize, "tile", c.TileSize, "Grid cell size in pixels")
	fs.DurationVar(&c.UpdateInterval, "speed", c.UpdateInterval, "Time between moves (lower = faster)")
	fs.IntVar(&c.InitialLength, "length", c.InitialLength, "Initial snake length")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Food placement seed (0 = random)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound effects")
}
