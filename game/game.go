package game

import (
	"io"
	"log"
	"time"

	"grid-snake/config"
	"grid-snake/game/entity"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Action is a player command decoded from input.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
	ActionQuit
)

var actionDirections = map[Action]types.Direction{
	ActionUp:    types.UP,
	ActionDown:  types.DOWN,
	ActionLeft:  types.LEFT,
	ActionRight: types.RIGHT,
}

// Game is one play session: the snake, the food and the state machine that
// ties them together. All methods must be called from the game loop thread.
type Game struct {
	UUID  string
	Grid  types.Grid
	Steps int

	cfg          config.Config
	snake        *entity.Snake
	ticker       *Ticker
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	listener     Listener
	logger       *log.Logger
	quit         bool
}

// Option customises a Game at construction.
type Option func(*Game)

// WithLogger sets the logger for session lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithListener registers l for session events.
func WithListener(l Listener) Option {
	return func(g *Game) { g.listener = l }
}

// NewGame validates cfg and starts a running session at now.
func NewGame(cfg config.Config, now time.Time, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(now.UnixNano())
	}

	grid := cfg.Grid()
	g := &Game{
		Grid:         grid,
		cfg:          cfg,
		ticker:       NewTicker(cfg.UpdateInterval, now),
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(seed),
		stateMgr:     manager.NewStateManager(),
		logger:       log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.reset(now); err != nil {
		return nil, err
	}
	g.logger.Printf("session %s started on a %dx%d grid (seed %d)", g.UUID, grid.Width, grid.Height, seed)
	g.emit(EventStarted)
	return g, nil
}

// reset puts a fresh snake at the centre and places the first food.
func (g *Game) reset(now time.Time) error {
	g.UUID = uuid.New().String()
	g.Steps = 0
	g.snake = entity.NewSnake(g.Grid.Center(), types.RIGHT, g.cfg.InitialLength)
	g.ticker.Reset(now)
	if _, err := g.foodMgr.Respawn(g.snake.Body, g.Grid); err != nil {
		return errors.Wrap(err, "placing first food")
	}
	return nil
}

// HandleAction applies a player command received at now.
func (g *Game) HandleAction(a Action, now time.Time) {
	switch a {
	case ActionQuit:
		if !g.quit {
			g.quit = true
			g.logger.Printf("session %s quit with score %d", g.UUID, g.Score())
			g.emit(EventQuit)
		}
	case ActionPause:
		if !g.stateMgr.TogglePause() {
			return
		}
		if g.stateMgr.State() == manager.Paused {
			g.ticker.Pause(now)
			g.emit(EventPaused)
		} else {
			g.ticker.Resume(now)
			g.emit(EventResumed)
		}
	case ActionRestart:
		g.Restart(now)
	default:
		dir, ok := actionDirections[a]
		if ok && g.stateMgr.State() == manager.Running {
			g.snake.SetDirection(dir)
		}
	}
}

// Restart begins a new game if the current one is over.
func (g *Game) Restart(now time.Time) bool {
	if !g.stateMgr.Restart() {
		return false
	}
	if err := g.reset(now); err != nil {
		// The fresh snake is shorter than a validated grid, so this only
		// happens if the board is degenerate; end the new game at once.
		g.logger.Printf("restart failed: %v", err)
		g.stateMgr.End(manager.OutcomeBoardFull)
		return false
	}
	g.logger.Printf("session %s restarted", g.UUID)
	g.emit(EventRestarted)
	return true
}

// Update runs one logic tick if the session is running and the interval has elapsed.
func (g *Game) Update(now time.Time) bool {
	if g.stateMgr.State() != manager.Running {
		return false
	}
	if !g.ticker.Due(now) {
		return false
	}
	g.Step()
	return true
}

// Step advances the session by exactly one tick, ignoring the clock.
func (g *Game) Step() {
	if g.stateMgr.State() != manager.Running {
		return
	}
	g.Steps++

	next := g.snake.NextHead()
	if c := g.collisionMgr.CheckMove(next); c != manager.NoCollision {
		g.end(manager.OutcomeFor(c))
		return
	}

	ate := g.collisionMgr.IsFoodCollision(next, g.foodMgr.Food())
	if ate {
		g.snake.Grow(1)
	}
	g.snake.Move()

	if c := g.collisionMgr.CheckSnake(g.snake); c != manager.NoCollision {
		g.end(manager.OutcomeFor(c))
		return
	}

	if !ate {
		return
	}
	g.stateMgr.AddScore(g.cfg.ScorePerFood)
	g.emit(EventAteFood)
	if _, err := g.foodMgr.Respawn(g.snake.Body, g.Grid); err != nil {
		if errors.Is(err, manager.ErrBoardFull) {
			g.end(manager.OutcomeBoardFull)
			return
		}
		g.logger.Printf("respawning food: %v", err)
	}
}

func (g *Game) end(outcome manager.Outcome) {
	if !g.stateMgr.End(outcome) {
		return
	}
	g.logger.Printf("session %s over: %s after %d steps, score %d", g.UUID, outcome, g.Steps, g.Score())
	if outcome == manager.OutcomeBoardFull {
		g.emit(EventBoardFull)
		return
	}
	g.emit(EventGameOver)
}

func (g *Game) emit(e Event) {
	if g.listener != nil {
		g.listener.OnEvent(e)
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// GetFood returns the food, nil once the board is full.
func (g *Game) GetFood() *entity.Food {
	return g.foodMgr.Food()
}

func (g *Game) State() manager.GameState {
	return g.stateMgr.State()
}

func (g *Game) Outcome() manager.Outcome {
	return g.stateMgr.Outcome()
}

func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) ScoreHistory() []int {
	return g.stateMgr.GetScoreHistory()
}

func (g *Game) Config() config.Config {
	return g.cfg
}

// ShouldQuit reports whether the player asked to leave.
func (g *Game) ShouldQuit() bool {
	return g.quit
}
