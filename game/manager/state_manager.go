package manager

// GameState is the phase of a play session.
type GameState int

const (
	Running GameState = iota
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Outcome records why the last game ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWall
	OutcomeSelf
	OutcomeBoardFull
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWall:
		return "hit the wall"
	case OutcomeSelf:
		return "bit itself"
	case OutcomeBoardFull:
		return "filled the board"
	default:
		return "none"
	}
}

// OutcomeFor maps a collision onto the outcome it ends the game with.
func OutcomeFor(c CollisionType) Outcome {
	switch c {
	case WallCollision:
		return OutcomeWall
	case SelfCollision:
		return OutcomeSelf
	default:
		return OutcomeNone
	}
}

// StateManager owns the session state machine and the score. Best score and
// history live only as long as the process.
type StateManager struct {
	state        GameState
	outcome      Outcome
	score        int
	highScore    int
	scoreHistory []int
}

func NewStateManager() *StateManager {
	return &StateManager{
		state:        Running,
		scoreHistory: make([]int, 0),
	}
}

func (sm *StateManager) State() GameState {
	return sm.state
}

func (sm *StateManager) Outcome() Outcome {
	return sm.outcome
}

// TogglePause flips Running and Paused. It reports false in GameOver.
func (sm *StateManager) TogglePause() bool {
	switch sm.state {
	case Running:
		sm.state = Paused
	case Paused:
		sm.state = Running
	default:
		return false
	}
	return true
}

// End moves a running game to GameOver and records the final score.
func (sm *StateManager) End(outcome Outcome) bool {
	if sm.state != Running {
		return false
	}
	sm.state = GameOver
	sm.outcome = outcome
	sm.AddToHistory(sm.score)
	return true
}

// Restart leaves GameOver for a fresh Running game with zero score.
func (sm *StateManager) Restart() bool {
	if sm.state != GameOver {
		return false
	}
	sm.state = Running
	sm.outcome = OutcomeNone
	sm.score = 0
	return true
}

func (sm *StateManager) AddScore(points int) {
	if points <= 0 {
		return
	}
	sm.score += points
	sm.UpdateScore(sm.score)
}

func (sm *StateManager) Score() int {
	return sm.score
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}
