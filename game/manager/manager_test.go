package manager

import (
	"testing"

	"grid-snake/game/entity"
	"grid-snake/game/types"

	"github.com/pkg/errors"
)

func TestRespawnAvoidsOccupied(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	fm := NewFoodManager(42)
	var occupied []types.Point
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			occupied = append(occupied, types.Point{X: x, Y: y})
		}
	}
	for i := 0; i < 200; i++ {
		food, err := fm.Respawn(occupied, grid)
		if err != nil {
			t.Fatalf("Respawn: %v", err)
		}
		if food.Position.Y != 3 {
			t.Fatalf("food at %v, want row 3", food.Position)
		}
	}
}

func TestRespawnCoversEveryFreeCell(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	occupied := []types.Point{{X: 1, Y: 1}, {X: 0, Y: 0}}
	fm := NewFoodManager(7)
	counts := make(map[types.Point]int)
	const rounds = 7000
	for i := 0; i < rounds; i++ {
		food, err := fm.Respawn(occupied, grid)
		if err != nil {
			t.Fatalf("Respawn: %v", err)
		}
		counts[food.Position]++
	}
	if len(counts) != 7 {
		t.Fatalf("hit %d distinct cells, want 7", len(counts))
	}
	for p, n := range counts {
		// Expect ~1000 each; a wide band keeps the check stable.
		if n < 800 || n > 1200 {
			t.Errorf("cell %v chosen %d times out of %d", p, n, rounds)
		}
	}
}

func TestRespawnBoardFull(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	occupied := []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	fm := NewFoodManager(1)
	food, err := fm.Respawn(occupied, grid)
	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("err = %v, want ErrBoardFull", err)
	}
	if food != nil || fm.Food() != nil {
		t.Error("food left on a full board")
	}
}

func TestRespawnDeterministicForSeed(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 20}
	a, b := NewFoodManager(99), NewFoodManager(99)
	for i := 0; i < 10; i++ {
		fa, _ := a.Respawn(nil, grid)
		fb, _ := b.Respawn(nil, grid)
		if fa.Position != fb.Position {
			t.Fatalf("round %d: %v != %v", i, fa.Position, fb.Position)
		}
	}
}

func TestCollisionManager(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 10, Height: 10})
	tests := []struct {
		name string
		next types.Point
		want CollisionType
	}{
		{"inside", types.Point{X: 5, Y: 5}, NoCollision},
		{"left edge", types.Point{X: -1, Y: 5}, WallCollision},
		{"right edge", types.Point{X: 10, Y: 5}, WallCollision},
		{"top edge", types.Point{X: 5, Y: -1}, WallCollision},
		{"bottom edge", types.Point{X: 5, Y: 10}, WallCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.CheckMove(tt.next); got != tt.want {
				t.Errorf("CheckMove(%v) = %v, want %v", tt.next, got, tt.want)
			}
		})
	}

	s := entity.NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT, 5)
	for _, d := range []types.Direction{types.UP, types.LEFT, types.DOWN} {
		s.SetDirection(d)
		s.Move()
	}
	if got := cm.CheckSnake(s); got != SelfCollision {
		t.Errorf("CheckSnake = %v, want self", got)
	}
	if !cm.IsFoodCollision(types.Point{X: 1, Y: 1}, entity.NewFood(types.Point{X: 1, Y: 1})) {
		t.Error("IsFoodCollision = false on food cell")
	}
	if cm.IsFoodCollision(types.Point{X: 1, Y: 1}, nil) {
		t.Error("IsFoodCollision = true with no food")
	}
}

func TestStateTransitions(t *testing.T) {
	sm := NewStateManager()
	if sm.State() != Running {
		t.Fatalf("initial state = %v, want running", sm.State())
	}
	if sm.Restart() {
		t.Error("Restart succeeded while running")
	}
	if !sm.TogglePause() || sm.State() != Paused {
		t.Fatalf("pause: state = %v", sm.State())
	}
	if sm.End(OutcomeWall) {
		t.Error("End succeeded while paused")
	}
	if !sm.TogglePause() || sm.State() != Running {
		t.Fatalf("resume: state = %v", sm.State())
	}

	sm.AddScore(3)
	if !sm.End(OutcomeSelf) || sm.State() != GameOver {
		t.Fatalf("end: state = %v", sm.State())
	}
	if sm.Outcome() != OutcomeSelf {
		t.Errorf("Outcome() = %v, want self", sm.Outcome())
	}
	if sm.TogglePause() {
		t.Error("TogglePause succeeded in game over")
	}
	if !sm.Restart() || sm.State() != Running || sm.Score() != 0 || sm.Outcome() != OutcomeNone {
		t.Errorf("restart: state=%v score=%d outcome=%v", sm.State(), sm.Score(), sm.Outcome())
	}
	if sm.GetHighScore() != 3 {
		t.Errorf("GetHighScore() = %d, want 3", sm.GetHighScore())
	}
	if h := sm.GetScoreHistory(); len(h) != 1 || h[0] != 3 {
		t.Errorf("GetScoreHistory() = %v, want [3]", h)
	}
}

func TestAddScoreIgnoresNonPositive(t *testing.T) {
	sm := NewStateManager()
	sm.AddScore(2)
	sm.AddScore(0)
	sm.AddScore(-5)
	if sm.Score() != 2 {
		t.Errorf("Score() = %d, want 2", sm.Score())
	}
}
