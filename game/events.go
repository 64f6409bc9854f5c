package game

// Event is something that happened during a session that outer layers react to.
type Event int

const (
	EventStarted Event = iota
	EventAteFood
	EventPaused
	EventResumed
	EventGameOver
	EventBoardFull
	EventRestarted
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventStarted:
		return "started"
	case EventAteFood:
		return "ate food"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game over"
	case EventBoardFull:
		return "board full"
	case EventRestarted:
		return "restarted"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Listener receives session events on the game loop thread.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }
