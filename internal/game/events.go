package game

// EventKind tags a side effect that occurred during an engine step.
type EventKind int

const (
	EventMoved EventKind = iota
	EventRotated
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventPaused
	EventUnpaused
	EventRestarted
	EventGameOver
)

// Event is a side effect reported to the platform layer. Lines is set for
// EventLinesCleared, Level for EventLevelUp.
type Event struct {
	Kind  EventKind
	Lines int
	Level int
}

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "Moved"
	case EventRotated:
		return "Rotated"
	case EventLocked:
		return "Locked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventPaused:
		return "Paused"
	case EventUnpaused:
		return "Unpaused"
	case EventRestarted:
		return "Restarted"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
