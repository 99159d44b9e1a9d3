package breakout

import "fmt"

// EventKind identifies a notable simulation event.
type EventKind int

const (
	EventPhaseChanged EventKind = iota
	EventWallBounce
	EventPaddleHit
	EventBlockDestroyed
	EventLifeLost
	EventLevelUp
	EventGameOver
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventPhaseChanged:
		return "phase_changed"
	case EventWallBounce:
		return "wall_bounce"
	case EventPaddleHit:
		return "paddle_hit"
	case EventBlockDestroyed:
		return "block_destroyed"
	case EventLifeLost:
		return "life_lost"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event describes something that just happened in the simulation.
// Score, Lives, Level and Phase are the values after the event.
type Event struct {
	Kind   EventKind
	Phase  Phase
	Score  int
	Lives  int
	Level  int
	Points int // EventBlockDestroyed only
}

// Observer receives engine events. Observers run synchronously inside the
// frame update and must not call back into the engine.
type Observer func(Event)

func (e *Engine) emit(kind EventKind, points int) {
	if len(e.observers) == 0 {
		return
	}
	ev := Event{
		Kind:   kind,
		Phase:  e.state.Phase,
		Score:  e.state.Score,
		Lives:  e.state.Lives,
		Level:  e.state.Level,
		Points: points,
	}
	for _, o := range e.observers {
		o(ev)
	}
}
