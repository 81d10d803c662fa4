package game

import "classic-snake/game/types"

// Key is a frontend independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Direction maps arrow keys to directions.
func (k Key) Direction() (types.Direction, bool) {
	switch k {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	default:
		return 0, false
	}
}

type EventKind int

const (
	RenderEvent EventKind = iota
	UpdateEvent
	PressEvent
)

// Event is one item of the serialized stream a host loop feeds the game.
// Key is only set for PressEvent.
type Event struct {
	Kind EventKind
	Key  Key
}

// Renderer draws the game. It must not change simulation state.
type Renderer interface {
	Draw(g *Game)
}

// Handle dispatches a single host event. It returns false when an update
// event ended the game or the game was already over; render and press
// events always return true.
func (g *Game) Handle(ev Event, r Renderer) bool {
	switch ev.Kind {
	case RenderEvent:
		if r != nil {
			r.Draw(g)
		}
	case UpdateEvent:
		return g.Update()
	case PressEvent:
		if !g.Over() {
			g.Pressed(ev.Key)
		}
	}
	return true
}
