package planet

import "github.com/taigrr/planet/pkg/math3d"

// EventKind identifies an Event.
type EventKind int

const (
	EventTap EventKind = iota + 1
	EventLongPress
	EventDoubleTap
	EventRotation
	EventScale
)

func (k EventKind) String() string {
	switch k {
	case EventTap:
		return "tap"
	case EventLongPress:
		return "long-press"
	case EventDoubleTap:
		return "double-tap"
	case EventRotation:
		return "rotation"
	case EventScale:
		return "scale"
	}
	return "unknown"
}

// Event reports something the host may react to. Index and Label are set
// for tap and long-press; Index is -1 otherwise.
type Event struct {
	Kind     EventKind
	Index    int
	Label    Label
	Rotation math3d.Quat
	Scale    float64
}

// Sink receives events synchronously from the goroutine driving the Planet.
type Sink func(Event)

func (p *Planet) emit(e Event) {
	if p.sink != nil {
		p.sink(e)
	}
}
