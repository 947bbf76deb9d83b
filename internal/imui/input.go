package imui

import "github.com/chatter/keybind/internal/bind"

// EventKind tags an input event.
type EventKind uint8

const (
	KeyPress EventKind = iota + 1
	KeyRelease
	PointerPress
	PointerRelease
)

func (k EventKind) String() string {
	switch k {
	case KeyPress:
		return "key-press"
	case KeyRelease:
		return "key-release"
	case PointerPress:
		return "pointer-press"
	case PointerRelease:
		return "pointer-release"
	default:
		return "unknown"
	}
}

// Event is a single discrete input event. Key is set for key events, Button
// and Pos for pointer events.
type Event struct {
	Kind   EventKind
	Key    bind.Key
	Button bind.Pointer
	Pos    Pos
	Mods   bind.Modifiers
}

// IsPress reports whether the event is a key or pointer press.
func (e Event) IsPress() bool {
	return e.Kind == KeyPress || e.Kind == PointerPress
}

// Input is the snapshot of one frame: the ordered events that arrived since
// the previous frame plus the held state they leave behind.
//
// Most terminals never report key releases. Until the first release event is
// seen, a key and its modifiers count as held only during the frame in which
// the key was pressed.
type Input struct {
	Events []Event

	mods        bind.Modifiers
	pointer     Pos
	keysDown    map[bind.Key]bool
	buttonsDown map[bind.Pointer]bool
	keyReleases bool
}

func newInput() *Input {
	return &Input{
		keysDown:    make(map[bind.Key]bool),
		buttonsDown: make(map[bind.Pointer]bool),
	}
}

// begin installs the events of a new frame and folds them into the held state.
func (in *Input) begin(events []Event) {
	if !in.keyReleases {
		clear(in.keysDown)
		in.mods = bind.Modifiers{}
	}
	in.Events = events

	for _, ev := range events {
		in.mods = ev.Mods
		switch ev.Kind {
		case KeyPress:
			in.keysDown[ev.Key] = true
		case KeyRelease:
			in.keyReleases = true
			delete(in.keysDown, ev.Key)
		case PointerPress:
			in.pointer = ev.Pos
			in.buttonsDown[ev.Button] = true
		case PointerRelease:
			in.pointer = ev.Pos
			delete(in.buttonsDown, ev.Button)
		}
	}
}

// FirstPress returns the first key or pointer press of the frame.
func (in *Input) FirstPress() (Event, bool) {
	for _, ev := range in.Events {
		if ev.IsPress() {
			return ev, true
		}
	}
	return Event{}, false
}

// PointerPos is the last known pointer position.
func (in *Input) PointerPos() Pos {
	return in.pointer
}

func (in *Input) Modifiers() bind.Modifiers {
	return in.mods
}

func (in *Input) KeyDown(k bind.Key) bool {
	return in.keysDown[k]
}

func (in *Input) KeyPressed(k bind.Key) bool {
	return in.hasKey(KeyPress, k)
}

func (in *Input) KeyReleased(k bind.Key) bool {
	return in.hasKey(KeyRelease, k)
}

func (in *Input) PointerDown(p bind.Pointer) bool {
	return in.buttonsDown[p]
}

func (in *Input) PointerPressed(p bind.Pointer) bool {
	return in.hasButton(PointerPress, p)
}

func (in *Input) PointerReleased(p bind.Pointer) bool {
	return in.hasButton(PointerRelease, p)
}

func (in *Input) hasKey(kind EventKind, k bind.Key) bool {
	for _, ev := range in.Events {
		if ev.Kind == kind && ev.Key == k {
			return true
		}
	}
	return false
}

func (in *Input) hasButton(kind EventKind, p bind.Pointer) bool {
	for _, ev := range in.Events {
		if ev.Kind == kind && ev.Button == p {
			return true
		}
	}
	return false
}

var _ bind.InputState = (*Input)(nil)
