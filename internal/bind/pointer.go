package bind

import (
	"fmt"
	"strings"
)

// Pointer identifies a pointer (mouse) button.
type Pointer uint8

const (
	// PointerPrimary is the primary (left) button.
	PointerPrimary Pointer = iota
	// PointerSecondary is the secondary (right) button.
	PointerSecondary
	// PointerMiddle is the middle button (wheel click).
	PointerMiddle
	// PointerExtra1 is the first side button, usually "back".
	PointerExtra1
	// PointerExtra2 is the second side button, usually "forward".
	PointerExtra2

	pointerCount
)

var pointerNames = [pointerCount]string{
	PointerPrimary:   "Primary",
	PointerSecondary: "Secondary",
	PointerMiddle:    "Middle",
	PointerExtra1:    "Extra1",
	PointerExtra2:    "Extra2",
}

// Pointers returns every known pointer button.
func Pointers() []Pointer {
	return []Pointer{PointerPrimary, PointerSecondary, PointerMiddle, PointerExtra1, PointerExtra2}
}

// Valid reports whether p is a known button.
func (p Pointer) Valid() bool {
	return p < pointerCount
}

// String returns the symbolic name of the button.
func (p Pointer) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Pointer(%d)", uint8(p))
	}
	return pointerNames[p]
}

// Label returns "M1" through "M5".
func (p Pointer) Label() string {
	if !p.Valid() {
		return p.String()
	}
	return fmt.Sprintf("M%d", int(p)+1)
}

// ParsePointer accepts either the symbolic name ("Secondary") or the
// label form ("M2"), case-insensitive.
func ParsePointer(name string) (Pointer, error) {
	name = strings.TrimSpace(name)
	for _, p := range Pointers() {
		if strings.EqualFold(name, p.String()) || strings.EqualFold(name, p.Label()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPointer, name)
}

var pointerCaps = Caps{AcceptsPointer: true}

func (*Pointer) Caps() Caps { return pointerCaps }

func (p *Pointer) SetKey(Key, Modifiers) { unsupported("SetKey", p) }

func (p *Pointer) SetPointer(button Pointer, _ Modifiers) { *p = button }

func (p *Pointer) Clear() { unsupported("Clear", p) }

func (p *Pointer) Format() string { return p.Label() }

func (p *Pointer) Down(in InputState) bool { return in.PointerDown(*p) }

func (p *Pointer) Pressed(in InputState) bool { return in.PointerPressed(*p) }

func (p *Pointer) Released(in InputState) bool { return in.PointerReleased(*p) }
