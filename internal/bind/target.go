// Package bind models values that can be bound to a key or pointer action.
//
// Every bindable shape implements Target. The base shapes are Key, Pointer and
// KeyOrPointer; Option and WithMods are generic combinators that add
// clearability and modifier tracking to any base shape:
//
//	var jump bind.OptionalKey                       // Option[Key]
//	var fire bind.Pointer = bind.PointerSecondary   // always bound
//	var sprint bind.OptionalKeyOrPointerChord       // Option[(KeyOrPointer, Modifiers)]
//
// What a shape accepts is a static property of its type, reported by Caps.
// Calling SetKey, SetPointer or Clear on a shape whose Caps forbid it panics
// with an *UnsupportedError.
package bind

// Caps describes what a bind shape can hold. It depends only on the type of
// the shape, never on its current value.
type Caps struct {
	AcceptsKey     bool
	AcceptsPointer bool
	Clearable      bool

	// BindPrimary lets the capture widget bind the primary pointer button,
	// which is otherwise reserved for interacting with the widget itself.
	BindPrimary bool
}

// InputState is the per-frame input snapshot that live queries run against.
type InputState interface {
	KeyDown(k Key) bool
	KeyPressed(k Key) bool
	KeyReleased(k Key) bool
	PointerDown(p Pointer) bool
	PointerPressed(p Pointer) bool
	PointerReleased(p Pointer) bool
	Modifiers() Modifiers
}

// Target is a mutable bind value.
//
// Caps must not read the receiver: it is called on nil pointers to learn the
// capabilities of a shape before any value exists.
type Target interface {
	Caps() Caps

	// SetKey assigns a key bind.
	SetKey(k Key, mods Modifiers)
	// SetPointer assigns a pointer bind.
	SetPointer(p Pointer, mods Modifiers)
	// Clear resets the bind to its unbound state.
	Clear()

	// Format renders a short label for the bind.
	Format() string

	// Down reports whether the bind is currently held.
	Down(in InputState) bool
	// Pressed reports whether the bind went down this frame.
	Pressed(in InputState) bool
	// Released reports whether the bind went up this frame.
	Released(in InputState) bool
}

// Shape constrains P to a pointer to T that implements Target. It lets the
// generic combinators reach the methods of their inner value.
type Shape[T any] interface {
	*T
	Target
}

// CapsOf returns the capabilities of shape P without needing a value.
func CapsOf[P Target]() Caps {
	var p P
	return p.Caps()
}

// unboundLabel is what every clearable shape formats to when empty.
const unboundLabel = "None"
