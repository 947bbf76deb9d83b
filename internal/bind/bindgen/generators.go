// Package bindgen provides rapid generators for bind values.
package bindgen

import (
	"pgregory.net/rapid"

	"github.com/chatter/keybind/internal/bind"
)

// Key generates any known key.
func Key() *rapid.Generator[bind.Key] {
	return rapid.SampledFrom(bind.Keys())
}

// Pointer generates any known pointer button.
func Pointer() *rapid.Generator[bind.Pointer] {
	return rapid.SampledFrom(bind.Pointers())
}

// Modifiers generates an arbitrary modifier set.
func Modifiers() *rapid.Generator[bind.Modifiers] {
	return rapid.Custom(func(t *rapid.T) bind.Modifiers {
		return bind.Modifiers{
			Ctrl:    rapid.Bool().Draw(t, "ctrl"),
			Shift:   rapid.Bool().Draw(t, "shift"),
			Alt:     rapid.Bool().Draw(t, "alt"),
			Command: rapid.Bool().Draw(t, "command"),
		}
	})
}

// KeyOrPointer generates either case with equal weight.
func KeyOrPointer() *rapid.Generator[bind.KeyOrPointer] {
	return rapid.Custom(func(t *rapid.T) bind.KeyOrPointer {
		if rapid.Bool().Draw(t, "isPointer") {
			return bind.PointerBind(Pointer().Draw(t, "pointer"))
		}
		return bind.KeyBind(Key().Draw(t, "key"))
	})
}

// Option wraps an inner generator, producing unbound values about a quarter
// of the time.
func Option[T any, P bind.Shape[T]](inner *rapid.Generator[T]) *rapid.Generator[bind.Option[T, P]] {
	return rapid.Custom(func(t *rapid.T) bind.Option[T, P] {
		if rapid.IntRange(0, 3).Draw(t, "unbound") == 0 {
			return bind.Option[T, P]{}
		}
		return bind.Some[T, P](inner.Draw(t, "value"))
	})
}

// WithMods pairs an inner generator with arbitrary modifiers.
func WithMods[T any, P bind.Shape[T]](inner *rapid.Generator[T]) *rapid.Generator[bind.WithMods[T, P]] {
	return rapid.Custom(func(t *rapid.T) bind.WithMods[T, P] {
		return bind.WithModifiers[T, P](inner.Draw(t, "bind"), Modifiers().Draw(t, "mods"))
	})
}

// Target generates a pointer to a value of any built-in shape.
func Target() *rapid.Generator[bind.Target] {
	return rapid.OneOf(
		asTarget(Key()),
		asTarget(Pointer()),
		asTarget(KeyOrPointer()),
		asTarget(Option[bind.Key](Key())),
		asTarget(Option[bind.Pointer](Pointer())),
		asTarget(Option[bind.KeyOrPointer](KeyOrPointer())),
		asTarget(WithMods[bind.Key](Key())),
		asTarget(WithMods[bind.Pointer](Pointer())),
		asTarget(WithMods[bind.KeyOrPointer](KeyOrPointer())),
		asTarget(Option[bind.KeyChord](WithMods[bind.Key](Key()))),
		asTarget(Option[bind.PointerChord](WithMods[bind.Pointer](Pointer()))),
		asTarget(Option[bind.KeyOrPointerChord](WithMods[bind.KeyOrPointer](KeyOrPointer()))),
	)
}

func asTarget[T any, P bind.Shape[T]](gen *rapid.Generator[T]) *rapid.Generator[bind.Target] {
	return rapid.Map(gen, func(v T) bind.Target {
		return P(&v)
	})
}
