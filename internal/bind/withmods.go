package bind

// WithMods pairs any shape with the modifiers that must be held alongside it.
// It inherits key/pointer acceptance from the inner shape and is never
// clearable; wrap it in Option for that.
type WithMods[T any, P Shape[T]] struct {
	Bind T         `yaml:"bind"`
	Mods Modifiers `yaml:"mods"`
}

// WithModifiers returns v paired with mods.
func WithModifiers[T any, P Shape[T]](v T, mods Modifiers) WithMods[T, P] {
	return WithMods[T, P]{Bind: v, Mods: mods}
}

func (*WithMods[T, P]) Caps() Caps {
	var inner P
	caps := inner.Caps()
	caps.Clearable = false
	return caps
}

// SetKey sets the inner bind and replaces the stored modifiers with mods.
func (w *WithMods[T, P]) SetKey(k Key, mods Modifiers) {
	P(&w.Bind).SetKey(k, mods)
	w.Mods = mods
}

// SetPointer sets the inner bind and replaces the stored modifiers with mods.
func (w *WithMods[T, P]) SetPointer(p Pointer, mods Modifiers) {
	P(&w.Bind).SetPointer(p, mods)
	w.Mods = mods
}

func (w *WithMods[T, P]) Clear() { unsupported("Clear", w) }

// Format prefixes the inner label with the modifier markers, e.g. "^_A".
func (w *WithMods[T, P]) Format() string {
	return w.Mods.Prefix() + P(&w.Bind).Format()
}

// Down, Pressed and Released only consult the inner bind when the current
// modifiers logically match the stored ones.

func (w *WithMods[T, P]) Down(in InputState) bool {
	return in.Modifiers().MatchesLogically(w.Mods) && P(&w.Bind).Down(in)
}

func (w *WithMods[T, P]) Pressed(in InputState) bool {
	return in.Modifiers().MatchesLogically(w.Mods) && P(&w.Bind).Pressed(in)
}

func (w *WithMods[T, P]) Released(in InputState) bool {
	return in.Modifiers().MatchesLogically(w.Mods) && P(&w.Bind).Released(in)
}

// Modifier composite shapes.
type (
	KeyChord          = WithMods[Key, *Key]
	PointerChord      = WithMods[Pointer, *Pointer]
	KeyOrPointerChord = WithMods[KeyOrPointer, *KeyOrPointer]
)
