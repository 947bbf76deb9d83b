package bind

// Option makes any shape clearable. The zero value is unbound and formats
// as "None"; live queries on an unbound Option are always false.
type Option[T any, P Shape[T]] struct {
	value T
	ok    bool
}

// Some returns a bound Option holding v.
func Some[T any, P Shape[T]](v T) Option[T, P] {
	return Option[T, P]{value: v, ok: true}
}

// Get returns the held value and whether the Option is bound.
func (o Option[T, P]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether the Option is bound.
func (o Option[T, P]) IsSome() bool {
	return o.ok
}

func (*Option[T, P]) Caps() Caps {
	var inner P
	caps := inner.Caps()
	caps.Clearable = true
	return caps
}

// SetKey binds a fresh inner value built from k and mods. The previous inner
// value, if any, is discarded rather than merged.
func (o *Option[T, P]) SetKey(k Key, mods Modifiers) {
	var v T
	P(&v).SetKey(k, mods)
	o.value, o.ok = v, true
}

// SetPointer binds a fresh inner value built from p and mods.
func (o *Option[T, P]) SetPointer(p Pointer, mods Modifiers) {
	var v T
	P(&v).SetPointer(p, mods)
	o.value, o.ok = v, true
}

func (o *Option[T, P]) Clear() {
	*o = Option[T, P]{}
}

func (o *Option[T, P]) Format() string {
	if !o.ok {
		return unboundLabel
	}
	return P(&o.value).Format()
}

func (o *Option[T, P]) Down(in InputState) bool {
	return o.ok && P(&o.value).Down(in)
}

func (o *Option[T, P]) Pressed(in InputState) bool {
	return o.ok && P(&o.value).Pressed(in)
}

func (o *Option[T, P]) Released(in InputState) bool {
	return o.ok && P(&o.value).Released(in)
}

// Optional shapes.
type (
	OptionalKey               = Option[Key, *Key]
	OptionalPointer           = Option[Pointer, *Pointer]
	OptionalKeyOrPointer      = Option[KeyOrPointer, *KeyOrPointer]
	OptionalKeyChord          = Option[KeyChord, *KeyChord]
	OptionalPointerChord      = Option[PointerChord, *PointerChord]
	OptionalKeyOrPointerChord = Option[KeyOrPointerChord, *KeyOrPointerChord]
)
