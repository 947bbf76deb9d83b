package bind

// KeyOrPointer is a bind that holds either a key or a pointer button.
// The zero value is a key bind.
type KeyOrPointer struct {
	isPointer bool
	key       Key
	pointer   Pointer
}

// KeyBind returns a KeyOrPointer holding k.
func KeyBind(k Key) KeyOrPointer {
	return KeyOrPointer{key: k}
}

// PointerBind returns a KeyOrPointer holding p.
func PointerBind(p Pointer) KeyOrPointer {
	return KeyOrPointer{isPointer: true, pointer: p}
}

// Key returns the held key, if the bind is a key.
func (kp KeyOrPointer) Key() (Key, bool) {
	return kp.key, !kp.isPointer
}

// Pointer returns the held button, if the bind is a pointer button.
func (kp KeyOrPointer) Pointer() (Pointer, bool) {
	return kp.pointer, kp.isPointer
}

// IsPointer reports whether the pointer case is active.
func (kp KeyOrPointer) IsPointer() bool {
	return kp.isPointer
}

func (kp KeyOrPointer) String() string {
	if kp.isPointer {
		return kp.pointer.String()
	}
	return kp.key.String()
}

var keyOrPointerCaps = Caps{AcceptsKey: true, AcceptsPointer: true}

func (*KeyOrPointer) Caps() Caps { return keyOrPointerCaps }

func (kp *KeyOrPointer) SetKey(k Key, _ Modifiers) { *kp = KeyBind(k) }

func (kp *KeyOrPointer) SetPointer(p Pointer, _ Modifiers) { *kp = PointerBind(p) }

func (kp *KeyOrPointer) Clear() { unsupported("Clear", kp) }

func (kp *KeyOrPointer) Format() string {
	if kp.isPointer {
		return kp.pointer.Label()
	}
	return kp.key.Label()
}

func (kp *KeyOrPointer) Down(in InputState) bool {
	if kp.isPointer {
		return in.PointerDown(kp.pointer)
	}
	return in.KeyDown(kp.key)
}

func (kp *KeyOrPointer) Pressed(in InputState) bool {
	if kp.isPointer {
		return in.PointerPressed(kp.pointer)
	}
	return in.KeyPressed(kp.key)
}

func (kp *KeyOrPointer) Released(in InputState) bool {
	if kp.isPointer {
		return in.PointerReleased(kp.pointer)
	}
	return in.KeyReleased(kp.key)
}
