package bind

import "fmt"

// Bind values encode as plain YAML data:
//
//	key:          Tab
//	pointer:      Secondary
//	key/pointer:  {key: A} or {pointer: Middle}
//	with mods:    {bind: ..., mods: {ctrl: true}}
//	option:       null when unbound, otherwise the inner value
//
// The methods below implement go-yaml's InterfaceMarshaler and
// InterfaceUnmarshaler.

func (k Key) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, uint8(k))
	}
	return k.String(), nil
}

func (k *Key) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return fmt.Errorf("decoding key: %w", err)
	}
	parsed, err := ParseKey(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (p Pointer) MarshalYAML() (any, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPointer, uint8(p))
	}
	return p.String(), nil
}

func (p *Pointer) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return fmt.Errorf("decoding pointer: %w", err)
	}
	parsed, err := ParsePointer(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (kp KeyOrPointer) MarshalYAML() (any, error) {
	if kp.isPointer {
		v, err := kp.pointer.MarshalYAML()
		return map[string]any{"pointer": v}, err
	}
	v, err := kp.key.MarshalYAML()
	return map[string]any{"key": v}, err
}

func (kp *KeyOrPointer) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Key     *string `yaml:"key"`
		Pointer *string `yaml:"pointer"`
	}
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("decoding key or pointer: %w", err)
	}

	switch {
	case raw.Key != nil && raw.Pointer != nil:
		return fmt.Errorf("%w: both key and pointer set", ErrInvalidBind)
	case raw.Key != nil:
		k, err := ParseKey(*raw.Key)
		if err != nil {
			return err
		}
		*kp = KeyBind(k)
	case raw.Pointer != nil:
		p, err := ParsePointer(*raw.Pointer)
		if err != nil {
			return err
		}
		*kp = PointerBind(p)
	default:
		return fmt.Errorf("%w: expected key or pointer", ErrInvalidBind)
	}
	return nil
}

func (o Option[T, P]) MarshalYAML() (any, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value, nil
}

func (o *Option[T, P]) UnmarshalYAML(unmarshal func(any) error) error {
	var raw any
	if err := unmarshal(&raw); err != nil {
		return err
	}
	if raw == nil {
		o.Clear()
		return nil
	}

	var v T
	if err := unmarshal(&v); err != nil {
		return err
	}
	o.value, o.ok = v, true
	return nil
}

// UnmarshalYAML replaces both the bind and the modifiers, so a decoded chord
// never inherits modifiers from the value it overwrites.
func (w *WithMods[T, P]) UnmarshalYAML(unmarshal func(any) error) error {
	var raw struct {
		Bind *T        `yaml:"bind"`
		Mods Modifiers `yaml:"mods"`
	}
	if err := unmarshal(&raw); err != nil {
		return fmt.Errorf("decoding chord: %w", err)
	}
	if raw.Bind == nil {
		return fmt.Errorf("%w: chord without bind", ErrInvalidBind)
	}
	*w = WithMods[T, P]{Bind: *raw.Bind, Mods: raw.Mods}
	return nil
}
