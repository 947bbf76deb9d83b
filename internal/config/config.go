// Package config loads and saves the binding profile.
//
// The profile lives in $XDG_CONFIG_HOME/keybind/bindings.yaml and holds one
// binding per action. A missing file means defaults; actions missing from the
// file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/natefinch/atomic"

	"github.com/chatter/keybind/internal/bind"
)

// CurrentVersion is the current version of the profile format.
const CurrentVersion = "v1"

// ErrUnsupportedVersion is returned when a profile declares a version this
// build cannot read.
var ErrUnsupportedVersion = errors.New("unsupported profile version")

// dirPermissions is the mode for the config directory.
const dirPermissions = 0o755

// Bindings holds one binding per action. Each field uses the shape the
// action needs.
type Bindings struct {
	// Jump may be left unbound.
	Jump bind.OptionalKey `yaml:"jump"`
	// Fire is always a pointer button.
	Fire bind.Pointer `yaml:"fire"`
	// Use takes either a key or a pointer button.
	Use bind.KeyOrPointer `yaml:"use"`
	// Sprint takes either, with modifiers, and may be unbound.
	Sprint bind.OptionalKeyOrPointerChord `yaml:"sprint"`
	// Inventory is a key with modifiers.
	Inventory bind.KeyChord `yaml:"inventory"`
	// Menu is a plain key.
	Menu bind.Key `yaml:"menu"`
}

// Profile is the on-disk document.
type Profile struct {
	Version  string   `yaml:"version"`
	Bindings Bindings `yaml:"bindings"`
}

// Default returns the profile used when no file exists.
func Default() *Profile {
	return &Profile{
		Version: CurrentVersion,
		Bindings: Bindings{
			Jump: bind.Some[bind.Key](bind.KeySpace),
			Fire: bind.PointerSecondary,
			Use:  bind.KeyBind(bind.KeyE),
			Sprint: bind.Some[bind.KeyOrPointerChord](
				bind.WithModifiers[bind.KeyOrPointer](bind.KeyBind(bind.KeyW), bind.Modifiers{Shift: true}),
			),
			Inventory: bind.WithModifiers[bind.Key](bind.KeyI, bind.Modifiers{Ctrl: true}),
			Menu:      bind.KeyEscape,
		},
	}
}

// DefaultPath returns the profile path under the XDG config directory.
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine home directory: %w", err)
		}

		configDir = filepath.Join(home, ".config")
	}

	return filepath.Join(configDir, "keybind", "bindings.yaml"), nil
}

// Load reads the profile at path. A missing file yields Default.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("reading profile: %w", err)
	}

	return Parse(data)
}

// Parse decodes a profile document. Actions the document names take the
// decoded value, including an explicit null for an optional action; all
// other actions keep their defaults. An empty document yields Default.
func Parse(data []byte) (*Profile, error) {
	var present struct {
		Version  string         `yaml:"version"`
		Bindings map[string]any `yaml:"bindings"`
	}
	if err := yaml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	switch present.Version {
	case "", CurrentVersion:
	default:
		return nil, fmt.Errorf("%w: %q (want %s)", ErrUnsupportedVersion, present.Version, CurrentVersion)
	}

	var decoded Profile
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	profile := Default()
	for _, f := range actionFields {
		value, ok := present.Bindings[f.name]
		if !ok {
			continue
		}
		if value == nil && !f.target(&profile.Bindings).Caps().Clearable {
			return nil, fmt.Errorf("parsing profile: bindings.%s: %w", f.name, ErrNotClearable)
		}
		f.take(&profile.Bindings, &decoded.Bindings)
	}

	return profile, nil
}

// ErrNotClearable is returned when a profile sets null on an action that
// must always be bound.
var ErrNotClearable = errors.New("action cannot be unbound")

// actionFields maps each yaml key under bindings to its field.
var actionFields = []struct {
	name   string
	target func(b *Bindings) bind.Target
	take   func(dst, src *Bindings)
}{
	{"jump", func(b *Bindings) bind.Target { return &b.Jump }, func(dst, src *Bindings) { dst.Jump = src.Jump }},
	{"fire", func(b *Bindings) bind.Target { return &b.Fire }, func(dst, src *Bindings) { dst.Fire = src.Fire }},
	{"use", func(b *Bindings) bind.Target { return &b.Use }, func(dst, src *Bindings) { dst.Use = src.Use }},
	{"sprint", func(b *Bindings) bind.Target { return &b.Sprint }, func(dst, src *Bindings) { dst.Sprint = src.Sprint }},
	{"inventory", func(b *Bindings) bind.Target { return &b.Inventory }, func(dst, src *Bindings) { dst.Inventory = src.Inventory }},
	{"menu", func(b *Bindings) bind.Target { return &b.Menu }, func(dst, src *Bindings) { dst.Menu = src.Menu }},
}

// Save writes the profile to path atomically, creating its directory.
func (p *Profile) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	p.Version = CurrentVersion

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	return nil
}
