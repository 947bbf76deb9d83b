package bind

import "strings"

// Modifiers is the state of the modifier keys that accompany a bind.
//
// Command is the platform command key (Cmd on macOS, Super/Meta elsewhere).
type Modifiers struct {
	Ctrl    bool `yaml:"ctrl,omitempty"`
	Shift   bool `yaml:"shift,omitempty"`
	Alt     bool `yaml:"alt,omitempty"`
	Command bool `yaml:"command,omitempty"`
}

// IsEmpty returns true if no modifier is set.
func (m Modifiers) IsEmpty() bool {
	return m == Modifiers{}
}

// CtrlOrCommand reports whether control or the command key is set.
func (m Modifiers) CtrlOrCommand() bool {
	return m.Ctrl || m.Command
}

// MatchesLogically compares m against a stored pattern, treating control and
// command as the same key. Shift and alt must match exactly.
func (m Modifiers) MatchesLogically(pattern Modifiers) bool {
	return m.CtrlOrCommand() == pattern.CtrlOrCommand() &&
		m.Shift == pattern.Shift &&
		m.Alt == pattern.Alt
}

// Prefix returns the label prefix for the modifiers: '^' for ctrl/command,
// '_' for shift and '*' for alt, always in that order.
func (m Modifiers) Prefix() string {
	var b strings.Builder
	b.Grow(3)
	if m.CtrlOrCommand() {
		b.WriteByte('^')
	}
	if m.Shift {
		b.WriteByte('_')
	}
	if m.Alt {
		b.WriteByte('*')
	}
	return b.String()
}

// String returns a human-readable form like "Ctrl+Shift".
func (m Modifiers) String() string {
	var parts []string
	if m.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if m.Shift {
		parts = append(parts, "Shift")
	}
	if m.Alt {
		parts = append(parts, "Alt")
	}
	if m.Command {
		parts = append(parts, "Cmd")
	}
	return strings.Join(parts, "+")
}
