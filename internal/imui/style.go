package imui

import "charm.land/lipgloss/v2"

// Colors
var (
	accentColor   = lipgloss.Color("62")  // Purple
	fieldColor    = lipgloss.Color("237") // Dark gray
	textColor     = lipgloss.Color("252") // Light gray
	dimColor      = lipgloss.Color("241") // Gray
	selectedColor = lipgloss.Color("86")  // Cyan
)

// Margin is the spacing between an overlay's border and its contents.
type Margin struct {
	Top, Right, Bottom, Left int
}

// MarginSame returns a margin of n cells on every side.
func MarginSame(n int) Margin {
	return Margin{Top: n, Right: n, Bottom: n, Left: n}
}

// Style holds the look and spacing shared by every widget in a Context.
// Widgets may change it for the duration of a call but must restore it.
type Style struct {
	// InteractSize is the size of a fixed-size interactive element.
	InteractSize Size
	// ItemSpacing is the gap left after each allocation.
	ItemSpacing Size
	// WindowMargin pads the inside of overlay frames.
	WindowMargin Margin

	Normal   lipgloss.Style
	Selected lipgloss.Style
	Label    lipgloss.Style
	Button   lipgloss.Style
	Frame    lipgloss.Style
}

// DefaultStyle returns the stock style.
func DefaultStyle() *Style {
	return &Style{
		InteractSize: Size{W: 8, H: 1},
		ItemSpacing:  Size{W: 1, H: 0},
		WindowMargin: Margin{Right: 1, Left: 1},

		Normal: lipgloss.NewStyle().
			Foreground(textColor).
			Background(fieldColor),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(selectedColor),
		Label: lipgloss.NewStyle().
			Foreground(textColor),
		Button: lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor),
	}
}

// Interact returns the visuals for an interactive element.
func (s *Style) Interact(selected bool) lipgloss.Style {
	if selected {
		return s.Selected
	}
	return s.Normal
}
