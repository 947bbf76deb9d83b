package help

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const (
	separator = " • "
	ellipsis  = "…"
)

// StatusBar renders a single status line: key hints on the left, the last
// status message and the version on the right.
type StatusBar struct {
	width    int
	version  string
	bindings []HelpBinding
	message  string
	isError  bool

	// Styles
	keyStyle  lipgloss.Style
	descStyle lipgloss.Style
	sepStyle  lipgloss.Style
	msgStyle  lipgloss.Style
	errStyle  lipgloss.Style
}

// NewStatusBar creates a new status bar that displays the given version string.
func NewStatusBar(version string) *StatusBar {
	return &StatusBar{
		version:   version,
		keyStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#999999")),
		descStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#777777")),
		sepStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")),
		msgStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		errStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetBindings sets the hints shown on the left.
func (s *StatusBar) SetBindings(bindings []HelpBinding) {
	s.bindings = bindings
}

// SetMessage shows text next to the version until it is replaced.
// An empty text clears the message.
func (s *StatusBar) SetMessage(text string, isError bool) {
	s.message = text
	s.isError = isError
}

// Message returns the current status message.
func (s *StatusBar) Message() string {
	return s.message
}

// View renders the status bar.
func (s *StatusBar) View() string {
	if s.width <= 0 {
		return ""
	}

	// The version is only cut when it is wider than the whole bar.
	version := ansi.Truncate(s.version, s.width, "")
	versionWidth := lipgloss.Width(version)

	// One cell always separates the hints from the version.
	left := s.renderHints(s.width - versionWidth - 1)
	leftWidth := lipgloss.Width(left)

	right := version
	if msg := s.renderMessage(s.width - leftWidth - versionWidth - 3); msg != "" {
		right = msg + "  " + version
	}

	padding := max(s.width-leftWidth-lipgloss.Width(right), 0)

	return left + strings.Repeat(" ", padding) + right
}

// renderHints lays out enabled bindings by Order within budget. Pinned
// bindings are kept first; the rest are dropped from the end, leaving an
// ellipsis.
func (s *StatusBar) renderHints(budget int) string {
	var pinned, regular []HelpBinding
	for _, hb := range s.bindings {
		if !hb.Binding.Enabled() {
			continue
		}
		if hb.Pinned {
			pinned = append(pinned, hb)
		} else {
			regular = append(regular, hb)
		}
	}

	byOrder := func(a, b HelpBinding) int { return a.Order - b.Order }
	slices.SortStableFunc(pinned, byOrder)
	slices.SortStableFunc(regular, byOrder)

	sep := s.sepStyle.Render(separator)
	sepWidth := lipgloss.Width(sep)

	var pinnedParts []string
	pinnedWidth := 0
	for _, hb := range pinned {
		part := s.renderHint(hb)
		if pinnedWidth > 0 {
			pinnedWidth += sepWidth
		}
		pinnedWidth += lipgloss.Width(part)
		pinnedParts = append(pinnedParts, part)
	}

	if pinnedWidth > budget {
		return ""
	}

	// Room for the ellipsis and its separator is reserved up front so a
	// truncated list never overflows.
	reserve := sepWidth + lipgloss.Width(ellipsis)
	if pinnedWidth > 0 {
		reserve += sepWidth
	}

	var parts []string
	used := 0
	truncated := false
	for i, hb := range regular {
		part := s.renderHint(hb)
		w := lipgloss.Width(part)
		if used > 0 {
			w += sepWidth
		}

		rest := pinnedWidth
		if pinnedWidth > 0 {
			rest += sepWidth
		}
		if i < len(regular)-1 {
			rest = pinnedWidth + reserve
		}

		if used+w+rest > budget {
			truncated = true
			break
		}
		used += w
		parts = append(parts, part)
	}

	if truncated {
		if len(parts) == 0 && pinnedWidth+lipgloss.Width(ellipsis)+sepWidth > budget {
			return strings.Join(pinnedParts, sep)
		}
		parts = append(parts, s.sepStyle.Render(ellipsis))
	}

	return strings.Join(append(parts, pinnedParts...), sep)
}

func (s *StatusBar) renderHint(hb HelpBinding) string {
	h := hb.Binding.Help()
	return s.keyStyle.Render(h.Key) + " " + s.descStyle.Render(h.Desc)
}

// renderMessage fits the status message into budget cells.
func (s *StatusBar) renderMessage(budget int) string {
	if s.message == "" || budget < 4 {
		return ""
	}

	style := s.msgStyle
	if s.isError {
		style = s.errStyle
	}

	return style.Render(ansi.Truncate(s.message, budget, ellipsis))
}
