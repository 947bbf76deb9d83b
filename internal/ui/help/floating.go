package help

import (
	"slices"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// FloatingHelp renders a modal with all keybindings organized by category.
type FloatingHelp struct {
	width    int
	height   int
	bindings []HelpBinding

	// Styles (cached for frame size calculations)
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
	footerStyle lipgloss.Style
	keyStyle    lipgloss.Style
	descStyle   lipgloss.Style
	headerStyle lipgloss.Style
}

// NewFloatingHelp creates a new floating help modal.
func NewFloatingHelp() *FloatingHelp {
	return &FloatingHelp{
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")),
		footerStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		keyStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
		descStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		headerStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),
	}
}

// SetSize sets the available size for the modal.
func (f *FloatingHelp) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// SetBindings sets the keybindings to display.
func (f *FloatingHelp) SetBindings(bindings []HelpBinding) {
	f.bindings = bindings
}

// View renders the floating help modal.
func (f *FloatingHelp) View() string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	innerWidth := f.width - f.borderStyle.GetHorizontalFrameSize()
	innerHeight := f.height - f.borderStyle.GetVerticalFrameSize()

	if innerWidth < 20 || innerHeight < 5 {
		return ansi.Truncate("...", f.width, "")
	}

	content := f.renderContent(f.groupByCategory(), innerWidth)

	// Title and footer take one line each.
	contentLines := strings.Split(content, "\n")
	if len(contentLines) > innerHeight-2 {
		contentLines = contentLines[:innerHeight-2]
	}

	lines := make([]string, 0, innerHeight)
	lines = append(lines, f.titleStyle.Render("Help"))
	lines = append(lines, contentLines...)
	for len(lines) < innerHeight-1 {
		lines = append(lines, "")
	}

	footer := f.footerStyle.Render("f1 to close")
	lines = append(lines, strings.Repeat(" ", max(innerWidth-lipgloss.Width(footer), 0))+footer)

	for i, line := range lines {
		line = ansi.Truncate(line, innerWidth, "")
		lines[i] = line + strings.Repeat(" ", innerWidth-lipgloss.Width(line))
	}

	return f.borderStyle.Render(strings.Join(lines, "\n"))
}

// categoryOrder defines the display order of categories
var categoryOrder = []Category{
	CategoryProfile,
	CategoryWidget,
	CategoryGeneral,
}

// groupByCategory groups enabled bindings by their category.
func (f *FloatingHelp) groupByCategory() map[Category][]HelpBinding {
	groups := make(map[Category][]HelpBinding)

	for _, hb := range f.bindings {
		if !hb.Binding.Enabled() {
			continue
		}
		groups[hb.Category] = append(groups[hb.Category], hb)
	}

	for cat := range groups {
		slices.SortStableFunc(groups[cat], func(a, b HelpBinding) int {
			return a.Order - b.Order
		})
	}

	return groups
}

// renderContent renders the bindings one category after another with an
// aligned key column.
func (f *FloatingHelp) renderContent(groups map[Category][]HelpBinding, availableWidth int) string {
	if len(groups) == 0 {
		return "No keybindings available"
	}

	maxKeyWidth := 0
	for _, bindings := range groups {
		for _, hb := range bindings {
			maxKeyWidth = max(maxKeyWidth, lipgloss.Width(hb.Binding.Help().Key))
		}
	}

	// Key column: indent (2) + key + gap (2)
	keyColumnWidth := maxKeyWidth + 2
	descMaxWidth := max(availableWidth-2-keyColumnWidth, 10)

	var lines []string

	for _, cat := range categoryOrder {
		bindings := groups[cat]
		if len(bindings) == 0 {
			continue
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, f.headerStyle.Render(string(cat)))

		for _, hb := range bindings {
			help := hb.Binding.Help()
			keyCol := help.Key + strings.Repeat(" ", keyColumnWidth-lipgloss.Width(help.Key))
			desc := ansi.Truncate(help.Desc, descMaxWidth, ellipsis)
			lines = append(lines, "  "+f.keyStyle.Render(keyCol)+f.descStyle.Render(desc))
		}
	}

	return strings.Join(lines, "\n")
}
