package help

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"pgregory.net/rapid"
)

var allCategories = []Category{CategoryProfile, CategoryWidget, CategoryGeneral}

func generateFloatingBindings(t *rapid.T) []HelpBinding {
	numBindings := rapid.IntRange(0, 30).Draw(t, "numBindings")
	bindings := make([]HelpBinding, numBindings)
	for i := 0; i < numBindings; i++ {
		keyStr := string(rune('a' + i%26))
		desc := rapid.StringMatching(`[a-z]{3,12}`).Draw(t, "desc")
		category := rapid.SampledFrom(allCategories).Draw(t, "category")
		enabled := rapid.Float64Range(0, 1).Draw(t, "enabledChance") > 0.2 // 80% enabled

		binding := key.NewBinding(key.WithKeys(keyStr), key.WithHelp(keyStr, desc))
		if !enabled {
			binding.SetEnabled(false)
		}

		bindings[i] = HelpBinding{
			Binding:  binding,
			Category: category,
			Order:    i,
		}
	}
	return bindings
}

func TestFloating_AllEnabledBindingsAppear_WhenEnoughSpace(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(60, 120).Draw(t, "width")

		numBindings := rapid.IntRange(1, 5).Draw(t, "numBindings")
		bindings := make([]HelpBinding, numBindings)
		for i := 0; i < numBindings; i++ {
			keyStr := string(rune('a' + i))
			desc := "desc" + string(rune('0'+i))
			bindings[i] = HelpBinding{
				Binding:  key.NewBinding(key.WithKeys(keyStr), key.WithHelp(keyStr, desc)),
				Category: CategoryProfile,
				Order:    i,
			}
		}

		// Enough height for all bindings + header + title + footer + border
		height := numBindings + 10

		fh := NewFloatingHelp()
		fh.SetSize(width, height)
		fh.SetBindings(bindings)

		plainView := ansi.Strip(fh.View())

		for _, hb := range bindings {
			desc := hb.Binding.Help().Desc
			if !strings.Contains(plainView, desc) {
				t.Errorf("enabled binding %q not found in view with sufficient space", desc)
			}
		}
	})
}

func TestFloating_DisabledBindingsNeverAppear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(60, 120).Draw(t, "width")
		height := rapid.IntRange(20, 40).Draw(t, "height")

		numBindings := rapid.IntRange(1, 10).Draw(t, "numBindings")
		bindings := make([]HelpBinding, numBindings)
		for i := 0; i < numBindings; i++ {
			desc := "disabled" + string(rune('0'+i))
			binding := key.NewBinding(key.WithKeys("x"), key.WithHelp("x", desc))
			binding.SetEnabled(false)
			bindings[i] = HelpBinding{
				Binding:  binding,
				Category: CategoryGeneral,
				Order:    i,
			}
		}

		fh := NewFloatingHelp()
		fh.SetSize(width, height)
		fh.SetBindings(bindings)

		plainView := ansi.Strip(fh.View())

		for i := 0; i < numBindings; i++ {
			desc := "disabled" + string(rune('0'+i))
			if strings.Contains(plainView, desc) {
				t.Errorf("disabled binding %q should not appear in view", desc)
			}
		}
	})
}

func TestFloating_CategoriesAppearAsHeaders(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(60, 120).Draw(t, "width")
		height := rapid.IntRange(20, 40).Draw(t, "height")

		bindings := []HelpBinding{
			{
				Binding:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
				Category: CategoryProfile,
				Order:    1,
			},
			{
				Binding:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
				Category: CategoryWidget,
				Order:    2,
			},
			{
				Binding:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
				Category: CategoryGeneral,
				Order:    3,
			},
		}

		fh := NewFloatingHelp()
		fh.SetSize(width, height)
		fh.SetBindings(bindings)

		plainView := ansi.Strip(fh.View())

		for _, cat := range allCategories {
			if !strings.Contains(plainView, string(cat)) {
				t.Errorf("%s category header not found", cat)
			}
		}
	})
}

func TestFloating_CategoriesInDisplayOrder(t *testing.T) {
	bindings := []HelpBinding{
		{Binding: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")), Category: CategoryGeneral},
		{Binding: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")), Category: CategoryProfile},
	}

	fh := NewFloatingHelp()
	fh.SetSize(60, 20)
	fh.SetBindings(bindings)

	plainView := ansi.Strip(fh.View())

	profile := strings.Index(plainView, string(CategoryProfile))
	general := strings.Index(plainView, string(CategoryGeneral))
	if profile < 0 || general < 0 || profile > general {
		t.Errorf("expected Profile before General, got positions %d and %d", profile, general)
	}
}

func TestFloating_KeysAligned(t *testing.T) {
	bindings := []HelpBinding{
		{Binding: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "short")), Category: CategoryProfile, Order: 1},
		{Binding: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "longer")), Category: CategoryProfile, Order: 2},
	}

	fh := NewFloatingHelp()
	fh.SetSize(60, 20)
	fh.SetBindings(bindings)

	lines := strings.Split(ansi.Strip(fh.View()), "\n")

	findColumn := func(text string) int {
		for _, line := range lines {
			if idx := strings.Index(line, text); idx >= 0 {
				return ansi.StringWidth(line[:idx])
			}
		}
		return -1
	}

	short, longer := findColumn("short"), findColumn("longer")
	if short < 0 || short != longer {
		t.Errorf("descriptions should share a column, got %d and %d", short, longer)
	}
}

func TestFloating_SizeConstraintsRespected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(40, 120).Draw(t, "width")
		height := rapid.IntRange(10, 40).Draw(t, "height")
		bindings := generateFloatingBindings(t)

		fh := NewFloatingHelp()
		fh.SetSize(width, height)
		fh.SetBindings(bindings)

		view := fh.View()

		if w := lipgloss.Width(view); w > width {
			t.Errorf("view width %d exceeds specified width %d", w, width)
		}
		if h := lipgloss.Height(view); h > height {
			t.Errorf("view height %d exceeds specified height %d", h, height)
		}
	})
}

func TestFloating_EmptyBindingsShowsEmptyModal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(40, 120).Draw(t, "width")
		height := rapid.IntRange(10, 40).Draw(t, "height")

		fh := NewFloatingHelp()
		fh.SetSize(width, height)
		fh.SetBindings(nil)

		plainView := ansi.Strip(fh.View())

		if !strings.Contains(plainView, "No keybindings available") {
			t.Errorf("empty bindings should render placeholder: %q", plainView)
		}
	})
}

func TestFloating_ZeroSizeRendersNothing(t *testing.T) {
	fh := NewFloatingHelp()
	if view := fh.View(); view != "" {
		t.Errorf("expected empty view before SetSize, got %q", view)
	}
}
