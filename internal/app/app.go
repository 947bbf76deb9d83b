// Package app is the keybind settings screen: one row per action showing its
// binding, a press counter, and a popup for rebinding from the label.
package app

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/keybind/internal/bind"
	"github.com/chatter/keybind/internal/config"
	"github.com/chatter/keybind/internal/imui"
	"github.com/chatter/keybind/internal/logger"
	"github.com/chatter/keybind/internal/ui/help"
	"github.com/chatter/keybind/internal/widget"
)

// labelWidth is the width of the action label column.
const labelWidth = 10

// action is one row of the settings screen.
type action struct {
	name   string
	label  string
	target func(b *config.Bindings) bind.Target
}

var actions = []action{
	{"jump", "Jump", func(b *config.Bindings) bind.Target { return &b.Jump }},
	{"fire", "Fire", func(b *config.Bindings) bind.Target { return &b.Fire }},
	{"use", "Use", func(b *config.Bindings) bind.Target { return &b.Use }},
	{"sprint", "Sprint", func(b *config.Bindings) bind.Target { return &b.Sprint }},
	{"inventory", "Inventory", func(b *config.Bindings) bind.Target { return &b.Inventory }},
	{"menu", "Menu", func(b *config.Bindings) bind.Target { return &b.Menu }},
}

// Model is the main application model
type Model struct {
	// Core state
	path    string
	version string
	keys    KeyMap
	log     *logger.Logger

	// Profile
	profile *config.Profile
	watcher *config.Watcher
	dirty   bool

	// Immediate-mode state and the last composed frame
	ctx     *imui.Context
	canvas  string
	presses map[string]int

	// Help
	showHelp     bool
	statusBar    *help.StatusBar
	floatingHelp *help.FloatingHelp

	// Window size
	width  int
	height int
}

// New creates a new application model editing the profile at path.
func New(path, version string, log *logger.Logger) Model {
	if log == nil {
		log = logger.Discard()
	}

	return Model{
		path:         path,
		version:      version,
		keys:         DefaultKeyMap(),
		log:          log,
		ctx:          imui.NewContext(log.Component("imui")),
		presses:      make(map[string]int),
		statusBar:    help.NewStatusBar("keybind " + version),
		floatingHelp: help.NewFloatingHelp(),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadProfile(),
		m.startWatcher(),
	)
}

// loadProfile reads the profile from disk
func (m Model) loadProfile() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		profile, err := config.Load(path)
		if err != nil {
			return errMsg{err}
		}
		return profileLoadedMsg{profile: profile}
	}
}

// saveProfile writes a snapshot of the current profile
func (m Model) saveProfile() tea.Cmd {
	path := m.path
	snapshot := *m.profile
	return func() tea.Msg {
		if err := snapshot.Save(path); err != nil {
			return errMsg{err}
		}
		return profileSavedMsg{}
	}
}

// startWatcher starts the profile watcher
func (m Model) startWatcher() tea.Cmd {
	path, log := m.path, m.log
	return func() tea.Msg {
		watcher, err := config.NewWatcher(path, log.Component("watcher"))
		if err != nil {
			// Don't fail if watcher can't start, just disable hot reload
			return watcherStartedMsg{watcher: nil, err: err}
		}
		return watcherStartedMsg{watcher: watcher}
	}
}

// waitForChange waits for the profile to change on disk
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	events := m.watcher.Events()
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		time.Sleep(100 * time.Millisecond) // Debounce
		return profileChangedMsg{}
	}
}

// Message types
type profileLoadedMsg struct {
	profile *config.Profile
}

type profileSavedMsg struct{}

type profileChangedMsg struct{}

type watcherStartedMsg struct {
	watcher *config.Watcher
	err     error
}

type errMsg struct {
	err error
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.KeyReleaseMsg, tea.MouseClickMsg, tea.MouseReleaseMsg:
		if !m.showHelp {
			m.handleInput(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ctx.SetSize(msg.Width, msg.Height-1)
		m.runFrame(nil)

	case profileLoadedMsg:
		m.profile = msg.profile
		m.dirty = false
		m.log.Info("profile loaded", "path", m.path)
		m.runFrame(nil)

	case profileSavedMsg:
		m.dirty = false
		m.log.Info("profile saved", "path", m.path)
		m.statusBar.SetMessage("saved "+m.path, false)

	case watcherStartedMsg:
		if msg.err != nil {
			m.log.Warn("hot reload disabled", "err", msg.err)
		}
		m.watcher = msg.watcher
		cmds = append(cmds, m.waitForChange())

	case profileChangedMsg:
		cmds = append(cmds, m.waitForChange())
		if m.dirty {
			m.statusBar.SetMessage("profile changed on disk, ctrl+r to reload", false)
		} else {
			cmds = append(cmds, m.loadProfile())
		}

	case errMsg:
		m.log.Error("operation failed", "err", msg.err)
		m.statusBar.SetMessage(msg.err.Error(), true)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	// Quit works even while a bind widget is capturing.
	if key.Matches(msg, m.keys.Quit) {
		return m.actionQuit()
	}

	// When help modal is open, only handle help and esc
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	m.handleInput(msg)

	// A capturing widget took this key; shortcuts stand aside.
	if m.ctx.InputClaimed() {
		return m, nil
	}

	if newModel, cmd := dispatchKey(&m, msg, m.globalBindings()); newModel != nil {
		return *newModel, cmd
	}

	return m, nil
}

// handleInput runs one frame over a translated tea message.
func (m *Model) handleInput(msg tea.Msg) {
	ev, ok := imui.Translate(msg)
	if !ok {
		return
	}
	m.runFrame([]imui.Event{ev})
}

func (m *Model) runFrame(events []imui.Event) {
	if m.profile == nil {
		return
	}
	m.canvas = m.ctx.Frame(events, m.drawBindings)
}

func (m *Model) drawBindings(ui *imui.UI) {
	ui.Label("Key bindings")
	ui.Space(1)

	for _, a := range actions {
		target := a.target(&m.profile.Bindings)

		// Read before the widget runs so a key captured this frame is not
		// counted against the binding it replaces.
		if target.Pressed(ui.Input()) {
			m.presses[a.name]++
		}

		ui.Horizontal(func(row *imui.UI) {
			label := row.Label(fmt.Sprintf("%-*s", labelWidth, a.label))

			if widget.NewBind(a.name, target).Show(row).Changed() {
				m.rebound(a, target)
			}
			if widget.ShowBindPopup(row, target, a.name+".popup", label) {
				m.rebound(a, target)
			}

			row.Label(fmt.Sprintf("pressed %d", m.presses[a.name]))
		})
	}
}

func (m *Model) rebound(a action, target bind.Target) {
	m.dirty = true
	m.log.Info("binding changed", "action", a.name, "bind", target.Format())
	m.statusBar.SetMessage(fmt.Sprintf("%s bound to %s (unsaved)", a.label, target.Format()), false)
}

// Action methods for keybindings

func (m *Model) actionQuit() (Model, tea.Cmd) {
	if m.watcher != nil {
		m.watcher.Close()
	}
	return *m, tea.Quit
}

func (m *Model) actionSave() (Model, tea.Cmd) {
	if m.profile == nil {
		return *m, nil
	}
	return *m, m.saveProfile()
}

func (m *Model) actionReload() (Model, tea.Cmd) {
	m.statusBar.SetMessage("reloading "+m.path, false)
	return *m, m.loadProfile()
}

func (m *Model) actionReset() (Model, tea.Cmd) {
	m.profile = config.Default()
	m.dirty = true
	m.log.Info("profile reset to defaults")
	m.statusBar.SetMessage("defaults restored (unsaved)", false)
	m.runFrame(nil)
	return *m, nil
}

func (m *Model) actionToggleHelp() (Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	return *m, nil
}

// activeHelpBindings returns all display bindings for the status bar and
// help modal.
func (m *Model) activeHelpBindings() []help.HelpBinding {
	return ToHelpBindings(m.globalBindings())
}

// globalBindings returns the app-level keybindings with their actions.
func (m *Model) globalBindings() []ActionBinding {
	return []ActionBinding{
		// Profile
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Save,
				Category: help.CategoryProfile,
				Order:    10,
			},
			Action: (*Model).actionSave,
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Reload,
				Category: help.CategoryProfile,
				Order:    11,
			},
			Action: (*Model).actionReload,
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Reset,
				Category: help.CategoryProfile,
				Order:    12,
			},
			Action: (*Model).actionReset,
		},
		// Bind widget hints
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Rebind,
				Category: help.CategoryWidget,
				Order:    20,
			},
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Popup,
				Category: help.CategoryWidget,
				Order:    21,
			},
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Clear,
				Category: help.CategoryWidget,
				Order:    22,
			},
		},
		// Help toggle and quit - pinned, always visible
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Help,
				Category: help.CategoryGeneral,
				Order:    99,
				Pinned:   true,
			},
			Action: (*Model).actionToggleHelp,
		},
		{
			HelpBinding: help.HelpBinding{
				Binding:  m.keys.Quit,
				Category: help.CategoryGeneral,
				Order:    100,
				Pinned:   true,
			},
			Action: (*Model).actionQuit,
		},
	}
}

// View renders the application
func (m Model) View() tea.View {
	content := "Loading..."
	if m.width > 0 && m.height > 0 && m.profile != nil {
		content = m.render()
	}

	view := tea.NewView(content)
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.WindowTitle = "keybind"
	return view
}

func (m Model) render() string {
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(m.canvas),
		lipgloss.NewLayer(m.renderStatusBar()).Y(m.height - 1),
	}

	if m.showHelp {
		layers = append(layers, m.helpLayer())
	}

	return lipgloss.NewCompositor(layers...).Render()
}

// helpLayer centers the floating help over the screen.
func (m Model) helpLayer() *lipgloss.Layer {
	modalWidth := m.width * 80 / 100
	modalHeight := m.height * 70 / 100

	if modalWidth < 40 {
		modalWidth = min(40, m.width-4)
	}
	if modalHeight < 10 {
		modalHeight = min(10, m.height-4)
	}

	m.floatingHelp.SetSize(modalWidth, modalHeight)
	m.floatingHelp.SetBindings(m.activeHelpBindings())
	modal := m.floatingHelp.View()

	x := max((m.width-lipgloss.Width(modal))/2, 0)
	y := max((m.height-lipgloss.Height(modal))/2, 0)
	return lipgloss.NewLayer(modal).X(x).Y(y)
}

func (m Model) renderStatusBar() string {
	m.statusBar.SetWidth(m.width)
	m.statusBar.SetBindings(m.activeHelpBindings())
	return m.statusBar.View()
}

// Row is one action and its binding as shown by the list command.
type Row struct {
	Name  string
	Label string
	Bind  string
}

// Rows returns the actions of profile in display order.
func Rows(profile *config.Profile) []Row {
	rows := make([]Row, len(actions))
	for i, a := range actions {
		rows[i] = Row{
			Name:  a.name,
			Label: a.label,
			Bind:  a.target(&profile.Bindings).Format(),
		}
	}
	return rows
}
