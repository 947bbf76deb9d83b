package imui

// Memory is the keyed store that outlives a single frame. Widgets keep
// their state here instead of in their own structs, which are rebuilt
// every frame.
//
// At most one popup is open at a time.
type Memory struct {
	bools     map[ID]bool
	popup     ID
	popupOpen bool
}

// NewMemory returns an empty store.
func NewMemory() *Memory {
	return &Memory{bools: make(map[ID]bool)}
}

// Bool returns the value stored under id and whether one exists.
func (m *Memory) Bool(id ID) (value, ok bool) {
	value, ok = m.bools[id]
	return value, ok
}

// SetBool stores value under id.
func (m *Memory) SetBool(id ID, value bool) {
	m.bools[id] = value
}

// IsPopupOpen reports whether the popup with the given id is open.
func (m *Memory) IsPopupOpen(id ID) bool {
	return m.popupOpen && m.popup == id
}

// AnyPopupOpen reports whether any popup is open.
func (m *Memory) AnyPopupOpen() bool {
	return m.popupOpen
}

// OpenPopup opens id, closing whichever popup was open before.
func (m *Memory) OpenPopup(id ID) {
	m.popup, m.popupOpen = id, true
}

// ClosePopup closes the open popup, if any.
func (m *Memory) ClosePopup() {
	m.popupOpen = false
}

// TogglePopup opens id, or closes it if it is already open.
func (m *Memory) TogglePopup(id ID) {
	if m.IsPopupOpen(id) {
		m.ClosePopup()
		return
	}
	m.OpenPopup(id)
}
