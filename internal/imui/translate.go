package imui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/keybind/internal/bind"
)

var namedKeys = map[rune]bind.Key{
	tea.KeyDown:      bind.KeyArrowDown,
	tea.KeyLeft:      bind.KeyArrowLeft,
	tea.KeyRight:     bind.KeyArrowRight,
	tea.KeyUp:        bind.KeyArrowUp,
	tea.KeyEscape:    bind.KeyEscape,
	tea.KeyTab:       bind.KeyTab,
	tea.KeyBackspace: bind.KeyBackspace,
	tea.KeyEnter:     bind.KeyEnter,
	tea.KeySpace:     bind.KeySpace,
	tea.KeyInsert:    bind.KeyInsert,
	tea.KeyDelete:    bind.KeyDelete,
	tea.KeyHome:      bind.KeyHome,
	tea.KeyEnd:       bind.KeyEnd,
	tea.KeyPgUp:      bind.KeyPageUp,
	tea.KeyPgDown:    bind.KeyPageDown,

	':':  bind.KeyColon,
	',':  bind.KeyComma,
	'\\': bind.KeyBackslash,
	'/':  bind.KeySlash,
	'|':  bind.KeyPipe,
	'?':  bind.KeyQuestionmark,
	'!':  bind.KeyExclamationmark,
	'[':  bind.KeyOpenBracket,
	']':  bind.KeyCloseBracket,
	'{':  bind.KeyOpenCurlyBracket,
	'}':  bind.KeyCloseCurlyBracket,
	'`':  bind.KeyBacktick,
	'-':  bind.KeyMinus,
	'.':  bind.KeyPeriod,
	'+':  bind.KeyPlus,
	'=':  bind.KeyEquals,
	';':  bind.KeySemicolon,
	'\'': bind.KeyQuote,
}

var pointerButtons = map[tea.MouseButton]bind.Pointer{
	tea.MouseLeft:     bind.PointerPrimary,
	tea.MouseRight:    bind.PointerSecondary,
	tea.MouseMiddle:   bind.PointerMiddle,
	tea.MouseBackward: bind.PointerExtra1,
	tea.MouseForward:  bind.PointerExtra2,
}

// Translate converts a bubbletea input message into an Event. Messages that
// carry no bindable input, such as wheel motion or unknown keys, report false.
func Translate(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return keyEvent(KeyPress, msg.Key())
	case tea.KeyReleaseMsg:
		return keyEvent(KeyRelease, msg.Key())
	case tea.MouseClickMsg:
		return pointerEvent(PointerPress, msg.Mouse())
	case tea.MouseReleaseMsg:
		return pointerEvent(PointerRelease, msg.Mouse())
	}
	return Event{}, false
}

func keyEvent(kind EventKind, k tea.Key) (Event, bool) {
	key, shifted, ok := translateKey(k)
	if !ok {
		return Event{}, false
	}
	mods := translateMods(k.Mod)
	mods.Shift = mods.Shift || shifted
	return Event{Kind: kind, Key: key, Mods: mods}, true
}

// translateKey maps a key code. Legacy terminals report shifted letters as
// upper case with no modifier, so shifted is set for those.
func translateKey(k tea.Key) (key bind.Key, shifted, ok bool) {
	code := k.Code
	switch {
	case code >= 'a' && code <= 'z':
		return bind.KeyA + bind.Key(code-'a'), false, true
	case code >= 'A' && code <= 'Z':
		return bind.KeyA + bind.Key(code-'A'), true, true
	case code >= '0' && code <= '9':
		return bind.KeyNum0 + bind.Key(code-'0'), false, true
	case code >= tea.KeyF1 && code <= tea.KeyF20:
		return bind.KeyF1 + bind.Key(code-tea.KeyF1), false, true
	}

	if key, ok := namedKeys[code]; ok {
		return key, false, true
	}
	if key, ok := namedKeys[k.ShiftedCode]; ok {
		return key, false, true
	}
	return 0, false, false
}

func translateMods(m tea.KeyMod) bind.Modifiers {
	return bind.Modifiers{
		Ctrl:    m&tea.ModCtrl != 0,
		Shift:   m&tea.ModShift != 0,
		Alt:     m&tea.ModAlt != 0,
		Command: m&(tea.ModSuper|tea.ModMeta) != 0,
	}
}

func pointerEvent(kind EventKind, m tea.Mouse) (Event, bool) {
	button, ok := pointerButtons[m.Button]
	if !ok {
		return Event{}, false
	}
	return Event{
		Kind:   kind,
		Button: button,
		Pos:    Pos{X: m.X, Y: m.Y},
		Mods:   translateMods(m.Mod),
	}, true
}
