package bind

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key independently of the terminal backend.
type Key uint8

const (
	// Navigation and editing keys
	KeyArrowDown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Punctuation
	KeyColon
	KeyComma
	KeyBackslash
	KeySlash
	KeyPipe
	KeyQuestionmark
	KeyExclamationmark
	KeyOpenBracket
	KeyCloseBracket
	KeyOpenCurlyBracket
	KeyCloseCurlyBracket
	KeyBacktick
	KeyMinus
	KeyPeriod
	KeyPlus
	KeyEquals
	KeySemicolon
	KeyQuote

	// Digits
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9

	// Letters
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20

	keyCount
)

var keyNames = [keyCount]string{
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyEscape:     "Escape",
	KeyTab:        "Tab",
	KeyBackspace:  "Backspace",
	KeyEnter:      "Enter",
	KeySpace:      "Space",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",

	KeyColon:             "Colon",
	KeyComma:             "Comma",
	KeyBackslash:         "Backslash",
	KeySlash:             "Slash",
	KeyPipe:              "Pipe",
	KeyQuestionmark:      "Questionmark",
	KeyExclamationmark:   "Exclamationmark",
	KeyOpenBracket:       "OpenBracket",
	KeyCloseBracket:      "CloseBracket",
	KeyOpenCurlyBracket:  "OpenCurlyBracket",
	KeyCloseCurlyBracket: "CloseCurlyBracket",
	KeyBacktick:          "Backtick",
	KeyMinus:             "Minus",
	KeyPeriod:            "Period",
	KeyPlus:              "Plus",
	KeyEquals:            "Equals",
	KeySemicolon:         "Semicolon",
	KeyQuote:             "Quote",
}

// keyAliases are the short labels used by Format. Keys without an alias
// format as their name.
var keyAliases = map[Key]string{
	KeyBackspace: "BKSP",
	KeyEscape:    "ESC",
	KeyEnter:     "RET",
	KeyInsert:    "INS",
	KeyDelete:    "DEL",
	KeyPageUp:    "PGU",
	KeyPageDown:  "PGD",

	KeyEquals:            "=",
	KeyPeriod:            ".",
	KeyComma:             ",",
	KeyPlus:              "+",
	KeyBacktick:          "`",
	KeyMinus:             "-",
	KeyBackslash:         "\\",
	KeyColon:             ":",
	KeySemicolon:         ";",
	KeyOpenBracket:       "[",
	KeyCloseBracket:      "]",
	KeySlash:             "/",
	KeyQuote:             "'",
	KeyPipe:              "|",
	KeyQuestionmark:      "?",
	KeyExclamationmark:   "!",
	KeyOpenCurlyBracket:  "{",
	KeyCloseCurlyBracket: "}",
}

// keysByName maps lowercased key names to keys.
var keysByName = make(map[string]Key, keyCount)

func init() {
	for k := KeyNum0; k <= KeyNum9; k++ {
		keyNames[k] = fmt.Sprintf("Num%d", int(k-KeyNum0))
		keyAliases[k] = fmt.Sprintf("%d", int(k-KeyNum0))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + (k - KeyA)))
	}
	for k := KeyF1; k <= KeyF20; k++ {
		keyNames[k] = fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	for k, name := range keyNames {
		keysByName[strings.ToLower(name)] = Key(k)
	}
}

// Keys returns every known key in declaration order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

// Valid reports whether k is a known key.
func (k Key) Valid() bool {
	return k < keyCount
}

// String returns the symbolic name of the key, e.g. "ArrowUp" or "Num4".
func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// Label returns the short display form of the key.
func (k Key) Label() string {
	if alias, ok := keyAliases[k]; ok {
		return alias
	}
	return k.String()
}

// ParseKey parses a key name as produced by String (case-insensitive).
func ParseKey(name string) (Key, error) {
	if k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

var keyCaps = Caps{AcceptsKey: true}

func (*Key) Caps() Caps { return keyCaps }

func (k *Key) SetKey(key Key, _ Modifiers) { *k = key }

func (k *Key) SetPointer(Pointer, Modifiers) { unsupported("SetPointer", k) }

func (k *Key) Clear() { unsupported("Clear", k) }

func (k *Key) Format() string { return k.Label() }

func (k *Key) Down(in InputState) bool { return in.KeyDown(*k) }

func (k *Key) Pressed(in InputState) bool { return in.KeyPressed(*k) }

func (k *Key) Released(in InputState) bool { return in.KeyReleased(*k) }
