package keycode

import (
	"strconv"
)

// Modifier masks as used in the first byte of a HID keyboard report.
const (
	ModNone   = 0x00
	ModLCtrl  = 0x01
	ModLShift = 0x02
	ModLAlt   = 0x04
	ModLMeta  = 0x08
	ModRCtrl  = 0x10
	ModRShift = 0x20
	ModRAlt   = 0x40
	ModRMeta  = 0x80
)

// Modifier bit n is keyboard usage 0xe0+n.
func ModifierCodes(mask uint8) []CanonicalKeyCode {
	codes := []CanonicalKeyCode{}
	for bit := 0; bit < 8; bit++ {
		if mask&(1<<bit) != 0 {
			codes = append(codes, Usage(PageKeyboard, uint16(0xe0+bit)))
		}
	}
	return codes
}

type textKey struct {
	id  uint16
	mod uint8
}

// US layout
var textKeys = buildTextKeys()

func buildTextKeys() map[rune]textKey {
	keys := map[rune]textKey{
		'\b':   {0x2a, ModNone},
		'\t':   {0x2b, ModNone},
		'\n':   {0x28, ModNone},
		'\x0b': {0x0e, ModLCtrl}, // CTRL-K
		'\x0c': {0x0f, ModLCtrl}, // CTRL-L
		'\r':   {0x10, ModLCtrl}, // CTRL-M
		'\x1b': {0x29, ModNone},
		' ':    {0x2c, ModNone},
	}
	for i := 0; i < 26; i++ {
		keys[rune('a'+i)] = textKey{uint16(0x04 + i), ModNone}
		keys[rune('A'+i)] = textKey{uint16(0x04 + i), ModLShift}
	}
	shiftedDigits := []rune("!@#$%^&*()")
	for i, c := range "1234567890" {
		keys[c] = textKey{uint16(0x1e + i), ModNone}
		keys[shiftedDigits[i]] = textKey{uint16(0x1e + i), ModLShift}
	}
	for _, p := range []struct {
		plain   rune
		shifted rune
		id      uint16
	}{
		{'-', '_', 0x2d},
		{'=', '+', 0x2e},
		{'[', '{', 0x2f},
		{']', '}', 0x30},
		{'\\', '|', 0x31},
		{';', ':', 0x33},
		{'\'', '"', 0x34},
		{'`', '~', 0x35},
		{',', '<', 0x36},
		{'.', '>', 0x37},
		{'/', '?', 0x38},
	} {
		keys[p.plain] = textKey{p.id, ModNone}
		keys[p.shifted] = textKey{p.id, ModLShift}
	}
	return keys
}

// Stroke is one typed character as a keyboard usage plus the modifier keys
// held while it is pressed.
type Stroke struct {
	Char      rune
	Code      CanonicalKeyCode
	Modifiers []CanonicalKeyCode
}

// TextStrokes converts text into keystrokes on a US layout.
func TextStrokes(text string) ([]Stroke, error) {
	strokes := make([]Stroke, 0, len(text))
	for _, char := range text {
		key, ok := textKeys[char]
		if !ok {
			return nil, Fatalf("cannot encode: %02x %s", char, strconv.Quote(string(char)))
		}
		strokes = append(strokes, Stroke{
			Char:      char,
			Code:      Usage(PageKeyboard, key.id),
			Modifiers: ModifierCodes(key.mod),
		})
	}
	return strokes, nil
}

// UnquoteKeys decodes Go backslash escapes such as \n and \x27 in a
// command line argument.
func UnquoteKeys(keys string) (string, error) {
	var unquoted []rune
	for len(keys) > 0 {
		char, multi, tail, err := strconv.UnquoteChar(keys, byte('"'))
		if err != nil {
			return "", Fatalf("unquote failed at '%s': %v", keys, err)
		}
		if multi {
			return "", Fatalf("multibyte encoding not supported: '%s'", keys)
		}
		unquoted = append(unquoted, char)
		keys = tail
	}
	return string(unquoted), nil
}
