package keycode

import (
	"strconv"
	"strings"
)

func parseNumber(value string) (uint32, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(value), 0, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// ParseKey reads a key argument: a special key name, a decimal or 0x native
// code, or a key name such as "KeyA" resolved to its native code in table.
// Table rows win over special keys the platform does not have, so "Power"
// is a native code on Windows and a special key on macOS.
func ParseKey(table *Table, value string) (Key, error) {
	special, specialErr := ParseSpecialKey(value)
	if specialErr == nil && table.HasSpecial(special) {
		return Special(special), nil
	}
	if n, ok := parseNumber(value); ok {
		return Native(NativeKeyCode(n)), nil
	}
	if code, ok := table.CodeByName(value); ok {
		if native, ok := table.Native(code); ok {
			return Native(native), nil
		}
	}
	if specialErr == nil {
		return Special(special), nil
	}
	return Key{}, Fatalf("cannot parse key '%s' for table %s", value, table.Name())
}

// ParseCanonical reads a canonical code argument: a decimal or 0x HID usage
// value, or a key name known to table or to the special key set.
func ParseCanonical(table *Table, value string) (CanonicalKeyCode, error) {
	if n, ok := parseNumber(value); ok {
		return CanonicalKeyCode(n), nil
	}
	if code, ok := table.CodeByName(value); ok {
		return code, nil
	}
	if s, err := ParseSpecialKey(value); err == nil {
		return s.Code(), nil
	}
	return NoMapping, Fatalf("cannot parse canonical code '%s' for table %s", value, table.Name())
}
