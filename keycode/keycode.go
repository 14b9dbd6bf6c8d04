package keycode

import (
	"fmt"
)

const Version = "0.1.0"

// NativeKeyCode is the raw key identifier of the host input subsystem.  Its
// value space depends on the platform table it is looked up in.
type NativeKeyCode uint32

// CanonicalKeyCode is a USB HID usage value: page<<16 | usage id.
type CanonicalKeyCode uint32

// NoMapping is returned by Encode when a key has no canonical code.
const NoMapping CanonicalKeyCode = 0

func (c CanonicalKeyCode) Page() uint16 {
	return uint16(c >> 16)
}

func (c CanonicalKeyCode) Usage() uint16 {
	return uint16(c & 0xffff)
}

func (c CanonicalKeyCode) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// Usage builds a canonical code from a HID usage page and usage id.
func Usage(page, id uint16) CanonicalKeyCode {
	return CanonicalKeyCode(uint32(page)<<16 | uint32(id))
}

const PageKeyboard = 0x07

// Key is either a special key or an unclassified native code.  The zero
// value is the unclassified native code 0.
type Key struct {
	Special SpecialKey
	Native  NativeKeyCode
}

func Special(s SpecialKey) Key {
	return Key{Special: s}
}

func Native(n NativeKeyCode) Key {
	return Key{Native: n}
}

func (k Key) IsSpecial() bool {
	return k.Special != SpecialNone
}

func (k Key) String() string {
	if k.IsSpecial() {
		return k.Special.String()
	}
	return fmt.Sprintf("Native(%d)", k.Native)
}
