package keycode

import (
	"fmt"
	"strings"
	"sync"
)

// FallbackPolicy selects what Decode returns for a code with no mapping.
type FallbackPolicy int

const (
	// FallbackZero returns Native(0).
	FallbackZero FallbackPolicy = iota
	// FallbackRaw returns the canonical value itself as the native payload.
	FallbackRaw
)

func (f FallbackPolicy) String() string {
	switch f {
	case FallbackZero:
		return "zero"
	case FallbackRaw:
		return "raw"
	}
	return fmt.Sprintf("FallbackPolicy(%d)", int(f))
}

func ParseFallbackPolicy(value string) (FallbackPolicy, error) {
	switch strings.ToLower(value) {
	case "", "zero":
		return FallbackZero, nil
	case "raw":
		return FallbackRaw, nil
	}
	return FallbackZero, Fatalf("unknown fallback policy '%s', expected 'zero' or 'raw'", value)
}

// Translator converts between native key codes and canonical HID usage
// values for one platform table.  It holds no mutable state and is safe for
// concurrent use.
type Translator struct {
	table    *Table
	fallback FallbackPolicy
}

type Option func(*Translator)

func WithFallback(policy FallbackPolicy) Option {
	return func(t *Translator) {
		t.fallback = policy
	}
}

func NewTranslator(table *Table, options ...Option) *Translator {
	t := Translator{table: table}
	for _, option := range options {
		option(&t)
	}
	return &t
}

var hostTranslator = sync.OnceValue(func() *Translator {
	return NewTranslator(HostTable())
})

// Host returns the shared translator for the compiled target platform.
func Host() *Translator {
	return hostTranslator()
}

func (t *Translator) Table() *Table {
	return t.table
}

func (t *Translator) Fallback() FallbackPolicy {
	return t.fallback
}

// Encode returns the canonical code of key, or NoMapping.
func (t *Translator) Encode(key Key) CanonicalKeyCode {
	code, _ := t.EncodeOK(key)
	return code
}

// EncodeOK is Encode with an explicit found flag.
func (t *Translator) EncodeOK(key Key) (CanonicalKeyCode, bool) {
	if key.IsSpecial() {
		code, ok := t.table.specials[key.Special]
		if !ok {
			return NoMapping, false
		}
		return code, true
	}
	code, ok := t.table.forward[key.Native]
	if !ok {
		return NoMapping, false
	}
	return code, true
}

// Decode returns the key for a canonical code.  Codes with no mapping
// decode according to the fallback policy.
func (t *Translator) Decode(code CanonicalKeyCode) Key {
	key, ok := t.Lookup(code)
	if ok {
		return key
	}
	if t.fallback == FallbackRaw {
		return Native(NativeKeyCode(code))
	}
	return Native(0)
}

// Lookup is Decode without a fallback: ok is false when nothing maps to
// code, so Native(0) is never ambiguous.
func (t *Translator) Lookup(code CanonicalKeyCode) (Key, bool) {
	if s, ok := t.table.special(code); ok {
		return Special(s), true
	}
	if native, ok := t.table.reverse[code]; ok {
		return Native(native), true
	}
	return Key{}, false
}
