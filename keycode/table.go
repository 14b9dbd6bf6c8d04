package keycode

import (
	"sort"
	"strings"
	"sync"
)

type Platform string

const (
	PlatformMacOS   Platform = "macos"
	PlatformWindows Platform = "windows"
	PlatformGeneric Platform = "generic"
)

// Each platform's native table is named after the platform; alternate
// numberings add a suffix.
const (
	TableMacOS     = string(PlatformMacOS)
	TableWindows   = string(PlatformWindows)
	TableWindowsVK = TableWindows + "-vk"
	TableGeneric   = string(PlatformGeneric)
)

// Mapping is one row of a platform table.
type Mapping struct {
	Name      string
	Native    NativeKeyCode
	Canonical CanonicalKeyCode
}

// Table is an immutable association between one platform's native codes and
// canonical codes.  When rows collide, the last-listed row wins in the
// direction of the collision.
type Table struct {
	name      string
	platform  Platform
	rows      []Mapping
	forward   map[NativeKeyCode]CanonicalKeyCode
	reverse   map[CanonicalKeyCode]NativeKeyCode
	specials  map[SpecialKey]CanonicalKeyCode
	bySpecial map[CanonicalKeyCode]SpecialKey
	names     map[CanonicalKeyCode]string
	byName    map[string]CanonicalKeyCode
}

func newTable(name string, platform Platform, rows []Mapping, specials []SpecialKey) *Table {
	t := Table{
		name:      name,
		platform:  platform,
		rows:      rows,
		forward:   make(map[NativeKeyCode]CanonicalKeyCode, len(rows)),
		reverse:   make(map[CanonicalKeyCode]NativeKeyCode, len(rows)),
		specials:  make(map[SpecialKey]CanonicalKeyCode, len(specials)),
		bySpecial: make(map[CanonicalKeyCode]SpecialKey, len(specials)),
		names:     make(map[CanonicalKeyCode]string, len(rows)+len(specials)),
		byName:    make(map[string]CanonicalKeyCode, len(rows)+len(specials)),
	}
	for _, row := range rows {
		t.forward[row.Native] = row.Canonical
		t.reverse[row.Canonical] = row.Native
		t.names[row.Canonical] = row.Name
		t.byName[strings.ToLower(row.Name)] = row.Canonical
	}
	for _, s := range specials {
		code := s.Code()
		t.specials[s] = code
		t.bySpecial[code] = s
		t.names[code] = s.String()
		t.byName[strings.ToLower(s.String())] = code
	}
	return &t
}

var tableBuilders = map[string]func() *Table{
	TableMacOS: sync.OnceValue(func() *Table {
		return newTable(TableMacOS, PlatformMacOS, macosRows, macosSpecials)
	}),
	TableWindows: sync.OnceValue(func() *Table {
		return newTable(TableWindows, PlatformWindows, windowsRows, commonSpecials)
	}),
	TableWindowsVK: sync.OnceValue(func() *Table {
		return newTable(TableWindowsVK, PlatformWindows, windowsVKRows, commonSpecials)
	}),
	TableGeneric: sync.OnceValue(func() *Table {
		return newTable(TableGeneric, PlatformGeneric, genericRows, commonSpecials)
	}),
}

// TableNames returns the names of all known tables, sorted.
func TableNames() []string {
	names := make([]string, 0, len(tableBuilders))
	for name := range tableBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TableFor returns the named table, building it on first use.
func TableFor(name string) (*Table, error) {
	build, ok := tableBuilders[strings.ToLower(name)]
	if !ok {
		return nil, Fatalf("unknown key table '%s', expected one of: %s", name, strings.Join(TableNames(), ", "))
	}
	return build(), nil
}

// HostTable returns the table selected for the compiled target platform.
func HostTable() *Table {
	return tableBuilders[hostTableName]()
}

func HostTableName() string {
	return hostTableName
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Platform() Platform {
	return t.platform
}

// Rows returns a copy of the table rows in listed order.
func (t *Table) Rows() []Mapping {
	rows := make([]Mapping, len(t.rows))
	copy(rows, t.rows)
	return rows
}

// Specials returns the special keys applicable on the table's platform.
func (t *Table) Specials() []SpecialKey {
	keys := []SpecialKey{}
	for _, s := range SpecialKeys() {
		if _, ok := t.specials[s]; ok {
			keys = append(keys, s)
		}
	}
	return keys
}

func (t *Table) HasSpecial(s SpecialKey) bool {
	_, ok := t.specials[s]
	return ok
}

// Canonical looks up the canonical code of a native code.
func (t *Table) Canonical(native NativeKeyCode) (CanonicalKeyCode, bool) {
	code, ok := t.forward[native]
	return code, ok
}

// Native looks up the native code of a canonical code.
func (t *Table) Native(code CanonicalKeyCode) (NativeKeyCode, bool) {
	native, ok := t.reverse[code]
	return native, ok
}

func (t *Table) special(code CanonicalKeyCode) (SpecialKey, bool) {
	s, ok := t.bySpecial[code]
	return s, ok
}

// KeyName returns the key name of a canonical code, or "" when the table
// does not know it.
func (t *Table) KeyName(code CanonicalKeyCode) string {
	return t.names[code]
}

// CodeByName finds a canonical code by key name, ignoring case.
func (t *Table) CodeByName(name string) (CanonicalKeyCode, bool) {
	code, ok := t.byName[strings.ToLower(name)]
	return code, ok
}

// Shadowed reports whether a row lost a collision to a later row in either
// direction, so that it does not round trip.
func (t *Table) Shadowed(row Mapping) bool {
	return t.forward[row.Native] != row.Canonical || t.reverse[row.Canonical] != row.Native
}
