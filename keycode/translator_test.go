package keycode

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable(t *testing.T, name string) *Table {
	table, err := TableFor(name)
	require.Nil(t, err)
	return table
}

func TestRoundTrip(t *testing.T) {
	for _, name := range TableNames() {
		table := testTable(t, name)
		tr := NewTranslator(table)
		shadowed := 0
		for _, row := range table.Rows() {
			if table.Shadowed(row) {
				shadowed++
				continue
			}
			require.Equal(t, row.Canonical, tr.Encode(Native(row.Native)), "%s %s", name, row.Name)
			require.Equal(t, Native(row.Native), tr.Decode(row.Canonical), "%s %s", name, row.Name)
			require.Equal(t, row.Canonical, tr.Encode(tr.Decode(row.Canonical)), "%s %s", name, row.Name)
		}
		if name == TableWindowsVK {
			require.Equal(t, 3, shadowed)
		} else {
			require.Equal(t, 0, shadowed, name)
		}
		for _, s := range table.Specials() {
			code := tr.Encode(Special(s))
			require.Equal(t, s.Code(), code)
			require.Equal(t, Special(s), tr.Decode(code))
		}
	}
}

func TestTableSizes(t *testing.T) {
	require.Len(t, testTable(t, TableMacOS).Rows(), 117)
	require.Len(t, testTable(t, TableWindows).Rows(), 151)
	require.Len(t, testTable(t, TableGeneric).Rows(), 1)
	require.Len(t, testTable(t, TableMacOS).Specials(), 16)
	require.Len(t, testTable(t, TableWindows).Specials(), 6)
	require.Len(t, testTable(t, TableGeneric).Specials(), 6)
}

func TestSpecialKeyCodes(t *testing.T) {
	tr := NewTranslator(testTable(t, TableMacOS))
	expected := map[SpecialKey]CanonicalKeyCode{
		VolumeUp:           0x00070080,
		VolumeDown:         0x00070081,
		VolumeMute:         0x0007007f,
		BrightnessUp:       0x000c0079,
		BrightnessDown:     0x000c007a,
		Power:              0x00070066,
		LaunchPanel:        0x000c019f,
		Eject:              0x000c00b8,
		MediaPlayPause:     0x000c00cd,
		MediaNextTrack:     0x000c00b5,
		MediaPrevTrack:     0x000c00b6,
		MediaFast:          0x000c0083,
		MediaRewind:        0x000c00b4,
		IlluminationUp:     0x000c006f,
		IlluminationDown:   0x000c0070,
		IlluminationToggle: 0x000c0072,
	}
	require.Len(t, SpecialKeys(), len(expected))
	for s, code := range expected {
		require.Equal(t, code, tr.Encode(Special(s)), s.String())
		require.Equal(t, Special(s), tr.Decode(code), s.String())
	}
}

func TestKnownCodes(t *testing.T) {
	mac := NewTranslator(testTable(t, TableMacOS))
	require.Equal(t, CanonicalKeyCode(0x00070004), mac.Encode(Native(0)))
	require.Equal(t, CanonicalKeyCode(0x00070027), mac.Encode(Native(29)))
	require.Equal(t, CanonicalKeyCode(0x00000012), mac.Encode(Native(63)))
	require.Equal(t, Native(126), mac.Decode(0x00070052))

	win := NewTranslator(testTable(t, TableWindows))
	require.Equal(t, CanonicalKeyCode(0x00070004), win.Encode(Native(30)))
	require.Equal(t, CanonicalKeyCode(0x00070027), win.Encode(Native(11)))
	require.Equal(t, CanonicalKeyCode(0x00070049), win.Encode(Native(57426)))
	require.Equal(t, Native(57439), win.Decode(0x00010082))

	for _, tr := range []*Translator{mac, win, NewTranslator(testTable(t, TableGeneric))} {
		require.Equal(t, CanonicalKeyCode(0x00070062), tr.Encode(Native(82)))
		require.Equal(t, Native(82), tr.Decode(0x00070062))
	}
}

func TestWindowsVirtualKey(t *testing.T) {
	tr := NewTranslator(testTable(t, TableWindowsVK))
	require.Equal(t, CanonicalKeyCode(0x00070004), tr.Encode(Native(65)))
	require.Equal(t, Native(65), tr.Decode(0x00070004))

	// unsided aliases encode, sided codes decode
	require.Equal(t, CanonicalKeyCode(0x000700e1), tr.Encode(Native(0x10)))
	require.Equal(t, Native(0xa0), tr.Decode(0x000700e1))
	require.Equal(t, Native(0xa2), tr.Decode(0x000700e0))
	require.Equal(t, Native(0xa4), tr.Decode(0x000700e2))
}

func TestUnknownInput(t *testing.T) {
	for _, name := range TableNames() {
		tr := NewTranslator(testTable(t, name))
		require.Equal(t, NoMapping, tr.Encode(Native(0xfffff)), name)
		require.Equal(t, Native(0), tr.Decode(0x00ff00ff), name)
		require.Equal(t, Native(0), tr.Decode(0), name)

		_, ok := tr.Lookup(0x00ff00ff)
		require.False(t, ok)
		_, ok = tr.EncodeOK(Native(0xfffff))
		require.False(t, ok)
		require.Equal(t, NoMapping, tr.Encode(Special(SpecialKey(99))))
	}
}

func TestLookupSeparatesNumpad0(t *testing.T) {
	tr := NewTranslator(testTable(t, TableGeneric))
	key, ok := tr.Lookup(0x00070062)
	require.True(t, ok)
	require.Equal(t, Native(82), key)

	key, ok = tr.Lookup(0x00070004)
	require.False(t, ok)
	require.Equal(t, Key{}, key)
}

func TestFallbackRaw(t *testing.T) {
	tr := NewTranslator(testTable(t, TableWindows), WithFallback(FallbackRaw))
	require.Equal(t, FallbackRaw, tr.Fallback())
	require.Equal(t, Native(0x00ff00ff), tr.Decode(0x00ff00ff))
	require.Equal(t, Native(30), tr.Decode(0x00070004))
	require.Equal(t, Special(VolumeUp), tr.Decode(0x00070080))
}

func TestSpecialPrecedence(t *testing.T) {
	for _, name := range TableNames() {
		tr := NewTranslator(testTable(t, name))
		require.Equal(t, Special(VolumeUp), tr.Decode(0x00070080), name)
		require.Equal(t, Special(MediaPlayPause), tr.Decode(0x000c00cd), name)
	}

	// a table row on the same code as a special loses on decode
	table := newTable("test", PlatformGeneric, []Mapping{{"VolumeUp", 0xaf, 0x00070080}}, commonSpecials)
	tr := NewTranslator(table)
	require.Equal(t, Special(VolumeUp), tr.Decode(0x00070080))
	require.Equal(t, CanonicalKeyCode(0x00070080), tr.Encode(Native(0xaf)))
}

func TestPlatformIsolation(t *testing.T) {
	macOnly := []SpecialKey{
		BrightnessUp, BrightnessDown, Power, LaunchPanel, Eject,
		MediaFast, MediaRewind, IlluminationUp, IlluminationDown, IlluminationToggle,
	}
	for _, name := range []string{TableWindows, TableWindowsVK, TableGeneric} {
		tr := NewTranslator(testTable(t, name))
		for _, s := range macOnly {
			require.Equal(t, NoMapping, tr.Encode(Special(s)), "%s %s", name, s)
		}
		require.Equal(t, Native(0), tr.Decode(0x000c006f), name)
		require.Equal(t, Native(0), tr.Decode(0x000c0072), name)
	}

	// Eject and Power exist as plain rows on Windows scan codes
	win := NewTranslator(testTable(t, TableWindows))
	require.Equal(t, Native(57388), win.Decode(0x000c00b8))
	require.Equal(t, Native(57438), win.Decode(0x00070066))

	mac := NewTranslator(testTable(t, TableMacOS))
	require.Equal(t, Special(Eject), mac.Decode(0x000c00b8))
	require.Equal(t, NoMapping, mac.Encode(Native(57388)))
}

func TestTotalFunctions(t *testing.T) {
	codes := []uint32{0, 1, 0x12, 0x00070000, 0x0007ffff, 0x000c0000, 0x7fffffff, math.MaxUint32}
	for _, name := range TableNames() {
		tr := NewTranslator(testTable(t, name), WithFallback(FallbackRaw))
		for _, c := range codes {
			require.NotPanics(t, func() {
				tr.Decode(CanonicalKeyCode(c))
				tr.Encode(Native(NativeKeyCode(c)))
				tr.Encode(Key{Special: SpecialKey(c % 64), Native: NativeKeyCode(c)})
			})
		}
		for n := uint32(0); n < 0x10000; n++ {
			tr.Encode(Native(NativeKeyCode(n)))
			tr.Decode(CanonicalKeyCode(0x00070000 | n))
		}
	}
}

func TestHostConcurrent(t *testing.T) {
	host := Host()
	require.Equal(t, HostTableName(), host.Table().Name())
	require.Same(t, host, Host())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, row := range host.Table().Rows() {
				if !host.Table().Shadowed(row) {
					assert.Equal(t, Native(row.Native), host.Decode(host.Encode(Native(row.Native))))
				}
			}
		}()
	}
	wg.Wait()
}
