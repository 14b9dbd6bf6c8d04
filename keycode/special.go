package keycode

import (
	"fmt"
	"strings"
)

// SpecialKey names a key handled by symbolic identity rather than by a
// native code: volume, brightness, media transport, power and illumination.
type SpecialKey int

const (
	SpecialNone SpecialKey = iota
	VolumeUp
	VolumeDown
	VolumeMute
	BrightnessUp
	BrightnessDown
	Power
	LaunchPanel
	Eject
	MediaPlayPause
	MediaNextTrack
	MediaPrevTrack
	MediaFast
	MediaRewind
	IlluminationUp
	IlluminationDown
	IlluminationToggle
)

type specialInfo struct {
	name string
	code CanonicalKeyCode
}

// HID usages of the special keys.  These are an interchange format and must
// not change.
var specialKeys = map[SpecialKey]specialInfo{
	VolumeUp:           {"VolumeUp", 0x00070080},
	VolumeDown:         {"VolumeDown", 0x00070081},
	VolumeMute:         {"VolumeMute", 0x0007007f},
	BrightnessUp:       {"BrightnessUp", 0x000c0079},
	BrightnessDown:     {"BrightnessDown", 0x000c007a},
	Power:              {"Power", 0x00070066},
	LaunchPanel:        {"LaunchPanel", 0x000c019f},
	Eject:              {"Eject", 0x000c00b8},
	MediaPlayPause:     {"MediaPlayPause", 0x000c00cd},
	MediaNextTrack:     {"MediaNextTrack", 0x000c00b5},
	MediaPrevTrack:     {"MediaPrevTrack", 0x000c00b6},
	MediaFast:          {"MediaFast", 0x000c0083},
	MediaRewind:        {"MediaRewind", 0x000c00b4},
	IlluminationUp:     {"IlluminationUp", 0x000c006f},
	IlluminationDown:   {"IlluminationDown", 0x000c0070},
	IlluminationToggle: {"IlluminationToggle", 0x000c0072},
}

// present on every platform
var commonSpecials = []SpecialKey{
	VolumeUp,
	VolumeDown,
	VolumeMute,
	MediaPlayPause,
	MediaNextTrack,
	MediaPrevTrack,
}

var macosSpecials = append(append([]SpecialKey{}, commonSpecials...),
	BrightnessUp,
	BrightnessDown,
	Power,
	LaunchPanel,
	Eject,
	MediaFast,
	MediaRewind,
	IlluminationUp,
	IlluminationDown,
	IlluminationToggle,
)

// SpecialKeys returns every special key in declaration order.
func SpecialKeys() []SpecialKey {
	keys := make([]SpecialKey, 0, len(specialKeys))
	for s := VolumeUp; s <= IlluminationToggle; s++ {
		keys = append(keys, s)
	}
	return keys
}

// Code returns the fixed HID usage of the special key, or NoMapping for
// SpecialNone and out of range values.
func (s SpecialKey) Code() CanonicalKeyCode {
	info, ok := specialKeys[s]
	if !ok {
		return NoMapping
	}
	return info.code
}

func (s SpecialKey) String() string {
	if s == SpecialNone {
		return "None"
	}
	info, ok := specialKeys[s]
	if !ok {
		return fmt.Sprintf("SpecialKey(%d)", int(s))
	}
	return info.name
}

// ParseSpecialKey matches a special key name, ignoring case.
func ParseSpecialKey(name string) (SpecialKey, error) {
	for s, info := range specialKeys {
		if strings.EqualFold(info.name, name) {
			return s, nil
		}
	}
	return SpecialNone, Fatalf("unknown special key: '%s'", name)
}
