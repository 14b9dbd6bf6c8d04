package keycode

// Numpad0 is 0x52 under evdev, the macOS virtual key codes and the Windows
// scan codes alike, so it is mapped even without a platform table.
var genericRows = []Mapping{
	{"Numpad0", 0x52, 0x00070062},
}
