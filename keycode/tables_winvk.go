package keycode

// Windows virtual-key codes (VK_*).  The unsided VK_CONTROL, VK_SHIFT and
// VK_MENU precede their sided forms so the sided codes win on decode.
// NumpadEnter has no virtual-key code of its own and is absent.
var windowsVKRows = []Mapping{
	{"Sleep", 0x5f, 0x00010082},
	{"KeyA", 0x41, 0x00070004},
	{"KeyB", 0x42, 0x00070005},
	{"KeyC", 0x43, 0x00070006},
	{"KeyD", 0x44, 0x00070007},
	{"KeyE", 0x45, 0x00070008},
	{"KeyF", 0x46, 0x00070009},
	{"KeyG", 0x47, 0x0007000a},
	{"KeyH", 0x48, 0x0007000b},
	{"KeyI", 0x49, 0x0007000c},
	{"KeyJ", 0x4a, 0x0007000d},
	{"KeyK", 0x4b, 0x0007000e},
	{"KeyL", 0x4c, 0x0007000f},
	{"KeyM", 0x4d, 0x00070010},
	{"KeyN", 0x4e, 0x00070011},
	{"KeyO", 0x4f, 0x00070012},
	{"KeyP", 0x50, 0x00070013},
	{"KeyQ", 0x51, 0x00070014},
	{"KeyR", 0x52, 0x00070015},
	{"KeyS", 0x53, 0x00070016},
	{"KeyT", 0x54, 0x00070017},
	{"KeyU", 0x55, 0x00070018},
	{"KeyV", 0x56, 0x00070019},
	{"KeyW", 0x57, 0x0007001a},
	{"KeyX", 0x58, 0x0007001b},
	{"KeyY", 0x59, 0x0007001c},
	{"KeyZ", 0x5a, 0x0007001d},
	{"Digit1", 0x31, 0x0007001e},
	{"Digit2", 0x32, 0x0007001f},
	{"Digit3", 0x33, 0x00070020},
	{"Digit4", 0x34, 0x00070021},
	{"Digit5", 0x35, 0x00070022},
	{"Digit6", 0x36, 0x00070023},
	{"Digit7", 0x37, 0x00070024},
	{"Digit8", 0x38, 0x00070025},
	{"Digit9", 0x39, 0x00070026},
	{"Digit0", 0x30, 0x00070027},
	{"Enter", 0x0d, 0x00070028},
	{"Escape", 0x1b, 0x00070029},
	{"Backspace", 0x08, 0x0007002a},
	{"Tab", 0x09, 0x0007002b},
	{"Space", 0x20, 0x0007002c},
	{"Minus", 0xbd, 0x0007002d},
	{"Equal", 0xbb, 0x0007002e},
	{"BracketLeft", 0xdb, 0x0007002f},
	{"BracketRight", 0xdd, 0x00070030},
	{"Backslash", 0xdc, 0x00070031},
	{"Semicolon", 0xba, 0x00070033},
	{"Quote", 0xde, 0x00070034},
	{"Backquote", 0xc0, 0x00070035},
	{"Comma", 0xbc, 0x00070036},
	{"Period", 0xbe, 0x00070037},
	{"Slash", 0xbf, 0x00070038},
	{"CapsLock", 0x14, 0x00070039},
	{"F1", 0x70, 0x0007003a},
	{"F2", 0x71, 0x0007003b},
	{"F3", 0x72, 0x0007003c},
	{"F4", 0x73, 0x0007003d},
	{"F5", 0x74, 0x0007003e},
	{"F6", 0x75, 0x0007003f},
	{"F7", 0x76, 0x00070040},
	{"F8", 0x77, 0x00070041},
	{"F9", 0x78, 0x00070042},
	{"F10", 0x79, 0x00070043},
	{"F11", 0x7a, 0x00070044},
	{"F12", 0x7b, 0x00070045},
	{"PrintScreen", 0x2c, 0x00070046},
	{"ScrollLock", 0x91, 0x00070047},
	{"Pause", 0x13, 0x00070048},
	{"Insert", 0x2d, 0x00070049},
	{"Home", 0x24, 0x0007004a},
	{"PageUp", 0x21, 0x0007004b},
	{"Delete", 0x2e, 0x0007004c},
	{"End", 0x23, 0x0007004d},
	{"PageDown", 0x22, 0x0007004e},
	{"ArrowRight", 0x27, 0x0007004f},
	{"ArrowLeft", 0x25, 0x00070050},
	{"ArrowDown", 0x28, 0x00070051},
	{"ArrowUp", 0x26, 0x00070052},
	{"NumLock", 0x90, 0x00070053},
	{"NumpadDivide", 0x6f, 0x00070054},
	{"NumpadMultiply", 0x6a, 0x00070055},
	{"NumpadSubtract", 0x6d, 0x00070056},
	{"NumpadAdd", 0x6b, 0x00070057},
	{"Numpad1", 0x61, 0x00070059},
	{"Numpad2", 0x62, 0x0007005a},
	{"Numpad3", 0x63, 0x0007005b},
	{"Numpad4", 0x64, 0x0007005c},
	{"Numpad5", 0x65, 0x0007005d},
	{"Numpad6", 0x66, 0x0007005e},
	{"Numpad7", 0x67, 0x0007005f},
	{"Numpad8", 0x68, 0x00070060},
	{"Numpad9", 0x69, 0x00070061},
	{"Numpad0", 0x60, 0x00070062},
	{"NumpadDecimal", 0x6e, 0x00070063},
	{"IntlBackslash", 0xe2, 0x00070064},
	{"ContextMenu", 0x5d, 0x00070065},
	{"F13", 0x7c, 0x00070068},
	{"F14", 0x7d, 0x00070069},
	{"F15", 0x7e, 0x0007006a},
	{"F16", 0x7f, 0x0007006b},
	{"F17", 0x80, 0x0007006c},
	{"F18", 0x81, 0x0007006d},
	{"F19", 0x82, 0x0007006e},
	{"F20", 0x83, 0x0007006f},
	{"F21", 0x84, 0x00070070},
	{"F22", 0x85, 0x00070071},
	{"F23", 0x86, 0x00070072},
	{"F24", 0x87, 0x00070073},
	{"Help", 0x2f, 0x00070075},
	{"NumpadComma", 0x6c, 0x00070085},
	{"KanaMode", 0x15, 0x00070088},
	{"Convert", 0x1c, 0x0007008a},
	{"NonConvert", 0x1d, 0x0007008b},
	{"ControlLeft", 0x11, 0x000700e0},
	{"ShiftLeft", 0x10, 0x000700e1},
	{"AltLeft", 0x12, 0x000700e2},
	{"ControlLeft", 0xa2, 0x000700e0},
	{"ShiftLeft", 0xa0, 0x000700e1},
	{"AltLeft", 0xa4, 0x000700e2},
	{"MetaLeft", 0x5b, 0x000700e3},
	{"ControlRight", 0xa3, 0x000700e4},
	{"ShiftRight", 0xa1, 0x000700e5},
	{"AltRight", 0xa5, 0x000700e6},
	{"MetaRight", 0x5c, 0x000700e7},
	{"MediaStop", 0xb2, 0x000c00b7},
	{"MediaSelect", 0xb5, 0x000c0183},
	{"LaunchMail", 0xb4, 0x000c018a},
	{"LaunchApp2", 0xb7, 0x000c0192},
	{"LaunchApp1", 0xb6, 0x000c0194},
	{"BrowserSearch", 0xaa, 0x000c0221},
	{"BrowserHome", 0xac, 0x000c0223},
	{"BrowserBack", 0xa6, 0x000c0224},
	{"BrowserForward", 0xa7, 0x000c0225},
	{"BrowserStop", 0xa9, 0x000c0226},
	{"BrowserRefresh", 0xa8, 0x000c0227},
	{"BrowserFavorites", 0xab, 0x000c022a},
}
