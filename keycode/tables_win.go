package keycode

// Windows set 1 scan codes.  Extended keys carry the 0xe0 prefix in the
// high byte, as reported by the raw keyboard input path.
var windowsRows = []Mapping{
	{"Sleep", 0xe05f, 0x00010082},
	{"WakeUp", 0xe063, 0x00010083},
	{"UsbErrorRollOver", 0xff, 0x00070001},
	{"UsbPostFail", 0xfc, 0x00070002},
	{"KeyA", 0x1e, 0x00070004},
	{"KeyB", 0x30, 0x00070005},
	{"KeyC", 0x2e, 0x00070006},
	{"KeyD", 0x20, 0x00070007},
	{"KeyE", 0x12, 0x00070008},
	{"KeyF", 0x21, 0x00070009},
	{"KeyG", 0x22, 0x0007000a},
	{"KeyH", 0x23, 0x0007000b},
	{"KeyI", 0x17, 0x0007000c},
	{"KeyJ", 0x24, 0x0007000d},
	{"KeyK", 0x25, 0x0007000e},
	{"KeyL", 0x26, 0x0007000f},
	{"KeyM", 0x32, 0x00070010},
	{"KeyN", 0x31, 0x00070011},
	{"KeyO", 0x18, 0x00070012},
	{"KeyP", 0x19, 0x00070013},
	{"KeyQ", 0x10, 0x00070014},
	{"KeyR", 0x13, 0x00070015},
	{"KeyS", 0x1f, 0x00070016},
	{"KeyT", 0x14, 0x00070017},
	{"KeyU", 0x16, 0x00070018},
	{"KeyV", 0x2f, 0x00070019},
	{"KeyW", 0x11, 0x0007001a},
	{"KeyX", 0x2d, 0x0007001b},
	{"KeyY", 0x15, 0x0007001c},
	{"KeyZ", 0x2c, 0x0007001d},
	{"Digit1", 0x02, 0x0007001e},
	{"Digit2", 0x03, 0x0007001f},
	{"Digit3", 0x04, 0x00070020},
	{"Digit4", 0x05, 0x00070021},
	{"Digit5", 0x06, 0x00070022},
	{"Digit6", 0x07, 0x00070023},
	{"Digit7", 0x08, 0x00070024},
	{"Digit8", 0x09, 0x00070025},
	{"Digit9", 0x0a, 0x00070026},
	{"Digit0", 0x0b, 0x00070027},
	{"Enter", 0x1c, 0x00070028},
	{"Escape", 0x01, 0x00070029},
	{"Backspace", 0x0e, 0x0007002a},
	{"Tab", 0x0f, 0x0007002b},
	{"Space", 0x39, 0x0007002c},
	{"Minus", 0x0c, 0x0007002d},
	{"Equal", 0x0d, 0x0007002e},
	{"BracketLeft", 0x1a, 0x0007002f},
	{"BracketRight", 0x1b, 0x00070030},
	{"Backslash", 0x2b, 0x00070031},
	{"Semicolon", 0x27, 0x00070033},
	{"Quote", 0x28, 0x00070034},
	{"Backquote", 0x29, 0x00070035},
	{"Comma", 0x33, 0x00070036},
	{"Period", 0x34, 0x00070037},
	{"Slash", 0x35, 0x00070038},
	{"CapsLock", 0x3a, 0x00070039},
	{"F1", 0x3b, 0x0007003a},
	{"F2", 0x3c, 0x0007003b},
	{"F3", 0x3d, 0x0007003c},
	{"F4", 0x3e, 0x0007003d},
	{"F5", 0x3f, 0x0007003e},
	{"F6", 0x40, 0x0007003f},
	{"F7", 0x41, 0x00070040},
	{"F8", 0x42, 0x00070041},
	{"F9", 0x43, 0x00070042},
	{"F10", 0x44, 0x00070043},
	{"F11", 0x57, 0x00070044},
	{"F12", 0x58, 0x00070045},
	{"PrintScreen", 0xe037, 0x00070046},
	{"ScrollLock", 0x46, 0x00070047},
	{"Pause", 0x45, 0x00070048},
	{"Insert", 0xe052, 0x00070049},
	{"Home", 0xe047, 0x0007004a},
	{"PageUp", 0xe049, 0x0007004b},
	{"Delete", 0xe053, 0x0007004c},
	{"End", 0xe04f, 0x0007004d},
	{"PageDown", 0xe051, 0x0007004e},
	{"ArrowRight", 0xe04d, 0x0007004f},
	{"ArrowLeft", 0xe04b, 0x00070050},
	{"ArrowDown", 0xe050, 0x00070051},
	{"ArrowUp", 0xe048, 0x00070052},
	{"NumLock", 0xe045, 0x00070053},
	{"NumpadDivide", 0xe035, 0x00070054},
	{"NumpadMultiply", 0x37, 0x00070055},
	{"NumpadSubtract", 0x4a, 0x00070056},
	{"NumpadAdd", 0x4e, 0x00070057},
	{"NumpadEnter", 0xe01c, 0x00070058},
	{"Numpad1", 0x4f, 0x00070059},
	{"Numpad2", 0x50, 0x0007005a},
	{"Numpad3", 0x51, 0x0007005b},
	{"Numpad4", 0x4b, 0x0007005c},
	{"Numpad5", 0x4c, 0x0007005d},
	{"Numpad6", 0x4d, 0x0007005e},
	{"Numpad7", 0x47, 0x0007005f},
	{"Numpad8", 0x48, 0x00070060},
	{"Numpad9", 0x49, 0x00070061},
	{"Numpad0", 0x52, 0x00070062},
	{"NumpadDecimal", 0x53, 0x00070063},
	{"IntlBackslash", 0x56, 0x00070064},
	{"ContextMenu", 0xe05d, 0x00070065},
	{"Power", 0xe05e, 0x00070066},
	{"NumpadEqual", 0x59, 0x00070067},
	{"F13", 0x64, 0x00070068},
	{"F14", 0x65, 0x00070069},
	{"F15", 0x66, 0x0007006a},
	{"F16", 0x67, 0x0007006b},
	{"F17", 0x68, 0x0007006c},
	{"F18", 0x69, 0x0007006d},
	{"F19", 0x6a, 0x0007006e},
	{"F20", 0x6b, 0x0007006f},
	{"F21", 0x6c, 0x00070070},
	{"F22", 0x6d, 0x00070071},
	{"F23", 0x6e, 0x00070072},
	{"F24", 0x76, 0x00070073},
	{"Help", 0xe03b, 0x00070075},
	{"Undo", 0xe008, 0x0007007a},
	{"Cut", 0xe017, 0x0007007b},
	{"Copy", 0xe018, 0x0007007c},
	{"Paste", 0xe00a, 0x0007007d},
	{"NumpadComma", 0x7e, 0x00070085},
	{"IntlRo", 0x73, 0x00070087},
	{"KanaMode", 0x70, 0x00070088},
	{"IntlYen", 0x7d, 0x00070089},
	{"Convert", 0x79, 0x0007008a},
	{"NonConvert", 0x7b, 0x0007008b},
	{"Lang1", 0x72, 0x00070090},
	{"Lang2", 0x71, 0x00070091},
	{"Lang3", 0x78, 0x00070092},
	{"Lang4", 0x77, 0x00070093},
	{"ControlLeft", 0x1d, 0x000700e0},
	{"ShiftLeft", 0x2a, 0x000700e1},
	{"AltLeft", 0x38, 0x000700e2},
	{"MetaLeft", 0xe05b, 0x000700e3},
	{"ControlRight", 0xe01d, 0x000700e4},
	{"ShiftRight", 0x36, 0x000700e5},
	{"AltRight", 0xe038, 0x000700e6},
	{"MetaRight", 0xe05c, 0x000700e7},
	{"MediaStop", 0xe024, 0x000c00b7},
	{"Eject", 0xe02c, 0x000c00b8},
	{"MediaSelect", 0xe06d, 0x000c0183},
	{"LaunchMail", 0xe06c, 0x000c018a},
	{"LaunchApp2", 0xe021, 0x000c0192},
	{"LaunchApp1", 0xe06b, 0x000c0194},
	{"BrowserSearch", 0xe065, 0x000c0221},
	{"BrowserHome", 0xe032, 0x000c0223},
	{"BrowserBack", 0xe06a, 0x000c0224},
	{"BrowserForward", 0xe069, 0x000c0225},
	{"BrowserStop", 0xe068, 0x000c0226},
	{"BrowserRefresh", 0xe067, 0x000c0227},
	{"BrowserFavorites", 0xe066, 0x000c022a},
}
