package keycode

// Scan codes are what the raw input path reports; TableWindowsVK is
// available by name.
const hostTableName = TableWindows
