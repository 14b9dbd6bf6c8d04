//go:build !darwin && !windows

package keycode

const hostTableName = TableGeneric
