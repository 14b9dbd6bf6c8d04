// go-common local proxy functions

package cmd

import (
	common "github.com/rstms/go-common"
)

type CobraCommand interface {
}

func CobraInit(rootCmd CobraCommand) {
	common.CobraInit(rootCmd)
}

func OptionSwitch(cobraCmd CobraCommand, name, flag, description string) {
	common.OptionSwitch(cobraCmd, name, flag, description)
}

func OptionString(cobraCmd CobraCommand, name, flag, defaultValue, description string) {
	common.OptionString(cobraCmd, name, flag, defaultValue, description)
}

func OptionKey(cobraCmd CobraCommand, key string) string {
	return common.OptionKey(cobraCmd, key)
}

func FormatJSON(value any) string {
	return common.FormatJSON(value)
}

func ViperGetBool(key string) bool {
	return common.ViperGetBool(key)
}

func HexDump(data []byte) string {
	return common.HexDump(data)
}
