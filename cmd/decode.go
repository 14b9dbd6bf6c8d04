/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"

	"github.com/rstms/physkey/keycode"
	"github.com/spf13/cobra"
)

type DecodeResult struct {
	Input   string
	Code    string
	Name    string
	Key     string
	Special string `json:",omitempty"`
	Native  uint32
	Mapped  bool
}

var decodeCmd = &cobra.Command{
	Use:   "decode CODE [CODE...]",
	Short: "translate HID usage values to native keys",
	Long: `
Write the native key of each CODE.

A CODE may be a decimal or 0x-prefixed HID usage value, or a key name such as
KeyA or VolumeUp.  Special key values decode to the special key; other values
decode to the native code of the selected table.  Values with no mapping
decode to native code 0, or to the value itself with --fallback raw.

Examples:
physkey decode 0x00070004
physkey --platform macos decode ArrowUp 0x000c006f
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		InitTranslator()
		results := make([]DecodeResult, len(args))
		for i, arg := range args {
			code, err := keycode.ParseCanonical(translator.Table(), arg)
			cobra.CheckErr(err)
			_, ok := translator.Lookup(code)
			key := translator.Decode(code)
			results[i] = DecodeResult{
				Input:  arg,
				Code:   code.String(),
				Name:   translator.Table().KeyName(code),
				Key:    key.String(),
				Native: uint32(key.Native),
				Mapped: ok,
			}
			if key.IsSpecial() {
				results[i].Special = key.Special.String()
			}
			if OutputText {
				fmt.Printf("%s %s %s\n", results[i].Code, results[i].Key, results[i].Name)
			}
		}
		if OutputJSON {
			fmt.Println(FormatJSON(results))
		}
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
