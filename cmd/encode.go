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

type EncodeResult struct {
	Input  string
	Key    string
	Code   string
	Name   string
	Mapped bool
}

var encodeCmd = &cobra.Command{
	Use:   "encode KEY [KEY...]",
	Short: "translate native keys to HID usage values",
	Long: `
Write the HID usage value of each KEY.

A KEY may be a special key name (VolumeUp, MediaPlayPause, ...), a decimal or
0x-prefixed native code, or a key name such as KeyA, which is first resolved
to its native code in the selected table.

Keys with no mapping encode as 0x00000000.

Examples:
physkey encode 30 0xe04b
physkey --platform macos encode VolumeUp IlluminationUp
physkey --platform windows-vk --text encode 65
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		InitTranslator()
		results := make([]EncodeResult, len(args))
		for i, arg := range args {
			key, err := keycode.ParseKey(translator.Table(), arg)
			cobra.CheckErr(err)
			code, ok := translator.EncodeOK(key)
			results[i] = EncodeResult{
				Input:  arg,
				Key:    key.String(),
				Code:   code.String(),
				Name:   translator.Table().KeyName(code),
				Mapped: ok,
			}
			if OutputText {
				fmt.Printf("%s %s %s\n", results[i].Key, results[i].Code, results[i].Name)
			}
		}
		if OutputJSON {
			fmt.Println(FormatJSON(results))
		}
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
