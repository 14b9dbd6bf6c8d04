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
	"log"
	"strconv"
	"strings"

	"github.com/rstms/physkey/keycode"
	"github.com/spf13/cobra"
)

type StrokeKey struct {
	Code   string
	Name   string
	Native uint32
	Mapped bool
}

type StrokeResult struct {
	Char      string
	Key       StrokeKey
	Modifiers []StrokeKey
}

func strokeKey(code keycode.CanonicalKeyCode) StrokeKey {
	key, ok := translator.Lookup(code)
	return StrokeKey{
		Code:   code.String(),
		Name:   translator.Table().KeyName(code),
		Native: uint32(key.Native),
		Mapped: ok,
	}
}

var textCmd = &cobra.Command{
	Use:   "text KEYS",
	Short: "translate text into keystrokes",
	Long: `
Translate the KEYS argument into HID usage values on a US keyboard layout,
and resolve each key and its held modifiers to native codes in the selected
table.

Quoting:
In bash, use single quotes around KEYS, backslash-escape double quotes, and
escape any single quotes using backslash-escaped hex (\x27).  Standard
backslash escapes such as \n are decoded.

Examples:
physkey text 'This has a \x27quoted\x27 element\n'
physkey --platform windows-vk --text text 'echo $PATH\n'
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		InitTranslator()
		keys, err := keycode.UnquoteKeys(args[0])
		cobra.CheckErr(err)
		if ViperGetBool("debug") {
			log.Printf("keys:\n%s\n", HexDump([]byte(keys)))
		}
		strokes, err := keycode.TextStrokes(keys)
		cobra.CheckErr(err)
		results := make([]StrokeResult, len(strokes))
		for i, stroke := range strokes {
			results[i] = StrokeResult{
				Char:      string(stroke.Char),
				Key:       strokeKey(stroke.Code),
				Modifiers: []StrokeKey{},
			}
			names := []string{}
			for _, mod := range stroke.Modifiers {
				results[i].Modifiers = append(results[i].Modifiers, strokeKey(mod))
				names = append(names, translator.Table().KeyName(mod))
			}
			if OutputText {
				fmt.Printf("%-6s %s %6d %s\n", strconv.Quote(results[i].Char), results[i].Key.Code, results[i].Key.Native, strings.Join(append(names, results[i].Key.Name), "+"))
			}
		}
		if OutputJSON {
			fmt.Println(FormatJSON(results))
		}
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
}
