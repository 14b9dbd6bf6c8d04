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
	"os"
	"strings"

	"github.com/rstms/physkey/keycode"
	"github.com/spf13/cobra"
)

var OutputJSON bool
var OutputText bool

var translator *keycode.Translator

var rootCmd = &cobra.Command{
	Version: keycode.Version,
	Use:     "physkey",
	Short:   "translate physical key codes",
	Long: `
Translate between native key codes and USB HID usage values.

Native codes are macOS virtual key codes, Windows scan codes or Windows
virtual-key codes, selected with --platform.  The default is the table
compiled for the host.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		OutputJSON = true
		OutputText = false
		if ViperGetBool("text") {
			OutputText = true
			OutputJSON = false
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	CobraInit(rootCmd)
	OptionSwitch(rootCmd, "json", "", "format output as JSON (default)")
	OptionSwitch(rootCmd, "text", "", "format output as text")
	OptionString(rootCmd, "platform", "p", "", "key table: "+strings.Join(keycode.TableNames(), ", "))
	OptionString(rootCmd, "fallback", "", "", "decode result for unmapped codes: zero or raw")
}

func InitTranslator() {
	t, err := keycode.NewTranslatorFromConfig()
	cobra.CheckErr(err)
	translator = t
}
