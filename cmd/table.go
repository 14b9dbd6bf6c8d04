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

type TableRow struct {
	Name      string
	Native    uint32
	Canonical string
	Shadowed  bool `json:",omitempty"`
}

type TableSpecial struct {
	Name      string
	Canonical string
}

type TableDump struct {
	Table    string
	Platform string
	Rows     []TableRow
	Specials []TableSpecial
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "display the selected key table",
	Long: `
Display every row of the selected key table, followed by the special keys
available on its platform.  Rows marked shadowed lost a collision to a later
row and do not round trip.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		InitTranslator()
		table := translator.Table()
		dump := TableDump{
			Table:    table.Name(),
			Platform: string(table.Platform()),
		}
		for _, row := range table.Rows() {
			dump.Rows = append(dump.Rows, TableRow{
				Name:      row.Name,
				Native:    uint32(row.Native),
				Canonical: row.Canonical.String(),
				Shadowed:  table.Shadowed(row),
			})
		}
		for _, s := range table.Specials() {
			dump.Specials = append(dump.Specials, TableSpecial{Name: s.String(), Canonical: s.Code().String()})
		}
		if OutputJSON {
			fmt.Println(FormatJSON(dump))
			return
		}
		for _, row := range dump.Rows {
			mark := ""
			if row.Shadowed {
				mark = " (shadowed)"
			}
			fmt.Printf("%-20s %6d  %s%s\n", row.Name, row.Native, row.Canonical, mark)
		}
		for _, s := range dump.Specials {
			fmt.Printf("%-20s %6s  %s\n", s.Name, "-", s.Canonical)
		}
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "list key tables",
	Long: `
List the available key tables.  The table compiled for the host is marked.
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		type platform struct {
			Name     string
			Platform string
			Rows     int
			Specials int
			Host     bool
		}
		platforms := []platform{}
		for _, name := range keycode.TableNames() {
			table, err := keycode.TableFor(name)
			cobra.CheckErr(err)
			p := platform{
				Name:     name,
				Platform: string(table.Platform()),
				Rows:     len(table.Rows()),
				Specials: len(table.Specials()),
				Host:     name == keycode.HostTableName(),
			}
			if OutputText {
				mark := ""
				if p.Host {
					mark = "*"
				}
				fmt.Printf("%-12s %-8s %4d %3d %s\n", p.Name, p.Platform, p.Rows, p.Specials, mark)
			}
			platforms = append(platforms, p)
		}
		if OutputJSON {
			fmt.Println(FormatJSON(platforms))
		}
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(platformsCmd)
}
