// Copyright go-hol authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/canonical"
	"github.com/hol-lang/go-hol/pkg/hol/parser"
	"github.com/hol-lang/go-hol/pkg/util"
)

var canonCmd = &cobra.Command{
	Use:   "canon [flags] formula(s)",
	Short: "Canonicalize one or more formulas.",
	Long: `Canonicalize one or more formulas, printing the canonical form of each.
	Formulas are given as arguments, or read from stdin (one per line) when
	no arguments are given.`,
	Run: func(cmd *cobra.Command, args []string) {
		opts := configure(cmd)
		// Splice in formulas given by file.
		if filename := GetString(cmd, "file"); filename != "" {
			lines, err := util.ReadInputFile(filename)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			for _, line := range lines {
				if line = strings.TrimSpace(line); line != "" {
					args = append(args, line)
				}
			}
		}
		//
		symbols := parser.NewSymbolTable()
		formulas := parseFormulas(args, symbols)
		// Echo inputs only when talking to a human.
		echo := term.IsTerminal(int(os.Stdout.Fd()))
		//
		for _, formula := range formulas {
			nformula, err := canonical.Canonicalize(formula, opts...)
			if err != nil {
				fmt.Printf("%s: %v\n", hol.Print(formula, symbols), err)
				os.Exit(1)
			}
			//
			if echo {
				fmt.Printf("%s ~~> %s\n", hol.Print(formula, symbols), hol.Print(nformula, symbols))
			} else {
				fmt.Println(hol.Print(nformula, symbols))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(canonCmd)
	canonCmd.Flags().StringP("file", "f", "", "read formulas from file (one per line)")
}
