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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/canonical"
	"github.com/hol-lang/go-hol/pkg/hol/parser"
)

var subsetCmd = &cobra.Command{
	Use:   "subset [flags] formula1 formula2",
	Short: "Decide whether one formula subsumes another.",
	Long: `Decide whether the set denoted by the first formula is contained in the
	set denoted by the second.  Exits 0 when containment holds, 1 when it
	does not, and 2 when the pair lies outside the decidable fragment.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(2)
		}
		//
		opts := configure(cmd)
		//
		symbols := parser.NewSymbolTable()
		formulas := parseFormulas(args, symbols)
		//
		canonicalized := make([]hol.Term, len(formulas))
		for i, formula := range formulas {
			nformula, err := canonical.Canonicalize(formula, opts...)
			if err != nil {
				fmt.Printf("%s: %v\n", hol.Print(formula, symbols), err)
				os.Exit(2)
			}
			//
			canonicalized[i] = nformula
		}
		//
		ok, err := canonical.IsSubset(canonicalized[0], canonicalized[1])
		//
		switch {
		case errors.Is(err, canonical.ErrUnsupported):
			fmt.Println("undecided")
			os.Exit(2)
		case err != nil:
			fmt.Println(err)
			os.Exit(2)
		case ok:
			fmt.Println("true")
		default:
			fmt.Println("false")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(subsetCmd)
}
