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
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/canonical"
	"github.com/hol-lang/go-hol/pkg/hol/parser"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure logging and canonicalization from the persistent flags.
func configure(cmd *cobra.Command) []canonical.Option {
	var opts []canonical.Option
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	if GetFlag(cmd, "polymorphic") {
		opts = append(opts, canonical.WithPolymorphicEquality())
	}
	//
	if GetFlag(cmd, "distinct") {
		opts = append(opts, canonical.WithDistinctConstants())
	}
	//
	if depth := GetUint(cmd, "max-depth"); depth != 0 {
		opts = append(opts, canonical.WithMaxDepth(depth))
	}
	//
	return opts
}

// Parse each argument as a formula against a shared symbol table.  When no
// arguments are given, formulas are read from stdin (one per line).
func parseFormulas(args []string, symbols *parser.SymbolTable) []hol.Term {
	if len(args) == 0 {
		args = readLines(os.Stdin)
	}
	//
	formulas := make([]hol.Term, len(args))
	//
	for i, arg := range args {
		formula, err := parser.Parse(arg, symbols)
		if err != nil {
			fmt.Printf("%q: %v\n", arg, err)
			os.Exit(2)
		}
		//
		formulas[i] = formula
	}
	//
	return formulas
}

// Read non-blank lines from the given source.
func readLines(source *os.File) []string {
	var lines []string
	//
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	//
	if err := scanner.Err(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return lines
}
