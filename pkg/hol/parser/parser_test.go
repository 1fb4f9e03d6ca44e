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
package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/stretchr/testify/assert"
)

func parseOne(t *testing.T, input string) (hol.Term, *SymbolTable) {
	t.Helper()
	//
	symbols := NewSymbolTable()
	//
	term, err := Parse(input, symbols)
	if err != nil {
		t.Fatalf("parsing %q: %v", input, err)
	}
	//
	return term, symbols
}

func checkParse(t *testing.T, input string, expected hol.Term) {
	t.Helper()
	//
	term, _ := parseOne(t, input)
	//
	if diff := cmp.Diff(expected, term); diff != "" {
		t.Errorf("parsing %q (-expected +actual):\n%s", input, diff)
	}
}

func Test_Parse_Atoms_00(t *testing.T) {
	checkParse(t, "T", hol.True)
	checkParse(t, "F", hol.False)
	checkParse(t, "socrates", hol.NewConstant(0))
	checkParse(t, "$3", hol.NewParameter(3))
	checkParse(t, "42", hol.NewInt(42))
	checkParse(t, "-7", hol.NewInt(-7))
}

func Test_Parse_Symbols_00(t *testing.T) {
	term, symbols := parseOne(t, "likes(alice,bob) & alice = bob")
	// Names intern densely in order of first sight.
	assert.Equal(t, uint(3), symbols.Len())
	//
	expected := hol.NewAnd(
		hol.NewApply2(hol.NewConstant(0), hol.NewConstant(1), hol.NewConstant(2)),
		hol.NewEquals(hol.NewConstant(1), hol.NewConstant(2)))
	//
	assert.Empty(t, cmp.Diff(expected, term))
	//
	name, ok := symbols.Name(0)
	assert.True(t, ok)
	assert.Equal(t, "likes", name)
}

func Test_Parse_Connectives_00(t *testing.T) {
	a, b, c := hol.NewConstant(0), hol.NewConstant(1), hol.NewConstant(2)
	//
	checkParse(t, "a & b & c", hol.NewAnd(a, b, c))
	checkParse(t, "a | b | c", hol.NewOr(a, b, c))
	checkParse(t, "a <=> b <=> c", hol.NewIff(a, b, c))
	checkParse(t, "~a", hol.NewNot(a))
	checkParse(t, "~~a", hol.NewNot(hol.NewNot(a)))
}

func Test_Parse_Connectives_01(t *testing.T) {
	a, b, c := hol.NewConstant(0), hol.NewConstant(1), hol.NewConstant(2)
	// Implication and equality chains are right-associative.
	checkParse(t, "a => b => c", hol.NewIfThen(a, hol.NewIfThen(b, c)))
	checkParse(t, "a = b = c", hol.NewEquals(a, hol.NewEquals(b, c)))
	// Grouping overrides.
	checkParse(t, "(a => b) => c", hol.NewIfThen(hol.NewIfThen(a, b), c))
	checkParse(t, "a & (b | c)", hol.NewAnd(a, hol.NewOr(b, c)))
}

func Test_Parse_Connectives_02(t *testing.T) {
	a, b, c := hol.NewConstant(0), hol.NewConstant(1), hol.NewConstant(2)
	// Equality binds tighter than the connectives.
	checkParse(t, "a = b & c", hol.NewAnd(hol.NewEquals(a, b), c))
	checkParse(t, "a | b = c", hol.NewOr(a, hol.NewEquals(b, c)))
	checkParse(t, "a = b => b = c", hol.NewIfThen(hol.NewEquals(a, b), hol.NewEquals(b, c)))
}

func Test_Parse_Quantifiers_00(t *testing.T) {
	// !x(man(x) => mortal(x))
	expected := hol.NewForAll(1, hol.NewIfThen(
		hol.NewApply(hol.NewConstant(0), hol.NewVariable(1)),
		hol.NewApply(hol.NewConstant(1), hol.NewVariable(1))))
	//
	checkParse(t, "!x(man(x) => mortal(x))", expected)
}

func Test_Parse_Quantifiers_01(t *testing.T) {
	// Binders number densely in order of appearance.
	expected := hol.NewForAll(1, hol.NewExists(2,
		hol.NewApply2(hol.NewConstant(0), hol.NewVariable(1), hol.NewVariable(2))))
	//
	checkParse(t, "!x(?y(likes(x,y)))", expected)
}

func Test_Parse_Lambda_00(t *testing.T) {
	expected := hol.NewEquals(
		hol.NewLambda(1, hol.NewApply(hol.NewConstant(0), hol.NewVariable(1))),
		hol.NewConstant(1))
	//
	checkParse(t, "^x(happy(x)) = joyful", expected)
}

func Test_Parse_Application_00(t *testing.T) {
	// A lambda applies directly.
	expected := hol.NewApply(
		hol.NewLambda(1, hol.NewApply(hol.NewConstant(0), hol.NewVariable(1))),
		hol.NewConstant(1))
	//
	checkParse(t, "^x(happy(x))(alice)", expected)
}

func Test_Parse_Errors_00(t *testing.T) {
	inputs := []string{
		"",
		"a &",
		"a & b | c",
		"(a",
		"!x(x",
		"!x(?x(p(x)))",
		"f(a,b,c)",
		"a @ b",
		"$x",
		"<= a",
	}
	//
	for _, input := range inputs {
		_, err := Parse(input, NewSymbolTable())
		//
		var syntax *SyntaxError
		//
		assert.ErrorAs(t, err, &syntax, "input %q", input)
	}
}

func Test_Parse_RoundTrip_00(t *testing.T) {
	// Printing a closed term and reparsing it reproduces the term exactly,
	// provided its binders are densely numbered in binder order.
	v := hol.NewVariable
	c := hol.NewConstant
	//
	terms := []hol.Term{
		hol.True,
		hol.NewNot(c(0)),
		hol.NewAnd(c(0), c(1), c(2)),
		hol.NewIfThen(hol.NewOr(c(0), c(1)), c(2)),
		hol.NewForAll(1, hol.NewIfThen(
			hol.NewApply(c(0), v(1)),
			hol.NewExists(2, hol.NewApply2(c(1), v(1), v(2))))),
		hol.NewEquals(c(0), hol.NewEquals(c(1), hol.NewNot(c(2)))),
		hol.NewLambda(1, hol.NewAnd(hol.NewApply(c(0), v(1)), hol.True)),
		hol.NewEquals(hol.NewParameter(2), hol.NewInt(-3)),
	}
	//
	for _, term := range terms {
		text := hol.Print(term, nil)
		//
		nterm, err := Parse(text, NewSymbolTable())
		if err != nil {
			t.Fatalf("reparsing %q: %v", text, err)
		}
		//
		if !hol.Equal(term, nterm) {
			t.Errorf("round trip of %q produced %s", text, nterm)
		}
	}
}
