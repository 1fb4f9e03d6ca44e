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
package canonical

import (
	"testing"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/stretchr/testify/assert"
)

func Test_IsSubset_Bases_00(t *testing.T) {
	c1 := hol.NewConstant(1)
	//
	checkSubset(t, hol.False, c1, true)
	checkSubset(t, c1, hol.True, true)
	checkSubset(t, hol.True, c1, false)
	checkSubset(t, c1, hol.False, false)
	checkSubset(t, hol.True, hol.True, true)
	checkSubset(t, hol.False, hol.False, true)
}

func Test_IsSubset_Reflexive_00(t *testing.T) {
	for _, term := range corpus() {
		nterm, err := Canonicalize(term)
		if err != nil {
			t.Fatalf("canonicalizing %s: %v", term, err)
		}
		//
		if ok, err := IsSubset(nterm, nterm); err != nil || !ok {
			t.Errorf("expected %s to contain itself (%v)", nterm, err)
		}
	}
}

func Test_IsSubset_Conjunction_00(t *testing.T) {
	c1 := hol.NewConstant(1)
	c2 := hol.NewConstant(2)
	c3 := hol.NewConstant(3)
	// A conjunction is contained in each conjunct.
	checkSubset(t, hol.NewAnd(c1, c2), c1, true)
	checkSubset(t, hol.NewAnd(c1, c2), c2, true)
	checkSubset(t, hol.NewAnd(c1, c2), c3, false)
	// A longer conjunction is contained in a shorter one over the same atoms.
	checkSubset(t, hol.NewAnd(c1, c2, c3), hol.NewAnd(c1, c3), true)
	checkSubset(t, hol.NewAnd(c1, c3), hol.NewAnd(c1, c2, c3), false)
}

func Test_IsSubset_Disjunction_00(t *testing.T) {
	c1 := hol.NewConstant(1)
	c2 := hol.NewConstant(2)
	c3 := hol.NewConstant(3)
	// Each disjunct is contained in the disjunction.
	checkSubset(t, c1, hol.NewOr(c1, c2), true)
	checkSubset(t, c3, hol.NewOr(c1, c2), false)
	// A shorter disjunction is contained in a longer one.
	checkSubset(t, hol.NewOr(c1, c2), hol.NewOr(c1, c2, c3), true)
	checkSubset(t, hol.NewOr(c1, c2, c3), hol.NewOr(c1, c2), false)
}

func Test_IsSubset_Mixed_00(t *testing.T) {
	c1 := hol.NewConstant(1)
	c2 := hol.NewConstant(2)
	c3 := hol.NewConstant(3)
	// (c1 & c2) | (c1 & c3) is contained in c1 | anything.
	lhs := hol.NewOr(hol.NewAnd(c1, c2), hol.NewAnd(c1, c3))
	//
	checkSubset(t, lhs, c1, true)
	checkSubset(t, lhs, hol.NewOr(c1, c2), true)
	checkSubset(t, lhs, c2, false)
}

func Test_IsSubset_Negation_00(t *testing.T) {
	c1 := hol.NewConstant(1)
	c2 := hol.NewConstant(2)
	// Complements reverse containment: c1 & c2 below c1 means ~c1 below
	// ~(c1 & c2).
	checkSubset(t, hol.NewNot(c1), hol.NewNot(hol.NewAnd(c1, c2)), true)
	checkSubset(t, hol.NewNot(hol.NewAnd(c1, c2)), hol.NewNot(c1), false)
	checkSubset(t, hol.NewNot(c1), hol.NewNot(c1), true)
	checkSubset(t, hol.NewNot(c1), c2, false)
}

func Test_IsSubset_Atoms_00(t *testing.T) {
	// Distinct atoms are incomparable; equal applications coincide.
	app1 := hol.NewApply(hol.NewConstant(1), hol.NewConstant(3))
	app2 := hol.NewApply(hol.NewConstant(2), hol.NewConstant(3))
	//
	checkSubset(t, app1, app1, true)
	checkSubset(t, app1, app2, false)
	checkSubset(t, hol.NewConstant(1), hol.NewConstant(2), false)
	checkSubset(t, hol.NewInt(1), hol.NewInt(2), false)
}

func Test_IsSubset_Unsupported_00(t *testing.T) {
	pred := func(id uint, v uint) hol.Term {
		return hol.NewApply(hol.NewConstant(id), hol.NewVariable(v))
	}
	// Distinct quantified formulas have no structural rule.
	lhs := hol.NewForAll(1, pred(1, 1))
	rhs := hol.NewForAll(1, pred(2, 1))
	//
	_, err := IsSubset(lhs, rhs)
	assert.ErrorIs(t, err, ErrUnsupported)
	// Likewise conditionals against atoms.
	_, err = IsSubset(hol.NewIfThen(hol.NewConstant(1), hol.NewConstant(2)), hol.NewConstant(2))
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_IsSubset_Intersection_00(t *testing.T) {
	lhs := hol.NewApply(hol.NewConstant(0), hol.NewConstant(2))
	rhs := hol.NewApply(hol.NewConstant(1), hol.NewConstant(2))
	//
	both, err := Intersect(lhs, rhs)
	assert.NoError(t, err)
	// The intersection is contained in both operands.
	checkSubset(t, both, lhs, true)
	checkSubset(t, both, rhs, true)
	checkSubset(t, lhs, both, false)
}

func checkSubset(t *testing.T, first hol.Term, second hol.Term, expected bool) {
	t.Helper()
	//
	actual, err := IsSubset(first, second)
	if err != nil {
		t.Fatalf("testing %s within %s: %v", first, second, err)
	}
	//
	if actual != expected {
		t.Errorf("expected IsSubset(%s, %s) == %t", first, second, expected)
	}
}
