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
package sets

import (
	"testing"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/canonical"
	"github.com/stretchr/testify/assert"
)

func Test_Reasoner_Dedup_00(t *testing.T) {
	r := NewReasoner()
	// Two formulas with one canonical form denote one set.
	a, err := r.Add(hol.NewAnd(hol.NewConstant(1), hol.NewConstant(2)))
	assert.NoError(t, err)
	//
	b, err := r.Add(hol.NewAnd(hol.NewConstant(2), hol.NewConstant(1)))
	assert.NoError(t, err)
	//
	assert.Equal(t, a, b)
	assert.Equal(t, uint(1), r.Size())
}

func Test_Reasoner_Containment_00(t *testing.T) {
	r := NewReasoner()
	//
	c1 := hol.NewConstant(1)
	c2 := hol.NewConstant(2)
	//
	both, err := r.Add(hol.NewAnd(c1, c2))
	assert.NoError(t, err)
	//
	one, err := r.Add(c1)
	assert.NoError(t, err)
	//
	either, err := r.Add(hol.NewOr(c1, c2))
	assert.NoError(t, err)
	// c1 & c2 below c1 below c1 | c2
	assert.True(t, r.Contains(both, one))
	assert.True(t, r.Contains(one, either))
	assert.False(t, r.Contains(one, both))
	assert.False(t, r.Contains(either, one))
}

func Test_Reasoner_Closure_00(t *testing.T) {
	r := NewReasoner()
	//
	c1 := hol.NewConstant(1)
	c2 := hol.NewConstant(2)
	c3 := hol.NewConstant(3)
	//
	all, err := r.Add(hol.NewAnd(c1, c2, c3))
	assert.NoError(t, err)
	//
	two, err := r.Add(hol.NewAnd(c1, c2))
	assert.NoError(t, err)
	//
	one, err := r.Add(c1)
	assert.NoError(t, err)
	// Ancestors are transitive.
	ancestors := r.Ancestors(all)
	assert.True(t, ancestors.Contains(two))
	assert.True(t, ancestors.Contains(one))
	// Descendants mirror them.
	descendants := r.Descendants(one)
	assert.True(t, descendants.Contains(two))
	assert.True(t, descendants.Contains(all))
	assert.False(t, descendants.Contains(one))
}

func Test_Reasoner_Intersect_00(t *testing.T) {
	r := NewReasoner()
	//
	a, err := r.Add(hol.NewApply(hol.NewConstant(0), hol.NewConstant(2)))
	assert.NoError(t, err)
	//
	b, err := r.Add(hol.NewApply(hol.NewConstant(1), hol.NewConstant(2)))
	assert.NoError(t, err)
	//
	meet, err := r.Intersect(a, b)
	assert.NoError(t, err)
	// The intersection sits below both operands.
	assert.True(t, r.Contains(meet, a))
	assert.True(t, r.Contains(meet, b))
	assert.False(t, r.Contains(a, meet))
	// Intersecting again is a no-op.
	again, err := r.Intersect(a, b)
	assert.NoError(t, err)
	assert.Equal(t, meet, again)
}

func Test_Reasoner_Undecided_00(t *testing.T) {
	r := NewReasoner()
	//
	forall := hol.NewForAll(1, hol.NewApply(hol.NewConstant(0), hol.NewVariable(1)))
	exists := hol.NewExists(1, hol.NewApply(hol.NewConstant(1), hol.NewVariable(1)))
	//
	a, err := r.Add(forall)
	assert.NoError(t, err)
	//
	b, err := r.Add(exists)
	assert.NoError(t, err)
	// Undecidable pairs simply contribute no edge.
	assert.False(t, r.Contains(a, b))
	assert.False(t, r.Contains(b, a))
}

func Test_Reasoner_Errors_00(t *testing.T) {
	r := NewReasoner()
	//
	_, err := r.Intersect(0, 1)
	assert.Error(t, err)
	// Ill-typed formulas are rejected outright.
	c0 := hol.NewConstant(0)
	_, err = r.Add(hol.NewAnd(c0, hol.NewApply(c0, hol.NewConstant(1))))
	assert.Error(t, err)
	//
	_, ok := r.Formula(0)
	assert.False(t, ok)
}

func Test_Reasoner_Options_00(t *testing.T) {
	r := NewReasoner(canonical.WithDistinctConstants())
	// Under unique names, alice = bob denotes the empty set.
	id, err := r.Add(hol.NewEquals(hol.NewConstant(1), hol.NewConstant(2)))
	assert.NoError(t, err)
	//
	formula, ok := r.Formula(id)
	assert.True(t, ok)
	assert.True(t, hol.Equal(formula, hol.False))
}
