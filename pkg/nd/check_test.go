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
package nd

import (
	"testing"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkValid checks the proof and returns its conclusion and hypotheses.
func checkValid(t *testing.T, proof *Proof) (hol.Term, []hol.Term) {
	t.Helper()
	//
	conclusion, hyps, err := Check(proof)
	require.NoError(t, err)
	//
	return conclusion, hyps
}

// checkInvalid checks that the proof fails at the given step.
func checkInvalid(t *testing.T, proof *Proof, step int) {
	t.Helper()
	//
	_, _, err := Check(proof)
	//
	var serr *StepError
	//
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, step, serr.Step)
}

func Test_Check_Syllogism_00(t *testing.T) {
	man := hol.NewConstant(0)
	mortal := hol.NewConstant(1)
	socrates := hol.NewConstant(2)
	x := hol.NewVariable(1)
	// All men are mortal; Socrates is a man; hence Socrates is mortal.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewForAll(1, hol.NewIfThen(
			hol.NewApply(man, x), hol.NewApply(mortal, x)))},
		{Rule: RuleAxiom, Formula: hol.NewApply(man, socrates)},
		{Rule: RuleForAllElim, Premises: []int{0}, Term: socrates,
			Formula: hol.NewIfThen(
				hol.NewApply(man, socrates), hol.NewApply(mortal, socrates))},
		{Rule: RuleIfElim, Premises: []int{2, 1},
			Formula: hol.NewApply(mortal, socrates)},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, hol.NewApply(mortal, socrates)))
	assert.Len(t, hyps, 2)
}

func Test_Check_Conjunction_00(t *testing.T) {
	c0, c1 := hol.NewConstant(0), hol.NewConstant(1)
	// Conjunction commutes.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewAnd(c0, c1)},
		{Rule: RuleAndElim, Premises: []int{0}, Formula: c1},
		{Rule: RuleAndElim, Premises: []int{0}, Formula: c0},
		{Rule: RuleAndIntro, Premises: []int{1, 2}, Formula: hol.NewAnd(c1, c0)},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, hol.NewAnd(c0, c1)))
	assert.Len(t, hyps, 1)
}

func Test_Check_Implication_00(t *testing.T) {
	c0, c1 := hol.NewConstant(0), hol.NewConstant(1)
	// a => (a | b) holds outright.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: c0},
		{Rule: RuleOrIntro, Premises: []int{0}, Formula: hol.NewOr(c0, c1)},
		{Rule: RuleIfIntro, Premises: []int{1}, Hypothesis: c0,
			Formula: hol.NewIfThen(c0, hol.NewOr(c0, c1))},
	}}
	//
	_, hyps := checkValid(t, proof)
	// The hypothesis was discharged.
	assert.Empty(t, hyps)
}

func Test_Check_Implication_01(t *testing.T) {
	c0 := hol.NewConstant(0)
	// a => a canonicalizes to truth, so the conclusion may be stated either
	// way.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: c0},
		{Rule: RuleIfIntro, Premises: []int{0}, Hypothesis: c0, Formula: hol.True},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, hol.True))
	assert.Empty(t, hyps)
}

func Test_Check_Disjunction_00(t *testing.T) {
	c0, c1, c2 := hol.NewConstant(0), hol.NewConstant(1), hol.NewConstant(2)
	// Case split over a | b, each case via modus ponens.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewOr(c0, c1)},
		{Rule: RuleAxiom, Formula: c0},
		{Rule: RuleAxiom, Formula: hol.NewIfThen(c0, c2)},
		{Rule: RuleIfElim, Premises: []int{2, 1}, Formula: c2},
		{Rule: RuleAxiom, Formula: c1},
		{Rule: RuleAxiom, Formula: hol.NewIfThen(c1, c2)},
		{Rule: RuleIfElim, Premises: []int{5, 4}, Formula: c2},
		{Rule: RuleOrElim, Premises: []int{0, 3, 6}, Formula: c2},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, c2))
	// The case hypotheses were discharged; the conditionals remain.
	assert.Len(t, hyps, 3)
}

func Test_Check_Negation_00(t *testing.T) {
	c0, c1 := hol.NewConstant(0), hol.NewConstant(1)
	// ~a is the canonical form of a => F, so modus ponens derives falsity.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewNot(c0)},
		{Rule: RuleAxiom, Formula: c0},
		{Rule: RuleIfElim, Premises: []int{0, 1}, Formula: hol.False},
		{Rule: RuleFalseElim, Premises: []int{2}, Formula: c1},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, c1))
	assert.Len(t, hyps, 2)
}

func Test_Check_Negation_01(t *testing.T) {
	c0 := hol.NewConstant(0)
	// Discharging the positive hypothesis leaves ~a resting on ~a alone.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewNot(c0)},
		{Rule: RuleAxiom, Formula: c0},
		{Rule: RuleIfElim, Premises: []int{0, 1}, Formula: hol.False},
		{Rule: RuleNotIntro, Premises: []int{2}, Hypothesis: c0,
			Formula: hol.NewNot(c0)},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, hol.NewNot(c0)))
	assert.Len(t, hyps, 1)
	assert.True(t, hol.Equal(hyps[0], hol.NewNot(c0)))
}

func Test_Check_ForAll_00(t *testing.T) {
	p := hol.NewConstant(0)
	x := hol.NewVariable(1)
	// Eliminating at a fresh parameter and regeneralising is the identity.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewForAll(1, hol.NewApply(p, x))},
		{Rule: RuleForAllElim, Premises: []int{0}, Term: hol.NewParameter(1),
			Formula: hol.NewApply(p, hol.NewParameter(1))},
		{Rule: RuleForAllIntro, Premises: []int{1}, Parameter: 1,
			Formula: hol.NewForAll(1, hol.NewApply(p, x))},
	}}
	//
	conclusion, _ := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, hol.NewForAll(1, hol.NewApply(p, x))))
}

func Test_Check_Exists_00(t *testing.T) {
	p := hol.NewConstant(0)
	a := hol.NewConstant(1)
	x := hol.NewVariable(1)
	//
	existential := hol.NewExists(1, hol.NewApply(p, x))
	// With an explicit witness.
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewApply(p, a)},
		{Rule: RuleExistsIntro, Premises: []int{0}, Term: a, Formula: existential},
	}}
	//
	checkValid(t, proof)
	// ... and with the witness extracted by matching.
	proof.Steps[1].Term = nil
	//
	checkValid(t, proof)
}

func Test_Check_Exists_01(t *testing.T) {
	p := hol.NewConstant(0)
	q := hol.NewConstant(1)
	x := hol.NewVariable(1)
	// From ?x(p(x)) and !x(p(x) => q(x)) conclude ?x(q(x)).
	proof := &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewExists(1, hol.NewApply(p, x))},
		{Rule: RuleAxiom, Formula: hol.NewApply(p, hol.NewParameter(1))},
		{Rule: RuleAxiom, Formula: hol.NewForAll(1,
			hol.NewIfThen(hol.NewApply(p, x), hol.NewApply(q, x)))},
		{Rule: RuleForAllElim, Premises: []int{2}, Term: hol.NewParameter(1),
			Formula: hol.NewIfThen(
				hol.NewApply(p, hol.NewParameter(1)),
				hol.NewApply(q, hol.NewParameter(1)))},
		{Rule: RuleIfElim, Premises: []int{3, 1},
			Formula: hol.NewApply(q, hol.NewParameter(1))},
		{Rule: RuleExistsIntro, Premises: []int{4}, Term: hol.NewParameter(1),
			Formula: hol.NewExists(1, hol.NewApply(q, x))},
		{Rule: RuleExistsElim, Premises: []int{0, 5}, Parameter: 1,
			Formula: hol.NewExists(1, hol.NewApply(q, x))},
	}}
	//
	conclusion, hyps := checkValid(t, proof)
	//
	assert.True(t, hol.Equal(conclusion, hol.NewExists(1, hol.NewApply(q, x))))
	// Only the existential and the universal remain.
	assert.Len(t, hyps, 2)
}

func Test_Check_Invalid_00(t *testing.T) {
	c0, c1, c2 := hol.NewConstant(0), hol.NewConstant(1), hol.NewConstant(2)
	// Affirming the consequent.
	checkInvalid(t, &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewIfThen(c0, c1)},
		{Rule: RuleAxiom, Formula: c1},
		{Rule: RuleIfElim, Premises: []int{0, 1}, Formula: c0},
	}}, 2)
	// Concluding a conjunct not present.
	checkInvalid(t, &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewAnd(c0, c1)},
		{Rule: RuleAndElim, Premises: []int{0}, Formula: c2},
	}}, 1)
	// Forward premise reference.
	checkInvalid(t, &Proof{Steps: []Step{
		{Rule: RuleAndElim, Premises: []int{0}, Formula: c0},
	}}, 0)
}

func Test_Check_Invalid_01(t *testing.T) {
	p := hol.NewConstant(0)
	x := hol.NewVariable(1)
	// Generalising over a parameter still present in a hypothesis.
	checkInvalid(t, &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewApply(p, hol.NewParameter(1))},
		{Rule: RuleForAllIntro, Premises: []int{0}, Parameter: 1,
			Formula: hol.NewForAll(1, hol.NewApply(p, x))},
	}}, 1)
}

func Test_Check_Invalid_02(t *testing.T) {
	c0 := hol.NewConstant(0)
	// An ill-typed formula fails at its own step.
	checkInvalid(t, &Proof{Steps: []Step{
		{Rule: RuleAxiom, Formula: hol.NewAnd(c0, hol.NewApply(c0, hol.NewConstant(1)))},
	}}, 0)
	// An empty proof proves nothing.
	_, _, err := Check(&Proof{})
	assert.Error(t, err)
}
