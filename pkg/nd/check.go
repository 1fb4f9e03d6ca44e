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
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/canonical"
	"github.com/hol-lang/go-hol/pkg/util/collection/set"
)

// StepError reports why a particular proof step is invalid.
type StepError struct {
	// Step index within the proof.
	Step int
	// Err describes the violation.
	Err error
}

// Error implementation for the error interface.
func (p *StepError) Error() string {
	return fmt.Sprintf("step %d: %v", p.Step, p.Err)
}

// Unwrap implementation for errors.Is / errors.As.
func (p *StepError) Unwrap() error {
	return p.Err
}

// state captures what a checked step has established: its canonical
// conclusion, and the hypotheses that conclusion still rests upon.
type state struct {
	formula hol.Term
	hyps    *set.AnySortedSet[hol.Ordered]
}

// Check validates every step of a proof.  On success it returns the canonical
// conclusion of the final step, along with the undischarged hypotheses that
// conclusion rests upon (in canonical order).  On failure it returns a
// StepError identifying the first invalid step.
func Check(proof *Proof, opts ...canonical.Option) (hol.Term, []hol.Term, error) {
	if len(proof.Steps) == 0 {
		return nil, nil, errors.New("empty proof")
	}
	//
	checker := &checker{opts: opts, states: make([]state, 0, len(proof.Steps))}
	//
	for i, step := range proof.Steps {
		st, err := checker.check(i, step)
		if err != nil {
			return nil, nil, err
		}
		//
		checker.states = append(checker.states, st)
		//
		log.WithFields(log.Fields{
			"step":    i,
			"rule":    step.Rule.String(),
			"formula": st.formula.String(),
		}).Debug("checked step")
	}
	//
	last := checker.states[len(checker.states)-1]
	//
	hyps := make([]hol.Term, len(*last.hyps))
	for i, h := range last.hyps.ToArray() {
		hyps[i] = h.Term
	}
	//
	return last.formula, hyps, nil
}

type checker struct {
	opts   []canonical.Option
	states []state
}

func (p *checker) check(index int, step Step) (state, error) {
	if step.Formula == nil {
		return state{}, p.failf(index, "missing formula")
	}
	// Premise indices must refer strictly backwards.
	for _, j := range step.Premises {
		if j < 0 || j >= index {
			return state{}, p.failf(index, "invalid premise %d", j)
		}
	}
	//
	formula, err := p.canon(index, step.Formula)
	if err != nil {
		return state{}, err
	}
	//
	switch step.Rule {
	case RuleAxiom:
		return p.checkAxiom(index, step, formula)
	case RuleAndIntro:
		return p.checkAndIntro(index, step, formula)
	case RuleAndElim:
		return p.checkAndElim(index, step, formula)
	case RuleOrIntro:
		return p.checkOrIntro(index, step, formula)
	case RuleOrElim:
		return p.checkOrElim(index, step, formula)
	case RuleIfIntro:
		return p.checkIfIntro(index, step, formula)
	case RuleIfElim:
		return p.checkIfElim(index, step, formula)
	case RuleNotIntro:
		return p.checkNotIntro(index, step, formula)
	case RuleFalseElim:
		return p.checkFalseElim(index, step, formula)
	case RuleForAllIntro:
		return p.checkForAllIntro(index, step, formula)
	case RuleForAllElim:
		return p.checkForAllElim(index, step, formula)
	case RuleExistsIntro:
		return p.checkExistsIntro(index, step, formula)
	case RuleExistsElim:
		return p.checkExistsElim(index, step, formula)
	default:
		return state{}, p.failf(index, "unknown rule %d", step.Rule)
	}
}

// ============================================================================
// Rules
// ============================================================================

func (p *checker) checkAxiom(index int, step Step, formula hol.Term) (state, error) {
	if len(step.Premises) != 0 {
		return state{}, p.failf(index, "axiom expects no premises")
	}
	//
	return state{formula, hypotheses(formula)}, nil
}

func (p *checker) checkAndIntro(index int, step Step, formula hol.Term) (state, error) {
	if len(step.Premises) == 0 {
		return state{}, p.failf(index, "conjunction introduction expects premises")
	}
	//
	conjuncts := make([]hol.Term, len(step.Premises))
	for i, j := range step.Premises {
		conjuncts[i] = p.states[j].formula
	}
	//
	expected, err := p.canon(index, hol.NewAnd(conjuncts...))
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, formula) {
		return state{}, p.failf(index, "conclusion is not the conjunction of its premises")
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkAndElim(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	conjunction, ok := premise[0].formula.(*hol.And)
	if !ok {
		return state{}, p.failf(index, "premise is not a conjunction")
	}
	//
	for _, arg := range conjunction.Args {
		if hol.Equal(arg, formula) {
			return state{formula, p.union(step.Premises)}, nil
		}
	}
	//
	return state{}, p.failf(index, "conclusion is not a conjunct of its premise")
}

func (p *checker) checkOrIntro(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	// Weakening the premise into the conclusion must leave it unchanged.
	expected, err := p.canon(index, hol.NewOr(formula, premise[0].formula))
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, formula) {
		return state{}, p.failf(index, "conclusion does not weaken its premise")
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkOrElim(index int, step Step, formula hol.Term) (state, error) {
	if len(step.Premises) < 2 {
		return state{}, p.failf(index, "disjunction elimination expects a disjunction and one case per disjunct")
	}
	//
	disjunction, ok := p.states[step.Premises[0]].formula.(*hol.Or)
	if !ok {
		return state{}, p.failf(index, "first premise is not a disjunction")
	}
	//
	if len(step.Premises) != len(disjunction.Args)+1 {
		return state{}, p.failf(index, "expected %d cases, found %d",
			len(disjunction.Args), len(step.Premises)-1)
	}
	//
	hyps := clone(p.states[step.Premises[0]].hyps)
	// Each case proves the conclusion, discharging its disjunct.
	for i, arg := range disjunction.Args {
		c := p.states[step.Premises[i+1]]
		//
		if !hol.Equal(c.formula, formula) {
			return state{}, p.failf(index, "case %d does not prove the conclusion", i)
		}
		//
		hyps.InsertSorted(discharge(c.hyps, arg))
	}
	//
	return state{formula, hyps}, nil
}

func (p *checker) checkIfIntro(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	hypothesis, err := p.hypothesis(index, step)
	if err != nil {
		return state{}, err
	}
	//
	expected, err := p.canon(index, hol.NewIfThen(hypothesis, premise[0].formula))
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, formula) {
		return state{}, p.failf(index, "conclusion does not follow by conditional introduction")
	}
	//
	return state{formula, discharge(premise[0].hyps, hypothesis)}, nil
}

func (p *checker) checkIfElim(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 2)
	if err != nil {
		return state{}, err
	}
	// The first premise must be (the canonical form of) the conditional from
	// the second premise to the conclusion.
	expected, err := p.canon(index, hol.NewIfThen(premise[1].formula, formula))
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, premise[0].formula) {
		return state{}, p.failf(index, "conclusion does not follow by modus ponens")
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkNotIntro(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(premise[0].formula, hol.False) {
		return state{}, p.failf(index, "premise is not falsity")
	}
	//
	hypothesis, err := p.hypothesis(index, step)
	if err != nil {
		return state{}, err
	}
	//
	expected, err := p.canon(index, hol.NewNot(hypothesis))
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, formula) {
		return state{}, p.failf(index, "conclusion is not the negated hypothesis")
	}
	//
	return state{formula, discharge(premise[0].hyps, hypothesis)}, nil
}

func (p *checker) checkFalseElim(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(premise[0].formula, hol.False) {
		return state{}, p.failf(index, "premise is not falsity")
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkForAllIntro(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	forall, ok := formula.(*hol.ForAll)
	if !ok {
		return state{}, p.failf(index, "conclusion is not universally quantified")
	}
	// The eigenparameter must be fresh for the conclusion.
	if hol.ContainsParameter(formula, step.Parameter) {
		return state{}, p.failf(index, "parameter $%d occurs in the conclusion", step.Parameter)
	}
	// ... and for every hypothesis the premise rests on.
	for _, h := range premise[0].hyps.ToArray() {
		if hol.ContainsParameter(h.Term, step.Parameter) {
			return state{}, p.failf(index, "parameter $%d occurs in a hypothesis", step.Parameter)
		}
	}
	//
	instance, err := hol.SubstituteVariable(forall.Operand, forall.Variable, hol.NewParameter(step.Parameter))
	if err != nil {
		return state{}, &StepError{index, err}
	}
	//
	expected, err := p.canon(index, instance)
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, premise[0].formula) {
		return state{}, p.failf(index, "premise does not instantiate the conclusion at $%d", step.Parameter)
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkForAllElim(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	forall, ok := premise[0].formula.(*hol.ForAll)
	if !ok {
		return state{}, p.failf(index, "premise is not universally quantified")
	}
	//
	if step.Term == nil {
		return state{}, p.failf(index, "missing instantiation term")
	}
	//
	instance, err := hol.SubstituteVariable(forall.Operand, forall.Variable, step.Term)
	if err != nil {
		return state{}, &StepError{index, err}
	}
	//
	expected, err := p.canon(index, instance)
	if err != nil {
		return state{}, err
	}
	//
	if !hol.Equal(expected, formula) {
		return state{}, p.failf(index, "conclusion does not instantiate the premise")
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkExistsIntro(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 1)
	if err != nil {
		return state{}, err
	}
	//
	exists, ok := formula.(*hol.Exists)
	if !ok {
		return state{}, p.failf(index, "conclusion is not existentially quantified")
	}
	//
	if step.Term != nil {
		// Explicit witness.
		instance, err := hol.SubstituteVariable(exists.Operand, exists.Variable, step.Term)
		if err != nil {
			return state{}, &StepError{index, err}
		}
		//
		expected, err := p.canon(index, instance)
		if err != nil {
			return state{}, err
		}
		//
		if !hol.Equal(expected, premise[0].formula) {
			return state{}, p.failf(index, "premise does not witness the conclusion")
		}
	} else if _, ok := hol.Unify(premise[0].formula, exists.Operand,
		hol.NewVariable(exists.Variable)); !ok {
		// No explicit witness given, so attempt to extract one.
		return state{}, p.failf(index, "no witness matches the premise against the conclusion")
	}
	//
	return state{formula, p.union(step.Premises)}, nil
}

func (p *checker) checkExistsElim(index int, step Step, formula hol.Term) (state, error) {
	premise, err := p.premise(index, step, 2)
	if err != nil {
		return state{}, err
	}
	//
	exists, ok := premise[0].formula.(*hol.Exists)
	if !ok {
		return state{}, p.failf(index, "first premise is not existentially quantified")
	}
	//
	if !hol.Equal(premise[1].formula, formula) {
		return state{}, p.failf(index, "second premise does not prove the conclusion")
	}
	// The eigenparameter must be fresh for the existential and the conclusion.
	if hol.ContainsParameter(premise[0].formula, step.Parameter) {
		return state{}, p.failf(index, "parameter $%d occurs in the existential", step.Parameter)
	}
	//
	if hol.ContainsParameter(formula, step.Parameter) {
		return state{}, p.failf(index, "parameter $%d occurs in the conclusion", step.Parameter)
	}
	//
	instance, err := hol.SubstituteVariable(exists.Operand, exists.Variable, hol.NewParameter(step.Parameter))
	if err != nil {
		return state{}, &StepError{index, err}
	}
	//
	assumed, err := p.canon(index, instance)
	if err != nil {
		return state{}, err
	}
	//
	hyps := clone(premise[0].hyps)
	hyps.InsertSorted(discharge(premise[1].hyps, assumed))
	// ... and for every hypothesis still standing.
	for _, h := range hyps.ToArray() {
		if hol.ContainsParameter(h.Term, step.Parameter) {
			return state{}, p.failf(index, "parameter $%d occurs in a hypothesis", step.Parameter)
		}
	}
	//
	return state{formula, hyps}, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (p *checker) failf(index int, format string, args ...any) error {
	return &StepError{index, fmt.Errorf(format, args...)}
}

// canon canonicalizes a term, attributing any failure to the given step.
func (p *checker) canon(index int, term hol.Term) (hol.Term, error) {
	nterm, err := canonical.Canonicalize(term, p.opts...)
	if err != nil {
		return nil, &StepError{index, err}
	}
	//
	return nterm, nil
}

// premise resolves the premises of a step, checking their number.
func (p *checker) premise(index int, step Step, n int) ([]state, error) {
	if len(step.Premises) != n {
		return nil, p.failf(index, "expected %d premises, found %d", n, len(step.Premises))
	}
	//
	premises := make([]state, n)
	for i, j := range step.Premises {
		premises[i] = p.states[j]
	}
	//
	return premises, nil
}

// hypothesis canonicalizes the discharged hypothesis of a step.
func (p *checker) hypothesis(index int, step Step) (hol.Term, error) {
	if step.Hypothesis == nil {
		return nil, p.failf(index, "missing hypothesis")
	}
	//
	return p.canon(index, step.Hypothesis)
}

// union collects the hypotheses of the given premises.
func (p *checker) union(premises []int) *set.AnySortedSet[hol.Ordered] {
	return set.UnionAnySortedSets(premises, func(j int) *set.AnySortedSet[hol.Ordered] {
		return clone(p.states[j].hyps)
	})
}

func hypotheses(terms ...hol.Term) *set.AnySortedSet[hol.Ordered] {
	wrapped := make([]hol.Ordered, len(terms))
	for i, t := range terms {
		wrapped[i] = hol.Ordered{Term: t}
	}
	//
	return set.RawAnySortedSet(wrapped...)
}

func clone(hyps *set.AnySortedSet[hol.Ordered]) *set.AnySortedSet[hol.Ordered] {
	return set.NewAnySortedSet(hyps.ToArray()...)
}

// discharge removes a hypothesis (if present), leaving the original intact.
func discharge(hyps *set.AnySortedSet[hol.Ordered], h hol.Term) *set.AnySortedSet[hol.Ordered] {
	nhyps := clone(hyps)
	nhyps.Remove(hol.Ordered{Term: h})
	//
	return nhyps
}
