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

// Package nd checks natural-deduction proofs over the term language.  A
// proof is a sequence of steps, each applying one inference rule to earlier
// steps; formulas are compared by canonical form throughout.
package nd

import "github.com/hol-lang/go-hol/pkg/hol"

// Rule identifies a natural-deduction inference rule.
type Rule uint8

const (
	// RuleAxiom assumes its formula, which becomes an undischarged
	// hypothesis.
	RuleAxiom Rule = iota
	// RuleAndIntro concludes the conjunction of its premises.
	RuleAndIntro
	// RuleAndElim concludes one conjunct of its conjunctive premise.
	RuleAndElim
	// RuleOrIntro concludes a disjunction containing its premise.
	RuleOrIntro
	// RuleOrElim concludes what every disjunct of its first premise proves;
	// each remaining premise discharges its respective disjunct.
	RuleOrElim
	// RuleIfIntro concludes an implication, discharging the hypothesis.
	RuleIfIntro
	// RuleIfElim is modus ponens.
	RuleIfElim
	// RuleNotIntro concludes the negation of a hypothesis from which falsity
	// was derived, discharging it.
	RuleNotIntro
	// RuleFalseElim concludes anything from falsity.
	RuleFalseElim
	// RuleForAllIntro generalises over a parameter occurring in its premise.
	RuleForAllIntro
	// RuleForAllElim instantiates a universal premise at a term.
	RuleForAllElim
	// RuleExistsIntro concludes an existential witnessed by its premise.
	RuleExistsIntro
	// RuleExistsElim eliminates an existential premise via a parameter,
	// discharging the instantiated hypothesis.
	RuleExistsElim
)

func (r Rule) String() string {
	switch r {
	case RuleAxiom:
		return "Axiom"
	case RuleAndIntro:
		return "AndIntro"
	case RuleAndElim:
		return "AndElim"
	case RuleOrIntro:
		return "OrIntro"
	case RuleOrElim:
		return "OrElim"
	case RuleIfIntro:
		return "IfIntro"
	case RuleIfElim:
		return "IfElim"
	case RuleNotIntro:
		return "NotIntro"
	case RuleFalseElim:
		return "FalseElim"
	case RuleForAllIntro:
		return "ForAllIntro"
	case RuleForAllElim:
		return "ForAllElim"
	case RuleExistsIntro:
		return "ExistsIntro"
	case RuleExistsElim:
		return "ExistsElim"
	default:
		return "Unknown"
	}
}

// Step is a single application of an inference rule.
type Step struct {
	// Rule applied at this step.
	Rule Rule
	// Premises indexes earlier steps, in rule order.
	Premises []int
	// Formula is the conclusion of this step.
	Formula hol.Term
	// Hypothesis is the formula discharged by IfIntro and NotIntro.
	Hypothesis hol.Term
	// Term instantiates the bound variable for ForAllElim.
	Term hol.Term
	// Parameter is the eigenparameter of ForAllIntro and ExistsElim.
	Parameter uint
}

// Proof is a sequence of steps whose last step is the conclusion.
type Proof struct {
	Steps []Step
}
