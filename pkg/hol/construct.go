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
package hol

// NewVariable constructs a variable term with the given index.
func NewVariable(id uint) Term {
	return &Variable{id}
}

// NewConstant constructs a constant term with the given index.
func NewConstant(id uint) Term {
	return &Constant{id}
}

// NewParameter constructs a parameter term with the given index.
func NewParameter(id uint) Term {
	return &Parameter{id}
}

// NewInt constructs an integer literal.
func NewInt(value int32) Term {
	return &Integer{value}
}

// NewNot constructs the negation of a given term.
func NewNot(operand Term) Term {
	return &Not{operand}
}

// NewAnd constructs the conjunction of the given terms.  A singleton
// conjunction is the term itself, and an empty conjunction is True.
func NewAnd(args ...Term) Term {
	switch len(args) {
	case 0:
		return True
	case 1:
		return args[0]
	default:
		return &And{args}
	}
}

// NewOr constructs the disjunction of the given terms.  A singleton
// disjunction is the term itself, and an empty disjunction is False.
func NewOr(args ...Term) Term {
	switch len(args) {
	case 0:
		return False
	case 1:
		return args[0]
	default:
		return &Or{args}
	}
}

// NewIff constructs the n-ary biconditional of the given terms.  A singleton
// biconditional is the term itself, and an empty biconditional is True.
func NewIff(args ...Term) Term {
	switch len(args) {
	case 0:
		return True
	case 1:
		return args[0]
	default:
		return &Iff{args}
	}
}

// NewIfThen constructs an implication from left to right.
func NewIfThen(left Term, right Term) Term {
	return &IfThen{left, right}
}

// NewEquals constructs an equality between two terms.
func NewEquals(left Term, right Term) Term {
	return &Equals{left, right}
}

// NewForAll constructs the universal quantification of a variable over a term.
func NewForAll(variable uint, operand Term) Term {
	return &ForAll{variable, operand}
}

// NewExists constructs the existential quantification of a variable over a
// term.
func NewExists(variable uint, operand Term) Term {
	return &Exists{variable, operand}
}

// NewLambda constructs the abstraction of a term over a variable.
func NewLambda(variable uint, operand Term) Term {
	return &Lambda{variable, operand}
}

// NewApply constructs the application of a function to a single argument.
func NewApply(fn Term, arg Term) Term {
	return &UnaryApply{fn, arg}
}

// NewApply2 constructs the application of a function to two arguments.
func NewApply2(fn Term, arg1 Term, arg2 Term) Term {
	return &BinaryApply{fn, arg1, arg2}
}
