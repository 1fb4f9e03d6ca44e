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

// Package canonical reduces terms to a unique normal form: connective operand
// lists are flattened, sorted and deduplicated, degenerate connectives and
// vacuous quantifiers are eliminated, quantifier scopes are minimised, and
// bound variables are renumbered densely.  Two terms are logically
// interchangeable under these rules exactly when their canonical forms are
// structurally equal.
package canonical

import (
	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/typing"
)

// canonicalization reruns the rewrite whenever variable renumbering disturbed
// the sort order of some operand list; in practice one extra pass suffices.
const maxPasses = 8

// Canonicalize reduces a term to its canonical form.  It fails when the term
// is ill-typed, rebinds a bound variable, or nests beyond the depth budget.
func Canonicalize(term hol.Term, opts ...Option) (hol.Term, error) {
	options := newOptions(opts)
	//
	if err := checkShadowing(term, nil); err != nil {
		return nil, err
	}
	//
	for range maxPasses {
		nterm, err := canonicalizePass(term, options)
		if err != nil {
			return nil, err
		}
		// Renumbering may perturb operand order, so iterate to a fixpoint.
		if hol.Equal(nterm, term) {
			return nterm, nil
		}
		//
		term = nterm
	}
	// A term that is still moving after this many passes has no canonical
	// form we can vouch for.
	return nil, ErrNonConvergent
}

// IsCanonical determines whether a term already is its own canonical form.
func IsCanonical(term hol.Term, opts ...Option) (bool, error) {
	nterm, err := Canonicalize(term, opts...)
	if err != nil {
		return false, err
	}
	//
	return hol.Equal(nterm, term), nil
}

// Intersect computes the canonical form of the conjunction of two terms,
// which denotes the intersection of the sets the two terms define.
func Intersect(lhs hol.Term, rhs hol.Term, opts ...Option) (hol.Term, error) {
	return Canonicalize(hol.NewAnd(lhs, rhs), opts...)
}

func canonicalizePass(term hol.Term, options Options) (hol.Term, error) {
	assignment, err := typing.Infer(term, typing.Options{
		PolymorphicEquality: options.PolymorphicEquality,
	})
	//
	if err != nil {
		return nil, err
	}
	//
	rw := &rewriter{opts: options, assignment: assignment}
	//
	nterm, err := rw.rewrite(term, options.MaxDepth)
	if err != nil {
		return nil, err
	}
	//
	return relabelBound(nterm), nil
}

// ============================================================================
// Shadowing check
// ============================================================================

func checkShadowing(term hol.Term, bound []uint) error {
	switch t := term.(type) {
	case *hol.ForAll:
		return checkBinder(t.Variable, t.Operand, bound)
	case *hol.Exists:
		return checkBinder(t.Variable, t.Operand, bound)
	case *hol.Lambda:
		return checkBinder(t.Variable, t.Operand, bound)
	case *hol.Not:
		return checkShadowing(t.Operand, bound)
	case *hol.IfThen:
		if err := checkShadowing(t.Left, bound); err != nil {
			return err
		}
		//
		return checkShadowing(t.Right, bound)
	case *hol.Equals:
		if err := checkShadowing(t.Left, bound); err != nil {
			return err
		}
		//
		return checkShadowing(t.Right, bound)
	case *hol.And:
		return checkShadowingAll(t.Args, bound)
	case *hol.Or:
		return checkShadowingAll(t.Args, bound)
	case *hol.Iff:
		return checkShadowingAll(t.Args, bound)
	case *hol.UnaryApply:
		if err := checkShadowing(t.Fn, bound); err != nil {
			return err
		}
		//
		return checkShadowing(t.Arg, bound)
	case *hol.BinaryApply:
		if err := checkShadowing(t.Fn, bound); err != nil {
			return err
		}
		//
		if err := checkShadowing(t.Arg1, bound); err != nil {
			return err
		}
		//
		return checkShadowing(t.Arg2, bound)
	default:
		return nil
	}
}

func checkBinder(variable uint, operand hol.Term, bound []uint) error {
	for _, id := range bound {
		if id == variable {
			return &ShadowedVariableError{variable}
		}
	}
	//
	return checkShadowing(operand, append(bound, variable))
}

func checkShadowingAll(args []hol.Term, bound []uint) error {
	for _, arg := range args {
		if err := checkShadowing(arg, bound); err != nil {
			return err
		}
	}
	//
	return nil
}

// ============================================================================
// Bound variable renumbering
// ============================================================================

// relabelBound renumbers bound variables densely in binder-encounter order,
// starting above the largest free variable.  Binder indices are scoped, so
// two sibling quantifiers may legally share an index on input.
func relabelBound(term hol.Term) hol.Term {
	next := uint(1)
	//
	if free := hol.FreeVariables(term); len(free) > 0 {
		next = free[len(free)-1] + 1
	}
	//
	return relabelTerm(term, nil, &next)
}

type binderRenaming struct {
	from, to uint
}

func relabelTerm(term hol.Term, env []binderRenaming, next *uint) hol.Term {
	switch t := term.(type) {
	case *hol.Variable:
		for i := len(env) - 1; i >= 0; i-- {
			if env[i].from == t.ID {
				if env[i].to == t.ID {
					return term
				}
				//
				return &hol.Variable{ID: env[i].to}
			}
		}
		//
		return term
	case *hol.ForAll:
		variable, operand := relabelBinder(t.Variable, t.Operand, env, next)
		if variable == t.Variable && operand == t.Operand {
			return term
		}
		//
		return &hol.ForAll{Variable: variable, Operand: operand}
	case *hol.Exists:
		variable, operand := relabelBinder(t.Variable, t.Operand, env, next)
		if variable == t.Variable && operand == t.Operand {
			return term
		}
		//
		return &hol.Exists{Variable: variable, Operand: operand}
	case *hol.Lambda:
		variable, operand := relabelBinder(t.Variable, t.Operand, env, next)
		if variable == t.Variable && operand == t.Operand {
			return term
		}
		//
		return &hol.Lambda{Variable: variable, Operand: operand}
	case *hol.Not:
		if operand := relabelTerm(t.Operand, env, next); operand != t.Operand {
			return &hol.Not{Operand: operand}
		}
		//
		return term
	case *hol.IfThen:
		left := relabelTerm(t.Left, env, next)
		right := relabelTerm(t.Right, env, next)
		//
		if left != t.Left || right != t.Right {
			return &hol.IfThen{Left: left, Right: right}
		}
		//
		return term
	case *hol.Equals:
		left := relabelTerm(t.Left, env, next)
		right := relabelTerm(t.Right, env, next)
		//
		if left != t.Left || right != t.Right {
			return &hol.Equals{Left: left, Right: right}
		}
		//
		return term
	case *hol.And:
		if args, changed := relabelMany(t.Args, env, next); changed {
			return &hol.And{Args: args}
		}
		//
		return term
	case *hol.Or:
		if args, changed := relabelMany(t.Args, env, next); changed {
			return &hol.Or{Args: args}
		}
		//
		return term
	case *hol.Iff:
		if args, changed := relabelMany(t.Args, env, next); changed {
			return &hol.Iff{Args: args}
		}
		//
		return term
	case *hol.UnaryApply:
		fn := relabelTerm(t.Fn, env, next)
		arg := relabelTerm(t.Arg, env, next)
		//
		if fn != t.Fn || arg != t.Arg {
			return &hol.UnaryApply{Fn: fn, Arg: arg}
		}
		//
		return term
	case *hol.BinaryApply:
		fn := relabelTerm(t.Fn, env, next)
		arg1 := relabelTerm(t.Arg1, env, next)
		arg2 := relabelTerm(t.Arg2, env, next)
		//
		if fn != t.Fn || arg1 != t.Arg1 || arg2 != t.Arg2 {
			return &hol.BinaryApply{Fn: fn, Arg1: arg1, Arg2: arg2}
		}
		//
		return term
	default:
		return term
	}
}

func relabelBinder(variable uint, operand hol.Term, env []binderRenaming, next *uint) (uint, hol.Term) {
	nvar := *next
	*next = nvar + 1
	//
	env = append(env, binderRenaming{variable, nvar})
	//
	return nvar, relabelTerm(operand, env, next)
}

func relabelMany(args []hol.Term, env []binderRenaming, next *uint) ([]hol.Term, bool) {
	var nargs []hol.Term
	//
	for i, arg := range args {
		narg := relabelTerm(arg, env, next)
		//
		if narg != arg && nargs == nil {
			nargs = make([]hol.Term, len(args))
			copy(nargs, args[:i])
		}
		//
		if nargs != nil {
			nargs[i] = narg
		}
	}
	//
	if nargs == nil {
		return args, false
	}
	//
	return nargs, true
}
