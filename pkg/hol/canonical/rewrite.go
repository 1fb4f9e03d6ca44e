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
	"slices"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/typing"
	"github.com/hol-lang/go-hol/pkg/util/collection/set"
)

// rewriter folds a term bottom-up into canonical shape.  Operands reaching a
// fold are themselves already canonical.
type rewriter struct {
	opts       Options
	assignment *typing.Assignment
}

func (p *rewriter) rewrite(term hol.Term, depth uint) (hol.Term, error) {
	if depth == 0 {
		return nil, hol.ErrDepthExceeded
	}
	//
	switch t := term.(type) {
	case *hol.Variable, *hol.Constant, *hol.Parameter, *hol.Integer, *hol.Truth:
		return term, nil
	case *hol.Not:
		operand, err := p.rewrite(t.Operand, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.negate(operand), nil
	case *hol.And:
		args, err := p.rewriteMany(t.Args, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldAnd(args), nil
	case *hol.Or:
		args, err := p.rewriteMany(t.Args, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldOr(args), nil
	case *hol.IfThen:
		left, err := p.rewrite(t.Left, depth-1)
		if err != nil {
			return nil, err
		}
		//
		right, err := p.rewrite(t.Right, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldIfThen(left, right), nil
	case *hol.Equals:
		left, err := p.rewrite(t.Left, depth-1)
		if err != nil {
			return nil, err
		}
		//
		right, err := p.rewrite(t.Right, depth-1)
		if err != nil {
			return nil, err
		}
		// An equality is a biconditional only when both operands are truth
		// valued; a boolean on one side alone keeps it a value equality.
		if (p.isBoolean(left) || p.assignment.IsBoolean(t.Left)) &&
			(p.isBoolean(right) || p.assignment.IsBoolean(t.Right)) {
			return p.foldIff([]hol.Term{left, right}, false), nil
		}
		//
		return p.foldEquals(left, right), nil
	case *hol.Iff:
		args, err := p.rewriteMany(t.Args, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldIff(args, false), nil
	case *hol.ForAll:
		operand, err := p.rewrite(t.Operand, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldQuantifier(hol.KindForAll, t.Variable, operand), nil
	case *hol.Exists:
		operand, err := p.rewrite(t.Operand, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldQuantifier(hol.KindExists, t.Variable, operand), nil
	case *hol.Lambda:
		operand, err := p.rewrite(t.Operand, depth-1)
		if err != nil {
			return nil, err
		}
		//
		return p.foldQuantifier(hol.KindLambda, t.Variable, operand), nil
	case *hol.UnaryApply:
		fn, err := p.rewrite(t.Fn, depth-1)
		if err != nil {
			return nil, err
		}
		//
		arg, err := p.rewrite(t.Arg, depth-1)
		if err != nil {
			return nil, err
		}
		//
		if fn == t.Fn && arg == t.Arg {
			return term, nil
		}
		//
		return &hol.UnaryApply{Fn: fn, Arg: arg}, nil
	case *hol.BinaryApply:
		fn, err := p.rewrite(t.Fn, depth-1)
		if err != nil {
			return nil, err
		}
		//
		arg1, err := p.rewrite(t.Arg1, depth-1)
		if err != nil {
			return nil, err
		}
		//
		arg2, err := p.rewrite(t.Arg2, depth-1)
		if err != nil {
			return nil, err
		}
		//
		if fn == t.Fn && arg1 == t.Arg1 && arg2 == t.Arg2 {
			return term, nil
		}
		//
		return &hol.BinaryApply{Fn: fn, Arg1: arg1, Arg2: arg2}, nil
	default:
		panic("unreachable")
	}
}

func (p *rewriter) rewriteMany(args []hol.Term, depth uint) ([]hol.Term, error) {
	nargs := make([]hol.Term, len(args))
	//
	for i, arg := range args {
		narg, err := p.rewrite(arg, depth)
		if err != nil {
			return nil, err
		}
		//
		nargs[i] = narg
	}
	//
	return nargs, nil
}

// ============================================================================
// Negation
// ============================================================================

func (p *rewriter) negate(term hol.Term) hol.Term {
	switch t := term.(type) {
	case *hol.Truth:
		if t.Value {
			return hol.False
		}
		//
		return hol.True
	case *hol.Not:
		return t.Operand
	case *hol.Equals:
		// Negating a biconditional chain flips its parity rather than
		// wrapping the chain.
		if p.isBoolean(t.Left) && p.isBoolean(t.Right) {
			return p.foldIff([]hol.Term{t.Left, t.Right}, true)
		}
		//
		return &hol.Not{Operand: term}
	default:
		return &hol.Not{Operand: term}
	}
}

func areNegations(lhs hol.Term, rhs hol.Term) bool {
	if t, ok := lhs.(*hol.Not); ok && hol.Equal(t.Operand, rhs) {
		return true
	}
	//
	if t, ok := rhs.(*hol.Not); ok && hol.Equal(t.Operand, lhs) {
		return true
	}
	// Biconditional chains negate by flipping the trailing parity, so two
	// chains are complementary when they differ only in their tails.
	if lt, ok := lhs.(*hol.Equals); ok {
		if rt, ok := rhs.(*hol.Equals); ok {
			return hol.Equal(lt.Left, rt.Left) && areNegations(lt.Right, rt.Right)
		}
	}
	//
	return false
}

func containsComplementaryPair(operands []hol.Ordered) bool {
	for i, lhs := range operands {
		for _, rhs := range operands[i+1:] {
			if areNegations(lhs.Term, rhs.Term) {
				return true
			}
		}
	}
	//
	return false
}

// isBoolean determines whether a canonical term denotes a truth value.  For
// connectives this is structural; for atoms and applications it falls back on
// the inferred types, which is sound because atoms survive rewriting with
// their identity intact.
func (p *rewriter) isBoolean(term hol.Term) bool {
	switch term.(type) {
	case *hol.Truth, *hol.Not, *hol.And, *hol.Or, *hol.Iff, *hol.IfThen,
		*hol.ForAll, *hol.Exists:
		return true
	case *hol.Equals:
		// An equality denotes a truth value whichever way its own operands
		// dispatch: a biconditional trivially, and a value equality as a
		// proposition over individuals.
		return true
	default:
		return p.assignment.IsBoolean(term)
	}
}

// ============================================================================
// Conjunction / disjunction
// ============================================================================

func (p *rewriter) foldAnd(args []hol.Term) hol.Term {
	operands := set.NewAnySortedSet[hol.Ordered]()
	//
	if !collectConjuncts(args, operands) {
		return hol.False
	}
	// A complementary pair annihilates the conjunction.
	if containsComplementaryPair(operands.ToArray()) {
		return hol.False
	}
	//
	return unwrapConnective(hol.KindAnd, operands.ToArray())
}

func (p *rewriter) foldOr(args []hol.Term) hol.Term {
	operands := set.NewAnySortedSet[hol.Ordered]()
	//
	if !collectDisjuncts(args, operands) {
		return hol.True
	}
	// A complementary pair saturates the disjunction.
	if containsComplementaryPair(operands.ToArray()) {
		return hol.True
	}
	// A conditional absorbs any disjunct equal to its consequent.
	for _, operand := range operands.ToArray() {
		if t, ok := operand.Term.(*hol.IfThen); ok {
			operands.Remove(hol.Ordered{Term: t.Right})
		}
	}
	//
	return unwrapConnective(hol.KindOr, operands.ToArray())
}

// collectConjuncts flattens nested conjunctions into the operand set,
// dropping the identity True.  It reports false on encountering the
// annihilator False.
func collectConjuncts(args []hol.Term, operands *set.AnySortedSet[hol.Ordered]) bool {
	for _, arg := range args {
		switch t := arg.(type) {
		case *hol.Truth:
			if !t.Value {
				return false
			}
		case *hol.And:
			if !collectConjuncts(t.Args, operands) {
				return false
			}
		default:
			operands.Insert(hol.Ordered{Term: arg})
		}
	}
	//
	return true
}

// collectDisjuncts is the dual of collectConjuncts: False is the identity and
// True the annihilator.
func collectDisjuncts(args []hol.Term, operands *set.AnySortedSet[hol.Ordered]) bool {
	for _, arg := range args {
		switch t := arg.(type) {
		case *hol.Truth:
			if t.Value {
				return false
			}
		case *hol.Or:
			if !collectDisjuncts(t.Args, operands) {
				return false
			}
		default:
			operands.Insert(hol.Ordered{Term: arg})
		}
	}
	//
	return true
}

func unwrapConnective(kind hol.Kind, operands []hol.Ordered) hol.Term {
	switch len(operands) {
	case 0:
		// The empty conjunction is True, the empty disjunction False.
		if kind == hol.KindAnd {
			return hol.True
		}
		//
		return hol.False
	case 1:
		return operands[0].Term
	}
	//
	args := make([]hol.Term, len(operands))
	//
	for i, operand := range operands {
		args[i] = operand.Term
	}
	//
	if kind == hol.KindAnd {
		return &hol.And{Args: args}
	}
	//
	return &hol.Or{Args: args}
}

// ============================================================================
// Conditionals
// ============================================================================

func (p *rewriter) foldIfThen(left hol.Term, right hol.Term) hol.Term {
	// A conditional consequent curries: its antecedent conjoins into ours.
	if t, ok := right.(*hol.IfThen); ok {
		return p.foldIfThen(p.foldAnd([]hol.Term{left, t.Left}), t.Right)
	}
	// Conditionals nested in a disjunctive consequent raise the same way:
	// their antecedents conjoin into ours and their consequents disjoin.
	if t, ok := right.(*hol.Or); ok {
		if antecedents, consequents, ok := raiseConditionals(t.Args); ok {
			return p.foldIfThen(
				p.foldAnd(append(antecedents, left)),
				p.foldOr(consequents))
		}
	}
	//
	switch {
	case left.Kind() == hol.KindTrue:
		return right
	case left.Kind() == hol.KindFalse:
		return hol.True
	case right.Kind() == hol.KindTrue:
		return hol.True
	case right.Kind() == hol.KindFalse:
		return p.negate(left)
	case hol.Equal(left, right):
		return hol.True
	case areNegations(left, right):
		// l => ~l collapses to ~l (and ~l => l to l).
		return right
	case sharesOperand(conjunctsOf(left), disjunctsOf(right)):
		// A conjunct of the antecedent recurring as a disjunct of the
		// consequent makes the conditional vacuous.
		return hol.True
	default:
		return &hol.IfThen{Left: left, Right: right}
	}
}

// raiseConditionals splits a consequent disjunct list into the antecedents of
// its conditional members and the remaining (consequent) operands, reporting
// whether any conditional was found.
func raiseConditionals(args []hol.Term) ([]hol.Term, []hol.Term, bool) {
	var antecedents, consequents []hol.Term
	//
	for _, arg := range args {
		if t, ok := arg.(*hol.IfThen); ok {
			antecedents = append(antecedents, t.Left)
			consequents = append(consequents, t.Right)
		} else {
			consequents = append(consequents, arg)
		}
	}
	//
	return antecedents, consequents, len(antecedents) > 0
}

// conjunctsOf views a canonical term as its (sorted) conjunct list.
func conjunctsOf(term hol.Term) []hol.Term {
	if t, ok := term.(*hol.And); ok {
		return t.Args
	}
	//
	return []hol.Term{term}
}

// disjunctsOf views a canonical term as its (sorted) disjunct list.
func disjunctsOf(term hol.Term) []hol.Term {
	if t, ok := term.(*hol.Or); ok {
		return t.Args
	}
	//
	return []hol.Term{term}
}

// sharesOperand determines whether two canonically sorted operand lists have
// an element in common, by linear merge.
func sharesOperand(first []hol.Term, second []hol.Term) bool {
	i, j := 0, 0
	//
	for i < len(first) && j < len(second) {
		switch c := hol.Compare(first[i], second[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			return true
		}
	}
	//
	return false
}

// ============================================================================
// Equality / biconditional
// ============================================================================

func (p *rewriter) foldEquals(left hol.Term, right hol.Term) hol.Term {
	if hol.Equal(left, right) {
		return hol.True
	}
	// Distinct integer literals denote distinct values.
	if l, ok := left.(*hol.Integer); ok {
		if r, ok := right.(*hol.Integer); ok && l.Value != r.Value {
			return hol.False
		}
	}
	// Distinct constants denote distinct values under the unique-names
	// assumption only.
	if p.opts.DistinctConstants {
		if l, ok := left.(*hol.Constant); ok {
			if r, ok := right.(*hol.Constant); ok && l.ID != r.ID {
				return hol.False
			}
		}
	}
	// Equality is commutative, so order the operands.
	if hol.Compare(left, right) > 0 {
		left, right = right, left
	}
	//
	return &hol.Equals{Left: left, Right: right}
}

// foldIff normalises an n-ary biconditional.  Operands of even multiplicity
// cancel, False operands flip the parity, and the result serializes as a
// right-associated chain of equalities whose final operand is negated when
// the parity is odd.
func (p *rewriter) foldIff(args []hol.Term, parity bool) hol.Term {
	var operands []hol.Term
	//
	for _, arg := range args {
		p.collectIff(arg, &operands, &parity)
	}
	//
	slices.SortFunc(operands, hol.Compare)
	// Keep operands of odd multiplicity only.
	var kept []hol.Term
	//
	for i := 0; i < len(operands); {
		j := i + 1
		//
		for j < len(operands) && hol.Equal(operands[i], operands[j]) {
			j++
		}
		//
		if (j-i)%2 == 1 {
			kept = append(kept, operands[i])
		}
		//
		i = j
	}
	//
	n := len(kept)
	//
	if n == 0 {
		if parity {
			return hol.False
		}
		//
		return hol.True
	}
	// Collected operands are never negations or truth values, so a trailing
	// negation encodes the parity unambiguously.
	chain := kept[n-1]
	//
	if parity {
		chain = &hol.Not{Operand: chain}
	}
	//
	for i := n - 2; i >= 0; i-- {
		chain = &hol.Equals{Left: kept[i], Right: chain}
	}
	//
	return chain
}

func (p *rewriter) collectIff(term hol.Term, operands *[]hol.Term, parity *bool) {
	switch t := term.(type) {
	case *hol.Truth:
		// True is the identity; False flips the parity.
		if !t.Value {
			*parity = !*parity
		}
	case *hol.Not:
		*parity = !*parity
		p.collectIff(t.Operand, operands, parity)
	case *hol.Equals:
		// A biconditional chain splices; a value equality is atomic.
		if p.isBoolean(t.Left) && p.isBoolean(t.Right) {
			p.collectIff(t.Left, operands, parity)
			p.collectIff(t.Right, operands, parity)
		} else {
			*operands = append(*operands, term)
		}
	case *hol.Iff:
		for _, arg := range t.Args {
			p.collectIff(arg, operands, parity)
		}
	default:
		*operands = append(*operands, term)
	}
}

// ============================================================================
// Quantifiers
// ============================================================================

func (p *rewriter) foldQuantifier(kind hol.Kind, variable uint, body hol.Term) hol.Term {
	// A vacuous binder drops.
	if !hol.ContainsVariable(body, variable) {
		return body
	}
	// Minimise the scope: operands not mentioning the bound variable promote
	// out of the quantifier, and the remainder is re-folded.  A lambda is
	// exempt, since hoisting operands past it would leave a function nested
	// inside a truth-valued connective.
	if kind == hol.KindLambda {
		return &hol.Lambda{Variable: variable, Operand: body}
	}
	//
	switch t := body.(type) {
	case *hol.And:
		if free, rest, ok := partitionScope(t.Args, variable); ok {
			inner := p.foldQuantifier(kind, variable, p.foldAnd(rest))
			return p.foldAnd(append(free, inner))
		}
	case *hol.Or:
		if free, rest, ok := partitionScope(t.Args, variable); ok {
			inner := p.foldQuantifier(kind, variable, p.foldOr(rest))
			return p.foldOr(append(free, inner))
		}
	case *hol.IfThen:
		if folded, ok := p.promoteConditional(kind, variable, t); ok {
			return folded
		}
	}
	//
	if kind == hol.KindForAll {
		return &hol.ForAll{Variable: variable, Operand: body}
	}
	//
	return &hol.Exists{Variable: variable, Operand: body}
}

// promoteConditional floats the variable-free operands of a conditional body
// out of the quantifier, partitioning antecedent conjuncts and consequent
// disjuncts separately.  When the whole antecedent floats but the consequent
// does not, the quantifier binds only the residual consequent; when the whole
// consequent floats, it binds the negated residual antecedent, which disjoins
// with the promoted consequent just as the residual consequent would.
func (p *rewriter) promoteConditional(kind hol.Kind, variable uint, body *hol.IfThen) (hol.Term, bool) {
	leftFree, leftRest, lok := partitionScope(conjunctsOf(body.Left), variable)
	rightFree, rightRest, rok := partitionScope(disjunctsOf(body.Right), variable)
	//
	if !lok && !rok {
		return nil, false
	}
	//
	var inner hol.Term
	//
	switch {
	case len(leftRest) == 0:
		inner = p.foldQuantifier(kind, variable, p.foldOr(rightRest))
	case len(rightRest) == 0:
		inner = p.foldQuantifier(kind, variable, p.negate(p.foldAnd(leftRest)))
	default:
		inner = p.foldQuantifier(kind, variable,
			p.foldIfThen(p.foldAnd(leftRest), p.foldOr(rightRest)))
	}
	//
	return p.foldIfThen(p.foldAnd(leftFree), p.foldOr(append(rightFree, inner))), true
}

// partitionScope splits operands into those free of the given variable and
// those mentioning it, reporting whether any promoted.
func partitionScope(args []hol.Term, variable uint) ([]hol.Term, []hol.Term, bool) {
	var free, rest []hol.Term
	//
	for _, arg := range args {
		if hol.ContainsVariable(arg, variable) {
			rest = append(rest, arg)
		} else {
			free = append(free, arg)
		}
	}
	//
	return free, rest, len(free) > 0
}
