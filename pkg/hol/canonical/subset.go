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

import "github.com/hol-lang/go-hol/pkg/hol"

// IsSubset determines whether the set denoted by the first (canonical) term
// is structurally contained in the set denoted by the second: every model of
// the first satisfies the second.  The test is sound but deliberately
// incomplete; constructs it has no decision procedure for (quantifiers,
// conditionals, equalities) yield ErrUnsupported rather than a guess.
func IsSubset(first hol.Term, second hol.Term) (bool, error) {
	// The empty set is contained everywhere, and everything is contained in
	// the universe.
	if first.Kind() == hol.KindFalse || second.Kind() == hol.KindTrue {
		return true, nil
	}
	//
	if first.Kind() == hol.KindTrue {
		return false, nil
	}
	//
	if second.Kind() == hol.KindFalse {
		return false, nil
	}
	//
	if hol.Equal(first, second) {
		return true, nil
	}
	// Containment in a conjunction requires containment in every conjunct.
	if t, ok := second.(*hol.And); ok {
		return subsetOfAll(first, t.Args)
	}
	// A disjunction is contained when every disjunct is.
	if t, ok := first.(*hol.Or); ok {
		return allSubsetOf(t.Args, second)
	}
	// A conjunction is contained when some conjunct is (it only shrinks the
	// set further).
	if t, ok := first.(*hol.And); ok {
		return anySubsetOf(t.Args, second)
	}
	// Containment in a disjunction holds when some disjunct contains.
	if t, ok := second.(*hol.Or); ok {
		return subsetOfAny(first, t.Args)
	}
	// Complements reverse containment.
	if lt, ok := first.(*hol.Not); ok {
		if rt, ok := second.(*hol.Not); ok {
			return IsSubset(rt.Operand, lt.Operand)
		}
	}
	//
	switch first.(type) {
	case *hol.Variable, *hol.Constant, *hol.Parameter, *hol.Integer,
		*hol.UnaryApply, *hol.BinaryApply, *hol.Not:
		// Distinct atoms (and negated atoms) are incomparable; structural
		// equality was already ruled out above.
		switch second.(type) {
		case *hol.Variable, *hol.Constant, *hol.Parameter, *hol.Integer,
			*hol.UnaryApply, *hol.BinaryApply, *hol.Not:
			return false, nil
		}
	}
	// Quantifiers, conditionals and equalities have no structural rule.
	return false, ErrUnsupported
}

// subsetOfAll checks containment of first in every term of the given
// (conjunct) list, with a sorted merge fast path when first is itself a
// sorted conjunction whose operands cover the list pointwise.
func subsetOfAll(first hol.Term, seconds []hol.Term) (bool, error) {
	if t, ok := first.(*hol.And); ok && containsSortedSubset(t.Args, seconds) {
		return true, nil
	}
	//
	for _, second := range seconds {
		if ok, err := IsSubset(first, second); err != nil {
			return false, err
		} else if !ok {
			return false, nil
		}
	}
	//
	return true, nil
}

func allSubsetOf(firsts []hol.Term, second hol.Term) (bool, error) {
	for _, first := range firsts {
		if ok, err := IsSubset(first, second); err != nil {
			return false, err
		} else if !ok {
			return false, nil
		}
	}
	//
	return true, nil
}

// anySubsetOf determines whether any of the given terms is contained in
// second.  An unsupported branch only surfaces when no other branch decides
// the question positively.
func anySubsetOf(firsts []hol.Term, second hol.Term) (bool, error) {
	var pending error
	//
	for _, first := range firsts {
		if ok, err := IsSubset(first, second); err != nil {
			pending = err
		} else if ok {
			return true, nil
		}
	}
	//
	return false, pending
}

func subsetOfAny(first hol.Term, seconds []hol.Term) (bool, error) {
	var pending error
	//
	for _, second := range seconds {
		if ok, err := IsSubset(first, second); err != nil {
			pending = err
		} else if ok {
			return true, nil
		}
	}
	//
	return false, pending
}

// containsSortedSubset performs a linear merge over two canonically sorted
// operand lists, checking that every element of the second occurs in the
// first.
func containsSortedSubset(first []hol.Term, second []hol.Term) bool {
	i := 0
	//
	for _, target := range second {
		for i < len(first) && hol.Compare(first[i], target) < 0 {
			i++
		}
		//
		if i >= len(first) || hol.Compare(first[i], target) != 0 {
			return false
		}
		//
		i++
	}
	//
	return true
}
