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

// Substitute replaces every subterm structurally equal to target with the
// given replacement.  When nothing matches, the original term is returned
// unchanged (pointer identical).
func Substitute(term Term, target Term, replacement Term) (Term, error) {
	return Apply(term, func(t Term) (Term, error) {
		if Equal(t, target) {
			return replacement, nil
		}
		//
		return nil, nil
	})
}

// SubstituteVariable replaces every occurrence of the given variable with the
// replacement term.  Quantifiers binding the same index shadow nothing here:
// well-formed terms never rebind an in-scope index (see the canonicalizer's
// shadowing check), so no capture analysis is performed.
func SubstituteVariable(term Term, id uint, replacement Term) (Term, error) {
	return Substitute(term, &Variable{id}, replacement)
}

// SubstituteIndices replaces only selected occurrences of target, identified
// by their zero-based position in a pre-order traversal of matching subterms.
func SubstituteIndices(term Term, target Term, replacement Term, indices []uint) (Term, error) {
	var next uint
	//
	return Apply(term, func(t Term) (Term, error) {
		if !Equal(t, target) {
			return nil, nil
		}
		//
		index := next
		next++
		//
		for _, i := range indices {
			if i == index {
				return replacement, nil
			}
		}
		// Occurrence not selected; keep it and do not descend further (a term
		// never matches inside itself when sizes differ, but atoms could).
		return t, nil
	})
}

// ShiftVariables adjusts every variable index strictly above the given
// threshold by delta, both at binders and at use sites.  This keeps indices
// dense when a binder is removed from the middle of a formula.
func ShiftVariables(term Term, above uint, delta int) Term {
	return Clone(term, Relabeling{
		Variables: func(id uint) uint {
			if id > above {
				return uint(int(id) + delta)
			}
			//
			return id
		},
	})
}
