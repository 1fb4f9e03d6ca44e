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

// Unify performs one-sided matching: it determines whether replacing every
// occurrence of target within general yields specific, and if so extracts the
// (single, consistent) witness term that target must stand for.  When general
// contains no occurrence of target, unification succeeds exactly when the two
// terms are structurally equal, and the witness is nil.
func Unify(specific Term, general Term, target Term) (Term, bool) {
	var witness Term
	//
	if !unifyTerm(specific, general, target, &witness) {
		return nil, false
	}
	//
	return witness, true
}

func unifyTerm(specific Term, general Term, target Term, witness *Term) bool {
	// An occurrence of the target matches whatever stands opposite it,
	// provided all occurrences agree.
	if Equal(general, target) {
		if *witness == nil {
			*witness = specific
			return true
		}
		//
		return Equal(*witness, specific)
	}
	//
	if specific.Kind() != general.Kind() {
		return false
	}
	//
	switch gt := general.(type) {
	case *Variable:
		return gt.ID == specific.(*Variable).ID
	case *Constant:
		return gt.ID == specific.(*Constant).ID
	case *Parameter:
		return gt.ID == specific.(*Parameter).ID
	case *Integer:
		return gt.Value == specific.(*Integer).Value
	case *Truth:
		return true
	case *Not:
		return unifyTerm(specific.(*Not).Operand, gt.Operand, target, witness)
	case *IfThen:
		st := specific.(*IfThen)
		return unifyTerm(st.Left, gt.Left, target, witness) &&
			unifyTerm(st.Right, gt.Right, target, witness)
	case *Equals:
		st := specific.(*Equals)
		return unifyTerm(st.Left, gt.Left, target, witness) &&
			unifyTerm(st.Right, gt.Right, target, witness)
	case *And:
		return unifyMany(specific.(*And).Args, gt.Args, target, witness)
	case *Or:
		return unifyMany(specific.(*Or).Args, gt.Args, target, witness)
	case *Iff:
		return unifyMany(specific.(*Iff).Args, gt.Args, target, witness)
	case *UnaryApply:
		st := specific.(*UnaryApply)
		return unifyTerm(st.Fn, gt.Fn, target, witness) &&
			unifyTerm(st.Arg, gt.Arg, target, witness)
	case *BinaryApply:
		st := specific.(*BinaryApply)
		return unifyTerm(st.Fn, gt.Fn, target, witness) &&
			unifyTerm(st.Arg1, gt.Arg1, target, witness) &&
			unifyTerm(st.Arg2, gt.Arg2, target, witness)
	case *ForAll:
		st := specific.(*ForAll)
		return st.Variable == gt.Variable && unifyTerm(st.Operand, gt.Operand, target, witness)
	case *Exists:
		st := specific.(*Exists)
		return st.Variable == gt.Variable && unifyTerm(st.Operand, gt.Operand, target, witness)
	case *Lambda:
		st := specific.(*Lambda)
		return st.Variable == gt.Variable && unifyTerm(st.Operand, gt.Operand, target, witness)
	default:
		panic("unreachable")
	}
}

func unifyMany(specific []Term, general []Term, target Term, witness *Term) bool {
	if len(specific) != len(general) {
		return false
	}
	//
	for i := range general {
		if !unifyTerm(specific[i], general[i], target, witness) {
			return false
		}
	}
	//
	return true
}
