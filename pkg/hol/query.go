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

import "slices"

// Walk visits every node of a term in pre-order.  The visitor returns whether
// to descend into the children of the node just visited.
func Walk(term Term, fn func(Term) bool) {
	if !fn(term) {
		return
	}
	//
	switch t := term.(type) {
	case *Variable, *Constant, *Parameter, *Integer, *Truth:
		// leaf
	case *Not:
		Walk(t.Operand, fn)
	case *IfThen:
		Walk(t.Left, fn)
		Walk(t.Right, fn)
	case *Equals:
		Walk(t.Left, fn)
		Walk(t.Right, fn)
	case *And:
		for _, arg := range t.Args {
			Walk(arg, fn)
		}
	case *Or:
		for _, arg := range t.Args {
			Walk(arg, fn)
		}
	case *Iff:
		for _, arg := range t.Args {
			Walk(arg, fn)
		}
	case *UnaryApply:
		Walk(t.Fn, fn)
		Walk(t.Arg, fn)
	case *BinaryApply:
		Walk(t.Fn, fn)
		Walk(t.Arg1, fn)
		Walk(t.Arg2, fn)
	case *ForAll:
		Walk(t.Operand, fn)
	case *Exists:
		Walk(t.Operand, fn)
	case *Lambda:
		Walk(t.Operand, fn)
	default:
		panic("unreachable")
	}
}

// GetParameters returns the indices of all parameters occurring in a term,
// sorted and deduplicated.
func GetParameters(term Term) []uint {
	var params []uint
	//
	Walk(term, func(t Term) bool {
		if p, ok := t.(*Parameter); ok {
			params = append(params, p.ID)
		}
		//
		return true
	})
	//
	slices.Sort(params)
	//
	return slices.Compact(params)
}

// ContainsParameter determines whether the given parameter occurs anywhere in
// a term.
func ContainsParameter(term Term, id uint) bool {
	found := false
	//
	Walk(term, func(t Term) bool {
		if p, ok := t.(*Parameter); ok && p.ID == id {
			found = true
		}
		//
		return !found
	})
	//
	return found
}

// ContainsVariable determines whether the given variable occurs anywhere in a
// term, at a use site or a binder.
func ContainsVariable(term Term, id uint) bool {
	found := false
	//
	Walk(term, func(t Term) bool {
		switch v := t.(type) {
		case *Variable:
			found = found || v.ID == id
		case *ForAll:
			found = found || v.Variable == id
		case *Exists:
			found = found || v.Variable == id
		case *Lambda:
			found = found || v.Variable == id
		}
		//
		return !found
	})
	//
	return found
}

// FreeVariables returns the indices of all variables occurring free in a
// term, sorted and deduplicated.
func FreeVariables(term Term) []uint {
	var free []uint
	//
	freeVariables(term, nil, &free)
	//
	slices.Sort(free)
	//
	return slices.Compact(free)
}

func freeVariables(term Term, bound []uint, free *[]uint) {
	switch t := term.(type) {
	case *Variable:
		if !slices.Contains(bound, t.ID) {
			*free = append(*free, t.ID)
		}
	case *ForAll:
		freeVariables(t.Operand, append(bound, t.Variable), free)
	case *Exists:
		freeVariables(t.Operand, append(bound, t.Variable), free)
	case *Lambda:
		freeVariables(t.Operand, append(bound, t.Variable), free)
	case *Not:
		freeVariables(t.Operand, bound, free)
	case *IfThen:
		freeVariables(t.Left, bound, free)
		freeVariables(t.Right, bound, free)
	case *Equals:
		freeVariables(t.Left, bound, free)
		freeVariables(t.Right, bound, free)
	case *And:
		for _, arg := range t.Args {
			freeVariables(arg, bound, free)
		}
	case *Or:
		for _, arg := range t.Args {
			freeVariables(arg, bound, free)
		}
	case *Iff:
		for _, arg := range t.Args {
			freeVariables(arg, bound, free)
		}
	case *UnaryApply:
		freeVariables(t.Fn, bound, free)
		freeVariables(t.Arg, bound, free)
	case *BinaryApply:
		freeVariables(t.Fn, bound, free)
		freeVariables(t.Arg1, bound, free)
		freeVariables(t.Arg2, bound, free)
	}
}

// MaxVariable returns the largest variable index occurring in a term, or zero
// if it has none.
func MaxVariable(term Term) uint {
	var max uint
	//
	Walk(term, func(t Term) bool {
		switch v := t.(type) {
		case *Variable:
			if v.ID > max {
				max = v.ID
			}
		case *ForAll:
			if v.Variable > max {
				max = v.Variable
			}
		case *Exists:
			if v.Variable > max {
				max = v.Variable
			}
		case *Lambda:
			if v.Variable > max {
				max = v.Variable
			}
		}
		//
		return true
	})
	//
	return max
}
