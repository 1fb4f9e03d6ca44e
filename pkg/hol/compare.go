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

import (
	"cmp"
	"hash/fnv"
)

// Compare imposes a total order over terms: first by variant tag, then
// recursively by payload.  This order is what the canonicalizer sorts operand
// lists with, so it must never be changed lightly.
func Compare(lhs Term, rhs Term) int {
	// Fast path for shared nodes.
	if lhs == rhs {
		return 0
	}
	//
	if c := cmp.Compare(lhs.Kind(), rhs.Kind()); c != 0 {
		return c
	}
	// Same variant, compare payloads.
	switch lt := lhs.(type) {
	case *Variable:
		return cmp.Compare(lt.ID, rhs.(*Variable).ID)
	case *Constant:
		return cmp.Compare(lt.ID, rhs.(*Constant).ID)
	case *Parameter:
		return cmp.Compare(lt.ID, rhs.(*Parameter).ID)
	case *Integer:
		return cmp.Compare(lt.Value, rhs.(*Integer).Value)
	case *Truth:
		// Singletons of equal kind are identical.
		return 0
	case *Not:
		return Compare(lt.Operand, rhs.(*Not).Operand)
	case *IfThen:
		rt := rhs.(*IfThen)
		if c := Compare(lt.Left, rt.Left); c != 0 {
			return c
		}
		//
		return Compare(lt.Right, rt.Right)
	case *Equals:
		rt := rhs.(*Equals)
		if c := Compare(lt.Left, rt.Left); c != 0 {
			return c
		}
		//
		return Compare(lt.Right, rt.Right)
	case *And:
		return compareMany(lt.Args, rhs.(*And).Args)
	case *Or:
		return compareMany(lt.Args, rhs.(*Or).Args)
	case *Iff:
		return compareMany(lt.Args, rhs.(*Iff).Args)
	case *UnaryApply:
		rt := rhs.(*UnaryApply)
		if c := Compare(lt.Fn, rt.Fn); c != 0 {
			return c
		}
		//
		return Compare(lt.Arg, rt.Arg)
	case *BinaryApply:
		rt := rhs.(*BinaryApply)
		if c := Compare(lt.Fn, rt.Fn); c != 0 {
			return c
		}
		//
		if c := Compare(lt.Arg1, rt.Arg1); c != 0 {
			return c
		}
		//
		return Compare(lt.Arg2, rt.Arg2)
	case *ForAll:
		rt := rhs.(*ForAll)
		if c := cmp.Compare(lt.Variable, rt.Variable); c != 0 {
			return c
		}
		//
		return Compare(lt.Operand, rt.Operand)
	case *Exists:
		rt := rhs.(*Exists)
		if c := cmp.Compare(lt.Variable, rt.Variable); c != 0 {
			return c
		}
		//
		return Compare(lt.Operand, rt.Operand)
	case *Lambda:
		rt := rhs.(*Lambda)
		if c := cmp.Compare(lt.Variable, rt.Variable); c != 0 {
			return c
		}
		//
		return Compare(lt.Operand, rt.Operand)
	default:
		panic("unreachable")
	}
}

// Equal determines whether two terms are structurally identical.
func Equal(lhs Term, rhs Term) bool {
	return Compare(lhs, rhs) == 0
}

// Ordered wraps a term for use with sorted collections.
type Ordered struct{ Term Term }

// Cmp implementation for the Comparable interface.
func (lhs Ordered) Cmp(rhs Ordered) int {
	return Compare(lhs.Term, rhs.Term)
}

// Hash computes a structural hash of the given term which agrees with Equal
// (equal terms hash equally).
func Hash(term Term) uint64 {
	hasher := fnv.New64a()
	hashTerm(term, hasher.Write)
	//
	return hasher.Sum64()
}

func hashTerm(term Term, write func([]byte) (int, error)) {
	hashUint(uint64(term.Kind()), write)
	//
	switch t := term.(type) {
	case *Variable:
		hashUint(uint64(t.ID), write)
	case *Constant:
		hashUint(uint64(t.ID), write)
	case *Parameter:
		hashUint(uint64(t.ID), write)
	case *Integer:
		hashUint(uint64(uint32(t.Value)), write)
	case *Truth:
		// Kind tag already distinguishes the two.
	case *Not:
		hashTerm(t.Operand, write)
	case *IfThen:
		hashTerm(t.Left, write)
		hashTerm(t.Right, write)
	case *Equals:
		hashTerm(t.Left, write)
		hashTerm(t.Right, write)
	case *And:
		hashMany(t.Args, write)
	case *Or:
		hashMany(t.Args, write)
	case *Iff:
		hashMany(t.Args, write)
	case *UnaryApply:
		hashTerm(t.Fn, write)
		hashTerm(t.Arg, write)
	case *BinaryApply:
		hashTerm(t.Fn, write)
		hashTerm(t.Arg1, write)
		hashTerm(t.Arg2, write)
	case *ForAll:
		hashUint(uint64(t.Variable), write)
		hashTerm(t.Operand, write)
	case *Exists:
		hashUint(uint64(t.Variable), write)
		hashTerm(t.Operand, write)
	case *Lambda:
		hashUint(uint64(t.Variable), write)
		hashTerm(t.Operand, write)
	default:
		panic("unreachable")
	}
}

func hashMany(args []Term, write func([]byte) (int, error)) {
	hashUint(uint64(len(args)), write)
	//
	for _, arg := range args {
		hashTerm(arg, write)
	}
}

func hashUint(value uint64, write func([]byte) (int, error)) {
	var bytes [8]byte
	//
	for i := range bytes {
		bytes[i] = byte(value >> (8 * i))
	}
	// fnv never errors
	_, _ = write(bytes[:])
}

func compareMany(lhs []Term, rhs []Term) int {
	if c := cmp.Compare(len(lhs), len(rhs)); c != 0 {
		return c
	}
	//
	for i := range lhs {
		if c := Compare(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}
	//
	return 0
}
