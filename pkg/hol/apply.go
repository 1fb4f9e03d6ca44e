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

import "errors"

// ErrDepthExceeded signals that a term exceeded the permitted nesting depth.
var ErrDepthExceeded = errors.New("maximum term depth exceeded")

// DefaultMaxDepth is the nesting depth permitted by Apply (and by operations
// built on it) unless the caller overrides it.
const DefaultMaxDepth uint = 10_000

// Transformer is offered every node of a term during Apply.  Returning a
// non-nil term replaces the node (the walk does not descend into the
// replacement); returning nil keeps the node and descends into its children.
type Transformer func(Term) (Term, error)

// Apply walks a term top-down, offering every node to the given transformer
// and rebuilding the spine above any replacement.  Untouched subterms are
// returned as-is, so sharing within the graph is preserved and the result is
// the identical node whenever nothing changed.
func Apply(term Term, fn Transformer) (Term, error) {
	return ApplyDepth(term, fn, DefaultMaxDepth)
}

// ApplyDepth is Apply with an explicit depth budget, failing with
// ErrDepthExceeded once the term nests deeper than permitted.
func ApplyDepth(term Term, fn Transformer, depth uint) (Term, error) {
	if depth == 0 {
		return nil, ErrDepthExceeded
	}
	// Offer this node up for replacement.
	if nterm, err := fn(term); err != nil {
		return nil, err
	} else if nterm != nil {
		return nterm, nil
	}
	// No replacement here, descend.
	switch t := term.(type) {
	case *Variable, *Constant, *Parameter, *Integer, *Truth:
		return term, nil
	case *Not:
		operand, err := ApplyDepth(t.Operand, fn, depth-1)
		if err != nil {
			return nil, err
		} else if operand == t.Operand {
			return term, nil
		}
		//
		return &Not{operand}, nil
	case *IfThen:
		left, right, changed, err := applyPair(t.Left, t.Right, fn, depth-1)
		if err != nil {
			return nil, err
		} else if !changed {
			return term, nil
		}
		//
		return &IfThen{left, right}, nil
	case *Equals:
		left, right, changed, err := applyPair(t.Left, t.Right, fn, depth-1)
		if err != nil {
			return nil, err
		} else if !changed {
			return term, nil
		}
		//
		return &Equals{left, right}, nil
	case *And:
		args, changed, err := applyMany(t.Args, fn, depth-1)
		if err != nil {
			return nil, err
		} else if !changed {
			return term, nil
		}
		//
		return &And{args}, nil
	case *Or:
		args, changed, err := applyMany(t.Args, fn, depth-1)
		if err != nil {
			return nil, err
		} else if !changed {
			return term, nil
		}
		//
		return &Or{args}, nil
	case *Iff:
		args, changed, err := applyMany(t.Args, fn, depth-1)
		if err != nil {
			return nil, err
		} else if !changed {
			return term, nil
		}
		//
		return &Iff{args}, nil
	case *UnaryApply:
		f, arg, changed, err := applyPair(t.Fn, t.Arg, fn, depth-1)
		if err != nil {
			return nil, err
		} else if !changed {
			return term, nil
		}
		//
		return &UnaryApply{f, arg}, nil
	case *BinaryApply:
		f, err := ApplyDepth(t.Fn, fn, depth-1)
		if err != nil {
			return nil, err
		}
		//
		arg1, err := ApplyDepth(t.Arg1, fn, depth-1)
		if err != nil {
			return nil, err
		}
		//
		arg2, err := ApplyDepth(t.Arg2, fn, depth-1)
		if err != nil {
			return nil, err
		}
		//
		if f == t.Fn && arg1 == t.Arg1 && arg2 == t.Arg2 {
			return term, nil
		}
		//
		return &BinaryApply{f, arg1, arg2}, nil
	case *ForAll:
		operand, err := ApplyDepth(t.Operand, fn, depth-1)
		if err != nil {
			return nil, err
		} else if operand == t.Operand {
			return term, nil
		}
		//
		return &ForAll{t.Variable, operand}, nil
	case *Exists:
		operand, err := ApplyDepth(t.Operand, fn, depth-1)
		if err != nil {
			return nil, err
		} else if operand == t.Operand {
			return term, nil
		}
		//
		return &Exists{t.Variable, operand}, nil
	case *Lambda:
		operand, err := ApplyDepth(t.Operand, fn, depth-1)
		if err != nil {
			return nil, err
		} else if operand == t.Operand {
			return term, nil
		}
		//
		return &Lambda{t.Variable, operand}, nil
	default:
		panic("unreachable")
	}
}

func applyPair(lhs Term, rhs Term, fn Transformer, depth uint) (Term, Term, bool, error) {
	nlhs, err := ApplyDepth(lhs, fn, depth)
	if err != nil {
		return nil, nil, false, err
	}
	//
	nrhs, err := ApplyDepth(rhs, fn, depth)
	if err != nil {
		return nil, nil, false, err
	}
	//
	return nlhs, nrhs, nlhs != lhs || nrhs != rhs, nil
}

func applyMany(args []Term, fn Transformer, depth uint) ([]Term, bool, error) {
	var nargs []Term
	//
	for i, arg := range args {
		narg, err := ApplyDepth(arg, fn, depth)
		if err != nil {
			return nil, false, err
		}
		// Copy-on-write
		if narg != arg && nargs == nil {
			nargs = make([]Term, len(args))
			copy(nargs, args[:i])
		}
		//
		if nargs != nil {
			nargs[i] = narg
		}
	}
	//
	if nargs == nil {
		return args, false, nil
	}
	//
	return nargs, true, nil
}
