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

// Relabeling maps atom indices during a Clone.  A nil hook leaves the
// corresponding index class untouched.  The Variables hook applies both to
// variable nodes and to quantifier binders, so an injective hook performs an
// alpha renaming.
type Relabeling struct {
	Variables  func(uint) uint
	Constants  func(uint) uint
	Parameters func(uint) uint
}

func (p *Relabeling) variable(id uint) uint {
	if p.Variables != nil {
		return p.Variables(id)
	}
	//
	return id
}

func (p *Relabeling) constant(id uint) uint {
	if p.Constants != nil {
		return p.Constants(id)
	}
	//
	return id
}

func (p *Relabeling) parameter(id uint) uint {
	if p.Parameters != nil {
		return p.Parameters(id)
	}
	//
	return id
}

// Clone rebuilds a term, relabeling atoms as directed.  Subterms which the
// relabeling leaves untouched are shared rather than copied.
func Clone(term Term, relabel Relabeling) Term {
	switch t := term.(type) {
	case *Variable:
		if id := relabel.variable(t.ID); id != t.ID {
			return &Variable{id}
		}
		//
		return term
	case *Constant:
		if id := relabel.constant(t.ID); id != t.ID {
			return &Constant{id}
		}
		//
		return term
	case *Parameter:
		if id := relabel.parameter(t.ID); id != t.ID {
			return &Parameter{id}
		}
		//
		return term
	case *Integer, *Truth:
		return term
	case *Not:
		if operand := Clone(t.Operand, relabel); operand != t.Operand {
			return &Not{operand}
		}
		//
		return term
	case *IfThen:
		left, right := Clone(t.Left, relabel), Clone(t.Right, relabel)
		if left != t.Left || right != t.Right {
			return &IfThen{left, right}
		}
		//
		return term
	case *Equals:
		left, right := Clone(t.Left, relabel), Clone(t.Right, relabel)
		if left != t.Left || right != t.Right {
			return &Equals{left, right}
		}
		//
		return term
	case *And:
		if args, changed := cloneMany(t.Args, relabel); changed {
			return &And{args}
		}
		//
		return term
	case *Or:
		if args, changed := cloneMany(t.Args, relabel); changed {
			return &Or{args}
		}
		//
		return term
	case *Iff:
		if args, changed := cloneMany(t.Args, relabel); changed {
			return &Iff{args}
		}
		//
		return term
	case *UnaryApply:
		fn, arg := Clone(t.Fn, relabel), Clone(t.Arg, relabel)
		if fn != t.Fn || arg != t.Arg {
			return &UnaryApply{fn, arg}
		}
		//
		return term
	case *BinaryApply:
		fn := Clone(t.Fn, relabel)
		arg1, arg2 := Clone(t.Arg1, relabel), Clone(t.Arg2, relabel)
		//
		if fn != t.Fn || arg1 != t.Arg1 || arg2 != t.Arg2 {
			return &BinaryApply{fn, arg1, arg2}
		}
		//
		return term
	case *ForAll:
		variable, operand := relabel.variable(t.Variable), Clone(t.Operand, relabel)
		if variable != t.Variable || operand != t.Operand {
			return &ForAll{variable, operand}
		}
		//
		return term
	case *Exists:
		variable, operand := relabel.variable(t.Variable), Clone(t.Operand, relabel)
		if variable != t.Variable || operand != t.Operand {
			return &Exists{variable, operand}
		}
		//
		return term
	case *Lambda:
		variable, operand := relabel.variable(t.Variable), Clone(t.Operand, relabel)
		if variable != t.Variable || operand != t.Operand {
			return &Lambda{variable, operand}
		}
		//
		return term
	default:
		panic("unreachable")
	}
}

func cloneMany(args []Term, relabel Relabeling) ([]Term, bool) {
	var nargs []Term
	//
	for i, arg := range args {
		narg := Clone(arg, relabel)
		//
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
		return args, false
	}
	//
	return nargs, true
}
