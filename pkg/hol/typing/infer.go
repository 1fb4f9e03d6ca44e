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
package typing

import (
	"slices"

	"github.com/hol-lang/go-hol/pkg/hol"
)

// Options configures type inference.
type Options struct {
	// PolymorphicEquality gives the two operands of an equality independent
	// types, rather than requiring both sides to share one.
	PolymorphicEquality bool
}

// Assignment maps every node of an inferred term to its resolved type.
// Nodes shared between several parents receive a single type, the meet of
// what every context requires.
type Assignment struct {
	types map[hol.Term]*Type
}

// TypeOf returns the resolved type of a node of the inferred term.
func (p *Assignment) TypeOf(term hol.Term) (*Type, bool) {
	t, ok := p.types[term]
	return t, ok
}

// IsBoolean determines whether a node of the inferred term resolved to the
// boolean type.  Unconstrained nodes are not boolean.
func (p *Assignment) IsBoolean(term hol.Term) bool {
	t, ok := p.types[term]
	return ok && t.Kind == KindBoolean
}

// Infer computes types for every node of the given term, propagating an
// expected type downwards whilst unifying computed types upwards.  It fails
// with a TypeError when a node cannot meet its context's requirement, and
// with ErrInfiniteType when resolution would require a type to contain
// itself.
func Infer(term hol.Term, opts Options) (*Assignment, error) {
	inf := &inferencer{
		opts:      opts,
		types:     make(map[hol.Term]*Type),
		variables: make(map[uint]*Type),
		constants: make(map[uint]*Type),
	}
	//
	if _, err := inf.check(term, Any); err != nil {
		return nil, err
	}
	// Resolve all type variables through the final bindings.
	resolved := make(map[hol.Term]*Type, len(inf.types))
	//
	for node, t := range inf.types {
		ft, err := inf.flatten(t, nil)
		if err != nil {
			return nil, err
		}
		//
		resolved[node] = ft
	}
	//
	return &Assignment{resolved}, nil
}

// ============================================================================
// Inference engine
// ============================================================================

type inferencer struct {
	opts Options
	// table holds the binding of every type variable allocated so far, where
	// nil means unconstrained.
	table []*Type
	// types records the (unflattened) type computed for every node.
	types map[hol.Term]*Type
	// variables maps term variable indices to their type variables.
	variables map[uint]*Type
	// constants maps constant indices to their type variables.
	constants map[uint]*Type
}

func (p *inferencer) fresh() *Type {
	id := uint(len(p.table))
	p.table = append(p.table, nil)
	//
	return Variable(id)
}

func (p *inferencer) variableType(id uint) *Type {
	t, ok := p.variables[id]
	if !ok {
		t = p.fresh()
		p.variables[id] = t
	}
	//
	return t
}

func (p *inferencer) constantType(id uint) *Type {
	t, ok := p.constants[id]
	if !ok {
		t = p.fresh()
		p.constants[id] = t
	}
	//
	return t
}

func (p *inferencer) check(term hol.Term, expected *Type) (*Type, error) {
	var (
		computed *Type
		err      error
	)
	//
	switch t := term.(type) {
	case *hol.Variable:
		computed = p.variableType(t.ID)
	case *hol.Constant:
		computed = p.constantType(t.ID)
	case *hol.Parameter:
		computed = Individual
	case *hol.Integer:
		computed = Individual
	case *hol.Truth:
		computed = Boolean
	case *hol.Not:
		if _, err = p.check(t.Operand, Boolean); err != nil {
			return nil, err
		}
		//
		computed = Boolean
	case *hol.IfThen:
		if _, err = p.check(t.Left, Boolean); err != nil {
			return nil, err
		}
		//
		if _, err = p.check(t.Right, Boolean); err != nil {
			return nil, err
		}
		//
		computed = Boolean
	case *hol.And:
		if computed, err = p.checkAll(t.Args); err != nil {
			return nil, err
		}
	case *hol.Or:
		if computed, err = p.checkAll(t.Args); err != nil {
			return nil, err
		}
	case *hol.Iff:
		if computed, err = p.checkAll(t.Args); err != nil {
			return nil, err
		}
	case *hol.Equals:
		// Both operands share one type variable, unless equality is
		// polymorphic in which case each side gets its own.
		left := p.fresh()
		right := left
		//
		if p.opts.PolymorphicEquality {
			right = p.fresh()
		}
		//
		if _, err = p.check(t.Left, left); err != nil {
			return nil, err
		}
		//
		if _, err = p.check(t.Right, right); err != nil {
			return nil, err
		}
		//
		computed = Boolean
	case *hol.ForAll:
		p.variableType(t.Variable)
		//
		if _, err = p.check(t.Operand, Boolean); err != nil {
			return nil, err
		}
		//
		computed = Boolean
	case *hol.Exists:
		p.variableType(t.Variable)
		//
		if _, err = p.check(t.Operand, Boolean); err != nil {
			return nil, err
		}
		//
		computed = Boolean
	case *hol.Lambda:
		arg := p.variableType(t.Variable)
		//
		res, err := p.check(t.Operand, p.fresh())
		if err != nil {
			return nil, err
		}
		//
		computed = Function(arg, res)
	case *hol.UnaryApply:
		arg, err := p.check(t.Arg, p.fresh())
		if err != nil {
			return nil, err
		}
		//
		res := p.fresh()
		//
		if _, err = p.check(t.Fn, Function(arg, res)); err != nil {
			return nil, err
		}
		//
		computed = res
	case *hol.BinaryApply:
		arg1, err := p.check(t.Arg1, p.fresh())
		if err != nil {
			return nil, err
		}
		//
		arg2, err := p.check(t.Arg2, p.fresh())
		if err != nil {
			return nil, err
		}
		//
		res := p.fresh()
		// Binary applications curry.
		if _, err = p.check(t.Fn, Function(arg1, Function(arg2, res))); err != nil {
			return nil, err
		}
		//
		computed = res
	default:
		panic("unreachable")
	}
	// Meet with what the context requires.
	if computed, err = p.unify(computed, expected, term); err != nil {
		return nil, err
	}
	// Meet with what other contexts of this (shared) node required.
	if prior, ok := p.types[term]; ok {
		if computed, err = p.unify(computed, prior, term); err != nil {
			return nil, err
		}
	}
	//
	p.types[term] = computed
	//
	return computed, nil
}

func (p *inferencer) checkAll(args []hol.Term) (*Type, error) {
	for _, arg := range args {
		if _, err := p.check(arg, Boolean); err != nil {
			return nil, err
		}
	}
	//
	return Boolean, nil
}

// unify computes the meet of two types, binding type variables as needed.
// Occurs checking is deferred to flattening.
func (p *inferencer) unify(actual *Type, expected *Type, at hol.Term) (*Type, error) {
	actual = p.resolve(actual)
	expected = p.resolve(expected)
	//
	switch {
	case actual == expected:
		return actual, nil
	case expected.Kind == KindAny:
		return actual, nil
	case actual.Kind == KindAny:
		return expected, nil
	case actual.Kind == KindVariable:
		p.table[actual.ID] = expected
		return expected, nil
	case expected.Kind == KindVariable:
		p.table[expected.ID] = actual
		return actual, nil
	case actual.Kind == KindFunction && expected.Kind == KindFunction:
		arg, err := p.unify(actual.Arg, expected.Arg, at)
		if err != nil {
			return nil, err
		}
		//
		res, err := p.unify(actual.Res, expected.Res, at)
		if err != nil {
			return nil, err
		}
		//
		return Function(arg, res), nil
	case actual.Kind == expected.Kind:
		return actual, nil
	default:
		return nil, &TypeError{Term: at, Expected: expected, Actual: actual}
	}
}

// resolve chases variable bindings to their representative.  Binding chains
// are acyclic since unify only ever binds a resolved, unbound variable.
func (p *inferencer) resolve(t *Type) *Type {
	for t.Kind == KindVariable && p.table[t.ID] != nil {
		t = p.table[t.ID]
	}
	//
	return t
}

// flatten replaces every type variable by its resolved binding.  A variable
// left unconstrained flattens to Any; a variable whose binding contains
// itself has no finite solution.
func (p *inferencer) flatten(t *Type, stack []uint) (*Type, error) {
	switch t.Kind {
	case KindVariable:
		if slices.Contains(stack, t.ID) {
			return nil, ErrInfiniteType
		}
		//
		binding := p.table[t.ID]
		if binding == nil {
			return Any, nil
		}
		//
		return p.flatten(binding, append(stack, t.ID))
	case KindFunction:
		arg, err := p.flatten(t.Arg, stack)
		if err != nil {
			return nil, err
		}
		//
		res, err := p.flatten(t.Res, stack)
		if err != nil {
			return nil, err
		}
		//
		return Function(arg, res), nil
	default:
		return t, nil
	}
}
