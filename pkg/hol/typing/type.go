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
	"fmt"
	"strings"
)

// Kind identifies the variant of a type.
type Kind uint8

const (
	// KindAny is the unconstrained type, the top of the meet lattice.
	KindAny Kind = iota
	// KindBoolean is the type of truth values.
	KindBoolean
	// KindIndividual is the type of domain elements.
	KindIndividual
	// KindFunction is the type of unary functions; n-ary functions curry.
	KindFunction
	// KindVariable is an inference-time type variable.
	KindVariable
)

// Type represents a simple type over booleans and individuals.  Types are
// immutable; type variables are resolved through an Assignment, never in
// place.
type Type struct {
	Kind Kind
	// Arg and Res are the components of a function type.
	Arg *Type
	Res *Type
	// ID identifies a type variable.
	ID uint
}

// Singleton types.  Functions and variables carry payload and are constructed
// per use.
var (
	// Any is the unconstrained type.
	Any = &Type{Kind: KindAny}
	// Boolean is the type of truth values.
	Boolean = &Type{Kind: KindBoolean}
	// Individual is the type of domain elements.
	Individual = &Type{Kind: KindIndividual}
)

// Function constructs the type of functions from arg to res.
func Function(arg *Type, res *Type) *Type {
	return &Type{Kind: KindFunction, Arg: arg, Res: res}
}

// Variable constructs a type variable with the given index.
func Variable(id uint) *Type {
	return &Type{Kind: KindVariable, ID: id}
}

// Equal determines whether two types are structurally identical.
func (p *Type) Equal(other *Type) bool {
	if p.Kind != other.Kind {
		return false
	}
	//
	switch p.Kind {
	case KindFunction:
		return p.Arg.Equal(other.Arg) && p.Res.Equal(other.Res)
	case KindVariable:
		return p.ID == other.ID
	default:
		return true
	}
}

func (p *Type) String() string {
	var builder strings.Builder
	//
	p.write(&builder)
	//
	return builder.String()
}

func (p *Type) write(builder *strings.Builder) {
	switch p.Kind {
	case KindAny:
		builder.WriteString("*")
	case KindBoolean:
		builder.WriteString("o")
	case KindIndividual:
		builder.WriteString("i")
	case KindFunction:
		if p.Arg.Kind == KindFunction {
			builder.WriteString("(")
			p.Arg.write(builder)
			builder.WriteString(")")
		} else {
			p.Arg.write(builder)
		}
		//
		builder.WriteString(" -> ")
		p.Res.write(builder)
	case KindVariable:
		fmt.Fprintf(builder, "t%d", p.ID)
	default:
		panic("unreachable")
	}
}
