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

// Kind identifies the variant of a term node.  The numeric order of the kinds
// is load bearing: it is the primary sort key of the total order over terms,
// and hence of every sorted operand list the canonicalizer produces.
type Kind uint8

const (
	// KindVariable is a bound (or free) variable, identified by index.
	KindVariable Kind = iota + 1
	// KindConstant is a named constant symbol, identified by index.
	KindConstant
	// KindParameter is a proof-level parameter (e.g. a Skolem witness).
	KindParameter
	// KindUnaryApply is the application of a function to one argument.
	KindUnaryApply
	// KindBinaryApply is the application of a function to two arguments.
	KindBinaryApply
	// KindAnd is an n-ary conjunction.
	KindAnd
	// KindOr is an n-ary disjunction.
	KindOr
	// KindIfThen is a (single) implication.
	KindIfThen
	// KindEquals is an equality between two terms.
	KindEquals
	// KindIff is an n-ary biconditional (produced by canonicalization).
	KindIff
	// KindNot is a logical negation.
	KindNot
	// KindForAll is a universal quantifier.
	KindForAll
	// KindExists is an existential quantifier.
	KindExists
	// KindLambda is a lambda abstraction.
	KindLambda
	// KindInteger is an integer literal.
	KindInteger
	// KindTrue is logical truth.
	KindTrue
	// KindFalse is logical falsehood.
	KindFalse
)

// Term is a node in an immutable formula graph.  Nodes are built bottom-up by
// the constructor functions and may be shared by any number of parents; no
// operation in this package mutates a node after construction.  A term is
// always a DAG (a node never references an ancestor).
type Term interface {
	// Kind returns the variant tag of this node.
	Kind() Kind
	// String renders the node in the surface syntax with default names.
	String() string
}

// ============================================================================
// Atoms
// ============================================================================

// Variable represents a variable, identified by a numeric index.  Whether the
// variable is bound is a property of the enclosing formula, not the node.
type Variable struct{ ID uint }

// Kind returns KindVariable.
func (p *Variable) Kind() Kind { return KindVariable }

// Constant represents a named constant symbol.  The mapping from indices to
// surface names lives outside the term graph (see parser.SymbolTable).
type Constant struct{ ID uint }

// Kind returns KindConstant.
func (p *Constant) Kind() Kind { return KindConstant }

// Parameter represents a proof-level parameter, distinct from both variables
// and constants.  Parameters are introduced by the surrounding proof system
// (e.g. when witnessing an existential).
type Parameter struct{ ID uint }

// Kind returns KindParameter.
func (p *Parameter) Kind() Kind { return KindParameter }

// Integer represents an integer literal.
type Integer struct{ Value int32 }

// Kind returns KindInteger.
func (p *Integer) Kind() Kind { return KindInteger }

// Truth represents one of the two logical truth values.  The two process-wide
// singletons True and False are the only instances ever constructed.
type Truth struct{ Value bool }

// Kind returns KindTrue or KindFalse.
func (p *Truth) Kind() Kind {
	if p.Value {
		return KindTrue
	}
	//
	return KindFalse
}

// True is the process-wide truth singleton.
var True Term = &Truth{true}

// False is the process-wide falsehood singleton.
var False Term = &Truth{false}

// ============================================================================
// Connectives
// ============================================================================

// Not represents the logical negation of its operand.
type Not struct{ Operand Term }

// Kind returns KindNot.
func (p *Not) Kind() Kind { return KindNot }

// IfThen represents a single implication from Left to Right.
type IfThen struct{ Left, Right Term }

// Kind returns KindIfThen.
func (p *IfThen) Kind() Kind { return KindIfThen }

// Equals represents an equality between two terms.  Whether the node denotes
// a value equality or a biconditional is decided by type inference, not by
// the node itself.
type Equals struct{ Left, Right Term }

// Kind returns KindEquals.
func (p *Equals) Kind() Kind { return KindEquals }

// And represents the conjunction of one or more operands.  Operand order is
// semantically irrelevant once canonicalized, but is the canonical sort key.
type And struct{ Args []Term }

// Kind returns KindAnd.
func (p *And) Kind() Kind { return KindAnd }

// Or represents the disjunction of one or more operands.
type Or struct{ Args []Term }

// Kind returns KindOr.
func (p *Or) Kind() Kind { return KindOr }

// Iff represents an n-ary biconditional.  Only the canonicalizer produces
// this variant; the parser expresses biconditionals as boolean equalities.
type Iff struct{ Args []Term }

// Kind returns KindIff.
func (p *Iff) Kind() Kind { return KindIff }

// ============================================================================
// Applications
// ============================================================================

// UnaryApply represents the application of Fn to a single argument.
type UnaryApply struct{ Fn, Arg Term }

// Kind returns KindUnaryApply.
func (p *UnaryApply) Kind() Kind { return KindUnaryApply }

// BinaryApply represents the application of Fn to two arguments.
type BinaryApply struct{ Fn, Arg1, Arg2 Term }

// Kind returns KindBinaryApply.
func (p *BinaryApply) Kind() Kind { return KindBinaryApply }

// ============================================================================
// Quantifiers
// ============================================================================

// ForAll represents universal quantification of Variable over Operand.
type ForAll struct {
	Variable uint
	Operand  Term
}

// Kind returns KindForAll.
func (p *ForAll) Kind() Kind { return KindForAll }

// Exists represents existential quantification of Variable over Operand.
type Exists struct {
	Variable uint
	Operand  Term
}

// Kind returns KindExists.
func (p *Exists) Kind() Kind { return KindExists }

// Lambda represents the abstraction of Operand over Variable.
type Lambda struct {
	Variable uint
	Operand  Term
}

// Kind returns KindLambda.
func (p *Lambda) Kind() Kind { return KindLambda }
