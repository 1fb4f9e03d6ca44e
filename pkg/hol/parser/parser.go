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

// Package parser reads the surface syntax: "!x(...)" binds x universally,
// "?x(...)" existentially, "^x(...)" is a lambda, "~" negates, "&", "|",
// "=>" and "<=>" connect, "T"/"F" are the truth values, "$3" is a
// parameter, other identifiers are constants, and "f(a)" or "f(a,b)" apply.
// "=" binds tighter than the connectives and associates to the right; the
// connectives themselves do not mix without parentheses.
package parser

import (
	"strconv"

	"github.com/hol-lang/go-hol/pkg/hol"
)

// Parse reads a single term from the given input, interning constant names
// into the given symbol table.  Bound variables are numbered densely in
// binder order, starting from one.
func Parse(input string, symbols *SymbolTable) (hol.Term, error) {
	p := &parser{lexer: lexer{input: input}, symbols: symbols, nextVar: 1}
	//
	if err := p.advance(); err != nil {
		return nil, err
	}
	//
	term, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	//
	if p.lookahead.kind != tokEOF {
		return nil, p.errorf("unexpected %q after term", p.lookahead.text)
	}
	//
	return term, nil
}

type scopedVariable struct {
	name string
	id   uint
}

type parser struct {
	lexer     lexer
	lookahead token
	symbols   *SymbolTable
	scope     []scopedVariable
	nextVar   uint
}

func (p *parser) advance() error {
	tok, err := p.lexer.next()
	if err != nil {
		return err
	}
	//
	p.lookahead = tok
	//
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return p.lexer.errorf(p.lookahead.offset, format, args...)
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.lookahead.kind != kind {
		return p.errorf("expected %s, found %q", what, p.lookahead.text)
	}
	//
	return p.advance()
}

func isConnective(kind tokenKind) bool {
	switch kind {
	case tokAnd, tokOr, tokIff, tokImplies:
		return true
	default:
		return false
	}
}

func (p *parser) parseFormula() (hol.Term, error) {
	first, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	//
	operator := p.lookahead.kind
	if !isConnective(operator) {
		return first, nil
	}
	// Collect the operands of a run of one repeated connective.
	operands := []hol.Term{first}
	//
	for p.lookahead.kind == operator {
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		operand, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		//
		operands = append(operands, operand)
	}
	// Mixing connectives requires explicit grouping.
	if isConnective(p.lookahead.kind) {
		return nil, p.errorf("mixed connectives require parentheses")
	}
	//
	switch operator {
	case tokAnd:
		return hol.NewAnd(operands...), nil
	case tokOr:
		return hol.NewOr(operands...), nil
	case tokIff:
		return hol.NewIff(operands...), nil
	default:
		return foldRight(operands, hol.NewIfThen), nil
	}
}

// parseOperand parses a unary term followed by an optional equality chain;
// "=" binds tighter than the connectives.
func (p *parser) parseOperand() (hol.Term, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	//
	if p.lookahead.kind != tokEquals {
		return first, nil
	}
	//
	operands := []hol.Term{first}
	//
	for p.lookahead.kind == tokEquals {
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		operands = append(operands, operand)
	}
	//
	return foldRight(operands, hol.NewEquals), nil
}

// foldRight folds a right-associative binary connective over its operands.
func foldRight(operands []hol.Term, fn func(hol.Term, hol.Term) hol.Term) hol.Term {
	term := operands[len(operands)-1]
	//
	for i := len(operands) - 2; i >= 0; i-- {
		term = fn(operands[i], term)
	}
	//
	return term
}

func (p *parser) parseUnary() (hol.Term, error) {
	switch p.lookahead.kind {
	case tokNot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		//
		return hol.NewNot(operand), nil
	case tokForAll:
		return p.parseQuantifier(hol.NewForAll)
	case tokExists:
		return p.parseQuantifier(hol.NewExists)
	case tokLambda:
		return p.parseQuantifier(hol.NewLambda)
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		term, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		//
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		//
		return p.parseApplications(term)
	case tokIdent:
		return p.parseAtom()
	case tokParameter:
		id, err := strconv.ParseUint(p.lookahead.text, 10, 64)
		if err != nil {
			return nil, p.errorf("invalid parameter index %q", p.lookahead.text)
		}
		//
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		return hol.NewParameter(uint(id)), nil
	case tokInt:
		value, err := strconv.ParseInt(p.lookahead.text, 10, 32)
		if err != nil {
			return nil, p.errorf("integer %q out of range", p.lookahead.text)
		}
		//
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		return hol.NewInt(int32(value)), nil
	case tokEOF:
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("unexpected %q", p.lookahead.text)
	}
}

func (p *parser) parseQuantifier(fn func(uint, hol.Term) hol.Term) (hol.Term, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	//
	name := p.lookahead.text
	//
	if err := p.expect(tokIdent, "variable name"); err != nil {
		return nil, err
	}
	//
	for _, v := range p.scope {
		if v.name == name {
			return nil, p.errorf("variable %q is already bound", name)
		}
	}
	//
	id := p.nextVar
	p.nextVar++
	p.scope = append(p.scope, scopedVariable{name, id})
	//
	if err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	//
	operand, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	//
	if err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	//
	p.scope = p.scope[:len(p.scope)-1]
	//
	return p.parseApplications(fn(id, operand))
}

func (p *parser) parseAtom() (hol.Term, error) {
	name := p.lookahead.text
	//
	if err := p.advance(); err != nil {
		return nil, err
	}
	// The truth values are reserved names.
	switch name {
	case "T":
		return hol.True, nil
	case "F":
		return hol.False, nil
	}
	// Bound variables shadow constants.
	var head hol.Term
	//
	for i := len(p.scope) - 1; i >= 0; i-- {
		if p.scope[i].name == name {
			head = hol.NewVariable(p.scope[i].id)
			break
		}
	}
	//
	if head == nil {
		head = hol.NewConstant(p.symbols.Intern(name))
	}
	//
	return p.parseApplications(head)
}

// parseApplications consumes any argument lists following a head term.
func (p *parser) parseApplications(head hol.Term) (hol.Term, error) {
	for p.lookahead.kind == tokLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		//
		arg1, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		//
		switch p.lookahead.kind {
		case tokRParen:
			head = hol.NewApply(head, arg1)
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
			//
			arg2, err := p.parseFormula()
			if err != nil {
				return nil, err
			}
			//
			if p.lookahead.kind == tokComma {
				return nil, p.errorf("applications take at most two arguments")
			}
			//
			head = hol.NewApply2(head, arg1, arg2)
		default:
			return nil, p.errorf("expected ')' or ',', found %q", p.lookahead.text)
		}
		//
		if err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
	}
	//
	return head, nil
}
