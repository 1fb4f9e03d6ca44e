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
package parser

import "fmt"

// SyntaxError reports a malformed input, with the byte offset at which the
// problem was detected.
type SyntaxError struct {
	// Offset into the input, in bytes.
	Offset int
	// Message describes the problem.
	Message string
}

func (p *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s", p.Offset, p.Message)
}

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokInt
	tokParameter
	tokLParen
	tokRParen
	tokComma
	tokAnd
	tokOr
	tokNot
	tokImplies
	tokEquals
	tokIff
	tokForAll
	tokExists
	tokLambda
)

type token struct {
	kind   tokenKind
	text   string
	offset int
}

type lexer struct {
	input string
	pos   int
}

func (p *lexer) errorf(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func (p *lexer) next() (token, error) {
	// Skip whitespace
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
	//
	start := p.pos
	//
	if p.pos >= len(p.input) {
		return token{tokEOF, "", start}, nil
	}
	//
	switch c := p.input[p.pos]; {
	case c == '(':
		p.pos++
		return token{tokLParen, "(", start}, nil
	case c == ')':
		p.pos++
		return token{tokRParen, ")", start}, nil
	case c == ',':
		p.pos++
		return token{tokComma, ",", start}, nil
	case c == '&':
		p.pos++
		return token{tokAnd, "&", start}, nil
	case c == '|':
		p.pos++
		return token{tokOr, "|", start}, nil
	case c == '~':
		p.pos++
		return token{tokNot, "~", start}, nil
	case c == '!':
		p.pos++
		return token{tokForAll, "!", start}, nil
	case c == '?':
		p.pos++
		return token{tokExists, "?", start}, nil
	case c == '^':
		p.pos++
		return token{tokLambda, "^", start}, nil
	case c == '=':
		p.pos++
		// Distinguish "=" from "=>".
		if p.pos < len(p.input) && p.input[p.pos] == '>' {
			p.pos++
			return token{tokImplies, "=>", start}, nil
		}
		//
		return token{tokEquals, "=", start}, nil
	case c == '<':
		if p.pos+2 < len(p.input) && p.input[p.pos+1] == '=' && p.input[p.pos+2] == '>' {
			p.pos += 3
			return token{tokIff, "<=>", start}, nil
		}
		//
		return token{}, p.errorf(start, "unexpected character %q", c)
	case c == '$':
		p.pos++
		//
		if p.pos >= len(p.input) || !isDigit(p.input[p.pos]) {
			return token{}, p.errorf(start, "expected parameter index after '$'")
		}
		//
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
		//
		return token{tokParameter, p.input[start+1 : p.pos], start}, nil
	case c == '-' || isDigit(c):
		p.pos++
		//
		if c == '-' && (p.pos >= len(p.input) || !isDigit(p.input[p.pos])) {
			return token{}, p.errorf(start, "expected digits after '-'")
		}
		//
		for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
			p.pos++
		}
		//
		return token{tokInt, p.input[start:p.pos], start}, nil
	case isIdentStart(c):
		for p.pos < len(p.input) && isIdent(p.input[p.pos]) {
			p.pos++
		}
		//
		return token{tokIdent, p.input[start:p.pos], start}, nil
	default:
		return token{}, p.errorf(start, "unexpected character %q", c)
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
