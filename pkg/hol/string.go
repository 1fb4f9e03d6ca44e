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
	"fmt"
	"strings"
)

// Namer resolves constant indices to surface names for printing.  Resolution
// may fail, in which case a placeholder name is used.
type Namer interface {
	Name(id uint) (string, bool)
}

// Print renders a term in the surface syntax, resolving constant names via
// the given namer (which may be nil).
func Print(term Term, namer Namer) string {
	var builder strings.Builder
	//
	printTerm(&builder, term, namer)
	//
	return builder.String()
}

func printTerm(builder *strings.Builder, term Term, namer Namer) {
	switch t := term.(type) {
	case *Variable:
		fmt.Fprintf(builder, "x%d", t.ID)
	case *Constant:
		if namer != nil {
			if name, ok := namer.Name(t.ID); ok {
				builder.WriteString(name)
				return
			}
		}
		//
		fmt.Fprintf(builder, "c%d", t.ID)
	case *Parameter:
		fmt.Fprintf(builder, "$%d", t.ID)
	case *Integer:
		fmt.Fprintf(builder, "%d", t.Value)
	case *Truth:
		if t.Value {
			builder.WriteString("T")
		} else {
			builder.WriteString("F")
		}
	case *Not:
		builder.WriteString("~")
		printOperand(builder, t.Operand, namer)
	case *IfThen:
		printOperand(builder, t.Left, namer)
		builder.WriteString(" => ")
		printOperand(builder, t.Right, namer)
	case *Equals:
		printOperand(builder, t.Left, namer)
		builder.WriteString(" = ")
		printOperand(builder, t.Right, namer)
	case *And:
		printInfix(builder, t.Args, " & ", namer)
	case *Or:
		printInfix(builder, t.Args, " | ", namer)
	case *Iff:
		printInfix(builder, t.Args, " <=> ", namer)
	case *UnaryApply:
		printOperand(builder, t.Fn, namer)
		builder.WriteString("(")
		printTerm(builder, t.Arg, namer)
		builder.WriteString(")")
	case *BinaryApply:
		printOperand(builder, t.Fn, namer)
		builder.WriteString("(")
		printTerm(builder, t.Arg1, namer)
		builder.WriteString(",")
		printTerm(builder, t.Arg2, namer)
		builder.WriteString(")")
	case *ForAll:
		fmt.Fprintf(builder, "!x%d(", t.Variable)
		printTerm(builder, t.Operand, namer)
		builder.WriteString(")")
	case *Exists:
		fmt.Fprintf(builder, "?x%d(", t.Variable)
		printTerm(builder, t.Operand, namer)
		builder.WriteString(")")
	case *Lambda:
		fmt.Fprintf(builder, "^x%d(", t.Variable)
		printTerm(builder, t.Operand, namer)
		builder.WriteString(")")
	default:
		panic("unreachable")
	}
}

// printOperand renders a term which sits inside an enclosing operator,
// parenthesizing infix forms so the output reparses unambiguously.
func printOperand(builder *strings.Builder, term Term, namer Namer) {
	switch term.Kind() {
	case KindAnd, KindOr, KindIfThen, KindEquals, KindIff:
		builder.WriteString("(")
		printTerm(builder, term, namer)
		builder.WriteString(")")
	default:
		printTerm(builder, term, namer)
	}
}

func printInfix(builder *strings.Builder, args []Term, operator string, namer Namer) {
	for i, arg := range args {
		if i != 0 {
			builder.WriteString(operator)
		}
		//
		printOperand(builder, arg, namer)
	}
}

func (p *Variable) String() string { return Print(p, nil) }

func (p *Constant) String() string { return Print(p, nil) }

func (p *Parameter) String() string { return Print(p, nil) }

func (p *Integer) String() string { return Print(p, nil) }

func (p *Truth) String() string { return Print(p, nil) }

func (p *Not) String() string { return Print(p, nil) }

func (p *IfThen) String() string { return Print(p, nil) }

func (p *Equals) String() string { return Print(p, nil) }

func (p *And) String() string { return Print(p, nil) }

func (p *Or) String() string { return Print(p, nil) }

func (p *Iff) String() string { return Print(p, nil) }

func (p *UnaryApply) String() string { return Print(p, nil) }

func (p *BinaryApply) String() string { return Print(p, nil) }

func (p *ForAll) String() string { return Print(p, nil) }

func (p *Exists) String() string { return Print(p, nil) }

func (p *Lambda) String() string { return Print(p, nil) }
