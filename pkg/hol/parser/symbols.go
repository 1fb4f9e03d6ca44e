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

// SymbolTable interns constant names to dense indices, so parsed terms carry
// plain numeric constants.  It implements hol.Namer for printing.
type SymbolTable struct {
	names []string
	ids   map[string]uint
}

// NewSymbolTable constructs an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{ids: make(map[string]uint)}
}

// Intern returns the index of the given name, allocating the next free index
// on first sight.
func (p *SymbolTable) Intern(name string) uint {
	if id, ok := p.ids[name]; ok {
		return id
	}
	//
	id := uint(len(p.names))
	p.names = append(p.names, name)
	p.ids[name] = id
	//
	return id
}

// Name resolves an index back to its name.
func (p *SymbolTable) Name(id uint) (string, bool) {
	if id < uint(len(p.names)) {
		return p.names[id], true
	}
	//
	return "", false
}

// Len returns the number of interned symbols.
func (p *SymbolTable) Len() uint {
	return uint(len(p.names))
}
