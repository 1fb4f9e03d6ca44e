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

// Package sets tracks a family of sets, each denoted by the formula its
// members satisfy, together with the containment edges derivable between
// those formulas.
package sets

import (
	"github.com/hashicorp/go-set/v3"
	log "github.com/sirupsen/logrus"

	"github.com/hol-lang/go-hol/pkg/hol"
	"github.com/hol-lang/go-hol/pkg/hol/canonical"
)

// ID identifies a set within a reasoner.
type ID = uint

// Reasoner maintains a directed graph over sets keyed by canonical formula.
// An edge a -> b records that a is (provably) contained in b.  Containment
// that the structural subsumption test cannot decide is simply not recorded;
// the graph under-approximates, it never guesses.
type Reasoner struct {
	opts []canonical.Option
	// formulas holds the canonical formula denoting each set.
	formulas []hol.Term
	// index maps structural hashes to candidate identifiers.
	index map[uint64][]ID
	// parents records, per set, its known (direct) supersets.
	parents map[ID]*set.Set[ID]
	// children records, per set, its known (direct) subsets.
	children map[ID]*set.Set[ID]
}

// NewReasoner constructs an empty reasoner.  The given options configure the
// canonicalization applied to every added formula.
func NewReasoner(opts ...canonical.Option) *Reasoner {
	return &Reasoner{
		opts:     opts,
		index:    make(map[uint64][]ID),
		parents:  make(map[ID]*set.Set[ID]),
		children: make(map[ID]*set.Set[ID]),
	}
}

// Size returns the number of distinct sets added so far.
func (p *Reasoner) Size() uint {
	return uint(len(p.formulas))
}

// Formula returns the canonical formula denoting the given set.
func (p *Reasoner) Formula(id ID) (hol.Term, bool) {
	if id < uint(len(p.formulas)) {
		return p.formulas[id], true
	}
	//
	return nil, false
}

// Add registers the set denoted by the given formula, returning its
// identifier.  The formula is canonicalized first, so two formulas denoting
// the same set share one identifier.  Containment edges against every
// existing set are derived on the way in.
func (p *Reasoner) Add(formula hol.Term) (ID, error) {
	nformula, err := canonical.Canonicalize(formula, p.opts...)
	if err != nil {
		return 0, err
	}
	// Dedup against existing sets.
	hash := hol.Hash(nformula)
	//
	for _, id := range p.index[hash] {
		if hol.Equal(p.formulas[id], nformula) {
			return id, nil
		}
	}
	//
	id := ID(len(p.formulas))
	p.formulas = append(p.formulas, nformula)
	p.index[hash] = append(p.index[hash], id)
	p.parents[id] = set.New[ID](0)
	p.children[id] = set.New[ID](0)
	// Derive containment edges against every prior set.
	for other := range id {
		p.connect(id, other)
		p.connect(other, id)
	}
	//
	log.WithFields(log.Fields{
		"id":      id,
		"formula": nformula.String(),
	}).Debug("added set")
	//
	return id, nil
}

// connect records the edge from -> to whenever containment is provable.
func (p *Reasoner) connect(from ID, to ID) {
	ok, err := canonical.IsSubset(p.formulas[from], p.formulas[to])
	//
	if err != nil {
		// No decision procedure for this pair; record nothing.
		log.WithFields(log.Fields{"from": from, "to": to}).
			Debug("containment undecided")
		//
		return
	}
	//
	if ok {
		p.parents[from].Insert(to)
		p.children[to].Insert(from)
	}
}

// Contains determines whether set a is known to be contained in set b.
func (p *Reasoner) Contains(a ID, b ID) bool {
	return a == b || p.Ancestors(a).Contains(b)
}

// Ancestors returns every set known to contain the given set, transitively.
func (p *Reasoner) Ancestors(id ID) *set.Set[ID] {
	return p.closure(id, p.parents)
}

// Descendants returns every set known to be contained in the given set,
// transitively.
func (p *Reasoner) Descendants(id ID) *set.Set[ID] {
	return p.closure(id, p.children)
}

func (p *Reasoner) closure(id ID, edges map[ID]*set.Set[ID]) *set.Set[ID] {
	reached := set.New[ID](0)
	worklist := []ID{id}
	//
	for len(worklist) > 0 {
		next := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		//
		for _, succ := range edges[next].Slice() {
			if reached.Insert(succ) {
				worklist = append(worklist, succ)
			}
		}
	}
	//
	reached.Remove(id)
	//
	return reached
}

// Intersect registers the intersection of two sets, returning its identifier.
func (p *Reasoner) Intersect(a ID, b ID) (ID, error) {
	fa, ok := p.Formula(a)
	if !ok {
		return 0, errUnknownSet(a)
	}
	//
	fb, ok := p.Formula(b)
	if !ok {
		return 0, errUnknownSet(b)
	}
	//
	return p.Add(hol.NewAnd(fa, fb))
}
