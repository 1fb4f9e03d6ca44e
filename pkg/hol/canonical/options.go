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
package canonical

import (
	"errors"
	"fmt"

	"github.com/hol-lang/go-hol/pkg/hol"
)

// ErrUnsupported signals that subsumption testing reached a construct it has
// no decision procedure for (quantifiers, conditionals, equalities).
var ErrUnsupported = errors.New("subsumption not supported for this construct")

// ErrNonConvergent signals that rewriting failed to reach a fixpoint within
// the pass bound, so no canonical form can be guaranteed.
var ErrNonConvergent = errors.New("canonicalization did not converge")

// ShadowedVariableError reports a quantifier which rebinds a variable already
// bound by an enclosing quantifier.  Such terms are rejected as malformed.
type ShadowedVariableError struct {
	// ID is the rebound variable index.
	ID uint
}

func (p *ShadowedVariableError) Error() string {
	return fmt.Sprintf("variable x%d is bound by an enclosing quantifier", p.ID)
}

// Options configures canonicalization.
type Options struct {
	// PolymorphicEquality types the two sides of an equality independently.
	PolymorphicEquality bool
	// DistinctConstants assumes distinct constant symbols denote distinct
	// individuals, collapsing equalities between them to False.
	DistinctConstants bool
	// MaxDepth bounds term nesting during canonicalization.
	MaxDepth uint
}

// Option mutates the canonicalization configuration.
type Option func(*Options)

// WithPolymorphicEquality types the two sides of every equality
// independently.
func WithPolymorphicEquality() Option {
	return func(p *Options) { p.PolymorphicEquality = true }
}

// WithDistinctConstants assumes distinct constant symbols denote distinct
// individuals.
func WithDistinctConstants() Option {
	return func(p *Options) { p.DistinctConstants = true }
}

// WithMaxDepth bounds term nesting during canonicalization.
func WithMaxDepth(depth uint) Option {
	return func(p *Options) { p.MaxDepth = depth }
}

func newOptions(opts []Option) Options {
	options := Options{MaxDepth: hol.DefaultMaxDepth}
	//
	for _, opt := range opts {
		opt(&options)
	}
	//
	return options
}
