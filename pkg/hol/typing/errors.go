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
	"errors"
	"fmt"

	"github.com/hol-lang/go-hol/pkg/hol"
)

// ErrInfiniteType signals that resolving a type variable required the
// variable to occur inside its own binding (e.g. a self-application).
var ErrInfiniteType = errors.New("infinite type")

// TypeError reports that the type computed for a term conflicts with the type
// its context requires.
type TypeError struct {
	// Term is the node at which the conflict surfaced.
	Term hol.Term
	// Expected is the type required by the context.
	Expected *Type
	// Actual is the type computed for the term.
	Actual *Type
}

func (p *TypeError) Error() string {
	return fmt.Sprintf("term %s has type %s, but context requires %s", p.Term, p.Actual, p.Expected)
}
