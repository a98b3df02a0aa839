// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

// Package witness provides authorization checkers for ledger invocations.
package witness

import (
	"github.com/optakt/token-ledger/models/ledger"
)

// Set is an immutable set of addresses witnessed for one invocation. The
// host builds it from whatever authentication it performed before handing
// the invocation to the engine.
type Set struct {
	addresses map[ledger.Address]struct{}
}

// FromAddresses creates a witness set containing the given addresses.
func FromAddresses(addresses ...ledger.Address) *Set {
	lookup := make(map[ledger.Address]struct{}, len(addresses))
	for _, address := range addresses {
		lookup[address] = struct{}{}
	}

	s := Set{
		addresses: lookup,
	}

	return &s
}

// Authorized reports whether the given address is part of the witness set.
func (s *Set) Authorized(address ledger.Address) bool {
	_, ok := s.addresses[address]
	return ok
}
