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

package mocks

import (
	"errors"
	"io"

	"github.com/holiman/uint256"
	"github.com/rs/zerolog"

	"github.com/optakt/token-ledger/models/ledger"
)

// Global variables that can be used for testing. They are non-nil valid
// values for the types commonly needed to test ledger components.
var (
	NoopLogger = zerolog.New(io.Discard)

	GenericError = errors.New("dummy error")

	GenericBytes = []byte(`test`)
)

// GenericAddress returns a deterministic address for the given index.
func GenericAddress(index int) ledger.Address {
	var address ledger.Address
	for i := range address {
		address[i] = byte(index + 1)
	}
	return address
}

// GenericAmount returns a deterministic amount for the given seed.
func GenericAmount(seed uint64) *uint256.Int {
	return uint256.NewInt(seed*100 + 42)
}

// GenericEvent returns a deterministic transfer event for the given seed.
func GenericEvent(seed uint64) ledger.Event {
	return ledger.TransferEvent(
		GenericAddress(int(seed)),
		GenericAddress(int(seed)+1),
		GenericAmount(seed),
	)
}
