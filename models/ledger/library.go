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

package ledger

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/holiman/uint256"
)

// Library combines all database operations of the ledger storage library.
type Library interface {
	ReadLibrary
	WriteLibrary
}

// ReadLibrary is the set of read operations of the storage library. Reads of
// numeric cells set the target to zero when the key is absent; absence is
// the only representation of a zero balance or allowance. A present cell
// that does not hold a valid 128-bit amount fails with a corruption failure
// and is never coerced to zero.
type ReadLibrary interface {
	RetrieveSupply(supply *uint256.Int) func(*badger.Txn) error
	RetrieveBalance(address Address, balance *uint256.Int) func(*badger.Txn) error
	RetrieveAllowance(owner Address, spender Address, allowance *uint256.Int) func(*badger.Txn) error
	RetrieveEvents(events *[]Event) func(*badger.Txn) error
}

// WriteLibrary is the set of write operations of the storage library.
type WriteLibrary interface {
	SaveSupply(supply *uint256.Int) func(*badger.Txn) error
	SaveBalance(address Address, balance *uint256.Int) func(*badger.Txn) error
	RemoveBalance(address Address) func(*badger.Txn) error
	SaveAllowance(owner Address, spender Address, allowance *uint256.Int) func(*badger.Txn) error
	RemoveAllowance(owner Address, spender Address) func(*badger.Txn) error
	SaveEvent(sequence uint64, event Event) func(*badger.Txn) error
}
