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

package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/holiman/uint256"

	"github.com/optakt/token-ledger/models/ledger"
)

// SaveSupply is an operation that writes the total supply of the ledger.
func (l *Library) SaveSupply(supply *uint256.Int) func(*badger.Txn) error {
	return l.saveAmount(EncodeKey(PrefixSupply), supply)
}

// RetrieveSupply retrieves the total supply; zero if never initialized.
func (l *Library) RetrieveSupply(supply *uint256.Int) func(*badger.Txn) error {
	return l.retrieveAmount(EncodeKey(PrefixSupply), supply)
}

// SaveBalance is an operation that writes the balance of the given address.
func (l *Library) SaveBalance(address ledger.Address, balance *uint256.Int) func(*badger.Txn) error {
	return l.saveAmount(EncodeKey(PrefixBalance, address), balance)
}

// RetrieveBalance retrieves the balance of the given address; zero if the
// address was never credited.
func (l *Library) RetrieveBalance(address ledger.Address, balance *uint256.Int) func(*badger.Txn) error {
	return l.retrieveAmount(EncodeKey(PrefixBalance, address), balance)
}

// RemoveBalance is an operation that deletes the balance entry of the given
// address. Balances that reach zero are deleted, never stored as zero.
func (l *Library) RemoveBalance(address ledger.Address) func(*badger.Txn) error {
	return l.remove(EncodeKey(PrefixBalance, address))
}

// SaveAllowance is an operation that writes the allowance granted by the
// owner to the spender.
func (l *Library) SaveAllowance(owner ledger.Address, spender ledger.Address, allowance *uint256.Int) func(*badger.Txn) error {
	return l.saveAmount(EncodeKey(PrefixAllowance, owner, spender), allowance)
}

// RetrieveAllowance retrieves the allowance granted by the owner to the
// spender; zero if none was granted.
func (l *Library) RetrieveAllowance(owner ledger.Address, spender ledger.Address, allowance *uint256.Int) func(*badger.Txn) error {
	return l.retrieveAmount(EncodeKey(PrefixAllowance, owner, spender), allowance)
}

// RemoveAllowance is an operation that deletes the allowance entry for the
// given owner and spender pair.
func (l *Library) RemoveAllowance(owner ledger.Address, spender ledger.Address) func(*badger.Txn) error {
	return l.remove(EncodeKey(PrefixAllowance, owner, spender))
}

// SaveEvent is an operation that writes the given event under its sequence
// number.
func (l *Library) SaveEvent(sequence uint64, event ledger.Event) func(*badger.Txn) error {
	key := EncodeKey(PrefixEvent, sequence)
	val, err := l.codec.Marshal(event)
	return func(tx *badger.Txn) error {
		if err != nil {
			return fmt.Errorf("could not encode event (key: %x): %w", key, err)
		}

		err := tx.Set(key, val)
		if err != nil {
			return fmt.Errorf("could not set event (key: %x): %w", key, err)
		}

		return nil
	}
}

// RetrieveEvents retrieves all recorded events in sequence order.
func (l *Library) RetrieveEvents(events *[]ledger.Event) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		prefix := EncodeKey(PrefixEvent)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := tx.NewIterator(opts)
		defer it.Close()

		// Sequence numbers are encoded big-endian, so iteration order is
		// emission order.
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var event ledger.Event
			err := it.Item().Value(func(val []byte) error {
				return l.codec.Unmarshal(val, &event)
			})
			if err != nil {
				return fmt.Errorf("could not unmarshal event: %w", err)
			}

			*events = append(*events, event)
		}

		return nil
	}
}
