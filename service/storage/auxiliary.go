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
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/holiman/uint256"

	"github.com/optakt/token-ledger/models/failure"
	"github.com/optakt/token-ledger/models/ledger"
)

// saveAmount writes the amount under the given key as a fixed-width cell.
func (l *Library) saveAmount(key []byte, amount *uint256.Int) func(*badger.Txn) error {
	// Encoding happens outside of the closure so that a loop variable keeps
	// the value it had when the operation was created.
	val, err := encodeAmount(amount)
	return func(tx *badger.Txn) error {
		if err != nil {
			return fmt.Errorf("could not encode amount (key: %x): %w", key, err)
		}

		err := tx.Set(key, val)
		if err != nil {
			return fmt.Errorf("could not set amount (key: %x): %w", key, err)
		}

		return nil
	}
}

// retrieveAmount reads the amount cell under the given key. An absent key
// yields zero; absence is the only representation of zero on the ledger.
func (l *Library) retrieveAmount(key []byte, amount *uint256.Int) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		item, err := tx.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			amount.Clear()
			return nil
		}
		if err != nil {
			return fmt.Errorf("could not get amount (key: %x): %w", key, err)
		}

		err = item.Value(func(val []byte) error {
			return decodeAmount(key, val, amount)
		})
		if err != nil {
			return err
		}

		return nil
	}
}

// remove deletes the entry under the given key; it is a no-op when the key
// is absent.
func (l *Library) remove(key []byte) func(*badger.Txn) error {
	return func(tx *badger.Txn) error {
		err := tx.Delete(key)
		if err != nil {
			return fmt.Errorf("could not delete value (key: %x): %w", key, err)
		}

		return nil
	}
}

func encodeAmount(amount *uint256.Int) ([]byte, error) {
	if !ledger.ValidAmount(amount) {
		return nil, failure.AmountOverflow{Operation: "store"}
	}

	full := amount.Bytes32()
	val := make([]byte, ledger.AmountLength)
	copy(val, full[32-ledger.AmountLength:])

	return val, nil
}

func decodeAmount(key []byte, val []byte, amount *uint256.Int) error {
	if len(val) != ledger.AmountLength {
		return failure.CorruptedValue{Key: key, Length: len(val)}
	}

	amount.SetBytes(val)

	return nil
}
