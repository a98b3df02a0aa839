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

package token

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/holiman/uint256"

	"github.com/optakt/token-ledger/models/failure"
	"github.com/optakt/token-ledger/models/ledger"
)

// Approve grants the spender the right to move the given amount out of the
// owner's account. The invocation must be witnessed by the owner, and the
// amount must not exceed the owner's current balance; both checks are fatal.
// Approvals accumulate: the new allowance is the current allowance plus the
// amount, not a replacement. The approve event carries the amount added.
func (e *Engine) Approve(owner ledger.Address, spender ledger.Address, amount *uint256.Int) error {

	if !ledger.ValidAmount(amount) {
		return failure.AmountOverflow{Operation: "approve"}
	}
	if !e.witness.Authorized(owner) {
		return failure.Unauthorized{Address: owner}
	}

	err := e.db.Update(func(tx *badger.Txn) error {
		var balance uint256.Int
		err := e.lib.RetrieveBalance(owner, &balance)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve owner balance: %w", err)
		}
		if balance.Lt(amount) {
			return failure.InsufficientBalance{
				Address:   owner,
				Available: balance.Clone(),
				Requested: amount.Clone(),
			}
		}

		var allowance uint256.Int
		err = e.lib.RetrieveAllowance(owner, spender, &allowance)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve allowance: %w", err)
		}
		granted, carry := new(uint256.Int).AddOverflow(&allowance, amount)
		if carry || !ledger.ValidAmount(granted) {
			return failure.AmountOverflow{Operation: "approve"}
		}

		// A grant that sums to zero must not create a zero-valued cell.
		if granted.IsZero() {
			return nil
		}

		err = e.lib.SaveAllowance(owner, spender, granted)(tx)
		if err != nil {
			return fmt.Errorf("could not save allowance: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.events.Emit(ledger.ApproveEvent(owner, spender, amount))

	return nil
}
