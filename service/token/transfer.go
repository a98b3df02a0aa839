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

// Transfer moves the given amount from one account to the other. The
// invocation must be witnessed by the sender; a missing witness is fatal. A
// zero amount or an insufficient balance is not an error: the transfer
// returns false and mutates nothing, so callers can observe and react. On
// success, the sender's entry is deleted when its balance reaches zero, and
// a transfer event is emitted once the mutation has committed.
func (e *Engine) Transfer(from ledger.Address, to ledger.Address, amount *uint256.Int) (bool, error) {

	if !ledger.ValidAmount(amount) {
		return false, failure.AmountOverflow{Operation: "transfer"}
	}
	if !e.witness.Authorized(from) {
		return false, failure.Unauthorized{Address: from}
	}

	var moved bool
	err := e.db.Update(func(tx *badger.Txn) error {
		var err error
		moved, err = e.move(tx, from, to, amount)
		return err
	})
	if err != nil {
		return false, err
	}
	if !moved {
		return false, nil
	}

	e.events.Emit(ledger.TransferEvent(from, to, amount))

	return true, nil
}

// TransferMulti applies the given transfers in order within a single
// database transaction. Each sub-transfer is authorized and applied exactly
// like a plain transfer, except that a sub-transfer that would return false
// escalates to a fatal BatchTransferFailed. Any failure rolls back the
// whole batch; events for all sub-transfers are emitted only after the
// single commit.
func (e *Engine) TransferMulti(transfers []ledger.Transfer) error {

	err := e.db.Update(func(tx *badger.Txn) error {
		for index, transfer := range transfers {
			if !ledger.ValidAmount(transfer.Amount) {
				return failure.AmountOverflow{Operation: "transfer"}
			}
			if !e.witness.Authorized(transfer.From) {
				return failure.Unauthorized{Address: transfer.From}
			}

			moved, err := e.move(tx, transfer.From, transfer.To, transfer.Amount)
			if err != nil {
				return err
			}
			if !moved {
				return failure.BatchTransferFailed{
					Index:  index,
					From:   transfer.From,
					To:     transfer.To,
					Amount: transfer.Amount.Clone(),
				}
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, transfer := range transfers {
		e.events.Emit(ledger.TransferEvent(transfer.From, transfer.To, transfer.Amount))
	}

	return nil
}

// TransferFrom lets the spender move funds out of another account, within
// the allowance that account granted. The invocation must be witnessed by
// the spender. Exceeding the allowance or the account's balance is fatal;
// there is no boolean-false path here. The allowance entry is reduced, and
// deleted when it reaches zero, before the balances move. No event is
// produced for delegated transfers.
func (e *Engine) TransferFrom(spender ledger.Address, from ledger.Address, amount *uint256.Int) error {

	if !ledger.ValidAmount(amount) {
		return failure.AmountOverflow{Operation: "transfer"}
	}
	if !e.witness.Authorized(spender) {
		return failure.Unauthorized{Address: spender}
	}

	return e.db.Update(func(tx *badger.Txn) error {
		var allowance uint256.Int
		err := e.lib.RetrieveAllowance(from, spender, &allowance)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve allowance: %w", err)
		}
		if allowance.Lt(amount) {
			return failure.InsufficientAllowance{
				Owner:     from,
				Spender:   spender,
				Available: allowance.Clone(),
				Requested: amount.Clone(),
			}
		}

		var fromBalance uint256.Int
		err = e.lib.RetrieveBalance(from, &fromBalance)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve owner balance: %w", err)
		}
		if fromBalance.Lt(amount) {
			return failure.InsufficientBalance{
				Address:   from,
				Available: fromBalance.Clone(),
				Requested: amount.Clone(),
			}
		}

		// All preconditions hold trivially for a zero amount; writing
		// nothing avoids creating zero-valued cells.
		if amount.IsZero() {
			return nil
		}

		if allowance.Eq(amount) {
			err = e.lib.RemoveAllowance(from, spender)(tx)
			if err != nil {
				return fmt.Errorf("could not remove allowance: %w", err)
			}
		} else {
			remainder := new(uint256.Int).Sub(&allowance, amount)
			err = e.lib.SaveAllowance(from, spender, remainder)(tx)
			if err != nil {
				return fmt.Errorf("could not save allowance: %w", err)
			}
		}

		// When the spender withdraws to itself the balances net out; only
		// the allowance burns.
		if spender == from {
			return nil
		}

		var spenderBalance uint256.Int
		err = e.lib.RetrieveBalance(spender, &spenderBalance)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve spender balance: %w", err)
		}
		credited, carry := new(uint256.Int).AddOverflow(&spenderBalance, amount)
		if carry || !ledger.ValidAmount(credited) {
			return failure.AmountOverflow{Operation: "credit"}
		}
		err = e.lib.SaveBalance(spender, credited)(tx)
		if err != nil {
			return fmt.Errorf("could not save spender balance: %w", err)
		}

		if fromBalance.Eq(amount) {
			err = e.lib.RemoveBalance(from)(tx)
			if err != nil {
				return fmt.Errorf("could not remove owner balance: %w", err)
			}
		} else {
			remainder := new(uint256.Int).Sub(&fromBalance, amount)
			err = e.lib.SaveBalance(from, remainder)(tx)
			if err != nil {
				return fmt.Errorf("could not save owner balance: %w", err)
			}
		}

		return nil
	})
}

// move debits the sender and credits the receiver within the given
// transaction. A false return means the transfer was refused by policy, for
// a zero amount or an insufficient balance, and nothing was written.
func (e *Engine) move(tx *badger.Txn, from ledger.Address, to ledger.Address, amount *uint256.Int) (bool, error) {

	var fromBalance uint256.Int
	err := e.lib.RetrieveBalance(from, &fromBalance)(tx)
	if err != nil {
		return false, fmt.Errorf("could not retrieve sender balance: %w", err)
	}
	if amount.IsZero() || fromBalance.Lt(amount) {
		return false, nil
	}

	// A self-transfer nets out to no change. The single balance read above
	// stays authoritative: the entry is neither rewritten nor deleted.
	if from == to {
		return true, nil
	}

	if fromBalance.Eq(amount) {
		err = e.lib.RemoveBalance(from)(tx)
		if err != nil {
			return false, fmt.Errorf("could not remove sender balance: %w", err)
		}
	} else {
		remainder := new(uint256.Int).Sub(&fromBalance, amount)
		err = e.lib.SaveBalance(from, remainder)(tx)
		if err != nil {
			return false, fmt.Errorf("could not save sender balance: %w", err)
		}
	}

	var toBalance uint256.Int
	err = e.lib.RetrieveBalance(to, &toBalance)(tx)
	if err != nil {
		return false, fmt.Errorf("could not retrieve receiver balance: %w", err)
	}
	credited, carry := new(uint256.Int).AddOverflow(&toBalance, amount)
	if carry || !ledger.ValidAmount(credited) {
		return false, failure.AmountOverflow{Operation: "credit"}
	}
	err = e.lib.SaveBalance(to, credited)(tx)
	if err != nil {
		return false, fmt.Errorf("could not save receiver balance: %w", err)
	}

	return true, nil
}
