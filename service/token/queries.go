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

	"github.com/holiman/uint256"

	"github.com/optakt/token-ledger/models/ledger"
)

// Name returns the token name.
func (e *Engine) Name() string {
	return e.cfg.Name
}

// Symbol returns the token ticker symbol.
func (e *Engine) Symbol() string {
	return e.cfg.Symbol
}

// Multiplier returns the number of base units per whole token.
func (e *Engine) Multiplier() uint64 {
	return e.cfg.Multiplier
}

// TotalSupply returns the total supply of the ledger; zero before
// initialization.
func (e *Engine) TotalSupply() (*uint256.Int, error) {
	var supply uint256.Int
	err := e.db.View(e.lib.RetrieveSupply(&supply))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve supply: %w", err)
	}

	return &supply, nil
}

// BalanceOf returns the balance of the given address; zero for addresses
// that were never credited.
func (e *Engine) BalanceOf(address ledger.Address) (*uint256.Int, error) {
	var balance uint256.Int
	err := e.db.View(e.lib.RetrieveBalance(address, &balance))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve balance: %w", err)
	}

	return &balance, nil
}

// Allowance returns the allowance the owner has granted to the spender;
// zero if none was granted.
func (e *Engine) Allowance(owner ledger.Address, spender ledger.Address) (*uint256.Int, error) {
	var allowance uint256.Int
	err := e.db.View(e.lib.RetrieveAllowance(owner, spender, &allowance))
	if err != nil {
		return nil, fmt.Errorf("could not retrieve allowance: %w", err)
	}

	return &allowance, nil
}
