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

// Package token implements the accounting engine of the ledger: the state
// transitions over balances and allowances of a fixed-supply fungible token.
//
// Every operation validates all of its preconditions before it writes
// anything and runs inside a single database transaction, so a fatal failure
// leaves no partial mutation behind. Failures come in two tiers: fatal
// conditions surface as typed errors from the failure package, while a plain
// transfer refused by policy returns a boolean false without an error.
// Events are handed to the emitter only after the transaction has committed.
package token

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"

	"github.com/optakt/token-ledger/models/failure"
	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/service/storage"
)

// Engine is the accounting engine of the ledger. The host environment is
// expected to serialize invocations; the engine itself spawns no goroutines.
type Engine struct {
	log     zerolog.Logger
	db      *badger.DB
	lib     ledger.Library
	witness ledger.Witness
	events  ledger.Emitter
	admin   ledger.Address
	cfg     Config
	total   *uint256.Int
}

// New creates a new accounting engine on top of the given database and
// storage library. The witness authorizes invocations, the emitter receives
// events for committed mutations, and the admin receives the full supply at
// initialization. The total supply is the product of two 64-bit
// configuration values, so it always fits the 128-bit amount range.
func New(log zerolog.Logger, db *badger.DB, lib ledger.Library, witness ledger.Witness, events ledger.Emitter, admin ledger.Address, options ...Option) *Engine {

	cfg := DefaultConfig
	for _, option := range options {
		option(&cfg)
	}

	total := new(uint256.Int).Mul(uint256.NewInt(cfg.Supply), uint256.NewInt(cfg.Multiplier))

	e := Engine{
		log:     log.With().Str("component", "token_engine").Logger(),
		db:      db,
		lib:     lib,
		witness: witness,
		events:  events,
		admin:   admin,
		cfg:     cfg,
		total:   total,
	}

	return &e
}

// Initialize sets up the ledger: it stores the total supply and credits all
// of it to the admin account, in one transaction. It fails when the
// invocation is not witnessed by the admin or when the ledger already holds
// a supply, in which case no state is touched.
func (e *Engine) Initialize() error {

	if !e.witness.Authorized(e.admin) {
		return failure.Unauthorized{Address: e.admin}
	}

	err := e.db.Update(func(tx *badger.Txn) error {
		var supply uint256.Int
		err := e.lib.RetrieveSupply(&supply)(tx)
		if err != nil {
			return fmt.Errorf("could not retrieve supply: %w", err)
		}
		if !supply.IsZero() {
			return failure.AlreadyInitialized{Supply: supply.Clone()}
		}

		err = storage.Combine(
			e.lib.SaveSupply(e.total),
			e.lib.SaveBalance(e.admin, e.total),
		)(tx)
		if err != nil {
			return fmt.Errorf("could not save initial state: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	e.log.Info().
		Str("admin", e.admin.String()).
		Str("supply", e.total.Dec()).
		Msg("ledger initialized")

	return nil
}
