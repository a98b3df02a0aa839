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

// Package rest implements the HTTP API of the token ledger. Each mutating
// request declares the addresses that witnessed the invocation, and the
// controller builds an engine scoped to that witness set before executing
// the operation.
package rest

import (
	"github.com/go-playground/validator/v10"

	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/service/token"
)

// EngineFactory builds an accounting engine whose witness contains exactly
// the given signer addresses.
type EngineFactory func(signers ...ledger.Address) (*token.Engine, error)

// Events provides access to the recorded ledger events.
type Events interface {
	Events() ([]ledger.Event, error)
}

type Controller struct {
	engine   EngineFactory
	events   Events
	validate *validator.Validate
}

func NewController(engine EngineFactory, events Events) (*Controller, error) {
	c := Controller{
		engine:   engine,
		events:   events,
		validate: newRequestValidator(),
	}
	return &c, nil
}
