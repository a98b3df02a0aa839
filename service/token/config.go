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

// DefaultConfig is the default configuration of the token.
var DefaultConfig = Config{
	Name:       "wasm_token",
	Symbol:     "WTK",
	Supply:     100_000_000_000,
	Multiplier: 100_000_000,
}

// Config holds the static parameters of the token. The total supply of the
// ledger is Supply whole tokens of Multiplier base units each, fixed at
// construction time.
type Config struct {
	Name       string
	Symbol     string
	Supply     uint64
	Multiplier uint64
}

// Option is an option to configure the token parameters.
type Option func(*Config)

// WithName sets the token name.
func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Name = name
	}
}

// WithSymbol sets the token ticker symbol.
func WithSymbol(symbol string) Option {
	return func(cfg *Config) {
		cfg.Symbol = symbol
	}
}

// WithSupply sets the number of whole tokens issued at initialization.
func WithSupply(supply uint64) Option {
	return func(cfg *Config) {
		cfg.Supply = supply
	}
}

// WithMultiplier sets the number of base units per whole token.
func WithMultiplier(multiplier uint64) Option {
	return func(cfg *Config) {
		cfg.Multiplier = multiplier
	}
}
