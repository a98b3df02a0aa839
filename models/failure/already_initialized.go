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

// Package failure defines the fatal failure kinds of the accounting engine.
// A fatal failure aborts the whole invocation before any mutation survives;
// it is distinct from the boolean-false result a plain transfer returns for
// a zero amount or an insufficient balance.
package failure

import (
	"fmt"

	"github.com/holiman/uint256"
)

// AlreadyInitialized is the failure for an initialization attempt on a
// ledger that already holds a total supply.
type AlreadyInitialized struct {
	Supply *uint256.Int
}

// Error implements the error interface.
func (a AlreadyInitialized) Error() string {
	return fmt.Sprintf("ledger is already initialized (supply: %s)", a.Supply)
}
