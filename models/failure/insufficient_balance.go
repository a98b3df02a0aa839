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

package failure

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/optakt/token-ledger/models/ledger"
)

// InsufficientBalance is the failure for an operation that needs more funds
// than the account holds. Plain transfers degrade to a boolean false
// instead; approvals and delegated transfers fail with this.
type InsufficientBalance struct {
	Address   ledger.Address
	Available *uint256.Int
	Requested *uint256.Int
}

// Error implements the error interface.
func (i InsufficientBalance) Error() string {
	return fmt.Sprintf("insufficient balance (address: %s, available: %s, requested: %s)", i.Address, i.Available, i.Requested)
}
