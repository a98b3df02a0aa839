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

// BatchTransferFailed is the failure for a batch in which one sub-transfer
// was refused. The whole batch is rolled back.
type BatchTransferFailed struct {
	Index  int
	From   ledger.Address
	To     ledger.Address
	Amount *uint256.Int
}

// Error implements the error interface.
func (b BatchTransferFailed) Error() string {
	return fmt.Sprintf("batch transfer failed (index: %d, from: %s, to: %s, amount: %s)", b.Index, b.From, b.To, b.Amount)
}
