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

package ledger

import (
	"github.com/holiman/uint256"
)

// Amounts are carried as 256-bit integers but constrained to the unsigned
// 128-bit range everywhere they enter or leave the ledger. AmountBits is that
// range and AmountLength the width of an encoded amount cell.
const (
	AmountBits   = 128
	AmountLength = 16
)

// MaxAmount is the highest amount the ledger can represent (2^128-1).
var MaxAmount = new(uint256.Int).Rsh(new(uint256.Int).SetAllOne(), 128)

// ValidAmount reports whether the given value fits the unsigned 128-bit
// range. A nil value is not a valid amount.
func ValidAmount(amount *uint256.Int) bool {
	return amount != nil && amount.BitLen() <= AmountBits
}
