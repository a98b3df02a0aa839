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
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {

	t.Run("nominal case", func(t *testing.T) {
		hex := strings.Repeat("ab", AddressLength)

		address, err := ParseAddress(hex)

		require.NoError(t, err)
		assert.Equal(t, hex, address.String())
		assert.Len(t, address.Bytes(), AddressLength)
	})

	t.Run("rejects invalid hex", func(t *testing.T) {
		_, err := ParseAddress(strings.Repeat("zz", AddressLength))
		assert.Error(t, err)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		_, err := ParseAddress("abcd")
		assert.Error(t, err)
	})
}

func TestValidAmount(t *testing.T) {

	t.Run("accepts zero", func(t *testing.T) {
		assert.True(t, ValidAmount(uint256.NewInt(0)))
	})

	t.Run("accepts maximum", func(t *testing.T) {
		assert.True(t, ValidAmount(MaxAmount))
	})

	t.Run("rejects one past maximum", func(t *testing.T) {
		past := new(uint256.Int).AddUint64(MaxAmount, 1)
		assert.False(t, ValidAmount(past))
	})

	t.Run("rejects nil", func(t *testing.T) {
		assert.False(t, ValidAmount(nil))
	})
}

func TestEvents(t *testing.T) {
	var from, to Address
	from[0] = 1
	to[0] = 2

	t.Run("transfer event snapshots the amount", func(t *testing.T) {
		amount := uint256.NewInt(42)

		event := TransferEvent(from, to, amount)

		assert.Equal(t, EventTransfer, event.Type)
		assert.Equal(t, from, event.From)
		assert.Equal(t, to, event.To)

		// Later mutation of the amount must not reach the event.
		amount.AddUint64(amount, 1)
		assert.True(t, uint256.NewInt(42).Eq(event.Amount))
	})

	t.Run("approve event snapshots the amount", func(t *testing.T) {
		amount := uint256.NewInt(42)

		event := ApproveEvent(from, to, amount)

		assert.Equal(t, EventApprove, event.Type)
		assert.Equal(t, from, event.From)
		assert.Equal(t, to, event.To)

		amount.AddUint64(amount, 1)
		assert.True(t, uint256.NewInt(42).Eq(event.Amount))
	})
}
