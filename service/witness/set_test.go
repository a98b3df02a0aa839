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

package witness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optakt/token-ledger/service/witness"
	"github.com/optakt/token-ledger/testing/mocks"
)

func TestSet_Authorized(t *testing.T) {
	member := mocks.GenericAddress(0)
	other := mocks.GenericAddress(1)

	t.Run("authorizes members", func(t *testing.T) {
		set := witness.FromAddresses(member)

		assert.True(t, set.Authorized(member))
		assert.False(t, set.Authorized(other))
	})

	t.Run("empty set authorizes nothing", func(t *testing.T) {
		set := witness.FromAddresses()

		assert.False(t, set.Authorized(member))
	})
}
