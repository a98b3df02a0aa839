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

package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/token-ledger/codec/zbor"
	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/service/journal"
	"github.com/optakt/token-ledger/service/storage"
	"github.com/optakt/token-ledger/testing/helpers"
	"github.com/optakt/token-ledger/testing/mocks"
)

func TestJournal_RoundTrip(t *testing.T) {
	db := helpers.InMemoryDB(t)
	defer db.Close()

	lib := storage.New(zbor.NewCodec())

	recorder, err := journal.NewRecorder(mocks.NoopLogger, db, lib)
	require.NoError(t, err)
	defer recorder.Close()

	reader := journal.NewReader(db, lib)

	t.Run("no events recorded", func(t *testing.T) {
		events, err := reader.Events()

		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("events come back in emission order", func(t *testing.T) {
		first := mocks.GenericEvent(0)
		second := mocks.GenericEvent(1)
		third := mocks.GenericEvent(2)

		recorder.Emit(first)
		recorder.Emit(second)
		recorder.Emit(third)

		events, err := reader.Events()

		require.NoError(t, err)
		assert.Equal(t, []ledger.Event{first, second, third}, events)
	})
}
