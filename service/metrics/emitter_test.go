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

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/testing/mocks"
)

func TestEmitter_Emit(t *testing.T) {
	var forwarded []ledger.Event
	wrapped := mocks.BaselineEmitter(t)
	wrapped.EmitFunc = func(event ledger.Event) {
		forwarded = append(forwarded, event)
	}

	emitter := NewEmitter(wrapped)

	transfer := mocks.GenericEvent(0)
	approve := ledger.ApproveEvent(mocks.GenericAddress(0), mocks.GenericAddress(1), mocks.GenericAmount(0))

	emitter.Emit(transfer)
	emitter.Emit(transfer)
	emitter.Emit(approve)

	require.Len(t, forwarded, 3)
	assert.Equal(t, transfer, forwarded[0])
	assert.Equal(t, approve, forwarded[2])

	assert.Equal(t, float64(2), testutil.ToFloat64(emitter.event.WithLabelValues(string(ledger.EventTransfer))))
	assert.Equal(t, float64(1), testutil.ToFloat64(emitter.event.WithLabelValues(string(ledger.EventApprove))))
}
