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

package zbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/token-ledger/codec/zbor"
	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/testing/mocks"
)

func TestCodec_RoundTrip(t *testing.T) {
	codec := zbor.NewCodec()

	event := mocks.GenericEvent(0)

	data, err := codec.Marshal(event)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var got ledger.Event
	err = codec.Unmarshal(data, &got)
	require.NoError(t, err)

	assert.Equal(t, event, got)
}

func TestCodec_UnmarshalGarbage(t *testing.T) {
	codec := zbor.NewCodec()

	var got ledger.Event
	err := codec.Unmarshal([]byte{0x01, 0x02, 0x03}, &got)

	assert.Error(t, err)
}
