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

package mocks

import "testing"

type Codec struct {
	MarshalFunc   func(value interface{}) ([]byte, error)
	UnmarshalFunc func(data []byte, value interface{}) error
}

func BaselineCodec(t *testing.T) *Codec {
	t.Helper()

	c := Codec{
		MarshalFunc: func(interface{}) ([]byte, error) {
			return GenericBytes, nil
		},
		UnmarshalFunc: func([]byte, interface{}) error {
			return nil
		},
	}

	return &c
}

func (c *Codec) Marshal(value interface{}) ([]byte, error) {
	return c.MarshalFunc(value)
}

func (c *Codec) Unmarshal(data []byte, value interface{}) error {
	return c.UnmarshalFunc(data, value)
}
