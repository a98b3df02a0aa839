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

package journal

import (
	"github.com/dgraph-io/badger/v2"

	"github.com/optakt/token-ledger/models/ledger"
)

// Reader reads back the recorded events.
type Reader struct {
	db  *badger.DB
	lib ledger.ReadLibrary
}

// NewReader creates a new event reader on the given database.
func NewReader(db *badger.DB, lib ledger.ReadLibrary) *Reader {

	r := Reader{
		db:  db,
		lib: lib,
	}

	return &r
}

// Events returns all recorded events in emission order.
func (r *Reader) Events() ([]ledger.Event, error) {
	var events []ledger.Event
	err := r.db.View(r.lib.RetrieveEvents(&events))
	if err != nil {
		return nil, err
	}

	return events, nil
}
