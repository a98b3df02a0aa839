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

// Package journal persists ledger events so that observers can replay them
// in emission order.
package journal

import (
	"fmt"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"

	"github.com/optakt/token-ledger/models/ledger"
	"github.com/optakt/token-ledger/service/storage"
)

// Recorder writes emitted events to the database under monotonically
// increasing sequence numbers. It implements the emitter contract: the
// engine calls it after a mutation has committed and never consults a
// result, so persistence errors are logged and dropped.
type Recorder struct {
	log zerolog.Logger
	db  *badger.DB
	lib ledger.WriteLibrary
	seq *badger.Sequence
}

// NewRecorder creates a new event recorder on the given database.
func NewRecorder(log zerolog.Logger, db *badger.DB, lib ledger.WriteLibrary) (*Recorder, error) {

	seq, err := db.GetSequence(storage.EncodeKey(storage.PrefixSequence), 64)
	if err != nil {
		return nil, fmt.Errorf("could not open event sequence: %w", err)
	}

	r := Recorder{
		log: log.With().Str("component", "journal_recorder").Logger(),
		db:  db,
		lib: lib,
		seq: seq,
	}

	return &r, nil
}

// Emit persists the given event under the next sequence number.
func (r *Recorder) Emit(event ledger.Event) {

	sequence, err := r.seq.Next()
	if err != nil {
		r.log.Error().Err(err).Msg("could not get next event sequence")
		return
	}

	err = r.db.Update(r.lib.SaveEvent(sequence, event))
	if err != nil {
		r.log.Error().Err(err).Uint64("sequence", sequence).Msg("could not persist event")
		return
	}

	r.log.Debug().
		Uint64("sequence", sequence).
		Str("type", string(event.Type)).
		Str("from", event.From.String()).
		Str("to", event.To.String()).
		Str("amount", event.Amount.Dec()).
		Msg("event recorded")
}

// Close releases the remainder of the lease on the event sequence.
func (r *Recorder) Close() error {
	err := r.seq.Release()
	if err != nil {
		return fmt.Errorf("could not release event sequence: %w", err)
	}

	return nil
}
