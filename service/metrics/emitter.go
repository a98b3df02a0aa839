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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/optakt/token-ledger/models/ledger"
)

const namespaceLedger = "ledger"

// Emitter wraps an event emitter and records metrics for the events that
// pass through it.
type Emitter struct {
	emit  ledger.Emitter
	event *prometheus.CounterVec
}

// NewEmitter creates an emitter that counts emitted events by type and
// forwards them to the given emitter.
func NewEmitter(emit ledger.Emitter) *Emitter {
	eventOpts := prometheus.CounterOpts{
		Name:      "emitted_events",
		Namespace: namespaceLedger,
		Help:      "number of emitted ledger events",
	}
	event := promauto.NewCounterVec(eventOpts, []string{"type"})

	e := Emitter{
		emit:  emit,
		event: event,
	}

	return &e
}

func (e *Emitter) Emit(event ledger.Event) {
	e.event.WithLabelValues(string(event.Type)).Inc()
	e.emit.Emit(event)
}
