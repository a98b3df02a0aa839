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

// EventType tags the kind of ledger event.
type EventType string

// The event types produced by the accounting engine. Delegated transfers
// produce no event.
const (
	EventTransfer EventType = "transfer"
	EventApprove  EventType = "approve"
)

// Event describes a committed state change for off-core observers. For
// transfer events, From and To are the debited and credited accounts. For
// approve events, From is the owner granting the allowance and To the
// spender receiving it, with Amount holding the amount added.
type Event struct {
	Type   EventType
	From   Address
	To     Address
	Amount *uint256.Int
}

// TransferEvent builds the event for a committed transfer.
func TransferEvent(from Address, to Address, amount *uint256.Int) Event {
	return Event{
		Type:   EventTransfer,
		From:   from,
		To:     to,
		Amount: amount.Clone(),
	}
}

// ApproveEvent builds the event for a committed approval. The amount is the
// amount added to the allowance, not the resulting allowance.
func ApproveEvent(owner Address, spender Address, amount *uint256.Int) Event {
	return Event{
		Type:   EventApprove,
		From:   owner,
		To:     spender,
		Amount: amount.Clone(),
	}
}
