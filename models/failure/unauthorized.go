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

package failure

import (
	"fmt"

	"github.com/optakt/token-ledger/models/ledger"
)

// Unauthorized is the failure for an invocation that is not witnessed by the
// address it acts on behalf of.
type Unauthorized struct {
	Address ledger.Address
}

// Error implements the error interface.
func (u Unauthorized) Error() string {
	return fmt.Sprintf("invocation not authorized by address (address: %s)", u.Address)
}
