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
)

// CorruptedValue is the failure for a stored cell that cannot be decoded as
// a 128-bit amount. Corruption always aborts; it is never read as zero.
type CorruptedValue struct {
	Key    []byte
	Length int
}

// Error implements the error interface.
func (c CorruptedValue) Error() string {
	return fmt.Sprintf("stored value is not a valid 128-bit amount (key: %x, length: %d)", c.Key, c.Length)
}
