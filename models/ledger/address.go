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
	"encoding/hex"
	"fmt"
)

// AddressLength is the length of an account address in bytes.
const AddressLength = 20

// Address identifies an account on the ledger. The ledger never inspects its
// contents beyond equality and use as a storage key segment.
type Address [AddressLength]byte

// ParseAddress converts the hexadecimal representation of an address into an
// Address value.
func ParseAddress(text string) (Address, error) {
	var address Address
	data, err := hex.DecodeString(text)
	if err != nil {
		return Address{}, fmt.Errorf("could not decode address hex: %w", err)
	}
	if len(data) != AddressLength {
		return Address{}, fmt.Errorf("invalid address length (have: %d, want: %d)", len(data), AddressLength)
	}
	copy(address[:], data)

	return address, nil
}

// Bytes returns the raw bytes of the address.
func (a Address) Bytes() []byte {
	return a[:]
}

// String returns the hexadecimal representation of the address.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}
