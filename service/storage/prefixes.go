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

package storage

// Each entity kind lives in its own one-byte key namespace. Key segments
// have fixed lengths, so two distinct (kind, address tuple) pairs can never
// collide.
const (
	PrefixSupply    = 1
	PrefixBalance   = 2
	PrefixAllowance = 3
	PrefixEvent     = 4

	// PrefixSequence holds the Badger sequence backing event numbering.
	PrefixSequence = 255
)
