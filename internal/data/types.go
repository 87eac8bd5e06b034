// Copyright 2024 The FlatFlow Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package data

import (
	"math"

	"golang.org/x/exp/constraints"
)

// OverflowSafeCast converts the given size into the signed accumulator type
// used when summing sizes.  A value beyond the signed range saturates to the
// signed maximum instead of wrapping around.
func OverflowSafeCast[T constraints.Unsigned](size T) int64 {
	if math.MaxInt64 < uint64(size) {
		return math.MaxInt64
	}
	return int64(size)
}
