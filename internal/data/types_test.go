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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverflowSafeCast(t *testing.T) {
	assert.EqualValues(t, 0, OverflowSafeCast[uint32](0))
	assert.EqualValues(t, 42, OverflowSafeCast[uint32](42))
	assert.EqualValues(t, math.MaxUint32, OverflowSafeCast[uint32](math.MaxUint32))
	assert.EqualValues(t, math.MaxInt64, OverflowSafeCast[uint64](math.MaxInt64))
	assert.EqualValues(t, math.MaxInt64, OverflowSafeCast[uint64](math.MaxInt64+1))
	assert.EqualValues(t, math.MaxInt64, OverflowSafeCast[uint64](math.MaxUint64))
}
