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

package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReshape(t *testing.T) {
	microBatches := [][]int{{0, 1}, {2, 3}, {4, 5}, {6, 7}}

	// one micro-batch per rank per global batch
	assert.Equal(t, [][]int{{0, 1, 4, 5}, {2, 3, 6, 7}}, Reshape(microBatches, 2, 4))

	// two micro-batches per rank in a single global batch, dealt block-wise
	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}}, Reshape(microBatches, 2, 8))
}

func TestReshapeTrailingGlobalBatch(t *testing.T) {
	// a trailing group shorter than a full global batch still spreads evenly
	microBatches := [][]int{{0}, {1}}

	assert.Equal(t, [][]int{{0}, {1}}, Reshape(microBatches, 2, 4))
}

func TestConcat(t *testing.T) {
	schedule := [][]int{{0, 1}, {2, 3}}
	trailer := [][]int{{4}, {5}}

	Concat(schedule, trailer)

	assert.Equal(t, [][]int{{0, 1, 4}, {2, 3, 5}}, schedule)
	assert.Len(t, schedule[0], len(schedule[1]))
}
