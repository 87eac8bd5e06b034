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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perm returns a random permutation of the sizes 1 through datasetSize.
func perm(datasetSize int) []uint32 {
	sizes := make([]uint32, 0, datasetSize)
	for _, size := range rand.Perm(datasetSize) {
		sizes = append(sizes, uint32(size)+1)
	}
	return sizes
}

func TestShardedDataset(t *testing.T) {
	const (
		datasetSize = 1 << 10
		batchSize   = 1 << 5
	)
	sizes := perm(datasetSize)
	dataset, err := NewShardedDataset(sizes, 0)
	require.NoError(t, err)

	for epoch := 0; epoch < 10; epoch++ {
		dataset.OnEpochBegin(epoch)
		seen := make(map[int]struct{}, datasetSize)
		for step := 0; step < datasetSize/batchSize; step++ {
			for _, item := range dataset.Take(batchSize) {
				assert.Equal(t, sizes[item.Index], item.Size)
				_, dup := seen[item.Index]
				assert.False(t, dup, "index %d scheduled twice in epoch %d", item.Index, epoch)
				seen[item.Index] = struct{}{}
			}
		}
		assert.Len(t, seen, datasetSize)
		assert.Zero(t, dataset.Len())
		dataset.OnEpochEnd(epoch)
	}
	dataset.OnTrainEnd()
}

func TestShardedDatasetDeterminism(t *testing.T) {
	const datasetSize = 1 << 10
	sizes := perm(datasetSize)

	first, err := NewShardedDataset(sizes, 42)
	require.NoError(t, err)
	second, err := NewShardedDataset(sizes, 42)
	require.NoError(t, err)

	for epoch := 0; epoch < 3; epoch++ {
		first.OnEpochBegin(epoch)
		second.OnEpochBegin(epoch)
		assert.Equal(t, first.Take(datasetSize), second.Take(datasetSize))
	}

	first.OnEpochBegin(0)
	second.OnEpochBegin(1)
	assert.NotEqual(t, first.Take(datasetSize), second.Take(datasetSize))
}

func TestShardedDatasetExhaustion(t *testing.T) {
	dataset, err := NewShardedDataset([]uint32{1, 2, 3, 4}, 0)
	require.NoError(t, err)

	assert.Panics(t, func() {
		dataset.Take(5)
	})
}

func TestNewShardedDatasetRejectsInvalidSizes(t *testing.T) {
	_, err := NewShardedDataset[uint32](nil, 0)
	assert.Error(t, err)

	_, err = NewShardedDataset([]uint32{1, 0, 2}, 0)
	assert.Error(t, err)
}

func BenchmarkShardedDataset(b *testing.B) {
	b.StopTimer()
	const datasetSize = 1 << 14
	sizes := perm(datasetSize)
	dataset, _ := NewShardedDataset(sizes, 0)
	b.StartTimer()

	for epoch := 0; epoch < b.N; epoch++ {
		dataset.OnEpochBegin(epoch)
		dataset.Take(datasetSize)
		dataset.OnEpochEnd(epoch)
	}
	dataset.OnTrainEnd()
}
