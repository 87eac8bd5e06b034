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
	"math/rand"
	"testing"

	"github.com/9rum/flatflow/internal/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// items wraps the given sizes into data samples indexed by position.
func items(sizes []uint32) []data.Item[uint32] {
	out := make([]data.Item[uint32], 0, len(sizes))
	for index, size := range sizes {
		out = append(out, data.Item[uint32]{Index: index, Size: size})
	}
	return out
}

// weights sums the sizes of each micro-batch.
func weights(microBatches [][]int, sizes []uint32) []int64 {
	sums := make([]int64, 0, len(microBatches))
	for _, microBatch := range microBatches {
		var sum int64
		for _, index := range microBatch {
			sum += int64(sizes[index])
		}
		sums = append(sums, sum)
	}
	return sums
}

func TestKarmarkarKarp(t *testing.T) {
	const (
		numItems        = 1 << 10
		numMicroBatches = 1 << 7
	)
	sizes := make([]uint32, 0, numItems)
	for range make([]struct{}, numItems) {
		sizes = append(sizes, uint32(rand.Intn(1000))+1)
	}

	microBatches := KarmarkarKarp(items(sizes), numMicroBatches, data.OverflowSafeCast[uint32])
	require.Len(t, microBatches, numMicroBatches)

	seen := make(map[int]struct{}, numItems)
	for _, microBatch := range microBatches {
		assert.Len(t, microBatch, numItems/numMicroBatches)
		for _, index := range microBatch {
			_, dup := seen[index]
			assert.False(t, dup, "index %d assigned twice", index)
			seen[index] = struct{}{}
		}
	}
	assert.Len(t, seen, numItems)

	sums := weights(microBatches, sizes)
	heaviest, lightest := sums[0], sums[0]
	for _, sum := range sums[1:] {
		heaviest = max(heaviest, sum)
		lightest = min(lightest, sum)
	}
	assert.LessOrEqual(t, heaviest-lightest, int64(2000), "micro-batch weights out of balance: %d..%d", lightest, heaviest)
}

func TestKarmarkarKarpPairsExtremes(t *testing.T) {
	sizes := []uint32{10, 1, 10, 1, 10, 1, 10, 1}

	microBatches := KarmarkarKarp(items(sizes), 4, data.OverflowSafeCast[uint32])

	require.Len(t, microBatches, 4)
	for _, sum := range weights(microBatches, sizes) {
		assert.EqualValues(t, 11, sum)
	}
}

func TestKarmarkarKarpSkewedSizes(t *testing.T) {
	// A single heavy outlier among light items.  Equal cardinality forces
	// three light items alongside the outlier, so the best reachable split
	// is 103 against 4.
	sizes := []uint32{100, 1, 1, 1, 1, 1, 1, 1}

	microBatches := KarmarkarKarp(items(sizes), 2, data.OverflowSafeCast[uint32])

	require.Len(t, microBatches, 2)
	for _, microBatch := range microBatches {
		assert.Len(t, microBatch, 4)
	}
	sums := weights(microBatches, sizes)
	assert.ElementsMatch(t, []int64{4, 103}, sums)
}

func TestKarmarkarKarpSkewedSizesBound(t *testing.T) {
	const (
		numItems        = 1 << 8
		numMicroBatches = 1 << 5
		outlier         = 10000
	)
	sizes := make([]uint32, 0, numItems)
	sizes = append(sizes, outlier)
	for len(sizes) < cap(sizes) {
		sizes = append(sizes, uint32(len(sizes)%10)+1)
	}

	microBatches := KarmarkarKarp(items(sizes), numMicroBatches, data.OverflowSafeCast[uint32])

	require.Len(t, microBatches, numMicroBatches)
	for _, microBatch := range microBatches {
		assert.Len(t, microBatch, numItems/numMicroBatches)
	}

	sums := weights(microBatches, sizes)
	heaviest, lightest := sums[0], sums[0]
	for _, sum := range sums[1:] {
		heaviest = max(heaviest, sum)
		lightest = min(lightest, sum)
	}
	assert.LessOrEqual(t, heaviest-lightest, int64(2*outlier), "micro-batch weights out of bound: %d..%d", lightest, heaviest)
}

func TestKarmarkarKarpDeterminism(t *testing.T) {
	const (
		numItems        = 1 << 8
		numMicroBatches = 1 << 4
	)
	sizes := make([]uint32, 0, numItems)
	for range make([]struct{}, numItems) {
		sizes = append(sizes, uint32(rand.Intn(1000))+1)
	}

	first := KarmarkarKarp(items(sizes), numMicroBatches, data.OverflowSafeCast[uint32])
	second := KarmarkarKarp(items(sizes), numMicroBatches, data.OverflowSafeCast[uint32])

	assert.Equal(t, first, second)
}

func TestKarmarkarKarpEmptyItems(t *testing.T) {
	microBatches := KarmarkarKarp(nil, 3, data.OverflowSafeCast[uint32])

	require.Len(t, microBatches, 3)
	for _, microBatch := range microBatches {
		assert.Empty(t, microBatch)
	}
}

func TestKarmarkarKarpRejectsNonPositiveTarget(t *testing.T) {
	assert.Panics(t, func() {
		KarmarkarKarp(items([]uint32{1, 2, 3}), 0, data.OverflowSafeCast[uint32])
	})
}

func BenchmarkKarmarkarKarp(b *testing.B) {
	b.StopTimer()
	const (
		numItems        = 1 << 14
		numMicroBatches = 1 << 9
	)
	sizes := make([]uint32, 0, numItems)
	for range make([]struct{}, numItems) {
		sizes = append(sizes, uint32(rand.Intn(1000))+1)
	}
	in := items(sizes)
	b.StartTimer()

	for iter := 0; iter < b.N; iter++ {
		KarmarkarKarp(in, numMicroBatches, data.OverflowSafeCast[uint32])
	}
}
