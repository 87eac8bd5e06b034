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

// Package data provides primitives for representing and organizing the given
// dataset.  The dataset owns the sequence of (index, size) pairs and hands
// out length-biased batches of items to the scheduler through Take.
package data

import (
	"errors"
	"math"
	"math/rand"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// Dataset represents the given dataset.
type Dataset[T constraints.Unsigned] interface {
	// Take returns the next n items in the epoch's sampling order.  The union
	// of all items taken within an epoch is a permutation of the dataset, and
	// the order is reproducible for a given seed and epoch.
	Take(n int) []Item[T]

	// Len returns the number of data samples currently remaining.
	Len() int

	// OnBatchBegin is called at the beginning of a training batch.
	OnBatchBegin(batch int)

	// OnBatchEnd is called at the end of a training batch.
	OnBatchEnd(batch int)

	// OnEpochBegin resets the sampling state for the given epoch.  It must be
	// called before any Take calls for that epoch.
	OnEpochBegin(epoch int)

	// OnEpochEnd is called at the end of an epoch during training.
	OnEpochEnd(epoch int)

	// OnTrainBegin is called at the beginning of training.
	OnTrainBegin()

	// OnTrainEnd terminates the training environment.
	OnTrainEnd()
}

// We use a degree where the items fit on a single memory page.
const defaultDegree = 32

// ShardedDataset represents a sharded dataset where every node in the cluster
// has a replica of the given dataset.
type ShardedDataset[T constraints.Unsigned] struct {
	items      *btree.BTreeG[Item[T]]
	recycleBin *btree.BTreeG[Item[T]]
	seed       int
	rng        *rand.Rand
}

// NewShardedDataset creates a new sharded dataset with the given sizes.  Each
// size must be positive; the index of a size within the slice identifies the
// corresponding data sample.
func NewShardedDataset[T constraints.Unsigned](sizes []T, seed int) (*ShardedDataset[T], error) {
	if len(sizes) == 0 {
		return nil, errors.New("data: empty sizes")
	}

	dataset := &ShardedDataset[T]{
		items:      btree.NewG(defaultDegree, less[T]),
		recycleBin: btree.NewG(defaultDegree, less[T]),
		seed:       seed,
		rng:        rand.New(rand.NewSource(int64(seed))),
	}

	for index, size := range sizes {
		if size == 0 {
			return nil, errors.New("data: size must be positive")
		}
		if _, found := dataset.items.ReplaceOrInsert(Item[T]{Index: index, Size: size}); found {
			return nil, errors.New("data: insert found item")
		}
	}

	return dataset, nil
}

// Take returns the next n items in the epoch's sampling order.  Each draw
// samples a pivot uniformly between the smallest and largest remaining sizes
// and removes the item nearest to the pivot, so the draws are length-biased
// while remaining reproducible for a given seed and epoch.
func (d *ShardedDataset[T]) Take(n int) []Item[T] {
	items := make([]Item[T], 0, n)

	for len(items) < cap(items) {
		smallest, ok := d.items.Min()
		if !ok {
			panic("data: take from exhausted dataset")
		}
		largest, _ := d.items.Max()

		lo, hi := OverflowSafeCast(smallest.Size), OverflowSafeCast(largest.Size)
		pivot := hi
		// The pivot falls back to the largest size should hi - lo + 1 overflow.
		if span := hi - lo + 1; 0 < span {
			pivot = lo + d.rng.Int63n(span)
		}

		item, ok := d.deleteNearest(pivot)
		if !ok {
			panic("data: didn't find item")
		}
		d.recycleBin.ReplaceOrInsert(item)
		items = append(items, item)
	}

	return items
}

// deleteNearest removes and returns the item whose size is nearest to the
// given pivot.  A tie between two neighboring sizes resolves downwards.
func (d *ShardedDataset[T]) deleteNearest(pivot int64) (item Item[T], ok bool) {
	var (
		ceiling, floor       Item[T]
		hasCeiling, hasFloor bool
	)

	d.items.AscendGreaterOrEqual(Item[T]{Index: -1, Size: T(pivot)}, func(item Item[T]) bool {
		ceiling, hasCeiling = item, true
		return false
	})
	d.items.DescendLessOrEqual(Item[T]{Index: math.MaxInt, Size: T(pivot)}, func(item Item[T]) bool {
		floor, hasFloor = item, true
		return false
	})

	switch {
	case !hasCeiling && !hasFloor:
		return
	case !hasCeiling:
		return d.items.Delete(floor)
	case !hasFloor:
		return d.items.Delete(ceiling)
	case pivot-OverflowSafeCast(floor.Size) <= OverflowSafeCast(ceiling.Size)-pivot:
		return d.items.Delete(floor)
	}
	return d.items.Delete(ceiling)
}

// Len returns the number of data samples currently remaining.
func (d *ShardedDataset[T]) Len() int {
	return d.items.Len()
}

// OnBatchBegin is called at the beginning of a training batch.
func (d *ShardedDataset[T]) OnBatchBegin(batch int) {}

// OnBatchEnd is called at the end of a training batch.
func (d *ShardedDataset[T]) OnBatchEnd(batch int) {}

// OnEpochBegin resets the data samples and advances the sampling stream to
// the given epoch.
func (d *ShardedDataset[T]) OnEpochBegin(epoch int) {
	d.rng = rand.New(rand.NewSource(int64(d.seed + epoch)))

	for item, ok := d.recycleBin.DeleteMin(); ok; item, ok = d.recycleBin.DeleteMin() {
		d.items.ReplaceOrInsert(item)
	}
}

// OnEpochEnd is called at the end of an epoch during training.
func (d *ShardedDataset[T]) OnEpochEnd(epoch int) {}

// OnTrainBegin is called at the beginning of training.
func (d *ShardedDataset[T]) OnTrainBegin() {}

// OnTrainEnd terminates the training environment.
func (d *ShardedDataset[T]) OnTrainEnd() {
	d.items.Clear(false)
	d.items = nil
	d.recycleBin.Clear(false)
	d.recycleBin = nil
}
