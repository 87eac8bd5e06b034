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

// Package algorithm provides the building blocks of epoch scheduling:
// workload-balanced partitioning of data samples into micro-batches,
// inter-batch shuffling, and layout of micro-batches across the
// data-parallel ranks.
package algorithm

import (
	"container/heap"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/9rum/flatflow/internal/data"
	"golang.org/x/exp/constraints"
)

// slot is one of the k partitions under construction.  Its weight is the sum
// of the sizes of the accumulated data samples, in the order they arrived.
type slot struct {
	weight  int64
	indices []int
}

// tuple is a k-way partial partition with its slots kept sorted by weight,
// lightest first.  seq records the insertion order for stable tie-breaking.
type tuple struct {
	slots []slot
	seq   int
}

// spread is the priority key for combining tuples.
func (t *tuple) spread() int64 {
	return t.slots[len(t.slots)-1].weight - t.slots[0].weight
}

// combine merges two tuples by adding the heaviest slot of the first to the
// lightest slot of the second, the second-heaviest to the second-lightest,
// and so on.  The merged slots are re-sorted to restore the weight order.
func combine(first, second *tuple, seq int) *tuple {
	k := len(first.slots)
	slots := make([]slot, k)
	for i := range slots {
		heavy, light := first.slots[k-1-i], second.slots[i]
		indices := make([]int, 0, len(heavy.indices)+len(light.indices))
		indices = append(append(indices, heavy.indices...), light.indices...)
		slots[i] = slot{
			weight:  saturatingAdd(heavy.weight, light.weight),
			indices: indices,
		}
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].weight < slots[j].weight
	})
	return &tuple{slots: slots, seq: seq}
}

// saturatingAdd sums two nonnegative weights, saturating at the signed
// maximum instead of wrapping around.
func saturatingAdd(augend, addend int64) int64 {
	if math.MaxInt64-addend < augend {
		return math.MaxInt64
	}
	return augend + addend
}

// tupleHeap is a max-heap on tuple spread.  Ties resolve to the earliest
// inserted tuple so that equal inputs always combine in the same order.
type tupleHeap []*tuple

func (h tupleHeap) Len() int {
	return len(h)
}

func (h tupleHeap) Less(i, j int) bool {
	if h[i].spread() == h[j].spread() {
		return h[i].seq < h[j].seq
	}
	return h[j].spread() < h[i].spread()
}

func (h tupleHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *tupleHeap) Push(x any) {
	*h = append(*h, x.(*tuple))
}

func (h *tupleHeap) Pop() any {
	old := *h
	last := len(old) - 1
	t := old[last]
	old[last] = nil
	*h = old[:last]
	return t
}

// KarmarkarKarp partitions the given items into k disjoint micro-batches
// whose sums of sizes are approximately equal, using the differencing
// heuristic for multiway number partitioning.
//
// Every micro-batch must hold exactly len(items) / k data samples, so the
// differencing does not start from singleton tuples: the items are sorted by
// size and folded into runs of k, one item per slot, which keeps the slot
// cardinalities equal through every combine.  The runs are then combined
// pairwise, heaviest spread first, until a single tuple remains; its k slots
// are the micro-batches.  The sums are balanced subject to the equal
// cardinality constraint, which on heavily skewed size distributions can
// leave a wider spread than unconstrained differencing, still bounded by
// twice the largest size.
//
// The result is deterministic for equal inputs regardless of the number of
// cores the run initialization is spread over.
// Differencing method paper: Karmarkar & Karp, The Differencing Method of
// Set Partitioning, UCB/CSD-82-113 (1982).
func KarmarkarKarp[T constraints.Unsigned](items []data.Item[T], k int, cast func(T) int64) [][]int {
	if k <= 0 {
		panic("algorithm: number of micro-batches must be positive")
	}

	sorted := make([]data.Item[T], len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[j].Size < sorted[i].Size
	})

	tuples := make([]*tuple, (len(sorted)+k-1)/k)

	stride := func(numerator, denominator int) int {
		if numerator%denominator == 0 {
			return numerator / denominator
		}
		return numerator/denominator + 1
	}(max(len(tuples), 1), runtime.NumCPU())

	var wg sync.WaitGroup
	for base := 0; base < len(tuples); base += stride {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			limit := min(base+stride, len(tuples))
			for seq := base; seq < limit; seq++ {
				slots := make([]slot, k)
				for i := range slots {
					// The slots fill heaviest last to keep the weight order; a run
					// shorter than k leaves its lightest slots empty.
					if position := seq*k + k - 1 - i; position < len(sorted) {
						item := sorted[position]
						slots[i] = slot{weight: cast(item.Size), indices: []int{item.Index}}
					} else {
						slots[i] = slot{indices: []int{}}
					}
				}
				tuples[seq] = &tuple{slots: slots, seq: seq}
			}
		}(base)
	}
	wg.Wait()

	if len(tuples) == 0 {
		microBatches := make([][]int, k)
		for i := range microBatches {
			microBatches[i] = []int{}
		}
		return microBatches
	}

	h := tupleHeap(tuples)
	heap.Init(&h)

	for seq := len(tuples); 1 < h.Len(); seq++ {
		first := heap.Pop(&h).(*tuple)
		second := heap.Pop(&h).(*tuple)
		heap.Push(&h, combine(first, second, seq))
	}

	microBatches := make([][]int, 0, k)
	for _, s := range h[0].slots {
		microBatches = append(microBatches, s.indices)
	}

	return microBatches
}
