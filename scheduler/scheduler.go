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

// Package scheduler provides primitives for scheduling imbalanced data.
// It assembles, for every training epoch, a complete schedule of sample
// indices arranged into micro-batches whose aggregate workload is balanced
// across the data-parallel ranks, reducing the straggler effects that
// otherwise dominate synchronous data-parallel training.
//
// Note that this scheduling policy is only effective for models with linear
// complexity in the size of each data sample; traditional convolutional
// neural networks (CNNs) and state space models (SSMs) in the Mamba family
// that implement linear-time sequence modeling are of this kind.
package scheduler

import (
	"errors"
	"time"

	"github.com/9rum/flatflow/internal/data"
	"github.com/9rum/flatflow/scheduler/internal/algorithm"
	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
)

// Scheduler makes schedules of data samples for each training epoch.
// Scheduling occurs at the granularity of epoch; each call to Schedule
// partitions the samples for the coming epoch into micro-batches with
// approximately equal workloads, shuffles the micro-batches, and lays them
// out across the data-parallel ranks.
type Scheduler[T constraints.Unsigned] struct {
	dataset            data.Dataset[T]
	dataParallelSize   int
	epoch              int
	globalBatchSize    int
	lastMicroBatchSize int
	microBatchSize     int
	numMicroBatches    int
	seed               int
}

// New creates a new scheduler with the given arguments.  The global batch
// size must be a multiple of the data parallel size, the resulting batch
// size per rank a multiple of the micro-batch size, and the number of data
// samples a multiple of the data parallel size.
func New[T constraints.Unsigned](sizes []T, dataParallelSize, globalBatchSize, microBatchSize, seed int) (*Scheduler[T], error) {
	switch {
	case dataParallelSize <= 0:
		return nil, errors.New("scheduler: data parallel size must be positive")
	case globalBatchSize <= 0:
		return nil, errors.New("scheduler: global batch size must be positive")
	case globalBatchSize%dataParallelSize != 0:
		return nil, errors.New("scheduler: global batch size must be a multiple of data parallel size")
	case microBatchSize <= 0:
		return nil, errors.New("scheduler: micro-batch size must be positive")
	case globalBatchSize/dataParallelSize%microBatchSize != 0:
		return nil, errors.New("scheduler: batch size per rank must be a multiple of micro-batch size")
	case len(sizes)%dataParallelSize != 0:
		return nil, errors.New("scheduler: number of samples must be a multiple of data parallel size")
	}

	dataset, err := data.NewShardedDataset(sizes, seed)
	if err != nil {
		return nil, err
	}

	perRank := len(sizes) / dataParallelSize

	return &Scheduler[T]{
		dataset:          dataset,
		dataParallelSize: dataParallelSize,
		globalBatchSize:  globalBatchSize,
		microBatchSize:   microBatchSize,
		seed:             seed,
		// (x - 1) / y + 1 is always equal to x % y == 0 ? x / y : x / y + 1
		// without any branch instructions.
		numMicroBatches: ((perRank-1)/microBatchSize + 1) * dataParallelSize,
		// The last micro-batch size must be calculated since the total number
		// of data samples is guaranteed to be a multiple of data parallel
		// size, but may not be divisible by the micro-batch size.
		//
		// (x - 1) % y + 1 is always equal to x % y == 0 ? y : x % y without
		// any branch instructions.
		lastMicroBatchSize: (perRank-1)%microBatchSize + 1,
	}, nil
}

// Schedule makes schedules for the next training epoch and then shuffles
// them.  This returns a matrix of shape (data parallel size, # of samples
// per rank) holding, for each rank, the sample indices to consume in order.
func (s *Scheduler[T]) Schedule() [][]int {
	now := time.Now()

	if s.microBatchSize == s.lastMicroBatchSize {
		items := s.dataset.Take(s.microBatchSize * s.numMicroBatches)
		microBatches := algorithm.KarmarkarKarp(items, s.numMicroBatches, data.OverflowSafeCast[T])

		glog.Infof("Partitioning into %d micro-batches took %fs", s.numMicroBatches, time.Since(now).Seconds())
		now = time.Now()

		indices := algorithm.Reshape(
			algorithm.Shuffle(microBatches, int64(s.epoch+s.seed)),
			s.dataParallelSize, s.globalBatchSize)

		glog.Infof("epoch: %d inter-batch shuffling took %fs", s.epoch, time.Since(now).Seconds())

		return indices
	}

	items := s.dataset.Take(s.microBatchSize * (s.numMicroBatches - s.dataParallelSize))
	microBatches := algorithm.KarmarkarKarp(items, s.numMicroBatches-s.dataParallelSize, data.OverflowSafeCast[T])

	lastItems := s.dataset.Take(s.lastMicroBatchSize * s.dataParallelSize)
	lastMicroBatches := algorithm.KarmarkarKarp(lastItems, s.dataParallelSize, data.OverflowSafeCast[T])

	glog.Infof("Partitioning into %d micro-batches took %fs", s.numMicroBatches, time.Since(now).Seconds())
	now = time.Now()

	indices := algorithm.Reshape(
		algorithm.Shuffle(microBatches, int64(s.epoch+s.seed)),
		s.dataParallelSize, s.globalBatchSize)

	lastIndices := algorithm.Reshape(
		algorithm.Shuffle(lastMicroBatches, int64(s.epoch+s.seed)),
		s.dataParallelSize, s.globalBatchSize)

	algorithm.Concat(indices, lastIndices)

	glog.Infof("epoch: %d inter-batch shuffling took %fs", s.epoch, time.Since(now).Seconds())

	return indices
}

// OnBatchBegin is called at the beginning of a training batch.
func (s *Scheduler[T]) OnBatchBegin(batch int) {
	s.dataset.OnBatchBegin(batch)
}

// OnBatchEnd is called at the end of a training batch.  rank and costs are
// accepted for forward compatibility with cost-feedback policies and are
// currently ignored.
func (s *Scheduler[T]) OnBatchEnd(batch, rank int, costs []float64) {
	s.dataset.OnBatchEnd(batch)
}

// OnEpochBegin is called at the beginning of an epoch.  It records the epoch
// the subsequent Schedule call makes schedules for.
func (s *Scheduler[T]) OnEpochBegin(epoch int) {
	s.epoch = epoch
	s.dataset.OnEpochBegin(epoch)
}

// OnEpochEnd is called at the end of an epoch.
func (s *Scheduler[T]) OnEpochEnd(epoch int) {
	s.dataset.OnEpochEnd(epoch)
}

// OnTrainBegin is called at the beginning of training.
func (s *Scheduler[T]) OnTrainBegin() {
	s.dataset.OnTrainBegin()
}

// OnTrainEnd terminates the training environment.
func (s *Scheduler[T]) OnTrainEnd() {
	s.dataset.OnTrainEnd()
	s.dataset = nil
}
