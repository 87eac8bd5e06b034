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

// Package communicator implements an intermediary to communicate with the
// scheduler.  The primitives are based on the syntax of the Message Passing
// Interface (MPI); the communicator runtime always starts with Init and ends
// with Finalize.  At the beginning of each training epoch, Bcast is invoked
// to broadcast the schedule for the corresponding epoch to all workers.
package communicator

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/9rum/flatflow/scheduler"
	"github.com/golang/glog"
	"golang.org/x/exp/constraints"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// communicatorServer implements the server API for Communicator service.
type communicatorServer struct {
	UnimplementedCommunicatorServer
	scheduler *scheduler.Scheduler[uint64]
	err       error
	done      chan<- os.Signal
	fanin     chan struct{}
	fanout    []chan []int
}

// NewCommunicatorServer creates a new communicator server with the given
// arguments.
func NewCommunicatorServer(done chan<- os.Signal, worldSize int) CommunicatorServer {
	fanout := make([]chan []int, 0, worldSize)
	for len(fanout) < cap(fanout) {
		fanout = append(fanout, make(chan []int))
	}
	return &communicatorServer{
		done:   done,
		fanin:  make(chan struct{}),
		fanout: fanout,
	}
}

// Init initializes the training environment.
func (c *communicatorServer) Init(ctx context.Context, in *InitRequest) (*emptypb.Empty, error) {
	go func() {
		c.fanin <- struct{}{}
	}()

	if in.GetRank() == 0 {
		go func() {
			c.err = c.init(int(in.GetGlobalBatchSize()), int(in.GetMicroBatchSize()), int(in.GetSeed()), in.GetSizes())
			for range c.fanout {
				<-c.fanin
			}
			for _, ch := range c.fanout {
				ch <- nil
			}
		}()
	}

	<-c.fanout[in.GetRank()]
	if c.err != nil {
		return nil, status.Error(codes.Internal, c.err.Error())
	}
	return new(emptypb.Empty), nil
}

// init initializes the scheduler with the given arguments.
func (c *communicatorServer) init(globalBatchSize, microBatchSize, seed int, sizes []int64) (err error) {
	glog.Infof("Init called with world size: %d global batch size: %d micro-batch size: %d", len(c.fanout), globalBatchSize, microBatchSize)

	c.scheduler, err = scheduler.New(cast[int64, uint64](sizes), len(c.fanout), globalBatchSize, microBatchSize, seed)
	if err == nil {
		c.scheduler.OnTrainBegin()
	}
	return
}

// cast casts the given slice.
func cast[T, U constraints.Integer](slice []T) []U {
	out := make([]U, len(slice))
	stride := func(numerator, denominator int) int {
		if numerator%denominator == 0 {
			return numerator / denominator
		}
		return numerator/denominator + 1
	}(max(len(slice), 1), runtime.NumCPU())

	var wg sync.WaitGroup
	for base := 0; base < len(slice); base += stride {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			limit := min(base+stride, len(slice))
			for index := base; index < limit; index++ {
				out[index] = U(slice[index])
			}
		}(base)
	}
	wg.Wait()

	return out
}

// Bcast broadcasts the schedule for the given epoch to all workers.  The
// costs in the request are accepted for forward compatibility with
// cost-feedback scheduling policies and are currently ignored.
func (c *communicatorServer) Bcast(ctx context.Context, in *BcastRequest) (*BcastResponse, error) {
	glog.Infof("epoch: %d Bcast called from rank %d", in.GetEpoch(), in.GetRank())

	go func() {
		c.fanin <- struct{}{}
	}()

	if in.GetRank() == 0 {
		go func() {
			for range c.fanout {
				<-c.fanin
			}
			epoch := int(in.GetEpoch())
			if 0 < epoch {
				c.scheduler.OnEpochEnd(epoch - 1)
			}
			c.scheduler.OnEpochBegin(epoch)
			for rank, indices := range c.scheduler.Schedule() {
				c.fanout[rank] <- indices
			}
		}()
	}

	indices := <-c.fanout[in.GetRank()]
	return &BcastResponse{Indices: cast[int, int64](indices)}, nil
}

// Finalize terminates the training environment.
func (c *communicatorServer) Finalize(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error) {
	glog.Info("Finalize called")
	defer glog.Flush()
	defer c.close()

	c.scheduler.OnTrainEnd()
	c.scheduler = nil

	return new(emptypb.Empty), nil
}

// close closes all open channels and notifies the main goroutine that the
// communicator runtime has ended.
func (c *communicatorServer) close() {
	close(c.fanin)
	for _, ch := range c.fanout {
		close(ch)
	}
	signal.Notify(c.done, syscall.SIGTERM)
	close(c.done)
}
