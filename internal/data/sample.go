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

import "golang.org/x/exp/constraints"

// Item represents a single data sample in transit between the dataset and
// the scheduler.
type Item[T constraints.Unsigned] struct {
	Index int
	Size  T
}

// less orders items by size; ties resolve to the smaller index so that the
// ordering is strict and the underlying container never conflates two
// distinct data samples of the same size.
func less[T constraints.Unsigned](item, than Item[T]) bool {
	if item.Size == than.Size {
		return item.Index < than.Index
	}
	return item.Size < than.Size
}
