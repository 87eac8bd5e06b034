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

import "sync"

// Concat appends each row of the given trailing schedule to the
// corresponding row of the schedule.
func Concat(schedule, trailer [][]int) {
	var wg sync.WaitGroup
	for rank := range schedule {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			schedule[rank] = append(schedule[rank], trailer[rank]...)
		}(rank)
	}
	wg.Wait()
}
