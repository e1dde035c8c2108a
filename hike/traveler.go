// Copyright 2025 Naren Yellavula
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

package hike

import "fmt"

// Traveler is the hiker's pack. It is a plain value: copying it gives an
// independent snapshot, which is how each branch of the search gets its own
// supplies.
type Traveler struct {
	Food int
	Raft int
	Axe  int
}

func (t Traveler) String() string {
	return fmt.Sprintf("food=%d raft=%d axe=%d", t.Food, t.Raft, t.Axe)
}
