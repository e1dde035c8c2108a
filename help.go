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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Mountainhike %s**

Send a hiker down a mountain of rest stops and list every trail that reaches the bottom.

Built with Go %s

# 1. Trail files
One rest stop per line. The first word is the label, followed by supplies and then obstacles:

    summit food food axe
    ridge raft fallen tree
    "lower camp" food river

* Supplies: *food*, *raft*, *axe* (each word adds one)
* Obstacles: *fallen tree* (costs an axe), *river* (costs a raft)
* Supplies listed after the first obstacle are ignored
* Duplicate labels and lines without a label are skipped

# 2. The hike
* Stops are arranged as a balanced tree ordered by label; the root is the summit
* Every step down costs one food; a hiker with no food left stops
* Only trails ending at the deepest level are printed; shorter ones end at a cliff

# 3. Commands
* **hike** <file>... print every complete trail
* **render** <file> show the shape of the mountain
* **settings** show or create ~/.mountainhike.yaml

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
