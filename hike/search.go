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

// Package hike sends a hiker down a mountain.Tree and reports every path that
// reaches the bottom with the supplies the hiker can gather on the way.
//
// Each step below the summit costs one food. At every rest stop the hiker
// first picks up its supplies and then clears its obstacles: fallen trees cost
// axes, rivers cost rafts. A branch ends silently when an obstacle cannot be
// paid, when food is exactly zero at a stop that still has trails below it, or
// when a leaf is reached above the deepest level of the mountain (a cliff).
package hike

import (
	"slices"

	"github.com/cybrota/mountainhike/mountain"
)

// Stats counts what happened during a search.
type Stats struct {
	Visited  int // rest stops entered
	Blocked  int // branches ended by an obstacle
	Starved  int // branches ended by running out of food
	Cliffs   int // leaves above the bottom of the mountain
	Reported int // complete paths handed to the reporter
}

type searcher struct {
	root  *mountain.Node
	path  []string
	rep   Reporter
	stats Stats
}

// Search reports every path from the summit to the bottom of the mountain
// that start can complete. Paths are reported left branch first.
func Search(tree *mountain.Tree, start Traveler, rep Reporter) {
	SearchWithStats(tree, start, rep)
}

// SearchWithStats is Search that also returns counters for the walk.
func SearchWithStats(tree *mountain.Tree, start Traveler, rep Reporter) Stats {
	root := tree.Root()
	if root == nil {
		return Stats{}
	}

	s := &searcher{
		root: root,
		path: make([]string, 0, root.Height()+1),
		rep:  rep,
	}
	hiker := start
	s.visit(root, &hiker)
	return s.stats
}

func (s *searcher) visit(node *mountain.Node, hiker *Traveler) {
	s.stats.Visited++

	// Walking to any stop below the summit costs a day of food. Food may drop
	// below zero here; only an exact zero stops descent further down.
	if node != s.root {
		hiker.Food--
	}

	stop := node.Record()
	hiker.Food += stop.Food()
	hiker.Raft += stop.Raft()
	hiker.Axe += stop.Axe()

	if need := stop.FallenTree(); need > 0 {
		if hiker.Axe < need {
			s.stats.Blocked++
			return
		}
		hiker.Axe -= need
	}
	if need := stop.River(); need > 0 {
		if hiker.Raft < need {
			s.stats.Blocked++
			return
		}
		hiker.Raft -= need
	}

	s.path = append(s.path, stop.Label())
	defer func() { s.path = s.path[:len(s.path)-1] }()

	if node.IsLeaf() {
		if len(s.path) == s.root.Height()+1 {
			s.stats.Reported++
			s.rep.Report(slices.Clone(s.path))
		} else {
			s.stats.Cliffs++
		}
		return
	}

	if hiker.Food == 0 {
		s.stats.Starved++
		return
	}

	other := *hiker
	if left := node.Left(); left != nil {
		s.visit(left, hiker)
	}
	if right := node.Right(); right != nil {
		s.visit(right, &other)
	}
}
