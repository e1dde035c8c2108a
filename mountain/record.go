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

package mountain

import (
	"fmt"
	"strings"
)

// Record is a rest stop on the mountain. It carries the supplies a hiker picks
// up there and the obstacles that must be cleared before moving on.
type Record struct {
	label      string
	food       int
	raft       int
	axe        int
	fallenTree int
	river      int
}

// NewRecord creates a rest stop. Supplies are food, raft and axe; obstacles are
// fallenTree (paid with axes) and river (paid with rafts).
func NewRecord(label string, food, raft, axe, fallenTree, river int) (*Record, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if food < 0 || raft < 0 || axe < 0 || fallenTree < 0 || river < 0 {
		return nil, fmt.Errorf("%w: %q", ErrNegativeCount, label)
	}

	return &Record{
		label:      label,
		food:       food,
		raft:       raft,
		axe:        axe,
		fallenTree: fallenTree,
		river:      river,
	}, nil
}

func (r *Record) Label() string   { return r.label }
func (r *Record) Food() int       { return r.food }
func (r *Record) Raft() int       { return r.raft }
func (r *Record) Axe() int        { return r.axe }
func (r *Record) FallenTree() int { return r.fallenTree }
func (r *Record) River() int      { return r.river }

// Compare orders records by label.
func (r *Record) Compare(other *Record) int {
	return strings.Compare(r.label, other.label)
}

func (r *Record) String() string {
	return r.label
}
