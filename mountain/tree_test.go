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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRecord(t *testing.T, label string) *Record {
	t.Helper()
	r, err := NewRecord(label, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	return r
}

func buildTree(t *testing.T, labels ...string) *Tree {
	t.Helper()
	tree := New()
	for _, label := range labels {
		_, err := tree.Insert(mustRecord(t, label))
		require.NoError(t, err)
	}
	return tree
}

type shape struct {
	root, left, right string
}

func TestRotations(t *testing.T) {
	testCases := []struct {
		Name   string
		Labels []string
	}{
		{Name: "RR", Labels: []string{"A", "B", "C"}},
		{Name: "LL", Labels: []string{"C", "B", "A"}},
		{Name: "LR", Labels: []string{"C", "A", "B"}},
		{Name: "RL", Labels: []string{"A", "C", "B"}},
	}

	want := shape{root: "B", left: "A", right: "C"}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(t, tc.Labels...)
			root := tree.Root()
			require.NotNil(t, root)
			require.NotNil(t, root.Left())
			require.NotNil(t, root.Right())

			got := shape{
				root:  root.Record().Label(),
				left:  root.Left().Record().Label(),
				right: root.Right().Record().Label(),
			}
			require.Equal(t, want, got)
			require.Equal(t, 1, root.Height())
			require.Equal(t, 0, root.Left().Height())
			require.Equal(t, 0, root.Right().Height())
			require.True(t, root.Left().IsLeaf())
			require.True(t, root.Right().IsLeaf())
			require.NoError(t, tree.Validate())
		})
	}
}

func TestInsertOrder(t *testing.T) {
	testCases := []struct {
		Name          string
		Labels        []string
		ExpectedOrder []string
		ExpectedRoot  string
		ExpectedLen   int
	}{
		{
			Name:          "Single",
			Labels:        []string{"summit"},
			ExpectedOrder: []string{"summit"},
			ExpectedRoot:  "summit",
			ExpectedLen:   1,
		},
		{
			Name:          "Ascending",
			Labels:        []string{"a", "b", "c", "d", "e", "f", "g"},
			ExpectedOrder: []string{"a", "b", "c", "d", "e", "f", "g"},
			ExpectedRoot:  "d",
			ExpectedLen:   7,
		},
		{
			Name:          "Descending",
			Labels:        []string{"g", "f", "e", "d", "c", "b", "a"},
			ExpectedOrder: []string{"a", "b", "c", "d", "e", "f", "g"},
			ExpectedRoot:  "d",
			ExpectedLen:   7,
		},
		{
			Name:          "With duplicates",
			Labels:        []string{"m", "f", "m", "t", "f"},
			ExpectedOrder: []string{"f", "m", "t"},
			ExpectedRoot:  "m",
			ExpectedLen:   3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(t, tc.Labels...)
			require.Equal(t, tc.ExpectedOrder, tree.Labels())
			require.Equal(t, tc.ExpectedRoot, tree.Root().Record().Label())
			require.Equal(t, tc.ExpectedLen, tree.Len())
			require.NoError(t, tree.Validate())
		})
	}
}

func TestInsertDuplicate(t *testing.T) {
	tree := buildTree(t, "B", "A", "C")
	before := tree.Render()

	dup, err := NewRecord("A", 5, 5, 5, 0, 0)
	require.NoError(t, err)

	inserted, err := tree.Insert(dup)
	require.NoError(t, err)
	require.False(t, inserted)
	require.Equal(t, 3, tree.Len())
	require.Equal(t, before, tree.Render())

	// The first record is kept; duplicates never update it.
	got, ok := tree.Get("A")
	require.True(t, ok)
	require.Equal(t, 0, got.Food())
}

func TestInsertNil(t *testing.T) {
	tree := buildTree(t, "A")
	inserted, err := tree.Insert(nil)
	require.ErrorIs(t, err, ErrNilRecord)
	require.False(t, inserted)
	require.Equal(t, 1, tree.Len())
}

func TestNewRecord(t *testing.T) {
	_, err := NewRecord("", 1, 0, 0, 0, 0)
	require.ErrorIs(t, err, ErrEmptyLabel)

	_, err = NewRecord("cliff", 0, -1, 0, 0, 0)
	require.ErrorIs(t, err, ErrNegativeCount)

	r, err := NewRecord("camp", 1, 2, 3, 4, 5)
	require.NoError(t, err)
	require.Equal(t, "camp", r.Label())
	require.Equal(t, "camp", r.String())
	require.Equal(t, []int{1, 2, 3, 4, 5}, []int{r.Food(), r.Raft(), r.Axe(), r.FallenTree(), r.River()})
}

func TestRandomInsertsStayBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tree := New()
	seen := make(map[string]bool)

	for i := 0; i < 500; i++ {
		label := string(rune('a'+rng.Intn(26))) + string(rune('a'+rng.Intn(26))) + string(rune('a'+rng.Intn(26)))
		before := tree.Len()

		inserted, err := tree.Insert(mustRecord(t, label))
		require.NoError(t, err)
		require.Equal(t, !seen[label], inserted, "label %q", label)
		seen[label] = true

		if inserted {
			require.Equal(t, before+1, tree.Len())
		} else {
			require.Equal(t, before, tree.Len())
		}
		require.NoError(t, tree.Validate())
	}

	labels := tree.Labels()
	require.Len(t, labels, len(seen))
	require.IsIncreasing(t, labels)
}

func TestValidateDetectsCorruption(t *testing.T) {
	tree := buildTree(t, "A", "B", "C")
	tree.root.height = 4
	require.ErrorIs(t, tree.Validate(), ErrInvariant)

	tree = buildTree(t, "A", "B", "C")
	tree.root.left.record = mustRecord(t, "Z")
	require.ErrorIs(t, tree.Validate(), ErrInvariant)

	tree = buildTree(t, "A", "B", "C")
	tree.count = 2
	require.ErrorIs(t, tree.Validate(), ErrInvariant)
}

func TestContains(t *testing.T) {
	tree := buildTree(t, "D", "B", "F", "A", "C")
	for _, label := range []string{"A", "B", "C", "D", "F"} {
		require.True(t, tree.Contains(label), label)
	}
	require.False(t, tree.Contains("E"))
	require.False(t, New().Contains("A"))
}

func TestEmptyTree(t *testing.T) {
	tree := New()
	require.Nil(t, tree.Root())
	require.Equal(t, 0, tree.Len())
	require.Equal(t, -1, tree.Height())
	require.Empty(t, tree.Labels())
	require.Equal(t, "", tree.Render())
	require.NoError(t, tree.Validate())
}

func TestRender(t *testing.T) {
	tree := buildTree(t, "A", "B", "C")
	want := "B\n" +
		"|--A\n" +
		"   |--->\n" +
		"   |--->\n" +
		"|--C\n" +
		"   |--->\n" +
		"   |--->\n"
	require.Equal(t, want, tree.Render())
	require.Equal(t, want, tree.String())
}
