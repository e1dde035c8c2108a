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

import "fmt"

// Node holds a single rest stop. A node owns its children exclusively.
type Node struct {
	record *Record
	height int
	left   *Node
	right  *Node
}

func (n *Node) Record() *Record { return n.record }
func (n *Node) Height() int     { return n.height }
func (n *Node) Left() *Node     { return n.left }
func (n *Node) Right() *Node    { return n.right }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Tree is an AVL-balanced binary search tree of rest stops keyed by label.
// It is not safe for concurrent use; build it fully before searching it.
type Tree struct {
	root  *Node
	count int
}

func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil when the tree is empty.
func (tree *Tree) Root() *Node {
	return tree.root
}

// Len returns the number of rest stops in the tree.
func (tree *Tree) Len() int {
	return tree.count
}

// Height returns the height of the root, or -1 for an empty tree.
func (tree *Tree) Height() int {
	if tree.root == nil {
		return -1
	}
	return tree.root.height
}

// updateHeight sets a childless node to 0 and otherwise to one more than the
// tallest present child. A missing child does not count as -1.
func (tree *Tree) updateHeight(node *Node) {
	node.height = childHeight(node)
}

func childHeight(node *Node) int {
	switch {
	case node.left == nil && node.right == nil:
		return 0
	case node.left == nil:
		return node.right.height + 1
	case node.right == nil:
		return node.left.height + 1
	default:
		return 1 + max(node.left.height, node.right.height)
	}
}

// getBalanceFactor is right height minus left height. With one child missing
// the node's own height stands in for the difference, so a childless node is
// 0, a lone right child gives +(h+1) and a lone left child gives -(h+1).
func (tree *Tree) getBalanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	if node.right == nil {
		return -node.height
	}
	if node.left == nil {
		return node.height
	}
	return node.right.height - node.left.height
}

func (tree *Tree) rotateLeft(node *Node) *Node {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

func (tree *Tree) rotateRight(node *Node) *Node {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	tree.updateHeight(node)
	tree.updateHeight(pivot)

	return pivot
}

// Insert adds a rest stop. It returns false and leaves the tree untouched when
// a rest stop with the same label is already present.
func (tree *Tree) Insert(record *Record) (bool, error) {
	if record == nil {
		return false, ErrNilRecord
	}

	root, inserted := tree.insertRecursive(tree.root, record)
	tree.root = root
	if inserted {
		tree.count++
	}
	return inserted, nil
}

func (tree *Tree) insertRecursive(node *Node, record *Record) (*Node, bool) {
	if node == nil {
		return &Node{record: record}, true
	}

	var inserted bool
	switch c := record.Compare(node.record); {
	case c < 0:
		node.left, inserted = tree.insertRecursive(node.left, record)
	case c > 0:
		node.right, inserted = tree.insertRecursive(node.right, record)
	default:
		return node, false
	}

	if !inserted {
		return node, false
	}

	tree.updateHeight(node)
	return tree.rebalance(node), true
}

func (tree *Tree) rebalance(node *Node) *Node {
	switch tree.getBalanceFactor(node) {
	case -2:
		if tree.getBalanceFactor(node.left) > 0 {
			// Left-Right case
			node.left = tree.rotateLeft(node.left)
		}
		return tree.rotateRight(node)
	case 2:
		if tree.getBalanceFactor(node.right) < 0 {
			// Right-Left case
			node.right = tree.rotateRight(node.right)
		}
		return tree.rotateLeft(node)
	}
	return node
}

// Contains reports whether a rest stop with the given label is in the tree.
func (tree *Tree) Contains(label string) bool {
	return searchNode(tree.root, label) != nil
}

// Get returns the rest stop with the given label.
func (tree *Tree) Get(label string) (*Record, bool) {
	node := searchNode(tree.root, label)
	if node == nil {
		return nil, false
	}
	return node.record, true
}

func searchNode(node *Node, label string) *Node {
	for node != nil {
		switch {
		case label < node.record.label:
			node = node.left
		case label > node.record.label:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Labels returns every label in ascending order.
func (tree *Tree) Labels() []string {
	labels := make([]string, 0, tree.count)
	inOrder(tree.root, &labels)
	return labels
}

func inOrder(node *Node, labels *[]string) {
	if node == nil {
		return
	}
	inOrder(node.left, labels)
	*labels = append(*labels, node.record.label)
	inOrder(node.right, labels)
}

// Validate walks the whole tree and checks ordering, stored heights, balance
// and the element count.
func (tree *Tree) Validate() error {
	n, err := tree.validateNode(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: tree holds %d nodes but counts %d", ErrInvariant, n, tree.count)
	}
	return nil
}

func (tree *Tree) validateNode(node *Node, low, high *Record) (int, error) {
	if node == nil {
		return 0, nil
	}
	if low != nil && node.record.Compare(low) <= 0 {
		return 0, fmt.Errorf("%w: %q is not greater than %q", ErrInvariant, node.record.label, low.label)
	}
	if high != nil && node.record.Compare(high) >= 0 {
		return 0, fmt.Errorf("%w: %q is not less than %q", ErrInvariant, node.record.label, high.label)
	}

	left, err := tree.validateNode(node.left, low, node.record)
	if err != nil {
		return 0, err
	}
	right, err := tree.validateNode(node.right, node.record, high)
	if err != nil {
		return 0, err
	}

	if want := childHeight(node); node.height != want {
		return 0, fmt.Errorf("%w: %q has height %d, want %d", ErrInvariant, node.record.label, node.height, want)
	}
	if bf := tree.getBalanceFactor(node); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: %q has balance factor %d", ErrInvariant, node.record.label, bf)
	}

	return left + right + 1, nil
}
