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

// Package mountain stores rest stops in an AVL-balanced binary search tree
// ordered by label. The tree is the mountain a hiker walks down: the root is
// the summit and the deepest leaves are the bottom.
//
// Heights are computed from present children only: a leaf is 0 and any other
// node is one more than its tallest child. The balance factor is right minus
// left; when one child is missing the node's own height stands in for the
// difference, so a childless node is 0 and a node with a lone left child of
// height h is -(h+1).
package mountain
