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

import "strings"

const (
	renderIndent = "   "
	renderBranch = "|--"
	renderEmpty  = "->"
)

// Render returns a preorder dump of the tree, one node per line, indented by
// depth. Missing children are drawn as "->".
func (tree *Tree) Render() string {
	var sb strings.Builder
	renderNode(&sb, tree.root, 0)
	return sb.String()
}

func (tree *Tree) String() string {
	return tree.Render()
}

func renderNode(sb *strings.Builder, node *Node, level int) {
	if level > 0 {
		sb.WriteString(strings.Repeat(renderIndent, level-1))
		sb.WriteString(renderBranch)
	}
	if node == nil {
		sb.WriteString(renderEmpty)
		sb.WriteByte('\n')
		return
	}
	sb.WriteString(node.record.String())
	sb.WriteByte('\n')

	renderNode(sb, node.left, level+1)
	renderNode(sb, node.right, level+1)
}
