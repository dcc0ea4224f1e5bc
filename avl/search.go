// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find a node with exactly this key
//
// follows the same path as Delete, so a nil result means Delete
// would be a no-op
func (tree *Tree) Search(primary float64, secondary float64) *Node {
	return search(Key{Primary: primary, Secondary: secondary}, tree.root)
}

func search(key Key, tree *Node) *Node {
	for nil != tree {
		switch {
		case tree.key == key:
			return tree
		case tree.key.Primary > key.Primary || (tree.key.Primary == key.Primary && tree.key.Secondary > key.Secondary):
			tree = tree.left
		default:
			tree = tree.right
		}
	}
	return nil
}
