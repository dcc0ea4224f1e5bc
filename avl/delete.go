// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - removes one record with exactly this key from the tree
//
// returns false, leaving the tree untouched, if no such key is found
func (tree *Tree) Delete(primary float64, secondary float64) bool {
	removed := false
	tree.root = tree.delete(Key{Primary: primary, Secondary: secondary}, tree.root, &removed)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine
func (tree *Tree) delete(key Key, p *Node, removed *bool) *Node {
	if nil == p { // key not in tree
		return nil
	}

	switch {
	case p.key == key: // found: delete p
		*removed = true

		if nil == p.left {
			q := p.right
			freeNode(p)
			return q
		}
		if nil == p.right {
			q := p.left
			freeNode(p)
			return q
		}

		// two children: the predecessor's payload replaces this
		// node's, then the predecessor node is removed
		r := p.left.last()
		p.record = r.record
		p.key = r.key
		p.left = tree.deleteLast(p.left)

	case p.key.Primary > key.Primary || (p.key.Primary == key.Primary && p.key.Secondary > key.Secondary):
		p.left = tree.delete(key, p.left, removed)
		if !*removed {
			return p
		}

	default:
		p.right = tree.delete(key, p.right, removed)
		if !*removed {
			return p
		}
	}

	return tree.rebalance(p)
}

// delete: remove the rightmost node of a sub-tree
func (tree *Tree) deleteLast(p *Node) *Node {
	if nil == p.right {
		q := p.left
		freeNode(p)
		return q
	}
	p.right = tree.deleteLast(p.right)
	return tree.rebalance(p)
}
