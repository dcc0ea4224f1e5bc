// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/listingd/listing"
)

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (tree *Node) first() *Node {
	if tree == nil {
		return nil
	}
	for tree.left != nil {
		tree = tree.left
	}
	return tree
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (tree *Node) last() *Node {
	if tree == nil {
		return nil
	}
	for tree.right != nil {
		tree = tree.right
	}
	return tree
}

// InOrder - visit nodes in ascending key order until visit returns false
func (tree *Tree) InOrder(visit func(*Node) bool) {
	inOrder(tree.root, visit)
}

func inOrder(p *Node, visit func(*Node) bool) bool {
	if nil == p {
		return true
	}
	if !inOrder(p.left, visit) {
		return false
	}
	if !visit(p) {
		return false
	}
	return inOrder(p.right, visit)
}

// Iterator - breadth first traversal state
type Iterator struct {
	queue []*Node
}

// LevelOrder - start a breadth first traversal from the root
//
// nodes are queued lazily as they are visited; the tree must not be
// modified while an iterator is in use
func (tree *Tree) LevelOrder() *Iterator {
	it := &Iterator{}
	if nil != tree.root {
		it.queue = append(it.queue, tree.root)
	}
	return it
}

// Next - the next node in level order, nil when done
func (it *Iterator) Next() *Node {
	if 0 == len(it.queue) {
		return nil
	}
	p := it.queue[0]
	it.queue[0] = nil
	it.queue = it.queue[1:]

	if nil != p.left {
		it.queue = append(it.queue, p.left)
	}
	if nil != p.right {
		it.queue = append(it.queue, p.right)
	}
	return p
}

// NextRecord - the next record in level order, false when done
func (it *Iterator) NextRecord() (listing.Record, bool) {
	p := it.Next()
	if nil == p {
		return listing.Record{}, false
	}
	return p.record, true
}

// Records - all records in level order
func (tree *Tree) Records() []listing.Record {
	records := make([]listing.Record, 0, tree.count)
	it := tree.LevelOrder()
	for r, ok := it.NextRecord(); ok; r, ok = it.NextRecord() {
		records = append(records, r)
	}
	return records
}
