// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/listingd/listing"
)

// Insert - add a record to the tree
//
// records are never merged, an equal key always creates a new node
func (tree *Tree) Insert(record listing.Record) {
	tree.root = tree.insert(record, KeyOf(record), tree.root)
	tree.count += 1
}

// internal routine for insert
func (tree *Tree) insert(record listing.Record, key Key, p *Node) *Node {
	if nil == p { // insert new node
		return newNode(record, key)
	}

	switch {
	case key.Primary < p.key.Primary:
		p.left = tree.insert(record, key, p.left)
	case key.Primary > p.key.Primary:
		p.right = tree.insert(record, key, p.right)
	case tree.tieBreak.Left(key, p.key):
		p.left = tree.insert(record, key, p.left)
	default:
		p.right = tree.insert(record, key, p.right)
	}

	return tree.rebalance(p)
}
