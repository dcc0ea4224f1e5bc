// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/bitmark-inc/listingd/listing"
)

// Node - a node in the tree
type Node struct {
	left   *Node          // left sub-tree
	right  *Node          // right sub-tree
	record listing.Record // payload
	key    Key            // cached keys of the payload
	height int            // 1 for a leaf
}

// global data for allocator
var m sync.Mutex   // to keep values in sync
var pool *Node     // linked list of reclaimed nodes
var totalNodes int // total nodes created
var freeNodes int  // number of nodes in the pool

// allocate a new leaf, reuses reclaimed nodes if any are available
func newNode(record listing.Record, key Key) *Node {
	m.Lock()
	if nil == pool {
		if 0 != freeNodes {
			panic("pool corrupt")
		}
		totalNodes += 1
		m.Unlock()
		return &Node{
			record: record,
			key:    key,
			height: 1,
		}
	}
	p := pool
	pool = p.left
	p.record = record
	p.key = key
	p.height = 1
	p.left = nil // ensure freelist pointer is cleared
	p.right = nil
	freeNodes -= 1
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.left = pool // use as free list pointer

	node.right = nil
	node.record = listing.Record{}
	node.key = Key{}
	node.height = 0
	freeNodes += 1

	pool = node
	m.Unlock()
}

// AllocatorStats - nodes ever created and nodes waiting for reuse
func AllocatorStats() (total int, free int) {
	m.Lock()
	defer m.Unlock()
	return totalNodes, freeNodes
}
