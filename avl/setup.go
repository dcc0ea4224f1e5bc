// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/listingd/listing"
)

// Key - the composite ordering key of a record
type Key struct {
	Primary   float64
	Secondary float64
}

// KeyOf - derive the composite key from a record
func KeyOf(record listing.Record) Key {
	return Key{
		Primary:   record.PrimaryKey(),
		Secondary: record.SecondaryKey(),
	}
}

// String - for printing
func (k Key) String() string {
	return fmt.Sprintf("(%g, %g)", k.Primary, k.Secondary)
}

// Stats - number of single rotations performed
//
// a double rotation counts once in each direction
type Stats struct {
	Left  int
	Right int
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root      *Node
	count     int
	tieBreak  TieBreak
	rotations Stats
}

// New - create an initially empty tree
//
// a nil policy selects Literal
func New(policy TieBreak) *Tree {
	if nil == policy {
		policy = Literal{}
	}
	return &Tree{
		root:     nil,
		count:    0,
		tieBreak: policy,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, zero when empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// TieBreak - the policy used for equal primary keys on insert
func (tree *Tree) TieBreak() TieBreak {
	return tree.tieBreak
}

// Rotations - rotation counts since the tree was created
func (tree *Tree) Rotations() Stats {
	return tree.rotations
}

// Record - read the record from a node
func (p *Node) Record() listing.Record {
	return p.record
}

// Key - read the cached composite key from a node
func (p *Node) Key() Key {
	return p.key
}

// Left - left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}

// Height - height of the sub-tree rooted at this node
func (p *Node) Height() int {
	return height(p)
}

// BalanceFactor - height(left) - height(right)
func (p *Node) BalanceFactor() int {
	return balanceFactor(p)
}
