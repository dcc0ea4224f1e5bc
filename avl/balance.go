// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, zero if absent
func height(p *Node) int {
	if nil == p {
		return 0
	}
	return p.height
}

// recompute a node's height from its children
func updateHeight(p *Node) {
	lh := height(p.left)
	rh := height(p.right)
	if lh > rh {
		p.height = 1 + lh
	} else {
		p.height = 1 + rh
	}
}

// height(left) - height(right), zero if absent
func balanceFactor(p *Node) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// restore the balance of a node whose sub-trees changed by at most
// one level, returns the new sub-tree root
func (tree *Tree) rebalance(p *Node) *Node {
	updateHeight(p)

	bf := balanceFactor(p)
	switch {
	case bf > 1 && balanceFactor(p.left) >= 0:
		// single LL rotation
		return tree.rotateRight(p)

	case bf < -1 && balanceFactor(p.right) <= 0:
		// single RR rotation
		return tree.rotateLeft(p)

	case bf > 1:
		// double LR rotation
		p.left = tree.rotateLeft(p.left)
		return tree.rotateRight(p)

	case bf < -1:
		// double RL rotation
		p.right = tree.rotateRight(p.right)
		return tree.rotateLeft(p)
	}
	return p
}

// z's left child becomes the sub-tree root
func (tree *Tree) rotateRight(z *Node) *Node {
	y := z.left
	z.left = y.right
	y.right = z

	// z is now below y
	updateHeight(z)
	updateHeight(y)

	tree.rotations.Right += 1
	return y
}

// z's right child becomes the sub-tree root
func (tree *Tree) rotateLeft(z *Node) *Node {
	y := z.right
	z.right = y.left
	y.left = z

	// z is now below y
	updateHeight(z)
	updateHeight(y)

	tree.rotations.Left += 1
	return y
}
