// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/listingd/fault"
)

// Check - verify heights, balance, primary key order and count
func (tree *Tree) Check() error {
	n := 0
	if _, err := check(tree.root, &n); nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	var previous *Node
	ordered := true
	tree.InOrder(func(p *Node) bool {
		if nil != previous && previous.key.Primary > p.key.Primary {
			ordered = false
			return false
		}
		previous = p
		return true
	})
	if !ordered {
		return fault.ErrOutOfOrder
	}
	return nil
}

// internal: consistency checker, returns the actual height
func check(p *Node, n *int) (int, error) {
	if nil == p {
		return 0, nil
	}
	*n += 1

	lh, err := check(p.left, n)
	if nil != err {
		return 0, err
	}
	rh, err := check(p.right, n)
	if nil != err {
		return 0, err
	}

	h := 1 + rh
	if lh > rh {
		h = 1 + lh
	}
	if h != p.height {
		return 0, fault.ErrHeightMismatch
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fault.ErrUnbalanced
	}
	return h, nil
}
