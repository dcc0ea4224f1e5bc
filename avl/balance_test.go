// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/listingd/listing"
)

func testRecord(price float64) listing.Record {
	return listing.Record{
		Title:        "test",
		SurfaceTotal: 100,
		Price:        price,
	}
}

func TestRebalanceBalancedNode(t *testing.T) {
	tree := New(Literal{})
	for _, price := range []float64{200, 100, 300} {
		tree.Insert(testRecord(price))
	}

	p := tree.root
	l, r, h := p.left, p.right, p.height
	rotations := tree.rotations

	q := tree.rebalance(p)
	assert.Same(t, p, q, "root changed")
	assert.Same(t, l, q.left, "left changed")
	assert.Same(t, r, q.right, "right changed")
	assert.Equal(t, h, q.height, "height changed")
	assert.Equal(t, rotations, tree.rotations, "rotation performed")
}

func TestRotateHeights(t *testing.T) {
	tree := New(Literal{})
	z := newNode(testRecord(300), Key{Primary: 3})
	y := newNode(testRecord(200), Key{Primary: 2})
	x := newNode(testRecord(100), Key{Primary: 1})
	z.left = y
	y.left = x
	updateHeight(y)
	updateHeight(z)
	assert.Equal(t, 2, balanceFactor(z))

	root := tree.rotateRight(z)
	assert.Same(t, y, root)
	assert.Same(t, x, root.left)
	assert.Same(t, z, root.right)
	assert.Equal(t, 1, z.height)
	assert.Equal(t, 2, y.height)
	assert.Equal(t, Stats{Right: 1}, tree.rotations)

	root = tree.rotateLeft(root)
	assert.Same(t, z, root)
	assert.Same(t, y, root.left)
	assert.Same(t, x, root.left.left)
	assert.Equal(t, 3, z.height)
	assert.Equal(t, 2, y.height)
}

func TestBalanceFactorOfAbsent(t *testing.T) {
	assert.Equal(t, 0, height(nil))
	assert.Equal(t, 0, balanceFactor(nil))
}

func TestAllocatorReuse(t *testing.T) {
	tree := New(Symmetric{})
	tree.Insert(testRecord(100))
	tree.Insert(testRecord(200))

	_, free := AllocatorStats()
	assert.True(t, tree.Delete(2, 0))
	_, afterDelete := AllocatorStats()
	assert.Equal(t, free+1, afterDelete, "deleted node not reclaimed")

	tree.Insert(testRecord(300))
	total, afterInsert := AllocatorStats()
	assert.Equal(t, free, afterInsert, "reclaimed node not reused")
	assert.True(t, total >= 2)

	p := tree.Search(3, 0)
	if assert.NotNil(t, p) {
		assert.Equal(t, 1, p.height)
		assert.Nil(t, p.left)
		assert.Nil(t, p.right)
	}
}
