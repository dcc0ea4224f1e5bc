// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package layout - place the nodes of a tree on a plane for display
//
// Layout only reads the tree.  The root is at the origin on level one,
// each level is Spacing.Y lower and a child is offset horizontally by
// Spacing.X * 2^(5-level) from its parent, so the spread halves at
// every level.
package layout

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/bitmark-inc/listingd/avl"
	"github.com/bitmark-inc/listingd/fault"
)

// Spacing - distance units between nodes
type Spacing struct {
	X float64 `gluamapper:"x_spacing" json:"x_spacing"`
	Y float64 `gluamapper:"y_spacing" json:"y_spacing"`
}

// DefaultSpacing - unit spacing
var DefaultSpacing = Spacing{X: 1, Y: 1}

// Placement - one positioned node
type Placement struct {
	Point  orb.Point // X, Y
	Key    avl.Key
	Title  string
	Level  int // root is 1
	Parent int // index of the parent placement, -1 for the root
}

// Valid - both spacings must be positive
func (s Spacing) Valid() error {
	if !(s.X > 0) || !(s.Y > 0) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
		return fault.ErrInvalidSpacing
	}
	return nil
}

// Compute - positions of every node below root in pre-order
func Compute(root *avl.Node, spacing Spacing) []Placement {
	placements := []Placement{}
	place(root, orb.Point{0, 0}, 1, -1, spacing, &placements)
	return placements
}

func place(p *avl.Node, at orb.Point, level int, parent int, spacing Spacing, placements *[]Placement) {
	if nil == p {
		return
	}
	index := len(*placements)
	*placements = append(*placements, Placement{
		Point:  at,
		Key:    p.Key(),
		Title:  p.Record().Title,
		Level:  level,
		Parent: parent,
	})

	dx := spacing.X * math.Pow(2, float64(5-level))
	y := at.Y() - spacing.Y
	place(p.Left(), orb.Point{at.X() - dx, y}, level+1, index, spacing, placements)
	place(p.Right(), orb.Point{at.X() + dx, y}, level+1, index, spacing, placements)
}

// Bound - smallest box containing every placement
func Bound(placements []Placement) orb.Bound {
	if 0 == len(placements) {
		return orb.Bound{}
	}
	mp := make(orb.MultiPoint, len(placements))
	for i, p := range placements {
		mp[i] = p.Point
	}
	return mp.Bound()
}
