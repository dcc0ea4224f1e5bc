// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package layout_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/listingd/avl"
	"github.com/bitmark-inc/listingd/fault"
	"github.com/bitmark-inc/listingd/layout"
	"github.com/bitmark-inc/listingd/listing"
)

func tree(keys ...int) *avl.Tree {
	t := avl.New(avl.Symmetric{})
	for _, k := range keys {
		t.Insert(listing.Record{
			Title:        "<listing>",
			SurfaceTotal: 1,
			Price:        float64(k),
		})
	}
	return t
}

func TestCompute(t *testing.T) {
	placements := layout.Compute(tree(1, 2, 3).Root(), layout.Spacing{X: 10, Y: 100})
	require.Len(t, placements, 3)

	// pre-order: root, left, right
	assert.Equal(t, orb.Point{0, 0}, placements[0].Point)
	assert.Equal(t, 2.0, placements[0].Key.Primary)
	assert.Equal(t, -1, placements[0].Parent)
	assert.Equal(t, 1, placements[0].Level)

	assert.Equal(t, orb.Point{-160, -100}, placements[1].Point)
	assert.Equal(t, 1.0, placements[1].Key.Primary)
	assert.Equal(t, 0, placements[1].Parent)
	assert.Equal(t, 2, placements[1].Level)

	assert.Equal(t, orb.Point{160, -100}, placements[2].Point)
	assert.Equal(t, 0, placements[2].Parent)
}

func TestComputeHalvesSpread(t *testing.T) {
	placements := layout.Compute(tree(4, 2, 6, 1, 3, 5, 7).Root(), layout.DefaultSpacing)
	require.Len(t, placements, 7)

	// 4, 2, 1, 3, 6, 5, 7
	assert.Equal(t, orb.Point{-16, -1}, placements[1].Point)
	assert.Equal(t, orb.Point{-24, -2}, placements[2].Point)
	assert.Equal(t, orb.Point{-8, -2}, placements[3].Point)
	assert.Equal(t, orb.Point{16, -1}, placements[4].Point)
	assert.Equal(t, 4, placements[5].Parent)

	bound := layout.Bound(placements)
	assert.Equal(t, orb.Point{-24, -2}, bound.Min)
	assert.Equal(t, orb.Point{24, 0}, bound.Max)
}

func TestComputeEmpty(t *testing.T) {
	placements := layout.Compute(nil, layout.DefaultSpacing)
	assert.Len(t, placements, 0)
	assert.Equal(t, orb.Bound{}, layout.Bound(placements))
}

// layout must not change the tree
func TestComputeReadOnly(t *testing.T) {
	tr := tree(5, 3, 8, 1, 4)
	before := tr.Records()
	_ = layout.Compute(tr.Root(), layout.DefaultSpacing)
	assert.Equal(t, before, tr.Records())
	assert.NoError(t, tr.Check())
}

func TestSpacingValid(t *testing.T) {
	assert.NoError(t, layout.DefaultSpacing.Valid())
	assert.Equal(t, fault.ErrInvalidSpacing, layout.Spacing{X: 0, Y: 1}.Valid())
	assert.Equal(t, fault.ErrInvalidSpacing, layout.Spacing{X: 1, Y: -1}.Valid())
}

func TestWriteSVG(t *testing.T) {
	placements := layout.Compute(tree(1, 2, 3, 4, 5).Root(), layout.DefaultSpacing)

	var buffer bytes.Buffer
	require.NoError(t, layout.WriteSVG(&buffer, placements))
	s := buffer.String()

	assert.True(t, strings.HasPrefix(s, "<svg "))
	assert.True(t, strings.HasSuffix(s, "</svg>\n"))
	assert.Equal(t, 5, strings.Count(s, "<circle "))
	assert.Equal(t, 4, strings.Count(s, "<line "))
	assert.Contains(t, s, "&lt;listing&gt;")
}

func TestWriteSVGSingle(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, layout.WriteSVG(&buffer, layout.Compute(tree(1).Root(), layout.DefaultSpacing)))
	assert.Contains(t, buffer.String(), "cx=\"600.0\" cy=\"40.0\"")
}
