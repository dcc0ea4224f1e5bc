// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mapview_test

import (
	"bytes"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/listingd/listing"
	"github.com/bitmark-inc/listingd/mapview"
)

func TestWrite(t *testing.T) {
	records := []listing.Record{
		{
			Title:        "Casa en Envigado",
			City:         "Envigado",
			Location:     orb.Point{-75.5916, 6.1759},
			SurfaceTotal: 100,
			Bedrooms:     3,
			Bathrooms:    2,
			Price:        500000000,
		},
		{
			Title:        "Lote",
			City:         "Cali",
			Location:     orb.Point{-76.5225, 3.4516},
			SurfaceTotal: 1000,
			Price:        200000000,
		},
	}

	var buffer bytes.Buffer
	require.NoError(t, mapview.Write(&buffer, records))

	fc, err := geojson.UnmarshalFeatureCollection(buffer.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	f := fc.Features[0]
	assert.Equal(t, orb.Point{-75.5916, 6.1759}, f.Geometry)
	assert.Equal(t, "Casa en Envigado", f.Properties.MustString("title"))
	assert.Equal(t, 5000000.0, f.Properties.MustFloat64("primary_key"))
	assert.Equal(t, 2.5, f.Properties.MustFloat64("secondary_key"))
	assert.Equal(t, 0, f.Properties.MustInt("rank"))

	assert.Equal(t, "Cali", fc.Features[1].Properties.MustString("city"))
	assert.Equal(t, 1, fc.Features[1].Properties.MustInt("rank"))
}

func TestEmpty(t *testing.T) {
	fc := mapview.FeatureCollection(nil)
	assert.Len(t, fc.Features, 0)
}
