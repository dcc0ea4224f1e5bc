// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package mapview - export listing locations as GeoJSON for display
// on a map
package mapview

import (
	"io"

	"github.com/paulmach/orb/geojson"

	"github.com/bitmark-inc/listingd/listing"
)

// FeatureCollection - one point feature per record, in the given order
func FeatureCollection(records []listing.Record) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i, r := range records {
		feature := geojson.NewFeature(r.Location)
		feature.Properties = geojson.Properties{
			"rank":           i,
			"title":          r.Title,
			"department":     r.Department,
			"city":           r.City,
			"property_type":  r.PropertyType,
			"operation_type": r.OperationType,
			"price":          r.Price,
			"surface_total":  r.SurfaceTotal,
			"bedrooms":       r.Bedrooms,
			"bathrooms":      r.Bathrooms,
			"primary_key":    r.PrimaryKey(),
			"secondary_key":  r.SecondaryKey(),
		}
		fc.Append(feature)
	}
	return fc
}

// Write - encode the records as a GeoJSON feature collection
func Write(w io.Writer, records []listing.Record) error {
	data, err := FeatureCollection(records).MarshalJSON()
	if nil != err {
		return err
	}
	_, err = w.Write(data)
	return err
}
