// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Record - one listing
type Record struct {
	Title          string    `json:"title"`
	Department     string    `json:"department"`
	City           string    `json:"city"`
	PropertyType   string    `json:"property_type"`
	Location       orb.Point `json:"location"` // longitude, latitude
	SurfaceTotal   float64   `json:"surface_total"`
	SurfaceCovered float64   `json:"surface_covered"`
	Bedrooms       int       `json:"bedrooms"`
	Bathrooms      int       `json:"bathrooms"`
	OperationType  string    `json:"operation_type"`
	Price          float64   `json:"price"`
}

// Latitude - north/south coordinate
func (r Record) Latitude() float64 {
	return r.Location.Lat()
}

// Longitude - east/west coordinate
func (r Record) Longitude() float64 {
	return r.Location.Lon()
}

// PrimaryKey - price per unit of total surface
//
// a zero surface gives an infinite or NaN key, so records must be
// validated before they are ranked
func (r Record) PrimaryKey() float64 {
	return r.Price / r.SurfaceTotal
}

// SecondaryKey - half weight each for bedrooms and bathrooms
func (r Record) SecondaryKey() float64 {
	return float64(r.Bedrooms)*0.5 + float64(r.Bathrooms)*0.5
}

// String - short description for printing
func (r Record) String() string {
	return fmt.Sprintf("%s (%s, %s) %.2f/%.2f", r.Title, r.City, r.Department, r.PrimaryKey(), r.SecondaryKey())
}
