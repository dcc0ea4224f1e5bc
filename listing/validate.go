// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"math"
	"strings"

	"github.com/bitmark-inc/listingd/fault"
)

// Validate - check every field, returning the first failure
//
// fields are checked in the same order as they are prompted for
func (r Record) Validate() error {
	texts := []struct {
		value string
		err   error
	}{
		{r.Title, fault.ErrInvalidTitle},
		{r.Department, fault.ErrInvalidDepartment},
		{r.City, fault.ErrInvalidCity},
		{r.PropertyType, fault.ErrInvalidPropertyType},
	}
	for _, t := range texts {
		if err := ValidateText(t.value, t.err); nil != err {
			return err
		}
	}

	if err := ValidateLatitude(r.Latitude()); nil != err {
		return err
	}
	if err := ValidateLongitude(r.Longitude()); nil != err {
		return err
	}
	if err := ValidateSurfaceTotal(r.SurfaceTotal); nil != err {
		return err
	}
	if err := ValidateSurfaceCovered(r.SurfaceCovered, r.SurfaceTotal); nil != err {
		return err
	}
	if err := ValidateRooms(r.Bedrooms, fault.ErrInvalidBedrooms); nil != err {
		return err
	}
	if err := ValidateRooms(r.Bathrooms, fault.ErrInvalidBathrooms); nil != err {
		return err
	}
	if err := ValidateText(r.OperationType, fault.ErrInvalidOperationType); nil != err {
		return err
	}
	return ValidatePrice(r.Price)
}

// ValidateText - a required string must not be blank
func ValidateText(value string, failure error) error {
	if "" == strings.TrimSpace(value) {
		return failure
	}
	return nil
}

// ValidateLatitude - in the range [-90, 90]
func ValidateLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return fault.ErrInvalidLatitude
	}
	return nil
}

// ValidateLongitude - in the range [-180, 180]
func ValidateLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return fault.ErrInvalidLongitude
	}
	return nil
}

// ValidateSurfaceTotal - strictly positive and finite
func ValidateSurfaceTotal(total float64) error {
	if !isPositive(total) {
		return fault.ErrInvalidSurfaceTotal
	}
	return nil
}

// ValidateSurfaceCovered - strictly positive and not exceeding the total
func ValidateSurfaceCovered(covered float64, total float64) error {
	if !isPositive(covered) || covered > total {
		return fault.ErrInvalidSurfaceCovered
	}
	return nil
}

// ValidateRooms - bedroom or bathroom count cannot be negative
func ValidateRooms(count int, failure error) error {
	if count < 0 {
		return failure
	}
	return nil
}

// ValidatePrice - strictly positive and finite
func ValidatePrice(price float64) error {
	if !isPositive(price) {
		return fault.ErrInvalidPrice
	}
	return nil
}

func isPositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 1)
}
