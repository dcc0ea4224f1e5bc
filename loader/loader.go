// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package loader

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/paulmach/orb"

	"github.com/bitmark-inc/listingd/avl"
	"github.com/bitmark-inc/listingd/fault"
	"github.com/bitmark-inc/listingd/listing"
)

// column names
const (
	columnTitle          = "title"
	columnDepartment     = "department"
	columnCity           = "city"
	columnPropertyType   = "property_type"
	columnLatitude       = "latitude"
	columnLongitude      = "longitude"
	columnSurfaceTotal   = "surface_total"
	columnSurfaceCovered = "surface_covered"
	columnBedrooms       = "bedrooms"
	columnBathrooms      = "bathrooms"
	columnOperationType  = "operation_type"
	columnPrice          = "price"
)

var requiredColumns = []string{
	columnTitle,
	columnDepartment,
	columnCity,
	columnPropertyType,
	columnLatitude,
	columnLongitude,
	columnSurfaceTotal,
	columnSurfaceCovered,
	columnBedrooms,
	columnBathrooms,
	columnOperationType,
	columnPrice,
}

// Summary - counts from one load
type Summary struct {
	Rows     int // data rows read, excluding the header
	Accepted int
	Rejected int
}

// LoadFile - open a CSV file and load it
func LoadFile(fileName string, log *logger.L) ([]listing.Record, Summary, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, Summary{}, fault.ErrFileNotFound
		}
		return nil, Summary{}, err
	}
	defer f.Close()

	log.Infof("loading: %q", fileName)
	return Load(f, log)
}

// Load - decode all valid records from a CSV stream
//
// only a missing header, a missing column or a read error fails the
// whole load
func Load(r io.Reader, log *logger.L) ([]listing.Record, Summary, error) {
	summary := Summary{}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if io.EOF == err {
		return nil, summary, fault.ErrMissingHeader
	}
	if nil != err {
		return nil, summary, err
	}

	columns, err := indexColumns(header)
	if nil != err {
		return nil, summary, err
	}

	records := make([]listing.Record, 0, 1024)
	for {
		row, err := reader.Read()
		if io.EOF == err {
			break
		}
		if nil != err {
			if _, ok := err.(*csv.ParseError); !ok {
				return records, summary, err
			}
			summary.Rows += 1
			summary.Rejected += 1
			log.Warnf("row %d: %s", summary.Rows, err)
			continue
		}
		summary.Rows += 1

		record, err := decode(row, columns)
		if nil == err {
			err = record.Validate()
		}
		if nil != err {
			summary.Rejected += 1
			log.Warnf("row %d: rejected: %s", summary.Rows, err)
			continue
		}

		summary.Accepted += 1
		records = append(records, record)
	}

	log.Infof("rows: %d  accepted: %d  rejected: %d", summary.Rows, summary.Accepted, summary.Rejected)
	return records, summary, nil
}

// Populate - insert records one at a time, returns the number inserted
func Populate(tree *avl.Tree, records []listing.Record) int {
	for _, r := range records {
		tree.Insert(r)
	}
	return len(records)
}

// map required column names to their positions
func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := columns[name]; !ok {
			columns[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fault.ErrMissingColumn
		}
	}
	return columns, nil
}

// convert one row, numeric failures report the field's own error
func decode(row []string, columns map[string]int) (listing.Record, error) {
	field := func(name string) string {
		i := columns[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	latitude, err := parseFloat(field(columnLatitude), fault.ErrInvalidLatitude)
	if nil != err {
		return listing.Record{}, err
	}
	longitude, err := parseFloat(field(columnLongitude), fault.ErrInvalidLongitude)
	if nil != err {
		return listing.Record{}, err
	}
	surfaceTotal, err := parseFloat(field(columnSurfaceTotal), fault.ErrInvalidSurfaceTotal)
	if nil != err {
		return listing.Record{}, err
	}
	surfaceCovered, err := parseFloat(field(columnSurfaceCovered), fault.ErrInvalidSurfaceCovered)
	if nil != err {
		return listing.Record{}, err
	}
	bedrooms, err := parseCount(field(columnBedrooms), fault.ErrInvalidBedrooms)
	if nil != err {
		return listing.Record{}, err
	}
	bathrooms, err := parseCount(field(columnBathrooms), fault.ErrInvalidBathrooms)
	if nil != err {
		return listing.Record{}, err
	}
	price, err := parseFloat(field(columnPrice), fault.ErrInvalidPrice)
	if nil != err {
		return listing.Record{}, err
	}

	return listing.Record{
		Title:          field(columnTitle),
		Department:     field(columnDepartment),
		City:           field(columnCity),
		PropertyType:   field(columnPropertyType),
		Location:       orb.Point{longitude, latitude},
		SurfaceTotal:   surfaceTotal,
		SurfaceCovered: surfaceCovered,
		Bedrooms:       bedrooms,
		Bathrooms:      bathrooms,
		OperationType:  field(columnOperationType),
		Price:          price,
	}, nil
}

func parseFloat(s string, failure error) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) {
		return 0, failure
	}
	return f, nil
}

// counts may be written as floats, e.g. "3.0", but must be whole
func parseCount(s string, failure error) (int, error) {
	f, err := parseFloat(s, failure)
	if nil != err {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, failure
	}
	return int(f), nil
}
