// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entry - build a listing record from answers typed at a
// prompt, checking each field as soon as it is entered
package entry

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/bitmark-inc/listingd/fault"
	"github.com/bitmark-inc/listingd/listing"
)

// Prompter - reads answers from in and writes prompts to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New - create a prompter
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadRecord - prompt for every field of one record
//
// the first invalid answer abandons the record and returns that
// field's InvalidError; io.EOF is returned if input ends before the
// first prompt is answered
func (p *Prompter) ReadRecord() (listing.Record, error) {
	r := listing.Record{}

	texts := []struct {
		prompt string
		value  *string
		err    error
	}{
		{"title", &r.Title, fault.ErrInvalidTitle},
		{"department", &r.Department, fault.ErrInvalidDepartment},
		{"city", &r.City, fault.ErrInvalidCity},
		{"property type", &r.PropertyType, fault.ErrInvalidPropertyType},
	}
	for i, t := range texts {
		s, err := p.ask(t.prompt)
		if io.EOF == err && 0 == i && "" == s {
			return listing.Record{}, io.EOF
		}
		if nil != err && io.EOF != err {
			return listing.Record{}, err
		}
		if err := listing.ValidateText(s, t.err); nil != err {
			return listing.Record{}, err
		}
		*t.value = s
	}

	latitude, err := p.askFloat("latitude", fault.ErrInvalidLatitude)
	if nil != err {
		return listing.Record{}, err
	}
	longitude, err := p.askFloat("longitude", fault.ErrInvalidLongitude)
	if nil != err {
		return listing.Record{}, err
	}
	if err := listing.ValidateLatitude(latitude); nil != err {
		return listing.Record{}, err
	}
	if err := listing.ValidateLongitude(longitude); nil != err {
		return listing.Record{}, err
	}
	r.Location = orb.Point{longitude, latitude}

	r.SurfaceTotal, err = p.askFloat("surface total", fault.ErrInvalidSurfaceTotal)
	if nil != err {
		return listing.Record{}, err
	}
	r.SurfaceCovered, err = p.askFloat("surface covered", fault.ErrInvalidSurfaceCovered)
	if nil != err {
		return listing.Record{}, err
	}
	if err := listing.ValidateSurfaceTotal(r.SurfaceTotal); nil != err {
		return listing.Record{}, err
	}
	if err := listing.ValidateSurfaceCovered(r.SurfaceCovered, r.SurfaceTotal); nil != err {
		return listing.Record{}, err
	}

	r.Bedrooms, err = p.askCount("bedrooms", fault.ErrInvalidBedrooms)
	if nil != err {
		return listing.Record{}, err
	}
	r.Bathrooms, err = p.askCount("bathrooms", fault.ErrInvalidBathrooms)
	if nil != err {
		return listing.Record{}, err
	}

	r.OperationType, err = p.ask("operation type")
	if nil != err && io.EOF != err {
		return listing.Record{}, err
	}
	if err := listing.ValidateText(r.OperationType, fault.ErrInvalidOperationType); nil != err {
		return listing.Record{}, err
	}

	r.Price, err = p.askFloat("price", fault.ErrInvalidPrice)
	if nil != err {
		return listing.Record{}, err
	}
	if err := listing.ValidatePrice(r.Price); nil != err {
		return listing.Record{}, err
	}

	return r, nil
}

// prompt and read one trimmed line
//
// a final line without a newline is returned together with io.EOF
func (p *Prompter) ask(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)
	line, err := p.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (p *Prompter) askFloat(prompt string, failure error) (float64, error) {
	s, err := p.ask(prompt)
	if nil != err && io.EOF != err {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if nil != err || math.IsNaN(f) {
		return 0, failure
	}
	return f, nil
}

func (p *Prompter) askCount(prompt string, failure error) (int, error) {
	s, err := p.ask(prompt)
	if nil != err && io.EOF != err {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if nil != err {
		return 0, failure
	}
	if err := listing.ValidateRooms(n, failure); nil != err {
		return 0, err
	}
	return n, nil
}
