// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/listingd/fault"
)

// TieBreak - chooses a side on insert when primary keys are equal
type TieBreak interface {
	// true to descend into the left sub-tree of current
	Left(candidate Key, current Key) bool
	String() string
}

// Literal - new secondary key against the current primary key
type Literal struct{}

// Left - candidate.Secondary < current.Primary
func (Literal) Left(candidate Key, current Key) bool {
	return candidate.Secondary < current.Primary
}

func (Literal) String() string {
	return "literal"
}

// Symmetric - secondary key against secondary key, consistent with delete
type Symmetric struct{}

// Left - candidate.Secondary < current.Secondary
func (Symmetric) Left(candidate Key, current Key) bool {
	return candidate.Secondary < current.Secondary
}

func (Symmetric) String() string {
	return "symmetric"
}

// ParseTieBreak - select a policy by name
func ParseTieBreak(name string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "literal":
		return Literal{}, nil
	case "symmetric":
		return Symmetric{}, nil
	default:
		return nil, fault.ErrInvalidTieBreak
	}
}
