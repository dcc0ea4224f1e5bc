// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package loader - read listing records from a CSV table
//
// The first row names the columns; the required columns may appear in
// any order and any others are ignored.  Each row is validated and an
// invalid row is logged and skipped without stopping the load.
package loader
