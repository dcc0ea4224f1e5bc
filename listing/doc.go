// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - a real-estate listing record and its ranking keys
//
// The primary key is the price per unit of total surface and the
// secondary key is the mean of bedrooms and bathrooms.  Neither is
// stored in the record, both are derived on demand.
//
// Validation belongs to whoever builds a record (a loader or an
// interactive prompt); the key functions assume a record that has
// already passed Validate.
package listing
