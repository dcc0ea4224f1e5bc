// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// listingd - rank real-estate listings in a balanced tree
//
// The listings CSV named in the configuration file is loaded into an
// AVL tree on every run; the tree is never persisted.  Commands then
// display, query or modify that in-memory tree.
package main
