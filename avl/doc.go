// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of listing records ordered by
// their derived (primary, secondary) ranking keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Rotations relink several nodes and must not be
//       interleaved.
//
// Each node keeps its own height (an empty sub-tree has height zero
// and a leaf height one) and all mutations are recursive, returning
// the possibly new sub-tree root for the caller to relink.  Nodes
// have no parent pointers.
//
// Records with equal keys are all kept.  When primary keys tie on
// insert the TieBreak policy chooses the side; delete always compares
// secondary against secondary.  The Literal policy reproduces the
// historic ranking, which compares the new secondary key against the
// existing primary key, and can leave a tied record where delete will
// not find it.  Symmetric compares secondary keys on both paths.
package avl
