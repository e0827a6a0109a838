// Copyright 2012 Thomas Oberndörfer. All rights reserved.
// Copyright 2012 Johannes Ebke. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iitii implements an implicit interval tree (IIT) and its
// interpolation-index extension (IITII): in-memory indexes over items
// carrying a half-open position range [beg, end) that answer
// overlap/stabbing queries.
//
// Both variants lay their nodes out in a single sorted array; parent
// and child identity are computed from array rank by bit arithmetic
// rather than stored as pointers. IITII adds a per-domain linear
// model that predicts which leaf to start a query from, letting
// queries on large indexes skip the top-down descent from the root.
//
// An index is built once from a Builder and is immutable and safe for
// concurrent read-only queries thereafter.
package iitii
