// SPDX-License-Identifier: MIT

// Package builder builds reproducible pedestrian test maps from a textual
// layout and way/node tag tables.
//
// A layout is an ASCII drawing in which every letter or digit is a node and
// everything else ('-', '|', spaces) is decoration:
//
//	A---B---C
//	    |
//	    D
//
// Columns are GridSize meters apart eastwards, rows GridSize meters apart
// southwards, starting at Origin. Ways are named by the nodes they pass in
// order ("ABC" passes A, B, C) and become one graph edge per consecutive
// node pair, all sharing the way's tags. Tags follow OpenStreetMap:
//
//	highway=steps|elevator|corridor|footway  edge use
//	conveying=yes                            steps become an escalator
//	indoor=yes                               indoor flag
//	level=<descriptor>                       level set (see package level)
//	level:ref=<label>                        explicit level label
//	name=<name>                              way name (defaults to the key)
//
// and for nodes highway=elevator, entrance=yes, indoor=yes, level=<descriptor>.
//
// Build is a pure function: the same inputs yield the same graph with the
// same edge IDs, and nothing is shared between calls. Unparsable level tags
// are logged and recorded as "no level information" rather than failing.
package builder
