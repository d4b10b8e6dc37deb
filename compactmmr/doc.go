// Package compactmmr implements a stateless, compact representation of a
// Merkle Mountain Range over a contiguous half-open interval of leaf
// positions [start, end). It stores only the peaks of the subtrees needed
// to compute the interval's root, append a leaf in amortized O(1) combiner
// calls, and merge two adjacent intervals in O(log n) combiner calls. The
// full tree is never materialized.
//
// # Why peaks, not nodes
//
// A classic MMR backed by a flat, append-only node store (leaves and
// interior nodes interleaved in post-order) needs that store to answer any
// question about the tree, because interior node positions are derived from
// the total node count. This package takes the complementary approach used
// by compact-range accumulators: an MMR value carries nothing but
// (start, end, peaks), and all position arithmetic is phrased directly in
// terms of the leaf interval via the rangearith package, so a value can be
// handed around, merged, or rooted without ever touching a backing store.
//
// # Peak ordering
//
// After any operation, peaks is ordered so indices [0, nL) hold the
// "left-of-gap" peaks in ascending subtree size and the remainder hold the
// ordinary MMR peaks in descending subtree size, where nL is
// popcount(left) from rangearith.Decompose(start, end). Root and Append
// exploit this ordering directly; see root.go and append.go.
package compactmmr
