// Package pool implements the shared storage for generated
// constraint-like and variable-like objects in a branch-and-cut search.
//
// A pool owns a growable collection of fixed storage cells (slots). Each
// slot holds at most one payload and carries a version counter that
// increments on every empty-to-occupied transition. References into the
// pool are Handles: a (slot, remembered version) pair whose Get re-checks
// liveness on every call. When a payload is destroyed and its cell later
// reused, all outstanding Handles to the old payload expire automatically;
// nothing walks or fixes up references.
//
// # Storage Layout
//
// Slots live in fixed-size pages, so growing the pool never relocates a
// cell and never invalidates a Handle. Emptied cells go onto a free list
// and are reused before new pages are touched. Occupancy is tracked in a
// bitset so sweeps skip empty cells.
//
// # Deletion
//
// Removal is advisory: a payload is destroyed only if it declares itself
// Deletable. A refusal leaves the slot untouched and is retried by a
// later Sweep. Close hard-deletes everything regardless, which is the
// only forced path.
//
// # Deduplication
//
// NonDuplPool adds a content-hash index over occupied slots. Inserting
// an object equal to a pooled one discards the newcomer and returns a
// Handle to the existing slot, collapsing duplicates generated anywhere
// in the search tree onto one cell.
//
// Pools are not safe for concurrent use. Callers that share a pool
// across goroutines must serialize every mutation externally.
package pool
