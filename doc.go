// Package cutpool provides the pool and active-set machinery for a
// branch-and-cut search: a shared, growing collection of generated
// constraints or variables, referenced from per-subproblem active sets
// without ever dereferencing a destroyed object.
//
// Every subproblem of the search tree shares one pool; each holds its
// own active set of staleness-checked handles into it. Deletion is
// advisory, duplicate candidates collapse onto their pooled original,
// and generated-but-unused candidates are evicted at admission so the
// pool stays bounded under constant regeneration.
//
// # Quick Start
//
// One pool for the whole search, one workspace around it:
//
//	p, _ := pool.NewNonDupl[*KnapsackCover](4096)
//	ws, _ := cutpool.New[*KnapsackCover](p)
//	defer ws.Close()
//
// Per LP round, a separator generates into a staging buffer and the
// best cuts move into the subproblem's active set:
//
//	sep := separator.New[*KnapsackCover](p, 100, func(o *separator.Options[*KnapsackCover]) {
//	    o.Watched = p
//	})
//	for !sep.TerminateSeparation() {
//	    c, ok := findCover()
//	    if !ok {
//	        break
//	    }
//	    sep.CutFoundRanked(c, violation(c))
//	}
//	ws.ObserveSeparation(sep.NumGenerated(), sep.NumDuplications())
//	ws.Admit(sep.Buffer(), act, 50)
//
// Per-round cleanup evicts what stayed non-binding and lets the pool
// collect unreferenced objects:
//
//	act.Remove(act.AgedAtLeast(10))
//	ws.GC(ctx)
//
// # Lifetime Model
//
//   - pool.Handle is the only long-lived reference form; reads go
//     through Get and a false result is routine.
//   - Remove and GC are advisory: payloads refuse deletion while
//     referenced or active (see convar.Base).
//   - Close is the single hard-delete path.
//
// # Key Features
//
//   - Slot versioning: no stale dereference, no reference fix-up on delete
//   - Content-hash deduplication across the whole search tree
//   - Rank-ordered staged admission with bounded buffers
//   - Redundant-age bookkeeping for driver-side eviction
//   - Fix/set status tables with contradiction detection
//   - Optional memory budget and GC pacing via resource.Governor
package cutpool
