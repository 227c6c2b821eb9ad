package vgmcore

import "sync/atomic"

// ResourceTracker enforces the global budgets declared by a ParserConfig
// across a single parse. It is a per-parse value (never a package-level
// global — spec.md §5 is explicit that a shared tracker would needlessly
// serialize independent concurrent parses), constructed fresh by Parse for
// every call and threaded by pointer through the decoders that need it.
type ResourceTracker struct {
	cfg ParserConfig

	allocated      int64
	blockCount     int64
	recursionDepth int64
}

// NewResourceTracker builds a tracker enforcing the given configuration's
// budgets.
func NewResourceTracker(cfg ParserConfig) *ResourceTracker {
	return &ResourceTracker{cfg: cfg}
}

// AllocationGuard scopes one reservation against a ResourceTracker. Callers
// obtain one via ResourceTracker.Reserve and must Release it if the
// operation it guarded ultimately fails, so the tracker returns to its
// pre-call value.
type AllocationGuard struct {
	tracker  *ResourceTracker
	bytes    int64
	released bool
}

// Release returns the reserved bytes to the tracker. It is safe to call
// multiple times; only the first call has an effect.
func (g *AllocationGuard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	atomic.AddInt64(&g.tracker.allocated, -g.bytes)
	atomic.AddInt64(&g.tracker.blockCount, -1)
}

// Commit marks the guard's reservation as permanent; it becomes a no-op on
// Release, since Commit is the caller declaring the allocation is now part
// of the surviving artifact rather than scratch space from a failed path.
func (g *AllocationGuard) Commit() {
	if g == nil {
		return
	}
	g.released = true
}

// Reserve attempts to account for n additional bytes plus one more
// data-block slot. It fails with AllocationLimitExceeded if either the
// byte budget or the block-count budget would be exceeded, and with
// SizeOverflow if n itself is not a sane size (negative, or overflowing the
// configured maximum single-block size).
func (t *ResourceTracker) Reserve(n int, offset int64) (*AllocationGuard, error) {
	if n < 0 {
		return nil, newErr(KindSizeOverflow, offset, "negative allocation size %d", n)
	}
	if t.cfg.MaxBlockSize > 0 && n > t.cfg.MaxBlockSize {
		return nil, newErr(KindSizeOverflow, offset, "block size %d exceeds configured maximum %d", n, t.cfg.MaxBlockSize)
	}
	newTotal := atomic.AddInt64(&t.allocated, int64(n))
	if t.cfg.MaxTotalBytes > 0 && newTotal > int64(t.cfg.MaxTotalBytes) {
		atomic.AddInt64(&t.allocated, -int64(n))
		return nil, newErr(KindAllocationLimitExceeded, offset,
			"allocating %d bytes would exceed total budget of %d bytes (already used %d)",
			n, t.cfg.MaxTotalBytes, newTotal-int64(n))
	}
	newBlocks := atomic.AddInt64(&t.blockCount, 1)
	if t.cfg.MaxDataBlocks > 0 && newBlocks > int64(t.cfg.MaxDataBlocks) {
		atomic.AddInt64(&t.allocated, -int64(n))
		atomic.AddInt64(&t.blockCount, -1)
		return nil, newErr(KindAllocationLimitExceeded, offset,
			"data block count %d would exceed configured maximum %d", newBlocks, t.cfg.MaxDataBlocks)
	}
	return &AllocationGuard{tracker: t, bytes: int64(n)}, nil
}

// EnterRecursion increments the tracker's recursion depth (relevant for the
// extra-header's nested sub-structure) and returns a function that must be
// deferred to decrement it again.
func (t *ResourceTracker) EnterRecursion(offset int64) (func(), error) {
	depth := atomic.AddInt64(&t.recursionDepth, 1)
	if t.cfg.MaxRecursionDepth > 0 && depth > int64(t.cfg.MaxRecursionDepth) {
		atomic.AddInt64(&t.recursionDepth, -1)
		return func() {}, newErr(KindRecursionLimitExceeded, offset,
			"recursion depth %d exceeds configured maximum %d", depth, t.cfg.MaxRecursionDepth)
	}
	return func() { atomic.AddInt64(&t.recursionDepth, -1) }, nil
}

// AllocatedBytes reports the tracker's current byte usage, for diagnostics.
func (t *ResourceTracker) AllocatedBytes() int64 { return atomic.LoadInt64(&t.allocated) }

// BlockCount reports the tracker's current data-block count, for diagnostics.
func (t *ResourceTracker) BlockCount() int64 { return atomic.LoadInt64(&t.blockCount) }
