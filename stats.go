package gostack

import "unsafe"

import humanize "github.com/dustin/go-humanize"

// Stats return accounting counters for this pool.
//
// "n_nodes"    number of node slots in use by stacks or the free list.
// "n_free"     number of nodes currently on the free list, O(n_free).
// "n_allocs"   total nodes handed out by Push.
// "n_reuses"   Push calls satisfied from the free list.
// "n_frees"    total nodes recycled by Pop and FreeStack.
// "n_grows"    backing storage relocations, Reserve included.
// "capacity"   allocated node slots.
// "h_freelen"  length summary of stacks recycled by FreeStack.
func (pool *Pool[T]) Stats() map[string]interface{} {
	pool.checkalive()
	nfree, _ := pool.freelen()
	return map[string]interface{}{
		"n_nodes":   int64(len(pool.nodes)),
		"n_free":    nfree,
		"n_allocs":  pool.n_allocs,
		"n_reuses":  pool.n_reuses,
		"n_frees":   pool.n_frees,
		"n_grows":   pool.n_grows,
		"capacity":  int64(cap(pool.nodes)),
		"h_freelen": pool.h_freelen.Stats(),
	}
}

// Info return memory accounting in bytes: capacity allocated from the
// runtime, allocated bytes backing nodes handed to stacks and the
// free list, and the pool's own book-keeping overhead.
func (pool *Pool[T]) Info() (capacity, allocated, overhead int64) {
	pool.checkalive()
	var nd node[T]
	nodesize := int64(unsafe.Sizeof(nd))
	self := int64(unsafe.Sizeof(*pool))
	capacity = int64(cap(pool.nodes)) * nodesize
	allocated = int64(len(pool.nodes)) * nodesize
	return capacity, allocated, self
}

// Utilization return the fraction of allocated node slots holding
// live stack nodes, 0 for a pool that has not grown yet.
func (pool *Pool[T]) Utilization() float64 {
	pool.checkalive()
	if cap(pool.nodes) == 0 {
		return 0
	}
	nfree, _ := pool.freelen()
	live := int64(len(pool.nodes)) - nfree
	return float64(live) / float64(cap(pool.nodes))
}

// Log vital statistics for this pool in human readable form.
func (pool *Pool[T]) Log() {
	stats := pool.Stats()
	fmsg := "%v nodes: %v in-use, %v free, capacity %v\n"
	infof(fmsg, pool.logprefix,
		stats["n_nodes"], stats["n_free"], stats["capacity"])
	capacity, allocated, overhead := pool.Info()
	fmsg = "%v memory: %v allocated out of %v, overhead %v\n"
	infof(fmsg, pool.logprefix,
		humanize.Bytes(uint64(allocated)), humanize.Bytes(uint64(capacity)),
		humanize.Bytes(uint64(overhead)))
	fmsg = "%v counters: %v allocs (%v reused), %v frees, %v grows\n"
	infof(fmsg, pool.logprefix,
		stats["n_allocs"], stats["n_reuses"], stats["n_frees"],
		stats["n_grows"])
	fmsg = "%v freed stacks: %v samples, mean length %v, max %v\n"
	infof(fmsg, pool.logprefix,
		pool.h_freelen.Samples(), pool.h_freelen.Mean(), pool.h_freelen.Max())
}

// Validate walk the free list and cross check it against the pool's
// counters: every free index must be within the allocated range, the
// free list must be acyclic and terminate at the sentinel, and the
// number of live nodes must equal n_allocs - n_frees. Returns
// ErrorCorruption when any of these fail. O(n_free).
func (pool *Pool[T]) Validate() error {
	pool.checkalive()
	nfree, ok := pool.freelen()
	if ok == false {
		return ErrorCorruption
	}
	live := int64(len(pool.nodes)) - nfree
	if live != pool.n_allocs-pool.n_frees {
		errorf("%v live %v, accounted %v\n",
			pool.logprefix, live, pool.n_allocs-pool.n_frees)
		return ErrorCorruption
	}
	return nil
}

//---- local functions

// freelen walk the free list, ok turns false on an out-of-range link
// or a cycle.
func (pool *Pool[T]) freelen() (count int64, ok bool) {
	limit := int64(len(pool.nodes))
	for x := pool.free; x != Sentinel; x = pool.nodes[x-1].next {
		if int64(x) > limit || count >= limit {
			return count, false
		}
		count++
	}
	return count, true
}
