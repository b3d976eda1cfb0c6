// Functions and methods are not thread safe.

package gostack

import "fmt"

import s "github.com/bnclabs/gosettings"

import "github.com/bnclabs/gostack/lib"

// Index is the handle to a node within a pool, and by extension the
// handle to a stack, a stack being nothing but the index of its head
// node. Index is plain data, copy and pass it by value.
type Index uint32

// Sentinel is the reserved index meaning "no node": the empty stack,
// the end of the free list and the end of an iteration.
const Sentinel Index = 0

// node is one storage slot, a value and the index of the next node.
// The same next field threads live stacks and the free list, a node
// is on exactly one of them at any time.
type node[T any] struct {
	value T
	next  Index
}

// Pool owns the backing storage for any number of independent
// singly-linked stacks. Node indices are 1-based, a node with index x
// lives at storage slot x-1, index zero is the sentinel.
type Pool[T any] struct {
	// 64-bit aligned stats
	n_allocs int64
	n_frees  int64
	n_reuses int64
	n_grows  int64

	nodes []node[T]
	free  Index // head of the free list

	// statistics
	h_freelen lib.Average // length of stacks recycled by FreeStack

	// configuration
	capacity  int64 // maximum number of nodes
	logprefix string
}

// New create a pool for nodes of type T. Settings are documented by
// Defaultsettings(), pass nil to accept every default.
func New[T any](name string, setts s.Settings) *Pool[T] {
	pool := &Pool[T]{}
	pool.logprefix = fmt.Sprintf("STKP [%v]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	pool.capacity = setts.Int64("capacity")
	if pool.capacity <= 0 || pool.capacity > Maxcapacity {
		panicerr("%v invalid capacity %v", pool.logprefix, pool.capacity)
	}
	if prealloc := setts.Int64("prealloc"); prealloc > 0 {
		if err := pool.Reserve(prealloc); err != nil {
			panicerr("%v prealloc %v: %v", pool.logprefix, prealloc, err)
		}
	}
	infof("%v started with capacity %v ...\n", pool.logprefix, pool.capacity)
	return pool
}

//---- operations

// NewStack return the handle to a new, empty stack. Pure, the pool is
// not touched, an empty stack is just the sentinel index.
func (pool *Pool[T]) NewStack() Index {
	return Sentinel
}

// IsEmpty return whether the stack headed by x has no nodes.
func (pool *Pool[T]) IsEmpty(x Index) bool {
	return x == Sentinel
}

// Capacity return the number of node slots currently allocated from
// the runtime, never decreasing over the pool's lifetime.
func (pool *Pool[T]) Capacity() int64 {
	pool.checkalive()
	return int64(cap(pool.nodes))
}

// Reserve ensure backing storage for at least n nodes without further
// relocation. Never shrinks. Fails with ErrorOutofMemory if n exceeds
// the configured capacity.
func (pool *Pool[T]) Reserve(n int64) error {
	pool.checkalive()
	if n > pool.capacity {
		return ErrorOutofMemory
	} else if int64(cap(pool.nodes)) >= n {
		return nil
	}
	nodes := make([]node[T], len(pool.nodes), n)
	copy(nodes, pool.nodes)
	pool.nodes = nodes
	pool.n_grows++
	debugf("%v reserved %v slots\n", pool.logprefix, n)
	return nil
}

// Push prepend a new node holding val in front of the stack headed by
// head, and return the new head. The node comes from the free list
// when one is available, otherwise backing storage grows by one slot,
// amortized O(1). Growth may relocate storage, indices stay stable.
func (pool *Pool[T]) Push(val T, head Index) (Index, error) {
	pool.checkalive()
	if head != Sentinel {
		if err := pool.validindex(head); err != nil {
			return head, err
		}
	}
	if pool.free == Sentinel { // grow
		if int64(len(pool.nodes)) >= pool.capacity {
			return head, ErrorOutofMemory
		}
		if len(pool.nodes) == cap(pool.nodes) {
			pool.n_grows++
			debugf("%v growing beyond %v slots\n", pool.logprefix, cap(pool.nodes))
		}
		pool.nodes = append(pool.nodes, node[T]{value: val, next: head})
		pool.n_allocs++
		return Index(len(pool.nodes)), nil
	}
	// recycle the head of the free list.
	x := pool.free
	pool.free = pool.nodes[x-1].next
	pool.nodes[x-1] = node[T]{value: val, next: head}
	pool.n_allocs++
	pool.n_reuses++
	return x, nil
}

// Pop detach the head node of the stack headed by head, prepend it to
// the free list and return the former head's next index as the new
// head. Fails with ErrorEmptyStack when head is the sentinel.
func (pool *Pool[T]) Pop(head Index) (Index, error) {
	if head == Sentinel {
		return Sentinel, ErrorEmptyStack
	} else if err := pool.validindex(head); err != nil {
		return head, err
	}
	next := pool.nodes[head-1].next
	pool.nodes[head-1].next = pool.free
	pool.free = head
	pool.n_frees++
	return next, nil
}

// FreeStack recycle every node of the stack headed by head into the
// free list and return the sentinel. Single pass over the stack, the
// whole chain is spliced onto the free list at once. Freeing an
// already empty stack is a no-op.
func (pool *Pool[T]) FreeStack(head Index) (Index, error) {
	if head == Sentinel {
		return Sentinel, nil
	} else if err := pool.validindex(head); err != nil {
		return head, err
	}
	// walk to the tail, then splice the chain in front of free.
	tail, count := head, int64(1)
	for {
		next := pool.nodes[tail-1].next
		if next == Sentinel {
			break
		} else if err := pool.validindex(next); err != nil {
			return head, err
		}
		tail, count = next, count+1
	}
	pool.nodes[tail-1].next = pool.free
	pool.free = head
	pool.n_frees += count
	pool.h_freelen.Add(count)
	return Sentinel, nil
}

//---- accessors

// Value return the value stored at index x. Fails with
// ErrorInvalidIndex for the sentinel or an out-of-range index. The
// pool does not track which indices are live, reading a free-listed
// index returns its stale value.
func (pool *Pool[T]) Value(x Index) (value T, err error) {
	if err = pool.validindex(x); err != nil {
		return
	}
	return pool.nodes[x-1].value, nil
}

// SetValue overwrite the value stored at index x.
func (pool *Pool[T]) SetValue(x Index, value T) error {
	if err := pool.validindex(x); err != nil {
		return err
	}
	pool.nodes[x-1].value = value
	return nil
}

// Next return the index of the node following x, sentinel at the end
// of the stack.
func (pool *Pool[T]) Next(x Index) (Index, error) {
	if err := pool.validindex(x); err != nil {
		return Sentinel, err
	}
	return pool.nodes[x-1].next, nil
}

// SetNext re-link the node at index x to point at next. Callers that
// splice chains by hand are responsible for keeping every chain
// acyclic and terminated by the sentinel.
func (pool *Pool[T]) SetNext(x Index, next Index) error {
	if err := pool.validindex(x); err != nil {
		return err
	}
	if next != Sentinel {
		if err := pool.validindex(next); err != nil {
			return err
		}
	}
	pool.nodes[x-1].next = next
	return nil
}

// Len walk the stack headed by x and return its number of nodes,
// O(length).
func (pool *Pool[T]) Len(x Index) (int64, error) {
	count := int64(0)
	for x != Sentinel {
		if err := pool.validindex(x); err != nil {
			return count, err
		}
		x, count = pool.nodes[x-1].next, count+1
	}
	return count, nil
}

// Release drop the backing storage, every outstanding handle and
// iterator becomes invalid. Using the pool after Release panics.
func (pool *Pool[T]) Release() {
	pool.nodes, pool.free = nil, Sentinel
	pool.capacity = 0
	infof("%v released\n", pool.logprefix)
}

//---- local functions

func (pool *Pool[T]) validindex(x Index) error {
	pool.checkalive()
	if x == Sentinel || int64(x) > int64(len(pool.nodes)) {
		return ErrorInvalidIndex
	}
	return nil
}

func (pool *Pool[T]) checkalive() {
	if pool.capacity == 0 {
		panicerr("%v released", pool.logprefix)
	}
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
