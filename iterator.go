package gostack

// Iterator is a forward-only cursor over one stack's nodes, front to
// back. It observes the pool without owning it, never mutating node
// linkage. Iterators are plain data, copy them freely, but do not
// Pop or FreeStack the nodes under a live iterator.
type Iterator[T any] struct {
	pool  *Pool[T]
	index Index
}

// Begin return an iterator positioned on the head of the stack headed
// by x, immediately exhausted when x is the sentinel.
func (pool *Pool[T]) Begin(x Index) Iterator[T] {
	return Iterator[T]{pool: pool, index: x}
}

// End return the exhausted iterator, every traversal terminates equal
// to it.
func (pool *Pool[T]) End() Iterator[T] {
	return Iterator[T]{pool: pool, index: Sentinel}
}

// Done return whether the iterator has walked past the last node.
func (iter *Iterator[T]) Done() bool {
	return iter.index == Sentinel
}

// Index return the index the iterator is currently positioned on,
// sentinel when exhausted.
func (iter *Iterator[T]) Index() Index {
	return iter.index
}

// Value return the value under the cursor. Fails with
// ErrorInvalidIndex on an exhausted iterator.
func (iter *Iterator[T]) Value() (T, error) {
	return iter.pool.Value(iter.index)
}

// SetValue overwrite the value under the cursor in place.
func (iter *Iterator[T]) SetValue(value T) error {
	return iter.pool.SetValue(iter.index, value)
}

// Advance move the cursor to the next node of the stack. Fails with
// ErrorInvalidIndex on an exhausted iterator.
func (iter *Iterator[T]) Advance() error {
	next, err := iter.pool.Next(iter.index)
	if err != nil {
		return err
	}
	iter.index = next
	return nil
}

// Equal report whether two iterators sit on the same index. Only the
// index is compared, two exhausted iterators always compare equal,
// even across pools.
func (iter Iterator[T]) Equal(other Iterator[T]) bool {
	return iter.index == other.index
}

// Each apply callb to every value of the stack headed by x, front to
// back, stopping early when callb returns false. Read-only
// counterpart to Begin for callers that do not need a cursor.
func (pool *Pool[T]) Each(x Index, callb func(value T) bool) error {
	for x != Sentinel {
		if err := pool.validindex(x); err != nil {
			return err
		}
		nd := &pool.nodes[x-1]
		if callb != nil && callb(nd.value) == false {
			return nil
		}
		x = nd.next
	}
	return nil
}
