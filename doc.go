// Package gostack supplies a pooled allocator for singly-linked
// stacks, with a limited scope:
//
//   - Types and Functions exported by this package are not thread safe.
//   - All nodes of all stacks live in a single growable backing array
//     owned by the pool, and are referred to by integer index, never
//     by address.
//   - Index zero is reserved as sentinel, meaning empty-stack,
//     end-of-free-list and end-of-iteration.
//   - Nodes popped from a stack are recycled through a free list
//     threaded through the same storage; memory is not given back
//     until the pool is Released.
//
// A pool hosts any number of independent stacks simultaneously. A
// stack is nothing more than the index of its head node, zero for the
// empty stack. Callers thread handles through Push and Pop:
//
//	pool := gostack.New[int64]("frontier", nil)
//	head := pool.NewStack()
//	head, _ = pool.Push(10, head)
//	head, _ = pool.Push(20, head)
//	for iter := pool.Begin(head); !iter.Done(); iter.Advance() {
//		value, _ := iter.Value()
//		...
//	}
//	head, _ = pool.FreeStack(head)
//
// Backing storage may relocate when the pool grows, hence indices,
// and not pointers, are the only stable handle into the pool.
package gostack
