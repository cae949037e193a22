package cache

import (
	"iter"
	"math/bits"
)

// Cache buffers the elements of one traversal of a lazy sequence and serves
// them by index. The zero value is not usable; construct with New.
type Cache[T any] struct {
	buf       []T
	next      func() (T, bool)
	stop      func()
	exhausted bool
	closed    bool
}

// New wraps s. Nothing is pulled until the first query.
func New[T any](s iter.Seq[T]) *Cache[T] {
	next, stop := iter.Pull(s)
	return &Cache[T]{next: next, stop: stop}
}

// FromSlice returns an already exhausted Cache over xs. The slice is not
// cloned and must not be modified afterwards.
func FromSlice[T any](xs []T) *Cache[T] {
	return &Cache[T]{buf: xs, exhausted: true}
}

// Get returns the element at index, pulling from the source until it is
// buffered. ok is false when index is negative or the source ends first.
//
// Complexity: amortized O(1) per element pulled; O(1) for buffered indices.
func (c *Cache[T]) Get(index int) (x T, ok bool) {
	if !c.Has(index) {
		return x, false
	}
	return c.buf[index], true
}

// Has reports whether index is reachable, pulling as needed.
func (c *Cache[T]) Has(index int) bool {
	if index < 0 {
		return false
	}
	// one element of lookahead past index
	c.fill(index + 2)
	return index < len(c.buf)
}

// GetAll resolves every index in indices, which may be unordered or repeat.
// The result is absent if any index is unreachable. The largest index is
// resolved first, so an unreachable batch costs a single scan.
func (c *Cache[T]) GetAll(indices []int) ([]T, bool) {
	if len(indices) == 0 {
		return []T{}, true
	}
	top := 0
	for _, i := range indices {
		if i < 0 {
			return nil, false
		}
		top = max(top, i)
	}
	if !c.Has(top) {
		return nil, false
	}
	out := make([]T, len(indices))
	for k, i := range indices {
		out[k] = c.buf[i]
	}
	return out, true
}

// Select returns the elements at the set bit positions of mask, in ascending
// position order. mask == 0 selects the empty list.
func (c *Cache[T]) Select(mask uint64) ([]T, bool) {
	if mask == 0 {
		return []T{}, true
	}
	if !c.Has(bits.Len64(mask) - 1) {
		return nil, false
	}
	out := make([]T, 0, bits.OnesCount64(mask))
	for i := 0; mask != 0; i++ {
		if mask&1 == 1 {
			out = append(out, c.buf[i])
		}
		mask >>= 1
	}
	return out, true
}

// IsLast reports whether index holds the final element of the source.
// known is false while the source has not been exhausted yet.
func (c *Cache[T]) IsLast(index int) (last, known bool) {
	if !c.exhausted {
		return false, false
	}
	return index == len(c.buf)-1, true
}

// Size is the number of elements pulled so far. It equals the length of the
// source only once Exhausted reports true.
func (c *Cache[T]) Size() int {
	return len(c.buf)
}

// Exhausted reports whether the end of the source has been observed.
func (c *Cache[T]) Exhausted() bool {
	return c.exhausted
}

// Close releases the pull cursor. Buffered elements stay readable; no further
// elements are pulled, and IsLast keeps answering from what was observed.
// Close is idempotent.
func (c *Cache[T]) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	c.closed = true
}

// fill pulls until the buffer holds n elements or the source ends.
func (c *Cache[T]) fill(n int) {
	for !c.exhausted && !c.closed && len(c.buf) < n {
		x, ok := c.next()
		if !ok {
			c.exhausted = true
			c.stop()
			c.stop = nil
			return
		}
		c.buf = append(c.buf, x)
	}
}
