// deque is a package that provides the default storage middleware backing a
// consumed queue: a growable ring buffer with O(1) PushBack and PopFront.
package deque

import (
	"github.com/SebastienArnold/ToolBox/internal/contract"
)

// minCapacity is the smallest buffer the ring allocates.  Kept a power of two
// so index wrapping is a single mask.
const minCapacity = 16

// Deque is a generic first-in-first-out collection over a ring buffer.  The
// buffer doubles when full and halves again once occupancy drops to a
// quarter, so a queue that spiked does not pin its peak allocation forever.
//
// A Deque is NOT safe for concurrent use.  The consumed queue serialises
// every call under its own mutex, which must also cover its
// check-then-claim sequences; an internal lock here could not provide that.
type Deque[T any] struct {
	buf   []T
	head  int
	tail  int
	count int
}

// Ensure Deque implements Container
var _ contract.Container[any] = (*Deque[any])(nil)

// New returns a pointer to a new empty Deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// PushBack appends element at the tail of the deque.
func (d *Deque[T]) PushBack(element T) {
	d.grow()
	d.buf[d.tail] = element
	d.tail = d.next(d.tail)
	d.count++
}

// PopFront removes the head element of the deque and returns it.
// The second return value is false when the deque is empty.  The vacated
// slot is zeroed so the deque holds no residual reference to an element
// once ownership has moved to the caller.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.count == 0 {
		return zero, false
	}
	element := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = d.next(d.head)
	d.count--
	d.shrink()
	return element, true
}

// Len returns the number of elements currently held.
func (d *Deque[T]) Len() int {
	return d.count
}

func (d *Deque[T]) next(i int) int {
	return (i + 1) & (len(d.buf) - 1)
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	if len(d.buf) == 0 {
		d.buf = make([]T, minCapacity)
		return
	}
	d.resize(len(d.buf) << 1)
}

func (d *Deque[T]) shrink() {
	if len(d.buf) > minCapacity && d.count<<2 <= len(d.buf) {
		d.resize(len(d.buf) >> 1)
	}
}

func (d *Deque[T]) resize(capacity int) {
	buf := make([]T, capacity)
	if d.head < d.tail {
		copy(buf, d.buf[d.head:d.tail])
	} else if d.count > 0 {
		n := copy(buf, d.buf[d.head:])
		copy(buf[n:], d.buf[:d.tail])
	}
	d.buf = buf
	d.head = 0
	d.tail = d.count
}
