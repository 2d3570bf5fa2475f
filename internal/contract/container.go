package contract

// Container is the interface for something which can be used as the storage
// middleware for a consumed queue.  This enables swapping the default ring
// buffer for another pending-item collection without touching the consume
// loop.  Implementations are not required to be safe for concurrent use; the
// queue serialises every call under its own mutex.
type Container[T any] interface {
	PushBack(element T)
	PopFront() (T, bool)
	Len() int
}
