package contract

// Queuer is the contract a consumed queue exposes to its host: asynchronous
// submission, pause/resume gating of new claims, an advisory pending count
// and a blocking, idempotent shutdown.
type Queuer[T any] interface {
	Submit(item T)

	Pause()
	Resume()

	ItemsCount() int

	Close()
}
