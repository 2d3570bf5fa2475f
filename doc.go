// Package toolbox provides ConsumedQueue, a generic work queue consumed by
// a fixed pool of worker goroutines.
//
// Callers submit items and a single user supplied callback is applied to
// each of them, concurrently.  The queue supports graceful pause and resume
// of consumption, live inspection of the pending item count and an orderly
// blocking shutdown that lets in-flight work finish.
//
// Example usage:
//
//	// Create a queue with 4 workers
//	queue, err := toolbox.New(4, func(item string) {
//	    fmt.Println("processing", item)
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer queue.Close()
//
//	// Submit work; Submit never blocks
//	queue.Submit("item-1")
//	queue.Submit("item-2")
//
//	// Temporarily gate consumption
//	queue.Pause()
//	queue.Submit("item-3") // accumulates in the buffer
//	queue.Resume()
//
// Close signals the workers to exit and waits for them, so every item a
// worker had already claimed is finished before Close returns.  Items still
// waiting in the buffer at that point are not claimed; poll ItemsCount or
// Stats for a drained queue first when every item must be processed.
package toolbox
