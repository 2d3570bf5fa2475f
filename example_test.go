package toolbox

import (
	"fmt"
	"sync"
)

func ExampleConsumedQueue() {
	var wg sync.WaitGroup
	wg.Add(3)
	queue, _ := New(1, func(item string) {
		fmt.Println("processing", item)
		wg.Done()
	})

	queue.Submit("alpha")
	queue.Submit("beta")
	queue.Submit("gamma")

	wg.Wait()
	queue.Close()
	fmt.Println("pending after close:", queue.ItemsCount())

	// Output:
	// processing alpha
	// processing beta
	// processing gamma
	// pending after close: 0
}

func ExampleConsumedQueue_Pause() {
	var wg sync.WaitGroup
	queue, _ := New(1, func(item int) {
		fmt.Println("processed", item)
		wg.Done()
	})
	defer queue.Close()

	queue.Pause()
	wg.Add(2)
	queue.Submit(1)
	queue.Submit(2)
	fmt.Println("waiting while paused:", queue.ItemsCount())

	queue.Resume()
	wg.Wait()

	// Output:
	// waiting while paused: 2
	// processed 1
	// processed 2
}
