package faststray

import (
	"runtime"
	"sync"
)

// forEachIndex runs fn(i) for every i in [0, n). With workers > 1 the index
// range is split into contiguous chunks, one goroutine per chunk, capped at
// n and at the CPU count. fn must only read shared inputs and write state
// owned by its own index, which keeps the result independent of scheduling.
func forEachIndex(workers, n int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers = min(workers, n, runtime.NumCPU())
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
