package utils

import (
	"runtime"
	"sync"
)

type ParallelOptions struct {
	Routines int
}

// ParallelMap runs proc over every element of col using a fixed pool of
// goroutines and returns the results in input order. Each worker writes into
// the slot matching its input index, so completion order never reorders the
// output.
func ParallelMap[I, O any](col []I, proc func(I) O, opts ...ParallelOptions) []O {
	o := ParallelOptions{
		Routines: Max(runtime.NumCPU(), 1),
	}
	for _, oi := range opts {
		if oi.Routines > 0 {
			o.Routines = oi.Routines
		}
	}

	results := make([]O, len(col))

	indexes := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < Min(o.Routines, len(col)); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range indexes {
				results[idx] = proc(col[idx])
			}
		}()
	}

	for i := range col {
		indexes <- i
	}
	close(indexes)

	wg.Wait()

	return results
}
