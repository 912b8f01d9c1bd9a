// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"pbxplore/internal/dihedral"
	"pbxplore/internal/pb"
)

// Config controls the classification pipeline.
type Config struct {
	Threads int // number of worker goroutines (<=0 means all CPUs)
}

// Result pairs one frame with its assigned sequence. Index is the frame's
// position in the input slice.
type Result struct {
	Index int
	ID    string
	Seq   pb.Sequence
}

// ForEachSequence classifies every frame against lib using a worker pool and
// calls visit once per frame, in input order regardless of completion order.
// It returns the first error encountered (including context cancellation).
func ForEachSequence(
	ctx context.Context,
	cfg Config,
	frames []dihedral.Frame,
	lib *pb.Library,
	visit func(Result) error,
) error {
	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	jobs := make(chan int, threads*2)
	results := make(chan Result, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					res := Result{
						Index: i,
						ID:    frames[i].ID,
						Seq:   pb.AssignFrame(lib, &frames[i]),
					}
					select {
					case results <- res:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder completed frames back into input order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Result, threads*2)
		next := 0
		for res := range results {
			if cerr != nil {
				continue
			}
			pending[res.Index] = res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(r); err != nil {
					cerr = err
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range frames {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
