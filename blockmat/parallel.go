// SPDX-License-Identifier: MIT

package blockmat

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// runBlocks executes n independent block computations. With one worker the
// loop is plain and sequential; otherwise tasks are submitted to an ants
// goroutine pool. Each task writes into its own pre-assigned slot, so the
// caller observes the same result regardless of scheduling.
//
// Cancellation is all-or-nothing at task granularity: once the context is
// done or a task fails, remaining tasks are not scheduled, but in-flight
// tasks run to completion. The first error wins.
func runBlocks(o Options, n int, run func(int) error) error {
	if o.workers <= 1 {
		for i := 0; i < n; i++ {
			if err := o.ctx.Err(); err != nil {
				return err
			}
			if err := run(i); err != nil {
				return err
			}
		}
		return nil
	}

	pool, err := ants.NewPool(o.workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return firstErr != nil
	}

	for i := 0; i < n && !failed(); i++ {
		if err := o.ctx.Err(); err != nil {
			fail(err)
			break
		}
		wg.Add(1)
		task := i
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := run(task); err != nil {
				fail(err)
			}
		}); err != nil {
			wg.Done()
			fail(err)
			break
		}
	}

	wg.Wait()
	return firstErr
}
