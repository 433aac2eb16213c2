package emulator

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/alek/cpu"
)

// Result is the final state of a demo run by RunAll.
type Result struct {
	Name   string    // Demo name.
	Ticks  int       // Instructions executed.
	State  cpu.State // Final CPU state.
	Screen []string  // Final text window.
	Err    error     // Runtime fault, or tick limit.
}

// RunAll runs each demo on its own emulator, concurrently. Results are in
// the order of the demos. Faults are reported in the results; only a done
// context fails the whole run.
func RunAll(ctx context.Context, demos []Demo, limit int) (results []Result, err error) {
	results = make([]Result, len(demos))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n, demo := range demos {
		g.Go(func() error {
			emu := NewEmulator()
			emu.Load(demo.Code)

			runErr := emu.RunContext(ctx, limit)
			if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
				return runErr
			}

			results[n] = Result{
				Name:   demo.Name,
				Ticks:  emu.Ticks,
				State:  emu.State,
				Screen: emu.Screen(),
				Err:    runErr,
			}
			return nil
		})
	}

	err = g.Wait()
	return
}
