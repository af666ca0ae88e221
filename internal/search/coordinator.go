package search

import (
	"context"
	"errors"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/joeycumines/pkcs12crack/internal/brute"
	"github.com/joeycumines/pkcs12crack/internal/dictionary"
	"github.com/joeycumines/pkcs12crack/internal/oracle"
)

// Coordinator runs the worker pool against an Oracle that the caller has
// already opened (so invariant I1 holds structurally), one Run call per
// mode, and prints the hit banner. The final "No password found" line is
// left to the caller.
type Coordinator struct {
	Oracle      *oracle.Oracle
	Threads     int
	MsgInterval int
	Out         io.Writer
}

// RunDictionary streams path across Threads workers sharing one
// dictionary.Source. It returns a non-nil Result if some worker's candidate
// verified.
func (c *Coordinator) RunDictionary(ctx context.Context, path string) (*Result, error) {
	src, err := dictionary.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return c.run(ctx, "dictionary", c.Threads, func(int) source { return src })
}

// RunBrute enumerates every word of length [minLen, maxLen] over alphabet,
// partitioned across Threads private brute.Enumerators (one per worker, by
// first-character index). It returns a non-nil Result if some worker's
// candidate verified.
func (c *Coordinator) RunBrute(ctx context.Context, alphabet []byte, minLen, maxLen int) (*Result, error) {
	return c.run(ctx, "brute", c.Threads, func(id int) source {
		return brute.New(alphabet, id, c.Threads, minLen, maxLen)
	})
}

// run spawns n workers, each pulling from newSource(workerID), joins them,
// and extracts the first (and only) reported hit, if any.
func (c *Coordinator) run(ctx context.Context, mode string, n int, newSource func(id int) source) (*Result, error) {
	eg, gctx := errgroup.WithContext(ctx)

	for id := 0; id < n; id++ {
		id := id
		eg.Go(func() error {
			outcome := runWorker(gctx, c.Oracle, newSource(id), mode, id, c.MsgInterval, c.Out)
			if outcome.hit {
				return &hitError{result: outcome.result}
			}
			return nil
		})
	}

	err := eg.Wait()

	var he *hitError
	if errors.As(err, &he) {
		printHit(c.Out, he.result)
		return &he.result, nil
	}
	if err != nil {
		return nil, err
	}
	return nil, nil
}
