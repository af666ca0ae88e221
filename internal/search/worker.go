package search

import (
	"context"
	"fmt"
	"io"

	"github.com/joeycumines/pkcs12crack/internal/oracle"
)

// source is satisfied by both *dictionary.Source and *brute.Enumerator: a
// candidate generator that a worker pulls from until it is exhausted.
type source interface {
	Next() ([]byte, bool)
}

// workerOutcome is runWorker's return value.
type workerOutcome struct {
	hit    bool
	result Result
}

// runWorker repeatedly pulls candidates from src and submits them to o,
// until ctx is canceled (another worker already found a hit), src is
// exhausted, or Verify reports a hit. Progress and exhaustion banners are
// written to out only when msgInterval > 0 (verbose mode).
func runWorker(ctx context.Context, o *oracle.Oracle, src source, mode string, id int, msgInterval int, out io.Writer) workerOutcome {
	var attempts uint64
	var sinceReport int

	for {
		if ctx.Err() != nil {
			return workerOutcome{}
		}

		candidate, ok := src.Next()
		if !ok {
			if msgInterval > 0 {
				fmt.Fprintf(out, "%s - Thread %d - Exhausted search (%d attempts)\n", mode, id+1, attempts)
			}
			return workerOutcome{}
		}

		attempts++
		sinceReport++

		if msgInterval > 0 && sinceReport >= msgInterval {
			sinceReport = 0
			fmt.Fprintf(out, "%s - Thread %d - Attempt %d (%s)\n", mode, id+1, attempts, candidate)
		}

		if o.Verify(candidate) {
			return workerOutcome{
				hit: true,
				result: Result{
					Mode:     mode,
					WorkerID: id,
					Password: candidate,
					Attempts: attempts,
				},
			}
		}
	}
}

// printHit writes the required three-line hit banner to out.
func printHit(out io.Writer, r Result) {
	fmt.Fprintln(out, "********************************************")
	fmt.Fprintf(out, "%s - Thread %d - Password found: %s\n", r.Mode, r.WorkerID+1, r.Password)
	fmt.Fprintln(out, "********************************************")
}
