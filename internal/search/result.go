// Package search implements the worker pool and coordinator that drive the
// dictionary and brute-force engines against a shared oracle, and that
// render the exact banners the tool is required to print.
package search

// Result describes a hit: the candidate whose MAC verified, and which
// worker/mode found it.
type Result struct {
	Mode     string
	WorkerID int
	Password []byte
	Attempts uint64
}

// hitError carries a Result out of an errgroup.Group, so the winning
// worker's goroutine can signal every sibling worker to stop (via the
// group's derived context) using the group's ordinary error-propagation
// path, rather than a second, bespoke cancellation mechanism.
type hitError struct {
	result Result
}

func (e *hitError) Error() string { return "password found" }
