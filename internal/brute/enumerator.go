// Package brute implements the per-worker brute-force candidate generator:
// an iterative odometer over a fixed alphabet, partitioned across workers by
// first-character index so that enumeration requires no inter-worker
// coordination and no candidate is produced more than once.
package brute

// Enumerator generates every word of length in [minLen, maxLen] over
// alphabet whose first character is owned by worker workerID (i.e. every
// first-character index i where i % workerCount == workerID). It is not
// safe for concurrent use; each worker owns a private Enumerator.
type Enumerator struct {
	alphabet    []byte
	workerID    int
	workerCount int
	maxLen      int

	length   int // current word length; stays 0 only if this worker owns nothing
	firstIdx int // alphabet index for position 0 of the current word
	tail     []int
	attempts uint64
	done     bool
}

// New constructs an Enumerator for one worker's share of the search space.
// minLen and maxLen are inclusive bounds; workerID is in [0, workerCount).
func New(alphabet []byte, workerID, workerCount, minLen, maxLen int) *Enumerator {
	e := &Enumerator{
		alphabet:    alphabet,
		workerID:    workerID,
		workerCount: workerCount,
		maxLen:      maxLen,
	}
	if !e.startLength(minLen) {
		e.done = true
	}
	return e
}

// Next returns the next candidate owned by this worker, or false once its
// entire share of the search space has been produced.
func (e *Enumerator) Next() ([]byte, bool) {
	if e.done {
		return nil, false
	}

	word := e.word()
	e.attempts++

	if !e.advance() {
		e.done = true
	}

	return word, true
}

// Attempts reports how many candidates this Enumerator has produced so far,
// for progress reporting.
func (e *Enumerator) Attempts() uint64 { return e.attempts }

// startLength positions the enumerator at the first candidate of the given
// length that this worker owns, searching forward through longer lengths (up
// to maxLen) if this worker owns nothing at length itself. Returns false if
// no such position exists at any length in [length, maxLen].
func (e *Enumerator) startLength(length int) bool {
	for l := length; l <= e.maxLen; l++ {
		if e.workerID >= len(e.alphabet) {
			continue // this worker owns no first-character index at all
		}
		e.length = l
		e.firstIdx = e.workerID
		e.tail = make([]int, l-1)
		return true
	}
	return false
}

// word renders the current (firstIdx, tail) position as a byte slice.
func (e *Enumerator) word() []byte {
	w := make([]byte, e.length)
	w[0] = e.alphabet[e.firstIdx]
	for i, idx := range e.tail {
		w[i+1] = e.alphabet[idx]
	}
	return w
}

// advance moves to the next position: first the rightmost-fastest odometer
// over tail, then the next first-character index owned by this worker, then
// the next length. Returns false if nothing further remains.
func (e *Enumerator) advance() bool {
	for i := len(e.tail) - 1; i >= 0; i-- {
		e.tail[i]++
		if e.tail[i] < len(e.alphabet) {
			return true
		}
		e.tail[i] = 0
	}

	if next := e.firstIdx + e.workerCount; next < len(e.alphabet) {
		e.firstIdx = next
		e.tail = make([]int, e.length-1)
		return true
	}

	return e.startLength(e.length + 1)
}
