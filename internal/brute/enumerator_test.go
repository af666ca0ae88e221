package brute

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(e *Enumerator) []string {
	var out []string
	for {
		w, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, string(w))
	}
}

func TestEnumerator_SingleWorkerCoversFullSpace(t *testing.T) {
	alphabet := []byte("ab")

	e := New(alphabet, 0, 1, 1, 2)
	got := collect(e)

	want := []string{"a", "b", "aa", "ab", "ba", "bb"}
	require.ElementsMatch(t, want, got)
	require.Len(t, got, len(want))
}

func TestEnumerator_PartitionCoversEveryWordExactlyOnce(t *testing.T) {
	alphabet := []byte("abc")
	const workers = 3

	seen := map[string]int{}
	for id := 0; id < workers; id++ {
		e := New(alphabet, id, workers, 1, 3)
		for _, w := range collect(e) {
			seen[w]++
		}
	}

	// total word count for lengths 1..3 over a 3-symbol alphabet: 3+9+27
	require.Len(t, seen, 3+9+27)
	for w, n := range seen {
		require.Equalf(t, 1, n, "word %q produced by more than one worker", w)
	}
}

func TestEnumerator_WorkerIDBeyondAlphabetProducesNothing(t *testing.T) {
	alphabet := []byte("ab")

	e := New(alphabet, 5, 8, 1, 3)
	got := collect(e)

	require.Empty(t, got)
}

func TestEnumerator_AttemptsTracksCount(t *testing.T) {
	alphabet := []byte("ab")

	e := New(alphabet, 0, 1, 1, 1)
	require.Equal(t, uint64(0), e.Attempts())

	_, ok := e.Next()
	require.True(t, ok)
	require.Equal(t, uint64(1), e.Attempts())

	_, ok = e.Next()
	require.True(t, ok)
	require.Equal(t, uint64(2), e.Attempts())

	_, ok = e.Next()
	require.False(t, ok)
	require.Equal(t, uint64(2), e.Attempts())
}

func TestEnumerator_MinLenEqualsMaxLen(t *testing.T) {
	alphabet := []byte("xy")

	e := New(alphabet, 0, 1, 2, 2)
	got := collect(e)

	require.ElementsMatch(t, []string{"xx", "xy", "yx", "yy"}, got)
}

func TestEnumerator_OrderingIsDeterministic(t *testing.T) {
	alphabet := []byte("abc")

	e := New(alphabet, 0, 1, 1, 2)
	got := collect(e)

	require.Equal(t, []string{"a", "b", "c", "aa", "ab", "ac", "ba", "bb", "bc", "ca", "cb", "cc"}, got)
}

func TestEnumerator_LargeAlphabetPartitionExhaustive(t *testing.T) {
	alphabet := []byte("abcdefghijklmnopqrstuvwxyz")
	const workers = 4

	seen := map[string]bool{}
	for id := 0; id < workers; id++ {
		e := New(alphabet, id, workers, 1, 2)
		for _, w := range collect(e) {
			require.Falsef(t, seen[w], "duplicate word %q", w)
			seen[w] = true
		}
	}

	require.Len(t, seen, len(alphabet)+len(alphabet)*len(alphabet))
}

func ExampleEnumerator() {
	e := New([]byte("ab"), 0, 1, 1, 1)
	for {
		w, ok := e.Next()
		if !ok {
			break
		}
		fmt.Println(string(w))
	}
	// Output:
	// a
	// b
}
