// Package resultfile atomically persists a found password to disk, as an
// optional convenience on top of the required stdout banner.
package resultfile

import "github.com/google/renameio/v2"

// Write atomically creates or replaces path with password's exact bytes. It
// must only be called after a confirmed hit; it is never invoked on a miss,
// so a stale result file is never left behind by an unsuccessful run.
func Write(path string, password []byte) error {
	return renameio.WriteFile(path, password, 0o600)
}
