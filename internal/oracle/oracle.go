// Package oracle holds a parsed PKCS#12 keystore and exposes a read-only
// passphrase verification predicate, safe for concurrent use by many
// goroutines.
package oracle

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/pkcs12"
)

// Kind classifies a startup failure, distinguishing a missing file from one
// that could not be parsed as PKCS#12 DER.
type Kind int

const (
	KindNotFound Kind = iota
	KindUnparseable
)

// Error is returned by Open on a fatal startup failure. Its Kind determines
// the process exit code the caller should use.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("PKCS12 file not found: %s", e.Path)
	default:
		return fmt.Sprintf("unable to parse PKCS12 file %s: %v", e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Oracle holds the raw bytes of a PKCS#12 keystore, read once. It is
// immutable after Open returns, and Verify may be called concurrently from
// any number of goroutines without further synchronization.
type Oracle struct {
	data []byte
}

// Open reads path fully into memory and confirms it parses as a PKCS#12 DER
// structure. The correct passphrase is not required for Open to succeed:
// a wrong password during the validation probe is not a parse failure.
func Open(path string) (*Oracle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindNotFound, Path: path, Err: err}
	}

	// Probe with an empty password, purely to validate the DER/ASN.1
	// structure. ErrIncorrectPassword still means the file parses fine.
	if _, err := pkcs12.ToPEM(data, ""); err != nil && !errors.Is(err, pkcs12.ErrIncorrectPassword) {
		return nil, &Error{Kind: KindUnparseable, Path: path, Err: err}
	}

	return &Oracle{data: data}, nil
}

// Verify reports whether candidate is the keystore's passphrase, by
// attempting to decode the stored PKCS#12 structure's MAC-protected
// contents with it. It never errors at the contract level: any decode
// failure, including a wrong password, is reported as a miss (false).
//
// Candidate is passed as raw bytes with no length prefix or encoding
// conversion; an empty candidate is a legal input.
func (o *Oracle) Verify(candidate []byte) bool {
	_, err := pkcs12.ToPEM(o.data, string(candidate))
	return err == nil
}
