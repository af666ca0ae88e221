package oracle

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/pkcs12"

	"github.com/stretchr/testify/require"
)

// buildKeystore produces a minimal, valid PKCS#12 file protected by
// password, for use as an Oracle fixture.
func buildKeystore(t *testing.T, password string) string {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "oracle-test"},
		NotBefore:    time.Unix(0, 0),
		NotAfter:     time.Unix(0, 0).Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	pfx, err := pkcs12.Encode(rand.Reader, key, cert, nil, password)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "keystore.p12")
	require.NoError(t, os.WriteFile(path, pfx, 0o644))
	return path
}

func TestOpen_ValidKeystoreAnyPassword(t *testing.T) {
	path := buildKeystore(t, "correct-horse")

	o, err := Open(path)
	require.NoError(t, err)
	require.NotNil(t, o)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.p12"))
	require.Error(t, err)

	var oe *Error
	require.ErrorAs(t, err, &oe)
	require.Equal(t, KindNotFound, oe.Kind)
}

func TestOpen_UnparseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.p12")
	require.NoError(t, os.WriteFile(path, []byte("not a pkcs12 file"), 0o644))

	_, err := Open(path)
	require.Error(t, err)

	var oe *Error
	require.ErrorAs(t, err, &oe)
	require.Equal(t, KindUnparseable, oe.Kind)
}

func TestVerify_CorrectAndIncorrectPasswords(t *testing.T) {
	path := buildKeystore(t, "s3cr3t")

	o, err := Open(path)
	require.NoError(t, err)

	require.True(t, o.Verify([]byte("s3cr3t")))
	require.False(t, o.Verify([]byte("wrong")))
	require.False(t, o.Verify([]byte("")))
}

func TestVerify_ConcurrentCallsAreSafe(t *testing.T) {
	path := buildKeystore(t, "concurrent-pw")

	o, err := Open(path)
	require.NoError(t, err)

	done := make(chan bool, 16)
	for i := 0; i < 16; i++ {
		go func(i int) {
			if i%2 == 0 {
				done <- o.Verify([]byte("concurrent-pw"))
			} else {
				done <- o.Verify([]byte("nope"))
			}
		}(i)
	}
	for i := 0; i < 16; i++ {
		<-done
	}
}
