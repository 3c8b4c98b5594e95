package signing

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEdSignerFromBuffer(t *testing.T) {
	b := []byte{1, 2, 3}
	_, err := NewEdSigner(WithPrivateKey(b))
	require.ErrorContains(t, err, "too small")

	b = make([]byte, PrivateKeySize)
	_, err = NewEdSigner(WithPrivateKey(b))
	require.ErrorContains(t, err, "private and public do not match")
}

func TestEdSigner_Sign(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	m := make([]byte, 4)
	rand.Read(m)
	sig, err := ed.Sign(context.Background(), m)
	require.NoError(t, err)
	require.Len(t, sig, SignatureSize)

	v := NewEdVerifier()
	require.Truef(t, v.Verify(ed.PublicKey(), m, sig), "failed to verify message %x with sig %x", m, sig)

	m[0]++
	require.False(t, v.Verify(ed.PublicKey(), m, sig))
	require.False(t, v.Verify(ed.PublicKey(), m, sig[:10]))
}

func TestEdSigner_WithPrivateKey(t *testing.T) {
	ed, err := NewEdSigner()
	require.NoError(t, err)

	ed2, err := NewEdSigner(WithPrivateKey(ed.PrivateKey()))
	require.NoError(t, err)
	require.Equal(t, ed.priv, ed2.priv)
	require.Equal(t, ed.PublicKey(), ed2.PublicKey())
}

func TestEdSigner_WithKeyFromRand(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 64)
	ed1, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	ed2, err := NewEdSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	require.Equal(t, ed1.PublicKey(), ed2.PublicKey())
}

func TestEdSigner_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "wallet.key")
	ed, err := NewEdSigner(ToFile(path))
	require.NoError(t, err)
	require.Equal(t, "wallet.key", ed.Name())

	loaded, err := NewEdSigner(FromFile(path))
	require.NoError(t, err)
	require.Equal(t, ed.PublicKey(), loaded.PublicKey())

	_, err = NewEdSigner(ToFile(path))
	require.ErrorIs(t, err, os.ErrExist)
}

func TestEdSigner_FromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewEdSigner(FromFile(filepath.Join(dir, "missing")))
	require.ErrorContains(t, err, "failed to open key file")

	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, []byte("abcd"), 0o600))
	_, err = NewEdSigner(FromFile(short))
	require.ErrorContains(t, err, "invalid key size")

	mismatch := filepath.Join(dir, "mismatch")
	require.NoError(t, os.WriteFile(mismatch, []byte(hex.EncodeToString(make([]byte, PrivateKeySize))), 0o600))
	_, err = NewEdSigner(FromFile(mismatch))
	require.ErrorContains(t, err, "private and public do not match")

	ed, err := NewEdSigner()
	require.NoError(t, err)
	_, err = NewEdSigner(WithPrivateKey(ed.PrivateKey()), FromFile(short))
	require.ErrorContains(t, err, "private key already set")
}
