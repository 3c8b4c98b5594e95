// Package signing provides ed25519 signing of transaction payloads.
package signing

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/gulfstream/seashell/common/types"
)

type edSignerOption struct {
	priv PrivateKey
	file string
}

// EdSignerOptionFunc modifies EdSigner.
type EdSignerOptionFunc func(*edSignerOption) error

// ToFile writes the private key to a file after creation.
func ToFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.file != "" {
			return errors.New("invalid option ToFile: file already set")
		}
		opt.file = path
		return nil
	}
}

// FromFile loads the hex encoded private key from a file.
func FromFile(path string) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option FromFile: private key already set")
		}
		if opt.file != "" {
			return errors.New("invalid option FromFile: file already set")
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to open key file at %s: %w", path, err)
		}
		data = bytes.TrimSpace(data)
		if n := hex.DecodedLen(len(data)); n != PrivateKeySize {
			return fmt.Errorf("invalid key size %d/%d for %s", n, PrivateKeySize, filepath.Base(path))
		}

		dst := make([]byte, PrivateKeySize)
		n, err := hex.Decode(dst, data)
		if err != nil || n != PrivateKeySize {
			return fmt.Errorf("decoding private key in %s: %w", filepath.Base(path), err)
		}
		if err := checkKeyPair(dst); err != nil {
			return err
		}
		opt.priv = dst
		opt.file = path
		return nil
	}
}

// WithPrivateKey sets the private key used by EdSigner.
func WithPrivateKey(priv PrivateKey) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}
		if len(priv) != PrivateKeySize {
			return fmt.Errorf("could not create EdSigner: key size %d is too small", len(priv))
		}
		if err := checkKeyPair(priv); err != nil {
			return err
		}
		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand sets the private key used by EdSigner using predictable randomness source.
func WithKeyFromRand(rand io.Reader) EdSignerOptionFunc {
	return func(opt *edSignerOption) error {
		_, priv, err := ed25519.GenerateKey(rand)
		if err != nil {
			return fmt.Errorf("could not generate key pair: %w", err)
		}
		opt.priv = priv
		return nil
	}
}

func checkKeyPair(priv PrivateKey) error {
	keyPair := ed25519.NewKeyFromSeed(priv[:ed25519.SeedSize])
	if !bytes.Equal(keyPair[ed25519.SeedSize:], priv[ed25519.SeedSize:]) {
		return errors.New("private and public do not match")
	}
	return nil
}

// EdSigner is a Signer backed by a local ed25519 key. It signs exactly the
// bytes it is given, as a wallet extension does.
type EdSigner struct {
	priv PrivateKey
	file string
}

var _ Signer = (*EdSigner)(nil)

// NewEdSigner returns an ed signer, generating a new key unless one is provided.
func NewEdSigner(opts ...EdSignerOptionFunc) (*EdSigner, error) {
	cfg := &edSignerOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.priv == nil {
		_, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			return nil, fmt.Errorf("could not generate key pair: %w", err)
		}
		cfg.priv = priv

		if cfg.file != "" {
			if err := writeKeyFile(cfg.file, priv); err != nil {
				return nil, err
			}
		}
	}
	return &EdSigner{priv: cfg.priv, file: cfg.file}, nil
}

func writeKeyFile(path string, priv PrivateKey) error {
	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("stat key file %s: %w", filepath.Base(path), err)
	default:
		return fmt.Errorf("save key file %s: %w", filepath.Base(path), fs.ErrExist)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create key dir: %w", err)
	}
	dst := make([]byte, hex.EncodedLen(len(priv)))
	hex.Encode(dst, priv)
	if err := atomic.WriteFile(path, bytes.NewReader(dst)); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// Sign signs msg. It never blocks and ignores ctx.
func (es *EdSigner) Sign(_ context.Context, msg []byte) ([]byte, error) {
	return ed25519.Sign(es.priv, msg), nil
}

// PublicKey returns the account address of the signer.
func (es *EdSigner) PublicKey() types.Address {
	return Public(es.priv)
}

// PrivateKey returns private key.
func (es *EdSigner) PrivateKey() PrivateKey {
	return es.priv
}

// Name returns the file name of the key, if it was loaded from or saved to one.
func (es *EdSigner) Name() string {
	if es.file == "" {
		return ""
	}
	return filepath.Base(es.file)
}

func (es *EdSigner) String() string {
	return es.PublicKey().ShortString()
}
