package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/gulfstream/seashell/common/types"
)

// PrivateKey is an alias to ed25519.PrivateKey.
type PrivateKey = ed25519.PrivateKey

const (
	// PrivateKeySize size of the private key in bytes.
	PrivateKeySize = ed25519.PrivateKeySize
	// SignatureSize size of an ed25519 signature in bytes.
	SignatureSize = ed25519.SignatureSize
)

// Public returns the account address of the private key.
func Public(priv PrivateKey) types.Address {
	var addr types.Address
	copy(addr[:], priv.Public().(ed25519.PublicKey))
	return addr
}
