package signing

import (
	"github.com/oasisprotocol/curve25519-voi/primitives/ed25519"

	"github.com/gulfstream/seashell/common/types"
)

// EdVerifier verifies ed25519 signatures.
type EdVerifier struct{}

var _ Verifier = EdVerifier{}

// NewEdVerifier returns a verifier.
func NewEdVerifier() EdVerifier {
	return EdVerifier{}
}

// Verify verifies that a signature matches public key and message.
func (EdVerifier) Verify(pub types.Address, msg, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub[:]), msg, sig)
}
