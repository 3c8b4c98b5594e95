package signing

import (
	"context"

	"github.com/gulfstream/seashell/common/types"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interfaces.go

// Signer produces signatures over arbitrary messages on behalf of one account.
// A browser wallet, a hardware device or a local key can stand behind it.
type Signer interface {
	PublicKey() types.Address
	Sign(ctx context.Context, msg []byte) ([]byte, error)
}

// Verifier checks signatures produced by a Signer.
type Verifier interface {
	Verify(pub types.Address, msg, sig []byte) bool
}
