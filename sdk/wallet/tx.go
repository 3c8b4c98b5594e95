// Package wallet builds the byte sequences a wallet signs and assembles
// signed transaction envelopes. Everything here is pure: no I/O, no logging.
package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/base58"

	"github.com/gulfstream/seashell/codec"
	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/sdk"
	"github.com/gulfstream/seashell/signing"
)

// headerSize is the size of the blockheight and gas prefix of a signing payload.
const headerSize = 2 * codec.U64Size

var (
	// ErrMissingSigner is returned when an envelope would be built without a signature.
	ErrMissingSigner = errors.New("missing signer")
	// ErrSigningFailed wraps any failure reported by a signer.
	ErrSigningFailed = errors.New("signing failed")
	// ErrNilMessage is returned when no message is supplied.
	ErrNilMessage = errors.New("nil message")
)

// SigningPayload returns blockheight and gas, both 8 bytes little endian,
// followed by the encoded message. It panics when types.IsNilMessage(msg) is true.
func SigningPayload(blockheight, gas uint64, msg types.TxMessage) []byte {
	return rawPayload(blockheight, gas, types.EncodeMessage(msg))
}

func rawPayload(blockheight, gas uint64, msg []byte) []byte {
	buf := make([]byte, 0, headerSize+len(msg))
	buf = codec.AppendU64LE(buf, blockheight)
	buf = codec.AppendU64LE(buf, gas)
	return append(buf, msg...)
}

// SignableText returns the bytes handed to a signer: the UTF-8 encoding of
// the base58 text of payload. The network verifies signatures over this
// text, not over the raw payload.
func SignableText(payload []byte) []byte {
	return []byte(base58.Encode(payload))
}

// BuildEnvelope assembles a signed transaction. It checks the shape of the
// inputs only.
func BuildEnvelope(blockheight, gas uint64, msg types.TxMessage, payer, sig []byte) (*types.Transaction, error) {
	if types.IsNilMessage(msg) {
		return nil, ErrNilMessage
	}
	if len(sig) == 0 {
		return nil, fmt.Errorf("%w: empty signature", ErrMissingSigner)
	}
	addr, err := types.BytesToAddress(payer)
	if err != nil {
		return nil, fmt.Errorf("payer: %w", err)
	}
	return &types.Transaction{
		Blockheight: blockheight,
		Gas:         gas,
		Msg:         types.EncodeMessage(msg),
		Payer:       addr,
		Signature:   sig,
	}, nil
}

// Sign builds the signing payload for msg, asks signer to sign its text form
// and returns the resulting envelope. blockheight is used as given.
func Sign(
	ctx context.Context,
	signer signing.Signer,
	blockheight uint64,
	msg types.TxMessage,
	opts ...sdk.Opt,
) (*types.Transaction, error) {
	options := sdk.Defaults()
	for _, opt := range opts {
		opt(options)
	}
	if signer == nil {
		return nil, ErrMissingSigner
	}
	if types.IsNilMessage(msg) {
		return nil, ErrNilMessage
	}

	payload := SigningPayload(blockheight, options.Gas, msg)
	sig, err := signer.Sign(ctx, SignableText(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSigningFailed, err)
	}
	payer := signer.PublicKey()
	return BuildEnvelope(blockheight, options.Gas, msg, payer[:], sig)
}

// Transfer creates a signed transfer of amount to the given address.
func Transfer(
	ctx context.Context,
	signer signing.Signer,
	blockheight uint64,
	to types.Address,
	amount types.Amount,
	opts ...sdk.Opt,
) (*types.Transaction, error) {
	return Sign(ctx, signer, blockheight, &types.Transfer{To: to, Amount: amount}, opts...)
}

// Mint creates a signed mint of amount.
func Mint(
	ctx context.Context,
	signer signing.Signer,
	blockheight uint64,
	amount types.Amount,
	opts ...sdk.Opt,
) (*types.Transaction, error) {
	return Sign(ctx, signer, blockheight, &types.Mint{Amount: amount}, opts...)
}

// Verify checks the envelope signature against its payer. The payload is
// rebuilt from the raw msg bytes so that the exact signed bytes are checked.
func Verify(verifier signing.Verifier, tx *types.Transaction) bool {
	payload := rawPayload(tx.Blockheight, tx.Gas, tx.Msg)
	return verifier.Verify(tx.Payer, SignableText(payload), tx.Signature)
}
