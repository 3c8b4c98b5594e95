package types

import (
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/base58"
	"go.uber.org/zap/zapcore"
)

// ErrEmptySignature is returned for an envelope without a signature.
var ErrEmptySignature = errors.New("empty signature")

// Transaction is the envelope submitted to the network. Msg holds the
// output of EncodeMessage and is kept opaque so that history entries with
// unknown variants can still be carried around.
type Transaction struct {
	Blockheight uint64
	Gas         uint64
	Msg         []byte
	Payer       Address
	Signature   []byte
}

// ID returns the base58 encoding of the signature. The network and the
// explorer identify transactions by it.
func (t *Transaction) ID() string {
	return base58.Encode(t.Signature)
}

// Message decodes the msg field.
func (t *Transaction) Message() (TxMessage, error) {
	return DecodeMessage(t.Msg)
}

// Validate checks the structural shape of the envelope.
func (t *Transaction) Validate() error {
	if len(t.Signature) == 0 {
		return ErrEmptySignature
	}
	if _, err := DecodeMessage(t.Msg); err != nil {
		return fmt.Errorf("msg: %w", err)
	}
	return nil
}

// MarshalLogObject implements logging interface.
func (t *Transaction) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("id", t.ID())
	encoder.AddUint64("blockheight", t.Blockheight)
	encoder.AddUint64("gas", t.Gas)
	encoder.AddString("payer", t.Payer.String())
	encoder.AddInt("msg_size", len(t.Msg))
	return nil
}

// Block is the view of a ledger block returned by the node.
type Block struct {
	Index        uint64
	Hash         []byte
	PreviousHash []byte
	Nonce        uint64
	Transactions []*Transaction
}

// MarshalLogObject implements logging interface.
func (b *Block) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint64("index", b.Index)
	encoder.AddString("hash", base58.Encode(b.Hash))
	encoder.AddInt("transactions", len(b.Transactions))
	return nil
}
