package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"

	"github.com/gulfstream/seashell/codec"
)

// MessageTag is the first byte of an encoded TxMessage.
type MessageTag byte

const (
	// MintTag identifies a Mint message.
	MintTag MessageTag = 0
	// TransferTag identifies a Transfer message.
	TransferTag MessageTag = 1
)

const (
	// MintSize is the encoded size of a Mint message.
	MintSize = 1 + codec.U64Size
	// TransferSize is the encoded size of a Transfer message.
	TransferSize = 1 + AddressLength + codec.U64Size
)

var (
	// ErrTruncatedMessage is returned when a buffer is shorter than its variant requires.
	ErrTruncatedMessage = errors.New("truncated message")
	// ErrUnknownVariant is returned for a tag that is neither MintTag nor TransferTag.
	ErrUnknownVariant = errors.New("unknown message variant")
	// ErrTrailingData is returned when a buffer is longer than its variant.
	ErrTrailingData = errors.New("trailing data after message")
)

// String implements fmt.Stringer.
func (t MessageTag) String() string {
	switch t {
	case MintTag:
		return "mint"
	case TransferTag:
		return "transfer"
	default:
		return fmt.Sprintf("unknown(%d)", byte(t))
	}
}

// size returns the encoded size of the variant including the tag.
func (t MessageTag) size() (int, bool) {
	switch t {
	case MintTag:
		return MintSize, true
	case TransferTag:
		return TransferSize, true
	default:
		return 0, false
	}
}

// TxMessage is the payload carried in the msg field of a Transaction.
// It is implemented only by *Mint and *Transfer.
type TxMessage interface {
	fmt.Stringer
	Tag() MessageTag
	// EncodeScale and DecodeScale cover the variant body, without the tag.
	EncodeScale(*scale.Encoder) (int, error)
	DecodeScale(*scale.Decoder) (int, error)

	isTxMessage()
}

// Mint creates new Seashell.
type Mint struct {
	Amount Amount
}

// Transfer moves Seashell from the payer to To.
type Transfer struct {
	To     Address
	Amount Amount
}

func (*Mint) isTxMessage()     {}
func (*Transfer) isTxMessage() {}

// Tag implements TxMessage.
func (*Mint) Tag() MessageTag { return MintTag }

// Tag implements TxMessage.
func (*Transfer) Tag() MessageTag { return TransferTag }

func (m *Mint) String() string {
	return fmt.Sprintf("mint %s", m.Amount)
}

func (t *Transfer) String() string {
	return fmt.Sprintf("transfer %s to %s", t.Amount, t.To)
}

// EncodeScale implements scale codec interface.
func (m *Mint) EncodeScale(e *scale.Encoder) (int, error) {
	return encodeAmount(e, m.Amount)
}

// DecodeScale implements scale codec interface.
func (m *Mint) DecodeScale(d *scale.Decoder) (int, error) {
	amount, n, err := decodeAmount(d)
	if err != nil {
		return n, err
	}
	m.Amount = amount
	return n, nil
}

// EncodeScale implements scale codec interface.
func (t *Transfer) EncodeScale(e *scale.Encoder) (int, error) {
	total, err := t.To.EncodeScale(e)
	if err != nil {
		return total, err
	}
	n, err := encodeAmount(e, t.Amount)
	return total + n, err
}

// DecodeScale implements scale codec interface.
func (t *Transfer) DecodeScale(d *scale.Decoder) (int, error) {
	total, err := t.To.DecodeScale(d)
	if err != nil {
		return total, err
	}
	amount, n, err := decodeAmount(d)
	total += n
	if err != nil {
		return total, err
	}
	t.Amount = amount
	return total, nil
}

func encodeAmount(e *scale.Encoder, a Amount) (int, error) {
	buf := codec.EncodeU64LE(uint64(a))
	return scale.EncodeByteArray(e, buf[:])
}

func decodeAmount(d *scale.Decoder) (Amount, int, error) {
	var buf [codec.U64Size]byte
	n, err := scale.DecodeByteArray(d, buf[:])
	if err != nil {
		return 0, n, err
	}
	v, err := codec.DecodeU64LE(buf[:])
	return Amount(v), n, err
}

// IsNilMessage reports whether msg is nil or a nil *Mint or *Transfer.
func IsNilMessage(msg TxMessage) bool {
	switch m := msg.(type) {
	case nil:
		return true
	case *Mint:
		return m == nil
	case *Transfer:
		return m == nil
	}
	return false
}

// EncodeMessage returns the wire form of msg: the tag followed by the variant body.
// Mint encodes to MintSize bytes and Transfer to TransferSize bytes.
// It panics when IsNilMessage(msg) is true.
func EncodeMessage(msg TxMessage) []byte {
	var b bytes.Buffer
	size, _ := msg.Tag().size()
	b.Grow(size)
	b.WriteByte(byte(msg.Tag()))
	if _, err := codec.EncodeTo(&b, msg); err != nil {
		// fixed size fields written to a bytes.Buffer
		panic(err)
	}
	return b.Bytes()
}

// DecodeMessage parses the wire form of a TxMessage. The tag is checked before
// the length, so a short buffer with an unknown tag fails with ErrUnknownVariant.
func DecodeMessage(buf []byte) (TxMessage, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrTruncatedMessage)
	}
	tag := MessageTag(buf[0])
	size, ok := tag.size()
	if !ok {
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownVariant, buf[0])
	}
	switch {
	case len(buf) < size:
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrTruncatedMessage, tag, size, len(buf))
	case len(buf) > size:
		return nil, fmt.Errorf("%w: %s needs %d bytes, got %d", ErrTrailingData, tag, size, len(buf))
	}
	var msg TxMessage
	switch tag {
	case MintTag:
		msg = &Mint{}
	case TransferTag:
		msg = &Transfer{}
	}
	if err := codec.Decode(buf[1:], msg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", tag, err)
	}
	return msg, nil
}
