// Package codec holds the fixed-width numeric encoding used on the wire and
// helpers to encode and decode SCALE-encodable values.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/spacemeshos/go-scale"
)

// U64Size is the size of an encoded uint64.
const U64Size = 8

var (
	// ErrOutOfRange is returned when a value does not fit into an unsigned 64-bit integer.
	ErrOutOfRange = errors.New("value out of range")
	// ErrTruncated is returned when fewer than U64Size bytes are available.
	ErrTruncated = errors.New("truncated input")
)

// EncodeU64LE encodes n as 8 bytes, least significant byte first.
func EncodeU64LE(n uint64) [U64Size]byte {
	var buf [U64Size]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return buf
}

// AppendU64LE appends the little endian encoding of n to dst.
func AppendU64LE(dst []byte, n uint64) []byte {
	return binary.LittleEndian.AppendUint64(dst, n)
}

// DecodeU64LE decodes the first U64Size bytes of buf.
func DecodeU64LE(buf []byte) (uint64, error) {
	if len(buf) < U64Size {
		return 0, fmt.Errorf("%w: need %d bytes, got %d", ErrTruncated, U64Size, len(buf))
	}
	return binary.LittleEndian.Uint64(buf[:U64Size]), nil
}

// U64FromBig converts an arbitrary precision integer into uint64.
func U64FromBig(n *big.Int) (uint64, error) {
	if n == nil || n.Sign() < 0 || !n.IsUint64() {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, n)
	}
	return n.Uint64(), nil
}

// Encodable is implemented by types that carry their own SCALE encoder.
type Encodable = scale.Encodable

// Decodable is implemented by types that carry their own SCALE decoder.
type Decodable = scale.Decodable

// EncodeTo encodes value to a writer stream.
func EncodeTo(w io.Writer, value Encodable) (int, error) {
	n, err := value.EncodeScale(scale.NewEncoder(w))
	if err != nil {
		return n, fmt.Errorf("encode scale: %w", err)
	}
	return n, nil
}

// DecodeFrom decodes a value using data from a reader stream.
func DecodeFrom(r io.Reader, value Decodable) (int, error) {
	n, err := value.DecodeScale(scale.NewDecoder(r))
	if err != nil {
		return n, fmt.Errorf("decode scale: %w", err)
	}
	return n, nil
}

var encoderPool = sync.Pool{
	New: func() any {
		b := new(bytes.Buffer)
		b.Grow(64)
		return b
	},
}

func getEncoderBuffer() *bytes.Buffer {
	return encoderPool.Get().(*bytes.Buffer)
}

func putEncoderBuffer(b *bytes.Buffer) {
	b.Reset()
	encoderPool.Put(b)
}

// Encode value to a byte buffer.
func Encode(value Encodable) ([]byte, error) {
	b := getEncoderBuffer()
	defer putEncoderBuffer(b)
	if _, err := EncodeTo(b, value); err != nil {
		return nil, err
	}
	buf := make([]byte, b.Len())
	copy(buf, b.Bytes())
	return buf, nil
}

// MustEncode encodes value and panics on failure. Only for values whose
// encoder cannot fail, such as fixed size structures.
func MustEncode(value Encodable) []byte {
	buf, err := Encode(value)
	if err != nil {
		panic(err)
	}
	return buf
}

// Decode value from a byte buffer. Bytes left over after decoding are an error.
func Decode(buf []byte, value Decodable) error {
	r := bytes.NewReader(buf)
	if _, err := DecodeFrom(r, value); err != nil {
		return fmt.Errorf("decode from buffer: %w", err)
	}
	if r.Len() != 0 {
		return fmt.Errorf("decode from buffer: %d trailing bytes", r.Len())
	}
	return nil
}
