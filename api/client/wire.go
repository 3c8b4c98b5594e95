package client

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gulfstream/seashell/common/types"
)

// Field numbers of pb.proto, package pb.
const (
	txBlockheight protowire.Number = 1
	txGas         protowire.Number = 2
	txMsg         protowire.Number = 3
	txPayer       protowire.Number = 4
	txSignature   protowire.Number = 5

	blockIndex        protowire.Number = 1
	blockHash         protowire.Number = 2
	blockTransactions protowire.Number = 3
	blockPrevHash     protowire.Number = 4
	blockNonce        protowire.Number = 5

	// every request and response below carries a single field.
	singleField protowire.Number = 1
)

var errWireType = errors.New("unexpected wire type")

// wireMessage is implemented by every message exchanged with pb.Node.
type wireMessage interface {
	marshal() []byte
	unmarshal([]byte) error
}

// fieldFunc consumes the value of one field and returns the number of bytes
// read. Returning 0 leaves the field to be skipped as unknown.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func consumeFields(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		n, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func consumeVarint(typ protowire.Type, b []byte, dst *uint64) (int, error) {
	if typ != protowire.VarintType {
		return 0, fmt.Errorf("%w %d", errWireType, typ)
	}
	v, n := protowire.ConsumeVarint(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = v
	return n, nil
}

func consumeBytes(typ protowire.Type, b []byte, dst *[]byte) (int, error) {
	if typ != protowire.BytesType {
		return 0, fmt.Errorf("%w %d", errWireType, typ)
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = append([]byte(nil), v...)
	return n, nil
}

func consumeMessage(typ protowire.Type, b []byte, dst wireMessage) (int, error) {
	var raw []byte
	n, err := consumeBytes(typ, b, &raw)
	if err != nil {
		return 0, err
	}
	return n, dst.unmarshal(raw)
}

// proto3 omits fields holding the default value.
func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBytes(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendMessage(b []byte, num protowire.Number, m wireMessage) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.marshal())
}

// transaction is pb.Transaction.
type transaction struct {
	tx types.Transaction
}

func (t *transaction) marshal() []byte {
	var b []byte
	b = appendVarint(b, txBlockheight, t.tx.Blockheight)
	b = appendVarint(b, txGas, t.tx.Gas)
	b = appendBytes(b, txMsg, t.tx.Msg)
	b = appendBytes(b, txPayer, t.tx.Payer[:])
	return appendBytes(b, txSignature, t.tx.Signature)
}

func (t *transaction) unmarshal(b []byte) error {
	var payer []byte
	err := consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case txBlockheight:
			return consumeVarint(typ, b, &t.tx.Blockheight)
		case txGas:
			return consumeVarint(typ, b, &t.tx.Gas)
		case txMsg:
			return consumeBytes(typ, b, &t.tx.Msg)
		case txPayer:
			return consumeBytes(typ, b, &payer)
		case txSignature:
			return consumeBytes(typ, b, &t.tx.Signature)
		}
		return 0, nil
	})
	if err != nil {
		return err
	}
	t.tx.Payer, err = types.BytesToAddress(payer)
	if err != nil {
		return fmt.Errorf("payer: %w", err)
	}
	return nil
}

// block is pb.Block.
type block struct {
	block types.Block
}

func (m *block) marshal() []byte {
	var b []byte
	b = appendVarint(b, blockIndex, m.block.Index)
	b = appendBytes(b, blockHash, m.block.Hash)
	for _, tx := range m.block.Transactions {
		b = appendMessage(b, blockTransactions, &transaction{tx: *tx})
	}
	b = appendBytes(b, blockPrevHash, m.block.PreviousHash)
	return appendVarint(b, blockNonce, m.block.Nonce)
}

func (m *block) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case blockIndex:
			return consumeVarint(typ, b, &m.block.Index)
		case blockHash:
			return consumeBytes(typ, b, &m.block.Hash)
		case blockTransactions:
			var tx transaction
			n, err := consumeMessage(typ, b, &tx)
			if err != nil {
				return 0, err
			}
			m.block.Transactions = append(m.block.Transactions, &tx.tx)
			return n, nil
		case blockPrevHash:
			return consumeBytes(typ, b, &m.block.PreviousHash)
		case blockNonce:
			return consumeVarint(typ, b, &m.block.Nonce)
		}
		return 0, nil
	})
}

// empty is GetHistoryRequest and GetLatestBlockRequest.
type empty struct{}

func (empty) marshal() []byte { return nil }

func (empty) unmarshal(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) {
		return 0, nil
	})
}

// getBalanceRequest is pb.GetBalanceRequest.
type getBalanceRequest struct {
	address []byte
}

func (r *getBalanceRequest) marshal() []byte {
	return appendBytes(nil, singleField, r.address)
}

func (r *getBalanceRequest) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == singleField {
			return consumeBytes(typ, b, &r.address)
		}
		return 0, nil
	})
}

// getBalanceResponse is pb.GetBalanceResponse.
type getBalanceResponse struct {
	balance uint64
}

func (r *getBalanceResponse) marshal() []byte {
	return appendVarint(nil, singleField, r.balance)
}

func (r *getBalanceResponse) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == singleField {
			return consumeVarint(typ, b, &r.balance)
		}
		return 0, nil
	})
}

// transactionHistory is pb.TransactionHistory.
type transactionHistory struct {
	transactions []*types.Transaction
}

func (h *transactionHistory) marshal() []byte {
	var b []byte
	for _, tx := range h.transactions {
		b = appendMessage(b, singleField, &transaction{tx: *tx})
	}
	return b
}

func (h *transactionHistory) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != singleField {
			return 0, nil
		}
		var tx transaction
		n, err := consumeMessage(typ, b, &tx)
		if err != nil {
			return 0, err
		}
		h.transactions = append(h.transactions, &tx.tx)
		return n, nil
	})
}

// latestBlockResponse is pb.GetLatestBlockResponse.
type latestBlockResponse struct {
	block *types.Block
}

func (r *latestBlockResponse) marshal() []byte {
	if r.block == nil {
		return nil
	}
	return appendMessage(nil, singleField, &block{block: *r.block})
}

func (r *latestBlockResponse) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != singleField {
			return 0, nil
		}
		var m block
		n, err := consumeMessage(typ, b, &m)
		if err != nil {
			return 0, err
		}
		r.block = &m.block
		return n, nil
	})
}

// sendTransactionRequest is pb.SendTransactionRequest.
type sendTransactionRequest struct {
	tx *types.Transaction
}

func (r *sendTransactionRequest) marshal() []byte {
	if r.tx == nil {
		return nil
	}
	return appendMessage(nil, singleField, &transaction{tx: *r.tx})
}

func (r *sendTransactionRequest) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != singleField {
			return 0, nil
		}
		var tx transaction
		n, err := consumeMessage(typ, b, &tx)
		if err != nil {
			return 0, err
		}
		r.tx = &tx.tx
		return n, nil
	})
}

// genericResponse is pb.GenericResponse.
type genericResponse struct {
	message string
}

func (r *genericResponse) marshal() []byte {
	if r.message == "" {
		return nil
	}
	b := protowire.AppendTag(nil, singleField, protowire.BytesType)
	return protowire.AppendString(b, r.message)
}

func (r *genericResponse) unmarshal(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != singleField {
			return 0, nil
		}
		var raw []byte
		n, err := consumeBytes(typ, b, &raw)
		r.message = string(raw)
		return n, err
	})
}
