package client

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/gulfstream/seashell/common/types"
)

func TestTransactionWire_FieldNumbers(t *testing.T) {
	var payer types.Address
	payer[0] = 0x11
	tx := transaction{tx: types.Transaction{
		Blockheight: 300,
		Gas:         5,
		Msg:         []byte{0, 1, 0, 0, 0, 0, 0, 0, 0},
		Payer:       payer,
		Signature:   []byte{9, 9},
	}}

	var want []byte
	want = protowire.AppendTag(want, 1, protowire.VarintType)
	want = protowire.AppendVarint(want, 300)
	want = protowire.AppendTag(want, 2, protowire.VarintType)
	want = protowire.AppendVarint(want, 5)
	want = protowire.AppendTag(want, 3, protowire.BytesType)
	want = protowire.AppendBytes(want, tx.tx.Msg)
	want = protowire.AppendTag(want, 4, protowire.BytesType)
	want = protowire.AppendBytes(want, payer[:])
	want = protowire.AppendTag(want, 5, protowire.BytesType)
	want = protowire.AppendBytes(want, tx.tx.Signature)
	require.Equal(t, want, tx.marshal())
}

func TestTransactionWire_SkipsUnknownFields(t *testing.T) {
	var payer types.Address
	payer[31] = 1
	in := transaction{tx: types.Transaction{Blockheight: 2, Msg: []byte{0}, Payer: payer, Signature: []byte{1}}}
	b := in.marshal()
	b = protowire.AppendTag(b, 15, protowire.VarintType)
	b = protowire.AppendVarint(b, 77)
	b = protowire.AppendTag(b, 16, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))

	var out transaction
	require.NoError(t, out.unmarshal(b))
	require.Equal(t, in, out)
}

func TestTransactionWire_Errors(t *testing.T) {
	t.Run("short payer", func(t *testing.T) {
		b := protowire.AppendTag(nil, txPayer, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte{1, 2, 3})
		var out transaction
		require.ErrorIs(t, out.unmarshal(b), types.ErrInvalidAddress)
	})
	t.Run("wrong wire type", func(t *testing.T) {
		b := protowire.AppendTag(nil, txBlockheight, protowire.BytesType)
		b = protowire.AppendBytes(b, []byte{1})
		var out transaction
		require.ErrorIs(t, out.unmarshal(b), errWireType)
	})
	t.Run("truncated", func(t *testing.T) {
		b := protowire.AppendTag(nil, txMsg, protowire.BytesType)
		b = protowire.AppendVarint(b, 10)
		var out transaction
		require.Error(t, out.unmarshal(append(b, 1, 2)))
	})
}

func TestGetBalanceResponse_DefaultOmitted(t *testing.T) {
	require.Empty(t, (&getBalanceResponse{}).marshal())
	var out getBalanceResponse
	require.NoError(t, out.unmarshal(nil))
	require.Zero(t, out.balance)
}

func TestGenericResponse(t *testing.T) {
	in := genericResponse{message: "Tx inserted"}
	var out genericResponse
	require.NoError(t, out.unmarshal(in.marshal()))
	require.Equal(t, in, out)
}

func TestCodec_RejectsForeignTypes(t *testing.T) {
	_, err := Codec{}.Marshal("not a message")
	require.Error(t, err)
	require.Error(t, Codec{}.Unmarshal(nil, new(int)))
	require.Equal(t, "proto", Codec{}.Name())
}
