package types_test

import (
	"testing"

	"github.com/cosmos/btcutil/base58"
	"github.com/stretchr/testify/require"

	"github.com/gulfstream/seashell/common/types"
)

func TestTransaction_ID(t *testing.T) {
	tx := &types.Transaction{Signature: []byte{1, 2, 3}}
	require.Equal(t, base58.Encode([]byte{1, 2, 3}), tx.ID())
}

func TestTransaction_Validate(t *testing.T) {
	msg := &types.Transfer{To: testAddress(2), Amount: 9}
	tx := &types.Transaction{
		Blockheight: 10,
		Gas:         5,
		Msg:         types.EncodeMessage(msg),
		Payer:       testAddress(1),
		Signature:   []byte{1},
	}
	require.NoError(t, tx.Validate())
	decoded, err := tx.Message()
	require.NoError(t, err)
	require.Equal(t, msg, decoded)

	tx.Signature = nil
	require.ErrorIs(t, tx.Validate(), types.ErrEmptySignature)

	tx.Signature = []byte{1}
	tx.Msg = []byte{7}
	require.ErrorIs(t, tx.Validate(), types.ErrUnknownVariant)
}
