package wallet

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/cosmos/btcutil/base58"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/gulfstream/seashell/codec"
	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/sdk"
	"github.com/gulfstream/seashell/signing"
	"github.com/gulfstream/seashell/signing/mocks"
)

func address(seed byte) types.Address {
	var addr types.Address
	for i := range addr {
		addr[i] = seed ^ byte(i)
	}
	return addr
}

func TestSigningPayload(t *testing.T) {
	to := address(0xaa)
	msg := &types.Transfer{To: to, Amount: 7}
	payload := SigningPayload(100, 5, msg)
	require.Len(t, payload, 57)

	bh := codec.EncodeU64LE(100)
	gas := codec.EncodeU64LE(5)
	var expected []byte
	expected = append(expected, bh[:]...)
	expected = append(expected, gas[:]...)
	expected = append(expected, types.EncodeMessage(msg)...)
	require.Equal(t, expected, payload)

	require.Equal(t, []byte{100, 0, 0, 0, 0, 0, 0, 0}, payload[:8])
	require.Equal(t, []byte{5, 0, 0, 0, 0, 0, 0, 0}, payload[8:16])
	require.Equal(t, byte(types.TransferTag), payload[16])
	require.Equal(t, to[:], payload[17:49])

	require.Len(t, SigningPayload(1, 1, &types.Mint{Amount: 1}), 25)
}

func TestSigningPayload_Deterministic(t *testing.T) {
	msg := &types.Transfer{To: address(1), Amount: 9}
	var eg errgroup.Group
	results := make([][]byte, 16)
	for i := range results {
		eg.Go(func() error {
			results[i] = SigningPayload(3, 4, msg)
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	for _, r := range results[1:] {
		require.Equal(t, results[0], r)
	}
}

func TestSignableText(t *testing.T) {
	payload := SigningPayload(100, 5, &types.Mint{Amount: 1000})
	text := SignableText(payload)
	require.Equal(t, base58.Encode(payload), string(text))
	require.Equal(t, payload, base58.Decode(string(text)))
}

func TestBuildEnvelope(t *testing.T) {
	payer := address(2)
	msg := &types.Mint{Amount: 1}

	tx, err := BuildEnvelope(10, 5, msg, payer[:], []byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, &types.Transaction{
		Blockheight: 10,
		Gas:         5,
		Msg:         types.EncodeMessage(msg),
		Payer:       payer,
		Signature:   []byte{1, 2},
	}, tx)

	_, err = BuildEnvelope(10, 5, msg, payer[:], nil)
	require.ErrorIs(t, err, ErrMissingSigner)

	_, err = BuildEnvelope(10, 5, msg, payer[:31], []byte{1})
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = BuildEnvelope(10, 5, nil, payer[:], []byte{1})
	require.ErrorIs(t, err, ErrNilMessage)

	var transfer *types.Transfer
	_, err = BuildEnvelope(10, 5, transfer, payer[:], []byte{1})
	require.ErrorIs(t, err, ErrNilMessage)
}

func TestSign(t *testing.T) {
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	to := address(3)

	tx, err := Transfer(context.Background(), signer, 100, to, 42)
	require.NoError(t, err)
	require.EqualValues(t, 100, tx.Blockheight)
	require.Equal(t, sdk.DefaultGas, tx.Gas)
	require.Equal(t, signer.PublicKey(), tx.Payer)
	require.True(t, Verify(signing.NewEdVerifier(), tx))

	msg, err := tx.Message()
	require.NoError(t, err)
	require.Equal(t, &types.Transfer{To: to, Amount: 42}, msg)

	// the signature covers the text form, not the raw payload
	payload := SigningPayload(100, sdk.DefaultGas, msg)
	require.True(t, signing.NewEdVerifier().Verify(signer.PublicKey(), SignableText(payload), tx.Signature))
	require.False(t, signing.NewEdVerifier().Verify(signer.PublicKey(), payload, tx.Signature))

	tampered := *tx
	tampered.Gas++
	require.False(t, Verify(signing.NewEdVerifier(), &tampered))
}

func TestMint_WithGas(t *testing.T) {
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	tx, err := Mint(context.Background(), signer, 1, 1000, sdk.WithGas(11))
	require.NoError(t, err)
	require.EqualValues(t, 11, tx.Gas)
	require.True(t, Verify(signing.NewEdVerifier(), tx))
}

func TestSign_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	signer := mocks.NewMockSigner(ctrl)

	_, err := Sign(context.Background(), nil, 1, &types.Mint{})
	require.ErrorIs(t, err, ErrMissingSigner)

	_, err = Sign(context.Background(), signer, 1, nil)
	require.ErrorIs(t, err, ErrNilMessage)

	var mint *types.Mint
	_, err = Sign(context.Background(), signer, 1, mint)
	require.ErrorIs(t, err, ErrNilMessage)

	rejected := errors.New("user rejected the request")
	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(nil, rejected)
	_, err = Sign(context.Background(), signer, 1, &types.Mint{Amount: 1})
	require.ErrorIs(t, err, ErrSigningFailed)
	require.ErrorIs(t, err, rejected)

	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).Return(nil, nil)
	signer.EXPECT().PublicKey().Return(address(1))
	_, err = Sign(context.Background(), signer, 1, &types.Mint{Amount: 1})
	require.ErrorIs(t, err, ErrMissingSigner)
}

func TestSign_UsesBlockheightAsGiven(t *testing.T) {
	const observed = 99
	ctrl := gomock.NewController(t)
	signer := mocks.NewMockSigner(ctrl)
	msg := &types.Transfer{To: address(4), Amount: 7}

	var signed []byte
	signer.EXPECT().Sign(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, text []byte) ([]byte, error) {
			signed = bytes.Clone(text)
			return []byte{1}, nil
		})
	signer.EXPECT().PublicKey().Return(address(5))

	tx, err := Sign(context.Background(), signer, observed+1, msg)
	require.NoError(t, err)
	require.EqualValues(t, 100, tx.Blockheight)

	payload := base58.Decode(string(signed))
	bh, err := codec.DecodeU64LE(payload)
	require.NoError(t, err)
	require.EqualValues(t, 100, bh)
	require.Equal(t, SigningPayload(100, sdk.DefaultGas, msg), payload)
}
