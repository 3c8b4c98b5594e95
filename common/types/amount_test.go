package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gulfstream/seashell/codec"
	"github.com/gulfstream/seashell/common/types"
)

func TestParseAmount(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want types.Amount
		err  error
	}{
		{src: "0"},
		{src: "1000", want: 1000},
		{src: " 42 ", want: 42},
		{src: "18446744073709551615", want: 18446744073709551615},
		{src: "18446744073709551616", err: codec.ErrOutOfRange},
		{src: "-1", err: codec.ErrOutOfRange},
		{src: "1.5", err: codec.ErrOutOfRange},
		{src: "abc", err: types.ErrInvalidAmount},
		{src: "", err: types.ErrInvalidAmount},
	} {
		t.Run(tc.src, func(t *testing.T) {
			got, err := types.ParseAmount(tc.src)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestAmountString(t *testing.T) {
	require.Equal(t, "7 Seashell", types.Amount(7).String())
}
