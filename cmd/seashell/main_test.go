package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/gulfstream/seashell/api/client/clienttest"
	"github.com/gulfstream/seashell/codec"
	"github.com/gulfstream/seashell/common/types"
)

type cli struct {
	endpoint string
	keyFile  string
	node     *clienttest.Node
}

func newCLI(t *testing.T) *cli {
	node := clienttest.NewNode(7)
	return &cli{
		endpoint: clienttest.Listen(t, node),
		keyFile:  filepath.Join(t.TempDir(), "keys", "wallet.key"),
		node:     node,
	}
}

func (c *cli) run(ctx context.Context, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(afero.NewMemMapFs())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--endpoint", c.endpoint, "--key-file", c.keyFile, "--log-level", "error"))
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func (c *cli) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := c.run(context.Background(), args...)
	require.NoError(t, err, out)
	return out
}

func TestCLI_MintTransferHistory(t *testing.T) {
	c := newCLI(t)
	addr := strings.TrimSpace(c.mustRun(t, "keygen"))
	_, err := types.StringToAddress(addr)
	require.NoError(t, err)

	out := c.mustRun(t, "mint", "1000")
	require.Contains(t, out, "inserted")
	sent := c.node.Sent()
	require.Len(t, sent, 1)
	require.EqualValues(t, 8, sent[0].Blockheight)
	require.EqualValues(t, 5, sent[0].Gas)

	c.node.SetLatest(8)
	var to types.Address
	to[0] = 1
	c.mustRun(t, "transfer", to.String(), "250", "--gas", "6")
	sent = c.node.Sent()
	require.Len(t, sent, 2)
	require.EqualValues(t, 9, sent[1].Blockheight)
	require.EqualValues(t, 6, sent[1].Gas)

	require.Contains(t, c.mustRun(t, "balance"), "750 Seashell")
	require.Contains(t, c.mustRun(t, "balance", to.String()), "250 Seashell")

	history := c.mustRun(t, "history")
	require.Contains(t, history, "mint 1000 Seashell")
	require.Contains(t, history, "transfer 250 Seashell to "+to.String())
	require.NotContains(t, history, "INVALID")

	card := c.mustRun(t, "tx", sent[1].ID())
	require.Contains(t, card, "id:          "+sent[1].ID())
	require.Contains(t, card, "payer:       "+addr)
	require.Contains(t, card, "signature:   valid")
}

func TestCLI_Errors(t *testing.T) {
	c := newCLI(t)
	_, err := c.run(context.Background(), "mint", "1000")
	require.Error(t, err)

	c.mustRun(t, "keygen")
	_, err = c.run(context.Background(), "keygen")
	require.Error(t, err)

	_, err = c.run(context.Background(), "mint", "1.5")
	require.ErrorIs(t, err, codec.ErrOutOfRange)
	_, err = c.run(context.Background(), "transfer", "not-base58-0OIl", "1")
	require.ErrorIs(t, err, types.ErrDecodeBase58)
	_, err = c.run(context.Background(), "tx", "missing")
	require.Error(t, err)
	require.Empty(t, c.node.Sent())
}

func TestCLI_Decode(t *testing.T) {
	c := newCLI(t)
	msg := types.EncodeMessage(&types.Mint{Amount: 1000})
	require.Equal(t, "mint 1000 Seashell\n", c.mustRun(t, "decode", hex.EncodeToString(msg)))

	_, err := c.run(context.Background(), "decode", "0700")
	require.ErrorIs(t, err, types.ErrUnknownVariant)
}

func TestCLI_Latest(t *testing.T) {
	c := newCLI(t)
	require.Contains(t, c.mustRun(t, "latest"), "block 7 ")
}

func TestCLI_Watch(t *testing.T) {
	c := newCLI(t)
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	out, err := c.run(ctx, "watch", "--poll-interval", "20ms")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "block 7 "))
}
