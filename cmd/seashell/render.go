package main

import (
	"fmt"
	"io"

	"github.com/cosmos/btcutil/base58"

	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/txs"
)

// printEntry renders a history entry as a card.
func printEntry(w io.Writer, entry txs.Entry) {
	tx := entry.Tx
	fmt.Fprintf(w, "id:          %s\n", tx.ID())
	fmt.Fprintf(w, "payer:       %s\n", tx.Payer)
	fmt.Fprintf(w, "blockheight: %d\n", tx.Blockheight)
	fmt.Fprintf(w, "gas:         %d\n", tx.Gas)
	if entry.DecodeErr != nil {
		fmt.Fprintf(w, "msg:         %x (%v)\n", tx.Msg, entry.DecodeErr)
	} else {
		fmt.Fprintf(w, "msg:         %s\n", entry.Msg)
	}
	status := "valid"
	if !entry.Verified {
		status = "INVALID"
	}
	fmt.Fprintf(w, "signature:   %s\n", status)
}

func printBlock(w io.Writer, block *types.Block) {
	fmt.Fprintf(w, "block %d hash=%s prev=%s nonce=%d txs=%d\n",
		block.Index,
		base58.Encode(block.Hash),
		base58.Encode(block.PreviousHash),
		block.Nonce,
		len(block.Transactions),
	)
}
