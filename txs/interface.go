package txs

import (
	"context"

	"github.com/gulfstream/seashell/common/types"
)

//go:generate mockgen -typed -package=txs -destination=./mocks.go -source=./interface.go

type nodeAPI interface {
	GetBalance(ctx context.Context, addr types.Address) (types.Amount, error)
	GetHistory(ctx context.Context) ([]*types.Transaction, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) (string, error)
}

type blockSource interface {
	NextBlockheight(ctx context.Context) (uint64, error)
}
