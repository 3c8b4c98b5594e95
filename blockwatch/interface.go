package blockwatch

import (
	"context"

	"github.com/gulfstream/seashell/common/types"
)

//go:generate mockgen -typed -package=blockwatch -destination=./mocks.go -source=./interface.go

type blockSource interface {
	GetLatestBlock(ctx context.Context) (*types.Block, error)
}
