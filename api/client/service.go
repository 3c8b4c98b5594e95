package client

import (
	"context"

	"google.golang.org/grpc"

	"github.com/gulfstream/seashell/common/types"
)

// NodeServer is the server side of pb.Node, for in-process nodes and tests.
type NodeServer interface {
	GetBalance(ctx context.Context, addr []byte) (uint64, error)
	GetHistory(ctx context.Context) ([]*types.Transaction, error)
	GetLatestBlock(ctx context.Context) (*types.Block, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) (string, error)
}

// NewServer returns a grpc server that speaks the pb.Node wire format.
func NewServer(opts ...grpc.ServerOption) *grpc.Server {
	return grpc.NewServer(append(opts, grpc.ForceServerCodec(Codec{}))...)
}

// RegisterNodeServer registers srv on s. s must use Codec, see NewServer.
func RegisterNodeServer(s *grpc.Server, srv NodeServer) {
	s.RegisterService(&serviceDesc, srv)
}

func handlerGetBalance(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(getBalanceRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	balance, err := srv.(NodeServer).GetBalance(ctx, req.address)
	if err != nil {
		return nil, err
	}
	return &getBalanceResponse{balance: balance}, nil
}

func handlerGetHistory(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	if err := dec(&empty{}); err != nil {
		return nil, err
	}
	txs, err := srv.(NodeServer).GetHistory(ctx)
	if err != nil {
		return nil, err
	}
	return &transactionHistory{transactions: txs}, nil
}

func handlerGetLatestBlock(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	if err := dec(&empty{}); err != nil {
		return nil, err
	}
	block, err := srv.(NodeServer).GetLatestBlock(ctx)
	if err != nil {
		return nil, err
	}
	return &latestBlockResponse{block: block}, nil
}

func handlerSendTransaction(srv any, ctx context.Context, dec func(any) error, _ grpc.UnaryServerInterceptor) (any, error) {
	req := new(sendTransactionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	msg, err := srv.(NodeServer).SendTransaction(ctx, req.tx)
	if err != nil {
		return nil, err
	}
	return &genericResponse{message: msg}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*NodeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetBalance", Handler: handlerGetBalance},
		{MethodName: "GetHistory", Handler: handlerGetHistory},
		{MethodName: "GetLatestBlock", Handler: handlerGetLatestBlock},
		{MethodName: "SendTransaction", Handler: handlerSendTransaction},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pb.proto",
}
