// Package clienttest runs an in-memory pb.Node for tests.
package clienttest

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/gulfstream/seashell/api/client"
	"github.com/gulfstream/seashell/common/types"
)

// Node keeps a history of accepted transactions and the balances they imply.
// It does not check signatures or balances.
type Node struct {
	mu       sync.Mutex
	latest   types.Block
	history  []*types.Transaction
	balances map[types.Address]uint64
	// Err, when set, is returned by every call.
	Err error
}

var _ client.NodeServer = (*Node)(nil)

// NewNode creates a node whose head is at index.
func NewNode(index uint64) *Node {
	return &Node{
		latest:   types.Block{Index: index, Hash: []byte{byte(index)}},
		balances: map[types.Address]uint64{},
	}
}

// SetLatest moves the head of the chain.
func (n *Node) SetLatest(index uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.latest.Index = index
}

// Sent returns accepted transactions in order.
func (n *Node) Sent() []*types.Transaction {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]*types.Transaction(nil), n.history...)
}

// AddHistory appends a transaction to the history without applying it.
func (n *Node) AddHistory(tx *types.Transaction) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.history = append(n.history, tx)
}

func (n *Node) GetBalance(_ context.Context, addr []byte) (uint64, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return 0, n.Err
	}
	a, err := types.BytesToAddress(addr)
	if err != nil {
		return 0, status.Error(codes.InvalidArgument, err.Error())
	}
	return n.balances[a], nil
}

func (n *Node) GetHistory(context.Context) ([]*types.Transaction, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return nil, n.Err
	}
	return append([]*types.Transaction(nil), n.history...), nil
}

func (n *Node) GetLatestBlock(context.Context) (*types.Block, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return nil, n.Err
	}
	b := n.latest
	return &b, nil
}

func (n *Node) SendTransaction(_ context.Context, tx *types.Transaction) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return "", n.Err
	}
	if tx == nil {
		return "", status.Error(codes.InvalidArgument, "Empty Tx")
	}
	if tx.Blockheight != n.latest.Index+1 {
		return "", status.Errorf(codes.FailedPrecondition, "stale blockheight %d", tx.Blockheight)
	}
	msg, err := tx.Message()
	if err != nil {
		return "", status.Error(codes.InvalidArgument, err.Error())
	}
	switch m := msg.(type) {
	case *types.Mint:
		n.balances[tx.Payer] += uint64(m.Amount)
	case *types.Transfer:
		n.balances[tx.Payer] -= uint64(m.Amount)
		n.balances[m.To] += uint64(m.Amount)
	}
	n.history = append(n.history, tx)
	return "Tx " + tx.ID() + " inserted", nil
}

// Start serves node in-process and returns a client connected to it.
// Both are stopped when the test ends.
func Start(tb testing.TB, node client.NodeServer, opts ...client.Opt) *client.Client {
	tb.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := client.NewServer()
	client.RegisterNodeServer(srv, node)
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			tb.Errorf("serve: %v", err)
		}
	}()
	tb.Cleanup(srv.Stop)

	opts = append(opts, client.WithDialOptions(grpc.WithContextDialer(
		func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		},
	)))
	c, err := client.New("passthrough:///bufnet", opts...)
	if err != nil {
		tb.Fatalf("create client: %v", err)
	}
	tb.Cleanup(func() { _ = c.Close() })
	return c
}

// Listen serves node on a loopback tcp port and returns its address.
func Listen(tb testing.TB, node client.NodeServer) string {
	tb.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		tb.Fatalf("listen: %v", err)
	}
	srv := client.NewServer()
	client.RegisterNodeServer(srv, node)
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			tb.Errorf("serve: %v", err)
		}
	}()
	tb.Cleanup(srv.Stop)
	return lis.Addr().String()
}
