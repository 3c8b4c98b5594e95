// Package client is the gRPC client of the pb.Node service exposed by a
// Gulf Stream node.
package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	grpc_retry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/log"
)

const serviceName = "pb.Node"

// DefaultEndpoint is where a local node listens.
const DefaultEndpoint = "0.0.0.0:50051"

// ErrNoBlock is returned when the node answers GetLatestBlock without a block.
var ErrNoBlock = errors.New("node returned no block")

func fullMethod(name string) string {
	return "/" + serviceName + "/" + name
}

// Opt modifies Client.
type Opt func(*Client)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(timeout time.Duration) Opt {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetries sets how many times read calls are retried while the node is
// unavailable. SendTransaction is never retried.
func WithRetries(n uint) Opt {
	return func(c *Client) {
		c.retries = n
	}
}

// WithRateLimit bounds the rate of calls to the node. A zero limit disables it.
func WithRateLimit(limit rate.Limit, burst int) Opt {
	return func(c *Client) {
		if limit == 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithDialOptions appends grpc dial options.
func WithDialOptions(opts ...grpc.DialOption) Opt {
	return func(c *Client) {
		c.dialOpts = append(c.dialOpts, opts...)
	}
}

// Client is a long-lived connection to one node. It is safe for concurrent use
// and meant to be created once per process.
type Client struct {
	conn     *grpc.ClientConn
	logger   *zap.Logger
	timeout  time.Duration
	retries  uint
	limiter  *rate.Limiter
	dialOpts []grpc.DialOption
}

// New creates a client for endpoint. The connection is established lazily on
// the first call.
func New(endpoint string, opts ...Opt) (*Client, error) {
	c := &Client{
		logger:  zap.NewNop(),
		timeout: 10 * time.Second,
		retries: 3,
		dialOpts: []grpc.DialOption{
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dialOpts = append(c.dialOpts,
		grpc.WithDefaultCallOptions(grpc.ForceCodec(Codec{})),
		grpc.WithChainUnaryInterceptor(grpc_retry.UnaryClientInterceptor(
			grpc_retry.WithMax(c.retries),
			grpc_retry.WithCodes(codes.Unavailable),
			grpc_retry.WithBackoff(grpc_retry.BackoffLinear(50*time.Millisecond)),
		)),
	)
	conn, err := grpc.NewClient(endpoint, c.dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", endpoint, err)
	}
	c.conn = conn
	return c, nil
}

// Close terminates the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

func (c *Client) invoke(ctx context.Context, method string, req, resp wireMessage, opts ...grpc.CallOption) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}
	start := time.Now()
	err := c.conn.Invoke(ctx, fullMethod(method), req, resp, opts...)
	observeCall(method, start, err)
	if err != nil {
		c.logger.Debug("node call failed", zap.String("method", method), zap.Error(err))
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// GetBalance returns the balance of addr at the latest block.
func (c *Client) GetBalance(ctx context.Context, addr types.Address) (types.Amount, error) {
	var resp getBalanceResponse
	if err := c.invoke(ctx, "GetBalance", &getBalanceRequest{address: addr[:]}, &resp); err != nil {
		return 0, err
	}
	return types.Amount(resp.balance), nil
}

// GetHistory returns every transaction the node knows about.
func (c *Client) GetHistory(ctx context.Context) ([]*types.Transaction, error) {
	var resp transactionHistory
	if err := c.invoke(ctx, "GetHistory", empty{}, &resp); err != nil {
		return nil, err
	}
	return resp.transactions, nil
}

// GetLatestBlock returns the head of the chain.
func (c *Client) GetLatestBlock(ctx context.Context) (*types.Block, error) {
	var resp latestBlockResponse
	if err := c.invoke(ctx, "GetLatestBlock", empty{}, &resp); err != nil {
		return nil, err
	}
	if resp.block == nil {
		return nil, fmt.Errorf("GetLatestBlock: %w", ErrNoBlock)
	}
	return resp.block, nil
}

// SendTransaction submits a signed envelope and returns the node acknowledgement.
func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) (string, error) {
	if err := tx.Validate(); err != nil {
		return "", fmt.Errorf("invalid transaction: %w", err)
	}
	var resp genericResponse
	err := c.invoke(ctx, "SendTransaction", &sendTransactionRequest{tx: tx}, &resp, grpc_retry.Disable())
	if err != nil {
		return "", err
	}
	c.logger.Debug("transaction sent",
		log.ZBase58("id", tx.Signature),
		zap.String("ack", resp.message),
	)
	return resp.message, nil
}
