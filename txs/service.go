// Package txs submits transactions to a node and reads them back.
package txs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/sdk"
	"github.com/gulfstream/seashell/sdk/wallet"
	"github.com/gulfstream/seashell/signing"
)

// ErrNotFound is returned when no history entry matches an id.
var ErrNotFound = errors.New("transaction not found")

// Entry is a history transaction together with its decoded message.
type Entry struct {
	Tx *types.Transaction
	// Msg is nil when DecodeErr is set.
	Msg       types.TxMessage
	DecodeErr error
	// Verified reports whether the signature matches the payer.
	Verified bool
}

// Config is the config for Service.
type Config struct {
	Gas       uint64
	CacheSize int
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		Gas:       sdk.DefaultGas,
		CacheSize: DefaultCacheSize,
	}
}

// Opt for configuring Service.
type Opt func(*Service)

// WithConfig sets the config.
func WithConfig(cfg Config) Opt {
	return func(s *Service) {
		s.cfg = cfg
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithSigner sets the key transactions are signed with. Without a signer the
// service is read only.
func WithSigner(signer signing.Signer) Opt {
	return func(s *Service) {
		s.signer = signer
	}
}

// WithVerifier overrides the ed25519 verifier used for history entries.
func WithVerifier(verifier signing.Verifier) Opt {
	return func(s *Service) {
		s.verifier = verifier
	}
}

// Service builds, signs and submits transactions, and reads the node history.
type Service struct {
	logger   *zap.Logger
	cfg      Config
	node     nodeAPI
	blocks   blockSource
	signer   signing.Signer
	verifier signing.Verifier
	cache    *historyCache
}

// New creates a Service on top of node. blocks provides the blockheight new
// transactions are signed with.
func New(node nodeAPI, blocks blockSource, opts ...Opt) (*Service, error) {
	s := &Service{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		node:     node,
		blocks:   blocks,
		verifier: signing.NewEdVerifier(),
	}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := newHistoryCache(s.cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("history cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Transfer sends amount from the signer account to to.
func (s *Service) Transfer(ctx context.Context, to types.Address, amount types.Amount) (*types.Transaction, string, error) {
	return s.submit(ctx, &types.Transfer{To: to, Amount: amount})
}

// Mint requests amount of new Seashell for the signer account.
func (s *Service) Mint(ctx context.Context, amount types.Amount) (*types.Transaction, string, error) {
	return s.submit(ctx, &types.Mint{Amount: amount})
}

func (s *Service) submit(ctx context.Context, msg types.TxMessage) (*types.Transaction, string, error) {
	kind := msg.Tag().String()
	start := time.Now()
	bh, err := s.blocks.NextBlockheight(ctx)
	if err != nil {
		submitted.WithLabelValues(kind, outcomeFailed).Inc()
		return nil, "", fmt.Errorf("blockheight: %w", err)
	}
	tx, err := wallet.Sign(ctx, s.signer, bh, msg, sdk.WithGas(s.cfg.Gas))
	if err != nil {
		submitted.WithLabelValues(kind, outcomeFailed).Inc()
		return nil, "", err
	}
	ack, err := s.node.SendTransaction(ctx, tx)
	if err != nil {
		submitted.WithLabelValues(kind, outcomeRejected).Inc()
		s.logger.Warn("transaction not accepted",
			zap.Object("tx", tx),
			zap.Stringer("msg", msg),
			zap.Error(err),
		)
		return tx, "", fmt.Errorf("submit %s: %w", kind, err)
	}
	submitted.WithLabelValues(kind, outcomeAccepted).Inc()
	submitLatency.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	s.logger.Info("transaction submitted",
		zap.Object("tx", tx),
		zap.Stringer("msg", msg),
		zap.String("ack", ack),
	)
	return tx, ack, nil
}

// History returns every transaction known to the node in the order the node
// returned them. Entries that fail to decode are kept with DecodeErr set.
func (s *Service) History(ctx context.Context) ([]Entry, error) {
	history, err := s.node.GetHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	entries := make([]Entry, 0, len(history))
	for _, tx := range history {
		entries = append(entries, s.entry(tx))
	}
	return entries, nil
}

func (s *Service) entry(tx *types.Transaction) Entry {
	d, ok := s.cache.get(tx)
	if !ok {
		d.msg, d.err = tx.Message()
		if d.err != nil {
			decodeFailures.Inc()
			s.logger.Debug("undecodable history entry", zap.Object("tx", tx), zap.Error(d.err))
		}
		d.verified = wallet.Verify(s.verifier, tx)
		s.cache.add(tx, d)
	}
	return Entry{Tx: tx, Msg: d.msg, DecodeErr: d.err, Verified: d.verified}
}

// Find returns the history entry whose id is the base58 encoding of its signature.
func (s *Service) Find(ctx context.Context, id string) (Entry, error) {
	history, err := s.node.GetHistory(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("history: %w", err)
	}
	for _, tx := range history {
		if tx.ID() == id {
			return s.entry(tx), nil
		}
	}
	return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Balance returns the balance of addr.
func (s *Service) Balance(ctx context.Context, addr types.Address) (types.Amount, error) {
	balance, err := s.node.GetBalance(ctx, addr)
	if err != nil {
		return 0, fmt.Errorf("balance of %s: %w", addr.ShortString(), err)
	}
	return balance, nil
}
