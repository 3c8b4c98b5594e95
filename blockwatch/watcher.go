// Package blockwatch keeps track of the head of the chain by polling the node.
package blockwatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/gulfstream/seashell/common/types"
)

// DefaultInterval is the period between two polls.
const DefaultInterval = 5 * time.Second

const subscriberBuffer = 4

// ErrNoBlock is returned before the first successful poll.
var ErrNoBlock = errors.New("no block observed yet")

// Opt is an option for Watcher.
type Opt func(*Watcher)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Opt {
	return func(w *Watcher) {
		w.logger = logger
	}
}

// WithInterval overrides DefaultInterval.
func WithInterval(interval time.Duration) Opt {
	return func(w *Watcher) {
		w.interval = interval
	}
}

// WithClock sets the clock used for the poll ticker.
func WithClock(clock clockwork.Clock) Opt {
	return func(w *Watcher) {
		w.clock = clock
	}
}

// Watcher polls the latest block until its context is cancelled.
type Watcher struct {
	logger   *zap.Logger
	clock    clockwork.Clock
	interval time.Duration
	source   blockSource

	mu     sync.Mutex
	latest *types.Block
	subs   []chan *types.Block
	closed bool
}

// New creates a Watcher reading from source.
func New(source blockSource, opts ...Opt) *Watcher {
	w := &Watcher{
		logger:   zap.NewNop(),
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
		source:   source,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls immediately and then every interval. It returns when ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	w.logger.Info("started block watcher", zap.Duration("interval", w.interval))
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		if err := w.Poll(ctx); err != nil && ctx.Err() == nil {
			pollFailures.Inc()
			w.logger.Warn("failed to poll latest block", zap.Error(err))
		}
		select {
		case <-ctx.Done():
			w.closeSubscribers()
			return nil
		case <-ticker.Chan():
		}
	}
}

// Poll fetches the latest block once and notifies subscribers when the head moved.
func (w *Watcher) Poll(ctx context.Context) error {
	block, err := w.source.GetLatestBlock(ctx)
	if err != nil {
		return err
	}
	w.update(block)
	return nil
}

func (w *Watcher) update(block *types.Block) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.latest != nil && w.latest.Index == block.Index {
		w.latest = block
		return
	}
	w.latest = block
	latestIndex.Set(float64(block.Index))
	w.logger.Debug("new latest block", zap.Object("block", block))
	for _, ch := range w.subs {
		select {
		case ch <- block:
		default:
		}
	}
}

// Latest returns the last observed block, or nil.
func (w *Watcher) Latest() *types.Block {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest
}

// NextBlockheight returns the blockheight a new transaction should be signed with.
func (w *Watcher) NextBlockheight(context.Context) (uint64, error) {
	latest := w.Latest()
	if latest == nil {
		return 0, ErrNoBlock
	}
	return latest.Index + 1, nil
}

// Subscribe returns a channel receiving every new head. Updates are dropped
// while the buffer is full. The channel is closed when Run returns, and is
// returned already closed once Run has returned.
func (w *Watcher) Subscribe() <-chan *types.Block {
	ch := make(chan *types.Block, subscriberBuffer)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		close(ch)
		return ch
	}
	w.subs = append(w.subs, ch)
	return ch
}

func (w *Watcher) closeSubscribers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		close(ch)
	}
	w.subs = nil
	w.closed = true
}
