package blockwatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"

	"github.com/gulfstream/seashell/common/types"
	"github.com/gulfstream/seashell/log/logtest"
)

type tester struct {
	*Watcher
	source *MockblockSource
	clock  clockwork.FakeClock
}

func newTester(t *testing.T) *tester {
	ctrl := gomock.NewController(t)
	source := NewMockblockSource(ctrl)
	clock := clockwork.NewFakeClock()
	return &tester{
		Watcher: New(source, WithLogger(logtest.New(t)), WithClock(clock), WithInterval(time.Second)),
		source:  source,
		clock:   clock,
	}
}

func receive(t *testing.T, ch <-chan *types.Block) *types.Block {
	t.Helper()
	select {
	case block, ok := <-ch:
		require.True(t, ok, "channel closed")
		return block
	case <-time.After(2 * time.Second):
		require.FailNow(t, "timed out waiting for block")
	}
	return nil
}

func TestWatcher_Run(t *testing.T) {
	tr := newTester(t)
	gomock.InOrder(
		tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: 1}, nil),
		tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: 2}, nil),
	)
	_, err := tr.NextBlockheight(context.Background())
	require.ErrorIs(t, err, ErrNoBlock)

	sub := tr.Subscribe()
	ctx, cancel := context.WithCancel(context.Background())
	var eg errgroup.Group
	eg.Go(func() error { return tr.Run(ctx) })

	require.EqualValues(t, 1, receive(t, sub).Index)
	tr.clock.BlockUntil(1)
	tr.clock.Advance(time.Second)
	require.EqualValues(t, 2, receive(t, sub).Index)

	next, err := tr.NextBlockheight(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, next)

	cancel()
	require.NoError(t, eg.Wait())
	_, ok := <-sub
	require.False(t, ok)
}

func TestWatcher_SubscribeAfterRun(t *testing.T) {
	tr := newTester(t)
	tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: 1}, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, tr.Run(ctx))

	sub := tr.Subscribe()
	select {
	case _, ok := <-sub:
		require.False(t, ok)
	case <-time.After(time.Second):
		require.FailNow(t, "subscription after Run is not closed")
	}
}

func TestWatcher_PollFailureIsNotFatal(t *testing.T) {
	tr := newTester(t)
	before := testutil.ToFloat64(pollFailures)
	gomock.InOrder(
		tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, errors.New("unavailable")),
		tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: 7}, nil),
	)

	sub := tr.Subscribe()
	ctx, cancel := context.WithCancel(context.Background())
	var eg errgroup.Group
	eg.Go(func() error { return tr.Run(ctx) })

	tr.clock.BlockUntil(1)
	tr.clock.Advance(time.Second)
	require.EqualValues(t, 7, receive(t, sub).Index)
	require.Equal(t, before+1, testutil.ToFloat64(pollFailures))

	cancel()
	require.NoError(t, eg.Wait())
}

func TestWatcher_SameIndexNotRepublished(t *testing.T) {
	tr := newTester(t)
	tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: 3}, nil).Times(2)
	tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: 4}, nil)

	sub := tr.Subscribe()
	for range 3 {
		require.NoError(t, tr.Poll(context.Background()))
	}
	require.EqualValues(t, 3, receive(t, sub).Index)
	require.EqualValues(t, 4, receive(t, sub).Index)
	require.Empty(t, sub)
}

func TestWatcher_SlowSubscriberDoesNotBlock(t *testing.T) {
	tr := newTester(t)
	const polls = subscriberBuffer + 3
	for i := range polls {
		tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(&types.Block{Index: uint64(i)}, nil)
	}

	sub := tr.Subscribe()
	for range polls {
		require.NoError(t, tr.Poll(context.Background()))
	}
	require.Len(t, sub, subscriberBuffer)
	require.EqualValues(t, polls-1, tr.Latest().Index)
	require.EqualValues(t, 0, receive(t, sub).Index)
}

func TestWatcher_PollError(t *testing.T) {
	tr := newTester(t)
	errUnavailable := errors.New("unavailable")
	tr.source.EXPECT().GetLatestBlock(gomock.Any()).Return(nil, errUnavailable)
	require.ErrorIs(t, tr.Poll(context.Background()), errUnavailable)
	require.Nil(t, tr.Latest())
}
