package client

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mezonai/wavesgo/exception"
	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/monitoring"
	"github.com/mezonai/wavesgo/stringutil"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

// Waiter is the part of the node client the tracker polls with.
type Waiter interface {
	WaitForTransaction(ctx context.Context, id types.ID, poll, timeout time.Duration) (*transaction.TransactionInfo, error)
}

// Outcome is the result of waiting on one transaction.
type Outcome struct {
	ID   types.ID
	Info *transaction.TransactionInfo
	Err  error
}

// Tracker waits on many broadcast transactions concurrently. Each id is polled by at most
// one goroutine no matter how many callers track it.
type Tracker struct {
	waiter  Waiter
	poll    time.Duration
	timeout time.Duration
	bus     *EventBus

	// pending maps transaction id to its cancel func
	pending      sync.Map
	pendingCount int64
}

func NewTracker(waiter Waiter, poll, timeout time.Duration) *Tracker {
	return &Tracker{
		waiter:  waiter,
		poll:    poll,
		timeout: timeout,
		bus:     NewEventBus(),
	}
}

// Events exposes the bus outcomes are published on.
func (t *Tracker) Events() *EventBus {
	return t.bus
}

// Track starts waiting on id in the background. Tracking an id that is already pending is a no-op.
func (t *Tracker) Track(ctx context.Context, id types.ID) {
	key := id.String()
	short := stringutil.Shorten(key)
	waitCtx, cancel := context.WithCancel(ctx)
	if _, loaded := t.pending.LoadOrStore(key, cancel); loaded {
		cancel()
		return
	}
	monitoring.SetPendingWaits(atomic.AddInt64(&t.pendingCount, 1))
	logx.Debug("TRACKER", "tracking transaction ", short)

	exception.SafeGo("tracker "+key, func() {
		defer cancel()
		info, err := t.waiter.WaitForTransaction(waitCtx, id, t.poll, t.timeout)
		t.remove(key)
		if err != nil {
			logx.Warn("TRACKER", "transaction ", short, " not confirmed: ", err.Error())
			t.bus.Publish(NewTransactionWaitFailed(id, err))
			return
		}
		logx.Info("TRACKER", "transaction ", short, " confirmed at height ", info.Height)
		t.bus.Publish(NewTransactionConfirmed(id, info))
	})
}

// Cancel stops waiting on id. Subscribers receive a TransactionWaitFailed.
func (t *Tracker) Cancel(id types.ID) {
	if cancel, ok := t.pending.Load(id.String()); ok {
		cancel.(context.CancelFunc)()
	}
}

func (t *Tracker) IsPending(id types.ID) bool {
	_, ok := t.pending.Load(id.String())
	return ok
}

func (t *Tracker) Pending() int64 {
	return atomic.LoadInt64(&t.pendingCount)
}

func (t *Tracker) remove(key string) {
	if _, ok := t.pending.LoadAndDelete(key); ok {
		monitoring.SetPendingWaits(atomic.AddInt64(&t.pendingCount, -1))
	}
}

// WaitAll tracks every id and blocks until each has an outcome. Outcomes keep the order of ids.
func (t *Tracker) WaitAll(ctx context.Context, ids []types.ID) []Outcome {
	subs := make([]chan TrackerEvent, len(ids))
	for i, id := range ids {
		subs[i] = t.bus.Subscribe(id.String())
	}
	for _, id := range ids {
		t.Track(ctx, id)
	}

	outcomes := make([]Outcome, len(ids))
	for i, id := range ids {
		outcomes[i] = Outcome{ID: id}
		select {
		case event := <-subs[i]:
			switch e := event.(type) {
			case *TransactionConfirmed:
				outcomes[i].Info = e.Info()
			case *TransactionWaitFailed:
				outcomes[i].Err = e.Err()
			}
		case <-ctx.Done():
			outcomes[i].Err = ctx.Err()
		}
		t.bus.Unsubscribe(id.String(), subs[i])
	}
	return outcomes
}
