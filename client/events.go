package client

import (
	"sync"
	"time"

	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

// TrackerEvent is the terminal outcome of waiting on one transaction.
type TrackerEvent interface {
	Type() string
	Timestamp() time.Time
	TxID() string
}

// TransactionConfirmed is published when the node returns the transaction info.
type TransactionConfirmed struct {
	id        types.ID
	info      *transaction.TransactionInfo
	timestamp time.Time
}

func NewTransactionConfirmed(id types.ID, info *transaction.TransactionInfo) *TransactionConfirmed {
	return &TransactionConfirmed{id: id, info: info, timestamp: time.Now()}
}

func (e *TransactionConfirmed) Type() string                       { return "TransactionConfirmed" }
func (e *TransactionConfirmed) Timestamp() time.Time               { return e.timestamp }
func (e *TransactionConfirmed) TxID() string                       { return e.id.String() }
func (e *TransactionConfirmed) Info() *transaction.TransactionInfo { return e.info }

// TransactionWaitFailed is published when waiting timed out or was cancelled.
type TransactionWaitFailed struct {
	id        types.ID
	err       error
	timestamp time.Time
}

func NewTransactionWaitFailed(id types.ID, err error) *TransactionWaitFailed {
	return &TransactionWaitFailed{id: id, err: err, timestamp: time.Now()}
}

func (e *TransactionWaitFailed) Type() string         { return "TransactionWaitFailed" }
func (e *TransactionWaitFailed) Timestamp() time.Time { return e.timestamp }
func (e *TransactionWaitFailed) TxID() string         { return e.id.String() }
func (e *TransactionWaitFailed) Err() error           { return e.err }

// EventBus fans tracker events out to per-transaction subscribers.
type EventBus struct {
	subscribers map[string][]chan TrackerEvent
	mu          sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan TrackerEvent),
	}
}

// Subscribe subscribes to events for a transaction id
func (eb *EventBus) Subscribe(txID string) chan TrackerEvent {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan TrackerEvent, 1)
	eb.subscribers[txID] = append(eb.subscribers[txID], ch)
	return ch
}

// Unsubscribe removes and closes a subscription.
func (eb *EventBus) Unsubscribe(txID string, ch chan TrackerEvent) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[txID]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[txID] = append(subs[:i], subs[i+1:]...)
			close(ch)
			if len(eb.subscribers[txID]) == 0 {
				delete(eb.subscribers, txID)
			}
			return
		}
	}
}

// Publish delivers event to every subscriber of its transaction without blocking.
func (eb *EventBus) Publish(event TrackerEvent) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[event.TxID()] {
		select {
		case ch <- event:
		default:
			logx.Warn("TRACKER", "subscriber channel full for tx ", event.TxID())
		}
	}
}

func (eb *EventBus) SubscriberCount(txID string) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers[txID])
}
