package client

import (
	"context"
	"time"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/logx"
	"github.com/mezonai/wavesgo/stringutil"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

const DefaultPollInterval = time.Second

// WaitForTransaction polls transactions/info/{id} every poll until the node returns the
// transaction. When timeout elapses the last polling error is returned. The first poll
// happens after one interval.
func (c *NodeClient) WaitForTransaction(ctx context.Context, id types.ID, poll, timeout time.Duration) (*transaction.TransactionInfo, error) {
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	deadline := time.Now().Add(timeout)
	timer := time.NewTimer(poll)
	defer timer.Stop()

	var lastErr error
	for attempt := 1; ; attempt++ {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(errors.KindIoError, ctx.Err(), "wait for transaction "+id.String())
		case <-timer.C:
		}

		info, err := c.TransactionInfo(ctx, id)
		if err == nil {
			logx.Debug("CLIENT", "transaction ", stringutil.Shorten(id.String()), " found after ", attempt, " polls")
			return info, nil
		}
		lastErr = err
		if !time.Now().Before(deadline) {
			logx.Warn("CLIENT", "gave up waiting for transaction ", stringutil.Shorten(id.String()), ": ", lastErr.Error())
			return nil, lastErr
		}
		timer.Reset(poll)
	}
}
