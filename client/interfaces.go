package client

import (
	"context"
	"time"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

// Requestor performs one HTTP exchange and decodes the JSON response.
// Implementations must be safe for concurrent use.
type Requestor interface {
	Get(ctx context.Context, url string) (jsonx.Value, error)
	Post(ctx context.Context, url string, body interface{}) (jsonx.Value, error)
	PostText(ctx context.Context, url string, text string) (jsonx.Value, error)
}

// NodeAPI is the subset of the node client used by the CLI and the tracker.
type NodeAPI interface {
	Height(ctx context.Context) (uint32, error)
	Balance(ctx context.Context, addr types.Address) (uint64, error)
	Broadcast(ctx context.Context, tx *transaction.SignedTransaction) (*transaction.SignedTransaction, error)
	TransactionInfo(ctx context.Context, id types.ID) (*transaction.TransactionInfo, error)
	WaitForTransaction(ctx context.Context, id types.ID, poll, timeout time.Duration) (*transaction.TransactionInfo, error)
}

var (
	_ Requestor = (*HTTPRequestor)(nil)
	_ NodeAPI   = (*NodeClient)(nil)
	_ Waiter    = (*NodeClient)(nil)
)
