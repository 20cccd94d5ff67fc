package client

import (
	"context"
	"net/url"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/monitoring"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

// CalculateFee asks the node for the minimal fee of tx, including script surcharges.
func (c *NodeClient) CalculateFee(ctx context.Context, tx *transaction.Transaction) (types.Amount, error) {
	body, err := tx.JSON()
	if err != nil {
		return types.Amount{}, err
	}
	v, err := c.post(ctx, "/transactions/calculateFee", body)
	if err != nil {
		return types.Amount{}, err
	}
	amount, err := v.Get("feeAmount").Uint64()
	if err != nil {
		return types.Amount{}, err
	}
	asset, err := readOptionalAssetID(v.Get("feeAssetId"))
	if err != nil {
		return types.Amount{}, err
	}
	return types.NewAmount(amount, asset), nil
}

// Broadcast submits a signed transaction and returns the node's echo of it.
func (c *NodeClient) Broadcast(ctx context.Context, tx *transaction.SignedTransaction) (*transaction.SignedTransaction, error) {
	body, err := tx.JSON()
	if err != nil {
		return nil, err
	}
	v, err := c.post(ctx, "/transactions/broadcast", body)
	if err != nil {
		return nil, err
	}
	monitoring.IncreaseBroadcastCount()
	return transaction.ParseSignedTransaction(v)
}

func (c *NodeClient) TransactionInfo(ctx context.Context, id types.ID) (*transaction.TransactionInfo, error) {
	v, err := c.get(ctx, "/transactions/info/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	return transaction.ParseTransactionInfo(v)
}

// TransactionsByAddress returns up to limit transactions of addr, newest first, starting
// after the given id when set.
func (c *NodeClient) TransactionsByAddress(ctx context.Context, addr types.Address, limit uint32, after types.ID) ([]*transaction.TransactionInfo, error) {
	var query url.Values
	if len(after) > 0 {
		query = url.Values{"after": {after.String()}}
	}
	v, err := c.get(ctx, "/transactions/address/"+addr.String()+"/limit/"+pathUint(uint64(limit)), query)
	if err != nil {
		return nil, err
	}
	pages, err := v.Array()
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return []*transaction.TransactionInfo{}, nil
	}
	return parseEach(pages[0], transaction.ParseTransactionInfo)
}

func (c *NodeClient) TransactionStatus(ctx context.Context, id types.ID) (*TransactionStatus, error) {
	v, err := c.get(ctx, "/transactions/status", url.Values{"id": {id.String()}})
	if err != nil {
		return nil, err
	}
	statuses, err := parseEach(v, parseTransactionStatus)
	if err != nil {
		return nil, err
	}
	if len(statuses) == 0 {
		return nil, v.Fail("expected one status")
	}
	return statuses[0], nil
}

func (c *NodeClient) TransactionsStatus(ctx context.Context, ids []types.ID) ([]*TransactionStatus, error) {
	v, err := c.post(ctx, "/transactions/status", jsonx.Object{"ids": idStrings(ids)})
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseTransactionStatus)
}

func (c *NodeClient) Unconfirmed(ctx context.Context) ([]*transaction.SignedTransaction, error) {
	v, err := c.get(ctx, "/transactions/unconfirmed", nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseSigned)
}

func (c *NodeClient) UnconfirmedInfo(ctx context.Context, id types.ID) (*transaction.SignedTransaction, error) {
	v, err := c.get(ctx, "/transactions/unconfirmed/info/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	return parseSigned(v)
}

func (c *NodeClient) UnconfirmedSize(ctx context.Context) (uint32, error) {
	v, err := c.get(ctx, "/transactions/unconfirmed/size", nil)
	if err != nil {
		return 0, err
	}
	return readUint32(v.Get("size"))
}

func parseTransactionStatus(v jsonx.Value) (*TransactionStatus, error) {
	s := &TransactionStatus{ApplicationStatus: transaction.StatusUnknown}
	var err error
	if s.ID, err = readID(v.Get("id")); err != nil {
		return nil, err
	}
	status, err := v.Get("status").String()
	if err != nil {
		return nil, err
	}
	s.Status = TxStatus(status)
	height, err := v.Get("height").OptUint64(0)
	if err != nil {
		return nil, err
	}
	s.Height = uint32(height)
	confirmations, err := v.Get("confirmations").OptUint64(0)
	if err != nil {
		return nil, err
	}
	s.Confirmations = uint32(confirmations)
	if app, ok, err := v.Get("applicationStatus").OptString(); err != nil {
		return nil, err
	} else if ok {
		s.ApplicationStatus = transaction.ApplicationStatus(app)
	}
	return s, nil
}
