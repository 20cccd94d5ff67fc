package client

import (
	"context"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

func (c *NodeClient) BalanceHistory(ctx context.Context, addr types.Address) ([]HistoryBalance, error) {
	v, err := c.get(ctx, "/debug/balances/history/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, func(item jsonx.Value) (HistoryBalance, error) {
		var h HistoryBalance
		var err error
		if h.Height, err = readUint32(item.Get("height")); err != nil {
			return h, err
		}
		h.Balance, err = item.Get("balance").Uint64()
		return h, err
	})
}

// Validate asks the node to dry-run tx against the current state.
func (c *NodeClient) Validate(ctx context.Context, tx *transaction.SignedTransaction) (*ValidationResult, error) {
	body, err := tx.JSON()
	if err != nil {
		return nil, err
	}
	v, err := c.post(ctx, "/debug/validate", body)
	if err != nil {
		return nil, err
	}
	r := &ValidationResult{}
	if r.Valid, err = v.Get("valid").Bool(); err != nil {
		return nil, err
	}
	if r.ValidationTime, err = v.Get("validationTime").OptUint64(0); err != nil {
		return nil, err
	}
	if r.Error, _, err = v.Get("error").OptString(); err != nil {
		return nil, err
	}
	return r, nil
}
