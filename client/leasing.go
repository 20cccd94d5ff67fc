package client

import (
	"context"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

func (c *NodeClient) ActiveLeases(ctx context.Context, addr types.Address) ([]*transaction.LeaseInfo, error) {
	v, err := c.get(ctx, "/leasing/active/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, transaction.ParseLeaseInfo)
}

func (c *NodeClient) LeaseInfo(ctx context.Context, id types.ID) (*transaction.LeaseInfo, error) {
	v, err := c.get(ctx, "/leasing/info/"+id.String(), nil)
	if err != nil {
		return nil, err
	}
	return transaction.ParseLeaseInfo(v)
}

func (c *NodeClient) LeasesInfo(ctx context.Context, ids []types.ID) ([]*transaction.LeaseInfo, error) {
	v, err := c.post(ctx, "/leasing/info", jsonx.Object{"ids": idStrings(ids)})
	if err != nil {
		return nil, err
	}
	return parseEach(v, transaction.ParseLeaseInfo)
}
