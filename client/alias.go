package client

import (
	"context"
	"net/url"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

func (c *NodeClient) AliasesByAddress(ctx context.Context, addr types.Address) ([]types.Alias, error) {
	v, err := c.get(ctx, "/alias/by-address/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v, func(item jsonx.Value) (types.Alias, error) {
		s, err := item.String()
		if err != nil {
			return types.Alias{}, err
		}
		return types.NewAliasFromString(s)
	})
}

func (c *NodeClient) AddressByAlias(ctx context.Context, alias types.Alias) (types.Address, error) {
	v, err := c.get(ctx, "/alias/by-alias/"+url.PathEscape(alias.Name()), nil)
	if err != nil {
		return types.Address{}, err
	}
	return readAddress(v.Get("address"))
}
