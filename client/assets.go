package client

import (
	"context"
	"net/url"

	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

func (c *NodeClient) AssetsBalance(ctx context.Context, addr types.Address) ([]AssetBalance, error) {
	v, err := c.get(ctx, "/assets/balance/"+addr.String(), nil)
	if err != nil {
		return nil, err
	}
	return parseEach(v.Get("balances"), parseAssetBalance)
}

func (c *NodeClient) AssetBalance(ctx context.Context, addr types.Address, asset types.AssetID) (uint64, error) {
	v, err := c.get(ctx, "/assets/balance/"+addr.String()+"/"+asset.String(), nil)
	if err != nil {
		return 0, err
	}
	return v.Get("balance").Uint64()
}

func (c *NodeClient) AssetDetails(ctx context.Context, asset types.AssetID) (*AssetDetails, error) {
	v, err := c.get(ctx, "/assets/details/"+asset.String(), url.Values{"full": {"true"}})
	if err != nil {
		return nil, err
	}
	return parseAssetDetails(v)
}

func (c *NodeClient) AssetsDetails(ctx context.Context, assets []types.AssetID) ([]*AssetDetails, error) {
	ids := make([]string, len(assets))
	for i, a := range assets {
		ids[i] = a.String()
	}
	v, err := c.post(ctx, "/assets/details", jsonx.Object{"ids": ids})
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseAssetDetails)
}

// NFT lists up to limit NFTs owned by addr, starting after the given asset when set.
func (c *NodeClient) NFT(ctx context.Context, addr types.Address, limit uint32, after *types.AssetID) ([]*AssetDetails, error) {
	var query url.Values
	if after != nil {
		query = url.Values{"after": {after.String()}}
	}
	v, err := c.get(ctx, "/assets/nft/"+addr.String()+"/limit/"+pathUint(uint64(limit)), query)
	if err != nil {
		return nil, err
	}
	return parseEach(v, parseAssetDetails)
}

func (c *NodeClient) AssetDistribution(ctx context.Context, asset types.AssetID, height, limit uint32, after *types.Address) (*AssetDistribution, error) {
	var query url.Values
	if after != nil {
		query = url.Values{"after": {after.String()}}
	}
	path := "/assets/" + asset.String() + "/distribution/" + pathUint(uint64(height)) + "/limit/" + pathUint(uint64(limit))
	v, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	d := &AssetDistribution{}
	if d.HasNext, err = v.Get("hasNext").OptBool(false); err != nil {
		return nil, err
	}
	if d.LastItem, err = readOptionalAddress(v.Get("lastItem")); err != nil {
		return nil, err
	}
	items := v.Get("items")
	if items.IsNull() {
		return d, nil
	}
	holders, err := items.Keys()
	if err != nil {
		return nil, err
	}
	for _, holder := range holders {
		addr, err := types.NewAddressFromString(holder)
		if err != nil {
			return nil, err
		}
		balance, err := items.Get(holder).Uint64()
		if err != nil {
			return nil, err
		}
		d.Items = append(d.Items, AssetHolder{Address: addr, Balance: balance})
	}
	return d, nil
}

func parseAssetBalance(v jsonx.Value) (AssetBalance, error) {
	var b AssetBalance
	var err error
	if b.AssetID, err = readAssetID(v.Get("assetId")); err != nil {
		return b, err
	}
	if b.Balance, err = v.Get("balance").Uint64(); err != nil {
		return b, err
	}
	if b.Reissuable, err = v.Get("reissuable").OptBool(false); err != nil {
		return b, err
	}
	if b.MinSponsoredAssetFee, err = readOptionalUint64(v.Get("minSponsoredAssetFee")); err != nil {
		return b, err
	}
	if b.SponsorBalance, err = readOptionalUint64(v.Get("sponsorBalance")); err != nil {
		return b, err
	}
	if b.Quantity, err = v.Get("quantity").OptUint64(0); err != nil {
		return b, err
	}
	if issue := v.Get("issueTransaction"); !issue.IsNull() {
		if b.IssueTransaction, err = parseSigned(issue); err != nil {
			return b, err
		}
	}
	return b, nil
}

func parseAssetDetails(v jsonx.Value) (*AssetDetails, error) {
	d := &AssetDetails{}
	var err error
	if d.AssetID, err = readAssetID(v.Get("assetId")); err != nil {
		return nil, err
	}
	if d.IssueHeight, err = readUint32(v.Get("issueHeight")); err != nil {
		return nil, err
	}
	if d.IssueTimestamp, err = v.Get("issueTimestamp").Uint64(); err != nil {
		return nil, err
	}
	if d.Issuer, err = readAddress(v.Get("issuer")); err != nil {
		return nil, err
	}
	if d.IssuerPublicKey, err = readPublicKey(v.Get("issuerPublicKey")); err != nil {
		return nil, err
	}
	if d.Name, err = v.Get("name").String(); err != nil {
		return nil, err
	}
	if d.Description, _, err = v.Get("description").OptString(); err != nil {
		return nil, err
	}
	decimals, err := v.Get("decimals").Uint64()
	if err != nil {
		return nil, err
	}
	d.Decimals = uint8(decimals)
	if d.Reissuable, err = v.Get("reissuable").OptBool(false); err != nil {
		return nil, err
	}
	if d.Quantity, err = v.Get("quantity").Uint64(); err != nil {
		return nil, err
	}
	if d.Scripted, err = v.Get("scripted").OptBool(false); err != nil {
		return nil, err
	}
	if d.MinSponsoredAssetFee, err = readOptionalUint64(v.Get("minSponsoredAssetFee")); err != nil {
		return nil, err
	}
	if d.OriginTransactionID, err = readOptionalID(v.Get("originTransactionId")); err != nil {
		return nil, err
	}
	if sd := v.Get("scriptDetails"); !sd.IsNull() {
		details := &AssetScriptDetails{}
		if details.Complexity, err = sd.Get("scriptComplexity").OptUint64(0); err != nil {
			return nil, err
		}
		if details.Script, err = readScript(sd.Get("script")); err != nil {
			return nil, err
		}
		if details.ScriptText, _, err = sd.Get("scriptText").OptString(); err != nil {
			return nil, err
		}
		d.ScriptDetails = details
	}
	return d, nil
}
