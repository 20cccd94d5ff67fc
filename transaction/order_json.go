package transaction

import (
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

// JSON is the node's representation of a signed order.
func (s *SignedOrder) JSON() (jsonx.Object, error) {
	id, err := s.ID()
	if err != nil {
		return nil, err
	}
	b := s.Order.Body()
	obj := jsonx.Object{
		"version":          s.Order.Version(),
		"id":               id.String(),
		"sender":           OrderSender(s.Order).String(),
		"senderPublicKey":  b.SenderPublicKey.String(),
		"matcherPublicKey": b.MatcherPublicKey.String(),
		"assetPair": jsonx.Object{
			"amountAsset": types.AssetIDJSON(b.Amount.AssetID),
			"priceAsset":  types.AssetIDJSON(b.Price.AssetID),
		},
		"orderType":         b.OrderType.String(),
		"amount":            b.Amount.Value,
		"price":             b.Price.Value,
		"timestamp":         b.Timestamp,
		"expiration":        b.Expiration,
		"matcherFee":        b.Fee.Value,
		"matcherFeeAssetId": types.AssetIDJSON(b.Fee.AssetID),
		"proofs":            proofsJSON(s.Proofs),
	}
	if v4, ok := s.Order.(*OrderV4); ok {
		obj["chainId"] = int(v4.ChainID)
		obj["priceMode"] = v4.PriceMode.String()
	}
	return obj, nil
}

// ParseOrder reads a signed order. The chain is taken from "chainId" when present, else
// from chainID.
func ParseOrder(v jsonx.Value, chainID types.ChainID) (*SignedOrder, error) {
	version, err := readUint8(v.Get("version"))
	if err != nil {
		return nil, err
	}
	if version != 3 && version != 4 {
		return nil, errors.Newf(errors.KindUnsupportedOrderVersion, errors.ErrMsgUnsupportedOrderVer, version)
	}
	body, err := parseOrderBody(v, chainID)
	if err != nil {
		return nil, err
	}
	var order Order
	switch version {
	case 3:
		order = &OrderV3{OrderBody: body}
	case 4:
		mode, err := readPriceMode(v.Get("priceMode"))
		if err != nil {
			return nil, err
		}
		order = &OrderV4{OrderBody: body, PriceMode: mode}
	default:
		return nil, errors.Newf(errors.KindUnsupportedOrderVersion, errors.ErrMsgUnsupportedOrderVer, version)
	}
	proofs, err := readProofs(v)
	if err != nil {
		return nil, err
	}
	return &SignedOrder{Order: order, Proofs: proofs}, nil
}

func parseOrderBody(v jsonx.Value, chainID types.ChainID) (OrderBody, error) {
	var b OrderBody
	var err error
	b.ChainID = chainID
	if c := v.Get("chainId"); !c.IsNull() {
		n, err := readUint8(c)
		if err != nil {
			return b, err
		}
		b.ChainID = types.ChainID(n)
	}
	if b.SenderPublicKey, err = readPublicKey(v.Get("senderPublicKey")); err != nil {
		return b, err
	}
	if b.MatcherPublicKey, err = readPublicKey(v.Get("matcherPublicKey")); err != nil {
		return b, err
	}
	pair := v.Get("assetPair")
	if !pair.IsObject() {
		return b, pair.Fail("expected asset pair object")
	}
	amountAsset, err := readOptionalAssetID(pair.Get("amountAsset"))
	if err != nil {
		return b, err
	}
	priceAsset, err := readOptionalAssetID(pair.Get("priceAsset"))
	if err != nil {
		return b, err
	}
	side, err := v.Get("orderType").String()
	if err != nil {
		return b, err
	}
	var ok bool
	if b.OrderType, ok = parseOrderType(side); !ok {
		return b, v.Get("orderType").Fail("expected buy or sell")
	}
	amount, err := v.Get("amount").Uint64()
	if err != nil {
		return b, err
	}
	price, err := v.Get("price").Uint64()
	if err != nil {
		return b, err
	}
	b.Amount = types.NewAmount(amount, amountAsset)
	b.Price = types.NewAmount(price, priceAsset)
	if b.Timestamp, err = v.Get("timestamp").Uint64(); err != nil {
		return b, err
	}
	if b.Expiration, err = v.Get("expiration").Uint64(); err != nil {
		return b, err
	}
	fee, err := v.Get("matcherFee").Uint64()
	if err != nil {
		return b, err
	}
	feeAsset, err := readOptionalAssetID(v.Get("matcherFeeAssetId"))
	if err != nil {
		return b, err
	}
	b.Fee = types.NewAmount(fee, feeAsset)
	return b, nil
}

// readPriceMode defaults to PriceModeDefault when absent.
func readPriceMode(v jsonx.Value) (PriceMode, error) {
	s, ok, err := v.OptString()
	if err != nil || !ok {
		return PriceModeDefault, err
	}
	mode, ok := parsePriceMode(s)
	if !ok {
		return PriceModeDefault, v.Fail("unknown price mode")
	}
	return mode, nil
}
