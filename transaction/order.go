package transaction

import (
	"time"

	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/proto"
	"github.com/mezonai/wavesgo/types"
)

// DefaultOrderLifetime is added to the order timestamp when no expiration is given.
const DefaultOrderLifetime = 30 * 24 * time.Hour

type OrderType byte

const (
	OrderBuy  OrderType = 0
	OrderSell OrderType = 1
)

func (t OrderType) String() string {
	if t == OrderSell {
		return "sell"
	}
	return "buy"
}

func parseOrderType(s string) (OrderType, bool) {
	switch s {
	case "buy":
		return OrderBuy, true
	case "sell":
		return OrderSell, true
	}
	return 0, false
}

type PriceMode byte

const (
	PriceModeDefault       PriceMode = 0
	PriceModeFixedDecimals PriceMode = 1
	PriceModeAssetDecimals PriceMode = 2
)

var priceModeNames = []string{"default", "fixedDecimals", "assetDecimals"}

func (m PriceMode) String() string {
	if int(m) < len(priceModeNames) {
		return priceModeNames[m]
	}
	return "default"
}

func parsePriceMode(s string) (PriceMode, bool) {
	for i, name := range priceModeNames {
		if name == s {
			return PriceMode(i), true
		}
	}
	return 0, false
}

// OrderBody holds the fields shared by every order version. Amount carries the amount asset
// and Price the price asset of the pair.
type OrderBody struct {
	ChainID          types.ChainID
	Timestamp        uint64
	SenderPublicKey  crypto.PublicKey
	MatcherPublicKey crypto.PublicKey
	OrderType        OrderType
	Amount           types.Amount
	Price            types.Amount
	Fee              types.Amount
	Expiration       uint64
}

// Order is either OrderV3 or OrderV4.
type Order interface {
	Version() uint8
	Body() *OrderBody
	// BodyBytes is what the sender signs and the id commits to.
	BodyBytes() ([]byte, error)
	isOrder()
}

// OrderV3 signs a legacy binary layout and has no protobuf form.
type OrderV3 struct {
	OrderBody
}

type OrderV4 struct {
	OrderBody
	PriceMode PriceMode
}

func (o *OrderV3) Version() uint8   { return 3 }
func (o *OrderV4) Version() uint8   { return 4 }
func (o *OrderV3) Body() *OrderBody { return &o.OrderBody }
func (o *OrderV4) Body() *OrderBody { return &o.OrderBody }
func (*OrderV3) isOrder()           {}
func (*OrderV4) isOrder()           {}

// DefaultExpiration returns timestamp plus the default lifetime, in milliseconds.
func DefaultExpiration(timestamp uint64) uint64 {
	return timestamp + uint64(DefaultOrderLifetime.Milliseconds())
}

func (o *OrderV3) BodyBytes() ([]byte, error) {
	w := common.NewByteWriter()
	w.PushByte(3)
	w.PushBytes(o.SenderPublicKey.Bytes())
	w.PushBytes(o.MatcherPublicKey.Bytes())
	pushOptionalAsset(w, o.Amount.AssetID)
	pushOptionalAsset(w, o.Price.AssetID)
	w.PushByte(byte(o.OrderType))
	w.PushInt64(int64(o.Price.Value))
	w.PushInt64(int64(o.Amount.Value))
	w.PushInt64(int64(o.Timestamp))
	w.PushInt64(int64(o.Expiration))
	w.PushInt64(int64(o.Fee.Value))
	pushOptionalAsset(w, o.Fee.AssetID)
	return w.Bytes(), nil
}

func pushOptionalAsset(w *common.ByteWriter, a *types.AssetID) {
	if a == nil {
		w.PushByte(0)
		return
	}
	w.PushByte(1)
	w.PushBytes(a[:])
}

func (o *OrderV4) BodyBytes() ([]byte, error) {
	e := proto.NewEncoder()
	o.writeProto(e, nil)
	return e.Bytes(), nil
}

func (o *OrderV4) writeProto(e *proto.Encoder, proofs []types.Proof) {
	e.Int32(1, int32(o.ChainID))
	e.BytesAlways(2, o.SenderPublicKey.Bytes())
	e.BytesField(3, o.MatcherPublicKey.Bytes())
	e.Message(4, func(pair *proto.Encoder) {
		pair.BytesField(1, types.AssetIDBytes(o.Amount.AssetID))
		pair.BytesField(2, types.AssetIDBytes(o.Price.AssetID))
	})
	e.Enum(5, int32(o.OrderType))
	e.Int64(6, int64(o.Amount.Value))
	e.Int64(7, int64(o.Price.Value))
	e.Int64(8, int64(o.Timestamp))
	e.Int64(9, int64(o.Expiration))
	e.Message(10, func(fee *proto.Encoder) {
		writeAmount(fee, o.Fee)
	})
	e.Int32(11, int32(o.Version()))
	for _, p := range proofs {
		e.BytesAlways(12, p)
	}
	e.Enum(14, int32(o.PriceMode))
}

// writeOrderProto emits an order inside an exchange transaction.
func writeOrderProto(e *proto.Encoder, o *SignedOrder) error {
	if o.Order == nil {
		return errMissingOrder
	}
	v4, ok := o.Order.(*OrderV4)
	if !ok {
		return errors.Newf(errors.KindUnsupportedOperation, "order version %d has no protobuf representation", o.Order.Version())
	}
	e.Message(5, func(sub *proto.Encoder) {
		v4.writeProto(sub, o.Proofs)
	})
	return nil
}

var errMissingOrder = errors.New(errors.KindInvalidTransaction, "order is missing")

// OrderID is Blake of the order body.
func OrderID(o Order) (types.ID, error) {
	if o == nil {
		return nil, errMissingOrder
	}
	body, err := o.BodyBytes()
	if err != nil {
		return nil, err
	}
	return types.ID(crypto.Blake(body)), nil
}

// OrderSender is the address of the order's sender.
func OrderSender(o Order) types.Address {
	b := o.Body()
	return types.NewAddressFromPublicKey(b.ChainID, b.SenderPublicKey)
}

// SignedOrder is an order with its proofs.
type SignedOrder struct {
	Order  Order
	Proofs []types.Proof
}

func SignOrder(o Order, sk crypto.PrivateKey) (*SignedOrder, error) {
	if o == nil {
		return nil, errMissingOrder
	}
	body, err := o.BodyBytes()
	if err != nil {
		return nil, err
	}
	sig, err := crypto.Sign(sk, body)
	if err != nil {
		return nil, err
	}
	return &SignedOrder{Order: o, Proofs: []types.Proof{sig.Bytes()}}, nil
}

func (s *SignedOrder) ID() (types.ID, error) {
	return OrderID(s.Order)
}

// Verify checks the first proof against the sender public key.
func (s *SignedOrder) Verify() (bool, error) {
	if s.Order == nil {
		return false, errMissingOrder
	}
	if len(s.Proofs) == 0 {
		return false, nil
	}
	body, err := s.Order.BodyBytes()
	if err != nil {
		return false, err
	}
	return crypto.Verify(s.Order.Body().SenderPublicKey, body, s.Proofs[0]), nil
}
