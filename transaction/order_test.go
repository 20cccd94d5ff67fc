package transaction

import (
	"testing"

	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAsset   = "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT"
	testMatcher = "8QUAqtTckM5B8gvcuP7mMswat9SjKUuafJMusEoSn1Gy"
)

func mustPublicKey(t *testing.T, s string) crypto.PublicKey {
	t.Helper()
	pk, err := crypto.NewPublicKeyFromBase58(s)
	require.NoError(t, err)
	return pk
}

func mustAsset(t *testing.T, s string) *types.AssetID {
	t.Helper()
	a, err := types.ParseOptionalAssetID(s)
	require.NoError(t, err)
	return a
}

func sampleOrderV3(t *testing.T) *OrderV3 {
	return &OrderV3{OrderBody: OrderBody{
		ChainID:          84,
		Timestamp:        1664244861345,
		SenderPublicKey:  mustPublicKey(t, "FarW7tFmnVJBsHUdDe9DMJcfUESh266UDmEm1vP6P2xE"),
		MatcherPublicKey: mustPublicKey(t, testMatcher),
		OrderType:        OrderSell,
		Amount:           types.NativeAmount(10000000000),
		Price:            types.NewAmount(15000000, mustAsset(t, testAsset)),
		Fee:              types.NativeAmount(10000000),
		Expiration:       1666750461345,
	}}
}

func sampleOrderV4(t *testing.T) *OrderV4 {
	asset := mustAsset(t, testAsset)
	return &OrderV4{
		OrderBody: OrderBody{
			ChainID:          84,
			Timestamp:        1666571041063,
			SenderPublicKey:  mustPublicKey(t, "BDSyopLzAjMYvQSm4XuMA2gtjP5TPoZMWQ1sxnzTE1Y8"),
			MatcherPublicKey: mustPublicKey(t, testMatcher),
			OrderType:        OrderBuy,
			Amount:           types.NativeAmount(660949620),
			Price:            types.NewAmount(15000000, asset),
			Fee:              types.NewAmount(99143, asset),
			Expiration:       1669080241063,
		},
		PriceMode: PriceModeAssetDecimals,
	}
}

func TestOrderV3ID(t *testing.T) {
	id, err := OrderID(sampleOrderV3(t))
	require.NoError(t, err)
	assert.Equal(t, "H2EaCndcFAETGaWkPifGdNBL3scaZ53Pgm4Ha4xvg9wb", id.String())
}

func TestOrderV4ID(t *testing.T) {
	id, err := OrderID(sampleOrderV4(t))
	require.NoError(t, err)
	assert.Equal(t, "3DCDNkx3iw9UBhKfQgibxrCes1uXPeMaexpgf5kQyz18", id.String())
}

func TestSignOrder(t *testing.T) {
	kp, err := crypto.NewKeyPair(testSeed, 0)
	require.NoError(t, err)

	for _, order := range []Order{sampleOrderV3(t), sampleOrderV4(t)} {
		order.Body().SenderPublicKey = kp.PublicKey
		signed, err := SignOrder(order, kp.PrivateKey)
		require.NoError(t, err)
		require.Len(t, signed.Proofs, 1)

		ok, err := signed.Verify()
		require.NoError(t, err)
		assert.True(t, ok, "order v%d", order.Version())
	}
}

func TestOrderJSONRoundTrip(t *testing.T) {
	kp, err := crypto.NewKeyPair(testSeed, 0)
	require.NoError(t, err)

	for _, order := range []Order{sampleOrderV3(t), sampleOrderV4(t)} {
		signed, err := SignOrder(order, kp.PrivateKey)
		require.NoError(t, err)

		obj, err := signed.JSON()
		require.NoError(t, err)
		v, err := jsonx.FromInterface(obj)
		require.NoError(t, err)

		parsed, err := ParseOrder(v, 84)
		require.NoError(t, err)
		assert.Equal(t, signed, parsed)

		id, err := signed.ID()
		require.NoError(t, err)
		assert.Equal(t, id.String(), obj["id"])
	}
}

func TestOrderJSONCarriesChain(t *testing.T) {
	kp, err := crypto.NewKeyPair(testSeed, 0)
	require.NoError(t, err)
	signed, err := SignOrder(sampleOrderV4(t), kp.PrivateKey)
	require.NoError(t, err)

	obj, err := signed.JSON()
	require.NoError(t, err)
	assert.Equal(t, 84, obj["chainId"])

	v, err := jsonx.FromInterface(obj)
	require.NoError(t, err)
	parsed, err := ParseOrder(v, 87)
	require.NoError(t, err)
	assert.Equal(t, types.ChainID(84), parsed.Order.Body().ChainID)
	assert.Equal(t, signed, parsed)
}

func TestMissingOrder(t *testing.T) {
	_, err := OrderID(nil)
	assert.ErrorIs(t, err, errors.ErrInvalidTransaction)

	var empty SignedOrder
	_, err = empty.JSON()
	assert.ErrorIs(t, err, errors.ErrInvalidTransaction)
	_, err = empty.Verify()
	assert.ErrorIs(t, err, errors.ErrInvalidTransaction)

	tx := &Transaction{Data: ExchangeTx{}, Version: 3, ChainID: types.Testnet}
	assert.NotPanics(t, func() {
		_, err = tx.BodyBytes()
	})
	assert.ErrorIs(t, err, errors.ErrInvalidTransaction)
}

func TestParseOrderLegacy(t *testing.T) {
	doc := jsonx.MustParse(`{
		"version": 3,
		"senderPublicKey": "FarW7tFmnVJBsHUdDe9DMJcfUESh266UDmEm1vP6P2xE",
		"matcherPublicKey": "8QUAqtTckM5B8gvcuP7mMswat9SjKUuafJMusEoSn1Gy",
		"assetPair": {"amountAsset": "WAVES", "priceAsset": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT"},
		"orderType": "sell",
		"amount": 10000000000,
		"price": 15000000,
		"timestamp": 1664244861345,
		"expiration": 1666750461345,
		"matcherFee": 10000000,
		"signature": "2VfUX",
		"extra": {"ignored": true}
	}`)
	signed, err := ParseOrder(doc, 84)
	require.NoError(t, err)
	assert.Equal(t, sampleOrderV3(t), signed.Order)
	require.Len(t, signed.Proofs, 1)

	id, err := signed.ID()
	require.NoError(t, err)
	assert.Equal(t, "H2EaCndcFAETGaWkPifGdNBL3scaZ53Pgm4Ha4xvg9wb", id.String())
}

func TestParseOrderErrors(t *testing.T) {
	_, err := ParseOrder(jsonx.MustParse(`{"version": 2}`), 84)
	assert.ErrorIs(t, err, errors.ErrUnsupportedOrderVersion)

	_, err = ParseOrder(jsonx.MustParse(`{"version": 9, "senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB"}`), 84)
	assert.ErrorIs(t, err, errors.ErrUnsupportedOrderVersion)

	_, err = ParseOrder(jsonx.MustParse(`{"version": "x"}`), 84)
	assert.ErrorIs(t, err, errors.ErrJSONParseError)
}

func TestDefaultExpiration(t *testing.T) {
	assert.Equal(t, uint64(1000+30*24*60*60*1000), DefaultExpiration(1000))
}
