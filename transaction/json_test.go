package transaction

import (
	"testing"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, signed *SignedTransaction) *SignedTransaction {
	t.Helper()
	obj, err := signed.JSON()
	require.NoError(t, err)
	v, err := jsonx.FromInterface(obj)
	require.NoError(t, err)
	parsed, err := ParseSignedTransaction(v)
	require.NoError(t, err)
	return parsed
}

func TestJSONRoundTrip(t *testing.T) {
	kp := testKeyPair(t)
	asset := mustAsset(t, testAsset)
	alias, err := types.NewAlias(types.Testnet, "merry")
	require.NoError(t, err)
	order, err := SignOrder(sampleOrderV4(t), kp.PrivateKey)
	require.NoError(t, err)
	leaseID, err := types.NewIDFromString(testAsset)
	require.NoError(t, err)
	addr, err := types.NewAddressFromString(testAddress)
	require.NoError(t, err)

	tests := []struct {
		name string
		data TransactionData
	}{
		{"payment", PaymentTx{Recipient: addr, Amount: 7}},
		{"issue", IssueTx{Name: "token", Description: "d", Quantity: 1000, Decimals: 2, Reissuable: true, Script: []byte{1, 2, 3}}},
		{"issue without script", IssueTx{Name: "token", Quantity: 1}},
		{"transfer", TransferTx{Recipient: mustRecipient(t, testAddress), Amount: types.NewAmount(5, asset), Attachment: types.Base58String("memo")}},
		{"reissue", ReissueTx{AssetID: *asset, Quantity: 10, Reissuable: true}},
		{"burn", BurnTx{AssetID: *asset, Amount: 3}},
		{"exchange", ExchangeTx{Order1: *order, Order2: *order, Amount: 1, Price: 2, BuyMatcherFee: 3, SellMatcherFee: 4}},
		{"lease", LeaseTx{Recipient: types.NewRecipientFromAlias(alias), Amount: 9}},
		{"lease cancel", LeaseCancelTx{LeaseID: leaseID}},
		{"create alias", CreateAliasTx{Alias: alias}},
		{"mass transfer", MassTransferTx{AssetID: asset, Transfers: []MassTransferItem{
			{Recipient: mustRecipient(t, testAddress), Amount: 1},
			{Recipient: mustRecipient(t, "alias:T:merry"), Amount: 2},
		}, Attachment: types.Base58String("x")}},
		{"data", DataTx{Entries: []types.DataEntry{
			types.IntegerEntry{Key: "i", Value: -1},
			types.BooleanEntry{Key: "b", Value: true},
			types.BinaryEntry{Key: "bin", Value: []byte{0xFF}},
			types.StringEntry{Key: "s", Value: "v"},
			types.DeleteEntry{Key: "gone"},
		}}},
		{"set script", SetScriptTx{Script: []byte{0, 1}}},
		{"remove script", SetScriptTx{}},
		{"sponsor", SponsorFeeTx{AssetID: *asset, MinSponsoredAssetFee: 5}},
		{"cancel sponsor", SponsorFeeTx{AssetID: *asset}},
		{"set asset script", SetAssetScriptTx{AssetID: *asset, Script: []byte{9}}},
		{"invoke", InvokeScriptTx{
			DApp:     mustRecipient(t, testAddress),
			Function: Function{Name: "deposit", Args: []Arg{IntegerArg(1), ListArg{StringArg("a")}}},
			Payments: []types.Amount{types.NewAmount(1, asset), types.NativeAmount(2)},
		}},
		{"invoke default", InvokeScriptTx{
			DApp:     mustRecipient(t, "alias:T:merry"),
			Function: Function{Name: DefaultFunctionName},
			Payments: []types.Amount{},
		}},
		{"update asset info", UpdateAssetInfoTx{AssetID: *asset, Name: "name", Description: "desc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := New(types.Testnet, kp.PublicKey, tt.data).Sign(kp.PrivateKey)
			require.NoError(t, err)

			parsed := roundTrip(t, signed)
			assert.Equal(t, signed.Transaction, parsed.Transaction)
			assert.Equal(t, signed.Proofs, parsed.Proofs)

			want, err := signed.ID()
			require.NoError(t, err)
			got, err := parsed.ID()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestJSONShape(t *testing.T) {
	kp := testKeyPair(t)
	tx := New(types.Testnet, kp.PublicKey, InvokeScriptTx{DApp: mustRecipient(t, testAddress), Payments: []types.Amount{}})
	obj, err := tx.JSON()
	require.NoError(t, err)

	assert.Equal(t, 16, obj["type"])
	assert.Equal(t, int('T'), obj["chainId"])
	assert.Equal(t, testAddress, obj["sender"])
	assert.Nil(t, obj["feeAssetId"])
	assert.Nil(t, obj["call"])
	assert.Equal(t, []string{}, obj["proofs"])
	assert.Contains(t, obj, "id")

	issue, err := New(types.Testnet, kp.PublicKey, IssueTx{Name: "token", Script: []byte{1, 2, 3}}).JSON()
	require.NoError(t, err)
	assert.Equal(t, "AQID", issue["script"])

	sponsor, err := New(types.Testnet, kp.PublicKey, SponsorFeeTx{}).JSON()
	require.NoError(t, err)
	assert.Nil(t, sponsor["minSponsoredAssetFee"])
}

func TestParseLegacyTransfer(t *testing.T) {
	doc := jsonx.MustParse(`{
		"type": 4,
		"version": 2,
		"senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB",
		"sender": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
		"recipient": "alias:T:merry",
		"assetId": "WAVES",
		"amount": "100000000",
		"fee": 100000,
		"feeAsset": null,
		"timestamp": 1700000000000,
		"attachment": "",
		"signature": "2VfUX",
		"unknown": [1, 2, 3]
	}`)
	signed, err := ParseSignedTransaction(doc)
	require.NoError(t, err)
	assert.Equal(t, types.Testnet, signed.Transaction.ChainID)
	assert.Equal(t, uint8(2), signed.Transaction.Version)
	require.Len(t, signed.Proofs, 1)

	transfer, err := DataAs[TransferTx](signed.Transaction.Data)
	require.NoError(t, err)
	assert.True(t, transfer.Amount.IsNative())
	assert.Equal(t, uint64(100000000), transfer.Amount.Value)
	assert.True(t, transfer.Recipient.IsAlias())
	assert.Nil(t, transfer.Attachment)
}

func TestParseGenesis(t *testing.T) {
	doc := jsonx.MustParse(`{
		"type": 1,
		"id": "2VfUX",
		"fee": 0,
		"timestamp": 1465742577614,
		"signature": "2VfUX",
		"recipient": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
		"amount": 9999999500000000,
		"height": 1
	}`)
	signed, err := ParseSignedTransaction(doc)
	require.NoError(t, err)
	assert.Equal(t, types.Testnet, signed.Transaction.ChainID)
	assert.Equal(t, uint8(1), signed.Transaction.Version)

	id, err := signed.ID()
	require.NoError(t, err)
	assert.Equal(t, "2VfUX", id.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind errors.Kind
	}{
		{"missing type", `{}`, errors.KindJSONParseError},
		{"unknown type", `{"type": 99, "chainId": 84, "senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB", "timestamp": 1}`, errors.KindJSONParseError},
		{"bad fee", `{"type": 4, "chainId": 84, "senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB", "fee": true}`, errors.KindJSONParseError},
		{"bad key", `{"type": 4, "chainId": 84, "senderPublicKey": "0OIl"}`, errors.KindBase58Error},
		{"short key", `{"type": 4, "chainId": 84, "senderPublicKey": "2VfUX"}`, errors.KindInvalidBytesLength},
		{"no chain", `{"type": 4, "senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB"}`, errors.KindJSONParseError},
		{"bad alias", `{"type": 10, "chainId": 84, "senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB", "timestamp": 1, "alias": "UP"}`, errors.KindInvalidAliasName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSignedTransaction(jsonx.MustParse(tt.doc))
			require.Error(t, err)
			assert.Equal(t, tt.kind, errors.KindOf(err), err.Error())
		})
	}

	_, err := ParseSignedTransaction(jsonx.MustParse(`{"type": 4, "chainId": 84, "senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB", "fee": true}`))
	var e *errors.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "/fee", e.Field)
	assert.Equal(t, "true", e.JSON)
}

func TestEthereumTransaction(t *testing.T) {
	doc := jsonx.MustParse(`{
		"type": 18,
		"id": "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j",
		"fee": 100000,
		"feeAssetId": null,
		"timestamp": 1700000000000,
		"version": 1,
		"chainId": 84,
		"bytes": "0xf86b8201",
		"sender": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
		"senderPublicKey": "2VfUX",
		"height": 10,
		"applicationStatus": "succeeded",
		"payload": {"type": "transfer", "recipient": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN", "asset": null, "amount": 5}
	}`)
	signed, err := ParseSignedTransaction(doc)
	require.NoError(t, err)
	eth, err := DataAs[EthereumTx](signed.Transaction.Data)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xf8, 0x6b, 0x82, 0x01}, eth.Bytes)
	payload, ok := eth.Payload.(EthereumTransfer)
	require.True(t, ok)
	assert.Equal(t, uint64(5), payload.Amount)
	assert.Nil(t, payload.Asset)

	id, err := signed.ID()
	require.NoError(t, err)
	assert.Equal(t, "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j", id.String())

	_, err = signed.Transaction.BodyBytes()
	assert.ErrorIs(t, err, errors.ErrUnsupportedOperation)

	obj, err := signed.JSON()
	require.NoError(t, err)
	assert.Equal(t, "0xf86b8201", obj["bytes"])
	assert.Equal(t, "2VfUX", obj["senderPublicKey"])
	assert.Equal(t, testAddress, obj["sender"])
	assert.Equal(t, "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j", obj["id"])
}
