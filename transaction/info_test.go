package transaction

import (
	"testing"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const invokeInfoJSON = `{
	"type": 16,
	"id": "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j",
	"fee": 500000,
	"feeAssetId": null,
	"timestamp": 1700000000000,
	"version": 2,
	"chainId": 84,
	"sender": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
	"senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB",
	"proofs": ["2VfUX"],
	"dApp": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
	"payment": [{"amount": 1, "assetId": null}],
	"call": {"function": "deposit", "args": [{"type": "integer", "value": 42}]},
	"height": 1234,
	"applicationStatus": "succeeded",
	"stateChanges": {
		"data": [{"key": "k", "type": "string", "value": "v"}],
		"transfers": [{"address": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN", "asset": null, "amount": 10}],
		"issues": [{"assetId": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT", "name": "token", "description": "", "quantity": 100, "decimals": 2, "isReissuable": false, "compiledScript": null, "nonce": 0}],
		"reissues": [],
		"burns": [{"assetId": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT", "quantity": 5}],
		"sponsorFees": [],
		"leases": [{
			"id": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT",
			"originTransactionId": "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j",
			"sender": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
			"recipient": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
			"amount": 7,
			"height": 1234,
			"status": "active",
			"cancelHeight": null,
			"cancelTransactionId": null
		}],
		"leaseCancels": [],
		"invokes": [{
			"dApp": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
			"call": {"function": "inner", "args": []},
			"payment": [{"asset": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT", "amount": 3}],
			"stateChanges": {"data": [], "transfers": []}
		}]
	}
}`

func TestParseInvokeInfo(t *testing.T) {
	info, err := ParseTransactionInfo(jsonx.MustParse(invokeInfoJSON))
	require.NoError(t, err)
	assert.Equal(t, uint32(1234), info.Height)
	assert.Equal(t, StatusSucceeded, info.ApplicationStatus)
	assert.Equal(t, "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j", info.ID.String())

	invoke, err := InfoAs[InvokeScriptInfo](info.Data)
	require.NoError(t, err)
	assert.Equal(t, "deposit", invoke.Function.Name)
	require.NotNil(t, invoke.StateChanges)

	sc := invoke.StateChanges
	assert.Equal(t, []types.DataEntry{types.StringEntry{Key: "k", Value: "v"}}, sc.Data)
	require.Len(t, sc.Transfers, 1)
	assert.Equal(t, uint64(10), sc.Transfers[0].Amount.Value)
	require.Len(t, sc.Issues, 1)
	assert.Equal(t, uint8(2), sc.Issues[0].Decimals)
	assert.Empty(t, sc.Reissues)
	require.Len(t, sc.Burns, 1)
	require.Len(t, sc.Leases, 1)
	assert.Equal(t, LeaseActive, sc.Leases[0].Status)
	assert.Nil(t, sc.Leases[0].CancelHeight)
	assert.Nil(t, sc.Leases[0].CancelTransactionID)
	require.Len(t, sc.Invokes, 1)
	assert.Equal(t, "inner", sc.Invokes[0].Function.Name)
	assert.NotNil(t, sc.Invokes[0].Payments[0].AssetID)
	assert.Nil(t, sc.Error)

	_, err = InfoAs[IssueInfo](info.Data)
	assert.ErrorIs(t, err, errors.ErrWrongTransactionType)
}

func TestParseInfoDefaults(t *testing.T) {
	doc := jsonx.MustParse(`{
		"type": 9,
		"id": "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j",
		"fee": 100000,
		"timestamp": 1700000000000,
		"version": 3,
		"chainId": 84,
		"senderPublicKey": "8cj6YzvQPhSHGvnjupNTW8zrADTT8CMAAd2xTuej84gB",
		"proofs": [],
		"leaseId": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT",
		"height": 5,
		"lease": {
			"id": "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT",
			"originTransactionId": "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j",
			"sender": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
			"recipient": "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN",
			"amount": 7,
			"height": 4,
			"status": "canceled",
			"cancelHeight": 5,
			"cancelTransactionId": "9pVCGj4TJ26R69ivxvWkGEb63EymsCqxjWsstz4h1U7j"
		}
	}`)
	info, err := ParseTransactionInfo(doc)
	require.NoError(t, err)
	assert.Equal(t, StatusUnknown, info.ApplicationStatus)

	cancel, err := InfoAs[LeaseCancelInfo](info.Data)
	require.NoError(t, err)
	require.NotNil(t, cancel.Lease)
	assert.Equal(t, LeaseCanceled, cancel.Lease.Status)
	require.NotNil(t, cancel.Lease.CancelHeight)
	assert.Equal(t, uint32(5), *cancel.Lease.CancelHeight)
	assert.Equal(t, info.ID, cancel.Lease.CancelTransactionID)
}

func TestParseIssueAndMassTransferInfo(t *testing.T) {
	kp := testKeyPair(t)
	issue, err := New(types.Testnet, kp.PublicKey, IssueTx{Name: "token", Quantity: 10}).Sign(kp.PrivateKey)
	require.NoError(t, err)
	obj, err := issue.JSON()
	require.NoError(t, err)
	obj["height"] = 3
	v, err := jsonx.FromInterface(obj)
	require.NoError(t, err)

	info, err := ParseTransactionInfo(v)
	require.NoError(t, err)
	issueInfo, err := InfoAs[IssueInfo](info.Data)
	require.NoError(t, err)
	wantAsset, err := issue.IssueAssetID()
	require.NoError(t, err)
	assert.Equal(t, wantAsset, issueInfo.AssetID)

	mass, err := New(types.Testnet, kp.PublicKey, MassTransferTx{Transfers: []MassTransferItem{
		{Recipient: mustRecipient(t, testAddress), Amount: 4},
		{Recipient: mustRecipient(t, testAddress), Amount: 6},
	}}).Sign(kp.PrivateKey)
	require.NoError(t, err)
	obj, err = mass.JSON()
	require.NoError(t, err)
	v, err = jsonx.FromInterface(obj)
	require.NoError(t, err)

	info, err = ParseTransactionInfo(v)
	require.NoError(t, err)
	massInfo, err := InfoAs[MassTransferInfo](info.Data)
	require.NoError(t, err)
	assert.Equal(t, 2, massInfo.TransferCount)
	assert.Equal(t, uint64(10), massInfo.TotalAmount)

	transfer, err := sampleTransfer(t).Sign(kp.PrivateKey)
	require.NoError(t, err)
	obj, err = transfer.JSON()
	require.NoError(t, err)
	v, err = jsonx.FromInterface(obj)
	require.NoError(t, err)
	info, err = ParseTransactionInfo(v)
	require.NoError(t, err)
	_, err = InfoAs[TransferTx](info.Data)
	assert.NoError(t, err)
}
