package transaction

import (
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

// JSON is the node's representation of an unsigned transaction, as accepted by
// transactions/calculateFee.
func (t *Transaction) JSON() (jsonx.Object, error) {
	return (&SignedTransaction{Transaction: *t}).JSON()
}

// JSON is the node's representation of a signed transaction, as accepted by
// transactions/broadcast.
func (s *SignedTransaction) JSON() (jsonx.Object, error) {
	t := &s.Transaction
	if t.Data == nil {
		return nil, errors.New(errors.KindInvalidTransaction, "transaction has no data")
	}
	obj := jsonx.Object{
		"type":            int(t.TxType()),
		"version":         int(t.Version),
		"chainId":         int(t.ChainID),
		"senderPublicKey": t.SenderPublicKey.String(),
		"sender":          t.Sender().String(),
		"fee":             t.Fee.Value,
		"feeAssetId":      types.AssetIDJSON(t.Fee.AssetID),
		"timestamp":       t.Timestamp,
		"proofs":          proofsJSON(s.Proofs),
	}
	if id, err := s.ID(); err == nil {
		obj["id"] = id.String()
	}
	if err := writeDataJSON(obj, t.Data); err != nil {
		return nil, err
	}
	return obj, nil
}

func writeDataJSON(obj jsonx.Object, data TransactionData) error {
	switch d := data.(type) {
	case GenesisTx:
		obj["recipient"] = d.Recipient.String()
		obj["amount"] = d.Amount
	case PaymentTx:
		obj["recipient"] = d.Recipient.String()
		obj["amount"] = d.Amount
	case IssueTx:
		obj["name"] = d.Name
		obj["description"] = d.Description
		obj["quantity"] = d.Quantity
		obj["decimals"] = d.Decimals
		obj["reissuable"] = d.Reissuable
		obj["script"] = scriptJSON(d.Script)
	case TransferTx:
		obj["recipient"] = d.Recipient.String()
		obj["assetId"] = types.AssetIDJSON(d.Amount.AssetID)
		obj["amount"] = d.Amount.Value
		obj["attachment"] = d.Attachment.String()
	case ReissueTx:
		obj["assetId"] = d.AssetID.String()
		obj["quantity"] = d.Quantity
		obj["reissuable"] = d.Reissuable
	case BurnTx:
		obj["assetId"] = d.AssetID.String()
		obj["amount"] = d.Amount
	case ExchangeTx:
		order1, err := d.Order1.JSON()
		if err != nil {
			return err
		}
		order2, err := d.Order2.JSON()
		if err != nil {
			return err
		}
		obj["order1"] = order1
		obj["order2"] = order2
		obj["amount"] = d.Amount
		obj["price"] = d.Price
		obj["buyMatcherFee"] = d.BuyMatcherFee
		obj["sellMatcherFee"] = d.SellMatcherFee
	case LeaseTx:
		obj["recipient"] = d.Recipient.String()
		obj["amount"] = d.Amount
	case LeaseCancelTx:
		obj["leaseId"] = d.LeaseID.String()
	case CreateAliasTx:
		obj["alias"] = d.Alias.Name()
	case MassTransferTx:
		transfers := make([]jsonx.Object, 0, len(d.Transfers))
		for _, item := range d.Transfers {
			transfers = append(transfers, jsonx.Object{"recipient": item.Recipient.String(), "amount": item.Amount})
		}
		obj["assetId"] = types.AssetIDJSON(d.AssetID)
		obj["transfers"] = transfers
		obj["attachment"] = d.Attachment.String()
	case DataTx:
		obj["data"] = types.DataEntriesJSON(d.Entries)
	case SetScriptTx:
		obj["script"] = scriptJSON(d.Script)
	case SponsorFeeTx:
		obj["assetId"] = d.AssetID.String()
		if d.MinSponsoredAssetFee == 0 {
			obj["minSponsoredAssetFee"] = nil
		} else {
			obj["minSponsoredAssetFee"] = d.MinSponsoredAssetFee
		}
	case SetAssetScriptTx:
		obj["assetId"] = d.AssetID.String()
		obj["script"] = scriptJSON(d.Script)
	case InvokeScriptTx:
		obj["dApp"] = d.DApp.String()
		obj["call"] = d.Function.JSON()
		obj["payment"] = paymentsJSON(d.Payments)
	case UpdateAssetInfoTx:
		obj["assetId"] = d.AssetID.String()
		obj["name"] = d.Name
		obj["description"] = d.Description
	case EthereumTx:
		obj["bytes"] = common.EncodeHexWithPrefix(d.Bytes)
		obj["senderPublicKey"] = d.SenderPublicKey.String()
		obj["sender"] = d.Sender.String()
		obj["payload"] = ethereumPayloadJSON(d.Payload)
	default:
		return errors.Newf(errors.KindWrongTransactionType, "unsupported transaction data %T", data)
	}
	return nil
}

func ethereumPayloadJSON(p EthereumPayload) interface{} {
	switch payload := p.(type) {
	case EthereumTransfer:
		return jsonx.Object{
			"type":      payload.PayloadType(),
			"recipient": payload.Recipient.String(),
			"asset":     types.AssetIDJSON(payload.Asset),
			"amount":    payload.Amount,
		}
	case EthereumInvoke:
		return jsonx.Object{
			"type":    payload.PayloadType(),
			"dApp":    payload.DApp.String(),
			"call":    payload.Function.JSON(),
			"payment": paymentsJSON(payload.Payments),
		}
	default:
		return nil
	}
}

// ParseSignedTransaction reads any transaction the node returns. Unknown fields are ignored.
func ParseSignedTransaction(v jsonx.Value) (*SignedTransaction, error) {
	typ, err := readUint8(v.Get("type"))
	if err != nil {
		return nil, err
	}
	txType := TxType(typ)

	var t Transaction
	if t.Version, err = readUint8OrDefault(v.Get("version"), 1); err != nil {
		return nil, err
	}
	if txType != TxTypeGenesis && txType != TxTypeEthereum {
		if t.SenderPublicKey, err = readPublicKey(v.Get("senderPublicKey")); err != nil {
			return nil, err
		}
	}
	if t.ChainID, err = readChainID(v); err != nil {
		return nil, err
	}
	fee, err := v.Get("fee").OptUint64(0)
	if err != nil {
		return nil, err
	}
	feeAsset, err := readOptionalAssetID(v.Get("feeAssetId"))
	if err != nil {
		return nil, err
	}
	t.Fee = types.NewAmount(fee, feeAsset)
	if t.Timestamp, err = v.Get("timestamp").Uint64(); err != nil {
		return nil, err
	}
	if t.Data, err = parseData(v, txType, t.ChainID); err != nil {
		return nil, err
	}
	proofs, err := readProofs(v)
	if err != nil {
		return nil, err
	}
	return &SignedTransaction{Transaction: t, Proofs: proofs}, nil
}

func readUint8OrDefault(v jsonx.Value, def uint8) (uint8, error) {
	if v.IsNull() {
		return def, nil
	}
	return readUint8(v)
}

// readChainID falls back to the chain byte of "sender", then of "recipient" for genesis.
func readChainID(v jsonx.Value) (types.ChainID, error) {
	if c := v.Get("chainId"); !c.IsNull() {
		n, err := readUint8(c)
		return types.ChainID(n), err
	}
	for _, field := range []string{"sender", "recipient"} {
		s, ok, err := v.Get(field).OptString()
		if err != nil {
			return 0, err
		}
		if !ok {
			continue
		}
		addr, err := types.NewAddressFromString(s)
		if err != nil {
			return 0, err
		}
		return addr.ChainID(), nil
	}
	return 0, v.Get("chainId").Fail("chain id is missing and cannot be derived")
}

func parseData(v jsonx.Value, txType TxType, chain types.ChainID) (TransactionData, error) {
	switch txType {
	case TxTypeGenesis, TxTypePayment:
		recipient, err := readAddress(v.Get("recipient"))
		if err != nil {
			return nil, err
		}
		amount, err := v.Get("amount").Uint64()
		if err != nil {
			return nil, err
		}
		if txType == TxTypeGenesis {
			return GenesisTx{Recipient: recipient, Amount: amount}, nil
		}
		return PaymentTx{Recipient: recipient, Amount: amount}, nil
	case TxTypeIssue:
		return parseIssue(v)
	case TxTypeTransfer:
		return parseTransfer(v)
	case TxTypeReissue:
		return parseReissue(v)
	case TxTypeBurn:
		return parseBurn(v)
	case TxTypeExchange:
		return parseExchange(v, chain)
	case TxTypeLease:
		recipient, err := readRecipient(v.Get("recipient"))
		if err != nil {
			return nil, err
		}
		amount, err := v.Get("amount").Uint64()
		if err != nil {
			return nil, err
		}
		return LeaseTx{Recipient: recipient, Amount: amount}, nil
	case TxTypeLeaseCancel:
		id, err := readID(v.Get("leaseId"))
		if err != nil {
			return nil, err
		}
		return LeaseCancelTx{LeaseID: id}, nil
	case TxTypeCreateAlias:
		name, err := v.Get("alias").String()
		if err != nil {
			return nil, err
		}
		alias, err := types.NewAlias(chain, name)
		if err != nil {
			return nil, err
		}
		return CreateAliasTx{Alias: alias}, nil
	case TxTypeMassTransfer:
		return parseMassTransfer(v)
	case TxTypeData:
		entries, err := types.ParseDataEntries(v.Get("data"))
		if err != nil {
			return nil, err
		}
		return DataTx{Entries: entries}, nil
	case TxTypeSetScript:
		script, err := readScript(v.Get("script"))
		if err != nil {
			return nil, err
		}
		return SetScriptTx{Script: script}, nil
	case TxTypeSponsorFee:
		asset, err := readAssetID(v.Get("assetId"))
		if err != nil {
			return nil, err
		}
		minFee, err := v.Get("minSponsoredAssetFee").OptUint64(0)
		if err != nil {
			return nil, err
		}
		return SponsorFeeTx{AssetID: asset, MinSponsoredAssetFee: minFee}, nil
	case TxTypeSetAssetScript:
		asset, err := readAssetID(v.Get("assetId"))
		if err != nil {
			return nil, err
		}
		script, err := readScript(v.Get("script"))
		if err != nil {
			return nil, err
		}
		return SetAssetScriptTx{AssetID: asset, Script: script}, nil
	case TxTypeInvokeScript:
		return parseInvokeScript(v)
	case TxTypeUpdateAssetInfo:
		asset, err := readAssetID(v.Get("assetId"))
		if err != nil {
			return nil, err
		}
		name, err := v.Get("name").String()
		if err != nil {
			return nil, err
		}
		description, _, err := v.Get("description").OptString()
		if err != nil {
			return nil, err
		}
		return UpdateAssetInfoTx{AssetID: asset, Name: name, Description: description}, nil
	case TxTypeEthereum:
		return parseEthereum(v)
	default:
		return nil, v.Get("type").Fail("unknown transaction type")
	}
}

func parseIssue(v jsonx.Value) (TransactionData, error) {
	var d IssueTx
	var err error
	if d.Name, err = v.Get("name").String(); err != nil {
		return nil, err
	}
	if d.Description, _, err = v.Get("description").OptString(); err != nil {
		return nil, err
	}
	if d.Quantity, err = v.Get("quantity").Uint64(); err != nil {
		return nil, err
	}
	if d.Decimals, err = readUint8(v.Get("decimals")); err != nil {
		return nil, err
	}
	if d.Reissuable, err = v.Get("reissuable").OptBool(false); err != nil {
		return nil, err
	}
	if d.Script, err = readScript(v.Get("script")); err != nil {
		return nil, err
	}
	return d, nil
}

func parseTransfer(v jsonx.Value) (TransactionData, error) {
	recipient, err := readRecipient(v.Get("recipient"))
	if err != nil {
		return nil, err
	}
	asset, err := readOptionalAssetID(v.Get("assetId"))
	if err != nil {
		return nil, err
	}
	amount, err := v.Get("amount").Uint64()
	if err != nil {
		return nil, err
	}
	attachment, err := readBase58(v.Get("attachment"))
	if err != nil {
		return nil, err
	}
	return TransferTx{Recipient: recipient, Amount: types.NewAmount(amount, asset), Attachment: attachment}, nil
}

func parseReissue(v jsonx.Value) (TransactionData, error) {
	asset, err := readAssetID(v.Get("assetId"))
	if err != nil {
		return nil, err
	}
	quantity, err := v.Get("quantity").Uint64()
	if err != nil {
		return nil, err
	}
	reissuable, err := v.Get("reissuable").OptBool(false)
	if err != nil {
		return nil, err
	}
	return ReissueTx{AssetID: asset, Quantity: quantity, Reissuable: reissuable}, nil
}

// parseBurn accepts the legacy "quantity" name for the burnt amount.
func parseBurn(v jsonx.Value) (TransactionData, error) {
	asset, err := readAssetID(v.Get("assetId"))
	if err != nil {
		return nil, err
	}
	amountField := v.Get("amount")
	if !amountField.Exists() {
		amountField = v.Get("quantity")
	}
	amount, err := amountField.Uint64()
	if err != nil {
		return nil, err
	}
	return BurnTx{AssetID: asset, Amount: amount}, nil
}

func parseExchange(v jsonx.Value, chain types.ChainID) (TransactionData, error) {
	var d ExchangeTx
	order1, err := ParseOrder(v.Get("order1"), chain)
	if err != nil {
		return nil, err
	}
	order2, err := ParseOrder(v.Get("order2"), chain)
	if err != nil {
		return nil, err
	}
	d.Order1, d.Order2 = *order1, *order2
	if d.Amount, err = v.Get("amount").Uint64(); err != nil {
		return nil, err
	}
	if d.Price, err = v.Get("price").Uint64(); err != nil {
		return nil, err
	}
	if d.BuyMatcherFee, err = v.Get("buyMatcherFee").Uint64(); err != nil {
		return nil, err
	}
	if d.SellMatcherFee, err = v.Get("sellMatcherFee").Uint64(); err != nil {
		return nil, err
	}
	return d, nil
}

func parseMassTransfer(v jsonx.Value) (TransactionData, error) {
	asset, err := readOptionalAssetID(v.Get("assetId"))
	if err != nil {
		return nil, err
	}
	items, err := v.Get("transfers").Array()
	if err != nil {
		return nil, err
	}
	transfers := make([]MassTransferItem, 0, len(items))
	for _, item := range items {
		recipient, err := readRecipient(item.Get("recipient"))
		if err != nil {
			return nil, err
		}
		amount, err := item.Get("amount").Uint64()
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, MassTransferItem{Recipient: recipient, Amount: amount})
	}
	attachment, err := readBase58(v.Get("attachment"))
	if err != nil {
		return nil, err
	}
	return MassTransferTx{AssetID: asset, Transfers: transfers, Attachment: attachment}, nil
}

func parseInvokeScript(v jsonx.Value) (TransactionData, error) {
	dApp, err := readRecipient(v.Get("dApp"))
	if err != nil {
		return nil, err
	}
	function, err := ParseFunction(v.Get("call"))
	if err != nil {
		return nil, err
	}
	payments, err := readPayments(v.Get("payment"))
	if err != nil {
		return nil, err
	}
	return InvokeScriptTx{DApp: dApp, Function: function, Payments: payments}, nil
}

func parseEthereum(v jsonx.Value) (TransactionData, error) {
	var d EthereumTx
	var err error
	if d.ID, err = readOptionalID(v.Get("id")); err != nil {
		return nil, err
	}
	raw, _, err := v.Get("bytes").OptString()
	if err != nil {
		return nil, err
	}
	if d.Bytes, err = common.DecodeHex(raw); err != nil {
		return nil, err
	}
	if d.SenderPublicKey, err = readBase58(v.Get("senderPublicKey")); err != nil {
		return nil, err
	}
	if d.Sender, err = readAddress(v.Get("sender")); err != nil {
		return nil, err
	}
	payload := v.Get("payload")
	typ, err := payload.Get("type").String()
	if err != nil {
		return nil, err
	}
	switch typ {
	case "transfer":
		var p EthereumTransfer
		if p.Recipient, err = readAddress(payload.Get("recipient")); err != nil {
			return nil, err
		}
		if p.Asset, err = readOptionalAssetID(payload.Get("asset")); err != nil {
			return nil, err
		}
		if p.Amount, err = payload.Get("amount").Uint64(); err != nil {
			return nil, err
		}
		d.Payload = p
	case "invocation":
		var p EthereumInvoke
		if p.DApp, err = readAddress(payload.Get("dApp")); err != nil {
			return nil, err
		}
		if p.Function, err = ParseFunction(payload.Get("call")); err != nil {
			return nil, err
		}
		if p.Payments, err = readPayments(payload.Get("payment")); err != nil {
			return nil, err
		}
		if p.StateChanges, err = parseOptionalStateChanges(payload.Get("stateChanges")); err != nil {
			return nil, err
		}
		d.Payload = p
	default:
		return nil, payload.Get("type").Fail("unknown ethereum payload type")
	}
	return d, nil
}
