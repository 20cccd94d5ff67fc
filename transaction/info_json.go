package transaction

import (
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

// ParseTransactionInfo reads transactions/info. A missing applicationStatus is StatusUnknown.
func ParseTransactionInfo(v jsonx.Value) (*TransactionInfo, error) {
	signed, err := ParseSignedTransaction(v)
	if err != nil {
		return nil, err
	}
	info := &TransactionInfo{Transaction: *signed, ApplicationStatus: StatusUnknown}
	if info.ID, err = readOptionalID(v.Get("id")); err != nil {
		return nil, err
	}
	if len(info.ID) == 0 {
		if info.ID, err = signed.ID(); err != nil {
			return nil, err
		}
	}
	height, err := v.Get("height").OptUint64(0)
	if err != nil {
		return nil, err
	}
	info.Height = uint32(height)
	if status, ok, err := v.Get("applicationStatus").OptString(); err != nil {
		return nil, err
	} else if ok {
		info.ApplicationStatus = ApplicationStatus(status)
	}
	if info.Data, err = parseDataInfo(v, signed.Transaction.Data, info.ID); err != nil {
		return nil, err
	}
	return info, nil
}

func parseDataInfo(v jsonx.Value, data TransactionData, id types.ID) (DataInfo, error) {
	switch d := data.(type) {
	case IssueTx:
		info := IssueInfo{IssueTx: d}
		assetField := v.Get("assetId")
		if assetField.IsNull() {
			asset, err := types.NewAssetIDFromBytes(id)
			if err != nil {
				return nil, err
			}
			info.AssetID = asset
			return info, nil
		}
		asset, err := readAssetID(assetField)
		if err != nil {
			return nil, err
		}
		info.AssetID = asset
		return info, nil
	case LeaseCancelTx:
		info := LeaseCancelInfo{LeaseCancelTx: d}
		if lease := v.Get("lease"); !lease.IsNull() {
			l, err := ParseLeaseInfo(lease)
			if err != nil {
				return nil, err
			}
			info.Lease = l
		}
		return info, nil
	case MassTransferTx:
		info := MassTransferInfo{MassTransferTx: d}
		count, err := v.Get("transferCount").OptUint64(uint64(len(d.Transfers)))
		if err != nil {
			return nil, err
		}
		info.TransferCount = int(count)
		var total uint64
		for _, t := range d.Transfers {
			total += t.Amount
		}
		if info.TotalAmount, err = v.Get("totalAmount").OptUint64(total); err != nil {
			return nil, err
		}
		return info, nil
	case InvokeScriptTx:
		changes, err := parseOptionalStateChanges(v.Get("stateChanges"))
		if err != nil {
			return nil, err
		}
		return InvokeScriptInfo{InvokeScriptTx: d, StateChanges: changes}, nil
	case EthereumTx:
		info := EthereumInfo{EthereumTx: d}
		if invoke, ok := d.Payload.(EthereumInvoke); ok {
			info.StateChanges = invoke.StateChanges
		}
		return info, nil
	default:
		return data, nil
	}
}

// ParseLeaseInfo reads leasing/info. Cancel fields are absent for active leases.
func ParseLeaseInfo(v jsonx.Value) (*LeaseInfo, error) {
	var l LeaseInfo
	var err error
	if l.ID, err = readID(v.Get("id")); err != nil {
		return nil, err
	}
	if l.OriginTransactionID, err = readOptionalID(v.Get("originTransactionId")); err != nil {
		return nil, err
	}
	if l.Sender, err = readAddress(v.Get("sender")); err != nil {
		return nil, err
	}
	if l.Recipient, err = readAddress(v.Get("recipient")); err != nil {
		return nil, err
	}
	if l.Amount, err = v.Get("amount").Uint64(); err != nil {
		return nil, err
	}
	height, err := v.Get("height").OptUint64(0)
	if err != nil {
		return nil, err
	}
	l.Height = uint32(height)
	status, _, err := v.Get("status").OptString()
	if err != nil {
		return nil, err
	}
	l.Status = LeaseStatus(status)
	if c := v.Get("cancelHeight"); !c.IsNull() {
		h, err := readUint32(c)
		if err != nil {
			return nil, err
		}
		l.CancelHeight = &h
	}
	if l.CancelTransactionID, err = readOptionalID(v.Get("cancelTransactionId")); err != nil {
		return nil, err
	}
	return &l, nil
}

func parseLeaseInfos(v jsonx.Value) ([]LeaseInfo, error) {
	items, err := v.OptArray()
	if err != nil {
		return nil, err
	}
	out := make([]LeaseInfo, 0, len(items))
	for _, item := range items {
		l, err := ParseLeaseInfo(item)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, nil
}

func parseOptionalStateChanges(v jsonx.Value) (*StateChanges, error) {
	if v.IsNull() {
		return nil, nil
	}
	return ParseStateChanges(v)
}

// ParseStateChanges reads the result of a script invocation, recursing into nested invokes.
func ParseStateChanges(v jsonx.Value) (*StateChanges, error) {
	var sc StateChanges
	var err error
	if data := v.Get("data"); !data.IsNull() {
		if sc.Data, err = types.ParseDataEntries(data); err != nil {
			return nil, err
		}
	}
	if sc.Transfers, err = parseEach(v.Get("transfers"), parseScriptTransfer); err != nil {
		return nil, err
	}
	if sc.Issues, err = parseEach(v.Get("issues"), parseScriptIssue); err != nil {
		return nil, err
	}
	if sc.Reissues, err = parseEach(v.Get("reissues"), parseScriptReissue); err != nil {
		return nil, err
	}
	if sc.Burns, err = parseEach(v.Get("burns"), parseScriptBurn); err != nil {
		return nil, err
	}
	if sc.SponsorFees, err = parseEach(v.Get("sponsorFees"), parseScriptSponsorFee); err != nil {
		return nil, err
	}
	if sc.Leases, err = parseLeaseInfos(v.Get("leases")); err != nil {
		return nil, err
	}
	if sc.LeaseCancels, err = parseLeaseInfos(v.Get("leaseCancels")); err != nil {
		return nil, err
	}
	if sc.Invokes, err = parseEach(v.Get("invokes"), parseScriptInvoke); err != nil {
		return nil, err
	}
	if e := v.Get("error"); !e.IsNull() {
		code, err := e.Get("code").Int()
		if err != nil {
			return nil, err
		}
		text, _, err := e.Get("text").OptString()
		if err != nil {
			return nil, err
		}
		sc.Error = &ScriptError{Code: code, Text: text}
	}
	return &sc, nil
}

func parseEach[T any](v jsonx.Value, parse func(jsonx.Value) (T, error)) ([]T, error) {
	items, err := v.OptArray()
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		parsed, err := parse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

func parseScriptTransfer(v jsonx.Value) (ScriptTransfer, error) {
	addr, err := readAddress(v.Get("address"))
	if err != nil {
		return ScriptTransfer{}, err
	}
	asset, err := readOptionalAssetID(v.Get("asset"))
	if err != nil {
		return ScriptTransfer{}, err
	}
	amount, err := v.Get("amount").Uint64()
	if err != nil {
		return ScriptTransfer{}, err
	}
	return ScriptTransfer{Address: addr, Amount: types.NewAmount(amount, asset)}, nil
}

func parseScriptIssue(v jsonx.Value) (ScriptIssue, error) {
	var i ScriptIssue
	var err error
	if i.AssetID, err = readAssetID(v.Get("assetId")); err != nil {
		return i, err
	}
	if i.Name, err = v.Get("name").String(); err != nil {
		return i, err
	}
	if i.Description, _, err = v.Get("description").OptString(); err != nil {
		return i, err
	}
	if i.Quantity, err = v.Get("quantity").Uint64(); err != nil {
		return i, err
	}
	if i.Decimals, err = readUint8(v.Get("decimals")); err != nil {
		return i, err
	}
	if i.Reissuable, err = v.Get("isReissuable").OptBool(false); err != nil {
		return i, err
	}
	if i.Script, err = readScript(v.Get("compiledScript")); err != nil {
		return i, err
	}
	if n := v.Get("nonce"); !n.IsNull() {
		if i.Nonce, err = n.Int64(); err != nil {
			return i, err
		}
	}
	return i, nil
}

func parseScriptReissue(v jsonx.Value) (ScriptReissue, error) {
	var r ScriptReissue
	var err error
	if r.AssetID, err = readAssetID(v.Get("assetId")); err != nil {
		return r, err
	}
	if r.Reissuable, err = v.Get("isReissuable").OptBool(false); err != nil {
		return r, err
	}
	if r.Quantity, err = v.Get("quantity").Uint64(); err != nil {
		return r, err
	}
	return r, nil
}

func parseScriptBurn(v jsonx.Value) (ScriptBurn, error) {
	asset, err := readAssetID(v.Get("assetId"))
	if err != nil {
		return ScriptBurn{}, err
	}
	quantity, err := v.Get("quantity").Uint64()
	if err != nil {
		return ScriptBurn{}, err
	}
	return ScriptBurn{AssetID: asset, Quantity: quantity}, nil
}

func parseScriptSponsorFee(v jsonx.Value) (ScriptSponsorFee, error) {
	asset, err := readAssetID(v.Get("assetId"))
	if err != nil {
		return ScriptSponsorFee{}, err
	}
	minFee, err := v.Get("minSponsoredAssetFee").OptUint64(0)
	if err != nil {
		return ScriptSponsorFee{}, err
	}
	return ScriptSponsorFee{AssetID: asset, MinSponsoredAssetFee: minFee}, nil
}

func parseScriptInvoke(v jsonx.Value) (ScriptInvoke, error) {
	var i ScriptInvoke
	var err error
	if i.DApp, err = readAddress(v.Get("dApp")); err != nil {
		return i, err
	}
	if i.Function, err = ParseFunction(v.Get("call")); err != nil {
		return i, err
	}
	if i.Payments, err = readPayments(v.Get("payment")); err != nil {
		return i, err
	}
	if i.StateChanges, err = parseOptionalStateChanges(v.Get("stateChanges")); err != nil {
		return i, err
	}
	return i, nil
}
