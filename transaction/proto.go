package transaction

import (
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/proto"
	"github.com/mezonai/wavesgo/types"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of the data oneof in the Transaction message.
const (
	fieldChainID         protowire.Number = 1
	fieldSenderPublicKey protowire.Number = 2
	fieldFee             protowire.Number = 3
	fieldTimestamp       protowire.Number = 4
	fieldVersion         protowire.Number = 5
	dataFieldOffset      protowire.Number = 100
)

func writeAmount(e *proto.Encoder, a types.Amount) {
	e.BytesField(1, types.AssetIDBytes(a.AssetID))
	e.Int64(2, int64(a.Value))
}

func writeRecipient(e *proto.Encoder, r types.Recipient) error {
	if addr, ok := r.Address(); ok {
		e.BytesAlways(1, addr.PublicKeyHash())
		return nil
	}
	if alias, ok := r.Alias(); ok {
		e.StringAlways(2, alias.Name())
		return nil
	}
	return errors.New(errors.KindProtobufEncodeError, "recipient is neither address nor alias")
}

// encodeBody produces the canonical protobuf Transaction message without proofs.
func encodeBody(t *Transaction) ([]byte, error) {
	if t.Data == nil {
		return nil, errors.New(errors.KindProtobufEncodeError, "transaction has no data")
	}
	txType := t.Data.TxType()
	if txType == TxTypeEthereum {
		return nil, errors.New(errors.KindUnsupportedOperation, "ethereum transactions have no protobuf representation")
	}
	if err := checkVersion(txType, t.Version); err != nil {
		return nil, err
	}

	e := proto.NewEncoder()
	e.Int32(fieldChainID, int32(t.ChainID))
	e.BytesField(fieldSenderPublicKey, t.SenderPublicKey.Bytes())
	e.Message(fieldFee, func(fee *proto.Encoder) {
		writeAmount(fee, t.Fee)
	})
	e.Int64(fieldTimestamp, int64(t.Timestamp))
	e.Int32(fieldVersion, int32(t.Version))
	err := e.MessageErr(dataFieldOffset+protowire.Number(txType), func(d *proto.Encoder) error {
		return writeData(d, t.Data)
	})
	if err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

func writeData(e *proto.Encoder, data TransactionData) error {
	switch d := data.(type) {
	case GenesisTx:
		e.BytesField(1, d.Recipient.Bytes())
		e.Int64(2, int64(d.Amount))
	case PaymentTx:
		e.BytesField(1, d.Recipient.Bytes())
		e.Int64(2, int64(d.Amount))
	case IssueTx:
		e.String(1, d.Name)
		e.String(2, d.Description)
		e.Int64(3, int64(d.Quantity))
		e.Int32(4, int32(d.Decimals))
		e.Bool(5, d.Reissuable)
		e.BytesField(6, d.Script)
	case TransferTx:
		if err := e.MessageErr(1, func(r *proto.Encoder) error {
			return writeRecipient(r, d.Recipient)
		}); err != nil {
			return err
		}
		e.Message(2, func(a *proto.Encoder) {
			writeAmount(a, d.Amount)
		})
		e.BytesField(3, d.Attachment)
	case ReissueTx:
		e.Message(1, func(a *proto.Encoder) {
			writeAmount(a, types.NewAmount(d.Quantity, &d.AssetID))
		})
		e.Bool(2, d.Reissuable)
	case BurnTx:
		e.Message(1, func(a *proto.Encoder) {
			writeAmount(a, types.NewAmount(d.Amount, &d.AssetID))
		})
	case ExchangeTx:
		e.Int64(1, int64(d.Amount))
		e.Int64(2, int64(d.Price))
		e.Int64(3, int64(d.BuyMatcherFee))
		e.Int64(4, int64(d.SellMatcherFee))
		for _, o := range []*SignedOrder{&d.Order1, &d.Order2} {
			if err := writeOrderProto(e, o); err != nil {
				return err
			}
		}
	case LeaseTx:
		if err := e.MessageErr(1, func(r *proto.Encoder) error {
			return writeRecipient(r, d.Recipient)
		}); err != nil {
			return err
		}
		e.Int64(2, int64(d.Amount))
	case LeaseCancelTx:
		e.BytesField(1, d.LeaseID)
	case CreateAliasTx:
		e.String(1, d.Alias.Name())
	case MassTransferTx:
		e.BytesField(1, types.AssetIDBytes(d.AssetID))
		for _, item := range d.Transfers {
			if err := e.MessageErr(2, func(t *proto.Encoder) error {
				if err := t.MessageErr(1, func(r *proto.Encoder) error {
					return writeRecipient(r, item.Recipient)
				}); err != nil {
					return err
				}
				t.Int64(2, int64(item.Amount))
				return nil
			}); err != nil {
				return err
			}
		}
		e.BytesField(3, d.Attachment)
	case DataTx:
		for _, entry := range d.Entries {
			e.Message(1, func(de *proto.Encoder) {
				writeDataEntry(de, entry)
			})
		}
	case SetScriptTx:
		e.BytesField(1, d.Script)
	case SponsorFeeTx:
		e.Message(1, func(a *proto.Encoder) {
			writeAmount(a, types.NewAmount(d.MinSponsoredAssetFee, &d.AssetID))
		})
	case SetAssetScriptTx:
		e.BytesField(1, d.AssetID.Bytes())
		e.BytesField(2, d.Script)
	case InvokeScriptTx:
		if err := e.MessageErr(1, func(r *proto.Encoder) error {
			return writeRecipient(r, d.DApp)
		}); err != nil {
			return err
		}
		e.BytesField(2, d.Function.Bytes())
		for _, p := range d.Payments {
			e.Message(3, func(a *proto.Encoder) {
				writeAmount(a, p)
			})
		}
	case UpdateAssetInfoTx:
		e.BytesField(1, d.AssetID.Bytes())
		e.String(2, d.Name)
		e.String(3, d.Description)
	case EthereumTx:
		return errors.New(errors.KindUnsupportedOperation, "ethereum transactions have no protobuf representation")
	default:
		return errors.Newf(errors.KindProtobufEncodeError, "unknown transaction data %T", data)
	}
	return nil
}

// writeDataEntry writes key=1 and the value oneof; a delete entry carries the key only.
func writeDataEntry(e *proto.Encoder, entry types.DataEntry) {
	e.String(1, entry.GetKey())
	switch v := entry.(type) {
	case types.IntegerEntry:
		e.Int64Always(10, v.Value)
	case types.BooleanEntry:
		e.BoolAlways(11, v.Value)
	case types.BinaryEntry:
		e.BytesAlways(12, v.Value)
	case types.StringEntry:
		e.StringAlways(13, v.Value)
	}
}
