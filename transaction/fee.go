package transaction

import (
	"unicode/utf8"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/types"
)

// Fees in native base units (1 coin = 1e8).
const (
	BaseFee             uint64 = 100_000
	IssueFee            uint64 = 100_000_000
	NFTIssueFee         uint64 = 100_000
	SetScriptFee        uint64 = 1_000_000
	SponsorFee          uint64 = 100_000_000
	SetAssetScriptFee   uint64 = 100_000_000
	ExchangeFee         uint64 = 300_000
	InvokeScriptFee     uint64 = 500_000
	MassTransferItemFee uint64 = 50_000
	DataFeePerKiB       uint64 = 100_000
	dataKiB                    = 1024
	MaxAttachmentSize          = 140
	MaxTransfers               = 100
	MaxPayments                = 10
	MinAssetNameLength         = 4
	MaxAssetNameLength         = 16
	MaxAssetDescription        = 1000
	MaxAssetDecimals           = 8
)

// MinFee is the smallest native fee the node accepts for data.
func MinFee(data TransactionData) uint64 {
	switch d := data.(type) {
	case GenesisTx:
		return 0
	case IssueTx:
		if d.IsNFT() {
			return NFTIssueFee
		}
		return IssueFee
	case SetScriptTx:
		return SetScriptFee
	case SponsorFeeTx:
		return SponsorFee
	case SetAssetScriptTx:
		return SetAssetScriptFee
	case ExchangeTx:
		return ExchangeFee
	case InvokeScriptTx:
		return InvokeScriptFee
	case MassTransferTx:
		return roundUp(BaseFee+MassTransferItemFee*uint64(len(d.Transfers)), BaseFee)
	case DataTx:
		size := dataPayloadSize(d)
		kib := uint64((size + dataKiB - 1) / dataKiB)
		if kib == 0 {
			kib = 1
		}
		return kib * DataFeePerKiB
	default:
		return BaseFee
	}
}

func roundUp(v, step uint64) uint64 {
	return (v + step - 1) / step * step
}

// dataPayloadSize is the encoded size of the entries inside the canonical body.
func dataPayloadSize(d DataTx) int {
	body, err := (&Transaction{Data: d, Version: MaxVersion(TxTypeData)}).BodyBytes()
	if err != nil {
		return 0
	}
	return len(body)
}

// Validate checks local invariants before signing or broadcasting.
func (t *Transaction) Validate() error {
	if t.Data == nil {
		return errors.New(errors.KindInvalidTransaction, "transaction has no data")
	}
	if err := checkVersion(t.TxType(), t.Version); err != nil {
		return err
	}
	if t.Fee.IsNative() {
		if minFee := MinFee(t.Data); t.Fee.Value < minFee {
			return errors.Newf(errors.KindInvalidTransaction, "fee %d is below minimum %d for %s", t.Fee.Value, minFee, t.TxType())
		}
	}
	return validateData(t.ChainID, t.Data)
}

// Validate checks the proof count on top of the transaction invariants.
func (s *SignedTransaction) Validate() error {
	if len(s.Proofs) > MaxProofs {
		return errors.Newf(errors.KindInvalidTransaction, "at most %d proofs allowed, got %d", MaxProofs, len(s.Proofs))
	}
	return s.Transaction.Validate()
}

func validateData(chain types.ChainID, data TransactionData) error {
	switch d := data.(type) {
	case GenesisTx:
		return checkAddressChain(chain, d.Recipient)
	case PaymentTx:
		return checkAddressChain(chain, d.Recipient)
	case IssueTx:
		if n := utf8.RuneCountInString(d.Name); n < MinAssetNameLength || n > MaxAssetNameLength {
			return errors.Newf(errors.KindInvalidTransaction, "asset name must be %d..%d characters, got %d", MinAssetNameLength, MaxAssetNameLength, n)
		}
		if n := utf8.RuneCountInString(d.Description); n > MaxAssetDescription {
			return errors.Newf(errors.KindInvalidTransaction, "asset description exceeds %d characters", MaxAssetDescription)
		}
		if d.Decimals > MaxAssetDecimals {
			return errors.Newf(errors.KindInvalidTransaction, "decimals must be at most %d, got %d", MaxAssetDecimals, d.Decimals)
		}
	case TransferTx:
		if len(d.Attachment) > MaxAttachmentSize {
			return errors.Newf(errors.KindInvalidTransaction, "attachment exceeds %d bytes", MaxAttachmentSize)
		}
		return checkRecipientChain(chain, d.Recipient)
	case LeaseTx:
		return checkRecipientChain(chain, d.Recipient)
	case CreateAliasTx:
		if !d.Alias.IsValid(chain) {
			return errors.Newf(errors.KindInvalidAliasName, "alias %s is not valid on chain %s", d.Alias, chain)
		}
	case MassTransferTx:
		if len(d.Transfers) > MaxTransfers {
			return errors.Newf(errors.KindInvalidTransaction, "at most %d transfers allowed, got %d", MaxTransfers, len(d.Transfers))
		}
		if len(d.Attachment) > MaxAttachmentSize {
			return errors.Newf(errors.KindInvalidTransaction, "attachment exceeds %d bytes", MaxAttachmentSize)
		}
		for _, item := range d.Transfers {
			if err := checkRecipientChain(chain, item.Recipient); err != nil {
				return err
			}
		}
	case InvokeScriptTx:
		if len(d.Payments) > MaxPayments {
			return errors.Newf(errors.KindInvalidTransaction, "at most %d payments allowed, got %d", MaxPayments, len(d.Payments))
		}
		return checkRecipientChain(chain, d.DApp)
	case ExchangeTx:
		for _, o := range []SignedOrder{d.Order1, d.Order2} {
			if o.Order == nil {
				return errors.New(errors.KindInvalidTransaction, "exchange requires two orders")
			}
			if o.Order.Body().ChainID != chain {
				return errors.Newf(errors.KindInvalidTransaction, "order chain %s differs from transaction chain %s", o.Order.Body().ChainID, chain)
			}
		}
	}
	return nil
}

func checkAddressChain(chain types.ChainID, a types.Address) error {
	if a.ChainID() != chain {
		return errors.Newf(errors.KindInvalidTransaction, "address %s belongs to chain %s, not %s", a, a.ChainID(), chain)
	}
	return nil
}

func checkRecipientChain(chain types.ChainID, r types.Recipient) error {
	if alias, ok := r.Alias(); ok {
		if !alias.IsValid(chain) {
			return errors.Newf(errors.KindInvalidAliasName, "alias %s is not valid on chain %s", alias, chain)
		}
		return nil
	}
	if addr, ok := r.Address(); ok {
		return checkAddressChain(chain, addr)
	}
	return errors.New(errors.KindInvalidTransaction, "missing recipient")
}
