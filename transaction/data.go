package transaction

import (
	"github.com/mezonai/wavesgo/types"
)

// TransactionData is the closed set of transaction payloads.
type TransactionData interface {
	TxType() TxType
	isTransactionData()
}

type GenesisTx struct {
	Recipient types.Address
	Amount    uint64
}

type PaymentTx struct {
	Recipient types.Address
	Amount    uint64
}

// IssueTx creates an asset. A nil Script issues an unscripted asset.
type IssueTx struct {
	Name        string
	Description string
	Quantity    uint64
	Decimals    uint8
	Reissuable  bool
	Script      []byte
}

// IsNFT reports whether the issue qualifies for the reduced non-fungible fee.
func (tx IssueTx) IsNFT() bool {
	return tx.Quantity == 1 && tx.Decimals == 0 && !tx.Reissuable
}

type TransferTx struct {
	Recipient  types.Recipient
	Amount     types.Amount
	Attachment types.Base58String
}

type ReissueTx struct {
	AssetID    types.AssetID
	Quantity   uint64
	Reissuable bool
}

type BurnTx struct {
	AssetID types.AssetID
	Amount  uint64
}

// ExchangeTx settles a buy and a sell order; fees are per side.
type ExchangeTx struct {
	Order1         SignedOrder
	Order2         SignedOrder
	Amount         uint64
	Price          uint64
	BuyMatcherFee  uint64
	SellMatcherFee uint64
}

type LeaseTx struct {
	Recipient types.Recipient
	Amount    uint64
}

type LeaseCancelTx struct {
	LeaseID types.ID
}

type CreateAliasTx struct {
	Alias types.Alias
}

type MassTransferItem struct {
	Recipient types.Recipient
	Amount    uint64
}

// MassTransferTx sends one asset to many recipients. A nil AssetID sends the native coin.
type MassTransferTx struct {
	AssetID    *types.AssetID
	Transfers  []MassTransferItem
	Attachment types.Base58String
}

type DataTx struct {
	Entries []types.DataEntry
}

// SetScriptTx sets the account script; a nil Script removes it.
type SetScriptTx struct {
	Script []byte
}

// SponsorFeeTx enables fee sponsorship; MinSponsoredAssetFee of zero cancels it.
type SponsorFeeTx struct {
	AssetID              types.AssetID
	MinSponsoredAssetFee uint64
}

type SetAssetScriptTx struct {
	AssetID types.AssetID
	Script  []byte
}

type InvokeScriptTx struct {
	DApp     types.Recipient
	Function Function
	Payments []types.Amount
}

type UpdateAssetInfoTx struct {
	AssetID     types.AssetID
	Name        string
	Description string
}

func (GenesisTx) TxType() TxType         { return TxTypeGenesis }
func (PaymentTx) TxType() TxType         { return TxTypePayment }
func (IssueTx) TxType() TxType           { return TxTypeIssue }
func (TransferTx) TxType() TxType        { return TxTypeTransfer }
func (ReissueTx) TxType() TxType         { return TxTypeReissue }
func (BurnTx) TxType() TxType            { return TxTypeBurn }
func (ExchangeTx) TxType() TxType        { return TxTypeExchange }
func (LeaseTx) TxType() TxType           { return TxTypeLease }
func (LeaseCancelTx) TxType() TxType     { return TxTypeLeaseCancel }
func (CreateAliasTx) TxType() TxType     { return TxTypeCreateAlias }
func (MassTransferTx) TxType() TxType    { return TxTypeMassTransfer }
func (DataTx) TxType() TxType            { return TxTypeData }
func (SetScriptTx) TxType() TxType       { return TxTypeSetScript }
func (SponsorFeeTx) TxType() TxType      { return TxTypeSponsorFee }
func (SetAssetScriptTx) TxType() TxType  { return TxTypeSetAssetScript }
func (InvokeScriptTx) TxType() TxType    { return TxTypeInvokeScript }
func (UpdateAssetInfoTx) TxType() TxType { return TxTypeUpdateAssetInfo }
func (EthereumTx) TxType() TxType        { return TxTypeEthereum }

func (GenesisTx) isTransactionData()         {}
func (PaymentTx) isTransactionData()         {}
func (IssueTx) isTransactionData()           {}
func (TransferTx) isTransactionData()        {}
func (ReissueTx) isTransactionData()         {}
func (BurnTx) isTransactionData()            {}
func (ExchangeTx) isTransactionData()        {}
func (LeaseTx) isTransactionData()           {}
func (LeaseCancelTx) isTransactionData()     {}
func (CreateAliasTx) isTransactionData()     {}
func (MassTransferTx) isTransactionData()    {}
func (DataTx) isTransactionData()            {}
func (SetScriptTx) isTransactionData()       {}
func (SponsorFeeTx) isTransactionData()      {}
func (SetAssetScriptTx) isTransactionData()  {}
func (InvokeScriptTx) isTransactionData()    {}
func (UpdateAssetInfoTx) isTransactionData() {}
func (EthereumTx) isTransactionData()        {}
