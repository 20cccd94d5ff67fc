package transaction

import (
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/types"
)

type ApplicationStatus string

const (
	StatusSucceeded             ApplicationStatus = "succeeded"
	StatusScriptExecutionFailed ApplicationStatus = "script_execution_failed"
	StatusElided                ApplicationStatus = "elided"
	StatusUnknown               ApplicationStatus = "unknown"
)

// TransactionInfo is a confirmed transaction as reported by the node.
type TransactionInfo struct {
	ID                types.ID
	Height            uint32
	ApplicationStatus ApplicationStatus
	Transaction       SignedTransaction
	// Data is the plain payload, or one of the *Info variants when the node reports extra state.
	Data DataInfo
}

// DataInfo is satisfied by every TransactionData and by the *Info variants below.
type DataInfo interface {
	TxType() TxType
}

// IssueInfo adds the id of the issued asset.
type IssueInfo struct {
	IssueTx
	AssetID types.AssetID
}

// LeaseCancelInfo resolves the canceled lease; it is nil when the node omits it.
type LeaseCancelInfo struct {
	LeaseCancelTx
	Lease *LeaseInfo
}

type MassTransferInfo struct {
	MassTransferTx
	TransferCount int
	TotalAmount   uint64
}

type InvokeScriptInfo struct {
	InvokeScriptTx
	StateChanges *StateChanges
}

type EthereumInfo struct {
	EthereumTx
	StateChanges *StateChanges
}

// InfoAs downcasts transaction info data to a concrete variant.
func InfoAs[T DataInfo](data DataInfo) (T, error) {
	v, ok := data.(T)
	if !ok {
		var zero T
		return zero, errors.Newf(errors.KindWrongTransactionType, errors.ErrMsgWrongTransactionType, zero.TxType().String(), data)
	}
	return v, nil
}

type LeaseStatus string

const (
	LeaseActive   LeaseStatus = "active"
	LeaseCanceled LeaseStatus = "canceled"
	LeaseExpired  LeaseStatus = "expired"
)

// LeaseInfo describes a lease. The cancel transaction is referenced by id only.
type LeaseInfo struct {
	ID                  types.ID
	OriginTransactionID types.ID
	Sender              types.Address
	Recipient           types.Address
	Amount              uint64
	Height              uint32
	Status              LeaseStatus
	CancelHeight        *uint32
	CancelTransactionID types.ID
}

// StateChanges is the result of a script invocation.
type StateChanges struct {
	Data         []types.DataEntry
	Transfers    []ScriptTransfer
	Issues       []ScriptIssue
	Reissues     []ScriptReissue
	Burns        []ScriptBurn
	SponsorFees  []ScriptSponsorFee
	Leases       []LeaseInfo
	LeaseCancels []LeaseInfo
	Invokes      []ScriptInvoke
	Error        *ScriptError
}

type ScriptTransfer struct {
	Address types.Address
	Amount  types.Amount
}

type ScriptIssue struct {
	AssetID     types.AssetID
	Name        string
	Description string
	Quantity    uint64
	Decimals    uint8
	Reissuable  bool
	Script      []byte
	Nonce       int64
}

type ScriptReissue struct {
	AssetID    types.AssetID
	Reissuable bool
	Quantity   uint64
}

type ScriptBurn struct {
	AssetID  types.AssetID
	Quantity uint64
}

type ScriptSponsorFee struct {
	AssetID              types.AssetID
	MinSponsoredAssetFee uint64
}

// ScriptInvoke is a nested dApp call.
type ScriptInvoke struct {
	DApp         types.Address
	Function     Function
	Payments     []types.Amount
	StateChanges *StateChanges
}

type ScriptError struct {
	Code int
	Text string
}
