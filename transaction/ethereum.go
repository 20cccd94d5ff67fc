package transaction

import (
	"github.com/mezonai/wavesgo/types"
)

// EthereumTx is a read-only view of an Ethereum-format transaction as decoded by the node.
// It is never re-encoded or re-signed.
type EthereumTx struct {
	ID types.ID
	// Bytes is the raw signed Ethereum transaction.
	Bytes []byte
	// SenderPublicKey is the 64-byte secp256k1 key recovered by the node.
	SenderPublicKey types.Base58String
	Sender          types.Address
	Payload         EthereumPayload
}

// EthereumPayload is EthereumTransfer or EthereumInvoke.
type EthereumPayload interface {
	PayloadType() string
	isEthereumPayload()
}

// EthereumTransfer moves the native coin or a token; a nil Asset is native.
type EthereumTransfer struct {
	Recipient types.Address
	Asset     *types.AssetID
	Amount    uint64
}

type EthereumInvoke struct {
	DApp         types.Address
	Function     Function
	Payments     []types.Amount
	StateChanges *StateChanges
}

func (EthereumTransfer) PayloadType() string { return "transfer" }
func (EthereumInvoke) PayloadType() string   { return "invocation" }
func (EthereumTransfer) isEthereumPayload()  {}
func (EthereumInvoke) isEthereumPayload()    {}
