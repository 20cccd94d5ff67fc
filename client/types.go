package client

import (
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

// AddressBalance is one entry of a batched balance query.
type AddressBalance struct {
	Address types.Address
	Balance uint64
}

type BalanceDetails struct {
	Address    types.Address
	Regular    uint64
	Generating uint64
	Available  uint64
	Effective  uint64
}

type ScriptInfo struct {
	Address              types.Address
	Script               []byte
	ScriptText           string
	Version              uint8
	Complexity           uint64
	VerifierComplexity   uint64
	CallableComplexities map[string]uint64
	ExtraFee             uint64
}

// ArgMeta describes one parameter of a callable function.
type ArgMeta struct {
	Name string
	Type string
}

type ScriptMeta struct {
	Address           types.Address
	MetaVersion       int
	CallableFuncTypes map[string][]ArgMeta
}

type AssetBalance struct {
	AssetID              types.AssetID
	Balance              uint64
	Reissuable           bool
	MinSponsoredAssetFee *uint64
	SponsorBalance       *uint64
	Quantity             uint64
	IssueTransaction     *transaction.SignedTransaction
}

type AssetScriptDetails struct {
	Complexity uint64
	Script     []byte
	ScriptText string
}

type AssetDetails struct {
	AssetID              types.AssetID
	IssueHeight          uint32
	IssueTimestamp       uint64
	Issuer               types.Address
	IssuerPublicKey      crypto.PublicKey
	Name                 string
	Description          string
	Decimals             uint8
	Reissuable           bool
	Quantity             uint64
	Scripted             bool
	MinSponsoredAssetFee *uint64
	OriginTransactionID  types.ID
	ScriptDetails        *AssetScriptDetails
}

type AssetHolder struct {
	Address types.Address
	Balance uint64
}

// AssetDistribution is one page of asset holders at a height.
type AssetDistribution struct {
	Items    []AssetHolder
	HasNext  bool
	LastItem *types.Address
}

type RewardVotes struct {
	Increase uint32
	Decrease uint32
}

type BlockchainRewards struct {
	Height              uint32
	TotalWavesAmount    uint64
	CurrentReward       uint64
	MinIncrement        uint64
	Term                uint32
	NextCheck           uint32
	VotingIntervalStart uint32
	VotingInterval      uint32
	VotingThreshold     uint32
	Votes               RewardVotes
}

type BlockHeader struct {
	Version             uint8
	Timestamp           uint64
	Reference           types.Base58String
	BaseTarget          uint64
	GenerationSignature types.Base58String
	TransactionsRoot    types.Base58String
	ID                  types.ID
	Features            []uint32
	DesiredReward       int64
	Generator           types.Address
	GeneratorPublicKey  crypto.PublicKey
	Signature           types.Base58String
	BlockSize           uint32
	TransactionCount    uint32
	Height              uint32
	TotalFee            uint64
	Reward              uint64
	VRF                 types.Base58String
}

type Block struct {
	BlockHeader
	Fee          uint64
	Transactions []*transaction.SignedTransaction
}

type HistoryBalance struct {
	Height  uint32
	Balance uint64
}

// ValidationResult is the node's dry-run verdict on a transaction.
type ValidationResult struct {
	Valid          bool
	ValidationTime uint64
	Error          string
}

type TxStatus string

const (
	TxConfirmed   TxStatus = "confirmed"
	TxUnconfirmed TxStatus = "unconfirmed"
	TxNotFound    TxStatus = "not_found"
)

type TransactionStatus struct {
	ID                types.ID
	Status            TxStatus
	Height            uint32
	Confirmations     uint32
	ApplicationStatus transaction.ApplicationStatus
}

type CompiledScript struct {
	Script               []byte
	Complexity           uint64
	VerifierComplexity   uint64
	CallableComplexities map[string]uint64
	ExtraFee             uint64
}
