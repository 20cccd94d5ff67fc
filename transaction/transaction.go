package transaction

import (
	"time"

	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/types"
)

// MaxProofs is the number of proofs a transaction can carry.
const MaxProofs = 8

// Transaction is an unsigned transaction. Its type always follows Data.
type Transaction struct {
	Data            TransactionData
	Fee             types.Amount
	Timestamp       uint64
	SenderPublicKey crypto.PublicKey
	Version         uint8
	ChainID         types.ChainID
}

// New builds a transaction with the newest version, the minimum native fee and the current time.
func New(chainID types.ChainID, sender crypto.PublicKey, data TransactionData) *Transaction {
	return &Transaction{
		Data:            data,
		Fee:             types.NativeAmount(MinFee(data)),
		Timestamp:       NowMillis(),
		SenderPublicKey: sender,
		Version:         MaxVersion(data.TxType()),
		ChainID:         chainID,
	}
}

// NowMillis is the current unix time in milliseconds.
func NowMillis() uint64 {
	return uint64(time.Now().UnixMilli())
}

func (t *Transaction) TxType() TxType {
	return t.Data.TxType()
}

// Sender is the address of the sender public key on the transaction's chain.
func (t *Transaction) Sender() types.Address {
	return types.NewAddressFromPublicKey(t.ChainID, t.SenderPublicKey)
}

// BodyBytes returns the canonical protobuf body the proofs commit to.
func (t *Transaction) BodyBytes() ([]byte, error) {
	return encodeBody(t)
}

// ID is Blake of the canonical body.
func (t *Transaction) ID() (types.ID, error) {
	body, err := t.BodyBytes()
	if err != nil {
		return nil, err
	}
	return types.ID(crypto.Blake(body)), nil
}

// Sign produces a SignedTransaction carrying one proof by sk.
func (t *Transaction) Sign(sk crypto.PrivateKey) (*SignedTransaction, error) {
	signed := &SignedTransaction{Transaction: *t}
	if err := signed.AddProof(sk); err != nil {
		return nil, err
	}
	return signed, nil
}

// SignedTransaction is a transaction with its proofs. Mutating Transaction invalidates them.
type SignedTransaction struct {
	Transaction Transaction
	Proofs      []types.Proof
}

// AddProof appends a signature by sk, as needed for multisig accounts.
func (s *SignedTransaction) AddProof(sk crypto.PrivateKey) error {
	if len(s.Proofs) >= MaxProofs {
		return errors.Newf(errors.KindInvalidTransaction, "transaction already has %d proofs", MaxProofs)
	}
	body, err := s.Transaction.BodyBytes()
	if err != nil {
		return err
	}
	sig, err := crypto.Sign(sk, body)
	if err != nil {
		return err
	}
	s.Proofs = append(s.Proofs, sig.Bytes())
	return nil
}

// ID is Blake of the body, except for legacy genesis and payment whose id is the first proof
// and ethereum transactions whose id comes from the node.
func (s *SignedTransaction) ID() (types.ID, error) {
	switch d := s.Transaction.Data.(type) {
	case GenesisTx, PaymentTx:
		if len(s.Proofs) > 0 {
			return types.ID(s.Proofs[0]), nil
		}
	case EthereumTx:
		if len(d.ID) == 0 {
			return nil, errors.New(errors.KindUnsupportedOperation, "ethereum transaction id is assigned by the node")
		}
		return d.ID, nil
	}
	return s.Transaction.ID()
}

// Verify checks the first proof against the sender public key.
func (s *SignedTransaction) Verify() (bool, error) {
	if len(s.Proofs) == 0 {
		return false, nil
	}
	body, err := s.Transaction.BodyBytes()
	if err != nil {
		return false, err
	}
	return crypto.Verify(s.Transaction.SenderPublicKey, body, s.Proofs[0]), nil
}

// IssueAssetID is the id of the asset created by an issue transaction.
func (s *SignedTransaction) IssueAssetID() (types.AssetID, error) {
	if _, err := DataAs[IssueTx](s.Transaction.Data); err != nil {
		return types.AssetID{}, err
	}
	id, err := s.ID()
	if err != nil {
		return types.AssetID{}, err
	}
	return types.NewAssetIDFromBytes(id)
}

// DataAs downcasts transaction data to a concrete variant.
func DataAs[T TransactionData](data TransactionData) (T, error) {
	v, ok := data.(T)
	if !ok {
		var zero T
		return zero, errors.Newf(errors.KindWrongTransactionType, errors.ErrMsgWrongTransactionType, typeName(zero), data)
	}
	return v, nil
}

func typeName(v interface{}) string {
	if d, ok := v.(TransactionData); ok {
		return d.TxType().String()
	}
	return "unknown"
}
