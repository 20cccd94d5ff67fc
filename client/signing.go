package client

import (
	"context"

	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/transaction"
)

// SignAndBroadcast validates tx locally, signs it with sk and submits it.
func (c *NodeClient) SignAndBroadcast(ctx context.Context, tx *transaction.Transaction, sk crypto.PrivateKey) (*transaction.SignedTransaction, error) {
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	signed, err := tx.Sign(sk)
	if err != nil {
		return nil, err
	}
	return c.Broadcast(ctx, signed)
}
