package crypto

import (
	"encoding/binary"

	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/errors"
	"golang.org/x/crypto/curve25519"
)

const (
	PrivateKeySize = 32
	PublicKeySize  = 32
)

// PrivateKey is a clamped Curve25519 scalar.
type PrivateKey [PrivateKeySize]byte

// PublicKey is the Montgomery U coordinate of PrivateKey * basepoint.
type PublicKey [PublicKeySize]byte

// KeyPair couples a private key with its derived public key.
type KeyPair struct {
	PrivateKey PrivateKey
	PublicKey  PublicKey
}

// AccountSeed derives the per-account seed: SecureHash(be32(nonce) ++ seed).
func AccountSeed(seed string, nonce uint8) []byte {
	buf := make([]byte, 4, 4+len(seed))
	binary.BigEndian.PutUint32(buf, uint32(nonce))
	buf = append(buf, seed...)
	return SecureHash(buf)
}

// NewPrivateKey clamps Sha256(accountSeed).
func NewPrivateKey(accountSeed []byte) PrivateKey {
	var pk PrivateKey
	copy(pk[:], Sha256(accountSeed))
	pk[0] &= 0xF8
	pk[31] &= 0x7F
	pk[31] |= 0x40
	return pk
}

// NewPrivateKeyFromSeed is NewPrivateKey(AccountSeed(seed, nonce)).
func NewPrivateKeyFromSeed(seed string, nonce uint8) PrivateKey {
	return NewPrivateKey(AccountSeed(seed, nonce))
}

// NewKeyPair derives the key pair for seed and nonce.
func NewKeyPair(seed string, nonce uint8) (KeyPair, error) {
	sk := NewPrivateKeyFromSeed(seed, nonce)
	pk, err := sk.PublicKey()
	if err != nil {
		return KeyPair{}, err
	}
	return KeyPair{PrivateKey: sk, PublicKey: pk}, nil
}

func NewPrivateKeyFromBytes(b []byte) (PrivateKey, error) {
	var pk PrivateKey
	if len(b) != PrivateKeySize {
		return pk, errors.Newf(errors.KindInvalidBytesLength, errors.ErrMsgInvalidBytesLength, "private key", PrivateKeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

func NewPrivateKeyFromBase58(s string) (PrivateKey, error) {
	b, err := common.DecodeBase58(s)
	if err != nil {
		return PrivateKey{}, err
	}
	return NewPrivateKeyFromBytes(b)
}

// PublicKey computes the X25519 base point multiple, which is the Montgomery form.
func (k PrivateKey) PublicKey() (PublicKey, error) {
	var pk PublicKey
	u, err := curve25519.X25519(k[:], curve25519.Basepoint)
	if err != nil {
		return pk, errors.Wrap(errors.KindPointConversionError, err, "failed to derive public key")
	}
	copy(pk[:], u)
	return pk, nil
}

func (k PrivateKey) Bytes() []byte {
	return k[:]
}

func (k PrivateKey) String() string {
	return common.EncodeBase58(k[:])
}

func NewPublicKeyFromBytes(b []byte) (PublicKey, error) {
	var pk PublicKey
	if len(b) != PublicKeySize {
		return pk, errors.Newf(errors.KindInvalidBytesLength, errors.ErrMsgInvalidBytesLength, "public key", PublicKeySize, len(b))
	}
	copy(pk[:], b)
	return pk, nil
}

func NewPublicKeyFromBase58(s string) (PublicKey, error) {
	b, err := common.DecodeBase58(s)
	if err != nil {
		return PublicKey{}, err
	}
	return NewPublicKeyFromBytes(b)
}

func (k PublicKey) Bytes() []byte {
	return k[:]
}

func (k PublicKey) String() string {
	return common.EncodeBase58(k[:])
}

func (k PublicKey) IsZero() bool {
	return k == PublicKey{}
}
