package types

import (
	"bytes"

	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/errors"
)

const IDSize = 32

// ID is a transaction, order, block or lease identifier. Legacy ids are 64-byte signatures.
type ID []byte

func NewIDFromString(s string) (ID, error) {
	b, err := common.DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	return ID(b), nil
}

func (id ID) Bytes() []byte {
	return []byte(id)
}

func (id ID) String() string {
	return common.EncodeBase58(id)
}

func (id ID) Equal(other ID) bool {
	return bytes.Equal(id, other)
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// Proof authorizes a transaction, usually a 64-byte signature.
type Proof []byte

func NewProofFromString(s string) (Proof, error) {
	b, err := common.DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	return Proof(b), nil
}

func (p Proof) Bytes() []byte {
	return []byte(p)
}

func (p Proof) String() string {
	return common.EncodeBase58(p)
}

func (p Proof) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Base58String is opaque bytes carried as base58 text.
type Base58String []byte

func NewBase58StringFromString(s string) (Base58String, error) {
	b, err := common.DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	return Base58String(b), nil
}

func (b Base58String) Bytes() []byte {
	return []byte(b)
}

func (b Base58String) String() string {
	return common.EncodeBase58(b)
}

func (b Base58String) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Base64String is opaque bytes carried as base64 text; the "base64:" prefix is optional on input.
type Base64String []byte

func NewBase64StringFromString(s string) (Base64String, error) {
	b, err := common.DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return Base64String(b), nil
}

func (b Base64String) Bytes() []byte {
	return []byte(b)
}

func (b Base64String) String() string {
	return common.EncodeBase64(b)
}

func (b Base64String) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func checkLength(b []byte, size int, what string) error {
	if len(b) != size {
		return errors.Newf(errors.KindInvalidBytesLength, errors.ErrMsgInvalidBytesLength, what, size, len(b))
	}
	return nil
}
