package types

import (
	"bytes"

	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/errors"
)

const (
	AddressSize       = 26
	AddressVersion    = 1
	PublicKeyHashSize = 20
	checksumSize      = 4
	headerSize        = 2
)

// Address is [version][chain][public key hash (20)][checksum (4)].
type Address [AddressSize]byte

// NewAddressFromPublicKey derives the address of pk on chain.
func NewAddressFromPublicKey(chain ChainID, pk crypto.PublicKey) Address {
	hash := crypto.SecureHash(pk.Bytes())
	a, _ := NewAddressFromPublicKeyHash(chain, hash[:PublicKeyHashSize])
	return a
}

// NewAddressFromPublicKeyHash builds an address from the 20-byte hash used by protobuf recipients.
func NewAddressFromPublicKeyHash(chain ChainID, hash []byte) (Address, error) {
	var a Address
	if len(hash) != PublicKeyHashSize {
		return a, errors.Newf(errors.KindInvalidAddress, errors.ErrMsgInvalidBytesLength, "public key hash", PublicKeyHashSize, len(hash))
	}
	a[0] = AddressVersion
	a[1] = chain.Byte()
	copy(a[headerSize:], hash)
	sum := crypto.SecureHash(a[:headerSize+PublicKeyHashSize])
	copy(a[headerSize+PublicKeyHashSize:], sum[:checksumSize])
	return a, nil
}

// NewAddressFromBytes validates length, version and checksum.
func NewAddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressSize {
		return a, errors.Newf(errors.KindInvalidAddress, errors.ErrMsgInvalidAddressLength, AddressSize, len(b))
	}
	if b[0] != AddressVersion {
		return a, errors.Newf(errors.KindInvalidAddress, errors.ErrMsgInvalidAddressVersion, b[0])
	}
	body := b[:headerSize+PublicKeyHashSize]
	sum := crypto.SecureHash(body)
	if !bytes.Equal(sum[:checksumSize], b[headerSize+PublicKeyHashSize:]) {
		return a, errors.New(errors.KindInvalidAddress, errors.ErrMsgInvalidAddressChecksum)
	}
	copy(a[:], b)
	return a, nil
}

func NewAddressFromString(s string) (Address, error) {
	b, err := common.DecodeBase58(s)
	if err != nil {
		return Address{}, errors.Wrap(errors.KindInvalidAddress, err, "address is not base58")
	}
	return NewAddressFromBytes(b)
}

func (a Address) ChainID() ChainID {
	return ChainID(a[1])
}

// PublicKeyHash returns the 20 bytes between header and checksum.
func (a Address) PublicKeyHash() []byte {
	out := make([]byte, PublicKeyHashSize)
	copy(out, a[headerSize:headerSize+PublicKeyHashSize])
	return out
}

func (a Address) Bytes() []byte {
	out := make([]byte, AddressSize)
	copy(out, a[:])
	return out
}

func (a Address) String() string {
	return common.EncodeBase58(a[:])
}

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := NewAddressFromString(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
