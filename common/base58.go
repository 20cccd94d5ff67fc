package common

import (
	"strings"

	"github.com/mezonai/wavesgo/errors"
	"github.com/mr-tron/base58"
)

const Base58Prefix = "base58:"

// EncodeBase58 encodes bytes to base58 without prefix
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// EncodeBase58WithPrefix encodes bytes to base58 as "base58:<data>"
func EncodeBase58WithPrefix(b []byte) string {
	return Base58Prefix + base58.Encode(b)
}

// DecodeBase58 decodes a base58 string, accepting an optional "base58:" prefix.
// The empty string decodes to empty bytes.
func DecodeBase58(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, Base58Prefix)
	if s == "" {
		return []byte{}, nil
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(errors.KindBase58Error, err, "failed to decode base58 string")
	}
	return b, nil
}

// DecodeBase58Fixed decodes a base58 string that must hold exactly size bytes.
func DecodeBase58Fixed(s string, size int, what string) ([]byte, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(b) != size {
		return nil, errors.Newf(errors.KindInvalidBytesLength, errors.ErrMsgInvalidBytesLength, what, size, len(b))
	}
	return b, nil
}

// IsValidBase58 checks if a string is valid non-empty base58
func IsValidBase58(str string) bool {
	decoded, err := DecodeBase58(str)
	return err == nil && len(decoded) > 0
}
