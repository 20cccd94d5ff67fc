package common

import (
	"encoding/hex"

	"github.com/mezonai/wavesgo/errors"
)

// EncodeHex returns lowercase hex without prefix.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeHexWithPrefix returns lowercase hex prefixed with "0x".
func EncodeHexWithPrefix(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeHex decodes a hex string with an optional "0x" prefix.
func DecodeHex(s string) ([]byte, error) {
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(errors.KindHexError, err, "failed to decode hex string")
	}
	return b, nil
}

// HexToBase58 re-encodes a hex string as base58.
func HexToBase58(hexStr string) (string, error) {
	b, err := DecodeHex(hexStr)
	if err != nil {
		return "", err
	}
	return EncodeBase58(b), nil
}
