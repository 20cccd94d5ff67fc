package common

import (
	"encoding/base64"
	"strings"

	"github.com/mezonai/wavesgo/errors"
)

const Base64Prefix = "base64:"

// EncodeBase64 encodes with the standard alphabet and no prefix.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// EncodeBase64WithPrefix encodes as "base64:<data>".
func EncodeBase64WithPrefix(b []byte) string {
	return Base64Prefix + base64.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes standard base64, accepting an optional "base64:" prefix.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s, Base64Prefix))
	if err != nil {
		return nil, errors.Wrap(errors.KindBase64Error, err, "failed to decode base64 string")
	}
	return b, nil
}
