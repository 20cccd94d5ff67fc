package client

import (
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/transaction"
	"github.com/mezonai/wavesgo/types"
)

func readAddress(v jsonx.Value) (types.Address, error) {
	s, err := v.String()
	if err != nil {
		return types.Address{}, err
	}
	return types.NewAddressFromString(s)
}

func readOptionalAddress(v jsonx.Value) (*types.Address, error) {
	s, ok, err := v.OptString()
	if err != nil || !ok || s == "" {
		return nil, err
	}
	a, err := types.NewAddressFromString(s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func readPublicKey(v jsonx.Value) (crypto.PublicKey, error) {
	s, err := v.String()
	if err != nil {
		return crypto.PublicKey{}, err
	}
	return crypto.NewPublicKeyFromBase58(s)
}

func readID(v jsonx.Value) (types.ID, error) {
	s, err := v.String()
	if err != nil {
		return nil, err
	}
	return types.NewIDFromString(s)
}

func readOptionalID(v jsonx.Value) (types.ID, error) {
	s, ok, err := v.OptString()
	if err != nil || !ok || s == "" {
		return nil, err
	}
	return types.NewIDFromString(s)
}

func readAssetID(v jsonx.Value) (types.AssetID, error) {
	s, err := v.String()
	if err != nil {
		return types.AssetID{}, err
	}
	return types.NewAssetIDFromString(s)
}

func readOptionalAssetID(v jsonx.Value) (*types.AssetID, error) {
	s, _, err := v.OptString()
	if err != nil {
		return nil, err
	}
	return types.ParseOptionalAssetID(s)
}

func readBase58(v jsonx.Value) (types.Base58String, error) {
	s, _, err := v.OptString()
	if err != nil || s == "" {
		return nil, err
	}
	return types.NewBase58StringFromString(s)
}

// readScript decodes a base64 script, accepting the "base64:" prefix; null is no script.
func readScript(v jsonx.Value) ([]byte, error) {
	s, ok, err := v.OptString()
	if err != nil || !ok {
		return nil, err
	}
	return common.DecodeBase64(s)
}

func readUint32(v jsonx.Value) (uint32, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > 1<<32-1 {
		return 0, v.Fail("expected unsigned 32-bit integer")
	}
	return uint32(n), nil
}

func readOptionalUint64(v jsonx.Value) (*uint64, error) {
	if v.IsNull() {
		return nil, nil
	}
	n, err := v.Uint64()
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// readComplexities reads an object of callable name to complexity.
func readComplexities(v jsonx.Value) (map[string]uint64, error) {
	out := map[string]uint64{}
	if v.IsNull() {
		return out, nil
	}
	keys, err := v.Keys()
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		n, err := v.Get(k).Uint64()
		if err != nil {
			return nil, err
		}
		out[k] = n
	}
	return out, nil
}

func parseEach[T any](v jsonx.Value, parse func(jsonx.Value) (T, error)) ([]T, error) {
	items, err := v.Array()
	if err != nil {
		return nil, err
	}
	return parseSlice(items, parse)
}

func parseSlice[T any](items []jsonx.Value, parse func(jsonx.Value) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, item := range items {
		parsed, err := parse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, parsed)
	}
	return out, nil
}

func parseSigned(v jsonx.Value) (*transaction.SignedTransaction, error) {
	return transaction.ParseSignedTransaction(v)
}

func addressStrings(addrs []types.Address) []string {
	out := make([]string, len(addrs))
	for i, a := range addrs {
		out[i] = a.String()
	}
	return out
}

func idStrings(ids []types.ID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
