package transaction

import (
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/mezonai/wavesgo/types"
)

// Typed readers shared by the transaction, order and info parsers. Decoding failures keep
// their own kind (Base58Error, InvalidAddress, ...); structural failures are JsonParseError.

func readPublicKey(v jsonx.Value) (crypto.PublicKey, error) {
	s, err := v.String()
	if err != nil {
		return crypto.PublicKey{}, err
	}
	return crypto.NewPublicKeyFromBase58(s)
}

func readAddress(v jsonx.Value) (types.Address, error) {
	s, err := v.String()
	if err != nil {
		return types.Address{}, err
	}
	return types.NewAddressFromString(s)
}

func readRecipient(v jsonx.Value) (types.Recipient, error) {
	s, err := v.String()
	if err != nil {
		return types.Recipient{}, err
	}
	return types.NewRecipientFromString(s)
}

func readAssetID(v jsonx.Value) (types.AssetID, error) {
	s, err := v.String()
	if err != nil {
		return types.AssetID{}, err
	}
	return types.NewAssetIDFromString(s)
}

// readOptionalAssetID maps absent, null, "" and "WAVES" to the native coin.
func readOptionalAssetID(v jsonx.Value) (*types.AssetID, error) {
	s, _, err := v.OptString()
	if err != nil {
		return nil, err
	}
	return types.ParseOptionalAssetID(s)
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
	if err != nil || !ok {
		return nil, err
	}
	return types.NewIDFromString(s)
}

// readBase58 returns nil for an absent, null or empty value.
func readBase58(v jsonx.Value) (types.Base58String, error) {
	s, _, err := v.OptString()
	if err != nil || s == "" {
		return nil, err
	}
	return types.NewBase58StringFromString(s)
}

// readScript returns nil for an absent or null script.
func readScript(v jsonx.Value) ([]byte, error) {
	s, ok, err := v.OptString()
	if err != nil || !ok {
		return nil, err
	}
	return common.DecodeBase64(s)
}

func scriptJSON(script []byte) interface{} {
	if script == nil {
		return nil
	}
	return common.EncodeBase64(script)
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

func readUint8(v jsonx.Value) (uint8, error) {
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > 255 {
		return 0, v.Fail("expected unsigned 8-bit integer")
	}
	return uint8(n), nil
}

// readProofs accepts "proofs", falling back to the legacy "signature" field.
func readProofs(v jsonx.Value) ([]types.Proof, error) {
	proofs := v.Get("proofs")
	if proofs.IsNull() {
		sig, ok, err := v.Get("signature").OptString()
		if err != nil || !ok {
			return []types.Proof{}, err
		}
		p, err := types.NewProofFromString(sig)
		if err != nil {
			return nil, err
		}
		return []types.Proof{p}, nil
	}
	items, err := proofs.Array()
	if err != nil {
		return nil, err
	}
	out := make([]types.Proof, 0, len(items))
	for _, item := range items {
		s, err := item.String()
		if err != nil {
			return nil, err
		}
		p, err := types.NewProofFromString(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func proofsJSON(proofs []types.Proof) []string {
	out := make([]string, 0, len(proofs))
	for _, p := range proofs {
		out = append(out, p.String())
	}
	return out
}

// readPayments reads [{amount, assetId}]; "asset" is accepted for nested invokes.
func readPayments(v jsonx.Value) ([]types.Amount, error) {
	items, err := v.OptArray()
	if err != nil {
		return nil, err
	}
	out := make([]types.Amount, 0, len(items))
	for _, item := range items {
		amount, err := item.Get("amount").Uint64()
		if err != nil {
			return nil, err
		}
		assetField := item.Get("assetId")
		if !assetField.Exists() {
			assetField = item.Get("asset")
		}
		asset, err := readOptionalAssetID(assetField)
		if err != nil {
			return nil, err
		}
		out = append(out, types.NewAmount(amount, asset))
	}
	return out, nil
}

func paymentsJSON(payments []types.Amount) []jsonx.Object {
	out := make([]jsonx.Object, 0, len(payments))
	for _, p := range payments {
		out = append(out, jsonx.Object{"amount": p.Value, "assetId": types.AssetIDJSON(p.AssetID)})
	}
	return out
}
