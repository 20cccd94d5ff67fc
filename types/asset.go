package types

import (
	"github.com/mezonai/wavesgo/common"
)

const (
	AssetIDSize = 32
	// NativeAssetName is accepted in place of a missing asset id.
	NativeAssetName = "WAVES"
)

// AssetID identifies an issued asset. A nil *AssetID stands for the native coin.
type AssetID [AssetIDSize]byte

func NewAssetIDFromBytes(b []byte) (AssetID, error) {
	var a AssetID
	if err := checkLength(b, AssetIDSize, "asset id"); err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

func NewAssetIDFromString(s string) (AssetID, error) {
	var a AssetID
	b, err := common.DecodeBase58Fixed(s, AssetIDSize, "asset id")
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// ParseOptionalAssetID maps "" and "WAVES" to nil.
func ParseOptionalAssetID(s string) (*AssetID, error) {
	if s == "" || s == NativeAssetName {
		return nil, nil
	}
	a, err := NewAssetIDFromString(s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// OptionalAssetIDFromBytes maps empty bytes to nil.
func OptionalAssetIDFromBytes(b []byte) (*AssetID, error) {
	if len(b) == 0 {
		return nil, nil
	}
	a, err := NewAssetIDFromBytes(b)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (a AssetID) Bytes() []byte {
	out := make([]byte, AssetIDSize)
	copy(out, a[:])
	return out
}

func (a AssetID) String() string {
	return common.EncodeBase58(a[:])
}

func (a AssetID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AssetID) UnmarshalText(text []byte) error {
	parsed, err := NewAssetIDFromString(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AssetIDBytes returns the wire bytes of an optional asset id; native is empty.
func AssetIDBytes(a *AssetID) []byte {
	if a == nil {
		return []byte{}
	}
	return a.Bytes()
}

// AssetIDJSON returns nil for the native coin so it emits as JSON null.
func AssetIDJSON(a *AssetID) interface{} {
	if a == nil {
		return nil
	}
	return a.String()
}

// SameAsset compares two optional asset ids.
func SameAsset(a, b *AssetID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
