package types

// Amount is a quantity in base units of an asset; nil AssetID means the native coin.
type Amount struct {
	Value   uint64
	AssetID *AssetID
}

func NewAmount(value uint64, asset *AssetID) Amount {
	return Amount{Value: value, AssetID: asset}
}

func NativeAmount(value uint64) Amount {
	return Amount{Value: value}
}

func (a Amount) IsNative() bool {
	return a.AssetID == nil
}

func (a Amount) Equal(other Amount) bool {
	return a.Value == other.Value && SameAsset(a.AssetID, other.AssetID)
}
