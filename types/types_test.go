package types

import (
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/crypto"
	"github.com/mezonai/wavesgo/errors"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSeed    = "blame vacant regret company chase trip grant funny brisk innocent"
	testAddress = "3Ms87NGAAaPWZux233TB9A3TXps4LDkyJWN"
	testAsset   = "25FEqEjRkqK6yCkiT7Lz6SAYz7gUFCtxfCChnrVFD5AT"
)

func TestAddressFromPublicKey(t *testing.T) {
	kp, err := crypto.NewKeyPair(testSeed, 0)
	require.NoError(t, err)

	addr := NewAddressFromPublicKey(Testnet, kp.PublicKey)
	assert.Equal(t, testAddress, addr.String())
	assert.Equal(t, byte(AddressVersion), addr[0])
	assert.Equal(t, Testnet, addr.ChainID())

	parsed, err := NewAddressFromString(testAddress)
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	fromHash, err := NewAddressFromPublicKeyHash(Testnet, addr.PublicKeyHash())
	require.NoError(t, err)
	assert.Equal(t, addr, fromHash)
}

func TestAddressChecksumForAnyKey(t *testing.T) {
	f := fuzz.New().NilChance(0)
	for i := 0; i < 50; i++ {
		var pk crypto.PublicKey
		var chain byte
		f.Fuzz(&pk)
		f.Fuzz(&chain)
		addr := NewAddressFromPublicKey(ChainID(chain), pk)
		assert.Equal(t, []byte{1, chain}, addr[:2])
		_, err := NewAddressFromBytes(addr[:])
		assert.NoError(t, err)
	}
}

func TestAddressRejects(t *testing.T) {
	good, err := NewAddressFromString(testAddress)
	require.NoError(t, err)

	badChecksum := good.Bytes()
	badChecksum[AddressSize-1] ^= 0xFF
	badVersion := good.Bytes()
	badVersion[0] = 2

	tests := []struct {
		name  string
		input string
	}{
		{"not base58", "0OIl"},
		{"short", common.EncodeBase58(good[:25])},
		{"long", common.EncodeBase58(append(good.Bytes(), 0))},
		{"version", common.EncodeBase58(badVersion)},
		{"checksum", common.EncodeBase58(badChecksum)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAddressFromString(tt.input)
			assert.ErrorIs(t, err, errors.ErrInvalidAddress)
		})
	}
}

func TestAlias(t *testing.T) {
	alias, err := NewAlias(Testnet, "alias:T:alias1662650000377")
	require.NoError(t, err)
	assert.Equal(t, "alias1662650000377", alias.Name())
	assert.True(t, alias.IsValid(Testnet))
	assert.False(t, alias.IsValid(Mainnet))
	assert.Equal(t, append([]byte{0x02, 0x54}, []byte("alias1662650000377")...), alias.Bytes())
	assert.Equal(t, "alias:T:alias1662650000377", alias.String())

	parsed, err := NewAliasFromString("alias:W:some-name")
	require.NoError(t, err)
	assert.Equal(t, Mainnet, parsed.ChainID())

	_, err = NewAliasFromString("some-name")
	assert.ErrorIs(t, err, errors.ErrInvalidAliasName)

	_, err = NewAlias(Testnet, "alias:W:some-name")
	assert.ErrorIs(t, err, errors.ErrInvalidAliasName)
}

func TestAliasBounds(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{strings.Repeat("a", 3), false},
		{strings.Repeat("a", 4), true},
		{strings.Repeat("a", 30), true},
		{strings.Repeat("a", 31), false},
		{"UPPER", false},
		{"with space", false},
		{"ok-.@_09", true},
	}
	for _, tt := range tests {
		_, err := NewAlias(Testnet, tt.name)
		if tt.valid {
			assert.NoError(t, err, tt.name)
		} else {
			assert.ErrorIs(t, err, errors.ErrInvalidAliasName, tt.name)
		}
	}
}

func TestRecipient(t *testing.T) {
	r, err := NewRecipientFromString(testAddress)
	require.NoError(t, err)
	assert.False(t, r.IsAlias())
	assert.Equal(t, Testnet, r.ChainID())
	addr, ok := r.Address()
	assert.True(t, ok)
	assert.Equal(t, testAddress, addr.String())

	r, err = NewRecipientFromString("alias:T:merry")
	require.NoError(t, err)
	assert.True(t, r.IsAlias())
	alias, ok := r.Alias()
	assert.True(t, ok)
	assert.Equal(t, "merry", alias.Name())
	assert.Equal(t, "alias:T:merry", r.String())

	_, err = NewRecipientFromString("alias:T:no")
	assert.ErrorIs(t, err, errors.ErrInvalidAliasName)
}

func TestAssetID(t *testing.T) {
	a, err := ParseOptionalAssetID(testAsset)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, testAsset, a.String())
	assert.Len(t, AssetIDBytes(a), AssetIDSize)
	assert.Equal(t, testAsset, AssetIDJSON(a))

	for _, native := range []string{"", NativeAssetName} {
		n, err := ParseOptionalAssetID(native)
		require.NoError(t, err)
		assert.Nil(t, n)
	}
	assert.Empty(t, AssetIDBytes(nil))
	assert.Nil(t, AssetIDJSON(nil))

	_, err = ParseOptionalAssetID("2VfUX")
	assert.ErrorIs(t, err, errors.ErrInvalidBytesLength)

	assert.True(t, SameAsset(nil, nil))
	assert.False(t, SameAsset(a, nil))
	assert.True(t, NewAmount(5, a).Equal(NewAmount(5, a)))
	assert.True(t, NativeAmount(1).IsNative())
}

func TestByteStrings(t *testing.T) {
	b64, err := NewBase64StringFromString("base64:AQID")
	require.NoError(t, err)
	assert.Equal(t, "AQID", b64.String())

	id, err := NewIDFromString("2VfUX")
	require.NoError(t, err)
	assert.Equal(t, "2VfUX", id.String())
	assert.True(t, id.Equal(ID(id.Bytes())))

	out, err := jsonx.Marshal(struct {
		Asset AssetID `json:"asset"`
		ID    ID      `json:"id"`
	}{Asset: AssetID{}, ID: id})
	require.NoError(t, err)
	assert.Equal(t, `{"asset":"11111111111111111111111111111111","id":"2VfUX"}`, string(out))
}

func TestDataEntries(t *testing.T) {
	doc := jsonx.MustParse(`[
		{"key": "int", "type": "integer", "value": 42},
		{"key": "bool", "type": "boolean", "value": true},
		{"key": "bin", "type": "binary", "value": "base64:AQID"},
		{"key": "str", "type": "string", "value": "hello"},
		{"key": "del", "value": null},
		{"key": "del2"}
	]`)
	entries, err := ParseDataEntries(doc)
	require.NoError(t, err)
	assert.Equal(t, []DataEntry{
		IntegerEntry{Key: "int", Value: 42},
		BooleanEntry{Key: "bool", Value: true},
		BinaryEntry{Key: "bin", Value: []byte{1, 2, 3}},
		StringEntry{Key: "str", Value: "hello"},
		DeleteEntry{Key: "del"},
		DeleteEntry{Key: "del2"},
	}, entries)

	emitted := DataEntriesJSON(entries)
	assert.Equal(t, "base64:AQID", emitted[2]["value"])
	assert.Nil(t, emitted[4]["value"])
	_, hasType := emitted[4]["type"]
	assert.False(t, hasType)

	_, err = ParseDataEntry(jsonx.MustParse(`{"key": "x", "type": "float", "value": 1}`))
	assert.ErrorIs(t, err, errors.ErrJSONParseError)

	_, err = ParseDataEntry(jsonx.MustParse(`{"key": "x", "type": "integer", "value": "abc"}`))
	assert.ErrorIs(t, err, errors.ErrJSONParseError)
}

func TestDataEntryRoundTripFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 32)
	for i := 0; i < 100; i++ {
		var (
			key  string
			n    int64
			flag bool
			bin  []byte
			str  string
		)
		f.Fuzz(&key)
		f.Fuzz(&n)
		f.Fuzz(&flag)
		f.Fuzz(&bin)
		f.Fuzz(&str)
		if bin == nil {
			bin = []byte{}
		}
		entries := []DataEntry{
			IntegerEntry{Key: key, Value: n},
			BooleanEntry{Key: key, Value: flag},
			BinaryEntry{Key: key, Value: bin},
			StringEntry{Key: key, Value: str},
			DeleteEntry{Key: key},
		}
		v, err := jsonx.FromInterface(DataEntriesJSON(entries))
		require.NoError(t, err)
		parsed, err := ParseDataEntries(v)
		require.NoError(t, err)
		assert.Equal(t, entries, parsed)
	}
}
