package common

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/mezonai/wavesgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58(t *testing.T) {
	b, err := DecodeBase58("")
	require.NoError(t, err)
	assert.Empty(t, b)

	b, err = DecodeBase58("base58:2VfUX")
	require.NoError(t, err)
	assert.Equal(t, "2VfUX", EncodeBase58(b))
	assert.Equal(t, "base58:2VfUX", EncodeBase58WithPrefix(b))

	_, err = DecodeBase58("0OIl")
	assert.ErrorIs(t, err, errors.ErrBase58Error)

	_, err = DecodeBase58Fixed("2VfUX", 32, "asset id")
	assert.ErrorIs(t, err, errors.ErrInvalidBytesLength)

	assert.True(t, IsValidBase58("2VfUX"))
	assert.False(t, IsValidBase58(""))
}

func TestBase58RoundTripFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 64)
	for i := 0; i < 200; i++ {
		var data []byte
		f.Fuzz(&data)
		decoded, err := DecodeBase58(EncodeBase58(data))
		require.NoError(t, err)
		assert.Equal(t, len(data), len(decoded))
		if len(data) > 0 {
			assert.Equal(t, data, decoded)
		}
	}
}

func TestBase64(t *testing.T) {
	b, err := DecodeBase64("base64:AQID")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	b, err = DecodeBase64("AQID")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	assert.Equal(t, "AQID", EncodeBase64(b))
	assert.Equal(t, "base64:AQID", EncodeBase64WithPrefix(b))

	_, err = DecodeBase64("base64:***")
	assert.ErrorIs(t, err, errors.ErrBase64Error)
}

func TestHex(t *testing.T) {
	b, err := DecodeHex("0x0A0b")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0a, 0x0b}, b)
	assert.Equal(t, "0a0b", EncodeHex(b))
	assert.Equal(t, "0x0a0b", EncodeHexWithPrefix(b))

	_, err = DecodeHex("0xzz")
	assert.ErrorIs(t, err, errors.ErrHexError)

	s, err := HexToBase58("0x0102")
	require.NoError(t, err)
	assert.Equal(t, EncodeBase58([]byte{1, 2}), s)
}

func TestByteWriter(t *testing.T) {
	w := NewByteWriter()
	w.PushByte(0x01)
	w.PushInt32(9)
	w.PushInt64(-1)
	w.PushSized([]byte("ab"))
	assert.Equal(t, []byte{
		0x01,
		0, 0, 0, 9,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0, 0, 0, 2, 'a', 'b',
	}, w.Bytes())
	assert.Equal(t, 19, w.Len())
}
