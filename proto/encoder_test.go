package proto

import (
	"testing"

	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarsOmitDefaults(t *testing.T) {
	e := NewEncoder()
	e.Int32(1, 0)
	e.Int64(2, 0)
	e.Bool(3, false)
	e.BytesField(4, nil)
	e.String(5, "")
	assert.Empty(t, e.Bytes())

	e.Int32(1, 84)
	e.Int64(2, 300)
	e.Bool(3, true)
	e.BytesField(4, []byte{0xAA})
	e.String(5, "hi")
	assert.Equal(t, "0854"+"10ac02"+"1801"+"2201aa"+"2a026869", common.EncodeHex(e.Bytes()))
}

func TestNegativeInt32IsSignExtended(t *testing.T) {
	e := NewEncoder()
	e.Int32(1, -1)
	assert.Equal(t, "08ffffffffffffffffff01", common.EncodeHex(e.Bytes()))
}

func TestAlwaysVariantsAndMessages(t *testing.T) {
	e := NewEncoder()
	e.BytesAlways(1, nil)
	e.Int64Always(2, 0)
	e.BoolAlways(3, false)
	e.StringAlways(4, "")
	e.Message(5, func(*Encoder) {})
	e.Message(6, func(sub *Encoder) {
		sub.Int64(2, 1)
	})
	assert.Equal(t, "0a00"+"1000"+"1800"+"2200"+"2a00"+"32021001", common.EncodeHex(e.Bytes()))
	assert.Equal(t, 14, e.Len())
}

func TestMessageErrWritesNothingOnFailure(t *testing.T) {
	e := NewEncoder()
	err := e.MessageErr(1, func(sub *Encoder) error {
		sub.Int64(1, 5)
		return errors.New(errors.KindUnsupportedOperation, "nope")
	})
	require.Error(t, err)
	assert.Empty(t, e.Bytes())

	require.NoError(t, e.MessageErr(1, func(sub *Encoder) error {
		sub.Int64(1, 5)
		return nil
	}))
	assert.Equal(t, "0a020805", common.EncodeHex(e.Bytes()))
}
