package transaction

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/jsonx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionBytes(t *testing.T) {
	f := Function{
		Name: "storeData",
		Args: []Arg{
			BooleanArg(true),
			StringArg("some string"),
			IntegerArg(123),
			BinaryArg{0x03, 0x05, 0x02, 0x0B, 0x0F},
			ListArg{IntegerArg(123), IntegerArg(543)},
		},
	}
	want := "0109010000000973746f72654461746100000005" +
		"06" +
		"020000000b736f6d6520737472696e67" +
		"00000000000000007b" +
		"01000000050305020b0f" +
		"0b00000002" + "00000000000000007b" + "00000000000000021f"
	assert.Equal(t, want, common.EncodeHex(f.Bytes()))
}

func TestDefaultFunctionBytes(t *testing.T) {
	assert.Equal(t, []byte{0}, Function{}.Bytes())
	assert.Equal(t, []byte{0}, Function{Name: DefaultFunctionName}.Bytes())
	assert.Nil(t, Function{}.JSON())

	withArgs := Function{Name: DefaultFunctionName, Args: []Arg{IntegerArg(1)}}
	assert.False(t, withArgs.IsDefault())
	assert.Equal(t, byte(0x01), withArgs.Bytes()[0])
}

func TestFunctionJSON(t *testing.T) {
	f := Function{
		Name: "call",
		Args: []Arg{
			IntegerArg(-5),
			BinaryArg{1, 2, 3},
			StringArg("s"),
			BooleanArg(false),
			ListArg{StringArg("a"), ListArg{BooleanArg(true)}},
		},
	}
	v, err := jsonx.FromInterface(f.JSON())
	require.NoError(t, err)
	assert.Equal(t, "base64:AQID", mustString(t, v.Get("args").Index(1).Get("value")))

	parsed, err := ParseFunction(v)
	require.NoError(t, err)
	assert.Equal(t, f, parsed)

	parsed, err = ParseFunction(jsonx.MustParse(`null`))
	require.NoError(t, err)
	assert.True(t, parsed.IsDefault())

	_, err = ParseArg(jsonx.MustParse(`{"type": "float", "value": 1.5}`))
	assert.Error(t, err)
}

func TestFunctionJSONFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 8)
	for i := 0; i < 50; i++ {
		var (
			name string
			n    int64
			bin  []byte
			str  string
		)
		f.Fuzz(&name)
		f.Fuzz(&n)
		f.Fuzz(&bin)
		f.Fuzz(&str)
		fn := Function{Name: "f" + name, Args: []Arg{IntegerArg(n), BinaryArg(bin), StringArg(str), ListArg{IntegerArg(n)}}}

		v, err := jsonx.FromInterface(fn.JSON())
		require.NoError(t, err)
		parsed, err := ParseFunction(v)
		require.NoError(t, err)
		assert.Equal(t, fn, parsed)
		assert.Equal(t, fn.Bytes(), parsed.Bytes())
	}
}

func mustString(t *testing.T, v jsonx.Value) string {
	t.Helper()
	s, err := v.String()
	require.NoError(t, err)
	return s
}
