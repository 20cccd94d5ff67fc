package jsonx

import (
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"
	"github.com/mezonai/wavesgo/errors"
)

const snippetLimit = 160

// Value is a lazily parsed JSON value that remembers its JSON pointer, so every failed
// typed read can report where it happened.
type Value struct {
	any  jsoniter.Any
	path string
}

// Parse validates data as JSON and returns its root value.
func Parse(data []byte) (Value, error) {
	if !api.Valid(data) {
		return Value{}, errors.NewJSONParseError("", snippet(string(data)), "invalid json document")
	}
	return Value{any: api.Get(data), path: ""}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(data string) Value {
	v, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return v
}

// FromInterface re-reads an arbitrary Go value as a Value.
func FromInterface(v interface{}) (Value, error) {
	b, err := Marshal(v)
	if err != nil {
		return Value{}, errors.Wrap(errors.KindJSONParseError, err, "failed to marshal value")
	}
	return Parse(b)
}

// Path is the JSON pointer of v relative to the parsed document.
func (v Value) Path() string {
	if v.path == "" {
		return "/"
	}
	return v.path
}

func (v Value) Get(key string) Value {
	if v.any == nil {
		return Value{path: v.path + "/" + key}
	}
	return Value{any: v.any.Get(key), path: v.path + "/" + key}
}

func (v Value) Index(i int) Value {
	p := v.path + "/" + strconv.Itoa(i)
	if v.any == nil {
		return Value{path: p}
	}
	return Value{any: v.any.Get(i), path: p}
}

func (v Value) valueType() jsoniter.ValueType {
	if v.any == nil {
		return jsoniter.InvalidValue
	}
	return v.any.ValueType()
}

// Exists reports whether the value is present (a JSON null is present).
func (v Value) Exists() bool {
	return v.valueType() != jsoniter.InvalidValue
}

// IsNull reports whether the value is absent or JSON null.
func (v Value) IsNull() bool {
	t := v.valueType()
	return t == jsoniter.InvalidValue || t == jsoniter.NilValue
}

func (v Value) IsObject() bool {
	return v.valueType() == jsoniter.ObjectValue
}

func (v Value) IsArray() bool {
	return v.valueType() == jsoniter.ArrayValue
}

func (v Value) IsString() bool {
	return v.valueType() == jsoniter.StringValue
}

// Raw returns the JSON text of v, or "null" if absent.
func (v Value) Raw() string {
	switch v.valueType() {
	case jsoniter.InvalidValue, jsoniter.NilValue:
		return "null"
	case jsoniter.StringValue:
		return strconv.Quote(v.any.ToString())
	default:
		return v.any.ToString()
	}
}

// Interface decodes v into plain Go values.
func (v Value) Interface() interface{} {
	if v.IsNull() {
		return nil
	}
	return v.any.GetInterface()
}

func (v Value) fail(message string) error {
	return errors.NewJSONParseError(v.Path(), snippet(v.Raw()), message)
}

func (v Value) String() (string, error) {
	if v.valueType() != jsoniter.StringValue {
		return "", v.fail("expected string")
	}
	return v.any.ToString(), nil
}

// OptString returns "" and false for absent or null values.
func (v Value) OptString() (string, bool, error) {
	if v.IsNull() {
		return "", false, nil
	}
	s, err := v.String()
	return s, err == nil, err
}

func (v Value) Bool() (bool, error) {
	if v.valueType() != jsoniter.BoolValue {
		return false, v.fail("expected boolean")
	}
	return v.any.ToBool(), nil
}

// OptBool returns def for absent or null values.
func (v Value) OptBool(def bool) (bool, error) {
	if v.IsNull() {
		return def, nil
	}
	return v.Bool()
}

// numberText accepts JSON numbers and numeric strings.
func (v Value) numberText() (string, error) {
	switch v.valueType() {
	case jsoniter.NumberValue:
		return v.any.ToString(), nil
	case jsoniter.StringValue:
		return strings.TrimSpace(v.any.ToString()), nil
	default:
		return "", v.fail("expected number")
	}
}

func (v Value) Int64() (int64, error) {
	s, err := v.numberText()
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseInt(s, 10, 64)
	if perr != nil {
		return 0, v.fail("expected 64-bit integer")
	}
	return n, nil
}

// Uint64 accepts integers up to 2^64-1, including string-encoded big integers.
func (v Value) Uint64() (uint64, error) {
	s, err := v.numberText()
	if err != nil {
		return 0, err
	}
	n, perr := uint256.FromDecimal(s)
	if perr != nil || !n.IsUint64() {
		return 0, v.fail("expected unsigned 64-bit integer")
	}
	return n.Uint64(), nil
}

// OptUint64 returns def for absent or null values.
func (v Value) OptUint64(def uint64) (uint64, error) {
	if v.IsNull() {
		return def, nil
	}
	return v.Uint64()
}

func (v Value) Int() (int, error) {
	n, err := v.Int64()
	return int(n), err
}

func (v Value) Array() ([]Value, error) {
	if v.valueType() != jsoniter.ArrayValue {
		return nil, v.fail("expected array")
	}
	out := make([]Value, v.any.Size())
	for i := range out {
		out[i] = v.Index(i)
	}
	return out, nil
}

// OptArray treats absent or null as an empty array.
func (v Value) OptArray() ([]Value, error) {
	if v.IsNull() {
		return nil, nil
	}
	return v.Array()
}

// Keys returns the member names of an object.
func (v Value) Keys() ([]string, error) {
	if v.valueType() != jsoniter.ObjectValue {
		return nil, v.fail("expected object")
	}
	return v.any.Keys(), nil
}

// Fail builds a JsonParseError located at v.
func (v Value) Fail(message string) error {
	return v.fail(message)
}

func snippet(s string) string {
	if len(s) > snippetLimit {
		return s[:snippetLimit] + "..."
	}
	return s
}
