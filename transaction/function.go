package transaction

import (
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/jsonx"
)

const DefaultFunctionName = "default"

// Argument tags of the function call blob.
const (
	argTagInteger byte = 0
	argTagBinary  byte = 1
	argTagString  byte = 2
	argTagTrue    byte = 6
	argTagFalse   byte = 7
	argTagList    byte = 11
)

var functionCallHeader = []byte{0x01, 0x09, 0x01}

// Function is a dApp callable with its arguments.
type Function struct {
	Name string
	Args []Arg
}

// IsDefault reports whether the call targets the default callable.
func (f Function) IsDefault() bool {
	return (f.Name == DefaultFunctionName || f.Name == "") && len(f.Args) == 0
}

// Bytes encodes the call blob signed inside an invoke transaction.
func (f Function) Bytes() []byte {
	if f.IsDefault() {
		return []byte{0}
	}
	w := common.NewByteWriter()
	w.PushBytes(functionCallHeader)
	w.PushSized([]byte(f.Name))
	w.PushInt32(int32(len(f.Args)))
	for _, arg := range f.Args {
		arg.write(w)
	}
	return w.Bytes()
}

// JSON is nil for the default call.
func (f Function) JSON() interface{} {
	if f.IsDefault() {
		return nil
	}
	return jsonx.Object{"function": f.Name, "args": argsJSON(f.Args)}
}

func ParseFunction(v jsonx.Value) (Function, error) {
	if v.IsNull() {
		return Function{Name: DefaultFunctionName}, nil
	}
	name, err := v.Get("function").String()
	if err != nil {
		return Function{}, err
	}
	items, err := v.Get("args").OptArray()
	if err != nil {
		return Function{}, err
	}
	args, err := parseArgs(items)
	if err != nil {
		return Function{}, err
	}
	return Function{Name: name, Args: args}, nil
}

// Arg is one argument of a function call.
type Arg interface {
	ArgType() string
	write(w *common.ByteWriter)
	value() interface{}
}

type IntegerArg int64

type BinaryArg []byte

type StringArg string

type BooleanArg bool

// ListArg may nest further lists.
type ListArg []Arg

func (IntegerArg) ArgType() string { return "integer" }
func (BinaryArg) ArgType() string  { return "binary" }
func (StringArg) ArgType() string  { return "string" }
func (BooleanArg) ArgType() string { return "boolean" }
func (ListArg) ArgType() string    { return "list" }

func (a IntegerArg) write(w *common.ByteWriter) {
	w.PushByte(argTagInteger)
	w.PushInt64(int64(a))
}

func (a BinaryArg) write(w *common.ByteWriter) {
	w.PushByte(argTagBinary)
	w.PushSized(a)
}

func (a StringArg) write(w *common.ByteWriter) {
	w.PushByte(argTagString)
	w.PushSized([]byte(a))
}

func (a BooleanArg) write(w *common.ByteWriter) {
	if a {
		w.PushByte(argTagTrue)
	} else {
		w.PushByte(argTagFalse)
	}
}

func (a ListArg) write(w *common.ByteWriter) {
	w.PushByte(argTagList)
	w.PushInt32(int32(len(a)))
	for _, item := range a {
		item.write(w)
	}
}

func (a IntegerArg) value() interface{} { return int64(a) }
func (a BinaryArg) value() interface{}  { return common.EncodeBase64WithPrefix(a) }
func (a StringArg) value() interface{}  { return string(a) }
func (a BooleanArg) value() interface{} { return bool(a) }
func (a ListArg) value() interface{}    { return argsJSON(a) }

func argJSON(a Arg) jsonx.Object {
	return jsonx.Object{"type": a.ArgType(), "value": a.value()}
}

func argsJSON(args []Arg) []jsonx.Object {
	out := make([]jsonx.Object, 0, len(args))
	for _, a := range args {
		out = append(out, argJSON(a))
	}
	return out
}

func parseArgs(items []jsonx.Value) ([]Arg, error) {
	args := make([]Arg, 0, len(items))
	for _, item := range items {
		arg, err := ParseArg(item)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func ParseArg(v jsonx.Value) (Arg, error) {
	typ, err := v.Get("type").String()
	if err != nil {
		return nil, err
	}
	value := v.Get("value")
	switch typ {
	case "integer":
		n, err := value.Int64()
		if err != nil {
			return nil, err
		}
		return IntegerArg(n), nil
	case "binary":
		s, err := value.String()
		if err != nil {
			return nil, err
		}
		b, err := common.DecodeBase64(s)
		if err != nil {
			return nil, value.Fail("expected base64 binary value")
		}
		return BinaryArg(b), nil
	case "string":
		s, err := value.String()
		if err != nil {
			return nil, err
		}
		return StringArg(s), nil
	case "boolean":
		b, err := value.Bool()
		if err != nil {
			return nil, err
		}
		return BooleanArg(b), nil
	case "list":
		items, err := value.Array()
		if err != nil {
			return nil, err
		}
		list, err := parseArgs(items)
		if err != nil {
			return nil, err
		}
		return ListArg(list), nil
	default:
		return nil, v.Get("type").Fail("unknown argument type")
	}
}
