package types

import (
	"github.com/mezonai/wavesgo/common"
	"github.com/mezonai/wavesgo/jsonx"
)

type DataEntryType string

const (
	DataEntryInteger DataEntryType = "integer"
	DataEntryBoolean DataEntryType = "boolean"
	DataEntryBinary  DataEntryType = "binary"
	DataEntryString  DataEntryType = "string"
	// DataEntryDelete has no type on the wire.
	DataEntryDelete DataEntryType = ""
)

// DataEntry is one key/value of an account's data storage.
type DataEntry interface {
	GetKey() string
	Type() DataEntryType
	// JSON is the node's representation of the entry.
	JSON() jsonx.Object
}

type IntegerEntry struct {
	Key   string
	Value int64
}

type BooleanEntry struct {
	Key   string
	Value bool
}

type BinaryEntry struct {
	Key   string
	Value []byte
}

type StringEntry struct {
	Key   string
	Value string
}

// DeleteEntry removes Key from storage.
type DeleteEntry struct {
	Key string
}

func (e IntegerEntry) GetKey() string { return e.Key }
func (e BooleanEntry) GetKey() string { return e.Key }
func (e BinaryEntry) GetKey() string  { return e.Key }
func (e StringEntry) GetKey() string  { return e.Key }
func (e DeleteEntry) GetKey() string  { return e.Key }

func (IntegerEntry) Type() DataEntryType { return DataEntryInteger }
func (BooleanEntry) Type() DataEntryType { return DataEntryBoolean }
func (BinaryEntry) Type() DataEntryType  { return DataEntryBinary }
func (StringEntry) Type() DataEntryType  { return DataEntryString }
func (DeleteEntry) Type() DataEntryType  { return DataEntryDelete }

func (e IntegerEntry) JSON() jsonx.Object {
	return jsonx.Object{"key": e.Key, "type": string(DataEntryInteger), "value": e.Value}
}

func (e BooleanEntry) JSON() jsonx.Object {
	return jsonx.Object{"key": e.Key, "type": string(DataEntryBoolean), "value": e.Value}
}

func (e BinaryEntry) JSON() jsonx.Object {
	return jsonx.Object{"key": e.Key, "type": string(DataEntryBinary), "value": common.EncodeBase64WithPrefix(e.Value)}
}

func (e StringEntry) JSON() jsonx.Object {
	return jsonx.Object{"key": e.Key, "type": string(DataEntryString), "value": e.Value}
}

func (e DeleteEntry) JSON() jsonx.Object {
	return jsonx.Object{"key": e.Key, "value": nil}
}

// ParseDataEntry reads an entry; a missing type or null value is a DeleteEntry.
func ParseDataEntry(v jsonx.Value) (DataEntry, error) {
	key, err := v.Get("key").String()
	if err != nil {
		return nil, err
	}
	typ, _, err := v.Get("type").OptString()
	if err != nil {
		return nil, err
	}
	value := v.Get("value")
	if typ == "" || value.IsNull() {
		return DeleteEntry{Key: key}, nil
	}

	switch DataEntryType(typ) {
	case DataEntryInteger:
		n, err := value.Int64()
		if err != nil {
			return nil, err
		}
		return IntegerEntry{Key: key, Value: n}, nil
	case DataEntryBoolean:
		b, err := value.Bool()
		if err != nil {
			return nil, err
		}
		return BooleanEntry{Key: key, Value: b}, nil
	case DataEntryBinary:
		s, err := value.String()
		if err != nil {
			return nil, err
		}
		b, err := common.DecodeBase64(s)
		if err != nil {
			return nil, value.Fail("expected base64 binary value")
		}
		return BinaryEntry{Key: key, Value: b}, nil
	case DataEntryString:
		s, err := value.String()
		if err != nil {
			return nil, err
		}
		return StringEntry{Key: key, Value: s}, nil
	default:
		return nil, v.Get("type").Fail("unknown data entry type")
	}
}

// ParseDataEntries reads a JSON array of entries.
func ParseDataEntries(v jsonx.Value) ([]DataEntry, error) {
	items, err := v.Array()
	if err != nil {
		return nil, err
	}
	entries := make([]DataEntry, 0, len(items))
	for _, item := range items {
		entry, err := ParseDataEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func DataEntriesJSON(entries []DataEntry) []jsonx.Object {
	out := make([]jsonx.Object, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.JSON())
	}
	return out
}
