// Package proto writes proto3 wire bytes deterministically: fields appear in the order the
// caller emits them, which must be ascending field number, and scalar defaults are omitted.
package proto

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// Encoder appends fields to an in-memory message.
type Encoder struct {
	buf []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Bytes() []byte {
	return e.buf
}

func (e *Encoder) Len() int {
	return len(e.buf)
}

// Int32 writes a sign-extended varint, omitting zero.
func (e *Encoder) Int32(num protowire.Number, v int32) {
	if v == 0 {
		return
	}
	e.Int32Always(num, v)
}

func (e *Encoder) Int32Always(num protowire.Number, v int32) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(int64(v)))
}

// Enum writes an enum value, omitting the zero member.
func (e *Encoder) Enum(num protowire.Number, v int32) {
	e.Int32(num, v)
}

func (e *Encoder) Int64(num protowire.Number, v int64) {
	if v == 0 {
		return
	}
	e.Int64Always(num, v)
}

func (e *Encoder) Int64Always(num protowire.Number, v int64) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, uint64(v))
}

func (e *Encoder) Bool(num protowire.Number, v bool) {
	if !v {
		return
	}
	e.BoolAlways(num, v)
}

func (e *Encoder) BoolAlways(num protowire.Number, v bool) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.VarintType)
	e.buf = protowire.AppendVarint(e.buf, protowire.EncodeBool(v))
}

// BytesField writes a length-delimited field, omitting empty values.
func (e *Encoder) BytesField(num protowire.Number, v []byte) {
	if len(v) == 0 {
		return
	}
	e.BytesAlways(num, v)
}

// BytesAlways is used for oneof members and repeated elements, which are present even when empty.
func (e *Encoder) BytesAlways(num protowire.Number, v []byte) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendBytes(e.buf, v)
}

func (e *Encoder) String(num protowire.Number, v string) {
	if v == "" {
		return
	}
	e.StringAlways(num, v)
}

func (e *Encoder) StringAlways(num protowire.Number, v string) {
	e.buf = protowire.AppendTag(e.buf, num, protowire.BytesType)
	e.buf = protowire.AppendString(e.buf, v)
}

// Message writes a submessage built by fn. Set submessages are present even when empty.
func (e *Encoder) Message(num protowire.Number, fn func(*Encoder)) {
	sub := NewEncoder()
	fn(sub)
	e.BytesAlways(num, sub.buf)
}

// MessageErr is Message for builders that can fail; nothing is written on error.
func (e *Encoder) MessageErr(num protowire.Number, fn func(*Encoder) error) error {
	sub := NewEncoder()
	if err := fn(sub); err != nil {
		return err
	}
	e.BytesAlways(num, sub.buf)
	return nil
}
