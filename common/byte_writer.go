package common

import "encoding/binary"

// ByteWriter appends big-endian fixed-width values to a growing buffer.
type ByteWriter struct {
	buf []byte
}

func NewByteWriter() *ByteWriter {
	return &ByteWriter{buf: make([]byte, 0, 64)}
}

func (w *ByteWriter) PushByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *ByteWriter) PushInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

func (w *ByteWriter) PushInt64(v int64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v))
}

func (w *ByteWriter) PushBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// PushSized writes len(b) as a big-endian int32 followed by b.
func (w *ByteWriter) PushSized(b []byte) {
	w.PushInt32(int32(len(b)))
	w.PushBytes(b)
}

func (w *ByteWriter) Len() int {
	return len(w.buf)
}

func (w *ByteWriter) Bytes() []byte {
	return w.buf
}
