package wire

import (
	"encoding/binary"
	"io"
)

// reader is a forward-only cursor over an in-memory payload. Every read
// checks the remaining length first, so a corrupt length prefix fails with
// ErrTruncated before any allocation or copy happens.
type reader struct {
	buf []byte
	off int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.off
}

func (r *reader) readByte() (byte, error) {
	if r.remaining() < 1 {
		return 0, ErrTruncated
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

func (r *reader) readUint16() (uint16, error) {
	if r.remaining() < 2 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

func (r *reader) readUint32() (uint32, error) {
	if r.remaining() < 4 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *reader) readUint64() (uint64, error) {
	if r.remaining() < 8 {
		return 0, ErrTruncated
	}
	v := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return v, nil
}

// readBytes copies out exactly n bytes. The length check precedes the
// allocation: n comes from untrusted input.
func (r *reader) readBytes(n uint64) ([]byte, error) {
	if n > uint64(r.remaining()) {
		return nil, ErrTruncated
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+int(n)])
	r.off += int(n)
	return out, nil
}

func (r *reader) readTxID(id *TxID) error {
	if r.remaining() < TxIDLen {
		return ErrTruncated
	}
	copy(id[:], r.buf[r.off:r.off+TxIDLen])
	r.off += TxIDLen
	return nil
}

func writeByte(w io.Writer, b byte) error {
	_, err := w.Write([]byte{b})
	return err
}

func writeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
