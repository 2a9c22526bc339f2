package wire

import (
	"io"
	"math"
)

// Marker bytes selecting the wider compact size encodings.
const (
	compactSizeU16 = 0xfd
	compactSizeU32 = 0xfe
	compactSizeU64 = 0xff
)

// readCompactSize decodes the variable-width length prefix. The decode is
// permissive: a value carried in a wider form than necessary (0xfd followed
// by a two-byte 1, say) is accepted as-is. Legacy streams contain such
// encodings and they must keep parsing.
func readCompactSize(r *reader) (uint64, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, err
	}

	switch b {
	case compactSizeU16:
		v, err := r.readUint16()
		return uint64(v), err
	case compactSizeU32:
		v, err := r.readUint32()
		return uint64(v), err
	case compactSizeU64:
		return r.readUint64()
	default:
		return uint64(b), nil
	}
}

// writeCompactSize encodes v in the narrowest of the four forms. Encode is
// canonical even though decode is permissive.
func writeCompactSize(w io.Writer, v uint64) error {
	switch {
	case v < compactSizeU16:
		return writeByte(w, byte(v))
	case v <= math.MaxUint16:
		if err := writeByte(w, compactSizeU16); err != nil {
			return err
		}
		return writeUint16(w, uint16(v))
	case v <= math.MaxUint32:
		if err := writeByte(w, compactSizeU32); err != nil {
			return err
		}
		return writeUint32(w, uint32(v))
	default:
		if err := writeByte(w, compactSizeU64); err != nil {
			return err
		}
		return writeUint64(w, v)
	}
}
