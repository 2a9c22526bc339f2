package wire

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
)

// Witness is the ordered stack of opaque byte strings attached to one input.
// An empty stack is the canonical "no witness data" state; whether a witness
// section exists at all is decided one level up by the record codec.
type Witness [][]byte

// readWitness decodes one per-input witness section. The stack item count is
// a single raw byte, not a compact size, which caps a stack at 255 items.
func readWitness(r *reader) (Witness, error) {
	count, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	items := make(Witness, 0, count)
	for i := 0; i < int(count); i++ {
		n, err := readCompactSize(r)
		if err != nil {
			return nil, err
		}
		item, err := r.readBytes(n)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Serialize writes the section: one count byte, then each item as a compact
// size length followed by its bytes. The legacy serialization never calls
// this; witness bytes stay outside the identifier hash.
func (w Witness) Serialize(wr io.Writer) error {
	if len(w) > math.MaxUint8 {
		return fmt.Errorf("witness stack has %d items, limit is %d", len(w), math.MaxUint8)
	}
	if err := writeByte(wr, byte(len(w))); err != nil {
		return err
	}
	for _, item := range w {
		if err := writeCompactSize(wr, uint64(len(item))); err != nil {
			return err
		}
		if _, err := wr.Write(item); err != nil {
			return err
		}
	}
	return nil
}

// HexStrings returns the stack items hex-encoded in order, the display form
// used by JSON output and stored rows.
func (w Witness) HexStrings() []string {
	if len(w) == 0 {
		return nil
	}
	out := make([]string, len(w))
	for i, item := range w {
		out[i] = hex.EncodeToString(item)
	}
	return out
}
