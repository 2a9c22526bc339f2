package wire

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// TxIDLen is the byte length of a transaction identifier.
const TxIDLen = 32

// TxID identifies a transaction: the double SHA-256 of its legacy
// serialization. The bytes are kept in wire order, which is the order used
// for hashing and for cross-references inside other transactions; the
// conventional display form reverses them.
type TxID [TxIDLen]byte

// NewTxID hashes payload twice with SHA-256 and keeps the second digest,
// unreversed, as the identifier bytes.
func NewTxID(payload []byte) TxID {
	return TxID(chainhash.DoubleHashH(payload))
}

// ParseTxID converts the display form (reversed-byte hex) back into an
// identifier.
func ParseTxID(s string) (TxID, error) {
	if len(s) != TxIDLen*2 {
		return TxID{}, fmt.Errorf("txid must be %d hex characters, got %d", TxIDLen*2, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return TxID{}, fmt.Errorf("decode txid hex: %w", err)
	}
	var id TxID
	for i, b := range raw {
		id[TxIDLen-1-i] = b
	}
	return id, nil
}

// String renders the identifier as hex with the byte order reversed. The
// reversal happens only here; storage and hashing never reorder.
func (id TxID) String() string {
	return hex.EncodeToString(id.reversed())
}

// MarshalText implements encoding.TextMarshaler using the display form.
func (id TxID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id TxID) reversed() []byte {
	out := make([]byte, TxIDLen)
	for i, b := range id {
		out[TxIDLen-1-i] = b
	}
	return out
}
