// Package wire implements the Bitcoin-family transaction wire codec: decode
// of the full record including an optional segwit witness section, the
// legacy-only (witness-free) serialization, and the double-SHA-256
// identifier derived from it.
package wire

import (
	"bytes"
	"io"
)

// segwitFlag is the only witness scheme flag byte the codec supports.
const segwitFlag = 0x01

// Smallest possible encoded sizes, used to bound count-driven allocations
// against the remaining payload.
const (
	minTxInSize  = TxIDLen + 4 + 1 + 4
	minTxOutSize = 8 + 1
)

// OutPoint addresses one output of a previous transaction.
type OutPoint struct {
	Hash  TxID
	Index uint32
}

// TxIn is a transaction input. Witness stays empty unless the record carried
// a witness section.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
	Witness          Witness
}

// TxOut is a transaction output. Value counts the smallest currency unit;
// scaling to a display amount is a presentation concern.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// Transaction is a decoded transaction record. Input and output order is
// significant: it is part of the hashed bytes. Instances are not mutated
// after decode; the encode paths only read them.
type Transaction struct {
	Version  uint32
	Inputs   []*TxIn
	Outputs  []*TxOut
	LockTime uint32
}

// DecodeTransaction parses one full transaction record from raw, witness
// section included. A zero-length input list is not a decodable spend; it
// marks a segwit record, whose real input list follows a flag byte. Trailing
// bytes after the record are ignored.
func DecodeTransaction(raw []byte) (*Transaction, error) {
	r := newReader(raw)

	version, err := r.readUint32()
	if err != nil {
		return nil, err
	}

	inputs, err := readTxIns(r)
	if err != nil {
		return nil, err
	}

	if len(inputs) == 0 {
		flag, err := r.readByte()
		if err != nil {
			return nil, err
		}
		if flag != segwitFlag {
			return nil, &SegwitFlagError{Flag: flag}
		}
		return decodeSegwit(r, version)
	}

	outputs, err := readTxOuts(r)
	if err != nil {
		return nil, err
	}

	lockTime, err := r.readUint32()
	if err != nil {
		return nil, err
	}

	return &Transaction{
		Version:  version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}, nil
}

// decodeSegwit continues after the flag byte: the real input list, the
// outputs, then one witness section per input, then the lock time. A record
// that declares the witness flag, has inputs, and carries only empty
// witnesses is malformed.
func decodeSegwit(r *reader, version uint32) (*Transaction, error) {
	inputs, err := readTxIns(r)
	if err != nil {
		return nil, err
	}

	outputs, err := readTxOuts(r)
	if err != nil {
		return nil, err
	}

	haveWitness := false
	for _, in := range inputs {
		w, err := readWitness(r)
		if err != nil {
			return nil, err
		}
		in.Witness = w
		if len(w) > 0 {
			haveWitness = true
		}
	}
	if len(inputs) > 0 && !haveWitness {
		return nil, &ParseError{Reason: "witness flag set but no witnesses present"}
	}

	lockTime, err := r.readUint32()
	if err != nil {
		return nil, err
	}

	return &Transaction{
		Version:  version,
		Inputs:   inputs,
		Outputs:  outputs,
		LockTime: lockTime,
	}, nil
}

func readTxIns(r *reader) ([]*TxIn, error) {
	count, err := readCompactSize(r)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if count > uint64(r.remaining())/minTxInSize {
		return nil, ErrTruncated
	}

	inputs := make([]*TxIn, 0, count)
	for i := uint64(0); i < count; i++ {
		in, err := readTxIn(r)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func readTxIn(r *reader) (*TxIn, error) {
	var in TxIn
	if err := r.readTxID(&in.PreviousOutPoint.Hash); err != nil {
		return nil, err
	}

	index, err := r.readUint32()
	if err != nil {
		return nil, err
	}
	in.PreviousOutPoint.Index = index

	scriptLen, err := readCompactSize(r)
	if err != nil {
		return nil, err
	}
	in.SignatureScript, err = r.readBytes(scriptLen)
	if err != nil {
		return nil, err
	}

	in.Sequence, err = r.readUint32()
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func readTxOuts(r *reader) ([]*TxOut, error) {
	count, err := readCompactSize(r)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if count > uint64(r.remaining())/minTxOutSize {
		return nil, ErrTruncated
	}

	outputs := make([]*TxOut, 0, count)
	for i := uint64(0); i < count; i++ {
		var out TxOut
		out.Value, err = r.readUint64()
		if err != nil {
			return nil, err
		}

		scriptLen, err := readCompactSize(r)
		if err != nil {
			return nil, err
		}
		out.PkScript, err = r.readBytes(scriptLen)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, &out)
	}
	return outputs, nil
}

// SerializeNoWitness writes the legacy serialization: version, inputs,
// outputs, lock time, with witness data never written. The identifier hashes
// exactly these bytes, so re-encoding a witness-carrying record does not
// reproduce its original payload; only this witness-free subset round-trips.
func (tx *Transaction) SerializeNoWitness(w io.Writer) error {
	if err := writeUint32(w, tx.Version); err != nil {
		return err
	}

	if err := writeCompactSize(w, uint64(len(tx.Inputs))); err != nil {
		return err
	}
	for _, in := range tx.Inputs {
		if _, err := w.Write(in.PreviousOutPoint.Hash[:]); err != nil {
			return err
		}
		if err := writeUint32(w, in.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := writeCompactSize(w, uint64(len(in.SignatureScript))); err != nil {
			return err
		}
		if _, err := w.Write(in.SignatureScript); err != nil {
			return err
		}
		if err := writeUint32(w, in.Sequence); err != nil {
			return err
		}
	}

	if err := writeCompactSize(w, uint64(len(tx.Outputs))); err != nil {
		return err
	}
	for _, out := range tx.Outputs {
		if err := writeUint64(w, out.Value); err != nil {
			return err
		}
		if err := writeCompactSize(w, uint64(len(out.PkScript))); err != nil {
			return err
		}
		if _, err := w.Write(out.PkScript); err != nil {
			return err
		}
	}

	return writeUint32(w, tx.LockTime)
}

// TxID derives the identifier by double-hashing the legacy serialization.
func (tx *Transaction) TxID() TxID {
	var buf bytes.Buffer
	// Writes to a bytes.Buffer cannot fail.
	_ = tx.SerializeNoWitness(&buf)
	return NewTxID(buf.Bytes())
}

// HasWitness reports whether any input carries a non-empty witness stack.
func (tx *Transaction) HasWitness() bool {
	for _, in := range tx.Inputs {
		if len(in.Witness) > 0 {
			return true
		}
	}
	return false
}
