package view

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// StoredTransaction renders a previously ingested transaction together with
// the mempool metadata captured at ingestion time. Inputs and outputs render
// exactly like a freshly decoded transaction.
type StoredTransaction struct {
	TransactionID string    `json:"transaction_id"`
	Version       uint32    `json:"version"`
	Inputs        []Input   `json:"inputs"`
	Outputs       []Output  `json:"outputs"`
	LockTime      uint32    `json:"locktime"`
	Size          uint32    `json:"size"`
	VSize         uint32    `json:"vsize"`
	Weight        uint32    `json:"weight"`
	IsSegwit      bool      `json:"is_segwit"`
	FirstSeen     time.Time `json:"first_seen"`
}

// NewStoredTransaction builds the presentation form of stored rows.
func NewStoredTransaction(tx *model.Transaction, inputs []model.TransactionInput, outputs []model.TransactionOutput) StoredTransaction {
	ins := make([]Input, 0, len(inputs))
	for _, in := range inputs {
		ins = append(ins, newStoredInput(in))
	}

	outs := make([]Output, 0, len(outputs))
	for _, out := range outputs {
		outs = append(outs, Output{
			Amount:       btcutil.Amount(out.Value).ToBTC(),
			ScriptPubKey: out.ScriptPubKey,
		})
	}

	return StoredTransaction{
		TransactionID: tx.TxID,
		Version:       tx.Version,
		Inputs:        ins,
		Outputs:       outs,
		LockTime:      tx.LockTime,
		Size:          tx.Size,
		VSize:         tx.VSize,
		Weight:        tx.Weight,
		IsSegwit:      tx.IsSegwit,
		FirstSeen:     tx.FirstSeen,
	}
}

func newStoredInput(in model.TransactionInput) Input {
	out := Input{
		TxID:     in.PrevTxID,
		Vout:     in.PrevVout,
		Sequence: in.Sequence,
	}

	if len(in.Witness) > 0 {
		out.Witness = in.Witness
		return out
	}

	scriptSig := in.ScriptSigHex
	out.ScriptSig = &scriptSig
	return out
}
