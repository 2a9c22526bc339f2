// Package view maps decoded transactions to their JSON presentation.
package view

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/wire"
)

// Transaction is the rendered form of a decoded transaction. Struct field
// order is the rendered field order.
type Transaction struct {
	TransactionID string   `json:"transaction_id"`
	Version       uint32   `json:"version"`
	Inputs        []Input  `json:"inputs"`
	Outputs       []Output `json:"outputs"`
	LockTime      uint32   `json:"locktime"`
}

// Input renders either the signature script or the witness stack, never
// both. Legacy inputs keep scriptSig even when the script is empty.
type Input struct {
	TxID      string   `json:"txid"`
	Vout      uint32   `json:"vout"`
	ScriptSig *string  `json:"scriptSig,omitempty"`
	Witness   []string `json:"txinwitness,omitempty"`
	Sequence  uint32   `json:"sequence"`
}

// Output carries the amount in BTC rather than satoshi.
type Output struct {
	Amount       float64 `json:"amount"`
	ScriptPubKey string  `json:"script_pubkey"`
}

// NewTransaction builds the presentation form of tx. Input and output
// slices are never nil so empty lists render as [].
func NewTransaction(tx *wire.Transaction) Transaction {
	inputs := make([]Input, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		inputs = append(inputs, newInput(in))
	}

	outputs := make([]Output, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		outputs = append(outputs, Output{
			Amount:       btcutil.Amount(out.Value).ToBTC(),
			ScriptPubKey: hex.EncodeToString(out.PkScript),
		})
	}

	return Transaction{
		TransactionID: tx.TxID().String(),
		Version:       tx.Version,
		Inputs:        inputs,
		Outputs:       outputs,
		LockTime:      tx.LockTime,
	}
}

func newInput(in *wire.TxIn) Input {
	out := Input{
		TxID:     in.PreviousOutPoint.Hash.String(),
		Vout:     in.PreviousOutPoint.Index,
		Sequence: in.Sequence,
	}

	if len(in.Witness) > 0 {
		out.Witness = in.Witness.HexStrings()
		return out
	}

	scriptSig := hex.EncodeToString(in.SignatureScript)
	out.ScriptSig = &scriptSig
	return out
}
