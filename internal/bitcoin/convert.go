package bitcoin

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/wire"
	"github.com/goodnatureofminers/txdecoder7000-backend/pkg/safe"
)

// BuildInsertTransaction decodes one raw transaction and maps it to storage
// rows. Size, vsize and weight are derived from the raw payload and its
// witness-stripped serialization.
func BuildInsertTransaction(raw []byte, network model.Network, firstSeen time.Time) (*model.InsertTransaction, error) {
	tx, err := wire.DecodeTransaction(raw)
	if err != nil {
		return nil, fmt.Errorf("decode transaction: %w", err)
	}

	var stripped bytes.Buffer
	if err := tx.SerializeNoWitness(&stripped); err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}

	txid := tx.TxID().String()

	base := uint64(stripped.Len())
	total := uint64(len(raw))
	weight64 := base*3 + total

	size, err := safe.Uint32(total)
	if err != nil {
		return nil, fmt.Errorf("tx %s size overflow: %w", txid, err)
	}
	weight, err := safe.Uint32(weight64)
	if err != nil {
		return nil, fmt.Errorf("tx %s weight overflow: %w", txid, err)
	}
	vsize := (weight + 3) / 4

	inputCount, err := safe.Uint32(len(tx.Inputs))
	if err != nil {
		return nil, fmt.Errorf("tx %s input count overflow: %w", txid, err)
	}
	outputCount, err := safe.Uint32(len(tx.Outputs))
	if err != nil {
		return nil, fmt.Errorf("tx %s output count overflow: %w", txid, err)
	}

	inputs := make([]model.TransactionInput, 0, len(tx.Inputs))
	for idx, in := range tx.Inputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s input index overflow: %w", txid, err)
		}
		inputs = append(inputs, model.TransactionInput{
			Coin:         model.BTC,
			Network:      network,
			TxID:         txid,
			Index:        index,
			PrevTxID:     in.PreviousOutPoint.Hash.String(),
			PrevVout:     in.PreviousOutPoint.Index,
			Sequence:     in.Sequence,
			IsCoinbase:   isCoinbase(in),
			ScriptSigHex: hex.EncodeToString(in.SignatureScript),
			Witness:      in.Witness.HexStrings(),
		})
	}

	outputs := make([]model.TransactionOutput, 0, len(tx.Outputs))
	for idx, out := range tx.Outputs {
		index, err := safe.Uint32(idx)
		if err != nil {
			return nil, fmt.Errorf("tx %s output index overflow: %w", txid, err)
		}
		outputs = append(outputs, model.TransactionOutput{
			Coin:         model.BTC,
			Network:      network,
			TxID:         txid,
			Index:        index,
			Value:        out.Value,
			ScriptPubKey: hex.EncodeToString(out.PkScript),
		})
	}

	return &model.InsertTransaction{
		Tx: model.Transaction{
			Coin:        model.BTC,
			Network:     network,
			TxID:        txid,
			FirstSeen:   firstSeen,
			Size:        size,
			VSize:       vsize,
			Weight:      weight,
			Version:     tx.Version,
			LockTime:    tx.LockTime,
			InputCount:  inputCount,
			OutputCount: outputCount,
			IsSegwit:    tx.HasWitness(),
		},
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

func isCoinbase(in *wire.TxIn) bool {
	return in.PreviousOutPoint.Hash == (wire.TxID{}) && in.PreviousOutPoint.Index == math.MaxUint32
}
