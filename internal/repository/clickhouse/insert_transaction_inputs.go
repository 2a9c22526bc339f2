package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// InsertTransactionInputs stores mempool transaction inputs in ClickHouse.
func (r *Repository) InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_inputs", firstCoin(inputs), firstNetwork(inputs), err, start)
	}()

	if len(inputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO mempool_transaction_inputs (
	coin,
	network,
	txid,
	input_index,
	prev_txid,
	prev_vout,
	sequence,
	is_coinbase,
	script_sig_hex,
	witness
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction inputs batch: %w", err)
	}

	for _, in := range inputs {
		if err = batch.Append(
			string(in.Coin),
			string(in.Network),
			in.TxID,
			in.Index,
			in.PrevTxID,
			in.PrevVout,
			in.Sequence,
			in.IsCoinbase,
			in.ScriptSigHex,
			in.Witness,
		); err != nil {
			return fmt.Errorf("append transaction input: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction inputs: %w", err)
	}
	return nil
}
