package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// InsertTransactionOutputs stores mempool transaction outputs in ClickHouse.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", firstCoin(outputs), firstNetwork(outputs), err, start)
	}()

	if len(outputs) == 0 {
		return nil
	}

	const query = `
INSERT INTO mempool_transaction_outputs (
	coin,
	network,
	txid,
	output_index,
	value,
	script_pubkey_hex
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare transaction outputs batch: %w", err)
	}

	for _, out := range outputs {
		if err = batch.Append(
			string(out.Coin),
			string(out.Network),
			out.TxID,
			out.Index,
			out.Value,
			out.ScriptPubKey,
		); err != nil {
			return fmt.Errorf("append transaction output: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transaction outputs: %w", err)
	}
	return nil
}
