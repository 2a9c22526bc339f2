package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// TransactionOutputs returns the stored outputs of a transaction ordered by
// output index.
func (r *Repository) TransactionOutputs(ctx context.Context, coin model.Coin, network model.Network, txid string) ([]model.TransactionOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_outputs", coin, network, err, start)
	}()

	const query = `
SELECT
	output_index,
	value,
	script_pubkey_hex
FROM mempool_transaction_outputs
WHERE coin = ? AND network = ? AND txid = CAST(? AS FixedString(64))
ORDER BY output_index ASC`

	rows, err := r.conn.Query(ctx, query, coin, network, txid)
	if err != nil {
		return nil, fmt.Errorf("query transaction outputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var outputs []model.TransactionOutput
	for rows.Next() {
		output := model.TransactionOutput{Coin: coin, Network: network, TxID: txid}
		if err = rows.Scan(
			&output.Index,
			&output.Value,
			&output.ScriptPubKey,
		); err != nil {
			return nil, fmt.Errorf("scan transaction output: %w", err)
		}

		outputs = append(outputs, output)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction outputs: %w", err)
	}

	return outputs, nil
}
