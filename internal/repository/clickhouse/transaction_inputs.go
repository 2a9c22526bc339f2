package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// TransactionInputs returns the stored inputs of a transaction ordered by
// input index.
func (r *Repository) TransactionInputs(ctx context.Context, coin model.Coin, network model.Network, txid string) ([]model.TransactionInput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_inputs", coin, network, err, start)
	}()

	const query = `
SELECT
	input_index,
	prev_txid,
	prev_vout,
	sequence,
	is_coinbase,
	script_sig_hex,
	witness
FROM mempool_transaction_inputs
WHERE coin = ? AND network = ? AND txid = CAST(? AS FixedString(64))
ORDER BY input_index ASC`

	rows, err := r.conn.Query(ctx, query, coin, network, txid)
	if err != nil {
		return nil, fmt.Errorf("query transaction inputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var inputs []model.TransactionInput
	for rows.Next() {
		input := model.TransactionInput{Coin: coin, Network: network, TxID: txid}
		if err = rows.Scan(
			&input.Index,
			&input.PrevTxID,
			&input.PrevVout,
			&input.Sequence,
			&input.IsCoinbase,
			&input.ScriptSigHex,
			&input.Witness,
		); err != nil {
			return nil, fmt.Errorf("scan transaction input: %w", err)
		}

		inputs = append(inputs, input)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction inputs: %w", err)
	}

	return inputs, nil
}
