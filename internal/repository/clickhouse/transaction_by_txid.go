package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// TransactionByTxID returns one stored transaction summary, or nil when the
// txid has not been ingested.
func (r *Repository) TransactionByTxID(ctx context.Context, coin model.Coin, network model.Network, txid string) (*model.Transaction, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_by_txid", coin, network, err, start)
	}()

	const query = `
SELECT
	first_seen,
	size,
	vsize,
	weight,
	version,
	locktime,
	input_count,
	output_count,
	is_segwit
FROM mempool_transactions
WHERE coin = ? AND network = ? AND txid = CAST(? AS FixedString(64))
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, coin, network, txid)
	if err != nil {
		return nil, fmt.Errorf("query transaction by txid: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate transaction by txid: %w", err)
		}
		return nil, nil
	}

	tx := model.Transaction{Coin: coin, Network: network, TxID: txid}
	if err = rows.Scan(
		&tx.FirstSeen,
		&tx.Size,
		&tx.VSize,
		&tx.Weight,
		&tx.Version,
		&tx.LockTime,
		&tx.InputCount,
		&tx.OutputCount,
		&tx.IsSegwit,
	); err != nil {
		return nil, fmt.Errorf("scan transaction: %w", err)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction by txid: %w", err)
	}

	return &tx, nil
}
