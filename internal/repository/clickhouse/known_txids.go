package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// KnownTxIDs returns which of the given txids are already stored.
func (r *Repository) KnownTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (map[string]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("known_txids", coin, network, err, start)
	}()

	known := make(map[string]struct{}, len(txids))
	if len(txids) == 0 {
		return known, nil
	}

	const query = `
SELECT txid
FROM mempool_transactions
WHERE coin = ? AND network = ? AND txid IN ?`

	rows, err := r.conn.Query(ctx, query, coin, network, txids)
	if err != nil {
		return nil, fmt.Errorf("query known txids: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	for rows.Next() {
		var txid string
		if err = rows.Scan(&txid); err != nil {
			return nil, fmt.Errorf("scan txid: %w", err)
		}
		known[txid] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate known txids: %w", err)
	}

	return known, nil
}
