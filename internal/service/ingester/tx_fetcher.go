package ingester

import (
	"context"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

type mempoolTxFetcher struct {
	source     MempoolSource
	repository ClickhouseRepository
	coin       model.Coin
	network    model.Network
	limit      int
}

// Fetch returns mempool txids not yet stored, capped at the batch limit.
func (f *mempoolTxFetcher) Fetch(ctx context.Context) ([]string, error) {
	txids, err := f.source.TxIDs(ctx)
	if err != nil {
		return nil, err
	}
	if len(txids) == 0 {
		return nil, nil
	}

	known, err := f.repository.KnownTxIDs(ctx, f.coin, f.network, txids)
	if err != nil {
		return nil, err
	}

	fresh := make([]string, 0, len(txids))
	for _, txid := range txids {
		if _, ok := known[txid]; ok {
			continue
		}
		fresh = append(fresh, txid)
		if len(fresh) == f.limit {
			break
		}
	}
	return fresh, nil
}
