// Package ingester contains the mempool ingestion services.
package ingester

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txdecoder7000-backend/pkg/workerpool"
)

type mempoolTxProcessor struct {
	workerCount int
	source      MempoolSource
	txWriter    TxWriter
	metrics     MempoolIngesterMetrics
	logger      *zap.Logger
	cancel      func()
}

func (p *mempoolTxProcessor) SetCancel(cancel func()) {
	p.cancel = cancel
}

func (p *mempoolTxProcessor) Process(ctx context.Context, txids []string) error {
	return workerpool.Process(ctx, p.workerCount, txids, p.processTransaction, p.cancel)
}

func (p *mempoolTxProcessor) processTransaction(ctx context.Context, txid string) (err error) {
	started := time.Now()
	defer func() {
		p.observeTransaction(err, started)
	}()

	row, err := p.source.FetchTransaction(ctx, txid)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("fetch transaction failed", zap.String("txid", txid), zap.Error(err))
		}
		return fmt.Errorf("fetch transaction %s: %w", txid, err)
	}

	if err = p.txWriter.WriteTransaction(ctx, *row); err != nil {
		if p.logger != nil {
			p.logger.Error("write transaction failed", zap.String("txid", txid), zap.Error(err))
		}
		return fmt.Errorf("write transaction %s: %w", txid, err)
	}

	return nil
}

func (p *mempoolTxProcessor) observeTransaction(err error, started time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveProcessTransaction(err, started)
}
