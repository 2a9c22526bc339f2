package ingester

import (
	"context"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
	"github.com/goodnatureofminers/txdecoder7000-backend/pkg/batcher"
)

type mempoolTxWriter struct {
	repo      ClickhouseRepository
	logger    *zap.Logger
	txBatcher *batcher.Batcher[model.InsertTransaction]
}

func newMempoolTxWriter(repo ClickhouseRepository, logger *zap.Logger) *mempoolTxWriter {
	w := &mempoolTxWriter{
		repo:   repo,
		logger: logger,
	}

	w.txBatcher = batcher.New[model.InsertTransaction](
		logger.Named("txBatcher"),
		w.flush,
		txBatcherCapacity,
		txBatcherFlushInterval,
		txBatcherRPS,
	)
	return w
}

func (w *mempoolTxWriter) Start(ctx context.Context) {
	w.txBatcher.Start(ctx)
}

func (w *mempoolTxWriter) Stop() {
	w.txBatcher.Stop()
}

func (w *mempoolTxWriter) WriteTransaction(ctx context.Context, tx model.InsertTransaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.txBatcher.Add(ctx, tx)
}

// flush stores the batched rows. The summary rows go last: KnownTxIDs keys
// off mempool_transactions, so a txid only becomes visible once its inputs
// and outputs are already written.
func (w *mempoolTxWriter) flush(ctx context.Context, rows []model.InsertTransaction) error {
	txs := make([]model.Transaction, 0, len(rows))
	inputs := make([]model.TransactionInput, 0, len(rows))
	outputs := make([]model.TransactionOutput, 0, len(rows))

	for _, row := range rows {
		txs = append(txs, row.Tx)
		inputs = append(inputs, row.Inputs...)
		outputs = append(outputs, row.Outputs...)

		if len(inputs) >= inputFlushThreshold {
			if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionInputs", zap.Int("count", len(inputs)))
			inputs = inputs[:0]
		}
		if len(outputs) >= outputFlushThreshold {
			if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
				return err
			}
			w.logger.Debug("InsertTransactionOutputs", zap.Int("count", len(outputs)))
			outputs = outputs[:0]
		}
	}

	if err := w.repo.InsertTransactionInputs(ctx, inputs); err != nil {
		return err
	}
	if err := w.repo.InsertTransactionOutputs(ctx, outputs); err != nil {
		return err
	}

	return w.repo.InsertTransactions(ctx, txs)
}
