package ingester

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/clock"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// MempoolIngesterService polls the node's mempool and stores transactions it
// has not seen yet.
type MempoolIngesterService struct {
	logger                 *zap.Logger
	coin                   model.Coin
	network                model.Network
	metrics                MempoolIngesterMetrics
	sleep                  func(context.Context, time.Duration) error
	idleSleepDuration      time.Duration
	postBatchSleepDuration time.Duration
	txFetcher              TxFetcher
	txProcessor            TxProcessor
	txWriter               TxWriter
}

func NewMempoolIngesterService(
	repo ClickhouseRepository,
	source MempoolSource,
	metrics MempoolIngesterMetrics,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) (*MempoolIngesterService, error) {
	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)

	if metrics == nil {
		return nil, errors.New("mempool ingester metrics is required")
	}

	tw := newMempoolTxWriter(repo, logger)

	return &MempoolIngesterService{
		logger:                 logger,
		coin:                   coin,
		network:                network,
		metrics:                metrics,
		sleep:                  clock.SleepWithContext,
		idleSleepDuration:      idleSleepDuration,
		postBatchSleepDuration: postBatchSleepDuration,
		txFetcher: &mempoolTxFetcher{
			source:     source,
			repository: repo,
			coin:       coin,
			network:    network,
			limit:      fetchBatchLimit,
		},
		txWriter: tw,
		txProcessor: &mempoolTxProcessor{
			workerCount: defaultWorkerCount,
			source:      source,
			txWriter:    tw,
			metrics:     metrics,
			logger:      logger.Named("txProcessor"),
		},
	}, nil
}

func (s *MempoolIngesterService) Run(ctx context.Context) error {
	twCtx, twCancel := context.WithCancel(ctx)
	s.txProcessor.SetCancel(twCancel)

	s.txWriter.Start(twCtx)
	defer func() {
		twCancel()
		s.txWriter.Stop()
	}()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.idleSleepDuration))
			if sleepErr := s.sleep(ctx, s.idleSleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *MempoolIngesterService) run(ctx context.Context) error {
	started := time.Now()
	txids, err := s.txFetcher.Fetch(ctx)
	s.observeFetch(err, len(txids), started)
	if err != nil {
		s.logger.Error("fetch mempool txids failed", zap.Error(err))
		return err
	}

	if len(txids) == 0 {
		s.logger.Info("no new mempool transactions; going idle", zap.Duration("sleep", s.idleSleepDuration))
		return s.sleep(ctx, s.idleSleepDuration)
	}

	s.logger.Info("processing batch", zap.Int("tx_count", len(txids)))
	started = time.Now()
	if err := s.txProcessor.Process(ctx, txids); err != nil {
		s.observeProcessBatch(err, len(txids), started)
		s.logger.Error("process batch failed", zap.Int("tx_count", len(txids)), zap.Error(err))
		return err
	}
	s.observeProcessBatch(nil, len(txids), started)

	return s.sleep(ctx, s.postBatchSleepDuration)
}

func (s *MempoolIngesterService) observeFetch(err error, txids int, started time.Time) {
	s.metrics.ObserveFetch(err, txids, started)
}

func (s *MempoolIngesterService) observeProcessBatch(err error, txs int, started time.Time) {
	s.metrics.ObserveProcessBatch(err, txs, started)
}
