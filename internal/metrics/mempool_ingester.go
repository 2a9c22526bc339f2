package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

var (
	mempoolFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "fetch_total",
		Help:      "Count of mempool snapshot fetches.",
	}, []string{"coin", "network", "status"})

	mempoolFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of fetching new mempool txids.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	mempoolFetchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "fetch_size",
		Help:      "Number of previously unseen txids per fetch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"coin", "network"})

	mempoolProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "process_batch_total",
		Help:      "Count of processed txid batches.",
	}, []string{"coin", "network", "status"})

	mempoolProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a batch of txids.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	mempoolProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "process_batch_size",
		Help:      "Number of transactions processed per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"coin", "network"})

	mempoolProcessTransactionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "mempool_ingester",
		Name:      "process_transaction_duration_seconds",
		Help:      "Duration of fetching and decoding a single transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})
)

// MempoolIngester tracks metrics for the mempool ingestion pipeline.
type MempoolIngester struct {
	coin    model.Coin
	network model.Network
}

// NewMempoolIngester constructs a MempoolIngester with sane defaults.
func NewMempoolIngester(coin model.Coin, network model.Network) *MempoolIngester {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &MempoolIngester{coin: coin, network: network}
}

// ObserveFetch records a mempool snapshot fetch with the number of new txids.
func (m MempoolIngester) ObserveFetch(err error, txids int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolFetchTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	mempoolFetchDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		mempoolFetchSize.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(txids))
	}
}

// ObserveProcessBatch records processing of a batch of txids.
func (m MempoolIngester) ObserveProcessBatch(err error, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolProcessBatchTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	mempoolProcessBatchDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
	mempoolProcessBatchSize.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(txs))
}

// ObserveProcessTransaction records handling of a single transaction.
func (m MempoolIngester) ObserveProcessTransaction(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mempoolProcessTransactionDuration.WithLabelValues(string(m.coin), string(m.network), status).
		Observe(time.Since(started).Seconds())
}
