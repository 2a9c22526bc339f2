package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "txdecoder7000",
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of node RPC operations.",
	}, []string{"operation", "coin", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "txdecoder7000",
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// RPCClient tracks metrics for RPC calls to blockchain nodes.
type RPCClient struct {
	coin    model.Coin
	network model.Network
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{coin: coin, network: network}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	rpcRequestsTotal.WithLabelValues(operation, string(m.coin), string(m.network), status).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
}
