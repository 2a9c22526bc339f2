package rpcclient

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type ObservedClient struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

func NewObservedClient(client *rpcclient.Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) GetRawMempool() (txids []*chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_mempool", err, started)
	}()
	return r.client.GetRawMempool()
}

func (r *ObservedClient) GetRawTransactionVerbose(txHash *chainhash.Hash) (res *btcjson.TxRawResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_raw_transaction_verbose", err, started)
	}()
	return r.client.GetRawTransactionVerbose(txHash)
}
