// Package bitcoin feeds Bitcoin mempool data into the ingestion pipeline.
package bitcoin

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

type (
	// RPCClient is the node RPC surface the mempool source depends on.
	RPCClient interface {
		GetRawMempool() ([]*chainhash.Hash, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}
)
