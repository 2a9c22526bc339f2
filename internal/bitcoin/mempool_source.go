package bitcoin

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

// MempoolSource reads the node's mempool and converts entries into rows ready
// for ingestion.
type MempoolSource struct {
	rpc     RPCClient
	network model.Network
	now     func() time.Time
}

// NewMempoolSource creates a MempoolSource for Bitcoin.
func NewMempoolSource(rpc RPCClient, network model.Network) *MempoolSource {
	return &MempoolSource{
		rpc:     rpc,
		network: network,
		now:     time.Now,
	}
}

// TxIDs returns the txids currently in the node's mempool in display form.
func (s *MempoolSource) TxIDs(_ context.Context) ([]string, error) {
	hashes, err := s.rpc.GetRawMempool()
	if err != nil {
		return nil, fmt.Errorf("get raw mempool: %w", err)
	}

	txids := make([]string, 0, len(hashes))
	for _, hash := range hashes {
		txids = append(txids, hash.String())
	}
	return txids, nil
}

// FetchTransaction retrieves one mempool transaction, decodes its raw bytes
// and cross-checks the derived txid against the node's.
func (s *MempoolSource) FetchTransaction(ctx context.Context, txid string) (*model.InsertTransaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return nil, fmt.Errorf("parse txid %s: %w", txid, err)
	}
	src, err := s.rpc.GetRawTransactionVerbose(hash)
	if err != nil {
		return nil, fmt.Errorf("get raw transaction %s: %w", txid, err)
	}

	raw, err := hex.DecodeString(src.Hex)
	if err != nil {
		return nil, fmt.Errorf("tx %s hex decode: %w", txid, err)
	}

	row, err := BuildInsertTransaction(raw, s.network, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("tx %s: %w", txid, err)
	}

	if row.Tx.TxID != src.Txid {
		return nil, fmt.Errorf("tx %s: decoded txid %s does not match node txid %s", txid, row.Tx.TxID, src.Txid)
	}
	return row, nil
}
