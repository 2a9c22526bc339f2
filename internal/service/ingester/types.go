package ingester

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TxFetcher interface {
		Fetch(ctx context.Context) ([]string, error)
	}
	TxProcessor interface {
		Process(ctx context.Context, txids []string) error
		SetCancel(cancel func())
	}
	TxWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteTransaction(ctx context.Context, tx model.InsertTransaction) error
	}
	MempoolIngesterMetrics interface {
		ObserveFetch(err error, txids int, started time.Time)
		ObserveProcessBatch(err error, txs int, started time.Time)
		ObserveProcessTransaction(err error, started time.Time)
	}

	MempoolSource interface {
		TxIDs(ctx context.Context) ([]string, error)
		FetchTransaction(ctx context.Context, txid string) (*model.InsertTransaction, error)
	}
	ClickhouseRepository interface {
		KnownTxIDs(ctx context.Context, coin model.Coin, network model.Network, txids []string) (map[string]struct{}, error)
		InsertTransactions(ctx context.Context, txs []model.Transaction) error
		InsertTransactionInputs(ctx context.Context, inputs []model.TransactionInput) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.TransactionOutput) error
	}
)
