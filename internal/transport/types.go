package transport

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// TransactionStore reads previously ingested transactions.
type TransactionStore interface {
	TransactionByTxID(ctx context.Context, coin model.Coin, network model.Network, txid string) (*model.Transaction, error)
	TransactionInputs(ctx context.Context, coin model.Coin, network model.Network, txid string) ([]model.TransactionInput, error)
	TransactionOutputs(ctx context.Context, coin model.Coin, network model.Network, txid string) ([]model.TransactionOutput, error)
}

// HandlerMetrics records one served request per route.
type HandlerMetrics interface {
	Observe(route string, code int, started time.Time)
}
