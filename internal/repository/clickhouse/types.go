// Package clickhouse stores and reads mempool transactions in ClickHouse.
package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Conn is the slice of the ClickHouse driver the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
	}

	// Batch accumulates rows for a single INSERT.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Rows iterates over a query result.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Close() error
		Err() error
	}

	// Metrics observes repository operations.
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time)
	}
)

func firstCoin[T any](items []T) model.Coin {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.Transaction:
		return v.Coin
	case model.TransactionInput:
		return v.Coin
	case model.TransactionOutput:
		return v.Coin
	default:
		return ""
	}
}

func firstNetwork[T any](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.Transaction:
		return v.Network
	case model.TransactionInput:
		return v.Network
	case model.TransactionOutput:
		return v.Network
	default:
		return ""
	}
}
