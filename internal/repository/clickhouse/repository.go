package clickhouse

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// Repository reads and writes mempool transaction rows.
type Repository struct {
	conn    Conn
	metrics Metrics
}

// NewRepository connects to ClickHouse using the given DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, metrics: metrics}, nil
}

// driverConn narrows the driver connection to the Conn surface so the
// repository can be exercised against mocks.
type driverConn struct {
	conn clickhouse.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}
