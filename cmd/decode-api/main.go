package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/metrics"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/repository/clickhouse"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/transport"
)

type config struct {
	Addr          string        `long:"addr" env:"DECODE_API_ADDR" description:"addr" default:":8000"`
	MetricsAddr   string        `long:"metrics-addr" env:"DECODE_API_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"DECODE_API_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Coin          model.Coin    `long:"coin" env:"DECODE_API_COIN" description:"coin name" required:"true"`
	Network       model.Network `long:"network" env:"DECODE_API_NETWORK" description:"network name" required:"true"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("decode api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	handler := transport.NewDecodeHandler(repo, metrics.NewDecodeHandler(), cfg.Coin, cfg.Network, logger)

	mux := http.NewServeMux()
	handler.Register(mux)

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
