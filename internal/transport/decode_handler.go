// Package transport exposes the HTTP decode and lookup API.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/view"
	"github.com/goodnatureofminers/txdecoder7000-backend/internal/wire"
)

const maxDecodeBodyBytes = 8 << 20

// DecodeHandler serves transaction decoding and lookups of ingested
// transactions.
type DecodeHandler struct {
	store   TransactionStore
	coin    model.Coin
	network model.Network
	metrics HandlerMetrics
	logger  *zap.Logger
}

// NewDecodeHandler returns a DecodeHandler instance.
func NewDecodeHandler(
	store TransactionStore,
	metrics HandlerMetrics,
	coin model.Coin,
	network model.Network,
	logger *zap.Logger,
) *DecodeHandler {
	return &DecodeHandler{
		store:   store,
		coin:    coin,
		network: network,
		metrics: metrics,
		logger:  logger,
	}
}

// Register mounts the API routes on mux.
func (h *DecodeHandler) Register(mux *http.ServeMux) {
	mux.Handle("POST /v1/transactions/decode", h.observe("decode_transaction", h.decodeTransaction))
	mux.Handle("GET /v1/transactions/{txid}", h.observe("transaction_by_txid", h.transactionByTxID))
	mux.Handle("GET /health", h.observe("health", h.health))
}

type decodeRequest struct {
	RawTx string `json:"raw_tx"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// decodeTransaction renders the field tree of a hex encoded transaction.
// Hex errors are reported apart from wire format errors.
func (h *DecodeHandler) decodeTransaction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDecodeBodyBytes)

	var req decodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request body: %w", err))
		return
	}

	raw, err := hex.DecodeString(req.RawTx)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("hex decoding error: %w", err))
		return
	}

	tx, err := wire.DecodeTransaction(raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	h.writeJSON(w, http.StatusOK, view.NewTransaction(tx))
}

func (h *DecodeHandler) transactionByTxID(w http.ResponseWriter, r *http.Request) {
	txid := r.PathValue("txid")
	if _, err := wire.ParseTxID(txid); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	ctx := r.Context()
	tx, err := h.store.TransactionByTxID(ctx, h.coin, h.network, txid)
	if err != nil {
		h.logger.Error("TransactionByTxID", zap.String("txid", txid), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("transaction lookup failed"))
		return
	}
	if tx == nil {
		h.writeError(w, http.StatusNotFound, fmt.Errorf("transaction %s not found", txid))
		return
	}

	inputs, err := h.store.TransactionInputs(ctx, h.coin, h.network, txid)
	if err != nil {
		h.logger.Error("TransactionInputs", zap.String("txid", txid), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("transaction lookup failed"))
		return
	}

	outputs, err := h.store.TransactionOutputs(ctx, h.coin, h.network, txid)
	if err != nil {
		h.logger.Error("TransactionOutputs", zap.String("txid", txid), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errors.New("transaction lookup failed"))
		return
	}

	h.writeJSON(w, http.StatusOK, view.NewStoredTransaction(tx, inputs, outputs))
}

// health reports server health.
func (h *DecodeHandler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{Status: "healthy"})
}

// observe wraps next so the response code and duration reach the metrics
// collector once the route is done.
func (h *DecodeHandler) observe(route string, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		next(sw, r)
		h.metrics.Observe(route, sw.code, started)
	})
}

func (h *DecodeHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *DecodeHandler) writeError(w http.ResponseWriter, code int, err error) {
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

// statusWriter remembers the response code for instrumentation.
type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}
