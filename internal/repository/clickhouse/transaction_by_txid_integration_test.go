package clickhouse

import (
	"strings"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

func (s *RepositorySuite) TestTransactionByTxID() {
	now := time.Now().UTC().Truncate(time.Second)
	txid := strings.Repeat("a", 64)
	expected := newMempoolTransaction(txid, now)

	s.seedTransactions([]model.Transaction{expected})

	s.metrics.EXPECT().Observe("transaction_by_txid", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.TransactionByTxID(s.testCtx, model.BTC, model.Mainnet, txid)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(expected.TxID, got.TxID)
	s.True(expected.FirstSeen.Equal(got.FirstSeen))
	s.Equal(expected.Size, got.Size)
	s.Equal(expected.VSize, got.VSize)
	s.Equal(expected.Weight, got.Weight)
	s.Equal(expected.Version, got.Version)
	s.Equal(expected.LockTime, got.LockTime)
	s.Equal(expected.InputCount, got.InputCount)
	s.Equal(expected.OutputCount, got.OutputCount)
	s.Equal(expected.IsSegwit, got.IsSegwit)
}

func (s *RepositorySuite) TestTransactionByTxID_NotFound() {
	s.metrics.EXPECT().Observe("transaction_by_txid", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.TransactionByTxID(s.testCtx, model.BTC, model.Mainnet, strings.Repeat("f", 64))
	s.Require().NoError(err)
	s.Nil(got)
}
