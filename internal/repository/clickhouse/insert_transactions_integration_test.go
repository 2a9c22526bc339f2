package clickhouse

import (
	"strings"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

func (s *RepositorySuite) TestInsertTransactions() {
	now := time.Now().UTC().Truncate(time.Second)
	txs := []model.Transaction{
		newMempoolTransaction(strings.Repeat("b", 64), now),
	}

	s.metrics.EXPECT().Observe("insert_transactions", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, txs))
	s.Equal(uint64(len(txs)), s.countRows("mempool_transactions"))
}
