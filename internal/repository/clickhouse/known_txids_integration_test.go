package clickhouse

import (
	"strings"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

func (s *RepositorySuite) TestKnownTxIDs() {
	now := time.Now().UTC().Truncate(time.Second)
	stored := strings.Repeat("a", 64)
	missing := strings.Repeat("b", 64)

	s.seedTransactions([]model.Transaction{
		newMempoolTransaction(stored, now),
	})

	s.metrics.EXPECT().Observe("known_txids", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	known, err := s.repo.KnownTxIDs(s.testCtx, model.BTC, model.Mainnet, []string{stored, missing})
	s.Require().NoError(err)

	s.Len(known, 1)
	s.Contains(known, stored)
	s.NotContains(known, missing)
}
