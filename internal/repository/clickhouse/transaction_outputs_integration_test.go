package clickhouse

import (
	"strings"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

func (s *RepositorySuite) TestTransactionOutputs() {
	txid := strings.Repeat("a", 64)
	outputs := []model.TransactionOutput{
		{
			Coin:         model.BTC,
			Network:      model.Mainnet,
			TxID:         txid,
			Index:        0,
			Value:        50_000_000,
			ScriptPubKey: "76a91488ac",
		},
		{
			Coin:         model.BTC,
			Network:      model.Mainnet,
			TxID:         txid,
			Index:        1,
			Value:        1_000,
			ScriptPubKey: "51",
		},
	}
	s.seedTransactionOutputs(outputs)

	s.metrics.EXPECT().Observe("transaction_outputs", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	got, err := s.repo.TransactionOutputs(s.testCtx, model.BTC, model.Mainnet, txid)
	s.Require().NoError(err)
	s.Require().Len(got, len(outputs))

	for i, expected := range outputs {
		actual := got[i]
		s.Equal(expected.Index, actual.Index)
		s.Equal(expected.Value, actual.Value)
		s.Equal(expected.ScriptPubKey, actual.ScriptPubKey)
	}
}
