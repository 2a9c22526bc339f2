package clickhouse

import (
	"strings"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/txdecoder7000-backend/internal/model"
)

func (s *RepositorySuite) TestInsertTransactionInputs() {
	inputs := []model.TransactionInput{
		{
			Coin:         model.BTC,
			Network:      model.Mainnet,
			TxID:         strings.Repeat("b", 64),
			Index:        0,
			PrevTxID:     strings.Repeat("c", 64),
			PrevVout:     1,
			Sequence:     0xfffffffe,
			IsCoinbase:   false,
			ScriptSigHex: "483045ac",
			Witness:      nil,
		},
		{
			Coin:       model.BTC,
			Network:    model.Mainnet,
			TxID:       strings.Repeat("b", 64),
			Index:      1,
			PrevTxID:   strings.Repeat("d", 64),
			PrevVout:   0,
			Sequence:   0xffffffff,
			IsCoinbase: false,
			Witness:    []string{"dead", "01"},
		},
	}

	s.metrics.EXPECT().Observe("insert_transaction_inputs", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertTransactionInputs(s.testCtx, inputs))
	s.Equal(uint64(len(inputs)), s.countRows("mempool_transaction_inputs"))
}
