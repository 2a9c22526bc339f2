package model

import "time"

// Transaction is a mempool transaction summary persisted to ClickHouse.
type Transaction struct {
	Coin        Coin
	Network     Network
	TxID        string
	FirstSeen   time.Time
	Size        uint32
	VSize       uint32
	Weight      uint32
	Version     uint32
	LockTime    uint32
	InputCount  uint32
	OutputCount uint32
	IsSegwit    bool
}

// TransactionInput describes a reference to a previous transaction output.
type TransactionInput struct {
	Coin         Coin
	Network      Network
	TxID         string
	Index        uint32
	PrevTxID     string
	PrevVout     uint32
	Sequence     uint32
	IsCoinbase   bool
	ScriptSigHex string
	Witness      []string
}

// TransactionOutput represents an output produced by a transaction.
type TransactionOutput struct {
	Coin         Coin
	Network      Network
	TxID         string
	Index        uint32
	Value        uint64
	ScriptPubKey string
}
