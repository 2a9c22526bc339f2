package model

// InsertTransaction groups a transaction with its inputs and outputs for
// batch insertion.
type InsertTransaction struct {
	Tx      Transaction
	Inputs  []TransactionInput
	Outputs []TransactionOutput
}
