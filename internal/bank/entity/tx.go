package entity

import "github.com/shopspring/decimal"

// Transaction is an outgoing transfer recorded on the account.
type Transaction struct {
	ID          int64
	RecipientID string
	Amount      decimal.Decimal
	Timestamp   string
}
