package entity

import "github.com/shopspring/decimal"

// LedgerEvent is published after a successful balance change.
type LedgerEvent struct {
	EventID     string
	AccountID   string
	Operation   Operation
	Amount      decimal.Decimal
	Balance     decimal.Decimal
	RecipientID string
	Timestamp   string
}
