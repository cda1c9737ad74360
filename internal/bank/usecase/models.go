package usecase

import (
	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shopspring/decimal"
)

type BalanceResult struct {
	AccountID string
	Balance   decimal.Decimal
}

type TransferResult struct {
	Transaction entity.Transaction
	Balance     decimal.Decimal
}

type TransactionsResult struct {
	AccountID    string
	Balance      decimal.Decimal
	Transactions []entity.Transaction
	Page         int
	PageSize     int
	Total        int
}
