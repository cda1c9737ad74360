package inbound

import (
	"bytes"
	"io"

	"github.com/shopspring/decimal"
)

type Transaction struct {
	ID          int64           `json:"id,string"`
	RecipientID string          `json:"recipient_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

type BalanceResponse struct {
	AccountID string          `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

type TransactionsResponse struct {
	AccountID    string          `json:"account_id"`
	Balance      decimal.Decimal `json:"balance"`
	Transactions []Transaction   `json:"transactions"`
	page         int
	pageSize     int
	total        int
}

func (r TransactionsResponse) Meta() map[string]any {
	return map[string]any{
		"page":      r.page,
		"page_size": r.pageSize,
		"total":     r.total,
	}
}

// StatementFile is a rendered statement sent as an attachment.
type StatementFile struct {
	contentType string
	filename    string
	body        *bytes.Buffer
}

func (f StatementFile) ContentType() string {
	return f.contentType
}

func (f StatementFile) Filename() string {
	return f.filename
}

func (f StatementFile) WriteTo(w io.Writer) (int64, error) {
	return f.body.WriteTo(w)
}
