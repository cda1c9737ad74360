package inbound

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/bank/export"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgclock"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
)

type HTTPEndpoint struct {
	uc      statementUsecase
	session *Session
	clock   pkgclock.Clock
}

func (h *HTTPEndpoint) Balance(ctx context.Context, _ *http.Request) (any, error) {
	accountID, err := h.account()
	if err != nil {
		return nil, err
	}

	result, err := h.uc.Balance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return BalanceResponse{
		AccountID: result.AccountID,
		Balance:   result.Balance,
	}, nil
}

func (h *HTTPEndpoint) Transactions(ctx context.Context, r *http.Request) (any, error) {
	accountID, err := h.account()
	if err != nil {
		return nil, err
	}

	query := r.URL.Query()
	page, pageSize, err := parsePagination(query.Get("page"), query.Get("page_size"))
	if err != nil {
		return nil, err
	}

	result, err := h.uc.TransactionPage(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, 0, len(result.Transactions))
	for _, tx := range result.Transactions {
		transactions = append(transactions, toHTTPTransaction(tx))
	}

	return TransactionsResponse{
		AccountID:    result.AccountID,
		Balance:      result.Balance,
		Transactions: transactions,
		page:         result.Page,
		pageSize:     result.PageSize,
		total:        result.Total,
	}, nil
}

func (h *HTTPEndpoint) ExportTransactions(ctx context.Context, r *http.Request) (any, error) {
	accountID, err := h.account()
	if err != nil {
		return nil, err
	}

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		return nil, err
	}

	balance, err := h.uc.Balance(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txs, err := h.uc.Transactions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	body := &bytes.Buffer{}
	if err := export.Render(body, format, export.Statement{
		AccountID:    accountID,
		Balance:      balance.Balance,
		GeneratedAt:  pkgclock.Format(h.clock.Now()),
		Transactions: txs,
	}); err != nil {
		return nil, pkgerror.NewServer(err)
	}

	return StatementFile{
		contentType: format.ContentType(),
		filename:    format.Filename(accountID),
		body:        body,
	}, nil
}

func (h *HTTPEndpoint) account() (string, error) {
	if h.session == nil {
		return "", errNoSession
	}
	accountID, ok := h.session.Current()
	if !ok {
		return "", errNoSession
	}
	return accountID, nil
}

var errNoSession = pkgerror.NewBusiness("no active session", pkgerror.CodeUnauthorized)

func parsePagination(pageRaw, sizeRaw string) (int, int, error) {
	page := 1
	pageSize := 10

	if pageRaw != "" {
		value, err := strconv.Atoi(pageRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page"))
		}
		page = value
	}

	if sizeRaw != "" {
		value, err := strconv.Atoi(sizeRaw)
		if err != nil || value < 1 {
			return 0, 0, pkgerror.NewInvalidInput(errors.New("invalid page_size"))
		}
		pageSize = min(value, 100)
	}

	return page, pageSize, nil
}

func toHTTPTransaction(tx entity.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		RecipientID: tx.RecipientID,
		Amount:      tx.Amount,
		Date:        tx.Timestamp,
	}
}
