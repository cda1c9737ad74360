package inbound

import (
	"context"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/bank/usecase"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgclock"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgrouter"
)

type statementUsecase interface {
	Balance(ctx context.Context, accountID string) (usecase.BalanceResult, error)
	Transactions(ctx context.Context, accountID string) ([]entity.Transaction, error)
	TransactionPage(ctx context.Context, accountID string, page, pageSize int) (usecase.TransactionsResult, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc statementUsecase, session *Session, clock pkgclock.Clock) {
	if clock == nil {
		clock, _ = pkgclock.NewSystem("")
	}
	end := &HTTPEndpoint{uc: uc, session: session, clock: clock}

	r.GET("/balance", end.Balance)
	r.GET("/transactions", end.Transactions)              // ?page=&page_size=
	r.GET("/transactions/export", end.ExportTransactions) // ?format=csv|xlsx|pdf
}
