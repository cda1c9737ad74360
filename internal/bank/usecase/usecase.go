package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gobank/internal/pkg/pkguid"
	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds    = errors.New("insufficient balance")
	ErrAmountMustBePositive = errors.New("amount must be greater than zero")
	ErrRecipientRequired    = errors.New("recipient id is required")
)

type Store interface {
	CreateAccount(ctx context.Context, account entity.Account) error
	UpdateAccount(ctx context.Context, accountID string, fn func(account *entity.Account) error) error
	GetAccount(ctx context.Context, accountID string) (entity.Account, error)
	ListTransactions(ctx context.Context, accountID string, page, pageSize int) ([]entity.Transaction, int, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entity.LedgerEvent) error
}

type Dependency struct {
	Store  Store
	Events EventPublisher
	ID     pkguid.StringID
	TxID   pkguid.NumberID
}

type Usecase struct {
	store  Store
	events EventPublisher
	id     pkguid.StringID
	txID   pkguid.NumberID
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		store:  dep.Store,
		events: dep.Events,
		id:     dep.ID,
		txID:   dep.TxID,
	}
}

// Open registers an authenticated account with the ledger.
func (u *Usecase) Open(ctx context.Context, account entity.Account) error {
	if u.store == nil {
		return pkgerror.NewServer(errors.New("missing dependency"))
	}

	if err := u.store.CreateAccount(ctx, account.Clone()); err != nil {
		return normalizeErr(err)
	}

	slog.InfoContext(ctx, "account opened", "account_id", account.ID)
	return nil
}

func (u *Usecase) Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (BalanceResult, error) {
	if !amount.IsPositive() {
		return BalanceResult{}, pkgerror.NewInvalidInput(ErrAmountMustBePositive)
	}

	var balance decimal.Decimal
	err := u.store.UpdateAccount(ctx, accountID, func(acc *entity.Account) error {
		acc.Balance = acc.Balance.Add(amount)
		balance = acc.Balance
		return nil
	})
	if err != nil {
		return BalanceResult{}, mapStoreErr(err)
	}

	u.publish(ctx, entity.LedgerEvent{
		AccountID: accountID,
		Operation: entity.OperationDeposit,
		Amount:    amount,
		Balance:   balance,
	})

	return BalanceResult{AccountID: accountID, Balance: balance}, nil
}

func (u *Usecase) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (BalanceResult, error) {
	if !amount.IsPositive() {
		return BalanceResult{}, pkgerror.NewInvalidInput(ErrAmountMustBePositive)
	}

	var balance decimal.Decimal
	err := u.store.UpdateAccount(ctx, accountID, func(acc *entity.Account) error {
		if amount.GreaterThan(acc.Balance) {
			return pkgerror.NewBusinessError(ErrInsufficientFunds, pkgerror.CodeConflict)
		}
		acc.Balance = acc.Balance.Sub(amount)
		balance = acc.Balance
		return nil
	})
	if err != nil {
		return BalanceResult{}, mapStoreErr(err)
	}

	u.publish(ctx, entity.LedgerEvent{
		AccountID: accountID,
		Operation: entity.OperationWithdraw,
		Amount:    amount,
		Balance:   balance,
	})

	return BalanceResult{AccountID: accountID, Balance: balance}, nil
}

// Transfer debits the account and records an outgoing transaction stamped
// with timestamp. Nothing is recorded when the transfer is rejected.
func (u *Usecase) Transfer(ctx context.Context, accountID, recipientID string, amount decimal.Decimal, timestamp string) (TransferResult, error) {
	if strings.TrimSpace(recipientID) == "" {
		return TransferResult{}, pkgerror.NewInvalidInput(ErrRecipientRequired)
	}
	if !amount.IsPositive() {
		return TransferResult{}, pkgerror.NewInvalidInput(ErrAmountMustBePositive)
	}

	var result TransferResult
	err := u.store.UpdateAccount(ctx, accountID, func(acc *entity.Account) error {
		if amount.GreaterThan(acc.Balance) {
			return pkgerror.NewBusinessError(ErrInsufficientFunds, pkgerror.CodeConflict)
		}

		tx := entity.Transaction{
			RecipientID: recipientID,
			Amount:      amount,
			Timestamp:   timestamp,
		}
		if u.txID != nil {
			tx.ID = u.txID.Generate()
		}

		acc.Balance = acc.Balance.Sub(amount)
		acc.Transactions = append(acc.Transactions, tx)

		result = TransferResult{Transaction: tx, Balance: acc.Balance}
		return nil
	})
	if err != nil {
		return TransferResult{}, mapStoreErr(err)
	}

	u.publish(ctx, entity.LedgerEvent{
		AccountID:   accountID,
		Operation:   entity.OperationTransfer,
		Amount:      amount,
		Balance:     result.Balance,
		RecipientID: recipientID,
		Timestamp:   timestamp,
	})

	return result, nil
}

// Transactions returns every recorded transfer in insertion order.
func (u *Usecase) Transactions(ctx context.Context, accountID string) ([]entity.Transaction, error) {
	txs, _, err := u.store.ListTransactions(ctx, accountID, 0, 0)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return txs, nil
}

func (u *Usecase) TransactionPage(ctx context.Context, accountID string, page, pageSize int) (TransactionsResult, error) {
	if page < 1 || pageSize < 1 {
		return TransactionsResult{}, pkgerror.NewInvalidInput(errors.New("invalid pagination"))
	}

	acc, err := u.store.GetAccount(ctx, accountID)
	if err != nil {
		return TransactionsResult{}, mapStoreErr(err)
	}

	txs, total, err := u.store.ListTransactions(ctx, accountID, page, pageSize)
	if err != nil {
		return TransactionsResult{}, mapStoreErr(err)
	}

	return TransactionsResult{
		AccountID:    accountID,
		Balance:      acc.Balance,
		Transactions: txs,
		Page:         page,
		PageSize:     pageSize,
		Total:        total,
	}, nil
}

func (u *Usecase) Balance(ctx context.Context, accountID string) (BalanceResult, error) {
	acc, err := u.store.GetAccount(ctx, accountID)
	if err != nil {
		return BalanceResult{}, mapStoreErr(err)
	}
	return BalanceResult{AccountID: accountID, Balance: acc.Balance}, nil
}

// CheckPassword compares candidate with the password the account was opened
// with. The session uses it to confirm the opened account matches the login.
func (u *Usecase) CheckPassword(ctx context.Context, accountID, candidate string) (bool, error) {
	acc, err := u.store.GetAccount(ctx, accountID)
	if err != nil {
		return false, mapStoreErr(err)
	}
	return acc.CheckPassword(candidate), nil
}

func (u *Usecase) publish(ctx context.Context, event entity.LedgerEvent) {
	if u.events == nil {
		return
	}
	if u.id != nil {
		event.EventID = u.id.Generate()
	}

	if err := u.events.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "account_id", event.AccountID, "event_id", event.EventID, "error", err)
	}
}

func mapStoreErr(err error) error {
	if errors.Is(err, pkgerror.ErrNotFound) {
		return pkgerror.NewBusiness("account not found", pkgerror.CodeNotFound)
	}
	return normalizeErr(err)
}

func normalizeErr(err error) error {
	var perr *pkgerror.Error
	if errors.As(err, &perr) {
		return perr
	}
	return pkgerror.NewServer(err)
}
