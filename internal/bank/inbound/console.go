package inbound

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/gobank/internal/bank/auth"
	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/bank/usecase"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgclock"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgterm"
	"github.com/shopspring/decimal"
)

type ledger interface {
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal) (usecase.BalanceResult, error)
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal) (usecase.BalanceResult, error)
	Transfer(ctx context.Context, accountID, recipientID string, amount decimal.Decimal, timestamp string) (usecase.TransferResult, error)
	Transactions(ctx context.Context, accountID string) ([]entity.Transaction, error)
}

const (
	choiceDeposit = iota + 1
	choiceWithdraw
	choiceSend
	choiceShowTransactions
	choiceExit
)

type ConsoleDependency struct {
	In      io.Reader
	Out     io.Writer
	Ledger  ledger
	Clock   pkgclock.Clock
	Display pkgterm.Display
	Pause   bool
}

// Console is the interactive menu. It also acts as the login prompter.
type Console struct {
	in      *tokenReader
	out     io.Writer
	uc      ledger
	clock   pkgclock.Clock
	display pkgterm.Display
	pause   bool
}

func NewConsole(dep ConsoleDependency) *Console {
	display := dep.Display
	if display == nil {
		display = pkgterm.Nop{}
	}

	clock := dep.Clock
	if clock == nil {
		clock, _ = pkgclock.NewSystem("")
	}

	return &Console{
		in:      newTokenReader(dep.In),
		out:     dep.Out,
		uc:      dep.Ledger,
		clock:   clock,
		display: display,
		pause:   dep.Pause,
	}
}

func (c *Console) Credentials(_ context.Context, _ int) (string, string, error) {
	id, err := c.ask("Enter User ID: ")
	if err != nil {
		return "", "", err
	}

	password, err := c.ask("Enter Password: ")
	if err != nil {
		return "", "", err
	}

	return id, password, nil
}

func (c *Console) Reject(_ context.Context, reason error) {
	switch {
	case errors.Is(reason, auth.ErrInvalidID):
		c.println("Invalid ID. ID must be 11 digits long.")
	case errors.Is(reason, auth.ErrInvalidPassword):
		c.println("Invalid Password. Password must be 6 digits long.")
	case errors.Is(reason, auth.ErrWrongPassword):
		c.println("Invalid credentials.")
	default:
		c.println("Login failed. Try again.")
	}
}

// LoginFailed tells the user the session will not start.
func (c *Console) LoginFailed() {
	c.println("Too many failed attempts. Exiting.")
}

// Serve runs the menu for accountID until the user exits or input ends.
func (c *Console) Serve(ctx context.Context, accountID string) error {
	for {
		c.display.Clear()
		c.println("1. Deposit")
		c.println("2. Withdraw")
		c.println("3. Send Money")
		c.println("4. Show Transactions")
		c.println("5. Exit")

		raw, err := c.ask("Enter your choice: ")
		if err != nil {
			return c.endOfInput(ctx, err)
		}

		choice, convErr := strconv.Atoi(raw)
		if convErr != nil {
			choice = 0
		}

		switch choice {
		case choiceDeposit:
			err = c.deposit(ctx, accountID)
		case choiceWithdraw:
			err = c.withdraw(ctx, accountID)
		case choiceSend:
			err = c.send(ctx, accountID)
		case choiceShowTransactions:
			c.showTransactions(ctx, accountID)
		case choiceExit:
			c.println("Exiting.")
			return nil
		default:
			c.println("Invalid choice. Try again.")
		}
		if err != nil {
			return c.endOfInput(ctx, err)
		}

		if err := c.waitForEnter(); err != nil {
			return c.endOfInput(ctx, err)
		}
	}
}

func (c *Console) deposit(ctx context.Context, accountID string) error {
	amount, ok, err := c.askAmount("Enter amount to deposit: ")
	if err != nil || !ok {
		return err
	}

	res, err := c.uc.Deposit(ctx, accountID, amount)
	if err != nil {
		c.report(ctx, err)
		return nil
	}

	c.printf("Successfully deposited %s. New balance: %s\n", amount, res.Balance)
	return nil
}

func (c *Console) withdraw(ctx context.Context, accountID string) error {
	amount, ok, err := c.askAmount("Enter amount to withdraw: ")
	if err != nil || !ok {
		return err
	}

	res, err := c.uc.Withdraw(ctx, accountID, amount)
	if err != nil {
		c.report(ctx, err)
		return nil
	}

	c.printf("Successfully withdrew %s. New balance: %s\n", amount, res.Balance)
	return nil
}

func (c *Console) send(ctx context.Context, accountID string) error {
	recipientID, err := c.ask("Enter recipient ID: ")
	if err != nil {
		return err
	}

	amount, ok, err := c.askAmount("Enter amount to send: ")
	if err != nil || !ok {
		return err
	}

	res, err := c.uc.Transfer(ctx, accountID, recipientID, amount, pkgclock.Format(c.clock.Now()))
	if err != nil {
		c.report(ctx, err)
		return nil
	}

	c.printf("Successfully sent %s to %s. New balance: %s\n", amount, recipientID, res.Balance)
	return nil
}

func (c *Console) showTransactions(ctx context.Context, accountID string) {
	txs, err := c.uc.Transactions(ctx, accountID)
	if err != nil {
		c.report(ctx, err)
		return
	}

	c.println("Transactions: ")
	for _, tx := range txs {
		c.printf("Recipient ID: %s, Amount: %s, Date: %s\n", tx.RecipientID, tx.Amount, tx.Timestamp)
	}
}

func (c *Console) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInsufficientFunds):
		c.println("Insufficient balance.")
	case errors.Is(err, usecase.ErrAmountMustBePositive):
		c.println("Amount must be greater than zero.")
	case errors.Is(err, usecase.ErrRecipientRequired):
		c.println("Recipient ID is required.")
	default:
		slog.ErrorContext(ctx, "ledger operation failed", "error", err)
		c.println("Operation failed. Try again.")
	}
}

func (c *Console) waitForEnter() error {
	if !c.pause {
		return nil
	}

	c.printf("Press Enter to continue...")
	if err := c.in.skipLine(); err != nil {
		return err
	}
	return c.in.skipLine()
}

func (c *Console) endOfInput(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		slog.InfoContext(ctx, "console input closed, ending session")
		c.println("")
		return nil
	}
	return err
}

func (c *Console) ask(prompt string) (string, error) {
	c.printf("%s", prompt)
	return c.in.Token()
}

// askAmount reads a decimal amount. ok is false when the token is not a
// number; the user has already been told.
func (c *Console) askAmount(prompt string) (decimal.Decimal, bool, error) {
	raw, err := c.ask(prompt)
	if err != nil {
		return decimal.Zero, false, err
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		c.println("Invalid amount.")
		return decimal.Zero, false, nil
	}

	return amount, true, nil
}

func (c *Console) println(s string) {
	//nolint:errcheck // console output
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	//nolint:errcheck // console output
	fmt.Fprintf(c.out, format, args...)
}
