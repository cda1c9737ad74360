package inbound

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gobank/internal/bank/auth"
	"github.com/shandysiswandi/gobank/internal/bank/entity"
	"github.com/shandysiswandi/gobank/internal/bank/store"
	"github.com/shandysiswandi/gobank/internal/bank/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccount = "12345678901"

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

type countingDisplay struct{ n int }

func (d *countingDisplay) Clear() { d.n++ }

func newTestConsole(t *testing.T, input string, pause bool) (*Console, *bytes.Buffer, *usecase.Usecase) {
	t.Helper()

	uc := usecase.New(usecase.Dependency{Store: store.NewInMemoryStore()})
	require.NoError(t, uc.Open(context.Background(), entity.NewAccount(testAccount, "123456")))

	out := &bytes.Buffer{}
	c := NewConsole(ConsoleDependency{
		In:     strings.NewReader(input),
		Out:    out,
		Ledger: uc,
		Clock:  fixedClock{t: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)},
		Pause:  pause,
	})
	return c, out, uc
}

func TestConsole_Scenario(t *testing.T) {
	input := strings.Join([]string{
		"1", "100",
		"2", "150",
		"3", "98765432109", "40",
		"4",
		"5",
	}, "\n") + "\n"
	c, out, uc := newTestConsole(t, input, false)

	require.NoError(t, c.Serve(context.Background(), testAccount))

	text := out.String()
	assert.Contains(t, text, "1. Deposit\n2. Withdraw\n3. Send Money\n4. Show Transactions\n5. Exit\nEnter your choice: ")
	assert.Contains(t, text, "Successfully deposited 100. New balance: 100\n")
	assert.Contains(t, text, "Insufficient balance.\n")
	assert.Contains(t, text, "Successfully sent 40 to 98765432109. New balance: 60\n")
	assert.Contains(t, text, "Transactions: \nRecipient ID: 98765432109, Amount: 40, Date: 2026-10-19 09:30:00\n")
	assert.True(t, strings.HasSuffix(text, "Exiting.\n"))

	bal, err := uc.Balance(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, "60", bal.Balance.String())
}

func TestConsole_InvalidInput(t *testing.T) {
	c, out, uc := newTestConsole(t, "9\nabc\n1\nten\n1\n0\n2\n-3\n5\n", false)

	require.NoError(t, c.Serve(context.Background(), testAccount))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Invalid choice. Try again.\n"))
	assert.Contains(t, text, "Invalid amount.\n")
	assert.Equal(t, 2, strings.Count(text, "Amount must be greater than zero.\n"))

	bal, _ := uc.Balance(context.Background(), testAccount)
	assert.True(t, bal.Balance.IsZero())
}

func TestConsole_WithdrawPrintsNewBalance(t *testing.T) {
	c, out, _ := newTestConsole(t, "1 50.5\n2 20.25\n5\n", false)

	require.NoError(t, c.Serve(context.Background(), testAccount))
	assert.Contains(t, out.String(), "Successfully withdrew 20.25. New balance: 30.25\n")
}

func TestConsole_EndOfInputEndsSession(t *testing.T) {
	c, out, _ := newTestConsole(t, "1\n", false)

	require.NoError(t, c.Serve(context.Background(), testAccount))
	assert.NotContains(t, out.String(), "Exiting.")
}

func TestConsole_PauseWaitsForEnter(t *testing.T) {
	c, out, _ := newTestConsole(t, "4\n\n5\n", true)

	require.NoError(t, c.Serve(context.Background(), testAccount))

	text := out.String()
	assert.Equal(t, 1, strings.Count(text, "Press Enter to continue..."))
	assert.True(t, strings.HasSuffix(text, "Exiting.\n"))
}

func TestConsole_ClearsBeforeEachMenu(t *testing.T) {
	uc := usecase.New(usecase.Dependency{Store: store.NewInMemoryStore()})
	require.NoError(t, uc.Open(context.Background(), entity.NewAccount(testAccount, "123456")))

	display := &countingDisplay{}
	c := NewConsole(ConsoleDependency{
		In:      strings.NewReader("4\n4\n5\n"),
		Out:     &bytes.Buffer{},
		Ledger:  uc,
		Display: display,
	})

	require.NoError(t, c.Serve(context.Background(), testAccount))
	assert.Equal(t, 3, display.n)
}

func TestConsole_Prompter(t *testing.T) {
	c, out, _ := newTestConsole(t, "123 456\n12345678901 123456\n", false)
	a := auth.New(auth.Dependency{Prompter: c})

	acc, err := a.Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAccount, acc.ID)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Enter User ID: "))
	assert.Equal(t, 2, strings.Count(text, "Enter Password: "))
	assert.Contains(t, text, "Invalid ID. ID must be 11 digits long.\n")
}

func TestConsole_RejectMessages(t *testing.T) {
	c, out, _ := newTestConsole(t, "", false)
	ctx := context.Background()

	c.Reject(ctx, auth.ValidatePassword("1"))
	c.Reject(ctx, auth.ErrWrongPassword)
	c.Reject(ctx, errors.New("boom"))
	c.LoginFailed()

	assert.Equal(t, "Invalid Password. Password must be 6 digits long.\n"+
		"Invalid credentials.\n"+
		"Login failed. Try again.\n"+
		"Too many failed attempts. Exiting.\n", out.String())
}
