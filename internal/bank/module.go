package bank

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/shandysiswandi/gobank/internal/bank/auth"
	"github.com/shandysiswandi/gobank/internal/bank/event"
	"github.com/shandysiswandi/gobank/internal/bank/inbound"
	"github.com/shandysiswandi/gobank/internal/bank/store"
	"github.com/shandysiswandi/gobank/internal/bank/usecase"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgclock"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgerror"
	"github.com/shandysiswandi/gobank/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgterm"
	"github.com/shandysiswandi/gobank/internal/pkg/pkguid"
)

type Dependency struct {
	Config  pkgconfig.Config
	Router  *pkgrouter.Router
	ID      pkguid.StringID
	TxID    pkguid.NumberID
	Clock   pkgclock.Clock
	Display pkgterm.Display
	In      io.Reader
	Out     io.Writer
}

// Module wires one console session: login, ledger and receipts.
type Module struct {
	id       pkguid.StringID
	auth     *auth.Authenticator
	ledger   *usecase.Usecase
	console  *inbound.Console
	session  *inbound.Session
	consumer *event.ReceiptConsumer
}

func New(dep Dependency) (*Module, error) {
	if dep.Config == nil || dep.In == nil || dep.Out == nil {
		return nil, errors.New("bank: config, input and output are required")
	}

	if dep.ID == nil {
		dep.ID = pkguid.NewUUID()
	}
	if dep.TxID == nil {
		snow, err := pkguid.NewSnowflake()
		if err != nil {
			return nil, err
		}
		dep.TxID = snow
	}

	bus := event.NewBus(int(dep.Config.GetInt("receipts.buffer")))
	consumer := event.NewReceiptConsumer(bus, event.LogReceipts{}, event.ConsumerConfig{
		Workers:     int(dep.Config.GetInt("receipts.workers")),
		MaxRetries:  int(dep.Config.GetInt("receipts.max_retries")),
		BaseBackoff: dep.Config.GetDuration("receipts.base_backoff"),
	})
	consumer.Start()

	uc := usecase.New(usecase.Dependency{
		Store:  store.NewInMemoryStore(),
		Events: bus,
		ID:     dep.ID,
		TxID:   dep.TxID,
	})

	console := inbound.NewConsole(inbound.ConsoleDependency{
		In:      dep.In,
		Out:     dep.Out,
		Ledger:  uc,
		Clock:   dep.Clock,
		Display: dep.Display,
		Pause:   dep.Config.GetBool("console.pause"),
	})

	authenticator := auth.New(auth.Dependency{
		Prompter:    console,
		Credentials: store.NewCredentialStore(int(dep.Config.GetInt("credentials.bcrypt_cost"))),
	})

	session := &inbound.Session{}
	if dep.Router != nil {
		inbound.RegisterHTTPEndpoint(dep.Router, uc, session, dep.Clock)
	}

	return &Module{
		id:       dep.ID,
		auth:     authenticator,
		ledger:   uc,
		console:  console,
		session:  session,
		consumer: consumer,
	}, nil
}

// Run authenticates the user and serves the menu until they exit. It
// returns an error wrapping auth.ErrTooManyAttempts when login fails.
func (m *Module) Run(ctx context.Context) error {
	acc, err := m.auth.Authenticate(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrTooManyAttempts) {
			m.console.LoginFailed()
		}
		return err
	}

	ctx = pkglog.SetCorrelationID(ctx, m.id.Generate())
	slog.InfoContext(ctx, "session started", "account_id", acc.ID)

	if err := m.ledger.Open(ctx, acc); err != nil {
		return err
	}

	ok, err := m.ledger.CheckPassword(ctx, acc.ID, acc.Password)
	if err != nil {
		return err
	}
	if !ok {
		return pkgerror.NewServer(errors.New("opened account does not match login credentials"))
	}

	m.session.Set(acc.ID)
	defer m.session.Clear()

	if err := m.console.Serve(ctx, acc.ID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "session ended", "account_id", acc.ID)
	return nil
}

// Close stops the receipt workers after the queued receipts are issued.
func (m *Module) Close(ctx context.Context) error {
	return m.consumer.Stop(ctx)
}
