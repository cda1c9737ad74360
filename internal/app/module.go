package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/shandysiswandi/gobank/internal/bank"
)

func (a *App) initModules() {
	m, err := bank.New(bank.Dependency{
		Config:  a.config,
		Router:  a.router,
		ID:      a.uuid,
		TxID:    a.snowflake,
		Clock:   a.clock,
		Display: a.display,
		In:      os.Stdin,
		Out:     os.Stdout,
	})
	if err != nil {
		slog.Error("failed to init module bank", "error", err)
		os.Exit(ExitFailure)
	}

	a.bank = m
	if a.closerFn == nil {
		a.closerFn = map[string]func(ctx context.Context) error{}
	}
	a.closerFn["Bank"] = m.Close
}
