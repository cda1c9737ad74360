package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/shandysiswandi/gobank/internal/bank"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgclock"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobank/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgterm"
	"github.com/shandysiswandi/gobank/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	clock     pkgclock.Clock
	display   pkgterm.Display
	goroutine *pkgroutine.Manager

	// server, nil unless the statement endpoint is enabled
	router     *pkgrouter.Router
	httpServer *http.Server

	// modules
	bank *bank.Module

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	pkglog.InitLogging(os.Stderr, slog.LevelWarn)

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
