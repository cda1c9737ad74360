package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/cors"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgclock"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gobank/internal/pkg/pkglog"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/gobank/internal/pkg/pkgterm"
	"github.com/shandysiswandi/gobank/internal/pkg/pkguid"
)

const (
	envPrefix     = "GOBANK"
	envConfigPath = "GOBANK_CONFIG"
)

func defaultConfig() map[string]any {
	return map[string]any{
		"tz":                      "Local",
		"log.level":               "warn",
		"log.output":              "stderr",
		"goroutine.max":           10,
		"console.pause":           true,
		"console.clear_screen":    true,
		"credentials.bcrypt_cost": 10,
		"receipts.workers":        2,
		"receipts.buffer":         64,
		"receipts.max_retries":    3,
		"receipts.base_backoff":   "100ms",
		"statement.enabled":       false,
		"statement.address":       "127.0.0.1:8080",
	}
}

func (a *App) initConfig() {
	path := os.Getenv(envConfigPath)
	if path == "" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path,
		pkgconfig.WithDotEnv(".env"),
		pkgconfig.WithEnvPrefix(envPrefix),
		pkgconfig.WithDefaults(defaultConfig()),
		pkgconfig.WithOptionalFile(),
	)
	if err != nil {
		slog.Error("failed to init config", "path", path, "error", err)
		os.Exit(ExitFailure)
	}

	a.config = cfg
}

func (a *App) initLogging() {
	pkglog.InitLogging(
		pkglog.Output(a.config.GetString("log.output")),
		pkglog.ParseLevel(a.config.GetString("log.level")),
	)
}

func (a *App) initLibraries() {
	a.goroutine = pkgroutine.NewManager(int(a.config.GetInt("goroutine.max")))
	a.uuid = pkguid.NewUUID()

	snow, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(ExitFailure)
	}
	a.snowflake = snow

	clock, err := pkgclock.NewSystem(a.config.GetString("tz"))
	if err != nil {
		slog.Error("failed to load time zone", "tz", a.config.GetString("tz"), "error", err)
		os.Exit(ExitFailure)
	}
	a.clock = clock

	a.display = pkgterm.Nop{}
	if a.config.GetBool("console.clear_screen") {
		a.display = pkgterm.NewScreen(os.Stdout)
	}
}

func (a *App) initHTTPServer() {
	if !a.config.GetBool("statement.enabled") {
		return
	}

	a.router = pkgrouter.NewRouter(a.uuid)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Disposition", pkgrouter.HeaderCorrelationID},
	})

	a.httpServer = &http.Server{
		Addr:              a.config.GetString("statement.address"),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (a *App) initClosers() {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn["Config"] = func(context.Context) error {
		return a.config.Close()
	}
}
