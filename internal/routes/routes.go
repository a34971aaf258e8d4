package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bazario/bazario-wallet/internal/config"
	"github.com/bazario/bazario-wallet/internal/deposit"
	"github.com/bazario/bazario-wallet/internal/events"
	"github.com/bazario/bazario-wallet/internal/guard"
	"github.com/bazario/bazario-wallet/internal/ledger"
	"github.com/bazario/bazario-wallet/internal/middleware"
	"github.com/bazario/bazario-wallet/internal/notification"
	"github.com/bazario/bazario-wallet/internal/settings"
	"github.com/bazario/bazario-wallet/internal/wallet"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. When DB or Cache is
// nil in development, in-memory backends take their place.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	// Plain text access log in desired format: [HH:MM:SS] 200 -  145ms METHOD /path
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Backends
	var ledgerBackend ledger.Ledger
	if d.DB != nil {
		ledgerBackend = ledger.NewPostgresLedger(d.DB)
	} else {
		ledgerBackend = ledger.NewInMemory()
	}

	var noteStore notification.Store
	var depositStore deposit.Store
	if d.DB != nil {
		noteStore = notification.NewPostgresStore(d.DB)
		depositStore = deposit.NewPostgresStore(d.DB)
	} else {
		memNotes := notification.NewMemoryStore()
		noteStore = memNotes
		depositStore = deposit.NewMemoryStore(ledgerBackend, memNotes)
	}

	var settingsStore settings.Store
	if d.DB != nil {
		settingsStore = settings.NewPostgresStore(d.DB)
	} else {
		settingsStore = settings.NewMemoryStore()
	}

	var reconcileGuard guard.Guard
	var publisher events.Publisher
	if d.Cache != nil {
		reconcileGuard = guard.NewRedisGuard(d.Cache, d.Cfg.ReconcileTTL, d.Logger)
		publisher = events.NewRedisPublisher(d.Cache)
	} else {
		reconcileGuard = guard.NewMemory()
		publisher = events.NewLoggerPublisher(d.Logger)
	}

	// Services and handlers
	depositSvc := deposit.NewService(depositStore, reconcileGuard, publisher, d.Logger)
	depositHandler := deposit.NewHandler(depositSvc)
	walletSvc := wallet.NewService(ledgerBackend)
	walletHandler := wallet.NewHandler(walletSvc)
	noteHandler := notification.NewHandler(noteStore)
	settingsHandler := settings.NewHandler(settingsStore, publisher)

	// API routes
	api := app.Group("/api/v1")

	// Public routes
	api.Get("/payment-info", settingsHandler.Get)

	RegisterWalletRoutes(api, walletHandler)
	RegisterNotificationRoutes(api, noteHandler)
	RegisterDepositRoutes(api, d, depositHandler)
	RegisterAdminRoutes(api, d, depositHandler, settingsHandler)

	return nil
}
