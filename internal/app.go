// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "usuarios-api/internal/api"
	"usuarios-api/internal/api/handler"
	"usuarios-api/internal/api/middleware"
	"usuarios-api/internal/config"
	"usuarios-api/internal/repository"
	"usuarios-api/internal/repository/postgres"
	"usuarios-api/internal/service"
	"usuarios-api/internal/util"
	"usuarios-api/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	Connections *db.ConnectionManager

	// Repositories
	UserRepository repository.UserRepository

	// Services
	UserService service.UserService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
// Configuration errors are fatal; an unreachable database is not, requests
// report it individually.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger(util.LoggerOptions{Level: cfg.LogLevel, Format: cfg.LogFormat})
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.", "env", cfg.AppEnv)

	// 3. Open the connection pool
	database, err := db.NewPostgresDB(cfg.DB())
	if err != nil {
		return fmt.Errorf("%w: %w", util.ErrConfiguration, err)
	}
	app.DB = database
	if err := db.PingPostgres(database, cfg.DBQueryTimeout); err != nil {
		app.Logger.Warn("Database not reachable at startup; requests will report it", "error", err)
	} else {
		app.Logger.Info("Database connection established.")
	}
	app.Connections = db.NewConnectionManager(database, cfg.DBQueryTimeout)

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository()

	// 5. Initialize Services
	app.UserService = service.NewUserService(
		app.Connections,
		app.UserRepository,
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	var limiter *middleware.IPRateLimiter
	if cfg.RateLimitEnabled {
		limiter = middleware.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	app.HTTPHandler = router.NewRouter(
		handler.NewUserHandler(app.UserService, app.Logger, cfg.MaxRequestBodyBytes),
		handler.NewGreetingHandler(app.Logger),
		handler.NewHealthHandler(app.Connections, app.Logger),
		app.Logger,
		router.RouterOptions{RequestTimeout: cfg.RequestTimeout, RateLimiter: limiter},
	)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
