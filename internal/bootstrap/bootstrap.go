package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/schoolapi/internal/app/controllers"
	appMigrations "github.com/yigit/schoolapi/internal/app/migrations"
	appRepos "github.com/yigit/schoolapi/internal/app/repositories"
	appRoutes "github.com/yigit/schoolapi/internal/app/routes"
	appServices "github.com/yigit/schoolapi/internal/app/services"
	"github.com/yigit/schoolapi/internal/config"
	"github.com/yigit/schoolapi/internal/db"
	appMiddleware "github.com/yigit/schoolapi/internal/middleware"
	"github.com/yigit/schoolapi/internal/pkg/logger"
	"github.com/yigit/schoolapi/internal/pkg/metrics"
	"github.com/yigit/schoolapi/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos            *appRepos.Repositories
	Services         *appServices.Services
	Controllers      *appControllers.Controllers
	HealthController *appControllers.HealthController
	Metrics          *metrics.Collector // nil when metrics are disabled
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured database, applies pending migrations and,
// when enabled, loads the demo data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.DB, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.Open(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if cfg.Database.Seed {
		if err := seed.CreateDefaultData(ctx, appRepos.NewRepositories(database), lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// RunMigrations applies the embedded schema migrations
func RunMigrations(ctx context.Context, database *db.DB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database, lgr).Migrate(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", len(applied)).Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.DB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, appServices.Options{
		EmptyListNotFound: cfg.API.EmptyListNotFound,
	}, lgr)
	deps.Controllers = appControllers.NewControllers(deps.Services)
	deps.HealthController = appControllers.NewHealthController(database)

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		if err := deps.Metrics.RegisterDB(database.DB, cfg.Database.Driver); err != nil {
			return nil, fmt.Errorf("failed to register database metrics: %w", err)
		}
	}

	return deps, nil
}

// corsConfig builds the CORS policy. An empty list or "*" allows every origin.
func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader},
		ExposeHeaders: []string{appMiddleware.RequestIDHeader},
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production", "release":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.ErrorHandler(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		cors.New(corsConfig(cfg.CORS.AllowedOrigins)),
	)

	opts := appRoutes.Options{BasePath: cfg.API.BasePath}
	if deps.Metrics != nil {
		router.Use(appMiddleware.Metrics(deps.Metrics))
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = deps.Metrics.Handler()
	}

	appRoutes.SetupRouter(router, deps.Controllers, deps.HealthController, opts)
	return router
}
