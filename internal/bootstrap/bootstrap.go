package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/sportsmeet/internal/app/controllers"
	"github.com/yigit/sportsmeet/internal/app/jobs"
	appMigrations "github.com/yigit/sportsmeet/internal/app/migrations"
	"github.com/yigit/sportsmeet/internal/app/models"
	appRepos "github.com/yigit/sportsmeet/internal/app/repositories"
	appRoutes "github.com/yigit/sportsmeet/internal/app/routes"
	appServices "github.com/yigit/sportsmeet/internal/app/services"
	"github.com/yigit/sportsmeet/internal/config"
	"github.com/yigit/sportsmeet/internal/db"
	appMiddleware "github.com/yigit/sportsmeet/internal/middleware"
	pkgAuth "github.com/yigit/sportsmeet/internal/pkg/auth"
	"github.com/yigit/sportsmeet/internal/pkg/email"
	"github.com/yigit/sportsmeet/internal/pkg/helpers"
	"github.com/yigit/sportsmeet/internal/pkg/logger"
	"github.com/yigit/sportsmeet/internal/pkg/validation"
	"github.com/yigit/sportsmeet/internal/pkg/websocket"
	schema "github.com/yigit/sportsmeet/migrations"
	"github.com/yigit/sportsmeet/web"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Sessions       *pkgAuth.SessionService
	Mailer         email.Mailer
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	PurgeScheduler *jobs.PurgeScheduler
	LiveHub        *websocket.Hub
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection pool.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies the embedded SQL migrations.
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Migrate(ctx, schema.FS); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes services, middleware, controllers and the purge job on top of repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Repos: repos, Logger: lgr}

	if err := validation.RegisterWithGin(validation.Options{Sports: models.SportChoices}); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps.Sessions = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:  cfg.Session.Secret,
		Expiration: helpers.ParseDuration(cfg.Session.Expiration, 14*24*time.Hour),
		Issuer:     cfg.Session.Issuer,
	})

	deps.Mailer = email.NewMailer(email.SMTPConfig{
		Host:      cfg.Mail.Host,
		Port:      cfg.Mail.Port,
		Username:  cfg.Mail.Username,
		Password:  cfg.Mail.Password,
		FromName:  cfg.Mail.FromName,
		FromEmail: cfg.Mail.FromEmail,
		UseTLS:    cfg.Mail.UseTLS,
	}, lgr)

	deps.LiveHub = websocket.NewHub(lgr)

	deps.Services = appServices.NewServices(appServices.Deps{
		Repos:            repos,
		Sessions:         deps.Sessions,
		Mailer:           deps.Mailer,
		ContactRecipient: cfg.Mail.ContactRecipient,
		Notifier:         deps.LiveHub,
		Location:         cfg.Location(),
		Logger:           lgr,
	})

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Auth, appMiddleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		Secure:     cfg.Session.SecureCookie,
	}, lgr)

	deps.Controllers = appRoutes.Controllers{
		Page:          appControllers.NewPageController(deps.Services.Events, lgr),
		Event:         appControllers.NewEventController(deps.Services.Events, lgr),
		Participation: appControllers.NewParticipationController(deps.Services.Participation, lgr),
		Auth:          appControllers.NewAuthController(deps.Services.Auth, deps.AuthMiddleware, lgr),
		Dashboard:     appControllers.NewDashboardController(deps.Services.Dashboard, lgr),
		Contact:       appControllers.NewContactController(deps.Services.Contact, lgr),
		Live:          websocket.NewHandler(deps.LiveHub, lgr),
	}

	purge, err := jobs.NewPurgeScheduler(cfg.Jobs.PurgeSchedule, deps.Services.Events, lgr)
	if err != nil {
		return nil, err
	}
	deps.PurgeScheduler = purge

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery(lgr))

	tmpl, err := web.LoadTemplates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, web.Static())
	return router, nil
}

// Today returns the current date in the configured time zone
func Today(cfg *config.Config) time.Time {
	return helpers.Today(cfg.Location())
}

func init() {
	// route dump goes through zerolog instead of gin's stdout printer
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
		log.Debug().Str("method", httpMethod).Str("path", absolutePath).Str("handler", handlerName).Msg("Route registered")
	}
}
