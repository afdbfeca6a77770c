package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/ssms/scholarship/internal/app/controllers"
	appRepos "github.com/ssms/scholarship/internal/app/repositories"
	appRoutes "github.com/ssms/scholarship/internal/app/routes"
	"github.com/ssms/scholarship/internal/app/schema"
	appServices "github.com/ssms/scholarship/internal/app/services"
	"github.com/ssms/scholarship/internal/config"
	"github.com/ssms/scholarship/internal/db"
	appMiddleware "github.com/ssms/scholarship/internal/middleware"
	"github.com/ssms/scholarship/internal/pkg/logger"
	"github.com/ssms/scholarship/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, installs the schema
// and loads demo data when configured to.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.Database.ApplySchema {
		if err := schema.Apply(ctx, dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Schema installation failed")
			dbPool.Close()
			return nil, err
		}
	}

	if cfg.Database.SeedDemo {
		repos := appRepos.NewRepositories(dbPool)
		if err := seed.CreateDemoData(ctx, seed.FromRepositories(repos), time.Now(), lgr); err != nil {
			// Demo data is optional; the service still starts without it
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Services = appServices.NewServices(deps.Repos, appServices.ReportDefaults{
		TopPrograms:    cfg.Reports.DefaultTopPrograms,
		UpcomingMonths: cfg.Reports.DefaultUpcomingMonths,
	})

	deps.Controllers = appRoutes.Controllers{
		Student:    appControllers.NewStudentController(deps.Services.StudentService),
		Sponsor:    appControllers.NewSponsorController(deps.Services.SponsorService),
		Program:    appControllers.NewProgramController(deps.Services.ProgramService),
		Allocation: appControllers.NewAllocationController(deps.Services.AllocationService),
		Payment:    appControllers.NewPaymentController(deps.Services.PaymentService),
		Dashboard:  appControllers.NewDashboardController(deps.Services.DashboardService),
		Report:     appControllers.NewReportController(deps.Services.ReportService),
		Health:     appControllers.NewHealthController(dbPool),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.Recovery(), appMiddleware.RequestLogger())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
