package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/atikurshafi/cse327/docs" // Import generated swagger docs
	appControllers "github.com/atikurshafi/cse327/internal/app/controllers"
	appMigrations "github.com/atikurshafi/cse327/internal/app/migrations"
	appRepos "github.com/atikurshafi/cse327/internal/app/repositories"
	appRoutes "github.com/atikurshafi/cse327/internal/app/routes"
	appServices "github.com/atikurshafi/cse327/internal/app/services"
	"github.com/atikurshafi/cse327/internal/config"
	"github.com/atikurshafi/cse327/internal/db"
	appMiddleware "github.com/atikurshafi/cse327/internal/middleware"
	"github.com/atikurshafi/cse327/internal/pkg/logger"
	"github.com/atikurshafi/cse327/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CourseService     *appServices.CourseService
	SectionService    *appServices.SectionService
	InstructorService *appServices.InstructorService
	RoomService       *appServices.RoomService
	TimeslotService   *appServices.TimeslotService
	ScheduleService   *appServices.ScheduleService

	CourseController     *appControllers.CourseController
	SectionController    *appControllers.SectionController
	InstructorController *appControllers.InstructorController
	RoomController       *appControllers.RoomController
	TimeslotController   *appControllers.TimeslotController
	ScheduleController   *appControllers.ScheduleController

	Repos  *appRepos.Repositories
	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; environment variables win over config.yaml either way
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default timeslot grid.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.Migrate(context.Background()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	conflictChecker := appServices.NewConflictChecker(
		deps.Repos.ScheduleRepository,
		deps.Repos.CourseRepository,
		deps.Repos.RoomRepository,
	)

	listCache := cache.New(cfg.ScheduleCacheTTL(), cfg.CacheCleanupInterval())

	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.SectionService = appServices.NewSectionService(deps.Repos.SectionRepository, deps.Repos.CourseRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.TimeslotService = appServices.NewTimeslotService(deps.Repos.TimeslotRepository)
	deps.ScheduleService = appServices.NewScheduleService(
		deps.Repos.ScheduleRepository,
		deps.Repos.TimeslotRepository,
		conflictChecker,
		listCache,
		cfg.ScheduleCacheTTL(),
		lgr,
	)

	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.SectionController = appControllers.NewSectionController(deps.SectionService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.TimeslotController = appControllers.NewTimeslotController(deps.TimeslotService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)

	return deps, nil
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

	router := gin.Default()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.CORS(cfg.CORS.AllowOrigins))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.SectionController,
		deps.InstructorController,
		deps.RoomController,
		deps.TimeslotController,
		deps.ScheduleController,
	)

	// Liveness endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
