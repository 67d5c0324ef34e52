package bootstrap

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/erasmusedu/erasmus-portal/internal/app/controllers"
	"github.com/erasmusedu/erasmus-portal/internal/app/models"
	appRoutes "github.com/erasmusedu/erasmus-portal/internal/app/routes"
	appServices "github.com/erasmusedu/erasmus-portal/internal/app/services"
	"github.com/erasmusedu/erasmus-portal/internal/config"
	"github.com/erasmusedu/erasmus-portal/internal/db"
	appMiddleware "github.com/erasmusedu/erasmus-portal/internal/middleware"
	pkgAuth "github.com/erasmusedu/erasmus-portal/internal/pkg/auth"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/genai"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/helpers"
	"github.com/erasmusedu/erasmus-portal/internal/pkg/logger"
	"github.com/erasmusedu/erasmus-portal/internal/registry"
	"github.com/erasmusedu/erasmus-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Registry         *registry.Registry
	Store            db.DocumentStore
	AuthService      appServices.AuthService
	NavService       appServices.NavigationService
	UserService      appServices.UserService
	ClassService     appServices.ClassService
	StudentService   appServices.StudentService
	FinanceService   appServices.FinanceService
	InventoryService appServices.InventoryService
	SiteService      appServices.SiteService
	PortalService    appServices.TeacherPortalService
	ParentService    appServices.ParentService

	AuthController          *appControllers.AuthController
	NavigationController    *appControllers.NavigationController
	SiteController          *appControllers.SiteController
	UserController          *appControllers.UserController
	ClassController         *appControllers.ClassController
	StudentController       *appControllers.StudentController
	FinanceController       *appControllers.FinanceController
	InventoryController     *appControllers.InventoryController
	TeacherPortalController *appControllers.TeacherPortalController
	ParentController        *appControllers.ParentController

	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

// SetupStore connects the optional persistence backend. Without a database
// URL the no-op store keeps everything in memory.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (db.DocumentStore, error) {
	if !cfg.DatabaseConfigured() {
		lgr.Info().Msg("No database configured, running memory-only")
		return db.NewNoopStore(), nil
	}

	store, err := db.NewPostgresStore(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect persistence backend")
		return nil, err
	}
	return store, nil
}

// SetupRegistry seeds the registry and, when a backend is attached, restores
// the persisted ledger and keeps mirroring new entries.
func SetupRegistry(store db.DocumentStore, lgr zerolog.Logger) (*registry.Registry, error) {
	reg := registry.New()
	seed.Apply(reg)

	if !store.Enabled() {
		return reg, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs, err := store.SelectAll(ctx, string(registry.CollectionFinance))
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load persisted ledger")
		return nil, err
	}

	mirrored := 0
	if len(docs) > 0 {
		records := make([]models.FinancialRecord, 0, len(docs))
		for _, doc := range docs {
			var rec models.FinancialRecord
			if err := json.Unmarshal(doc, &rec); err != nil {
				lgr.Error().Err(err).Msg("Skipping malformed ledger document")
				continue
			}
			records = append(records, rec)
		}
		reg.SetFinancialRecords(records)
		mirrored = len(records)
		lgr.Info().Int("records", mirrored).Msg("Restored persisted ledger")
	} else {
		// First run against an empty backend: persist the opening ledger so
		// the store and the registry agree from here on.
		for _, rec := range reg.FinancialRecords() {
			if err := store.Insert(ctx, string(registry.CollectionFinance), rec); err != nil {
				lgr.Error().Err(err).Str("recordId", rec.ID).Msg("Failed to persist opening ledger record")
				return nil, err
			}
			mirrored++
		}
	}

	db.NewLedgerMirror(store, reg, mirrored).Attach()
	return reg, nil
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(cfg *config.Config, store db.DocumentStore, reg *registry.Registry, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Registry: reg, Store: store, Logger: lgr}

	tokenExp := helpers.ParseDuration(cfg.Session.TokenExpiration, 12*time.Hour)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.Session.Issuer,
	})

	genaiClient := genai.NewClient(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.BaseURL)
	if !genaiClient.Configured() {
		lgr.Warn().Msg("GEMINI_API_KEY not set, AI insight runs in fallback mode")
	}

	// Services
	deps.AuthService = appServices.NewAuthService(reg, deps.JWTService, lgr)
	deps.NavService = appServices.NewNavigationService()
	deps.UserService = appServices.NewUserService(reg)
	deps.ClassService = appServices.NewClassService(reg, appServices.PolicyOrphan)
	deps.StudentService = appServices.NewStudentService(reg)
	deps.FinanceService = appServices.NewFinanceService(reg)
	deps.InventoryService = appServices.NewInventoryService(reg)
	deps.SiteService = appServices.NewSiteService(reg)
	deps.PortalService = appServices.NewTeacherPortalService(reg, genaiClient)
	deps.ParentService = appServices.NewParentService(reg)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.NavigationController = appControllers.NewNavigationController(deps.NavService, genaiClient.Configured(), store.Enabled())
	deps.SiteController = appControllers.NewSiteController(deps.SiteService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.FinanceController = appControllers.NewFinanceController(deps.FinanceService)
	deps.InventoryController = appControllers.NewInventoryController(deps.InventoryService)
	deps.TeacherPortalController = appControllers.NewTeacherPortalController(deps.PortalService)
	deps.ParentController = appControllers.NewParentController(deps.ParentService)

	// Middleware
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthService)

	return deps, nil
}

// SetupRouter creates the gin engine and registers every route.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.NavigationController,
		deps.SiteController,
		deps.UserController,
		deps.ClassController,
		deps.StudentController,
		deps.FinanceController,
		deps.InventoryController,
		deps.TeacherPortalController,
		deps.ParentController,
		deps.AuthMiddleware,
	)

	return router
}
