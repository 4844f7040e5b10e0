package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/abeer2626/sami-shops/internal/config"
	"github.com/abeer2626/sami-shops/internal/domain/entities"
	domainerrors "github.com/abeer2626/sami-shops/internal/domain/errors"
	domainRepos "github.com/abeer2626/sami-shops/internal/domain/repositories"
	"github.com/abeer2626/sami-shops/internal/infrastructure/repositories"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/handlers"
	"github.com/abeer2626/sami-shops/internal/interfaces/http/middleware"
	"github.com/abeer2626/sami-shops/internal/usecases"
	"github.com/abeer2626/sami-shops/pkg/jwt"
	"github.com/abeer2626/sami-shops/pkg/logger"
	"github.com/abeer2626/sami-shops/pkg/redis"
	"github.com/abeer2626/sami-shops/pkg/utils"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	earningRepo := repositories.NewEarningRepository(db)
	payoutRepo := repositories.NewPayoutRepository(db)
	commissionRepo := repositories.NewCommissionRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	flashSaleRepo := repositories.NewFlashSaleRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Seed the default commission rate on first boot
	if err := seedDefaultCommission(context.Background(), commissionRepo, cfg.Marketplace.DefaultCommissionRate); err != nil {
		log.Printf("Default commission not seeded: %v", err)
	}

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, jwtService, cfg.Marketplace.SuperAdminEmail)
	catalogUsecase := usecases.NewCatalogUsecase(categoryRepo, productRepo, storeRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, productRepo, storeRepo, flashSaleRepo, earningRepo, commissionRepo, uow)
	earningUsecase := usecases.NewEarningUsecase(earningRepo, payoutRepo, commissionRepo, storeRepo, uow)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, productRepo, orderRepo, uow)
	flashSaleUsecase := usecases.NewFlashSaleUsecase(flashSaleRepo, productRepo)
	messageUsecase := usecases.NewMessageUsecase(messageRepo, userRepo, productRepo)
	reportUsecase := usecases.NewReportUsecase(orderRepo, storeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore)
	catalogHandler := handlers.NewCatalogHandler(catalogUsecase)
	orderHandler := handlers.NewOrderHandler(orderUsecase)
	vendorHandler := handlers.NewVendorHandler(catalogUsecase, orderUsecase, earningUsecase, reportUsecase)
	adminHandler := handlers.NewAdminHandler(authUsecase, earningUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	flashSaleHandler := handlers.NewFlashSaleHandler(flashSaleUsecase)
	messageHandler := handlers.NewMessageHandler(messageUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r, cfg.CORS.AllowedOrigins)

	deps := routeDeps{
		authHandler:      authHandler,
		catalogHandler:   catalogHandler,
		orderHandler:     orderHandler,
		vendorHandler:    vendorHandler,
		adminHandler:     adminHandler,
		reviewHandler:    reviewHandler,
		flashSaleHandler: flashSaleHandler,
		messageHandler:   messageHandler,
		authMiddleware:   authMiddleware,
	}
	registerRootRoutes(r, deps)
	registerAPIV1Routes(r, deps)

	// Start server
	log.Printf("SamiShops backend starting on port %s", cfg.Server.Port)
	log.Printf("API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// seedDefaultCommission creates the standard commission rate when no
// default exists yet, so earnings fan-out works out of the box
func seedDefaultCommission(ctx context.Context, repo domainRepos.CommissionRepository, rate string) error {
	if _, err := repo.GetDefault(ctx); err == nil {
		return nil
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}

	parsed, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid default commission rate %q: %w", rate, err)
	}

	now := time.Now()
	return repo.Create(ctx, &entities.Commission{
		ID:        utils.GenerateUUIDv7(),
		Name:      "Standard",
		Rate:      parsed,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
