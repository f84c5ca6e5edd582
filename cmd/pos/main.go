package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/tiendapos/inventory-service/config"
	"github.com/tiendapos/inventory-service/pkg/cache"
	"github.com/tiendapos/inventory-service/pkg/logger"
	"github.com/tiendapos/inventory-service/pkg/postgres"

	checkoutUCPkg "github.com/tiendapos/inventory-service/internal/checkout/usecase"
	priceRepoPkg "github.com/tiendapos/inventory-service/internal/price/repository"
	priceUCPkg "github.com/tiendapos/inventory-service/internal/price/usecase"
	salesRepoPkg "github.com/tiendapos/inventory-service/internal/sales/repository"
	salesUCPkg "github.com/tiendapos/inventory-service/internal/sales/usecase"
	stockRepoPkg "github.com/tiendapos/inventory-service/internal/stock/repository"
	stockUCPkg "github.com/tiendapos/inventory-service/internal/stock/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.Config{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.App.Env == "dev" || cfg.App.Env == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.New(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	ctx := context.Background()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		appLogger.Fatal("Could not create ledger schema", zap.Error(err))
	}

	// 4. Initialize Redis (optional; listings just skip the cache when it is down)
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis, stock listings will not be cached", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize Repositories
	stockRepo := stockRepoPkg.NewPGRepository(db)
	priceRepo := priceRepoPkg.NewPGRepository(db)
	salesRepo := salesRepoPkg.NewPGRepository(db)

	// 6. Initialize UseCases
	stockUC := stockUCPkg.NewStockUseCase(stockRepo, redisClient, appLogger)
	priceUC := priceUCPkg.NewPriceUseCase(priceRepo, stockRepo, appLogger)
	salesUC := salesUCPkg.NewSalesUseCase(salesRepo, stockRepo, appLogger)
	checkoutUC := checkoutUCPkg.NewCheckoutUseCase(stockUC, salesUC, appLogger)

	// 7. Run the front-end session loop
	s := newSession(stockUC, priceUC, salesUC, checkoutUC)
	s.run(ctx)

	appLogger.Info("Session ended")
}
