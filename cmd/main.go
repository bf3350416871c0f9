package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/mnmsi/Lara-api/application/cart"
	orderapp "github.com/mnmsi/Lara-api/application/order"
	productapp "github.com/mnmsi/Lara-api/application/product"
	userapp "github.com/mnmsi/Lara-api/application/user"
	"github.com/mnmsi/Lara-api/cmd/config"
	"github.com/mnmsi/Lara-api/cmd/migration"
	redisclient "github.com/mnmsi/Lara-api/cmd/redis"
	_ "github.com/mnmsi/Lara-api/docs"
	cartRepo "github.com/mnmsi/Lara-api/repository/cart"
	orderRepo "github.com/mnmsi/Lara-api/repository/order"
	productRepo "github.com/mnmsi/Lara-api/repository/product"
	redisRepo "github.com/mnmsi/Lara-api/repository/redis"
	txRepo "github.com/mnmsi/Lara-api/repository/tx"
	userRepo "github.com/mnmsi/Lara-api/repository/user"
	"github.com/mnmsi/Lara-api/thirdparty/rabbitmq"
	"github.com/mnmsi/Lara-api/transport"
	"github.com/mnmsi/Lara-api/utils/logger"
	validatorx "github.com/mnmsi/Lara-api/utils/validator"
	"go.uber.org/zap"
)

// @title LARA API
// @version 1.0
// @description Shop API: accounts, products, cart and orders
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if cfg.Database.AutoMigrate {
		if err := migration.Up(db.DB); err != nil {
			logger.Fatal("err run migrations", zap.Error(err))
		}
	}

	// Initialize Redis client
	rdb, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = rdb.Close()
	}()

	// Order events are optional; checkout works without a broker.
	var publisher orderapp.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = p.Close()
		}()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	CartRepo := cartRepo.NewCartRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	RedisRepo := redisRepo.NewRepository(rdb)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(ProductRepo)
	CartApp := cartapp.NewCartApp(TxRepo, CartRepo, UserRepo)
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, CartRepo, UserRepo, publisher)

	httpTransport := transport.NewTransport(&transport.RestHandler{
		UserApp:    UserApp,
		ProductApp: ProductApp,
		CartApp:    CartApp,
		OrderApp:   OrderApp,
	}, cfg.Server.CORSAllowedOrigins)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
