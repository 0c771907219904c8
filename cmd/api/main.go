package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"craveconnect/internal/config"
	"craveconnect/internal/handler"
	"craveconnect/internal/infra/db"
	"craveconnect/internal/infra/messaging"
	infraRepo "craveconnect/internal/infra/repository"
	"craveconnect/internal/logging"
	"craveconnect/internal/middleware"
	"craveconnect/internal/server"
	"craveconnect/internal/usecase"
	auth "craveconnect/internal/usecase/auth_usecase"
	"craveconnect/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real environment wins
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.New("error").Error("config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Error("db connect", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Error("db migrate", "error", err)
		os.Exit(1)
	}

	// repositories
	users := infraRepo.NewUserGormRepository(gormDB)
	vendors := infraRepo.NewVendorGormRepository(gormDB)
	admins := infraRepo.NewAdminGormRepository(gormDB)
	foods := infraRepo.NewFoodGormRepository(gormDB)
	orders := infraRepo.NewOrderGormRepository(gormDB)
	index := infraRepo.NewUserOrderIndexGorm(gormDB)
	reviews := infraRepo.NewReviewGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	var events usecase.OrderEventPublisher = usecase.NopPublisher{}
	var kafkaPub *messaging.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPub = messaging.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		events = kafkaPub
	} else {
		logger.Info("KAFKA_BROKERS empty, order events disabled")
	}

	// auth
	accountValidator := validator.NewAccountValidator()
	issuer := auth.NewJWTIssuer(cfg.JWTSecret, cfg.AccessTokenTTL)
	registerUC := auth.NewRegisterUsecase(users, vendors, admins, auth.NewBcryptPasswordHasher(cfg.BcryptCost), accountValidator)
	loginUC := auth.NewLoginUsecase(users, vendors, admins, auth.NewBcryptPasswordVerifier(), issuer, accountValidator, auth.SystemClock{})

	// usecases
	catalog := usecase.NewCatalogLookup(foods, cfg.CatalogTimeout)
	orderUC := usecase.NewOrderUsecase(txm, orders, catalog, events)
	foodUC := usecase.NewFoodUsecase(foods, vendors)
	userUC := usecase.NewUserUsecase(txm, users, index)
	vendorUC := usecase.NewVendorUsecase(txm, vendors, foods, reviews, orders)
	adminUC := usecase.NewAdminUsecase(admins, users, vendors, orders, reviews, foods)
	reviewUC := usecase.NewReviewUsecase(reviews, foods)
	checker := usecase.NewAccountChecker(users, vendors, admins)

	guards := handler.Guards{
		Auth:    middleware.AuthJWT(issuer),
		Account: middleware.AccountGuard(checker),
	}
	e := server.New(logger, cfg.FEURL, server.Handlers{
		Auth:   handler.NewAuthHandler(registerUC, loginUC),
		Order:  handler.NewOrderHandler(orderUC),
		Food:   handler.NewFoodHandler(foodUC),
		User:   handler.NewUserHandler(userUC),
		Vendor: handler.NewVendorHandler(vendorUC),
		Admin:  handler.NewAdminHandler(adminUC, orderUC),
		Review: handler.NewReviewHandler(reviewUC),
		Health: handler.NewHealthHandler(func(ctx context.Context) error { return db.Ping(ctx, gormDB) }),
	}, guards)

	if err := server.Run(ctx, cfg.Addr(), e, logger); err != nil {
		logger.Error("server", "error", err)
	}

	if kafkaPub != nil {
		if err := kafkaPub.Close(); err != nil {
			logger.Error("kafka close", "error", err)
		}
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close", "error", err)
		}
	}
	logger.Info("shutdown complete")
}
